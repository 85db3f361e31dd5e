package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinero/internal/models/request_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type ItemsController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItemsController(itineraryService services.ItineraryServiceInterface) *ItemsController {
	return &ItemsController{itineraryService: itineraryService}
}

// AddItem godoc
// @Summary Add an itinerary item
// @Description Append an item to a trip; the itinerary is re-sorted by start time
// @Tags Items
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SaveItemRequest true "Item fields"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /trips/{tripId}/items [post]
func (i *ItemsController) AddItem(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := req.ToEntity("")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := i.itineraryService.AddItem(c.Request.Context(), tripID, item)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, created, "Itinerary item added successfully")
}

// UpdateItem godoc
// @Summary Update an itinerary item
// @Description Replace the item with the matching id and re-sort the itinerary
// @Tags Items
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param itemId path string true "Item ID"
// @Param request body request_models.SaveItemRequest true "Item fields"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /trips/{tripId}/items/{itemId} [put]
func (i *ItemsController) UpdateItem(c *gin.Context) {
	tripID := c.Param("tripId")
	itemID := c.Param("itemId")
	if tripID == "" || itemID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID and item ID are required")
		return
	}

	var req request_models.SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := req.ToEntity(itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	updated, err := i.itineraryService.UpdateItem(c.Request.Context(), tripID, item)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Itinerary item updated successfully")
}

// DeleteItem godoc
// @Summary Delete an itinerary item
// @Description Remove one item; remaining items keep their order
// @Tags Items
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/items/{itemId} [delete]
func (i *ItemsController) DeleteItem(c *gin.Context) {
	tripID := c.Param("tripId")
	itemID := c.Param("itemId")
	if tripID == "" || itemID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID and item ID are required")
		return
	}

	if err := i.itineraryService.DeleteItem(c.Request.Context(), tripID, itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary item deleted successfully")
}
