package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinero/internal/models/response_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type SummaryController struct {
	summaryService services.SummaryServiceInterface
}

func NewSummaryController(summaryService services.SummaryServiceInterface) *SummaryController {
	return &SummaryController{summaryService: summaryService}
}

// SummarizeTrip godoc
// @Summary Generate a narrative trip summary
// @Description Flatten the trip's itinerary and ask the AI backend for a shareable narrative
// @Tags Summary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.SummaryResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /trips/{tripId}/summary [post]
func (s *SummaryController) SummarizeTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	narrative, err := s.summaryService.SummarizeTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.SummaryResponse{Narrative: narrative}, "Summary generated successfully")
}
