package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/api/controllers"
	"itinero/internal/models/entities"
	"itinero/internal/models/response_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type mockTripService struct {
	createTrip func(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	updateTrip func(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	listTrips  func(ctx context.Context) ([]response_models.TripResponse, error)
	getTrip    func(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error)
	deleteTrip func(ctx context.Context, tripID string) error
}

func (m *mockTripService) CreateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error) {
	return m.createTrip(ctx, trip)
}
func (m *mockTripService) UpdateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error) {
	return m.updateTrip(ctx, trip)
}
func (m *mockTripService) ListTrips(ctx context.Context) ([]response_models.TripResponse, error) {
	return m.listTrips(ctx)
}
func (m *mockTripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error) {
	return m.getTrip(ctx, tripID)
}
func (m *mockTripService) DeleteTrip(ctx context.Context, tripID string) error {
	return m.deleteTrip(ctx, tripID)
}

var _ services.TripServiceInterface = (*mockTripService)(nil)

func newTripsRouter(svc services.TripServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewTripsController(svc)
	r.GET("/trips", ctrl.ListTrips)
	r.POST("/trips", ctrl.CreateTrip)
	r.GET("/trips/:tripId", ctrl.GetTrip)
	r.PUT("/trips/:tripId", ctrl.UpdateTrip)
	r.DELETE("/trips/:tripId", ctrl.DeleteTrip)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestTripsController_ListTrips(t *testing.T) {
	svc := &mockTripService{
		listTrips: func(_ context.Context) ([]response_models.TripResponse, error) {
			return []response_models.TripResponse{{ID: "trip-1", Destination: "Paris"}}, nil
		},
	}
	r := newTripsRouter(svc)

	w, resp := doJSON(t, r, http.MethodGet, "/trips", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestTripsController_GetTrip_NotFound(t *testing.T) {
	svc := &mockTripService{
		getTrip: func(_ context.Context, _ string) (*response_models.TripDetailResponse, error) {
			return nil, utils.ErrTripNotFound
		},
	}
	r := newTripsRouter(svc)

	w, resp := doJSON(t, r, http.MethodGet, "/trips/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestTripsController_CreateTrip_Created(t *testing.T) {
	svc := &mockTripService{
		createTrip: func(_ context.Context, trip entities.Trip) (*entities.Trip, error) {
			trip.ID = "trip-1"
			return &trip, nil
		},
	}
	r := newTripsRouter(svc)

	w, resp := doJSON(t, r, http.MethodPost, "/trips",
		`{"destination":"Paris","startDate":"2024-06-01","endDate":"2024-06-05"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestTripsController_CreateTrip_ValidationErrors(t *testing.T) {
	svc := &mockTripService{
		createTrip: func(_ context.Context, trip entities.Trip) (*entities.Trip, error) {
			return nil, utils.FieldErrors{"endDate": "end date cannot be before start date"}
		},
	}
	r := newTripsRouter(svc)

	w, resp := doJSON(t, r, http.MethodPost, "/trips",
		`{"destination":"Paris","startDate":"2024-06-05","endDate":"2024-06-01"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "endDate")
}

func TestTripsController_CreateTrip_MalformedBody(t *testing.T) {
	svc := &mockTripService{}
	r := newTripsRouter(svc)

	w, _ := doJSON(t, r, http.MethodPost, "/trips", `{"destination":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripsController_DeleteTrip_StoreUnavailable(t *testing.T) {
	svc := &mockTripService{
		deleteTrip: func(_ context.Context, _ string) error {
			return utils.ErrStoreUnavailable
		},
	}
	r := newTripsRouter(svc)

	w, _ := doJSON(t, r, http.MethodDelete, "/trips/trip-1", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
