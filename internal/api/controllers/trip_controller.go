package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

type TripController struct {
	tripService       services.TripServiceInterface
	processingService services.TripProcessingServiceInterface
}

func NewTripController(
	tripService services.TripServiceInterface,
	processingService services.TripProcessingServiceInterface,
) *TripController {
	return &TripController{
		tripService:       tripService,
		processingService: processingService,
	}
}

// CreateTripPlan godoc
// @Summary Create a trip plan
// @Description Returns the trip id and status "processing" immediately; route, weather, POI and AI summary data are assembled in the background
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Origin, destination, preferences, duration in days"
// @Success 200 {object} response_models.TripCreatedResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/trip/plan [post]
func (t *TripController) CreateTripPlan(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Origin, destination and a positive duration are required")
		return
	}

	created, err := t.tripService.CreateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// Detached from the request context: the pass runs to a terminal
	// status even after this response is written.
	go t.processingService.ProcessTripPlan(context.Background(), created.TripID, req.Normalized())

	utils.RespondSuccess(c, created, "Trip plan created")
}

// GetTripPlan godoc
// @Summary Get trip plan details
// @Description Serves the trip snapshot from cache first, then from the database
// @Tags Trip
// @Produce json
// @Param tripId path int true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trip/{tripId} [get]
func (t *TripController) GetTripPlan(c *gin.Context) {
	tripID, err := strconv.ParseInt(c.Param("tripId"), 10, 64)
	if err != nil || tripID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a positive integer")
		return
	}

	detail, err := t.tripService.GetTripDetail(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip plan fetched successfully")
}

// GetUserTrips godoc
// @Summary List a user's trip plans
// @Description Newest-first page from the database, falling back to cached snapshots when the database is unavailable
// @Tags Trip
// @Produce json
// @Param user_id query int false "User ID" default(1)
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} response_models.TripSummaryResponse
// @Router /api/trips [get]
func (t *TripController) GetUserTrips(c *gin.Context) {
	userID, err := strconv.ParseInt(c.DefaultQuery("user_id", "1"), 10, 64)
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
		return
	}

	trips, err := t.tripService.GetUserTrips(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trips": trips}, "Trips fetched successfully")
}
