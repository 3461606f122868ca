package api

import (
	"errors"
	"net/http"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SummaryHandler holds the tracker service dependency.
type SummaryHandler struct {
	trackerService service.TrackerService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(trackerService service.TrackerService) *SummaryHandler {
	return &SummaryHandler{trackerService: trackerService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateSummaryRequest defines the expected JSON for summarizing one sensor
// package.
type CreateSummaryRequest struct {
	WorkoutType string    `json:"workoutType" binding:"required"` // "SWM", "RUN" or "WLK"
	Data        []float64 `json:"data" binding:"required"`        // positional constructor arguments
}

// SummaryResponse is the DTO for returning a workout summary.
type SummaryResponse struct {
	ID           string  `json:"id"`
	TrainingType string  `json:"trainingType"`
	Duration     float64 `json:"duration"` // hours
	Distance     float64 `json:"distance"` // km
	Speed        float64 `json:"speed"`    // km/h
	Calories     float64 `json:"calories"` // kcal
	Message      string  `json:"message"`
}

// MapInfoToResponse converts a domain.InfoMessage to SummaryResponse DTO.
func MapInfoToResponse(info domain.InfoMessage) SummaryResponse {
	return SummaryResponse{
		ID:           uuid.NewString(),
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Message:      info.GetMessage(),
	}
}

// --- Handler Methods ---

// CreateSummary computes the summary for one sensor package.
func (h *SummaryHandler) CreateSummary(c *gin.Context) {
	var req CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	info, err := h.trackerService.ProcessPackage(service.SensorPackage{
		WorkoutType: req.WorkoutType,
		Data:        req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownWorkoutType),
			errors.Is(err, domain.ErrArityMismatch):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to process sensor package")
		}
		return
	}

	c.JSON(http.StatusCreated, MapInfoToResponse(info))
}
