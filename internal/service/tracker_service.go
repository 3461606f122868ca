package service

import (
	"errors"
	"fmt"
	"log/slog"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/observability"
)

// SensorPackage is one (type code, measurements) pair as delivered by the
// sensor hub. The measurements are positional constructor arguments of the
// workout kind selected by the code.
type SensorPackage struct {
	WorkoutType string
	Data        []float64
}

// --- Service Interface ---
type TrackerService interface {
	// ProcessPackage reconstructs the workout record from one sensor package
	// and derives its summary. Decoding failures are propagated to the
	// caller; a default workout kind is never substituted.
	ProcessPackage(pkg SensorPackage) (domain.InfoMessage, error)
}

// --- Service Implementation ---

// trackerService implements the TrackerService interface.
type trackerService struct {
	logger *slog.Logger
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(logger *slog.Logger) TrackerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &trackerService{logger: logger}
}

func (s *trackerService) ProcessPackage(pkg SensorPackage) (domain.InfoMessage, error) {
	training, err := domain.ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		observability.RecordPackageRejected(rejectionReason(err))
		s.logger.Error("failed to decode sensor package",
			"workout_type", pkg.WorkoutType,
			"data_len", len(pkg.Data),
			"error", err)
		return domain.InfoMessage{}, fmt.Errorf("read package: %w", err)
	}

	info := training.TrainingInfo()
	observability.RecordPackageProcessed(pkg.WorkoutType)
	s.logger.Debug("sensor package processed",
		"workout_type", pkg.WorkoutType,
		"activity", info.TrainingType,
		"distance_km", info.Distance,
		"mean_speed_kmh", info.Speed,
		"calories_kcal", info.Calories)
	return info, nil
}

// rejectionReason maps decode errors onto stable metric label values.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownWorkoutType):
		return "unknown_type"
	case errors.Is(err, domain.ErrArityMismatch):
		return "arity_mismatch"
	default:
		return "other"
	}
}
