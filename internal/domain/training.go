package domain

import (
	"errors"
	"fmt"
)

// Unit conversion constants shared by every workout kind.
const (
	mInKm   = 1000 // meters in a kilometer
	minInH  = 60   // minutes in an hour
	lenStep = 0.65 // meters covered by a single step
)

// --- Error Definitions ---
var (
	// ErrUnknownWorkoutType is returned when a sensor package carries a type
	// code that no workout kind is registered for.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch is returned when the positional measurement list does
	// not match the parameter count of the target workout kind.
	ErrArityMismatch = errors.New("sensor data arity mismatch")
)

// Training is implemented by every concrete workout kind. The shared base
// struct is unexported and does not provide SpentCalories, so a bare base
// record can never satisfy this interface.
type Training interface {
	// ActivityLabel returns the canonical name of the workout kind.
	ActivityLabel() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed over the whole workout in km/h.
	MeanSpeed() float64
	// SpentCalories returns the estimated kilocalories burned.
	SpentCalories() float64
	// TrainingInfo produces the summary of the finished workout.
	TrainingInfo() InfoMessage
}

// workout holds the sensor readings common to every workout kind.
type workout struct {
	action   int     // steps or strokes counted by the sensor
	duration float64 // hours
	weight   float64 // kg
}

func (w workout) Duration() float64 {
	return w.duration
}

// Distance converts the action count into km using the step length.
func (w workout) Distance() float64 {
	return float64(w.action) * lenStep / mInKm
}

// MeanSpeed is the step-based distance over the duration.
func (w workout) MeanSpeed() float64 {
	return w.Distance() / w.duration
}

// newInfoMessage assembles the summary for a concrete workout kind. Called
// from the variants' TrainingInfo methods so the label always belongs to the
// concrete kind, never to the base record.
func newInfoMessage(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.ActivityLabel(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// workoutFactory builds one workout kind from a positional sensor payload.
type workoutFactory struct {
	arity int
	build func(data []float64) Training
}

// Recognized sensor package type codes.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

var workoutFactories = map[string]workoutFactory{
	CodeSwimming: {
		arity: 5,
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
	CodeRunning: {
		arity: 3,
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	CodeSportsWalking: {
		arity: 4,
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// ReadPackage reads one package of sensor data and reconstructs the typed
// workout record. The data values are applied positionally as constructor
// arguments of the kind selected by workoutType.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	factory, ok := workoutFactories[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}
	if len(data) != factory.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d",
			ErrArityMismatch, workoutType, factory.arity, len(data))
	}
	return factory.build(data), nil
}
