package domain

// Calorie formula coefficients for running.
const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a running workout reconstructed from step sensor data.
type Running struct {
	workout
}

// NewRunning builds a running record from action count, duration in hours
// and athlete weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{workout{action: action, duration: duration, weight: weight}}
}

func (r Running) ActivityLabel() string {
	return "Running"
}

// SpentCalories estimates the kilocalories burned while running.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() -
		runningCaloriesMeanSpeedShift) * r.weight / mInKm * r.duration * minInH
}

func (r Running) TrainingInfo() InfoMessage {
	return newInfoMessage(r)
}
