package domain

// Swimming-specific constants: stroke length replaces step length, plus the
// calorie formula coefficients.
const (
	swimmingLenStep                  = 1.38 // meters covered by a single stroke
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool workout. Distance is stroke-based while mean speed is
// pool-length-based, so both are overridden here.
type Swimming struct {
	workout
	lengthPool float64 // pool length, meters
	countPool  int     // laps swum
}

// NewSwimming builds a swimming record from stroke count, duration in hours,
// weight in kg, pool length in meters and the lap count.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		workout:    workout{action: action, duration: duration, weight: weight},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (s Swimming) ActivityLabel() string {
	return "Swimming"
}

// Distance converts the stroke count into km.
func (s Swimming) Distance() float64 {
	return float64(s.action) * swimmingLenStep / mInKm
}

// MeanSpeed is derived from the pool length and lap count rather than from
// the stroke-based distance.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

// SpentCalories estimates the kilocalories burned while swimming.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight
}

func (s Swimming) TrainingInfo() InfoMessage {
	return newInfoMessage(s)
}
