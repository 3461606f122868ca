package domain

import "math"

// Calorie formula coefficients for sports walking.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a sports walking workout. On top of the common readings
// it carries the athlete height, which enters the calorie formula as the
// divisor of the squared mean speed.
type SportsWalking struct {
	workout
	height float64 // cm
}

// NewSportsWalking builds a sports walking record. height is in cm and must
// be non-zero.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		workout: workout{action: action, duration: duration, weight: weight},
		height:  height,
	}
}

func (w SportsWalking) ActivityLabel() string {
	return "SportsWalking"
}

// SpentCalories estimates the kilocalories burned while walking. The squared
// mean speed is floor-divided by the height; the truncation is part of the
// reference formula and must not be replaced with true division.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.weight +
		math.Floor(speed*speed/w.height)*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH
}

func (w SportsWalking) TrainingInfo() InfoMessage {
	return newInfoMessage(w)
}
