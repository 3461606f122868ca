package domain

import "fmt"

// messageTemplate is the fixed summary line. Field order, punctuation and
// the 3-decimal formatting are part of the contract.
const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the read-only summary of a finished workout. It is derived
// on demand from a Training record and has no lifecycle of its own.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// GetMessage renders the summary line. Rendering is a pure function of the
// message fields, so repeated calls yield identical strings.
func (m InfoMessage) GetMessage() string {
	return fmt.Sprintf(messageTemplate,
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
