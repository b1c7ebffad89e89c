package entity

import "time"

// DateLayout formato de la fecha calendario de una bitácora ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// WorkLog es el reporte diario de un usuario: lo hecho hoy y el plan de mañana.
// Invariante: a lo sumo un WorkLog por (UserID, Date), garantizado por constraint único en DB.
type WorkLog struct {
	ID              string
	UserID          string
	Date            string // día calendario normalizado "YYYY-MM-DD" (UTC)
	Description     string
	PlanForTomorrow string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
