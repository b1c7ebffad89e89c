package dto

import "time"

// SubmitWorkLogRequest entrada para el reporte diario. La fecha la calcula el servidor.
// Los nombres de campo vienen del contrato con el cliente (camelCase en planForTomorrow).
type SubmitWorkLogRequest struct {
	Description     string `json:"description" validate:"required"`
	PlanForTomorrow string `json:"planForTomorrow" validate:"required"`
}

// ListWorkLogsRequest filtros de listado; para no-admin el user_id se fuerza al del token.
type ListWorkLogsRequest struct {
	Date   string `query:"date"`
	UserID string `query:"user_id"`
}

// WorkLogResponse salida de una bitácora, enriquecida con el username del dueño.
type WorkLogResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username,omitempty"`
	Date            string    `json:"date"`
	Description     string    `json:"description"`
	PlanForTomorrow string    `json:"planForTomorrow"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
