package dto

import "github.com/google/uuid"

type CreateAlertRequest struct {
	Type          string    `json:"type"`
	DueDate       string    `json:"due_date"` // YYYY-MM-DD
	PeriodYears   int       `json:"period_years"`
	CondominiumID uuid.UUID `json:"condominium_id"`
}

// SchedulerResponse reports one daily sweep run.
type SchedulerResponse struct {
	Status           string      `json:"status"`
	AlertsDispatched int         `json:"alerts_dispatched"`
	UpdatedIDs       []uuid.UUID `json:"updated_ids"`
}
