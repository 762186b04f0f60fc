package dto

import "github.com/google/uuid"

// InspectionItemPayload is one element of the items_json multipart
// field.
type InspectionItemPayload struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Observation string `json:"observation"`
	PhotoURL    string `json:"photo_url"`
}

type InspectionUploadResponse struct {
	Status       string    `json:"status"`
	InspectionID uuid.UUID `json:"inspection_id"`
	Message      string    `json:"message,omitempty"`
}
