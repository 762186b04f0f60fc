package dto

import "github.com/google/uuid"

type DocumentUploadResponse struct {
	Status string    `json:"status"`
	ID     uuid.UUID `json:"id"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type FileUploadResponse struct {
	URL string `json:"url"`
}
