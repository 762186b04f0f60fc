package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded condominium document (bylaws, contracts).
// ContentText holds the extracted full text searched by the Q&A
// endpoint.
type Document struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	FilePath    string    `gorm:"not null;size:500" json:"file_path"`
	ContentText string    `gorm:"type:text" json:"-"`

	CondominiumID uuid.UUID    `gorm:"type:uuid;not null;index" json:"condominium_id"`
	Condominium   *Condominium `gorm:"foreignKey:CondominiumID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
