package dto

import (
	"time"

	"github.com/google/uuid"
)

type EventRequest struct {
	Distance  int    `json:"distance" validate:"required,gt=0"`
	Stroke    string `json:"stroke" validate:"required,oneof=Free Back Breast Fly IM Medley"`
	Course    string `json:"course" validate:"required,oneof=SCY SCM LCM"`
	Gender    string `json:"gender" validate:"omitempty,oneof=M F X"`
	Relay     bool   `json:"relay"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type EventResponse struct {
	Id        uuid.UUID  `json:"id"`
	Distance  int        `json:"distance"`
	Stroke    string     `json:"stroke"`
	Course    string     `json:"course"`
	Gender    string     `json:"gender"`
	Relay     bool       `json:"relay"`
	SortOrder int        `json:"sort_order"`
	Label     string     `json:"label"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
