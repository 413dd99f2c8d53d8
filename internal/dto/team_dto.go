package dto

import (
	"time"

	"github.com/google/uuid"
)

type TeamRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	ShortName string `json:"short_name" validate:"max=32"`
	City      string `json:"city" validate:"max=255"`
}

type TeamResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	ShortName   string     `json:"short_name"`
	City        string     `json:"city"`
	SeasonCount int        `json:"season_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
