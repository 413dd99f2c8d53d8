package dto

import (
	"time"

	"github.com/google/uuid"
)

type SeasonRequest struct {
	TeamId    uuid.UUID `json:"team_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=255"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date"`
}

type SeasonResponse struct {
	Id        uuid.UUID  `json:"id"`
	TeamId    uuid.UUID  `json:"team_id"`
	TeamName  string     `json:"team_name"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	DateRange string     `json:"date_range"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
