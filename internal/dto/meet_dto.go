package dto

import (
	"time"

	"github.com/google/uuid"
)

// TeamId is taken from the season.
type MeetRequest struct {
	SeasonId  uuid.UUID `json:"season_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=255"`
	Location  string    `json:"location" validate:"max=255"`
	Course    string    `json:"course" validate:"required,oneof=SCY SCM LCM"`
	StartDate string    `json:"start_date" validate:"required"`
	EndDate   string    `json:"end_date"`
}

type MeetResponse struct {
	Id        uuid.UUID  `json:"id"`
	SeasonId  uuid.UUID  `json:"season_id"`
	TeamId    uuid.UUID  `json:"team_id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Course    string     `json:"course"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	DateRange string     `json:"date_range"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
