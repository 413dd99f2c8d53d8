package dto

import (
	"time"

	"github.com/google/uuid"
)

// TeamId is taken from the season.
type AthleteRequest struct {
	PersonId      uuid.UUID `json:"person_id" validate:"required"`
	SeasonId      uuid.UUID `json:"season_id" validate:"required"`
	UsaSwimmingId string    `json:"usa_swimming_id" validate:"max=32"`
}

type AthleteResponse struct {
	Id            uuid.UUID  `json:"id"`
	PersonId      uuid.UUID  `json:"person_id"`
	TeamId        uuid.UUID  `json:"team_id"`
	SeasonId      uuid.UUID  `json:"season_id"`
	UsaSwimmingId string     `json:"usa_swimming_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FullName      string     `json:"full_name"`
	Age           *int       `json:"age"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
