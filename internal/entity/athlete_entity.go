package entity

import (
	"time"

	"github.com/google/uuid"
)

// Athlete is a person's roster spot on a team for one season.
type Athlete struct {
	Id            uuid.UUID
	PersonId      uuid.UUID
	TeamId        uuid.UUID
	SeasonId      uuid.UUID
	UsaSwimmingId string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
