package entity

import (
	"time"

	"github.com/google/uuid"
)

type Meet struct {
	Id        uuid.UUID
	SeasonId  uuid.UUID
	TeamId    uuid.UUID
	Name      string
	Location  string
	Course    string
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
