package entity

import (
	"time"

	"github.com/google/uuid"
)

type Season struct {
	Id        uuid.UUID
	TeamId    uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
