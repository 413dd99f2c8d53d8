package entity

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id          uuid.UUID
	Name        string
	ShortName   string
	City        string
	SeasonCount int // maintained by the season counter worker
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
