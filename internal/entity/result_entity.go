package entity

import (
	"time"

	"github.com/google/uuid"
)

type Result struct {
	Id             uuid.UUID
	AthleteId      uuid.UUID
	MeetId         uuid.UUID
	EventId        uuid.UUID
	TeamId         uuid.UUID
	SeasonId       uuid.UUID
	TimeHundredths int
	Place          int
	Splits         []int // cumulative, hundredths
	Disqualified   bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
