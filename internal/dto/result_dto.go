package dto

import (
	"time"

	"github.com/google/uuid"
)

// Times are swim-time strings ("59.87", "1:02.34"). TeamId and SeasonId
// are taken from the athlete.
type ResultRequest struct {
	AthleteId    uuid.UUID `json:"athlete_id" validate:"required"`
	MeetId       uuid.UUID `json:"meet_id" validate:"required"`
	EventId      uuid.UUID `json:"event_id" validate:"required"`
	Time         string    `json:"time" validate:"required"`
	Place        int       `json:"place" validate:"gte=0"`
	Splits       []string  `json:"splits" validate:"max=64"`
	Disqualified bool      `json:"disqualified"`
}

type ResultResponse struct {
	Id             uuid.UUID  `json:"id"`
	AthleteId      uuid.UUID  `json:"athlete_id"`
	MeetId         uuid.UUID  `json:"meet_id"`
	EventId        uuid.UUID  `json:"event_id"`
	TeamId         uuid.UUID  `json:"team_id"`
	SeasonId       uuid.UUID  `json:"season_id"`
	TimeHundredths int        `json:"time_hundredths"`
	Time           string     `json:"time"`
	Place          int        `json:"place"`
	Splits         []string   `json:"splits"`
	Disqualified   bool       `json:"disqualified"`
	AthleteName    string     `json:"athlete_name"`
	EventLabel     string     `json:"event_label"`
	MeetName       string     `json:"meet_name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
