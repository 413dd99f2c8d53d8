package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	CourseSCY = "SCY"
	CourseSCM = "SCM"
	CourseLCM = "LCM"
)

type Event struct {
	Id        uuid.UUID
	Distance  int
	Stroke    string
	Course    string
	Gender    string
	Relay     bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Label renders e.g. "100 Free SCY" or "200 Medley Relay LCM".
func (e *Event) Label() string {
	stroke := e.Stroke
	if e.Relay {
		stroke += " Relay"
	}
	return fmt.Sprintf("%d %s %s", e.Distance, stroke, e.Course)
}
