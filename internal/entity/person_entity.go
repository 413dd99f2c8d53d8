package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Person struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	BirthDate *time.Time
	Gender    string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
