package dto

import (
	"time"

	"github.com/google/uuid"
)

type PersonRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender" validate:"omitempty,oneof=M F X"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type PersonResponse struct {
	Id        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	BirthDate *time.Time `json:"birth_date"`
	Age       *int       `json:"age"`
	Gender    string     `json:"gender"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
