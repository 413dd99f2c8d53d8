package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type athleteRepository struct {
	baseRepository[entity.Athlete, model.Athlete]
}

func NewAthleteRepository(db *gorm.DB) contract.AthleteRepository {
	return &athleteRepository{
		baseRepository: newBaseRepository[entity.Athlete, model.Athlete](
			db,
			mapper.NewAthleteMapper(),
			func(e *entity.Athlete) *uuid.UUID { return &e.Id },
		),
	}
}
