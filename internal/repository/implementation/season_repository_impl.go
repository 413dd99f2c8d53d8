package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seasonRepository struct {
	baseRepository[entity.Season, model.Season]
}

func NewSeasonRepository(db *gorm.DB) contract.SeasonRepository {
	return &seasonRepository{
		baseRepository: newBaseRepository[entity.Season, model.Season](
			db,
			mapper.NewSeasonMapper(),
			func(e *entity.Season) *uuid.UUID { return &e.Id },
		),
	}
}
