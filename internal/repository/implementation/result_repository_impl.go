package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resultRepository struct {
	baseRepository[entity.Result, model.Result]
}

func NewResultRepository(db *gorm.DB) contract.ResultRepository {
	return &resultRepository{
		baseRepository: newBaseRepository[entity.Result, model.Result](
			db,
			mapper.NewResultMapper(),
			func(e *entity.Result) *uuid.UUID { return &e.Id },
		),
	}
}
