package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type meetRepository struct {
	baseRepository[entity.Meet, model.Meet]
}

func NewMeetRepository(db *gorm.DB) contract.MeetRepository {
	return &meetRepository{
		baseRepository: newBaseRepository[entity.Meet, model.Meet](
			db,
			mapper.NewMeetMapper(),
			func(e *entity.Meet) *uuid.UUID { return &e.Id },
		),
	}
}
