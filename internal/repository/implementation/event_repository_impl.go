package implementation

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct {
	baseRepository[entity.Event, model.Event]
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &eventRepository{
		baseRepository: newBaseRepository[entity.Event, model.Event](
			db,
			mapper.NewEventMapper(),
			func(e *entity.Event) *uuid.UUID { return &e.Id },
		),
	}
}
