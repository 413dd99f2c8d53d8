package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}
	return &entity.Event{
		Id:        e.Id,
		Distance:  e.Distance,
		Stroke:    e.Stroke,
		Course:    e.Course,
		Gender:    e.Gender,
		Relay:     e.Relay,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAtPtr(e.UpdatedAt),
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}
	return &model.Event{
		Id:        e.Id,
		Distance:  e.Distance,
		Stroke:    e.Stroke,
		Course:    e.Course,
		Gender:    e.Gender,
		Relay:     e.Relay,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAtValue(e.UpdatedAt),
	}
}
