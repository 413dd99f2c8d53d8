package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type AthleteMapper struct{}

func NewAthleteMapper() *AthleteMapper {
	return &AthleteMapper{}
}

func (m *AthleteMapper) ToEntity(a *model.Athlete) *entity.Athlete {
	if a == nil {
		return nil
	}
	return &entity.Athlete{
		Id:            a.Id,
		PersonId:      a.PersonId,
		TeamId:        a.TeamId,
		SeasonId:      a.SeasonId,
		UsaSwimmingId: a.UsaSwimmingId,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAtPtr(a.UpdatedAt),
	}
}

func (m *AthleteMapper) ToModel(a *entity.Athlete) *model.Athlete {
	if a == nil {
		return nil
	}
	return &model.Athlete{
		Id:            a.Id,
		PersonId:      a.PersonId,
		TeamId:        a.TeamId,
		SeasonId:      a.SeasonId,
		UsaSwimmingId: a.UsaSwimmingId,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAtValue(a.UpdatedAt),
	}
}
