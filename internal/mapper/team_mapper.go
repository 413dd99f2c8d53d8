package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:          t.Id,
		Name:        t.Name,
		ShortName:   t.ShortName,
		City:        t.City,
		SeasonCount: t.SeasonCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}
	return &model.Team{
		Id:          t.Id,
		Name:        t.Name,
		ShortName:   t.ShortName,
		City:        t.City,
		SeasonCount: t.SeasonCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtValue(t.UpdatedAt),
	}
}
