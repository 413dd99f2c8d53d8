package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type SeasonMapper struct{}

func NewSeasonMapper() *SeasonMapper {
	return &SeasonMapper{}
}

func (m *SeasonMapper) ToEntity(s *model.Season) *entity.Season {
	if s == nil {
		return nil
	}
	return &entity.Season{
		Id:        s.Id,
		TeamId:    s.TeamId,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAtPtr(s.UpdatedAt),
	}
}

func (m *SeasonMapper) ToModel(s *entity.Season) *model.Season {
	if s == nil {
		return nil
	}
	return &model.Season{
		Id:        s.Id,
		TeamId:    s.TeamId,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAtValue(s.UpdatedAt),
	}
}
