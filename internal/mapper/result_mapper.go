package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"

	"gorm.io/datatypes"
)

type ResultMapper struct{}

func NewResultMapper() *ResultMapper {
	return &ResultMapper{}
}

func (m *ResultMapper) ToEntity(r *model.Result) *entity.Result {
	if r == nil {
		return nil
	}
	splits := make([]int, len(r.Splits))
	copy(splits, r.Splits)

	return &entity.Result{
		Id:             r.Id,
		AthleteId:      r.AthleteId,
		MeetId:         r.MeetId,
		EventId:        r.EventId,
		TeamId:         r.TeamId,
		SeasonId:       r.SeasonId,
		TimeHundredths: r.TimeHundredths,
		Place:          r.Place,
		Splits:         splits,
		Disqualified:   r.Disqualified,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAtPtr(r.UpdatedAt),
	}
}

func (m *ResultMapper) ToModel(r *entity.Result) *model.Result {
	if r == nil {
		return nil
	}
	splits := make(datatypes.JSONSlice[int], len(r.Splits))
	copy(splits, r.Splits)

	return &model.Result{
		Id:             r.Id,
		AthleteId:      r.AthleteId,
		MeetId:         r.MeetId,
		EventId:        r.EventId,
		TeamId:         r.TeamId,
		SeasonId:       r.SeasonId,
		TimeHundredths: r.TimeHundredths,
		Place:          r.Place,
		Splits:         splits,
		Disqualified:   r.Disqualified,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAtValue(r.UpdatedAt),
	}
}
