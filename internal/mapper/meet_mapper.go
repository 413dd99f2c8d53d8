package mapper

import (
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
)

type MeetMapper struct{}

func NewMeetMapper() *MeetMapper {
	return &MeetMapper{}
}

func (m *MeetMapper) ToEntity(mt *model.Meet) *entity.Meet {
	if mt == nil {
		return nil
	}
	return &entity.Meet{
		Id:        mt.Id,
		SeasonId:  mt.SeasonId,
		TeamId:    mt.TeamId,
		Name:      mt.Name,
		Location:  mt.Location,
		Course:    mt.Course,
		StartDate: mt.StartDate,
		EndDate:   mt.EndDate,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAtPtr(mt.UpdatedAt),
	}
}

func (m *MeetMapper) ToModel(mt *entity.Meet) *model.Meet {
	if mt == nil {
		return nil
	}
	return &model.Meet{
		Id:        mt.Id,
		SeasonId:  mt.SeasonId,
		TeamId:    mt.TeamId,
		Name:      mt.Name,
		Location:  mt.Location,
		Course:    mt.Course,
		StartDate: mt.StartDate,
		EndDate:   mt.EndDate,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAtValue(mt.UpdatedAt),
	}
}
