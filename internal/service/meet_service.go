package service

import (
	"context"
	"fmt"

	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/pkg/selection"
	"swimtrack-be/pkg/utils"

	"github.com/google/uuid"
)

type IMeetService interface {
	CrudService[dto.MeetRequest, dto.MeetResponse]
}

type meetService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewMeetService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) IMeetService {
	return &meetService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *meetService) List(ctx context.Context) (*dto.ListResponse[dto.MeetResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindMeet, uow.MeetRepository(),
		[]specification.Specification{specification.OrderBy{Field: "start_date", Desc: true}},
		mapEach(toMeetResponse),
	)
}

func (s *meetService) Show(ctx context.Context, id uuid.UUID) (*dto.MeetResponse, error) {
	meet, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toMeetResponse(meet)
	return &res, nil
}

func (s *meetService) Create(ctx context.Context, req *dto.MeetRequest) (*dto.MeetResponse, error) {
	meet := entity.Meet{}
	if err := s.apply(ctx, &meet, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetRepository().Create(ctx, &meet); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindMeet)

	res := toMeetResponse(&meet)
	return &res, nil
}

func (s *meetService) Update(ctx context.Context, id uuid.UUID, req *dto.MeetRequest) (*dto.MeetResponse, error) {
	meet, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, meet, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetRepository().Update(ctx, meet); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindMeet)

	return s.Show(ctx, id)
}

func (s *meetService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindMeet)
	return nil
}

// apply copies the request onto meet, taking the team from the season.
func (s *meetService) apply(ctx context.Context, meet *entity.Meet, req *dto.MeetRequest) error {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return err
	}
	if err := checkDateOrder(start, end); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	season, err := uow.SeasonRepository().FindOne(ctx, specification.ByID{ID: req.SeasonId})
	if err != nil {
		return err
	}
	if season == nil {
		return fmt.Errorf("season %s: %w", req.SeasonId, contract.ErrReferenceNotFound)
	}

	meet.SeasonId = season.Id
	meet.TeamId = season.TeamId
	meet.Name = req.Name
	meet.Location = req.Location
	meet.Course = req.Course
	meet.StartDate = start
	meet.EndDate = end
	return nil
}

func (s *meetService) find(ctx context.Context, id uuid.UUID) (*entity.Meet, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meet, err := uow.MeetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if meet == nil {
		return nil, fmt.Errorf("meet %s: %w", id, contract.ErrNotFound)
	}
	return meet, nil
}

func toMeetResponse(m *entity.Meet) dto.MeetResponse {
	return dto.MeetResponse{
		Id:        m.Id,
		SeasonId:  m.SeasonId,
		TeamId:    m.TeamId,
		Name:      m.Name,
		Location:  m.Location,
		Course:    m.Course,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		DateRange: utils.FormatDateRange(m.StartDate, derefTime(m.EndDate)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
