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

	"github.com/google/uuid"
)

type IEventService interface {
	CrudService[dto.EventRequest, dto.EventResponse]
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) IEventService {
	return &eventService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *eventService) List(ctx context.Context) (*dto.ListResponse[dto.EventResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindEvent, uow.EventRepository(),
		[]specification.Specification{
			specification.OrderBy{Field: "sort_order"},
			specification.OrderBy{Field: "distance"},
		},
		mapEach(toEventResponse),
	)
}

func (s *eventService) Show(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toEventResponse(event)
	return &res, nil
}

func (s *eventService) Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	event := entity.Event{}
	applyEvent(&event, req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindEvent)

	res := toEventResponse(&event)
	return &res, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyEvent(event, req)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Update(ctx, event); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindEvent)

	return s.Show(ctx, id)
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindEvent)
	return nil
}

func (s *eventService) find(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", id, contract.ErrNotFound)
	}
	return event, nil
}

func applyEvent(e *entity.Event, req *dto.EventRequest) {
	e.Distance = req.Distance
	e.Stroke = req.Stroke
	e.Course = req.Course
	e.Gender = req.Gender
	e.Relay = req.Relay
	e.SortOrder = req.SortOrder
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		Id:        e.Id,
		Distance:  e.Distance,
		Stroke:    e.Stroke,
		Course:    e.Course,
		Gender:    e.Gender,
		Relay:     e.Relay,
		SortOrder: e.SortOrder,
		Label:     e.Label(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
