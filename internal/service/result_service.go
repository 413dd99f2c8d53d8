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

type IResultService interface {
	CrudService[dto.ResultRequest, dto.ResultResponse]
}

type resultService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewResultService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) IResultService {
	return &resultService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *resultService) List(ctx context.Context) (*dto.ListResponse[dto.ResultResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindResult, uow.ResultRepository(),
		[]specification.Specification{
			specification.OrderBy{Field: "event_id"},
			specification.OrderBy{Field: "time_hundredths"},
		},
		s.buildResponses,
	)
}

// resultJoins holds the display names looked up for a page of results.
type resultJoins struct {
	athleteNames map[uuid.UUID]string
	eventLabels  map[uuid.UUID]string
	meetNames    map[uuid.UUID]string
}

func (s *resultService) buildResponses(ctx context.Context, results []*entity.Result) ([]dto.ResultResponse, error) {
	joins, err := s.loadJoins(ctx, results)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		items = append(items, toResultResponse(r, joins))
	}
	return items, nil
}

// loadJoins fetches athletes, people, events and meets in QueryLimit-sized
// chunks.
func (s *resultService) loadJoins(ctx context.Context, results []*entity.Result) (*resultJoins, error) {
	athleteIds := make([]uuid.UUID, 0, len(results))
	eventIds := make([]uuid.UUID, 0, len(results))
	meetIds := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		athleteIds = append(athleteIds, r.AthleteId)
		eventIds = append(eventIds, r.EventId)
		meetIds = append(meetIds, r.MeetId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	limit := s.scope.QueryLimit

	athletes, err := uow.AthleteRepository().FindByIDsChunked(ctx, athleteIds, limit)
	if err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}
	personIds := make([]uuid.UUID, 0, len(athletes))
	for _, a := range athletes {
		personIds = append(personIds, a.PersonId)
	}
	people, err := uow.PersonRepository().FindByIDsChunked(ctx, personIds, limit)
	if err != nil {
		return nil, fmt.Errorf("load people: %w", err)
	}
	evts, err := uow.EventRepository().FindByIDsChunked(ctx, eventIds, limit)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	meets, err := uow.MeetRepository().FindByIDsChunked(ctx, meetIds, limit)
	if err != nil {
		return nil, fmt.Errorf("load meets: %w", err)
	}

	names := make(map[uuid.UUID]string, len(people))
	for _, p := range people {
		names[p.Id] = p.FullName()
	}
	joins := &resultJoins{
		athleteNames: make(map[uuid.UUID]string, len(athletes)),
		eventLabels:  make(map[uuid.UUID]string, len(evts)),
		meetNames:    make(map[uuid.UUID]string, len(meets)),
	}
	for _, a := range athletes {
		joins.athleteNames[a.Id] = names[a.PersonId]
	}
	for _, e := range evts {
		joins.eventLabels[e.Id] = e.Label()
	}
	for _, m := range meets {
		joins.meetNames[m.Id] = m.Name
	}
	return joins, nil
}

func (s *resultService) Show(ctx context.Context, id uuid.UUID) (*dto.ResultResponse, error) {
	result, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.buildResponses(ctx, []*entity.Result{result})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *resultService) Create(ctx context.Context, req *dto.ResultRequest) (*dto.ResultResponse, error) {
	result := entity.Result{}
	if err := s.apply(ctx, &result, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ResultRepository().Create(ctx, &result); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindResult)

	return s.Show(ctx, result.Id)
}

func (s *resultService) Update(ctx context.Context, id uuid.UUID, req *dto.ResultRequest) (*dto.ResultResponse, error) {
	result, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, result, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ResultRepository().Update(ctx, result); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindResult)

	return s.Show(ctx, id)
}

func (s *resultService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ResultRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindResult)
	return nil
}

// apply parses times and denormalizes team and season from the athlete so
// result lists can filter on them directly.
func (s *resultService) apply(ctx context.Context, result *entity.Result, req *dto.ResultRequest) error {
	hundredths, err := utils.ParseSwimTime(req.Time)
	if err != nil {
		return err
	}
	splits, err := parseSplits(req.Splits)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	athlete, err := uow.AthleteRepository().FindOne(ctx, specification.ByID{ID: req.AthleteId})
	if err != nil {
		return err
	}
	if athlete == nil {
		return fmt.Errorf("athlete %s: %w", req.AthleteId, contract.ErrReferenceNotFound)
	}

	result.AthleteId = athlete.Id
	result.TeamId = athlete.TeamId
	result.SeasonId = athlete.SeasonId
	result.MeetId = req.MeetId
	result.EventId = req.EventId
	result.TimeHundredths = hundredths
	result.Place = req.Place
	result.Splits = splits
	result.Disqualified = req.Disqualified
	return nil
}

// parseSplits requires cumulative splits to be non-decreasing.
func parseSplits(raw []string) ([]int, error) {
	splits := make([]int, 0, len(raw))
	prev := 0
	for i, s := range raw {
		h, err := utils.ParseSwimTime(s)
		if err != nil {
			return nil, fmt.Errorf("split %d: %w", i+1, err)
		}
		if h < prev {
			return nil, fmt.Errorf("split %d: %w: splits must be cumulative", i+1, utils.ErrInvalidTime)
		}
		prev = h
		splits = append(splits, h)
	}
	return splits, nil
}

func (s *resultService) find(ctx context.Context, id uuid.UUID) (*entity.Result, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	result, err := uow.ResultRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("result %s: %w", id, contract.ErrNotFound)
	}
	return result, nil
}

func toResultResponse(r *entity.Result, joins *resultJoins) dto.ResultResponse {
	splits := make([]string, 0, len(r.Splits))
	for _, h := range r.Splits {
		splits = append(splits, utils.FormatSwimTime(h))
	}
	return dto.ResultResponse{
		Id:             r.Id,
		AthleteId:      r.AthleteId,
		MeetId:         r.MeetId,
		EventId:        r.EventId,
		TeamId:         r.TeamId,
		SeasonId:       r.SeasonId,
		TimeHundredths: r.TimeHundredths,
		Time:           utils.FormatSwimTime(r.TimeHundredths),
		Place:          r.Place,
		Splits:         splits,
		Disqualified:   r.Disqualified,
		AthleteName:    joins.athleteNames[r.AthleteId],
		EventLabel:     joins.eventLabels[r.EventId],
		MeetName:       joins.meetNames[r.MeetId],
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
