package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
)

type IAthleteService interface {
	CrudService[dto.AthleteRequest, dto.AthleteResponse]
}

type athleteService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewAthleteService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) IAthleteService {
	return &athleteService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *athleteService) List(ctx context.Context) (*dto.ListResponse[dto.AthleteResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindAthlete, uow.AthleteRepository(),
		[]specification.Specification{specification.OrderBy{Field: "created_at"}},
		s.buildResponses,
	)
}

// buildResponses joins each athlete with its person and sorts by name.
func (s *athleteService) buildResponses(ctx context.Context, athletes []*entity.Athlete) ([]dto.AthleteResponse, error) {
	personIds := make([]uuid.UUID, 0, len(athletes))
	for _, a := range athletes {
		personIds = append(personIds, a.PersonId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	people, err := uow.PersonRepository().FindByIDsChunked(ctx, personIds, s.scope.QueryLimit)
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Person, len(people))
	for _, p := range people {
		byId[p.Id] = p
	}

	items := make([]dto.AthleteResponse, 0, len(athletes))
	for _, a := range athletes {
		items = append(items, toAthleteResponse(a, byId[a.PersonId]))
	}
	sort.SliceStable(items, func(i, j int) bool {
		li, lj := strings.ToLower(items[i].LastName), strings.ToLower(items[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(items[i].FirstName) < strings.ToLower(items[j].FirstName)
	})
	return items, nil
}

func (s *athleteService) Show(ctx context.Context, id uuid.UUID) (*dto.AthleteResponse, error) {
	athlete, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.buildResponses(ctx, []*entity.Athlete{athlete})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *athleteService) Create(ctx context.Context, req *dto.AthleteRequest) (*dto.AthleteResponse, error) {
	athlete := entity.Athlete{}
	if err := s.apply(ctx, &athlete, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AthleteRepository().Create(ctx, &athlete); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindAthlete)

	return s.Show(ctx, athlete.Id)
}

func (s *athleteService) Update(ctx context.Context, id uuid.UUID, req *dto.AthleteRequest) (*dto.AthleteResponse, error) {
	athlete, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, athlete, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AthleteRepository().Update(ctx, athlete); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindAthlete)

	return s.Show(ctx, id)
}

func (s *athleteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AthleteRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindAthlete)
	return nil
}

// apply copies the request onto athlete, taking the team from the season.
func (s *athleteService) apply(ctx context.Context, athlete *entity.Athlete, req *dto.AthleteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	season, err := uow.SeasonRepository().FindOne(ctx, specification.ByID{ID: req.SeasonId})
	if err != nil {
		return err
	}
	if season == nil {
		return fmt.Errorf("season %s: %w", req.SeasonId, contract.ErrReferenceNotFound)
	}

	athlete.PersonId = req.PersonId
	athlete.SeasonId = season.Id
	athlete.TeamId = season.TeamId
	athlete.UsaSwimmingId = strings.TrimSpace(req.UsaSwimmingId)
	return nil
}

func (s *athleteService) find(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	athlete, err := uow.AthleteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, fmt.Errorf("athlete %s: %w", id, contract.ErrNotFound)
	}
	return athlete, nil
}

// person may be nil when the person row was removed.
func toAthleteResponse(a *entity.Athlete, person *entity.Person) dto.AthleteResponse {
	res := dto.AthleteResponse{
		Id:            a.Id,
		PersonId:      a.PersonId,
		TeamId:        a.TeamId,
		SeasonId:      a.SeasonId,
		UsaSwimmingId: a.UsaSwimmingId,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if person != nil {
		res.FirstName = person.FirstName
		res.LastName = person.LastName
		res.FullName = person.FullName()
		res.Age = ageOf(person.BirthDate)
	}
	return res
}
