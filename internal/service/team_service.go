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

type ITeamService interface {
	CrudService[dto.TeamRequest, dto.TeamResponse]
}

type teamService struct {
	uowFactory unitofwork.RepositoryFactory
	scope      *ListScope
}

func NewTeamService(uowFactory unitofwork.RepositoryFactory, scope *ListScope) ITeamService {
	return &teamService{
		uowFactory: uowFactory,
		scope:      scope,
	}
}

func (s *teamService) List(ctx context.Context) (*dto.ListResponse[dto.TeamResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindTeam, uow.TeamRepository(),
		[]specification.Specification{specification.OrderBy{Field: "name"}},
		mapEach(toTeamResponse),
	)
}

func (s *teamService) Show(ctx context.Context, id uuid.UUID) (*dto.TeamResponse, error) {
	team, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toTeamResponse(team)
	return &res, nil
}

func (s *teamService) Create(ctx context.Context, req *dto.TeamRequest) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	team := entity.Team{
		Name:      req.Name,
		ShortName: req.ShortName,
		City:      req.City,
	}
	if err := uow.TeamRepository().Create(ctx, &team); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindTeam)

	res := toTeamResponse(&team)
	return &res, nil
}

func (s *teamService) Update(ctx context.Context, id uuid.UUID, req *dto.TeamRequest) (*dto.TeamResponse, error) {
	team, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Name = req.Name
	team.ShortName = req.ShortName
	team.City = req.City

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TeamRepository().Update(ctx, team); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindTeam)

	return s.Show(ctx, id)
}

func (s *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TeamRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindTeam)
	return nil
}

func (s *teamService) find(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("team %s: %w", id, contract.ErrNotFound)
	}
	return team, nil
}

func toTeamResponse(t *entity.Team) dto.TeamResponse {
	return dto.TeamResponse{
		Id:          t.Id,
		Name:        t.Name,
		ShortName:   t.ShortName,
		City:        t.City,
		SeasonCount: t.SeasonCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
