package service

import (
	"context"
	"fmt"

	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/internal/repository/unitofwork"
	"swimtrack-be/pkg/events"
	"swimtrack-be/pkg/selection"
	"swimtrack-be/pkg/utils"

	"github.com/google/uuid"
)

type ISeasonService interface {
	CrudService[dto.SeasonRequest, dto.SeasonResponse]
}

type seasonService struct {
	uowFactory       unitofwork.RepositoryFactory
	scope            *ListScope
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSeasonService(
	uowFactory unitofwork.RepositoryFactory,
	scope *ListScope,
	publisherService IPublisherService,
	log logger.ILogger,
) ISeasonService {
	return &seasonService{
		uowFactory:       uowFactory,
		scope:            scope,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *seasonService) List(ctx context.Context) (*dto.ListResponse[dto.SeasonResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return scopedList(ctx, s.scope, selection.KindSeason, uow.SeasonRepository(),
		[]specification.Specification{specification.OrderBy{Field: "start_date", Desc: true}},
		s.buildResponses,
	)
}

func (s *seasonService) buildResponses(ctx context.Context, seasons []*entity.Season) ([]dto.SeasonResponse, error) {
	teamIds := make([]uuid.UUID, 0, len(seasons))
	for _, season := range seasons {
		teamIds = append(teamIds, season.TeamId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	teams, err := uow.TeamRepository().FindByIDsChunked(ctx, teamIds, s.scope.QueryLimit)
	if err != nil {
		return nil, err
	}
	teamNames := make(map[uuid.UUID]string, len(teams))
	for _, t := range teams {
		teamNames[t.Id] = t.Name
	}

	items := make([]dto.SeasonResponse, 0, len(seasons))
	for _, season := range seasons {
		items = append(items, toSeasonResponse(season, teamNames[season.TeamId]))
	}
	return items, nil
}

func (s *seasonService) Show(ctx context.Context, id uuid.UUID) (*dto.SeasonResponse, error) {
	season, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.buildResponses(ctx, []*entity.Season{season})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *seasonService) Create(ctx context.Context, req *dto.SeasonRequest) (*dto.SeasonResponse, error) {
	season := entity.Season{TeamId: req.TeamId, Name: req.Name}
	if err := applySeasonDates(&season, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SeasonRepository().Create(ctx, &season); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindSeason)
	s.publish(ctx, events.TypeSeasonCreated, &season)

	return s.Show(ctx, season.Id)
}

func (s *seasonService) Update(ctx context.Context, id uuid.UUID, req *dto.SeasonRequest) (*dto.SeasonResponse, error) {
	season, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if season.TeamId != req.TeamId {
		// season_count is tracked per team; moving a season is a delete
		// plus a create so both triggers fire.
		return nil, fmt.Errorf("%w: team_id", ErrImmutableField)
	}
	season.Name = req.Name
	if err := applySeasonDates(season, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SeasonRepository().Update(ctx, season); err != nil {
		return nil, err
	}
	s.scope.Cache.Invalidate(selection.KindSeason)

	return s.Show(ctx, id)
}

func (s *seasonService) Delete(ctx context.Context, id uuid.UUID) error {
	season, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SeasonRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.scope.Cache.Invalidate(selection.KindSeason)
	s.publish(ctx, events.TypeSeasonDeleted, season)
	return nil
}

// publish is best effort: the season row is already committed and the
// counter tolerates drift.
func (s *seasonService) publish(ctx context.Context, eventType string, season *entity.Season) {
	event := events.NewSeasonEvent(eventType, season.Id, season.TeamId)
	if err := s.publisherService.Publish(ctx, event); err != nil {
		s.logger.Error("SeasonService", "Failed to publish season event", map[string]interface{}{
			"type":      eventType,
			"season_id": season.Id.String(),
			"team_id":   season.TeamId.String(),
			"error":     err.Error(),
		})
	}
}

func (s *seasonService) find(ctx context.Context, id uuid.UUID) (*entity.Season, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	season, err := uow.SeasonRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, fmt.Errorf("season %s: %w", id, contract.ErrNotFound)
	}
	return season, nil
}

func applySeasonDates(season *entity.Season, req *dto.SeasonRequest) error {
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
	season.StartDate = start
	season.EndDate = end
	return nil
}

func toSeasonResponse(s *entity.Season, teamName string) dto.SeasonResponse {
	return dto.SeasonResponse{
		Id:        s.Id,
		TeamId:    s.TeamId,
		TeamName:  teamName,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		DateRange: utils.FormatDateRange(s.StartDate, derefTime(s.EndDate)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
