package service

import (
	"context"
	"errors"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/pkg/events"
	pkgNats "swimtrack-be/pkg/nats"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
)

// ErrTeamNotFound is what a SeasonCounter returns for a missing team.
var ErrTeamNotFound = contract.ErrNotFound

// SeasonCounter atomically moves a team's season_count.
type SeasonCounter interface {
	AdjustSeasonCount(ctx context.Context, teamId uuid.UUID, delta int) error
}

// SeasonCounterService keeps teams.season_count in step with season
// create/delete events. Every delivery is acknowledged: a failed adjustment
// is logged and the counter is allowed to drift.
type SeasonCounterService struct {
	counter SeasonCounter
	cache   *ListCache
	logger  logger.ILogger
}

func NewSeasonCounterService(counter SeasonCounter, cache *ListCache, log logger.ILogger) *SeasonCounterService {
	return &SeasonCounterService{
		counter: counter,
		cache:   cache,
		logger:  log,
	}
}

// StartNats binds one durable consumer per season event type.
func (s *SeasonCounterService) StartNats(sub *pkgNats.Subscriber) error {
	for _, eventType := range []string{events.TypeSeasonCreated, events.TypeSeasonDeleted} {
		subject := pkgNats.SubjectPrefix + eventType
		durable := "season-counter-" + eventType
		if err := sub.Subscribe(subject, durable, s.Handle); err != nil {
			return err
		}
	}
	s.logger.Info("SeasonCounter", "Season counter listening on NATS", nil)
	return nil
}

// Handle applies one season event. It always returns nil so the message is
// acked.
func (s *SeasonCounterService) Handle(ctx context.Context, event events.Event) error {
	var delta int
	switch event.EventType() {
	case events.TypeSeasonCreated:
		delta = 1
	case events.TypeSeasonDeleted:
		delta = -1
	default:
		return nil
	}

	ref, err := events.ParseSeasonRef(event)
	if err != nil {
		s.logger.Error("SeasonCounter", "Dropping malformed season event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return nil
	}

	details := map[string]interface{}{
		"type":      event.EventType(),
		"season_id": ref.SeasonId.String(),
		"team_id":   ref.TeamId.String(),
	}

	if err := s.counter.AdjustSeasonCount(ctx, ref.TeamId, delta); err != nil {
		details["error"] = err.Error()
		if errors.Is(err, ErrTeamNotFound) {
			s.logger.Warn("SeasonCounter", "Team missing, season count not adjusted", details)
		} else {
			s.logger.Error("SeasonCounter", "Failed to adjust season count", details)
		}
		return nil
	}

	s.cache.Invalidate(selection.KindTeam)
	s.logger.Debug("SeasonCounter", "Season count adjusted", details)
	return nil
}
