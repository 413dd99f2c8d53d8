package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SEASON_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Handler processes one delivered event.
type Handler func(ctx context.Context, event Event) error

const (
	TypeSeasonCreated = "SEASON_CREATED"
	TypeSeasonDeleted = "SEASON_DELETED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSeasonEvent builds a SEASON_CREATED or SEASON_DELETED event.
func NewSeasonEvent(eventType string, seasonId, teamId uuid.UUID) BaseEvent {
	now := time.Now()
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"season_id":   seasonId.String(),
			"team_id":     teamId.String(),
			"entity_type": "season",
			"entity_id":   seasonId.String(),
			"occurred_at": now.Format(time.RFC3339Nano),
		},
		OccurredAt: now,
	}
}

// SeasonRef is the typed view of a season event payload.
type SeasonRef struct {
	SeasonId uuid.UUID
	TeamId   uuid.UUID
}

// ParseSeasonRef extracts the season and team ids from a season event.
func ParseSeasonRef(e Event) (SeasonRef, error) {
	payload := e.Payload()
	seasonId, err := uuidField(payload, "season_id")
	if err != nil {
		return SeasonRef{}, err
	}
	teamId, err := uuidField(payload, "team_id")
	if err != nil {
		return SeasonRef{}, err
	}
	return SeasonRef{SeasonId: seasonId, TeamId: teamId}, nil
}

func uuidField(payload map[string]interface{}, key string) (uuid.UUID, error) {
	raw, ok := payload[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("event payload missing %s", key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("event payload %s: %w", key, err)
	}
	return id, nil
}
