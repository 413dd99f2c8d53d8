package service

import (
	"context"

	"swimtrack-be/internal/dto"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/pkg/scope"
	"swimtrack-be/pkg/selection"
)

// SelectionReader is the read side of the selection engine.
type SelectionReader interface {
	Snapshot() selection.State
}

// ListScope bundles what every list endpoint needs to turn the current
// super-selection into a query.
type ListScope struct {
	Selection  SelectionReader
	QueryLimit int
	Cache      *ListCache
}

func NewListScope(sel SelectionReader, queryLimit int, cache *ListCache) *ListScope {
	if queryLimit <= 0 {
		queryLimit = scope.DefaultQueryLimit
	}
	return &ListScope{Selection: sel, QueryLimit: queryLimit, Cache: cache}
}

func (s *ListScope) decide(kind selection.Kind) scope.Decision {
	return scope.DecideFor(kind, s.Selection.Snapshot(), s.QueryLimit)
}

// scopedList runs the policy for kind and, when enabled, fetches the scoped
// records in order and shapes them with build.
func scopedList[E any, R any](
	ctx context.Context,
	s *ListScope,
	kind selection.Kind,
	repo contract.Repository[E],
	order []specification.Specification,
	build func(ctx context.Context, records []*E) ([]R, error),
) (*dto.ListResponse[R], error) {
	decision := s.decide(kind)
	if !decision.Enabled {
		return dto.DisabledList[R](), nil
	}

	v, err := s.Cache.Remember(kind, decision.Key(), func() (interface{}, error) {
		specs := append(specification.FromDecision(decision), order...)
		records, err := repo.FindAll(ctx, specs...)
		if err != nil {
			return nil, err
		}
		items, err := build(ctx, records)
		if err != nil {
			return nil, err
		}
		return &dto.ListResponse[R]{
			Enabled: true,
			Filters: decision.Filters,
			Items:   items,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.ListResponse[R]), nil
}

// mapEach shapes records that need no joins.
func mapEach[E any, R any](fn func(*E) R) func(context.Context, []*E) ([]R, error) {
	return func(_ context.Context, records []*E) ([]R, error) {
		items := make([]R, 0, len(records))
		for _, r := range records {
			items = append(items, fn(r))
		}
		return items, nil
	}
}
