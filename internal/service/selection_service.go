package service

import (
	"context"

	"swimtrack-be/internal/dto"
	"swimtrack-be/pkg/selection"
)

type ISelectionService interface {
	Snapshot(ctx context.Context) selection.View
	Toggle(ctx context.Context, kind string, id string) (*dto.ToggleSelectionResponse, error)
	ClearSelected(ctx context.Context, kind string) (selection.View, error)
	ClearSuperSelected(ctx context.Context, kind string) (selection.View, error)
	ClearAll(ctx context.Context) selection.View
}

type selectionService struct {
	engine *selection.Engine
}

func NewSelectionService(engine *selection.Engine) ISelectionService {
	return &selectionService{engine: engine}
}

func (s *selectionService) Snapshot(ctx context.Context) selection.View {
	return s.engine.Snapshot().View()
}

func (s *selectionService) Toggle(ctx context.Context, rawKind string, id string) (*dto.ToggleSelectionResponse, error) {
	kind, err := selection.ParseKind(rawKind)
	if err != nil {
		return nil, err
	}

	tier, err := s.engine.Toggle(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleSelectionResponse{Kind: kind, Id: id, Tier: tier}, nil
}

func (s *selectionService) ClearSelected(ctx context.Context, rawKind string) (selection.View, error) {
	kind, err := selection.ParseKind(rawKind)
	if err != nil {
		return selection.View{}, err
	}
	if err := s.engine.ClearSelected(ctx, kind); err != nil {
		return selection.View{}, err
	}
	return s.Snapshot(ctx), nil
}

func (s *selectionService) ClearSuperSelected(ctx context.Context, rawKind string) (selection.View, error) {
	kind, err := selection.ParseKind(rawKind)
	if err != nil {
		return selection.View{}, err
	}
	if err := s.engine.ClearSuperSelected(ctx, kind); err != nil {
		return selection.View{}, err
	}
	return s.Snapshot(ctx), nil
}

func (s *selectionService) ClearAll(ctx context.Context) selection.View {
	s.engine.ClearAll(ctx)
	return s.Snapshot(ctx)
}
