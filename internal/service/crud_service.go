package service

import (
	"context"

	"swimtrack-be/internal/dto"

	"github.com/google/uuid"
)

// CrudService is the surface each record kind exposes to its controller.
type CrudService[Req any, Res any] interface {
	List(ctx context.Context) (*dto.ListResponse[Res], error)
	Show(ctx context.Context, id uuid.UUID) (*Res, error)
	Create(ctx context.Context, req *Req) (*Res, error)
	Update(ctx context.Context, id uuid.UUID, req *Req) (*Res, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
