package contract

import (
	"context"
	"errors"

	"swimtrack-be/internal/repository/specification"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// Repository is the CRUD surface shared by every domain record. FindOne
// returns (nil, nil) when nothing matches.
type Repository[E any] interface {
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByIDsChunked looks ids up in batches of at most chunkSize so no
	// single IN predicate grows past the query limit.
	FindByIDsChunked(ctx context.Context, ids []uuid.UUID, chunkSize int) ([]*E, error)
}
