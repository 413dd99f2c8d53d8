package implementation

import (
	"context"
	"errors"
	"fmt"

	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgForeignKeyViolation = "23503"

// baseRepository carries the CRUD plumbing every domain repository shares.
// E is the domain entity, M the gorm model.
type baseRepository[E any, M any] struct {
	db     *gorm.DB
	mapper mapper.Mapper[E, M]
	idOf   func(*E) *uuid.UUID

	// columns owned by something other than the edit form
	updateOmit []string
}

func newBaseRepository[E any, M any](db *gorm.DB, mp mapper.Mapper[E, M], idOf func(*E) *uuid.UUID, updateOmit ...string) baseRepository[E, M] {
	return baseRepository[E, M]{db: db, mapper: mp, idOf: idOf, updateOmit: updateOmit}
}

func (r *baseRepository[E, M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *baseRepository[E, M]) Create(ctx context.Context, e *E) error {
	id := r.idOf(e)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateError(err)
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *baseRepository[E, M]) Update(ctx context.Context, e *E) error {
	if *r.idOf(e) == uuid.Nil {
		return contract.ErrNotFound
	}
	m := r.mapper.ToModel(e)
	omit := append([]string{"id", "created_at", "deleted_at", clause.Associations}, r.updateOmit...)
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit(omit...).Updates(m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *baseRepository[E, M]) Delete(ctx context.Context, id uuid.UUID) error {
	var m M
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *baseRepository[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *baseRepository[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return mapper.ToEntities(r.mapper, models), nil
}

func (r *baseRepository[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&m), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *baseRepository[E, M]) FindByIDsChunked(ctx context.Context, ids []uuid.UUID, chunkSize int) ([]*E, error) {
	out := make([]*E, 0, len(ids))
	for _, chunk := range ChunkIDs(ids, chunkSize) {
		found, err := r.FindAll(ctx, specification.ByIDs{IDs: chunk})
		if err != nil {
			return nil, fmt.Errorf("chunked lookup: %w", err)
		}
		out = append(out, found...)
	}
	return out, nil
}

// ChunkIDs deduplicates ids and splits them into slices of at most size.
// A size below one yields a single chunk.
func ChunkIDs(ids []uuid.UUID, size int) [][]uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil
	}
	if size < 1 {
		return [][]uuid.UUID{unique}
	}

	chunks := make([][]uuid.UUID, 0, (len(unique)+size-1)/size)
	for start := 0; start < len(unique); start += size {
		end := start + size
		if end > len(unique) {
			end = len(unique)
		}
		chunks = append(chunks, unique[start:end])
	}
	return chunks
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", contract.ErrReferenceNotFound, pgErr.ConstraintName)
	}
	return err
}
