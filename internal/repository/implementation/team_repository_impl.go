package implementation

import (
	"context"

	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/mapper"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamRepository struct {
	baseRepository[entity.Team, model.Team]
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &teamRepository{
		baseRepository: newBaseRepository[entity.Team, model.Team](
			db,
			mapper.NewTeamMapper(),
			func(t *entity.Team) *uuid.UUID { return &t.Id },
			"season_count",
		),
	}
}

func (r *teamRepository) AdjustSeasonCount(ctx context.Context, id uuid.UUID, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", id).
		UpdateColumn("season_count", gorm.Expr("GREATEST(season_count + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}
