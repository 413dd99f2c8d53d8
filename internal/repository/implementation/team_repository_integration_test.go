package implementation

import (
	"context"
	"os"
	"testing"

	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/model"
	"swimtrack-be/internal/repository/contract"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set")
	}
	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Team{}))
	return db
}

func TestTeamRepositoryAdjustSeasonCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTeamRepository(db)

	team := &entity.Team{Name: "Counter Test " + uuid.NewString()[:8], ShortName: "CT"}
	require.NoError(t, repo.Create(ctx, team))
	t.Cleanup(func() {
		db.Unscoped().Delete(&model.Team{}, "id = ?", team.Id)
	})

	require.NoError(t, repo.AdjustSeasonCount(ctx, team.Id, 1))
	require.NoError(t, repo.AdjustSeasonCount(ctx, team.Id, 1))
	require.NoError(t, repo.AdjustSeasonCount(ctx, team.Id, -1))

	// A plain update must not overwrite the counter.
	team.City = "Riverside"
	require.NoError(t, repo.Update(ctx, team))

	got, err := repo.FindOne(ctx, specification.ByID{ID: team.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.SeasonCount)
	assert.Equal(t, "Riverside", got.City)

	require.NoError(t, repo.AdjustSeasonCount(ctx, team.Id, -1))
	require.NoError(t, repo.AdjustSeasonCount(ctx, team.Id, -1))
	got, err = repo.FindOne(ctx, specification.ByID{ID: team.Id})
	require.NoError(t, err)
	assert.Equal(t, 0, got.SeasonCount)

	assert.ErrorIs(t, repo.AdjustSeasonCount(ctx, uuid.New(), 1), contract.ErrNotFound)
}

func TestTeamRepositoryScopedFind(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewTeamRepository(db)

	a := &entity.Team{Name: "Scope A " + uuid.NewString()[:8]}
	b := &entity.Team{Name: "Scope B " + uuid.NewString()[:8]}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	t.Cleanup(func() {
		db.Unscoped().Delete(&model.Team{}, "id IN ?", []uuid.UUID{a.Id, b.Id})
	})

	found, err := repo.FindAll(ctx, specification.ByFieldIn{Field: "id", IDs: []string{a.Id.String(), "not-a-uuid"}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.Id, found[0].Id)

	found, err = repo.FindAll(ctx, specification.ByFieldIn{Field: "id", IDs: []string{"not-a-uuid"}})
	require.NoError(t, err)
	assert.Empty(t, found)

	chunked, err := repo.FindByIDsChunked(ctx, []uuid.UUID{a.Id, b.Id, a.Id}, 1)
	require.NoError(t, err)
	assert.Len(t, chunked, 2)

	require.NoError(t, repo.Delete(ctx, a.Id))
	assert.ErrorIs(t, repo.Delete(ctx, a.Id), contract.ErrNotFound)
}
