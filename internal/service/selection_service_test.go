package service

import (
	"context"
	"testing"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/pkg/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectionService(t *testing.T) ISelectionService {
	t.Helper()
	engine := selection.NewEngine(context.Background(), selection.NewMemoryStore(selection.DefaultStateKey), logger.NewNopLogger())
	return NewSelectionService(engine)
}

func TestSelectionServiceToggleCycle(t *testing.T) {
	svc := newSelectionService(t)
	ctx := context.Background()

	want := []selection.Tier{selection.Selected, selection.SuperSelected, selection.Unselected}
	for _, tier := range want {
		res, err := svc.Toggle(ctx, "teams", "T1")
		require.NoError(t, err)
		assert.Equal(t, selection.KindTeam, res.Kind)
		assert.Equal(t, tier, res.Tier)
	}
}

func TestSelectionServiceRejectsUnknownKind(t *testing.T) {
	svc := newSelectionService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "coach", "C1")
	assert.ErrorIs(t, err, selection.ErrUnknownKind)

	_, err = svc.ClearSelected(ctx, "coach")
	assert.ErrorIs(t, err, selection.ErrUnknownKind)
}

func TestSelectionServiceClears(t *testing.T) {
	svc := newSelectionService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "meet", "M1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "meet", "M2")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "meet", "M2")
	require.NoError(t, err)

	view, err := svc.ClearSuperSelected(ctx, "meets")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, view.Selected[selection.KindMeet])
	assert.Empty(t, view.SuperSelected[selection.KindMeet])

	view, err = svc.ClearSelected(ctx, "meet")
	require.NoError(t, err)
	assert.Empty(t, view.Selected[selection.KindMeet])

	_, err = svc.Toggle(ctx, "person", "P1")
	require.NoError(t, err)
	view = svc.ClearAll(ctx)
	assert.Empty(t, view.Selected[selection.KindPerson])
}

func TestSelectionServiceKeepsIdsVerbatim(t *testing.T) {
	svc := newSelectionService(t)
	ctx := context.Background()

	res, err := svc.Toggle(ctx, "team", " A")
	require.NoError(t, err)
	assert.Equal(t, " A", res.Id)

	res, err = svc.Toggle(ctx, "team", "A")
	require.NoError(t, err)
	assert.Equal(t, selection.Selected, res.Tier)

	view := svc.Snapshot(ctx)
	assert.Equal(t, []string{" A", "A"}, view.Selected[selection.KindTeam])
}
