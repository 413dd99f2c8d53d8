package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"swimtrack-be/internal/entity"
	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/pkg/scope"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonRecords(n int) []*entity.Season {
	out := make([]*entity.Season, n)
	for i := range out {
		out[i] = &entity.Season{Id: uuid.New(), Name: "Season"}
	}
	return out
}

func nameOf(s *entity.Season) string { return s.Name }

func TestScopedListDisabledSkipsQuery(t *testing.T) {
	repo := &fakeRepository[entity.Season]{records: seasonRecords(2)}
	ls := NewListScope(&staticSelection{state: selection.NewState()}, 30, NewListCache(0))

	res, err := scopedList(context.Background(), ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)

	assert.False(t, res.Enabled)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.NotNil(t, res.Filters)
	assert.Empty(t, repo.findAlls, "a disabled decision must not reach the store")
}

func TestScopedListAppliesFiltersBeforeOrder(t *testing.T) {
	state := selection.NewState()
	state.SuperSelected[selection.KindTeam]["t1"] = struct{}{}

	repo := &fakeRepository[entity.Season]{records: seasonRecords(3)}
	ls := NewListScope(&staticSelection{state: state}, 30, NewListCache(0))
	order := []specification.Specification{specification.OrderBy{Field: "start_date", Desc: true}}

	res, err := scopedList(context.Background(), ls, selection.KindSeason, repo, order, mapEach(nameOf))
	require.NoError(t, err)

	assert.True(t, res.Enabled)
	assert.Equal(t, []scope.Filter{{Kind: selection.KindTeam, Field: "team_id", IDs: []string{"t1"}}}, res.Filters)
	assert.Len(t, res.Items, 3)
	require.Len(t, repo.findAlls, 1)
	assert.Equal(t, []specification.Specification{
		specification.ByFieldIn{Field: "team_id", IDs: []string{"t1"}},
		specification.OrderBy{Field: "start_date", Desc: true},
	}, repo.findAlls[0])
}

func TestScopedListOverLimitDisables(t *testing.T) {
	state := selection.NewState()
	for _, id := range []string{"a", "b", "c"} {
		state.SuperSelected[selection.KindTeam][id] = struct{}{}
	}

	repo := &fakeRepository[entity.Season]{records: seasonRecords(1)}
	ls := NewListScope(&staticSelection{state: state}, 2, nil)

	res, err := scopedList(context.Background(), ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)
	assert.False(t, res.Enabled)
	assert.Empty(t, repo.findAlls)
}

func TestScopedListCachesPerFilterTuple(t *testing.T) {
	sel := &staticSelection{state: selection.NewState()}
	sel.state.SuperSelected[selection.KindTeam]["t1"] = struct{}{}

	repo := &fakeRepository[entity.Season]{records: seasonRecords(1)}
	ls := NewListScope(sel, 30, NewListCache(time.Minute))
	ctx := context.Background()

	_, err := scopedList(ctx, ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)
	_, err = scopedList(ctx, ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)
	assert.Len(t, repo.findAlls, 1, "same selection should be served from cache")

	sel.state.SuperSelected[selection.KindTeam]["t2"] = struct{}{}
	res, err := scopedList(ctx, ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)
	assert.Len(t, repo.findAlls, 2, "a new selection must not reuse the old response")
	assert.Equal(t, []string{"t1", "t2"}, res.Filters[0].IDs)

	ls.Cache.Invalidate(selection.KindTeam)
	_, err = scopedList(ctx, ls, selection.KindSeason, repo, nil, mapEach(nameOf))
	require.NoError(t, err)
	assert.Len(t, repo.findAlls, 3, "team writes flush season lists")
}

func TestScopedListPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepository[entity.Team]{findErr: boom}
	ls := NewListScope(&staticSelection{state: selection.NewState()}, 0, NewListCache(time.Minute))

	_, err := scopedList(context.Background(), ls, selection.KindTeam, repo, nil, mapEach(toTeamResponse))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, scope.DefaultQueryLimit, ls.QueryLimit)
}
