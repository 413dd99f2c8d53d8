package service

import (
	"testing"
	"time"

	"swimtrack-be/pkg/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCacheRemember(t *testing.T) {
	c := NewListCache(time.Minute)
	loads := 0
	load := func() (interface{}, error) {
		loads++
		return loads, nil
	}

	v, err := c.Remember(selection.KindResult, "team_id=a", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, _ = c.Remember(selection.KindResult, "team_id=a", load)
	assert.Equal(t, 1, v)

	v, _ = c.Remember(selection.KindResult, "team_id=b", load)
	assert.Equal(t, 2, v)
}

func TestListCacheInvalidateFlushesDependents(t *testing.T) {
	c := NewListCache(time.Minute)
	for _, k := range selection.Kinds {
		_, err := c.Remember(k, "all", func() (interface{}, error) { return string(k), nil })
		require.NoError(t, err)
	}

	c.Invalidate(selection.KindPerson)

	cached := func(k selection.Kind) bool {
		_, found := c.caches[k].Get("all")
		return found
	}
	assert.False(t, cached(selection.KindPerson))
	assert.False(t, cached(selection.KindAthlete))
	assert.False(t, cached(selection.KindResult))
	assert.True(t, cached(selection.KindTeam))
	assert.True(t, cached(selection.KindSeason))
	assert.True(t, cached(selection.KindMeet))
	assert.True(t, cached(selection.KindEvent))
}

func TestListCacheDropsValueComputedAcrossInvalidate(t *testing.T) {
	c := NewListCache(time.Minute)

	v, err := c.Remember(selection.KindTeam, "all", func() (interface{}, error) {
		c.Invalidate(selection.KindTeam)
		return "stale", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "stale", v)

	_, found := c.caches[selection.KindTeam].Get("all")
	assert.False(t, found)
}

func TestListCacheDisabled(t *testing.T) {
	var nilCache *ListCache
	for _, c := range []*ListCache{NewListCache(0), nilCache} {
		loads := 0
		for i := 0; i < 2; i++ {
			_, err := c.Remember(selection.KindTeam, "all", func() (interface{}, error) {
				loads++
				return nil, nil
			})
			require.NoError(t, err)
		}
		assert.Equal(t, 2, loads)
		c.Invalidate(selection.KindTeam)
	}
}
