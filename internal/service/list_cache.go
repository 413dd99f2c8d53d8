package service

import (
	"sync"
	"time"

	"swimtrack-be/pkg/selection"

	"github.com/patrickmn/go-cache"
)

// listDependents names the lists that embed data from a kind. A write to the
// key kind flushes every list in its value.
var listDependents = map[selection.Kind][]selection.Kind{
	selection.KindTeam:    {selection.KindTeam, selection.KindSeason},
	selection.KindSeason:  {selection.KindSeason},
	selection.KindMeet:    {selection.KindMeet, selection.KindResult},
	selection.KindEvent:   {selection.KindEvent, selection.KindResult},
	selection.KindPerson:  {selection.KindPerson, selection.KindAthlete, selection.KindResult},
	selection.KindAthlete: {selection.KindAthlete, selection.KindResult},
	selection.KindResult:  {selection.KindResult},
}

// ListCache memoizes list responses per kind, keyed by the full filter
// tuple of the decision that produced them. A zero TTL disables it.
type ListCache struct {
	mu          sync.Mutex
	caches      map[selection.Kind]*cache.Cache
	generations map[selection.Kind]uint64
	enabled     bool
}

func NewListCache(ttl time.Duration) *ListCache {
	c := &ListCache{
		caches:      make(map[selection.Kind]*cache.Cache, len(selection.Kinds)),
		generations: make(map[selection.Kind]uint64, len(selection.Kinds)),
		enabled:     ttl > 0,
	}
	for _, k := range selection.Kinds {
		c.caches[k] = cache.New(ttl, 2*ttl)
	}
	return c
}

// Remember returns the cached value for (kind, key) or computes it with
// load. A value computed across an Invalidate of kind is returned but not
// stored.
func (c *ListCache) Remember(kind selection.Kind, key string, load func() (interface{}, error)) (interface{}, error) {
	if c == nil || !c.enabled {
		return load()
	}

	store, ok := c.caches[kind]
	if !ok {
		return load()
	}
	if v, found := store.Get(key); found {
		return v, nil
	}

	c.mu.Lock()
	gen := c.generations[kind]
	c.mu.Unlock()

	v, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generations[kind] == gen {
		store.SetDefault(key, v)
	}
	c.mu.Unlock()
	return v, nil
}

// Invalidate flushes kind and every list that embeds it.
func (c *ListCache) Invalidate(kind selection.Kind) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range listDependents[kind] {
		c.generations[k]++
		if store, ok := c.caches[k]; ok {
			store.Flush()
		}
	}
}
