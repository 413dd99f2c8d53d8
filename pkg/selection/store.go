package selection

import (
	"context"
	"errors"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// DefaultStateKey namespaces the persisted snapshot. Bump the suffix when the
// snapshot layout changes.
const DefaultStateKey = "swimtrack:selection:v1"

var ErrSnapshotNotFound = errors.New("selection snapshot not found")

// Store is the durable home of one encoded snapshot.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// RedisStore keeps the snapshot under a single Redis key with no expiry.
type RedisStore struct {
	rdb redis.Cmdable
	key string
}

func NewRedisStore(rdb redis.Cmdable, key string) *RedisStore {
	if key == "" {
		key = DefaultStateKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	return data, err
}

func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key).Err()
}

// MemoryStore is a process-local Store, used when Redis is unavailable and
// in tests.
type MemoryStore struct {
	cache *cache.Cache
	key   string
}

func NewMemoryStore(key string) *MemoryStore {
	if key == "" {
		key = DefaultStateKey
	}
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
		key:   key,
	}
}

func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	x, found := s.cache.Get(s.key)
	if !found {
		return nil, ErrSnapshotNotFound
	}
	data := x.([]byte)
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(_ context.Context, data []byte) error {
	s.cache.Set(s.key, append([]byte(nil), data...), cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.cache.Delete(s.key)
	return nil
}
