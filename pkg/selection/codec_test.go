package selection

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"swimtrack-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWritesEveryKind(t *testing.T) {
	s := NewState()
	s.Selected[KindTeam]["b"] = struct{}{}
	s.Selected[KindTeam]["a"] = struct{}{}
	s.SuperSelected[KindSeason]["S1"] = struct{}{}

	data, err := Encode(s)
	require.NoError(t, err)

	var doc map[string]map[string][]string
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 2)
	for _, field := range []string{"selected", "superSelected"} {
		assert.Len(t, doc[field], len(Kinds), field)
	}
	assert.Equal(t, []string{"a", "b"}, doc["selected"]["team"])
	assert.Equal(t, []string{"S1"}, doc["superSelected"]["season"])
	assert.Equal(t, []string{}, doc["selected"]["result"])
}

func TestDecodeRoundTrip(t *testing.T) {
	s := NewState()
	s.Selected[KindTeam]["T1"] = struct{}{}
	s.Selected[KindPerson]["P1"] = struct{}{}
	s.SuperSelected[KindPerson]["P2"] = struct{}{}
	s.SuperSelected[KindResult]["R9"] = struct{}{}

	data, err := Encode(s)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
	for _, k := range Kinds {
		assert.NotNil(t, got.Selected[k])
		assert.NotNil(t, got.SuperSelected[k])
	}
}

func TestDecodeRejectsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "selected=team"},
		{name: "json array", data: `[]`},
		{name: "json null", data: `null`},
		{name: "missing superSelected", data: `{"selected":{"team":["A"]}}`},
		{name: "missing selected", data: `{"superSelected":{}}`},
		{name: "null tier", data: `{"selected":null,"superSelected":{}}`},
		{name: "tier not object", data: `{"selected":["A"],"superSelected":{}}`},
		{name: "ids not strings", data: `{"selected":{"team":[1,2]},"superSelected":{}}`},
		{name: "unknown kind", data: `{"selected":{"coach":["C1"]},"superSelected":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestDecodeTolerantInputs(t *testing.T) {
	data := `{
		"selected": {"team": ["T1", "T1", "T2"], "meet": ["M1"]},
		"superSelected": {"team": ["T2"], "athlete": null}
	}`

	s, err := Decode([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, s.SelectedIDs(KindTeam), "duplicates collapse, super tier wins")
	assert.Equal(t, []string{"T2"}, s.SuperSelectedIDs(KindTeam))
	assert.Equal(t, []string{"M1"}, s.SelectedIDs(KindMeet))
	assert.Empty(t, s.SelectedIDs(KindEvent))
	assert.Empty(t, s.SuperSelectedIDs(KindAthlete))
}

func TestAsyncStoreAppliesWritesInOrder(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore("test")
	async := NewAsyncStore(inner, 8, logger.NewNopLogger())

	require.NoError(t, async.Save(ctx, []byte("one")))
	require.NoError(t, async.Save(ctx, []byte("two")))
	require.NoError(t, async.Delete(ctx))
	require.NoError(t, async.Save(ctx, []byte("three")))
	async.Close()

	data, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "three", string(data))

	assert.ErrorIs(t, async.Save(ctx, []byte("late")), ErrStoreClosed)
	async.Close()
}

type blockingStore struct {
	MemoryStore
	release chan struct{}
}

func (s *blockingStore) Save(ctx context.Context, data []byte) error {
	<-s.release
	return s.MemoryStore.Save(ctx, data)
}

func TestAsyncStoreReportsFullQueue(t *testing.T) {
	ctx := context.Background()
	inner := &blockingStore{MemoryStore: *NewMemoryStore("test"), release: make(chan struct{})}
	async := NewAsyncStore(inner, 1, logger.NewNopLogger())

	require.NoError(t, async.Save(ctx, []byte("first")))
	// Wait for the writer to pick up the first write and block on it.
	require.Eventually(t, func() bool { return len(async.queue) == 0 }, time.Second, time.Millisecond)
	require.NoError(t, async.Save(ctx, []byte("second")))
	assert.ErrorIs(t, async.Save(ctx, []byte("third")), ErrWriteQueueFull)

	close(inner.release)
	async.Close()

	data, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
