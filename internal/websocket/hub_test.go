package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case frame, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var env Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return Envelope{}
	}
}

func TestHubSendsCurrentSnapshotOnRegister(t *testing.T) {
	initial := selection.NewState()
	initial.SuperSelected[selection.KindTeam]["T1"] = struct{}{}

	hub := NewHub(nil, "test", initial, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- client

	env := receive(t, client)
	assert.Equal(t, MessageTypeSelection, env.Type)
	assert.Equal(t, []string{"T1"}, env.Data.SuperSelected[selection.KindTeam])
}

func TestHubBroadcastsSnapshots(t *testing.T) {
	hub := NewHub(nil, "test", selection.NewState(), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	a := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 4)}
	b := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- a
	hub.register <- b
	receive(t, a)
	receive(t, b)

	next := selection.NewState()
	next.Selected[selection.KindMeet]["M1"] = struct{}{}
	hub.PublishSnapshot(next)

	for _, c := range []*Client{a, b} {
		env := receive(t, c)
		assert.Equal(t, []string{"M1"}, env.Data.Selected[selection.KindMeet])
	}

	late := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- late
	assert.Equal(t, []string{"M1"}, receive(t, late).Data.Selected[selection.KindMeet])
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(nil, "test", selection.NewState(), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- client
	receive(t, client)

	hub.leave(client)
	_, ok := <-client.Send
	assert.False(t, ok)

	cancel()
	<-hub.done
	done := make(chan struct{})
	go func() {
		hub.leave(client)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("leave blocked after hub stopped")
	}
}

func TestHubDeliversNewestSnapshotAfterBurst(t *testing.T) {
	hub := NewHub(nil, "test", selection.NewState(), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := &Client{Hub: hub, ID: uuid.New(), Send: make(chan []byte, 256)}
	hub.register <- client
	receive(t, client)

	const burst = 200
	for i := 0; i < burst; i++ {
		s := selection.NewState()
		s.Selected[selection.KindMeet][fmt.Sprintf("M%03d", i)] = struct{}{}
		hub.PublishSnapshot(s)
	}

	want := fmt.Sprintf("M%03d", burst-1)
	for {
		env := receive(t, client)
		if ids := env.Data.Selected[selection.KindMeet]; len(ids) == 1 && ids[0] == want {
			break
		}
	}
}

// wireEngine connects a hub and an engine the way the container does.
func wireEngine(t *testing.T, store selection.Store, relay bool) (*selection.Engine, *Hub) {
	t.Helper()
	log := logger.NewNopLogger()
	engine := selection.NewEngine(context.Background(), store, log)
	hub := NewHub(nil, "test", engine.Snapshot(), log)
	if relay {
		hub.relayOut = newLatestFrame()
	}
	engine.OnChange(hub.PublishSnapshot)
	engine.OnReplace(hub.BroadcastSnapshot)
	hub.OnRemote(engine.Replace)
	return engine, hub
}

func TestRelayedSnapshotUpdatesPeerEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engineA, hubA := wireEngine(t, selection.NewMemoryStore("shared"), true)
	storeB := selection.NewMemoryStore("shared")
	engineB, hubB := wireEngine(t, storeB, true)
	go hubB.Run(ctx)

	client := &Client{Hub: hubB, ID: uuid.New(), Send: make(chan []byte, 4)}
	hubB.register <- client
	receive(t, client)

	_, err := engineA.Toggle(ctx, selection.KindTeam, "T1")
	require.NoError(t, err)
	_, err = engineA.Toggle(ctx, selection.KindTeam, "T1")
	require.NoError(t, err)

	payload := hubA.relayOut.take()
	require.NotNil(t, payload)
	hubB.handleRelay(payload)

	assert.Equal(t, selection.SuperSelected, engineB.Tier(selection.KindTeam, "T1"))
	assert.Equal(t, []string{"T1"}, receive(t, client).Data.SuperSelected[selection.KindTeam])

	// The peer neither persists nor relays what it received.
	_, err = storeB.Load(ctx)
	assert.ErrorIs(t, err, selection.ErrSnapshotNotFound)
	assert.Nil(t, hubB.relayOut.take())

	// A hub ignores its own relayed snapshots.
	hubA.outbound.take()
	hubA.handleRelay(payload)
	assert.Nil(t, hubA.outbound.take())
}

func TestRelayRejectsMalformedSnapshot(t *testing.T) {
	engine, hub := wireEngine(t, selection.NewMemoryStore(""), false)

	hub.handleRelay([]byte(`{"origin":"peer","snapshot":{"selected":{}}}`))
	hub.handleRelay([]byte(`not json`))

	assert.True(t, engine.Snapshot().IsEmpty())
	assert.Nil(t, hub.outbound.take())
}
