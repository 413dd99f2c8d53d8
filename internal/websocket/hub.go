package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MessageTypeSelection tags selection snapshot frames.
const MessageTypeSelection = "selection"

// Envelope is the frame sent to browsers.
type Envelope struct {
	Type string         `json:"type"`
	Data selection.View `json:"data"`
}

// relayMessage is what travels over redis between instances. Snapshot uses
// the persisted encoding so peers can validate it with selection.Decode.
type relayMessage struct {
	Origin   string          `json:"origin"`
	Snapshot json.RawMessage `json:"snapshot"`
}

// latestFrame is a one-slot mailbox: a put overwrites whatever has not been
// taken yet, so a reader always ends up with the newest frame.
type latestFrame struct {
	mu    sync.Mutex
	frame []byte
	ready chan struct{}
}

func newLatestFrame() *latestFrame {
	return &latestFrame{ready: make(chan struct{}, 1)}
}

func (l *latestFrame) put(frame []byte) {
	l.mu.Lock()
	l.frame = frame
	l.mu.Unlock()

	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// take returns nil when the frame was already consumed by an earlier signal.
func (l *latestFrame) take() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	frame := l.frame
	l.frame = nil
	return frame
}

// Hub fans selection snapshots out to every connected browser. With redis
// configured, local changes are relayed to peer instances, which install them
// into their own engine through the OnRemote callback.
type Hub struct {
	id      string
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	outbound   *latestFrame
	relayOut   *latestFrame // nil without redis
	done       chan struct{}

	// current is the latest frame, sent to clients as they connect.
	current []byte

	apply func(selection.State)

	rdb     *redis.Client
	channel string
	logger  logger.ILogger
}

// NewHub builds a hub. rdb may be nil for a single-instance deployment.
// initial seeds the frame new clients receive before any change.
func NewHub(rdb *redis.Client, channel string, initial selection.State, log logger.ILogger) *Hub {
	h := &Hub{
		id:         uuid.NewString(),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   newLatestFrame(),
		done:       make(chan struct{}),
		rdb:        rdb,
		channel:    channel,
		logger:     log,
	}
	if rdb != nil {
		h.relayOut = newLatestFrame()
	}
	h.current, _ = encodeFrame(initial)
	return h
}

// OnRemote sets where states relayed by peers are installed, normally
// selection.Engine.Replace. Without it they are only broadcast. Call before
// Run.
func (h *Hub) OnRemote(apply func(selection.State)) {
	h.apply = apply
}

func encodeFrame(s selection.State) ([]byte, error) {
	return json.Marshal(Envelope{Type: MessageTypeSelection, Data: s.View()})
}

// Run owns the client set until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
		go h.publishToRedis(ctx)
	}

	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.deliver(client, h.current)
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ID.String(), "clients": len(h.clients)})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID.String(), "clients": len(h.clients)})
			}

		case <-h.outbound.ready:
			frame := h.outbound.take()
			if frame == nil {
				continue
			}
			h.current = frame
			for client := range h.clients {
				h.deliver(client, frame)
			}
		}
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// deliver drops clients that cannot keep up. Only called from Run.
func (h *Hub) deliver(client *Client, frame []byte) {
	if frame == nil {
		return
	}
	select {
	case client.Send <- frame:
	default:
		h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"client_id": client.ID.String()})
		delete(h.clients, client)
		close(client.Send)
	}
}

// PublishSnapshot is registered with Engine.OnChange. It broadcasts locally
// and relays to peers. It never blocks; a newer snapshot replaces one that
// has not gone out yet.
func (h *Hub) PublishSnapshot(s selection.State) {
	h.BroadcastSnapshot(s)

	if h.relayOut == nil {
		return
	}
	snapshot, err := selection.Encode(s)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode selection snapshot for relay", map[string]interface{}{"error": err.Error()})
		return
	}
	payload, err := json.Marshal(relayMessage{Origin: h.id, Snapshot: snapshot})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode relay message", map[string]interface{}{"error": err.Error()})
		return
	}
	h.relayOut.put(payload)
}

// BroadcastSnapshot sends s to local clients only. It is registered with
// Engine.OnReplace so relayed states are not relayed again.
func (h *Hub) BroadcastSnapshot(s selection.State) {
	frame, err := encodeFrame(s)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode selection frame", map[string]interface{}{"error": err.Error()})
		return
	}
	h.outbound.put(frame)
}

func (h *Hub) publishToRedis(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.relayOut.ready:
			payload := h.relayOut.take()
			if payload == nil {
				continue
			}
			if err := h.rdb.Publish(ctx, h.channel, payload).Err(); err != nil {
				h.logger.Warn("Hub", "Failed to relay selection snapshot", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleRelay([]byte(msg.Payload))
		}
	}
}

// handleRelay installs a peer's snapshot. Frames from this hub are ignored.
func (h *Hub) handleRelay(payload []byte) {
	var msg relayMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
		return
	}
	if msg.Origin == h.id {
		return
	}

	state, err := selection.Decode(msg.Snapshot)
	if err != nil {
		h.logger.Warn("Hub", "Discarding malformed relayed snapshot", map[string]interface{}{"error": err.Error(), "origin": msg.Origin})
		return
	}
	if h.apply != nil {
		h.apply(state)
		return
	}
	h.BroadcastSnapshot(state)
}
