package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"swimtrack-be/internal/pkg/logger"
)

// Listener receives a copy of the state after each mutation, in mutation
// order. It must not block.
type Listener func(State)

// Engine owns the process-wide selection state. Mutations are serialized and
// each one is followed by a best-effort write of the full state to the store.
type Engine struct {
	mu        sync.Mutex
	state     State
	store     Store
	logger    logger.ILogger
	listeners []Listener
	replaced  []Listener
}

// NewEngine restores the persisted snapshot, falling back to the empty
// default when it is missing or unreadable.
func NewEngine(ctx context.Context, store Store, log logger.ILogger) *Engine {
	return &Engine{
		state:  restore(ctx, store, log),
		store:  store,
		logger: log,
	}
}

func restore(ctx context.Context, store Store, log logger.ILogger) State {
	data, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			log.Info("Selection", "No persisted selection, starting empty", nil)
		} else {
			log.Warn("Selection", "Failed to read selection snapshot, starting empty", map[string]interface{}{"error": err.Error()})
		}
		return NewState()
	}

	s, err := Decode(data)
	if err != nil {
		log.Warn("Selection", "Discarding malformed selection snapshot", map[string]interface{}{"error": err.Error()})
		return NewState()
	}
	return s
}

// OnChange registers a listener. Not safe to call concurrently with mutations.
func (e *Engine) OnChange(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// OnReplace registers a listener for states installed by Replace. Listeners
// registered with OnChange are not told about those.
func (e *Engine) OnReplace(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replaced = append(e.replaced, l)
}

// Replace installs a state produced by another instance sharing the same
// store. The origin already persisted it, so nothing is written here.
func (e *Engine) Replace(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = s.Clone()
	notify(e.state, e.replaced)
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

func (e *Engine) Tier(kind Kind, id string) Tier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Tier(kind, id)
}

// Toggle advances id one step through the selection cycle and returns the
// tier it ends in. Ids are not checked for existence.
func (e *Engine) Toggle(ctx context.Context, kind Kind, id string) (Tier, error) {
	if err := checkKind(kind); err != nil {
		return Unselected, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tier := e.state.toggle(kind, id)
	e.commit(ctx)
	return tier, nil
}

// ClearSelected empties both tiers of kind, since a super-selected id has
// always passed through selected.
func (e *Engine) ClearSelected(ctx context.Context, kind Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Selected[kind] = IDSet{}
	e.state.SuperSelected[kind] = IDSet{}
	e.commit(ctx)
	return nil
}

// ClearSuperSelected empties only the escalated tier of kind.
func (e *Engine) ClearSuperSelected(ctx context.Context, kind Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.SuperSelected[kind] = IDSet{}
	e.commit(ctx)
	return nil
}

func (e *Engine) ClearAllForKind(ctx context.Context, kind Kind) error {
	return e.ClearSelected(ctx, kind)
}

// ClearAll resets every kind and erases the persisted snapshot.
func (e *Engine) ClearAll(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = NewState()
	if err := e.store.Delete(ctx); err != nil {
		e.logger.Error("Selection", "Failed to delete selection snapshot", map[string]interface{}{"error": err.Error()})
	}
	notify(e.state, e.listeners)
}

// commit persists and notifies. Callers hold e.mu.
func (e *Engine) commit(ctx context.Context) {
	data, err := Encode(e.state)
	if err != nil {
		e.logger.Error("Selection", "Failed to encode selection snapshot", map[string]interface{}{"error": err.Error()})
	} else if err := e.store.Save(ctx, data); err != nil {
		e.logger.Error("Selection", "Failed to persist selection snapshot", map[string]interface{}{"error": err.Error()})
	}
	notify(e.state, e.listeners)
}

// notify runs under e.mu, so listeners see states in mutation order.
func notify(state State, listeners []Listener) {
	if len(listeners) == 0 {
		return
	}
	snapshot := state.Clone()
	for _, l := range listeners {
		l(snapshot)
	}
}

func checkKind(kind Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return nil
}
