package selection

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSnapshot = errors.New("invalid selection snapshot")

const (
	fieldSelected      = "selected"
	fieldSuperSelected = "superSelected"
)

// Encode serializes the full state. Every kind is written, ids sorted.
func Encode(s State) ([]byte, error) {
	return json.Marshal(s.View())
}

// Decode validates a persisted snapshot and returns a fully populated State.
// Both top-level fields must be present JSON objects whose keys are known
// kinds mapping to arrays of strings; anything else is ErrInvalidSnapshot.
// Kinds absent from a present field decode as empty. An id found in both
// tiers keeps only its super-selected membership.
func Decode(data []byte) (State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if doc == nil {
		return State{}, fmt.Errorf("%w: not an object", ErrInvalidSnapshot)
	}

	selected, err := decodeTier(doc, fieldSelected)
	if err != nil {
		return State{}, err
	}
	superSelected, err := decodeTier(doc, fieldSuperSelected)
	if err != nil {
		return State{}, err
	}

	s := NewState()
	for k, ids := range superSelected {
		for _, id := range ids {
			s.SuperSelected[k][id] = struct{}{}
		}
	}
	for k, ids := range selected {
		for _, id := range ids {
			if s.SuperSelected[k].Has(id) {
				continue
			}
			s.Selected[k][id] = struct{}{}
		}
	}
	return s, nil
}

func decodeTier(doc map[string]json.RawMessage, field string) (map[Kind][]string, error) {
	raw, ok := doc[field]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, field)
	}

	var byKind map[string][]string
	if err := json.Unmarshal(raw, &byKind); err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidSnapshot, field, err)
	}
	if byKind == nil {
		return nil, fmt.Errorf("%w: field %q is null", ErrInvalidSnapshot, field)
	}

	out := make(map[Kind][]string, len(byKind))
	for name, ids := range byKind {
		k := Kind(name)
		if !k.Valid() {
			return nil, fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidSnapshot, field, name)
		}
		out[k] = ids
	}
	return out, nil
}
