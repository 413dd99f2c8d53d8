package selection

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a domain category that selection state is partitioned by.
type Kind string

const (
	KindTeam    Kind = "team"
	KindSeason  Kind = "season"
	KindMeet    Kind = "meet"
	KindAthlete Kind = "athlete"
	KindPerson  Kind = "person"
	KindEvent   Kind = "event"
	KindResult  Kind = "result"
)

// Kinds lists every kind in a stable order.
var Kinds = []Kind{
	KindTeam,
	KindSeason,
	KindMeet,
	KindAthlete,
	KindPerson,
	KindEvent,
	KindResult,
}

var ErrUnknownKind = errors.New("unknown entity kind")

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts the lower-case kind name. Plural route segments
// ("teams", "people") are accepted as well.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "people":
		name = string(KindPerson)
	default:
		name = strings.TrimSuffix(name, "s")
	}

	k := Kind(name)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Tier is the escalation level of one id within one kind.
type Tier int

const (
	Unselected Tier = iota
	Selected
	SuperSelected
)

func (t Tier) String() string {
	switch t {
	case Selected:
		return "selected"
	case SuperSelected:
		return "super_selected"
	default:
		return "unselected"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
