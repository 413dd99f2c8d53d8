package selection

import "sort"

// IDSet is an unordered set of opaque identifiers.
type IDSet map[string]struct{}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order. Never nil.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s IDSet) clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s IDSet) equal(o IDSet) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// State holds the two selection tiers for every kind. An id is in at most
// one of Selected[k] and SuperSelected[k]; membership in neither means
// unselected.
type State struct {
	Selected      map[Kind]IDSet
	SuperSelected map[Kind]IDSet
}

// NewState returns the all-empty default state with every kind present.
func NewState() State {
	s := State{
		Selected:      make(map[Kind]IDSet, len(Kinds)),
		SuperSelected: make(map[Kind]IDSet, len(Kinds)),
	}
	for _, k := range Kinds {
		s.Selected[k] = IDSet{}
		s.SuperSelected[k] = IDSet{}
	}
	return s
}

// Clone returns a deep copy that shares nothing with the receiver.
func (s State) Clone() State {
	c := State{
		Selected:      make(map[Kind]IDSet, len(s.Selected)),
		SuperSelected: make(map[Kind]IDSet, len(s.SuperSelected)),
	}
	for k, ids := range s.Selected {
		c.Selected[k] = ids.clone()
	}
	for k, ids := range s.SuperSelected {
		c.SuperSelected[k] = ids.clone()
	}
	return c
}

func (s State) Tier(kind Kind, id string) Tier {
	switch {
	case s.SuperSelected[kind].Has(id):
		return SuperSelected
	case s.Selected[kind].Has(id):
		return Selected
	default:
		return Unselected
	}
}

func (s State) SelectedIDs(kind Kind) []string {
	return s.Selected[kind].Sorted()
}

func (s State) SuperSelectedIDs(kind Kind) []string {
	return s.SuperSelected[kind].Sorted()
}

func (s State) Equal(o State) bool {
	for _, k := range Kinds {
		if !s.Selected[k].equal(o.Selected[k]) || !s.SuperSelected[k].equal(o.SuperSelected[k]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether nothing is selected in any tier of any kind.
func (s State) IsEmpty() bool {
	for _, k := range Kinds {
		if s.Selected[k].Len() > 0 || s.SuperSelected[k].Len() > 0 {
			return false
		}
	}
	return true
}

// toggle applies the UNSELECTED -> SELECTED -> SUPER_SELECTED -> UNSELECTED
// cycle for one id and returns the resulting tier.
func (s State) toggle(kind Kind, id string) Tier {
	sel, super := s.Selected[kind], s.SuperSelected[kind]
	switch {
	case super.Has(id):
		delete(super, id)
		return Unselected
	case sel.Has(id):
		delete(sel, id)
		super[id] = struct{}{}
		return SuperSelected
	default:
		sel[id] = struct{}{}
		return Selected
	}
}

// View is the JSON shape of a State handed to HTTP and websocket clients.
type View struct {
	Selected      map[Kind][]string `json:"selected"`
	SuperSelected map[Kind][]string `json:"superSelected"`
}

func (s State) View() View {
	v := View{
		Selected:      make(map[Kind][]string, len(Kinds)),
		SuperSelected: make(map[Kind][]string, len(Kinds)),
	}
	for _, k := range Kinds {
		v.Selected[k] = s.SelectedIDs(k)
		v.SuperSelected[k] = s.SuperSelectedIDs(k)
	}
	return v
}
