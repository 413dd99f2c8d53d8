package scope

import "swimtrack-be/pkg/selection"

// Rule configures how one list consumer is scoped.
type Rule struct {
	Mode          Mode
	Dimensions    []Dimension
	AllowUnscoped bool
}

var (
	dimTeam   = Dimension{Kind: selection.KindTeam, Field: "team_id"}
	dimSeason = Dimension{Kind: selection.KindSeason, Field: "season_id"}
	dimMeet   = Dimension{Kind: selection.KindMeet, Field: "meet_id"}
	dimEvent  = Dimension{Kind: selection.KindEvent, Field: "event_id"}
)

// Rules is the per-consumer table. Teams, events and people are small master
// lists and load unfiltered when nothing scopes them; everything else stays
// empty until a scope is super-selected.
var Rules = map[selection.Kind]Rule{
	selection.KindTeam:   {Mode: SingleWinner, AllowUnscoped: true},
	selection.KindEvent:  {Mode: SingleWinner, AllowUnscoped: true},
	selection.KindPerson: {Mode: SingleWinner, AllowUnscoped: true},

	selection.KindSeason:  {Mode: SingleWinner, Dimensions: []Dimension{dimTeam}},
	selection.KindMeet:    {Mode: SingleWinner, Dimensions: []Dimension{dimSeason, dimTeam}},
	selection.KindAthlete: {Mode: SingleWinner, Dimensions: []Dimension{dimSeason, dimTeam}},

	selection.KindResult: {Mode: Independent, Dimensions: []Dimension{dimTeam, dimSeason, dimMeet, dimEvent}},
}

// RuleFor returns the configured rule; unknown kinds get a rule that never
// enables a query.
func RuleFor(kind selection.Kind) Rule {
	if r, ok := Rules[kind]; ok {
		return r
	}
	return Rule{Mode: SingleWinner}
}

// Decide evaluates rule against the super-selected ids in state.
func Decide(rule Rule, state selection.State, limit int) Decision {
	candidates := make([]Candidate, len(rule.Dimensions))
	for i, d := range rule.Dimensions {
		candidates[i] = Candidate{Dimension: d, IDs: state.SuperSelectedIDs(d.Kind)}
	}
	return Evaluate(rule.Mode, candidates, rule.AllowUnscoped, limit)
}

// DecideFor is Decide with the configured rule for kind.
func DecideFor(kind selection.Kind, state selection.State, limit int) Decision {
	return Decide(RuleFor(kind), state, limit)
}
