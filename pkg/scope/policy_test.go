package scope

import (
	"fmt"
	"testing"

	"swimtrack-be/pkg/selection"

	"github.com/stretchr/testify/assert"
)

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return out
}

func TestEvaluateSingleWinner(t *testing.T) {
	tests := []struct {
		name          string
		candidates    []Candidate
		allowUnscoped bool
		wantEnabled   bool
		wantFilters   []Filter
	}{
		{
			name: "falls back to team when season empty",
			candidates: []Candidate{
				{Dimension: dimSeason},
				{Dimension: dimTeam, IDs: []string{"T1"}},
			},
			wantEnabled: true,
			wantFilters: []Filter{{Kind: selection.KindTeam, Field: "team_id", IDs: []string{"T1"}}},
		},
		{
			name: "season wins over team",
			candidates: []Candidate{
				{Dimension: dimSeason, IDs: []string{"S2", "S1"}},
				{Dimension: dimTeam, IDs: []string{"T1"}},
			},
			wantEnabled: true,
			wantFilters: []Filter{{Kind: selection.KindSeason, Field: "season_id", IDs: []string{"S1", "S2"}}},
		},
		{
			name: "winner over limit disables despite valid fallback",
			candidates: []Candidate{
				{Dimension: dimSeason, IDs: ids("S", 31)},
				{Dimension: dimTeam, IDs: []string{"T1"}},
			},
			wantEnabled: false,
			wantFilters: []Filter{},
		},
		{
			name: "exactly at limit is allowed",
			candidates: []Candidate{
				{Dimension: dimSeason, IDs: ids("S", 30)},
			},
			wantEnabled: true,
			wantFilters: []Filter{{Kind: selection.KindSeason, Field: "season_id", IDs: ids("S", 30)}},
		},
		{
			name:        "nothing selected disables scoped consumer",
			candidates:  []Candidate{{Dimension: dimSeason}, {Dimension: dimTeam}},
			wantEnabled: false,
			wantFilters: []Filter{},
		},
		{
			name:          "nothing selected fetches all for master list",
			candidates:    nil,
			allowUnscoped: true,
			wantEnabled:   true,
			wantFilters:   []Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(SingleWinner, tt.candidates, tt.allowUnscoped, 30)
			assert.Equal(t, tt.wantEnabled, got.Enabled)
			assert.Equal(t, tt.wantFilters, got.Filters)
		})
	}
}

func TestEvaluateIndependent(t *testing.T) {
	dims := func(team, season, meet, event []string) []Candidate {
		return []Candidate{
			{Dimension: dimTeam, IDs: team},
			{Dimension: dimSeason, IDs: season},
			{Dimension: dimMeet, IDs: meet},
			{Dimension: dimEvent, IDs: event},
		}
	}

	t.Run("empty dimensions omitted", func(t *testing.T) {
		got := Evaluate(Independent, dims(nil, []string{"S1"}, nil, nil), false, 30)
		assert.True(t, got.Enabled)
		assert.Equal(t, []Filter{{Kind: selection.KindSeason, Field: "season_id", IDs: []string{"S1"}}}, got.Filters)
	})

	t.Run("all non-empty dimensions combine", func(t *testing.T) {
		got := Evaluate(Independent, dims([]string{"T1"}, nil, []string{"M1", "M2"}, []string{"E1"}), false, 30)
		assert.True(t, got.Enabled)
		assert.Equal(t, []Filter{
			{Kind: selection.KindTeam, Field: "team_id", IDs: []string{"T1"}},
			{Kind: selection.KindMeet, Field: "meet_id", IDs: []string{"M1", "M2"}},
			{Kind: selection.KindEvent, Field: "event_id", IDs: []string{"E1"}},
		}, got.Filters)
	})

	t.Run("one active dimension over limit disables", func(t *testing.T) {
		got := Evaluate(Independent, dims(nil, nil, nil, ids("E", 31)), false, 30)
		assert.False(t, got.Enabled)
		assert.Empty(t, got.Filters)
	})

	t.Run("over limit anywhere disables", func(t *testing.T) {
		got := Evaluate(Independent, dims([]string{"T1"}, ids("S", 31), nil, nil), false, 30)
		assert.False(t, got.Enabled)
	})

	t.Run("nothing selected uses unscoped flag", func(t *testing.T) {
		assert.False(t, Evaluate(Independent, dims(nil, nil, nil, nil), false, 30).Enabled)
		assert.True(t, Evaluate(Independent, dims(nil, nil, nil, nil), true, 30).Unfiltered())
	})
}

func TestEvaluateIsDeterministic(t *testing.T) {
	forward := []Candidate{
		{Dimension: dimTeam, IDs: []string{"T3", "T1", "T2"}},
		{Dimension: dimMeet, IDs: []string{"M1"}},
	}
	shuffled := []Candidate{
		{Dimension: dimTeam, IDs: []string{"T2", "T3", "T1", "T1"}},
		{Dimension: dimMeet, IDs: []string{"M1"}},
	}

	first := Evaluate(Independent, forward, false, 30)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(Independent, shuffled, false, 30))
		assert.Equal(t, first.Key(), Evaluate(Independent, forward, false, 30).Key())
	}
	assert.Equal(t, "team_id=T1,T2,T3&meet_id=M1", first.Key())
}

func TestEvaluateDefaultsLimit(t *testing.T) {
	got := Evaluate(SingleWinner, []Candidate{{Dimension: dimTeam, IDs: ids("T", 31)}}, false, 0)
	assert.False(t, got.Enabled)

	got = Evaluate(SingleWinner, []Candidate{{Dimension: dimTeam, IDs: ids("T", 30)}}, false, -1)
	assert.True(t, got.Enabled)
}

func TestDecideForConsumers(t *testing.T) {
	s := selection.NewState()

	for _, k := range []selection.Kind{selection.KindTeam, selection.KindEvent, selection.KindPerson} {
		assert.True(t, DecideFor(k, s, 30).Unfiltered(), "%s should fetch all", k)
	}
	for _, k := range []selection.Kind{selection.KindSeason, selection.KindMeet, selection.KindAthlete, selection.KindResult} {
		assert.False(t, DecideFor(k, s, 30).Enabled, "%s should be disabled", k)
	}

	// Plain selection never scopes a query.
	s.Selected[selection.KindTeam]["T1"] = struct{}{}
	assert.False(t, DecideFor(selection.KindSeason, s, 30).Enabled)

	s.SuperSelected[selection.KindTeam]["T1"] = struct{}{}
	delete(s.Selected[selection.KindTeam], "T1")
	d := DecideFor(selection.KindSeason, s, 30)
	assert.True(t, d.Enabled)
	assert.Equal(t, "team_id=T1", d.Key())

	s.SuperSelected[selection.KindSeason]["S1"] = struct{}{}
	assert.Equal(t, "season_id=S1", DecideFor(selection.KindMeet, s, 30).Key())
	assert.Equal(t, "season_id=S1", DecideFor(selection.KindAthlete, s, 30).Key())
	assert.Equal(t, "team_id=T1&season_id=S1", DecideFor(selection.KindResult, s, 30).Key())

	assert.False(t, DecideFor(selection.Kind("coach"), s, 30).Enabled)
}

func TestDecisionKey(t *testing.T) {
	assert.Equal(t, "disabled", Decision{}.Key())
	assert.Equal(t, "all", Decision{Enabled: true}.Key())
}
