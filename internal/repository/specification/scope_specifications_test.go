package specification

import (
	"testing"

	"swimtrack-be/pkg/scope"
	"swimtrack-be/pkg/selection"

	"github.com/stretchr/testify/assert"
)

func TestFromDecision(t *testing.T) {
	d := scope.Decision{
		Enabled: true,
		Filters: []scope.Filter{
			{Kind: selection.KindTeam, Field: "team_id", IDs: []string{"a"}},
			{Kind: selection.KindMeet, Field: "meet_id", IDs: []string{"b", "c"}},
		},
	}

	specs := FromDecision(d)
	assert.Equal(t, []Specification{
		ByFieldIn{Field: "team_id", IDs: []string{"a"}},
		ByFieldIn{Field: "meet_id", IDs: []string{"b", "c"}},
	}, specs)

	assert.Empty(t, FromDecision(scope.Decision{Enabled: true}))
}
