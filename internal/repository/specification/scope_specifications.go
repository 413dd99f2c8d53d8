package specification

import (
	"swimtrack-be/pkg/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ByFieldIn is an equality-membership filter on a uuid column. Ids that are
// not uuids cannot match any row and are dropped; if none remain the query
// matches nothing.
type ByFieldIn struct {
	Field string
	IDs   []string
}

func (s ByFieldIn) Apply(db *gorm.DB) *gorm.DB {
	values := make([]interface{}, 0, len(s.IDs))
	for _, raw := range s.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		values = append(values, id)
	}
	if len(values) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where(clause.IN{Column: clause.Column{Name: s.Field}, Values: values})
}

// FromDecision turns an enabled policy decision into AND-ed filters.
// Callers must not query at all for a disabled decision.
func FromDecision(d scope.Decision) []Specification {
	specs := make([]Specification, 0, len(d.Filters))
	for _, f := range d.Filters {
		specs = append(specs, ByFieldIn{Field: f.Field, IDs: f.IDs})
	}
	return specs
}
