package mapper

import "time"

// Mapper converts between a domain entity E and its persistence model M.
type Mapper[E any, M any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
}

func ToEntities[E any, M any](mp Mapper[E, M], models []*M) []*E {
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = mp.ToEntity(m)
	}
	return entities
}

func ToModels[E any, M any](mp Mapper[E, M], entities []*E) []*M {
	models := make([]*M, len(entities))
	for i, e := range entities {
		models[i] = mp.ToModel(e)
	}
	return models
}

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func updatedAtValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
