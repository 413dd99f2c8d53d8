package dto

import "swimtrack-be/pkg/scope"

// ListResponse wraps every list endpoint. When Enabled is false no query
// ran and Items is empty.
type ListResponse[T any] struct {
	Enabled bool           `json:"enabled"`
	Filters []scope.Filter `json:"filters"`
	Items   []T            `json:"items"`
}

func DisabledList[T any]() *ListResponse[T] {
	return &ListResponse[T]{
		Enabled: false,
		Filters: []scope.Filter{},
		Items:   []T{},
	}
}
