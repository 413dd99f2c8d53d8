package dto

import "swimtrack-be/pkg/selection"

type ToggleSelectionResponse struct {
	Kind selection.Kind `json:"kind"`
	Id   string         `json:"id"`
	Tier selection.Tier `json:"tier"`
}
