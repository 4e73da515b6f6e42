package dto

import "resort/shared/ordering"

// SyncRequest carries the full edited collection, in display order.
type SyncRequest[P any] struct {
	Items []ordering.DisplayItem[P] `json:"items" validate:"dive"`
}

// ReorderRequest carries every persisted id of a collection in its new order.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,dive,required"`
}
