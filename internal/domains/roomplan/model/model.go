package model

import "resort/shared/model"

const (
	TableName  = "room_plans"
	EntityName = "room_plan"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldBreakfast   = "breakfast"
	FieldRefundable  = "refundable"
	FieldActive      = "active"
)

var SortableFields = []string{FieldName, FieldPrice, "created_at"}

// RoomPlan is a rate plan of a room: a nightly price with its inclusions.
type RoomPlan struct {
	ID          string  `db:"id"`
	RoomID      string  `db:"room_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Breakfast   bool    `db:"breakfast"`
	Refundable  bool    `db:"refundable"`
	Active      bool    `db:"active"`
	model.Metadata
}
