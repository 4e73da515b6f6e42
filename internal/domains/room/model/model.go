package model

import "resort/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
	FieldImage       = "image"
	FieldActive      = "active"
)

var SortableFields = []string{FieldName, FieldCapacity, FieldPrice, "created_at", "modified_at"}

// Room is a room type of a hotel. Quantity is how many identical rooms the
// hotel sells, Price the nightly rate without a plan.
type Room struct {
	ID          string  `db:"id"`
	HotelID     string  `db:"hotel_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Capacity    int     `db:"capacity"`
	Quantity    int     `db:"quantity"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	Active      bool    `db:"active"`
	model.Metadata
}
