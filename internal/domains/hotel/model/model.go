package model

import "resort/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldAddress     = "address"
	FieldStarRating  = "star_rating"
	FieldImage       = "image"
	FieldActive      = "active"
)

// SortableFields are the columns a list may be ordered by.
var SortableFields = []string{FieldName, FieldLocation, FieldStarRating, "created_at", "modified_at"}

type Hotel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Address     string `db:"address"`
	StarRating  int    `db:"star_rating"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
