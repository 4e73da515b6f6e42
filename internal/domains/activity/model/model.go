package model

import "resort/shared/model"

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldDuration    = "duration"
	FieldImage       = "image"
	FieldActive      = "active"
)

var SortableFields = []string{FieldName, FieldLocation, "created_at", "modified_at"}

// Activity is a tour or experience sold by packages. Duration is free text
// such as "3 hours".
type Activity struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Duration    string `db:"duration"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
