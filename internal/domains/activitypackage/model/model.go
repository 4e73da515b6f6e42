package model

import (
	"resort/shared/cache"
	"resort/shared/model"
)

const (
	TableName  = "activity_packages"
	EntityName = "activity_package"

	FieldID          = "id"
	FieldActivityID  = "activity_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldMaxGuests   = "max_guests"
)

// ActivityPackage is a priced option of an activity, booked per guest.
type ActivityPackage struct {
	ID          string  `db:"id"`
	ActivityID  string  `db:"activity_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	MaxGuests   int     `db:"max_guests"`
	SortOrder   int     `db:"sort_order"`
	model.Metadata
}

func Namespace(activityID string) string {
	return cache.Namespace(EntityName, activityID)
}
