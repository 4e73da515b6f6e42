package model

import (
	"resort/shared/cache"
	"resort/shared/model"
)

const (
	TableName  = "activity_itinerary"
	EntityName = "itinerary"

	FieldID          = "id"
	FieldActivityID  = "activity_id"
	FieldStartTime   = "start_time"
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Itinerary is one step of the schedule of an activity.
type Itinerary struct {
	ID          string `db:"id"`
	ActivityID  string `db:"activity_id"`
	StartTime   string `db:"start_time"`
	Title       string `db:"title"`
	Description string `db:"description"`
	SortOrder   int    `db:"sort_order"`
	model.Metadata
}

func Namespace(activityID string) string {
	return cache.Namespace(EntityName, activityID)
}
