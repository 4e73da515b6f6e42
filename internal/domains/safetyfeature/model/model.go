package model

import (
	"resort/shared/cache"
	"resort/shared/model"
)

const (
	TableName  = "safety_features"
	EntityName = "safety_feature"

	FieldID     = "id"
	FieldName   = "name"
	FieldIcon   = "icon"
	FieldActive = "active"
)

const (
	LinkTableName  = "hotel_safety_features"
	LinkEntityName = "hotel_safety_feature"

	LinkFieldID        = "id"
	LinkFieldHotelID   = "hotel_id"
	LinkFieldFeatureID = "safety_feature_id"
)

var SortableFields = []string{FieldName, "created_at", "modified_at"}

type SafetyFeature struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Icon   string `db:"icon"`
	Active bool   `db:"active"`
	model.Metadata
}

// HotelSafetyFeature places a catalog safety feature in the ordered list of a hotel.
type HotelSafetyFeature struct {
	ID        string `db:"id"`
	HotelID   string `db:"hotel_id"`
	FeatureID string `db:"safety_feature_id"`
	SortOrder int    `db:"sort_order"`
	Name      string `column:"name" db:"feature_name" table:"safety_features"`
	Icon      string `column:"icon" db:"feature_icon" table:"safety_features"`
	model.Metadata
}

func (HotelSafetyFeature) GetJoinQuery() string {
	return "JOIN safety_features ON safety_features.id = hotel_safety_features.safety_feature_id"
}

// HotelNamespace is the cache namespace of the safety feature list of a hotel.
func HotelNamespace(hotelID string) string {
	return cache.Namespace(LinkEntityName, hotelID)
}
