package model

import (
	"resort/shared/cache"
	"resort/shared/model"
)

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID     = "id"
	FieldName   = "name"
	FieldIcon   = "icon"
	FieldActive = "active"
)

const (
	LinkTableName  = "hotel_amenities"
	LinkEntityName = "hotel_amenity"

	LinkFieldID        = "id"
	LinkFieldHotelID   = "hotel_id"
	LinkFieldAmenityID = "amenity_id"
)

var SortableFields = []string{FieldName, "created_at", "modified_at"}

type Amenity struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Icon   string `db:"icon"`
	Active bool   `db:"active"`
	model.Metadata
}

// HotelAmenity places a catalog amenity in the ordered list of a hotel.
type HotelAmenity struct {
	ID        string `db:"id"`
	HotelID   string `db:"hotel_id"`
	AmenityID string `db:"amenity_id"`
	SortOrder int    `db:"sort_order"`
	Name      string `column:"name" db:"amenity_name" table:"amenities"`
	Icon      string `column:"icon" db:"amenity_icon" table:"amenities"`
	model.Metadata
}

func (HotelAmenity) GetJoinQuery() string {
	return "JOIN amenities ON amenities.id = hotel_amenities.amenity_id"
}

// HotelNamespace is the cache namespace of the amenity list of a hotel.
func HotelNamespace(hotelID string) string {
	return cache.Namespace(LinkEntityName, hotelID)
}
