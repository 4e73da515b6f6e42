package model

import (
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/model"
)

const (
	TableName  = "policies"
	EntityName = "policy"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldActivityID  = "activity_id"
	FieldKind        = "kind"
	FieldDescription = "description"
)

const (
	KindInclude = "include"
	KindExclude = "exclude"
)

// Policy is an include or exclude rule of a hotel or an activity. Exactly
// one of HotelID and ActivityID is set.
type Policy struct {
	ID          string  `db:"id"`
	HotelID     *string `db:"hotel_id"`
	ActivityID  *string `db:"activity_id"`
	Kind        string  `db:"kind"`
	Description string  `db:"description"`
	SortOrder   int     `db:"sort_order"`
	model.Metadata
}

func (p Policy) Owner() (ownerType, ownerID string) {
	if p.HotelID != nil {
		return constant.OwnerTypeHotel, *p.HotelID
	}

	if p.ActivityID != nil {
		return constant.OwnerTypeActivity, *p.ActivityID
	}

	return constant.Empty, constant.Empty
}

// OwnerField is the column that links a policy to an owner type, empty for
// an unknown type.
func OwnerField(ownerType string) string {
	switch ownerType {
	case constant.OwnerTypeHotel:
		return FieldHotelID
	case constant.OwnerTypeActivity:
		return FieldActivityID
	default:
		return constant.Empty
	}
}

func Namespace(ownerType, ownerID string) string {
	return cache.Namespace(EntityName, ownerType, ownerID)
}
