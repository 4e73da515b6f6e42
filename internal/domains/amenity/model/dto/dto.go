package dto

import (
	"resort/internal/domains/amenity/model"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/ordering"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Icon   string `json:"icon"   validate:"omitempty,max=100"`
	Active *bool  `json:"active" validate:"omitempty"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Amenity{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Icon:     c.Icon,
		Active:   active,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateAmenityRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Icon   string `db:"icon"   json:"icon"   validate:"omitempty,max=100"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type AmenityResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse = gDto.Page[AmenityResponse]

func FromModels(models []model.Amenity, totalData, limit int) GetAmenitiesResponse {
	items := make([]AmenityResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}

// HotelAmenityPayload is one entry of the amenity list of a hotel. Name and
// Icon come from the catalog and are ignored on input.
type HotelAmenityPayload struct {
	AmenityID string `json:"amenity_id" validate:"required,uuid"`
	Name      string `json:"name,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

type SyncHotelAmenitiesRequest = gDto.SyncRequest[HotelAmenityPayload]

func ToLinkModel(item ordering.DisplayItem[HotelAmenityPayload], hotelID, user string) model.HotelAmenity {
	return model.HotelAmenity{
		ID:        item.ID,
		HotelID:   hotelID,
		AmenityID: item.Payload.AmenityID,
		SortOrder: item.Order,
		Metadata:  gModel.NewMetadata(user),
	}
}

// HotelAmenityCodec reads the payload back from a stored hotel amenity link.
// Only the amenity reference is written.
type HotelAmenityCodec struct{}

func (HotelAmenityCodec) ID(row model.HotelAmenity) string { return row.ID }

func (HotelAmenityCodec) Payload(row model.HotelAmenity) HotelAmenityPayload {
	return HotelAmenityPayload{AmenityID: row.AmenityID, Name: row.Name, Icon: row.Icon}
}

func (HotelAmenityCodec) Columns(payload HotelAmenityPayload) map[string]any {
	return map[string]any{model.LinkFieldAmenityID: payload.AmenityID}
}

type HotelAmenitiesResponse struct {
	Items []ordering.DisplayItem[HotelAmenityPayload] `json:"items"`
}

func (r *HotelAmenitiesResponse) FromModels(models []model.HotelAmenity) error {
	ids := make([]string, len(models))
	payloads := make([]HotelAmenityPayload, len(models))

	for i, mod := range models {
		ids[i] = mod.ID
		payloads[i] = HotelAmenityCodec{}.Payload(mod)
	}

	items, err := ordering.FromEntities(ids, payloads)
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.Items = items

	return nil
}
