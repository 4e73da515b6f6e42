package dto

import (
	"resort/internal/domains/safetyfeature/model"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/ordering"

	"github.com/google/uuid"
)

type CreateSafetyFeatureRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Icon   string `json:"icon"   validate:"omitempty,max=100"`
	Active *bool  `json:"active" validate:"omitempty"`
}

func (c *CreateSafetyFeatureRequest) ToModel(user string) model.SafetyFeature {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.SafetyFeature{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Icon:     c.Icon,
		Active:   active,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateSafetyFeatureRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Icon   string `db:"icon"   json:"icon"   validate:"omitempty,max=100"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type SafetyFeatureResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *SafetyFeatureResponse) FromModel(model model.SafetyFeature) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetSafetyFeaturesResponse = gDto.Page[SafetyFeatureResponse]

func FromModels(models []model.SafetyFeature, totalData, limit int) GetSafetyFeaturesResponse {
	items := make([]SafetyFeatureResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}

// HotelSafetyFeaturePayload is one entry of the safety feature list of a hotel. Name and
// Icon come from the catalog and are ignored on input.
type HotelSafetyFeaturePayload struct {
	FeatureID string `json:"safety_feature_id" validate:"required,uuid"`
	Name      string `json:"name,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

type SyncHotelSafetyFeaturesRequest = gDto.SyncRequest[HotelSafetyFeaturePayload]

func ToLinkModel(item ordering.DisplayItem[HotelSafetyFeaturePayload], hotelID, user string) model.HotelSafetyFeature {
	return model.HotelSafetyFeature{
		ID:        item.ID,
		HotelID:   hotelID,
		FeatureID: item.Payload.FeatureID,
		SortOrder: item.Order,
		Metadata:  gModel.NewMetadata(user),
	}
}

type HotelSafetyFeatureCodec struct{}

func (HotelSafetyFeatureCodec) ID(row model.HotelSafetyFeature) string { return row.ID }

func (HotelSafetyFeatureCodec) Payload(row model.HotelSafetyFeature) HotelSafetyFeaturePayload {
	return HotelSafetyFeaturePayload{FeatureID: row.FeatureID, Name: row.Name, Icon: row.Icon}
}

func (HotelSafetyFeatureCodec) Columns(payload HotelSafetyFeaturePayload) map[string]any {
	return map[string]any{model.LinkFieldFeatureID: payload.FeatureID}
}

type HotelSafetyFeaturesResponse struct {
	Items []ordering.DisplayItem[HotelSafetyFeaturePayload] `json:"items"`
}

func (r *HotelSafetyFeaturesResponse) FromModels(models []model.HotelSafetyFeature) error {
	ids := make([]string, len(models))
	payloads := make([]HotelSafetyFeaturePayload, len(models))

	for i, mod := range models {
		ids[i] = mod.ID
		payloads[i] = HotelSafetyFeatureCodec{}.Payload(mod)
	}

	items, err := ordering.FromEntities(ids, payloads)
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.Items = items

	return nil
}
