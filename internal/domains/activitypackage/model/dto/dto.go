package dto

import (
	"resort/internal/domains/activitypackage/model"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/ordering"
)

type PackagePayload struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price"       validate:"gt=0"`
	MaxGuests   int     `json:"max_guests"  validate:"min=0"`
}

type SyncPackagesRequest = gDto.SyncRequest[PackagePayload]

func ToModel(item ordering.DisplayItem[PackagePayload], activityID, user string) model.ActivityPackage {
	return model.ActivityPackage{
		ID:          item.ID,
		ActivityID:  activityID,
		Name:        item.Payload.Name,
		Description: item.Payload.Description,
		Price:       item.Payload.Price,
		MaxGuests:   item.Payload.MaxGuests,
		SortOrder:   item.Order,
		Metadata:    gModel.NewMetadata(user),
	}
}

// PackageCodec reads the payload back from a stored package.
type PackageCodec struct{}

func (PackageCodec) ID(row model.ActivityPackage) string { return row.ID }

func (PackageCodec) Payload(row model.ActivityPackage) PackagePayload {
	return PackagePayload{Name: row.Name, Description: row.Description, Price: row.Price, MaxGuests: row.MaxGuests}
}

func (PackageCodec) Columns(payload PackagePayload) map[string]any {
	return map[string]any{
		model.FieldName:        payload.Name,
		model.FieldDescription: payload.Description,
		model.FieldPrice:       payload.Price,
		model.FieldMaxGuests:   payload.MaxGuests,
	}
}

type UpdatePackageRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	MaxGuests   *int     `db:"max_guests"  json:"max_guests"  validate:"omitempty,min=0"`
}

// PackageResponse is one package. MaxGuests 0 means unlimited.
type PackageResponse struct {
	ID          string  `json:"id"`
	ActivityID  string  `json:"activity_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	MaxGuests   int     `json:"max_guests"`
	SortOrder   int     `json:"sort_order"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.ActivityPackage) {
	r.ID = model.ID
	r.ActivityID = model.ActivityID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.MaxGuests = model.MaxGuests
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type PackageListResponse struct {
	Items []ordering.DisplayItem[PackagePayload] `json:"items"`
}

func (r *PackageListResponse) FromModels(models []model.ActivityPackage) error {
	ids := make([]string, len(models))
	payloads := make([]PackagePayload, len(models))

	for i, mod := range models {
		ids[i] = mod.ID
		payloads[i] = PackageCodec{}.Payload(mod)
	}

	items, err := ordering.FromEntities(ids, payloads)
	if err != nil {
		return err //nolint:wrapcheck
	}

	r.Items = items

	return nil
}
