package dto

import (
	"resort/internal/domains/activity/model"
	packageDto "resort/internal/domains/activitypackage/model/dto"
	itineraryDto "resort/internal/domains/itinerary/model/dto"
	policyDto "resort/internal/domains/policy/model/dto"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	Name        string `json:"name"        validate:"required,max=150"`
	Slug        string `json:"slug"        validate:"omitempty,max=160,slug"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Location    string `json:"location"    validate:"required,max=150"`
	Duration    string `json:"duration"    validate:"omitempty,max=50"`
	Image       string `json:"image"       validate:"omitempty,url"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateActivityRequest) ToModel(user string) model.Activity {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	return model.Activity{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        slug,
		Description: c.Description,
		Location:    c.Location,
		Duration:    c.Duration,
		Image:       c.Image,
		Active:      active,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateActivityRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Slug        string `db:"slug"        json:"slug"        validate:"omitempty,max=160,slug"`
	Description string `db:"description" json:"description" validate:"omitempty,max=5000"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=150"`
	Duration    string `db:"duration"    json:"duration"    validate:"omitempty,max=50"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type ActivityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *ActivityResponse) FromModel(model model.Activity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Location = model.Location
	r.Duration = model.Duration
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetActivitiesResponse = gDto.Page[ActivityResponse]

func FromModels(models []model.Activity, totalData, limit int) GetActivitiesResponse {
	items := make([]ActivityResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}

type DetailResponse struct {
	ActivityResponse
	Packages  packageDto.PackageListResponse `json:"packages"`
	Itinerary itineraryDto.ItineraryResponse `json:"itinerary"`
	Policies  policyDto.PolicyListResponse   `json:"policies"`
}
