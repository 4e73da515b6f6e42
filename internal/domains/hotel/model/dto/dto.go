package dto

import (
	amenityDto "resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/hotel/model"
	policyDto "resort/internal/domains/policy/model/dto"
	roomDto "resort/internal/domains/room/model/dto"
	safetyDto "resort/internal/domains/safetyfeature/model/dto"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string `json:"name"        validate:"required,max=150"`
	Slug        string `json:"slug"        validate:"omitempty,max=160,slug"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Location    string `json:"location"    validate:"required,max=150"`
	Address     string `json:"address"     validate:"omitempty,max=500"`
	StarRating  int    `json:"star_rating" validate:"min=0,max=5"`
	Image       string `json:"image"       validate:"omitempty,url"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

// ToModel derives the slug from the name when none is given.
func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Name)
	}

	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        slug,
		Description: c.Description,
		Location:    c.Location,
		Address:     c.Address,
		StarRating:  c.StarRating,
		Image:       c.Image,
		Active:      active,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateHotelRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Slug        string `db:"slug"        json:"slug"        validate:"omitempty,max=160,slug"`
	Description string `db:"description" json:"description" validate:"omitempty,max=5000"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=150"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=500"`
	StarRating  *int   `db:"star_rating" json:"star_rating" validate:"omitempty,min=0,max=5"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type HotelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	StarRating  int    `json:"star_rating"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Location = model.Location
	r.Address = model.Address
	r.StarRating = model.StarRating
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse = gDto.Page[HotelResponse]

func FromModels(models []model.Hotel, totalData, limit int) GetHotelsResponse {
	items := make([]HotelResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}

// DetailResponse is a hotel with everything its public page shows.
type DetailResponse struct {
	HotelResponse
	Rooms          []roomDto.RoomResponse                `json:"rooms"`
	Policies       policyDto.PolicyListResponse          `json:"policies"`
	Amenities      amenityDto.HotelAmenitiesResponse     `json:"amenities"`
	SafetyFeatures safetyDto.HotelSafetyFeaturesResponse `json:"safety_features"`
}
