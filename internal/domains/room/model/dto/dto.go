package dto

import (
	"mime/multipart"
	"time"

	"resort/internal/domains/room/model"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID     string                `json:"hotel_id"    validate:"required,uuid"`
	Name        string                `json:"name"        validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=2000"`
	Capacity    int                   `json:"capacity"    validate:"required,min=1"`
	Quantity    int                   `json:"quantity"    validate:"required,min=1"`
	Price       float64               `json:"price"       validate:"min=0"`
	Image       *multipart.FileHeader `json:"image"       swaggerignore:"true"              validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		HotelID:     c.HotelID,
		Name:        c.Name,
		Description: c.Description,
		Capacity:    c.Capacity,
		Quantity:    c.Quantity,
		Price:       c.Price,
		Image:       imageURL,
		Active:      active,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Quantity    *int                  `db:"quantity"    json:"quantity"    validate:"omitempty,min=1"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"     swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Quantity = model.Quantity
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse = gDto.Page[RoomResponse]

func FromModels(models []model.Room, totalData, limit int) GetRoomsResponse {
	items := make([]RoomResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}

// StayRequest is a date range, check out exclusive.
type StayRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// Dates parses the range in the app timezone. Check out must be after check in.
func (s StayRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := timezone.ParseDate(s.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err)
	}

	checkOut, err := timezone.ParseDate(s.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out must be after check_in")
	}

	return checkIn, checkOut, nil
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Quantity  int    `json:"quantity"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

func (r *AvailabilityResponse) FromModel(room model.Room, stay StayRequest, booked int) {
	r.RoomID = room.ID
	r.CheckIn = stay.CheckIn
	r.CheckOut = stay.CheckOut
	r.Quantity = room.Quantity
	r.Booked = booked
	r.Available = max(room.Quantity-booked, 0)
}
