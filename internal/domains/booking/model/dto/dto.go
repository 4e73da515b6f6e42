package dto

import (
	"time"

	"resort/internal/domains/booking/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest books a room (room_id, optional room_plan_id,
// check_in and check_out) or an activity package (activity_package_id and
// the day in check_in).
type CreateBookingRequest struct {
	Type              string `json:"booking_type"        validate:"required,oneof=room activity"`
	RoomID            string `json:"room_id"             validate:"omitempty,uuid"`
	RoomPlanID        string `json:"room_plan_id"        validate:"omitempty,uuid"`
	ActivityPackageID string `json:"activity_package_id" validate:"omitempty,uuid"`
	GuestName         string `json:"guest_name"          validate:"required,max=100"`
	GuestEmail        string `json:"guest_email"         validate:"required,email,max=100"`
	GuestPhone        string `json:"guest_phone"         validate:"omitempty,max=20"`
	CheckIn           string `json:"check_in"            validate:"required,datetime=2006-01-02"`
	CheckOut          string `json:"check_out"           validate:"omitempty,datetime=2006-01-02"`
	Guests            int    `json:"guests"              validate:"required,min=1,max=50"`
	Quantity          int    `json:"quantity"            validate:"omitempty,min=1,max=20"`
	Notes             string `json:"notes"               validate:"omitempty,max=1000"`
}

// Rooms is the number of rooms requested, one when omitted.
func (c *CreateBookingRequest) Rooms() int {
	if c.Quantity == 0 {
		return 1
	}

	return c.Quantity
}

// CheckTarget reports the fields the booking type needs but misses, and
// rejects the ones that belong to the other type.
func (c *CreateBookingRequest) CheckTarget() error {
	switch c.Type {
	case model.TypeRoom:
		if c.RoomID == constant.Empty {
			return failure.BadRequestFromString("room_id is required")
		}

		if c.CheckOut == constant.Empty {
			return failure.BadRequestFromString("check_out is required")
		}

		if c.ActivityPackageID != constant.Empty {
			return failure.BadRequestFromString("activity_package_id is not allowed on a room booking")
		}
	case model.TypeActivity:
		if c.ActivityPackageID == constant.Empty {
			return failure.BadRequestFromString("activity_package_id is required")
		}

		if c.RoomID != constant.Empty || c.RoomPlanID != constant.Empty {
			return failure.BadRequestFromString("room_id and room_plan_id are not allowed on an activity booking")
		}
	}

	return nil
}

// NotInPast fails when day is before today in the app timezone.
func NotInPast(day time.Time) error {
	if day.Before(timezone.Today()) {
		return failure.BadRequestFromString("check_in cannot be in the past")
	}

	return nil
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	booking := model.Booking{
		ID:         uuid.NewString(),
		Type:       c.Type,
		GuestName:  c.GuestName,
		GuestEmail: c.GuestEmail,
		GuestPhone: c.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     c.Guests,
		Quantity:   c.Rooms(),
		TotalPrice: totalPrice,
		Status:     model.StatusPending,
		Notes:      c.Notes,
		Metadata:   gModel.NewMetadata(user),
	}

	switch c.Type {
	case model.TypeRoom:
		booking.RoomID = &c.RoomID

		if c.RoomPlanID != constant.Empty {
			booking.RoomPlanID = &c.RoomPlanID
		}
	case model.TypeActivity:
		booking.ActivityPackageID = &c.ActivityPackageID
	}

	return booking
}

type UpdateBookingRequest struct {
	GuestName  string `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=100"`
	GuestEmail string `db:"guest_email" json:"guest_email" validate:"omitempty,email,max=100"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=20"`
	Notes      string `db:"notes"       json:"notes"       validate:"omitempty,max=1000"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID                string  `json:"id"`
	Type              string  `json:"booking_type"`
	HotelID           string  `json:"hotel_id,omitempty"`
	RoomID            string  `json:"room_id,omitempty"`
	RoomPlanID        string  `json:"room_plan_id,omitempty"`
	ActivityID        string  `json:"activity_id,omitempty"`
	ActivityPackageID string  `json:"activity_package_id,omitempty"`
	GuestName         string  `json:"guest_name"`
	GuestEmail        string  `json:"guest_email"`
	GuestPhone        string  `json:"guest_phone"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	Nights            int     `json:"nights"`
	Guests            int     `json:"guests"`
	Quantity          int     `json:"quantity"`
	TotalPrice        float64 `json:"total_price"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
	gDto.Metadata
}

func value(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Type = model.Type
	r.HotelID = value(model.HotelID)
	r.RoomID = value(model.RoomID)
	r.RoomPlanID = value(model.RoomPlanID)
	r.ActivityID = value(model.ActivityID)
	r.ActivityPackageID = value(model.ActivityPackageID)
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.Nights = model.Nights()
	r.Guests = model.Guests
	r.Quantity = model.Quantity
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse = gDto.Page[BookingResponse]

func FromModels(models []model.Booking, totalData, limit int) GetBookingsResponse {
	items := make([]BookingResponse, len(models))
	for i, mod := range models {
		items[i].FromModel(mod)
	}

	return gDto.NewPage(items, totalData, limit)
}
