package model

import (
	"time"

	"resort/shared/cache"
	"resort/shared/model"
	"resort/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldType              = "booking_type"
	FieldHotelID           = "hotel_id"
	FieldRoomID            = "room_id"
	FieldRoomPlanID        = "room_plan_id"
	FieldActivityID        = "activity_id"
	FieldActivityPackageID = "activity_package_id"
	FieldGuestName         = "guest_name"
	FieldGuestEmail        = "guest_email"
	FieldGuestPhone        = "guest_phone"
	FieldCheckIn           = "check_in"
	FieldCheckOut          = "check_out"
	FieldGuests            = "guests"
	FieldQuantity          = "quantity"
	FieldTotalPrice        = "total_price"
	FieldStatus            = "status"
	FieldNotes             = "notes"
	FieldCreatedBy         = "created_by"
)

const (
	TypeRoom     = "room"
	TypeActivity = "activity"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	EventCreated   = "booking.created"
	EventUpdated   = "booking.updated"
	EventCancelled = "booking.cancelled"
)

var SortableFields = []string{FieldCheckIn, FieldStatus, FieldTotalPrice, "created_at", "modified_at"}

// transitions lists the statuses a booking may move to from each status.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// CanTransition reports whether a booking in status from may move to status to.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Booking reserves either a room (hotel, room, room plan) or an activity
// package. CheckOut is exclusive and equals CheckIn for activities.
type Booking struct {
	ID                string    `db:"id"`
	Type              string    `db:"booking_type"`
	HotelID           *string   `db:"hotel_id"`
	RoomID            *string   `db:"room_id"`
	RoomPlanID        *string   `db:"room_plan_id"`
	ActivityID        *string   `db:"activity_id"`
	ActivityPackageID *string   `db:"activity_package_id"`
	GuestName         string    `db:"guest_name"`
	GuestEmail        string    `db:"guest_email"`
	GuestPhone        string    `db:"guest_phone"`
	CheckIn           time.Time `db:"check_in"`
	CheckOut          time.Time `db:"check_out"`
	Guests            int       `db:"guests"`
	Quantity          int       `db:"quantity"`
	TotalPrice        float64   `db:"total_price"`
	Status            string    `db:"status"`
	Notes             string    `db:"notes"`
	model.Metadata
}

// Nights is the length of stay of a room booking.
func (b Booking) Nights() int {
	return timezone.DaysBetween(b.CheckIn, b.CheckOut)
}

// AvailabilityNamespace is the cache namespace of the availability of a room.
func AvailabilityNamespace(roomID string) string {
	return cache.Namespace("availability", "room", roomID)
}

// Event is published on every booking state change.
type Event struct {
	Type        string  `json:"type"`
	BookingID   string  `json:"booking_id"`
	BookingType string  `json:"booking_type"`
	RoomID      string  `json:"room_id,omitempty"`
	ActivityID  string  `json:"activity_id,omitempty"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"total_price"`
	At          string  `json:"at"`
}

func (b Booking) Event(eventType, at string) Event {
	event := Event{
		Type:        eventType,
		BookingID:   b.ID,
		BookingType: b.Type,
		Status:      b.Status,
		TotalPrice:  b.TotalPrice,
		At:          at,
	}

	if b.RoomID != nil {
		event.RoomID = *b.RoomID
	}

	if b.ActivityID != nil {
		event.ActivityID = *b.ActivityID
	}

	return event
}
