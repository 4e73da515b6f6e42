package repository_test

import (
	"testing"

	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/repository"

	"github.com/stretchr/testify/assert"
)

func TestOverlapFilter(t *testing.T) {
	filter := repository.OverlapFilter("room-1", "2099-03-10", "2099-03-13")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.booking_type = :booking_type AND bookings.room_id = :room_id AND bookings.status != :status"+
		" AND bookings.check_in < :overlap_check_out AND bookings.check_out > :overlap_check_in)", where)
	assert.Equal(t, map[string]any{
		model.FieldType:     model.TypeRoom,
		model.FieldRoomID:   "room-1",
		model.FieldStatus:   model.StatusCancelled,
		"overlap_check_out": "2099-03-13",
		"overlap_check_in":  "2099-03-10",
	}, args)
}
