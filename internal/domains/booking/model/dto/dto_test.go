package dto_test

import (
	"net/http"
	"testing"
	"time"

	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	roomID    = "7d0c5a0e-3f43-4a57-9b1e-0c2f1f8e6a11"
	planID    = "0e5b7c4a-8d2e-4b6f-a1c3-5e9f2d7b8a22"
	packageID = "4a1f9e3b-6c7d-4e8a-b2f5-1d3c5e7f9a33"
)

func TestCreateBookingRequest_CheckTarget(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		wantCode int
	}{
		{
			name: "room",
			req:  dto.CreateBookingRequest{Type: model.TypeRoom, RoomID: roomID, RoomPlanID: planID, CheckOut: "2099-03-13"},
		},
		{
			name:     "room without room id",
			req:      dto.CreateBookingRequest{Type: model.TypeRoom, CheckOut: "2099-03-13"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "room without check out",
			req:      dto.CreateBookingRequest{Type: model.TypeRoom, RoomID: roomID},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "room with activity package",
			req:      dto.CreateBookingRequest{Type: model.TypeRoom, RoomID: roomID, CheckOut: "2099-03-13", ActivityPackageID: packageID},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "activity",
			req:  dto.CreateBookingRequest{Type: model.TypeActivity, ActivityPackageID: packageID},
		},
		{
			name:     "activity without package",
			req:      dto.CreateBookingRequest{Type: model.TypeActivity},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "activity with room",
			req:      dto.CreateBookingRequest{Type: model.TypeActivity, ActivityPackageID: packageID, RoomID: roomID},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "activity with room plan",
			req:      dto.CreateBookingRequest{Type: model.TypeActivity, ActivityPackageID: packageID, RoomPlanID: planID},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.CheckTarget()
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("room keeps only room fields", func(t *testing.T) {
		req := dto.CreateBookingRequest{Type: model.TypeRoom, RoomID: roomID, RoomPlanID: planID, ActivityPackageID: packageID, Guests: 2}

		booking := req.ToModel("guest", time.Time{}, time.Time{}, 0)

		require.NotNil(t, booking.RoomID)
		assert.Equal(t, roomID, *booking.RoomID)
		require.NotNil(t, booking.RoomPlanID)
		assert.Equal(t, planID, *booking.RoomPlanID)
		assert.Nil(t, booking.ActivityPackageID)
		assert.Equal(t, 1, booking.Quantity)
		assert.Equal(t, model.StatusPending, booking.Status)
	})

	t.Run("room without plan", func(t *testing.T) {
		req := dto.CreateBookingRequest{Type: model.TypeRoom, RoomID: roomID}

		booking := req.ToModel("guest", time.Time{}, time.Time{}, 0)

		require.NotNil(t, booking.RoomID)
		assert.Nil(t, booking.RoomPlanID)
	})

	t.Run("activity keeps only the package", func(t *testing.T) {
		req := dto.CreateBookingRequest{Type: model.TypeActivity, ActivityPackageID: packageID, RoomID: roomID, RoomPlanID: planID}

		booking := req.ToModel("guest", time.Time{}, time.Time{}, 0)

		require.NotNil(t, booking.ActivityPackageID)
		assert.Equal(t, packageID, *booking.ActivityPackageID)
		assert.Nil(t, booking.RoomID)
		assert.Nil(t, booking.RoomPlanID)
		assert.Equal(t, model.TypeActivity, booking.Type)
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	checkIn := time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2099, 3, 13, 0, 0, 0, 0, time.UTC)
	room := roomID

	var res dto.BookingResponse
	res.FromModel(model.Booking{
		ID:       "b1",
		Type:     model.TypeRoom,
		RoomID:   &room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Metadata: gModel.NewMetadata("guest"),
	})

	assert.Equal(t, "2099-03-10", res.CheckIn)
	assert.Equal(t, "2099-03-13", res.CheckOut)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, roomID, res.RoomID)
	assert.Empty(t, res.ActivityPackageID)
}
