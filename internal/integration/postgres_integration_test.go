//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"resort/config"
	"resort/helper"
	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	bookingModel "resort/internal/domains/booking/model"
	bookingRepo "resort/internal/domains/booking/repository"
	hotelModel "resort/internal/domains/hotel/model"
	hotelRepo "resort/internal/domains/hotel/repository"
	roomModel "resort/internal/domains/room/model"
	roomRepo "resort/internal/domains/room/repository"
	"resort/shared"
	"resort/shared/failure"
	gModel "resort/shared/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	dbUser     = "resort"
	dbPassword = "secret"
	dbName     = "resort"
)

func startPostgres(t *testing.T) *postgres.Connection {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + dbUser,
			"POSTGRES_PASSWORD=" + dbPassword,
			"POSTGRES_DB=" + dbName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = pool.Purge(resource) })

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", dbUser, dbPassword, port, dbName)

	pool.MaxWait = 60 * time.Second

	var db *sqlx.DB
	require.NoError(t, pool.Retry(func() error {
		var err error

		db, err = sqlx.Connect("postgres", dsn)

		return err
	}))

	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../../migrations/postgres")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = port
	cfg.DB.Postgres.Write.Username = dbUser
	cfg.DB.Postgres.Write.Password = dbPassword
	cfg.DB.Postgres.Write.Name = dbName
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.MigrationPath = migrations

	require.NoError(t, helper.Up(cfg))

	return &postgres.Connection{Read: db, Write: db}
}

func TestPostgres_HotelRoomBooking(t *testing.T) {
	conn := startPostgres(t)
	ctx := context.Background()
	ot := mocks.NewOtel()

	hotels := hotelRepo.New(conn, ot)
	rooms := roomRepo.New(conn, ot)
	bookings := bookingRepo.New(conn, ot)

	hotel := hotelModel.Hotel{
		ID:       uuid.NewString(),
		Name:     "Ocean View",
		Slug:     "ocean-view",
		Active:   true,
		Metadata: gModel.NewMetadata("it"),
	}
	require.NoError(t, hotels.Insert(ctx, hotel))

	t.Run("duplicate slug is a conflict", func(t *testing.T) {
		dup := hotel
		dup.ID = uuid.NewString()

		err := hotels.Insert(ctx, dup)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	room := roomModel.Room{
		ID:       uuid.NewString(),
		HotelID:  hotel.ID,
		Name:     "Deluxe",
		Capacity: 2,
		Quantity: 3,
		Price:    100,
		Active:   true,
		Metadata: gModel.NewMetadata("it"),
	}
	require.NoError(t, rooms.Insert(ctx, room))

	day := func(s string) time.Time {
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)

		return d
	}

	for _, b := range []struct {
		in, out, status string
		quantity        int
	}{
		{"2099-01-01", "2099-01-03", bookingModel.StatusConfirmed, 1},
		{"2099-01-02", "2099-01-05", bookingModel.StatusPending, 2},
		{"2099-01-02", "2099-01-04", bookingModel.StatusCancelled, 3},
		{"2099-01-05", "2099-01-06", bookingModel.StatusPending, 1},
	} {
		require.NoError(t, bookings.Insert(ctx, bookingModel.Booking{
			ID:         uuid.NewString(),
			Type:       bookingModel.TypeRoom,
			HotelID:    &hotel.ID,
			RoomID:     &room.ID,
			GuestName:  "Guest",
			GuestEmail: "guest@example.com",
			CheckIn:    day(b.in),
			CheckOut:   day(b.out),
			Guests:     1,
			Quantity:   b.quantity,
			Status:     b.status,
			Metadata:   gModel.NewMetadata("it"),
		}))
	}

	t.Run("overlap ignores cancelled and touching stays", func(t *testing.T) {
		booked, err := bookings.Sum(ctx, bookingModel.FieldQuantity, bookingRepo.OverlapFilter(room.ID, "2099-01-02", "2099-01-05"))
		require.NoError(t, err)
		assert.Equal(t, 3, booked)
	})

	t.Run("activity booking cannot hold a room", func(t *testing.T) {
		err := bookings.Insert(ctx, bookingModel.Booking{
			ID:         uuid.NewString(),
			Type:       bookingModel.TypeActivity,
			RoomID:     &room.ID,
			GuestName:  "Guest",
			GuestEmail: "guest@example.com",
			CheckIn:    day("2099-01-02"),
			CheckOut:   day("2099-01-02"),
			Guests:     1,
			Quantity:   1,
			Status:     bookingModel.StatusPending,
			Metadata:   gModel.NewMetadata("it"),
		})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		booked, err := bookings.Sum(ctx, bookingModel.FieldQuantity, bookingRepo.OverlapFilter(room.ID, "2099-01-02", "2099-01-05"))
		require.NoError(t, err)
		assert.Equal(t, 3, booked)
	})

	t.Run("concurrent reservations stay within stock", func(t *testing.T) {
		var reserved atomic.Int32

		group, gctx := errgroup.WithContext(ctx)
		for range 6 {
			group.Go(func() error {
				err := conn.WithTx(gctx, func(tx *sqlx.Tx) error {
					if err := bookings.LockTx(gctx, tx, room.ID); err != nil {
						return err
					}

					booked, err := bookings.SumTx(gctx, tx, bookingModel.FieldQuantity, bookingRepo.OverlapFilter(room.ID, "2099-02-01", "2099-02-03"))
					if err != nil {
						return err
					}

					if booked+1 > room.Quantity {
						return failure.Conflict("sold out")
					}

					return bookings.InsertTx(gctx, tx, bookingModel.Booking{
						ID:         uuid.NewString(),
						Type:       bookingModel.TypeRoom,
						HotelID:    &hotel.ID,
						RoomID:     &room.ID,
						GuestName:  "Guest",
						GuestEmail: "guest@example.com",
						CheckIn:    day("2099-02-01"),
						CheckOut:   day("2099-02-03"),
						Guests:     1,
						Quantity:   1,
						Status:     bookingModel.StatusPending,
						Metadata:   gModel.NewMetadata("it"),
					})
				})
				if failure.GetCode(err) == http.StatusConflict {
					return nil
				}

				if err == nil {
					reserved.Add(1)
				}

				return err
			})
		}
		require.NoError(t, group.Wait())

		assert.Equal(t, int32(room.Quantity), reserved.Load())

		booked, err := bookings.Sum(ctx, bookingModel.FieldQuantity, bookingRepo.OverlapFilter(room.ID, "2099-02-01", "2099-02-03"))
		require.NoError(t, err)
		assert.Equal(t, room.Quantity, booked)
	})

	t.Run("room with bookings cannot be deleted", func(t *testing.T) {
		err := rooms.Delete(ctx, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName))
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("hotel with rooms cannot be deleted", func(t *testing.T) {
		err := hotels.Delete(ctx, shared.FilterByID(hotel.ID, hotelModel.FieldID, hotelModel.TableName))
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
