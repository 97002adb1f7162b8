// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hotel/internal/database"
	"hotel/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Connect(dsn, database.Options{}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// CreateUser inserts a user whose password is "secret123".
func CreateUser(t *testing.T, db *gorm.DB, email string, role domain.UserRole) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &domain.User{
		Name:         strings.Split(email, "@")[0],
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateRoom(t *testing.T, db *gorm.DB, number string, price float64, capacity int, status domain.RoomStatus) *domain.Room {
	t.Helper()

	r := &domain.Room{
		Number:    number,
		Type:      domain.RoomDouble,
		Price:     price,
		Capacity:  capacity,
		Status:    status,
		Amenities: []string{"wifi", "tv"},
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func CreateReservation(t *testing.T, db *gorm.DB, userID, roomID int64, checkIn time.Time, nights int, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()

	in := domain.DateOf(checkIn)
	r := &domain.Reservation{
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    in,
		CheckOut:   in.AddDate(0, 0, nights),
		Guests:     1,
		TotalPrice: float64(nights) * 100,
		Status:     status,
	}
	require.NoError(t, db.Omit("User", "Room", "Payment").Create(r).Error)
	return r
}

// Reload reads the current row state of dst by primary key.
func Reload[T any](t *testing.T, db *gorm.DB, id int64) *T {
	t.Helper()
	var out T
	require.NoError(t, db.Unscoped().First(&out, id).Error)
	return &out
}
