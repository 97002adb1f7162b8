package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"hotel/internal/domain"
	"hotel/internal/middleware"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"
	"hotel/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

/* ==================== MOCKS ==================== */

type MockRoomStats struct {
	mock.Mock
}

func (m *MockRoomStats) CountByStatus(ctx context.Context) (map[domain.RoomStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.RoomStatus]int64), args.Error(1)
}

/* ==================== HELPERS ==================== */

type fixture struct {
	svc   *Service
	db    *gorm.DB
	admin *domain.User
	guest *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db: db,
		svc: NewService(
			repository.NewUserRepository(db),
			repository.NewRoomRepository(db),
			repository.NewReservationRepository(db),
			repository.NewPaymentRepository(db),
			repository.NewContactRepository(db),
			repository.NewActivityRepository(db),
			repository.NewUnitOfWork(db, nil),
			nil,
		),
	}
	f.admin = testutil.CreateUser(t, db, "admin@hotel.test", domain.RoleAdmin)
	f.guest = testutil.CreateUser(t, db, "guest@hotel.test", domain.RoleGuest)
	return f
}

/* ==================== TESTS ==================== */

func TestListUsers_FilterByRole(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "desk@hotel.test", domain.RoleOperator)

	users, total, err := f.svc.ListUsers(context.Background(), "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 3)

	users, total, err = f.svc.ListUsers(context.Background(), domain.RoleOperator, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "desk@hotel.test", users[0].Email)

	_, _, err = f.svc.ListUsers(context.Background(), "ROOT", 10, 0)
	assert.True(t, errs.Is(err, ErrUnknownRoleName))
}

func TestChangeRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.svc.ChangeRole(ctx, f.admin.ID, f.guest.ID, domain.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, u.Role)

	acts, err := f.svc.Activities(ctx, ActivityQuery{Entity: domain.EntityUser})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, domain.ActionUserRole, acts[0].Action)

	_, err = f.svc.ChangeRole(ctx, f.admin.ID, f.admin.ID, domain.RoleGuest)
	assert.True(t, errs.Is(err, ErrSelfChange))

	_, err = f.svc.ChangeRole(ctx, f.admin.ID, 999, domain.RoleGuest)
	assert.True(t, errs.Is(err, ErrUserNotFound))

	_, err = f.svc.ChangeRole(ctx, f.admin.ID, f.guest.ID, "DIOS")
	assert.True(t, errs.Is(err, ErrUnknownRoleName))
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	room := testutil.CreateRoom(t, f.db, "101", 100, 2, domain.RoomAvailable)
	testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, time.Now(), 2, domain.ReservationCheckedOut)
	idle := testutil.CreateUser(t, f.db, "idle@hotel.test", domain.RoleGuest)

	err := f.svc.DeleteUser(ctx, f.admin.ID, f.guest.ID)
	assert.True(t, errs.Is(err, ErrUserHasHistory), "got %v", err)

	err = f.svc.DeleteUser(ctx, f.admin.ID, f.admin.ID)
	assert.True(t, errs.Is(err, ErrSelfChange))

	require.NoError(t, f.svc.DeleteUser(ctx, f.admin.ID, idle.ID))
	var n int64
	require.NoError(t, f.db.Model(&domain.User{}).Where("id = ?", idle.ID).Count(&n).Error)
	assert.Zero(t, n)

	err = f.svc.DeleteUser(ctx, f.admin.ID, idle.ID)
	assert.True(t, errs.Is(err, ErrUserNotFound))
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	occupied := testutil.CreateRoom(t, f.db, "101", 100, 2, domain.RoomOccupied)
	testutil.CreateRoom(t, f.db, "102", 100, 2, domain.RoomAvailable)
	testutil.CreateRoom(t, f.db, "103", 100, 2, domain.RoomAvailable)
	testutil.CreateRoom(t, f.db, "104", 100, 2, domain.RoomMaintenance)

	res := testutil.CreateReservation(t, f.db, f.guest.ID, occupied.ID, time.Now(), 2, domain.ReservationCheckedIn)
	require.NoError(t, f.db.Create(&domain.Payment{
		ReservationID: res.ID, Amount: 200, Method: domain.PaymentCash,
		Status: domain.PaymentCompleted, PaidAt: time.Now(),
	}).Error)
	require.NoError(t, f.db.Create(&domain.Contact{
		Name: "Ana", Email: "ana@example.com", Subject: "s", Message: "m", Status: domain.ContactNew,
	}).Error)

	st, err := f.svc.Statistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), st.TotalRooms)
	assert.Equal(t, int64(2), st.RoomsByStatus[domain.RoomAvailable])
	assert.Equal(t, 0.25, st.OccupancyRate)
	assert.Equal(t, int64(1), st.ReservationsByStatus[domain.ReservationCheckedIn])
	assert.Equal(t, int64(1), st.TotalReservations)
	assert.Equal(t, 200.0, st.Revenue)
	assert.Equal(t, int64(2), st.Users)
	assert.Equal(t, int64(1), st.NewContacts)
}

func TestStatistics_EmptyHotel(t *testing.T) {
	f := newFixture(t)
	st, err := f.svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.TotalRooms)
	assert.Zero(t, st.OccupancyRate)
}

func TestStatistics_PropagatesErrors(t *testing.T) {
	f := newFixture(t)
	rooms := new(MockRoomStats)
	rooms.On("CountByStatus", mock.Anything).Return(nil, errs.New("db down"))
	f.svc.rooms = rooms

	_, err := f.svc.Statistics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	rooms.AssertExpectations(t)
}

func TestActivities_RejectsUnknownEntity(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Activities(context.Background(), ActivityQuery{Entity: "planeta"})
	assert.True(t, errs.Is(err, ErrUnknownEntity))
}

func TestHandler_AdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)

	router := func(userID int64, role domain.UserRole) *gin.Engine {
		r := gin.New()
		api := r.Group("/api", func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Set("role", string(role))
		})
		NewHandler(f.svc).RegisterRoutes(api.Group("", middleware.AdminOnly()))
		return r
	}
	do := func(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do(router(f.guest.ID, domain.RoleGuest), http.MethodGet, "/api/admin/estadisticas", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := router(f.admin.ID, domain.RoleAdmin)
	w = do(admin, http.MethodGet, "/api/admin/estadisticas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"usuarios":2`)

	w = do(admin, http.MethodGet, "/api/admin/usuarios?rol=USUARIO", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guest@hotel.test")
	assert.NotContains(t, w.Body.String(), "password")

	guestID := strconv.FormatInt(f.guest.ID, 10)
	w = do(admin, http.MethodPatch, "/api/admin/usuarios/"+guestID+"/rol", `{"rol":"OPERADOR"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"OPERADOR"`)

	w = do(admin, http.MethodDelete, "/api/admin/usuarios/"+strconv.FormatInt(f.admin.ID, 10), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SELF_CHANGE")

	w = do(admin, http.MethodDelete, "/api/admin/usuarios/"+guestID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(admin, http.MethodGet, "/api/admin/actividades?entidad=usuario&limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "USUARIO_ELIMINADO")
}
