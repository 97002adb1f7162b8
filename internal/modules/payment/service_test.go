package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"hotel/internal/domain"
	"hotel/internal/metrics"
	"hotel/internal/modules/reservation"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"
	"hotel/internal/testutil"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

type recordingHook struct {
	mu    sync.Mutex
	calls []*reservation.Transition
}

func (h *recordingHook) AfterTransition(_ context.Context, t *reservation.Transition) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, t)
}

type fixture struct {
	svc     *Service
	db      *gorm.DB
	hook    *recordingHook
	metrics *metrics.Metrics
	guest   *domain.User
	staff   *domain.User
	room    *domain.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{db: db, hook: &recordingHook{}, metrics: metrics.New("hotel-test")}
	f.svc = NewService(
		repository.NewPaymentRepository(db),
		repository.NewUnitOfWork(db, nil),
		f.hook,
		nil,
		nil,
		f.metrics,
		clock.NewFixedClock(testNow),
		nil,
	)
	f.guest = testutil.CreateUser(t, db, "guest@hotel.test", domain.RoleGuest)
	f.staff = testutil.CreateUser(t, db, "desk@hotel.test", domain.RoleOperator)
	f.room = testutil.CreateRoom(t, db, "101", 100, 2, domain.RoomReserved)
	return f
}

func (f *fixture) reservation(t *testing.T, status domain.ReservationStatus) *domain.Reservation {
	return testutil.CreateReservation(t, f.db, f.guest.ID, f.room.ID, testNow, 3, status)
}

func countPayments(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&domain.Payment{}).Count(&n).Error)
	return n
}

func TestCreate_ConfirmsPendingReservation(t *testing.T) {
	f := newFixture(t)
	res := f.reservation(t, domain.ReservationPending)

	p, err := f.svc.Create(context.Background(), f.guest.ID, domain.RoleGuest, CreatePaymentRequest{
		ReservationID: res.ID,
		Method:        domain.PaymentCard,
		Reference:     " VISA-4242 ",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentCompleted, p.Status)
	assert.Equal(t, 300.0, p.Amount)
	assert.Equal(t, "VISA-4242", p.Reference)
	assert.Equal(t, testNow, p.PaidAt.UTC())

	stored := testutil.Reload[domain.Reservation](t, f.db, res.ID)
	assert.True(t, stored.Paid)
	assert.Equal(t, domain.ReservationConfirmed, stored.Status)
	assert.Equal(t, domain.RoomReserved, testutil.Reload[domain.Room](t, f.db, f.room.ID).Status)

	require.Len(t, f.hook.calls, 1)
	assert.Equal(t, domain.ReservationConfirmed, f.hook.calls[0].To)
	series, err := promtest.GatherAndCount(f.metrics.Registry(), "hotel_payments_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}

func TestCreate_AlreadyConfirmedStaysConfirmed(t *testing.T) {
	f := newFixture(t)
	res := f.reservation(t, domain.ReservationConfirmed)

	_, err := f.svc.Create(context.Background(), f.staff.ID, domain.RoleOperator, CreatePaymentRequest{
		ReservationID: res.ID, Method: domain.PaymentCash,
	})
	require.NoError(t, err)
	assert.Empty(t, f.hook.calls)
	assert.Equal(t, domain.ReservationConfirmed, testutil.Reload[domain.Reservation](t, f.db, res.ID).Status)
}

func TestCreate_DuplicatePaymentRejected(t *testing.T) {
	f := newFixture(t)
	res := f.reservation(t, domain.ReservationPending)
	req := CreatePaymentRequest{ReservationID: res.ID, Method: domain.PaymentTransfer}

	_, err := f.svc.Create(context.Background(), f.guest.ID, domain.RoleGuest, req)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), f.guest.ID, domain.RoleGuest, req)
	assert.True(t, errs.Is(err, ErrAlreadyPaid), "got %v", err)
	assert.Equal(t, int64(1), countPayments(t, f.db))
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		actor   func(f *fixture) (int64, domain.UserRole)
		req     func(res *domain.Reservation) CreatePaymentRequest
		wantErr error
	}{
		{
			name:   "cancelled reservation",
			status: domain.ReservationCancelled,
			actor:  func(f *fixture) (int64, domain.UserRole) { return f.staff.ID, domain.RoleOperator },
			req: func(res *domain.Reservation) CreatePaymentRequest {
				return CreatePaymentRequest{ReservationID: res.ID, Method: domain.PaymentCash}
			},
			wantErr: ErrReservationClosed,
		},
		{
			name:   "no-show reservation",
			status: domain.ReservationNoShow,
			actor:  func(f *fixture) (int64, domain.UserRole) { return f.staff.ID, domain.RoleOperator },
			req: func(res *domain.Reservation) CreatePaymentRequest {
				return CreatePaymentRequest{ReservationID: res.ID, Method: domain.PaymentCash}
			},
			wantErr: ErrReservationClosed,
		},
		{
			name:   "missing reservation",
			status: domain.ReservationPending,
			actor:  func(f *fixture) (int64, domain.UserRole) { return f.staff.ID, domain.RoleAdmin },
			req: func(*domain.Reservation) CreatePaymentRequest {
				return CreatePaymentRequest{ReservationID: 9999, Method: domain.PaymentCash}
			},
			wantErr: ErrReservationNotFound,
		},
		{
			name:   "someone else's reservation",
			status: domain.ReservationPending,
			actor:  func(f *fixture) (int64, domain.UserRole) { return f.staff.ID, domain.RoleGuest },
			req: func(res *domain.Reservation) CreatePaymentRequest {
				return CreatePaymentRequest{ReservationID: res.ID, Method: domain.PaymentCash}
			},
			wantErr: ErrReservationNotFound,
		},
		{
			name:   "unknown method",
			status: domain.ReservationPending,
			actor:  func(f *fixture) (int64, domain.UserRole) { return f.staff.ID, domain.RoleAdmin },
			req: func(res *domain.Reservation) CreatePaymentRequest {
				return CreatePaymentRequest{ReservationID: res.ID, Method: "BITCOIN"}
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.reservation(t, tt.status)
			actorID, role := tt.actor(f)

			_, err := f.svc.Create(context.Background(), actorID, role, tt.req(res))
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.Zero(t, countPayments(t, f.db))
			assert.False(t, testutil.Reload[domain.Reservation](t, f.db, res.ID).Paid)
		})
	}
}

func TestGetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := f.reservation(t, domain.ReservationPending)
	p, err := f.svc.Create(ctx, f.guest.ID, domain.RoleGuest, CreatePaymentRequest{ReservationID: res.ID, Method: domain.PaymentCard})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, f.guest.ID, domain.RoleGuest, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Reservation)
	assert.Equal(t, res.ID, got.Reservation.ID)

	other := testutil.CreateUser(t, f.db, "other@hotel.test", domain.RoleGuest)
	_, err = f.svc.Get(ctx, other.ID, domain.RoleGuest, p.ID)
	assert.True(t, errs.Is(err, ErrPaymentNotFound))

	list, err := f.svc.List(ctx, domain.PaymentCompleted, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	list, err = f.svc.List(ctx, domain.PaymentRefunded, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	_, err = f.svc.List(ctx, "PERDIDO", 10, 0)
	assert.True(t, errs.Is(err, ErrValidation))
}

func TestHandler_DuplicatePaymentReturns400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	res := f.reservation(t, domain.ReservationPending)

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		c.Set("user_id", f.guest.ID)
		c.Set("role", string(domain.RoleGuest))
	})
	NewHandler(f.svc).RegisterProtectedRoutes(api)

	post := func() *httptest.ResponseRecorder {
		body, _ := json.Marshal(gin.H{"reservaId": res.ID, "metodo": "EFECTIVO"})
		req := httptest.NewRequest(http.MethodPost, "/api/pagos", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data domain.Payment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = post()
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ALREADY_PAID")
	assert.Equal(t, int64(1), countPayments(t, f.db))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pagos/"+strconv.FormatInt(created.Data.ID, 10), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"metodo":"EFECTIVO"`)
}
