package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel/internal/domain"
	"hotel/internal/events"
	"hotel/internal/metrics"
	"hotel/internal/pkg/clock"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"
	"hotel/internal/testutil"

	"github.com/google/go-cmp/cmp"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 5, 4, 15, 30, 0, 0, time.UTC)

type sentNotification struct {
	UserID int64
	Type   domain.NotificationType
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (f *fakeNotifier) Send(_ context.Context, userID int64, typ domain.NotificationType, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentNotification{UserID: userID, Type: typ})
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type countingCatalog struct {
	mu sync.Mutex
	n  int
}

func (c *countingCatalog) Invalidate() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

type fixture struct {
	svc       *Service
	db        *gorm.DB
	notifier  *fakeNotifier
	publisher *recordingPublisher
	catalog   *countingCatalog
	metrics   *metrics.Metrics
	clock     *clock.FixedClock
	guest     *domain.User
	staff     *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:        db,
		notifier:  &fakeNotifier{},
		publisher: &recordingPublisher{},
		catalog:   &countingCatalog{},
		metrics:   metrics.New("hotel-test"),
		clock:     clock.NewFixedClock(testNow),
	}
	f.svc = NewService(
		repository.NewReservationRepository(db),
		repository.NewUnitOfWork(db, nil),
		f.notifier,
		f.catalog,
		f.publisher,
		f.metrics,
		f.clock,
		nil,
	)
	f.guest = testutil.CreateUser(t, db, "guest@hotel.test", domain.RoleGuest)
	f.staff = testutil.CreateUser(t, db, "front@hotel.test", domain.RoleOperator)
	return f
}

func (f *fixture) request(roomID int64, nights int) CreateReservationRequest {
	return CreateReservationRequest{
		RoomID:   roomID,
		CheckIn:  testNow.Format(domain.DateLayout),
		CheckOut: testNow.AddDate(0, 0, nights).Format(domain.DateLayout),
		Guests:   2,
	}
}

func countReservations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Reservation{}).Count(&n).Error)
	return n
}

func TestCreate_Success(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "101", 85.5, 2, domain.RoomAvailable)

	req := f.request(room.ID, 2)
	price := 171.0
	req.TotalPrice = &price

	res, err := f.svc.Create(context.Background(), f.guest.ID, req)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationPending, res.Status)
	assert.Equal(t, 171.0, res.TotalPrice)
	assert.Equal(t, domain.DateOf(testNow), res.CheckIn)
	assert.Equal(t, domain.RoomReserved, testutil.Reload[domain.Room](t, f.db, room.ID).Status)

	assert.Equal(t, []sentNotification{{f.guest.ID, domain.NotifReservationCreated}}, f.notifier.sent)
	assert.Equal(t, []string{events.ReservationCreated}, f.publisher.types())
	assert.Equal(t, 1, f.catalog.n)
	series, err := promtest.GatherAndCount(f.metrics.Registry(), "hotel_reservation_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	var activity domain.Activity
	require.NoError(t, f.db.Where("entity = ? AND entity_id = ?", domain.EntityReservation, res.ID).First(&activity).Error)
	assert.Equal(t, domain.ActionReservationCreated, activity.Action)
}

func TestCreate_RoomNotAvailable(t *testing.T) {
	for _, status := range []domain.RoomStatus{domain.RoomMaintenance, domain.RoomOccupied, domain.RoomReserved} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			room := testutil.CreateRoom(t, f.db, "102", 100, 2, status)

			_, err := f.svc.Create(context.Background(), f.guest.ID, f.request(room.ID, 1))

			assert.True(t, errs.Is(err, ErrRoomNotAvailable), "got %v", err)
			assert.Zero(t, countReservations(t, f.db))
			assert.Equal(t, status, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "103", 100, 2, domain.RoomAvailable)
	wrong := 150.0

	tests := []struct {
		name    string
		mutate  func(r *CreateReservationRequest)
		wantErr error
	}{
		{"checkout before checkin", func(r *CreateReservationRequest) { r.CheckOut = r.CheckIn }, ErrValidation},
		{"checkin in the past", func(r *CreateReservationRequest) { r.CheckIn = "2026-05-03" }, ErrValidation},
		{"bad date", func(r *CreateReservationRequest) { r.CheckIn = "04/05/2026" }, ErrValidation},
		{"too many guests", func(r *CreateReservationRequest) { r.Guests = 3 }, ErrValidation},
		{"no guests", func(r *CreateReservationRequest) { r.Guests = 0 }, ErrValidation},
		{"client price differs", func(r *CreateReservationRequest) { r.TotalPrice = &wrong }, ErrPriceMismatch},
		{"unknown room", func(r *CreateReservationRequest) { r.RoomID = 999 }, ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(room.ID, 2)
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), f.guest.ID, req)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}

	assert.Zero(t, countReservations(t, f.db))
	assert.Equal(t, domain.RoomAvailable, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
}

func TestCreate_OverlapConflicts(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "104", 100, 2, domain.RoomAvailable)
	// a future stay that has not flipped the room yet
	testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow.AddDate(0, 0, 1), 3, domain.ReservationConfirmed)

	_, err := f.svc.Create(context.Background(), f.guest.ID, f.request(room.ID, 2))
	assert.True(t, errs.Is(err, ErrOverlap), "got %v", err)
	assert.Equal(t, domain.RoomAvailable, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
}

func TestCreate_ConcurrentBookingsOneWinner(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "105", 100, 2, domain.RoomAvailable)

	const workers = 4
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.svc.Create(context.Background(), f.guest.ID, f.request(room.ID, 1))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, errs.Is(err, ErrRoomNotAvailable) || errs.Is(err, ErrRoomTaken) || errs.Is(err, ErrOverlap), "got %v", err)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, int64(1), countReservations(t, f.db))
}

func TestTransition_FullStay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	room := testutil.CreateRoom(t, f.db, "201", 100, 2, domain.RoomAvailable)

	res, err := f.svc.Create(ctx, f.guest.ID, f.request(room.ID, 2))
	require.NoError(t, err)

	steps := []struct {
		fn   func(context.Context, int64, domain.UserRole, int64) (*domain.Reservation, error)
		want domain.ReservationStatus
		room domain.RoomStatus
	}{
		{f.svc.Confirm, domain.ReservationConfirmed, domain.RoomReserved},
		{f.svc.CheckIn, domain.ReservationCheckedIn, domain.RoomOccupied},
		{f.svc.CheckOut, domain.ReservationCheckedOut, domain.RoomAvailable},
	}
	for _, step := range steps {
		got, err := step.fn(ctx, f.staff.ID, domain.RoleOperator, res.ID)
		require.NoError(t, err)
		assert.Equal(t, step.want, got.Status)
		assert.Equal(t, step.room, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
	}

	want := []string{events.ReservationCreated, events.ReservationConfirmed, events.ReservationCheckIn, events.ReservationCheckOut}
	if diff := cmp.Diff(want, f.publisher.types()); diff != "" {
		t.Errorf("published events mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, f.notifier.sent, 4)
}

func TestTransition_IllegalLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ReservationStatus
		room   domain.RoomStatus
		next   domain.ReservationStatus
	}{
		{"checkin from pending", domain.ReservationPending, domain.RoomReserved, domain.ReservationCheckedIn},
		{"checkout from confirmed", domain.ReservationConfirmed, domain.RoomReserved, domain.ReservationCheckedOut},
		{"checkout from pending", domain.ReservationPending, domain.RoomReserved, domain.ReservationCheckedOut},
		{"checkin after checkout", domain.ReservationCheckedOut, domain.RoomAvailable, domain.ReservationCheckedIn},
		{"cancel after checkin", domain.ReservationCheckedIn, domain.RoomOccupied, domain.ReservationCancelled},
		{"no-show from pending", domain.ReservationPending, domain.RoomReserved, domain.ReservationNoShow},
		{"confirm cancelled", domain.ReservationCancelled, domain.RoomAvailable, domain.ReservationConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			room := testutil.CreateRoom(t, f.db, "202", 100, 2, tt.room)
			res := testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow, 2, tt.status)

			_, err := f.svc.Transition(context.Background(), f.staff.ID, domain.RoleOperator, res.ID, tt.next, "")

			assert.True(t, errs.Is(err, ErrInvalidTransition), "got %v", err)
			if tt.status.IsTerminal() {
				assert.Contains(t, err.Error(), "is already "+string(tt.status))
			}
			assert.Equal(t, tt.status, testutil.Reload[domain.Reservation](t, f.db, res.ID).Status)
			assert.Equal(t, tt.room, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
			assert.Empty(t, f.publisher.types())
		})
	}
}

func TestCancel_RefundsPaidReservation(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "203", 100, 2, domain.RoomReserved)
	res := testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow, 2, domain.ReservationConfirmed)
	require.NoError(t, f.db.Model(res).Update("paid", true).Error)
	payment := &domain.Payment{ReservationID: res.ID, Amount: 200, Method: domain.PaymentCard, Status: domain.PaymentCompleted, PaidAt: testNow}
	require.NoError(t, f.db.Omit("Reservation").Create(payment).Error)

	got, err := f.svc.Cancel(context.Background(), f.guest.ID, domain.RoleGuest, res.ID, " cambio de planes ")
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCancelled, got.Status)
	assert.Equal(t, "cambio de planes", got.CancellationReason)
	assert.Equal(t, domain.PaymentRefunded, testutil.Reload[domain.Payment](t, f.db, payment.ID).Status)
	assert.Equal(t, domain.RoomAvailable, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
}

func TestCancel_RoomInMaintenanceStays(t *testing.T) {
	f := newFixture(t)
	room := testutil.CreateRoom(t, f.db, "204", 100, 2, domain.RoomMaintenance)
	res := testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow, 2, domain.ReservationPending)

	_, err := f.svc.Cancel(context.Background(), f.staff.ID, domain.RoleOperator, res.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, testutil.Reload[domain.Room](t, f.db, room.ID).Status)
	assert.Zero(t, f.catalog.n)
}

func TestTransition_GuestPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := testutil.CreateUser(t, f.db, "other@hotel.test", domain.RoleGuest)
	room := testutil.CreateRoom(t, f.db, "205", 100, 2, domain.RoomReserved)
	res := testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow, 2, domain.ReservationPending)

	_, err := f.svc.Cancel(ctx, other.ID, domain.RoleGuest, res.ID, "")
	assert.True(t, errs.Is(err, ErrReservationNotFound))

	_, err = f.svc.Confirm(ctx, f.guest.ID, domain.RoleGuest, res.ID)
	assert.True(t, errs.Is(err, ErrForbidden))

	_, err = f.svc.Get(ctx, other.ID, domain.RoleGuest, res.ID)
	assert.True(t, errs.Is(err, ErrReservationNotFound))

	got, err := f.svc.Get(ctx, f.staff.ID, domain.RoleOperator, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Room)
	assert.Equal(t, "205", got.Room.Number)
}

func TestList_GuestSeesOwnOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := testutil.CreateUser(t, f.db, "other@hotel.test", domain.RoleGuest)
	room := testutil.CreateRoom(t, f.db, "206", 100, 2, domain.RoomReserved)
	testutil.CreateReservation(t, f.db, f.guest.ID, room.ID, testNow, 1, domain.ReservationPending)
	testutil.CreateReservation(t, f.db, other.ID, room.ID, testNow.AddDate(0, 0, 5), 1, domain.ReservationConfirmed)

	mine, err := f.svc.List(ctx, f.guest.ID, domain.RoleGuest, ListQuery{UserID: other.ID}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Total)
	assert.Equal(t, f.guest.ID, mine.Items[0].UserID)

	all, err := f.svc.List(ctx, f.staff.ID, domain.RoleOperator, ListQuery{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	confirmed, err := f.svc.List(ctx, f.staff.ID, domain.RoleAdmin, ListQuery{Status: domain.ReservationConfirmed}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), confirmed.Total)

	_, err = f.svc.List(ctx, f.staff.ID, domain.RoleAdmin, ListQuery{Status: "RARA"}, 20, 0)
	assert.True(t, errs.Is(err, ErrValidation))
}

func TestSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lateRoom := testutil.CreateRoom(t, f.db, "301", 100, 2, domain.RoomReserved)
	graceRoom := testutil.CreateRoom(t, f.db, "302", 100, 2, domain.RoomReserved)
	pendingRoom := testutil.CreateRoom(t, f.db, "303", 100, 2, domain.RoomReserved)
	todayRoom := testutil.CreateRoom(t, f.db, "304", 100, 2, domain.RoomReserved)

	late := testutil.CreateReservation(t, f.db, f.guest.ID, lateRoom.ID, testNow.AddDate(0, 0, -3), 5, domain.ReservationConfirmed)
	withinGrace := testutil.CreateReservation(t, f.db, f.guest.ID, graceRoom.ID, testNow.AddDate(0, 0, -1), 5, domain.ReservationConfirmed)
	stale := testutil.CreateReservation(t, f.db, f.guest.ID, pendingRoom.ID, testNow.AddDate(0, 0, -1), 2, domain.ReservationPending)
	today := testutil.CreateReservation(t, f.db, f.guest.ID, todayRoom.ID, testNow, 2, domain.ReservationPending)

	result, err := f.svc.Sweep(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &SweepResult{NoShows: 1, Expired: 1, Processed: 2}, result)

	assert.Equal(t, domain.ReservationNoShow, testutil.Reload[domain.Reservation](t, f.db, late.ID).Status)
	assert.Equal(t, domain.RoomAvailable, testutil.Reload[domain.Room](t, f.db, lateRoom.ID).Status)
	assert.Equal(t, domain.ReservationConfirmed, testutil.Reload[domain.Reservation](t, f.db, withinGrace.ID).Status)

	expired := testutil.Reload[domain.Reservation](t, f.db, stale.ID)
	assert.Equal(t, domain.ReservationCancelled, expired.Status)
	assert.Equal(t, "expirada", expired.CancellationReason)
	assert.Equal(t, domain.ReservationPending, testutil.Reload[domain.Reservation](t, f.db, today.ID).Status)
}

func TestArrivalsAndDepartures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r1 := testutil.CreateRoom(t, f.db, "401", 100, 2, domain.RoomReserved)
	r2 := testutil.CreateRoom(t, f.db, "402", 100, 2, domain.RoomOccupied)

	arriving := testutil.CreateReservation(t, f.db, f.guest.ID, r1.ID, testNow, 2, domain.ReservationConfirmed)
	leaving := testutil.CreateReservation(t, f.db, f.guest.ID, r2.ID, testNow.AddDate(0, 0, -2), 2, domain.ReservationCheckedIn)

	arrivals, err := f.svc.Arrivals(ctx, "")
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, arriving.ID, arrivals[0].ID)

	departures, err := f.svc.Departures(ctx, testNow.Format(domain.DateLayout))
	require.NoError(t, err)
	require.Len(t, departures, 1)
	assert.Equal(t, leaving.ID, departures[0].ID)

	none, err := f.svc.Arrivals(ctx, "2026-05-05")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.svc.Departures(ctx, "ayer")
	assert.True(t, errs.Is(err, ErrValidation))
}
