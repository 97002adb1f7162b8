package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	all := []ReservationStatus{
		ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCancelled, ReservationNoShow,
	}
	allowed := map[ReservationStatus]map[ReservationStatus]bool{
		ReservationPending:   {ReservationConfirmed: true, ReservationCancelled: true},
		ReservationConfirmed: {ReservationCheckedIn: true, ReservationCancelled: true, ReservationNoShow: true},
		ReservationCheckedIn: {ReservationCheckedOut: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestReservationStatus_CheckInOnlyFromConfirmed(t *testing.T) {
	for _, from := range []ReservationStatus{ReservationPending, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled, ReservationNoShow} {
		assert.False(t, from.CanTransitionTo(ReservationCheckedIn), from)
	}
	assert.True(t, ReservationConfirmed.CanTransitionTo(ReservationCheckedIn))
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.True(t, ReservationCheckedOut.IsTerminal())
	assert.True(t, ReservationCancelled.IsTerminal())
	assert.True(t, ReservationNoShow.IsTerminal())
	assert.False(t, ReservationPending.IsTerminal())
	assert.True(t, ReservationCheckedIn.IsActive())
	assert.False(t, ReservationNoShow.IsActive())
}

func TestRoomEffectFor(t *testing.T) {
	tests := []struct {
		next    ReservationStatus
		current RoomStatus
		applies bool
		target  RoomStatus
	}{
		{ReservationPending, RoomAvailable, true, RoomReserved},
		{ReservationPending, RoomMaintenance, false, RoomReserved},
		{ReservationConfirmed, RoomReserved, true, RoomReserved},
		{ReservationCheckedIn, RoomReserved, true, RoomOccupied},
		{ReservationCheckedOut, RoomOccupied, true, RoomAvailable},
		{ReservationCancelled, RoomReserved, true, RoomAvailable},
		{ReservationCancelled, RoomMaintenance, false, RoomAvailable},
		{ReservationNoShow, RoomReserved, true, RoomAvailable},
	}

	for _, tt := range tests {
		eff := RoomEffectFor(tt.next)
		assert.Equal(t, tt.target, eff.Target, tt.next)
		assert.Equal(t, tt.applies, eff.Applies(tt.current), "%s with room %s", tt.next, tt.current)
	}
	assert.Equal(t, RoomReserved, RoomStatusFor(ReservationConfirmed))
}

func TestRoomStatus_CanSetManually(t *testing.T) {
	assert.True(t, RoomAvailable.CanSetManually(RoomMaintenance))
	assert.True(t, RoomMaintenance.CanSetManually(RoomAvailable))
	assert.False(t, RoomReserved.CanSetManually(RoomAvailable))
	assert.False(t, RoomOccupied.CanSetManually(RoomMaintenance))
	assert.False(t, RoomAvailable.CanSetManually(RoomOccupied))
}

func TestNightsAndQuote(t *testing.T) {
	in := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 2, NightsBetween(in, out))
	assert.Equal(t, 100000.0, QuotePrice(50000, 2))
	assert.Equal(t, 300.3, QuotePrice(100.1, 3))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-05-01T18:45:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/05/2026")
	assert.Error(t, err)
}

func TestSplitTaxInclusive(t *testing.T) {
	sub, tax := SplitTaxInclusive(119000, 0.19)
	assert.Equal(t, 100000.0, sub)
	assert.Equal(t, 19000.0, tax)

	sub, tax = SplitTaxInclusive(100000, 0.19)
	assert.InDelta(t, 100000.0, sub+tax, 0.001)

	assert.Equal(t, "FAC-000042", FormatInvoiceNumber("FAC", 42))
}
