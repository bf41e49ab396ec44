package Ledgers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
)

func newTestLedger(t *testing.T) *AppointmentLedger {
	t.Helper()
	return NewAppointmentLedger(Storage.NewMemoryStore())
}

func bookFor(t *testing.T, ledger *AppointmentLedger, userID, doctorID, date, clock string) Models.Appointment {
	t.Helper()
	appointment, err := ledger.Create(context.Background(), Models.Appointment{
		DoctorID:             doctorID,
		DoctorName:           "Dr. Evelyn Reed",
		DoctorSpecialization: "Cardiology",
		Date:                 date,
		Time:                 clock,
		UserID:               userID,
	})
	require.NoError(t, err)
	return appointment
}

func future(d time.Duration) (string, string) {
	at := time.Now().Add(d)
	return at.Format(Models.DateLayout), at.Format(Models.TimeLayout)
}

// Booking a future slot and listing immediately yields one upcoming entry.
func TestCreateThenList(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)

	created := bookFor(t, ledger, "u1", "1", date, clock)
	require.NotEmpty(t, created.ID)
	require.Equal(t, Models.StatusUpcoming, created.Status)

	listed, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)

	seen := map[string]bool{}
	for i, doctor := range []string{"1", "2", "3", "4", "5"} {
		appointment := bookFor(t, ledger, "u1", doctor, date, clock)
		require.False(t, seen[appointment.ID], "duplicate id at %d", i)
		seen[appointment.ID] = true
	}
}

func TestListFiltersByUser(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)
	bookFor(t, ledger, "u1", "1", date, clock)
	bookFor(t, ledger, "u2", "2", date, clock)

	listed, err := ledger.List(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "u2", listed[0].UserID)
}

// The same doctor/date/time slot cannot carry two live bookings, not even
// from different users.
func TestCreateRejectsDoubleBooking(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)
	bookFor(t, ledger, "u1", "1", date, clock)

	_, err := ledger.Create(context.Background(), Models.Appointment{
		DoctorID: "1", Date: date, Time: clock, UserID: "u2",
	})
	require.ErrorIs(t, err, ErrSlotTaken)

	// a cancelled appointment frees the slot
	listed, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.NoError(t, ledger.Cancel(context.Background(), listed[0].ID))

	_, err = ledger.Create(context.Background(), Models.Appointment{
		DoctorID: "1", Date: date, Time: clock, UserID: "u2",
	})
	require.NoError(t, err)
}

// An appointment whose time has passed reads completed on the next list.
func TestListPromotesElapsedAppointments(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)
	created := bookFor(t, ledger, "u1", "1", date, clock)

	// jump the clock a week ahead
	ledger.Now = func() time.Time { return time.Now().Add(7 * 24 * time.Hour) }

	listed, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusCompleted, listed[0].Status)

	// the promotion was persisted, not just returned
	fetched, found, err := ledger.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, Models.StatusCompleted, fetched.Status)
}

// An appointment created with an already-elapsed date/time reads completed
// on the very first list.
func TestPastAppointmentCompletedAtFirstList(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(-24 * time.Hour)
	bookFor(t, ledger, "u1", "1", date, clock)

	listed, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusCompleted, listed[0].Status)
}

// Two reconcile passes with a frozen clock produce identical output.
func TestReconcileIdempotent(t *testing.T) {
	ledger := newTestLedger(t)
	date, clock := future(48 * time.Hour)
	bookFor(t, ledger, "u1", "1", date, clock)
	d2, c2 := future(72 * time.Hour)
	bookFor(t, ledger, "u1", "2", d2, c2)

	frozen := time.Now().Add(60 * time.Hour)
	ledger.Now = func() time.Time { return frozen }

	first, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	second, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// Strictly before its composed time an appointment stays upcoming; once the
// clock passes it, it reads completed.
func TestStatusBoundary(t *testing.T) {
	ledger := newTestLedger(t)
	at := time.Date(2026, 9, 14, 10, 30, 0, 0, time.Local)
	bookFor(t, ledger, "u1", "1",
		at.Format(Models.DateLayout), at.Format(Models.TimeLayout))

	ledger.Now = func() time.Time { return at } // exactly "now"
	listed, err := ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusUpcoming, listed[0].Status)

	ledger.Now = func() time.Time { return at.Add(time.Second) }
	listed, err = ledger.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusCompleted, listed[0].Status)
}

func TestCancelIsUnconditionalAndIdempotent(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	date, clock := future(48 * time.Hour)
	created := bookFor(t, ledger, "u1", "1", date, clock)

	require.NoError(t, ledger.Cancel(ctx, created.ID))
	listed, err := ledger.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusCancelled, listed[0].Status)

	// cancelling again succeeds silently
	require.NoError(t, ledger.Cancel(ctx, created.ID))
	listed, err = ledger.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, Models.StatusCancelled, listed[0].Status)

	// unknown id is a no-op
	require.NoError(t, ledger.Cancel(ctx, "does-not-exist"))
}

func TestMarkReviewed(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	date, clock := future(48 * time.Hour)
	created := bookFor(t, ledger, "u1", "1", date, clock)

	require.NoError(t, ledger.MarkReviewed(ctx, created.ID))
	fetched, found, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, fetched.HasBeenReviewed)
}

func TestUpdatePersistsReminderFlag(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	date, clock := future(12 * time.Hour)
	created := bookFor(t, ledger, "u1", "1", date, clock)

	created.ReminderSent = true
	require.NoError(t, ledger.Update(ctx, created))

	fetched, found, err := ledger.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, fetched.ReminderSent)

	// unknown id is a no-op
	require.NoError(t, ledger.Update(ctx, Models.Appointment{ID: "does-not-exist"}))
}
