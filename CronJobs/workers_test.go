package CronJobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
)

// fakeNotifier records every delivery attempt and can be told to fail.
type fakeNotifier struct {
	sent []string
	fail error
}

func (f *fakeNotifier) SendAppointmentReminder(user Models.User, appointment Models.Appointment) error {
	f.sent = append(f.sent, appointment.ID)
	return f.fail
}

func newTestReminder(t *testing.T) (*AppointmentReminder, *Ledgers.AppointmentLedger, *fakeNotifier, Models.User) {
	t.Helper()
	store := Storage.NewMemoryStore()
	appointments := Ledgers.NewAppointmentLedger(store)
	accounts := Ledgers.NewAccountDirectory(store)

	user, err := accounts.Register(context.Background(), "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	reminder := NewAppointmentReminder(appointments, accounts, notifier)
	return reminder, appointments, notifier, user
}

// appointmentAt books an upcoming appointment for the given instant.
func appointmentAt(t *testing.T, ledger *Ledgers.AppointmentLedger, userID string, at time.Time) Models.Appointment {
	t.Helper()
	created, err := ledger.Create(context.Background(), Models.Appointment{
		DoctorID:   "1",
		DoctorName: "Dr. Evelyn Reed",
		Date:       at.Format(Models.DateLayout),
		Time:       at.Format(Models.TimeLayout),
		UserID:     userID,
	})
	require.NoError(t, err)
	return created
}

func TestReminderWindow(t *testing.T) {
	reminder, appointments, notifier, user := newTestReminder(t)

	now := time.Date(2030, 6, 10, 9, 0, 0, 0, time.Local)
	reminder.Now = func() time.Time { return now }
	appointments.Now = reminder.Now

	inWindow := appointmentAt(t, appointments, user.ID, now.Add(2*time.Hour))
	atCutoff := appointmentAt(t, appointments, user.ID, now.Add(24*time.Hour))
	tooFar := appointmentAt(t, appointments, user.ID, now.Add(25*time.Hour))

	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))

	require.ElementsMatch(t, []string{inWindow.ID, atCutoff.ID}, notifier.sent)

	got, found, err := appointments.Get(context.Background(), tooFar.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, got.ReminderSent)
}

func TestReminderSkipsNonUpcoming(t *testing.T) {
	reminder, appointments, notifier, user := newTestReminder(t)

	now := time.Date(2030, 6, 10, 9, 0, 0, 0, time.Local)
	reminder.Now = func() time.Time { return now }
	appointments.Now = reminder.Now

	cancelled := appointmentAt(t, appointments, user.ID, now.Add(3*time.Hour))
	require.NoError(t, appointments.Cancel(context.Background(), cancelled.ID))

	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))
	require.Empty(t, notifier.sent)
}

func TestReminderSkipsUnknownUser(t *testing.T) {
	reminder, appointments, notifier, _ := newTestReminder(t)

	now := time.Date(2030, 6, 10, 9, 0, 0, 0, time.Local)
	reminder.Now = func() time.Time { return now }
	appointments.Now = reminder.Now

	orphan := appointmentAt(t, appointments, "no-such-user", now.Add(3*time.Hour))

	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))
	require.Empty(t, notifier.sent)

	got, found, err := appointments.Get(context.Background(), orphan.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, got.ReminderSent)
}

func TestReminderFiresOnce(t *testing.T) {
	reminder, appointments, notifier, user := newTestReminder(t)

	now := time.Date(2030, 6, 10, 9, 0, 0, 0, time.Local)
	reminder.Now = func() time.Time { return now }
	appointments.Now = reminder.Now

	appointmentAt(t, appointments, user.ID, now.Add(2*time.Hour))

	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))
	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))
	require.Len(t, notifier.sent, 1)
}

// A failed delivery still marks the appointment so the sweep never retries.
func TestReminderFlagPersistsOnDeliveryFailure(t *testing.T) {
	reminder, appointments, notifier, user := newTestReminder(t)
	notifier.fail = errors.New("smtp unreachable")

	now := time.Date(2030, 6, 10, 9, 0, 0, 0, time.Local)
	reminder.Now = func() time.Time { return now }
	appointments.Now = reminder.Now

	booked := appointmentAt(t, appointments, user.ID, now.Add(2*time.Hour))

	require.NoError(t, reminder.SendAppointmentReminders(context.Background()))
	require.Len(t, notifier.sent, 1)

	got, found, err := appointments.Get(context.Background(), booked.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, got.ReminderSent)
}
