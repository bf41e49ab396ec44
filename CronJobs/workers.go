package CronJobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Mailer"
	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// AppointmentReminder handles sending reminder messages for upcoming appointments
type AppointmentReminder struct {
	Appointments *Ledgers.AppointmentLedger
	Accounts     *Ledgers.AccountDirectory
	Notifier     Mailer.Notifier

	// Now is the sweep clock; replaced in tests.
	Now func() time.Time

	log *zap.Logger
}

// NewAppointmentReminder creates a new appointment reminder service
func NewAppointmentReminder(appointments *Ledgers.AppointmentLedger, accounts *Ledgers.AccountDirectory, notifier Mailer.Notifier) *AppointmentReminder {
	return &AppointmentReminder{
		Appointments: appointments,
		Accounts:     accounts,
		Notifier:     notifier,
		Now:          time.Now,
		log:          Utils.GetLogger(),
	}
}

// StartReminderCron starts the cron job that checks for appointments
// needing reminders.
func (ar *AppointmentReminder) StartReminderCron(intervalMinutes int) *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(intervalMinutes).Minutes().Do(func() {
		ar.log.Debug("running appointment reminder check")
		if err := ar.SendAppointmentReminders(context.Background()); err != nil {
			ar.log.Error("appointment reminder sweep failed", zap.Error(err))
		}
	})

	scheduler.StartAsync()
	ar.log.Info("appointment reminder cron job started",
		zap.Int("intervalMinutes", intervalMinutes))

	return scheduler
}

// SendAppointmentReminders fires a one-shot reminder for every upcoming,
// not-yet-reminded appointment whose composed time falls within
// (now, now+24h]. The reminder-sent flag is persisted whether or not
// delivery succeeded; there is no retry.
func (ar *AppointmentReminder) SendAppointmentReminders(ctx context.Context) error {
	now := ar.Now()
	cutoff := now.Add(24 * time.Hour)

	appointments, err := ar.Appointments.All(ctx)
	if err != nil {
		return fmt.Errorf("load appointments for reminder sweep: %w", err)
	}

	for _, appointment := range appointments {
		if appointment.Status != Models.StatusUpcoming || appointment.ReminderSent {
			continue
		}
		at, err := appointment.ComposedDateTime()
		if err != nil {
			ar.log.Warn("skipping reminder for unparseable appointment",
				zap.String("id", appointment.ID), zap.Error(err))
			continue
		}
		if !at.After(now) || at.After(cutoff) {
			continue
		}

		user, err := ar.Accounts.ByID(ctx, appointment.UserID)
		if err != nil {
			ar.log.Warn("no account for appointment, skipping reminder",
				zap.String("id", appointment.ID), zap.String("userId", appointment.UserID))
			continue
		}

		// fire and forget: delivery failures are logged and swallowed
		if err := ar.Notifier.SendAppointmentReminder(user, appointment); err != nil {
			ar.log.Error("reminder delivery failed",
				zap.String("id", appointment.ID), zap.Error(err))
		}

		appointment.ReminderSent = true
		if err := ar.Appointments.Update(ctx, appointment); err != nil {
			ar.log.Error("failed to persist reminder flag",
				zap.String("id", appointment.ID), zap.Error(err))
		}
	}
	return nil
}
