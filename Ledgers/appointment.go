// Package Ledgers holds the domain collections: whole-collection
// read-modify-write over an injected Storage.Store, last writer wins.
package Ledgers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Storage"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// ErrSlotTaken rejects a booking whose doctor/date/time already carries a
// live appointment.
var ErrSlotTaken = errors.New("time slot already booked")

// AppointmentLedger owns the appointments collection. Status is derived
// lazily: every read reconciles stored "upcoming" records against the wall
// clock before returning, so callers never observe a stale status.
type AppointmentLedger struct {
	store Storage.Store
	log   *zap.Logger

	// Now is the clock used for status derivation; replaced in tests.
	Now func() time.Time
}

func NewAppointmentLedger(store Storage.Store) *AppointmentLedger {
	return &AppointmentLedger{
		store: store,
		log:   Utils.GetLogger(),
		Now:   time.Now,
	}
}

func (l *AppointmentLedger) load(ctx context.Context) ([]Models.Appointment, error) {
	var appointments []Models.Appointment
	if err := l.store.Read(ctx, Storage.CollectionAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// reconcile promotes every upcoming appointment whose composed date-time is
// strictly before now to completed. Idempotent: a second pass with the same
// clock changes nothing.
func (l *AppointmentLedger) reconcile(appointments []Models.Appointment, now time.Time) bool {
	changed := false
	for i := range appointments {
		if appointments[i].Status != Models.StatusUpcoming {
			continue
		}
		at, err := appointments[i].ComposedDateTime()
		if err != nil {
			l.log.Warn("appointment has unparseable date/time",
				zap.String("id", appointments[i].ID), zap.Error(err))
			continue
		}
		if at.Before(now) {
			appointments[i].Status = Models.StatusCompleted
			changed = true
		}
	}
	return changed
}

// List returns the user's appointments after reconciling stored statuses
// against the clock. The reconcile pass persists the whole collection when
// anything changed, so this is a deliberately side-effecting read.
func (l *AppointmentLedger) List(ctx context.Context, userID string) ([]Models.Appointment, error) {
	all, err := l.All(ctx)
	if err != nil {
		return nil, err
	}
	var mine []Models.Appointment
	for _, appointment := range all {
		if appointment.UserID == userID {
			mine = append(mine, appointment)
		}
	}
	return mine, nil
}

// All returns every appointment, reconciled. Used by the reminder sweep and
// exports.
func (l *AppointmentLedger) All(ctx context.Context) ([]Models.Appointment, error) {
	appointments, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	if l.reconcile(appointments, l.Now()) {
		if err := l.store.Write(ctx, Storage.CollectionAppointments, appointments); err != nil {
			return nil, err
		}
	}
	return appointments, nil
}

// Create appends a new appointment with a fresh id, unique across the whole
// ledger, and status upcoming. A non-cancelled appointment already holding
// the same doctor/date/time slot rejects the booking with ErrSlotTaken.
func (l *AppointmentLedger) Create(ctx context.Context, appointment Models.Appointment) (Models.Appointment, error) {
	appointments, err := l.load(ctx)
	if err != nil {
		return Models.Appointment{}, err
	}

	for i := range appointments {
		if appointments[i].Status == Models.StatusCancelled {
			continue
		}
		if appointments[i].DoctorID == appointment.DoctorID &&
			appointments[i].Date == appointment.Date &&
			appointments[i].Time == appointment.Time {
			return Models.Appointment{}, ErrSlotTaken
		}
	}

	appointment.ID = uuid.New().String()
	appointment.Status = Models.StatusUpcoming
	appointment.ReminderSent = false
	appointment.HasBeenReviewed = false

	appointments = append(appointments, appointment)
	if err := l.store.Write(ctx, Storage.CollectionAppointments, appointments); err != nil {
		return Models.Appointment{}, err
	}
	return appointment, nil
}

// Cancel transitions the appointment to cancelled regardless of its current
// status; cancelling a completed or already-cancelled appointment succeeds
// silently, and an unknown id is a no-op.
func (l *AppointmentLedger) Cancel(ctx context.Context, id string) error {
	appointments, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Status = Models.StatusCancelled
			return l.store.Write(ctx, Storage.CollectionAppointments, appointments)
		}
	}
	return nil
}

// MarkReviewed flags the appointment as reviewed. The ledger does not check
// status here; the caller gates reviews on completion.
func (l *AppointmentLedger) MarkReviewed(ctx context.Context, id string) error {
	appointments, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].HasBeenReviewed = true
			return l.store.Write(ctx, Storage.CollectionAppointments, appointments)
		}
	}
	return nil
}

// Update replaces the stored record matching the appointment's id. Unknown
// ids are a no-op. Used to persist the reminder-sent flag.
func (l *AppointmentLedger) Update(ctx context.Context, appointment Models.Appointment) error {
	appointments, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			appointments[i] = appointment
			return l.store.Write(ctx, Storage.CollectionAppointments, appointments)
		}
	}
	return nil
}

// Get finds one appointment by id, reconciled.
func (l *AppointmentLedger) Get(ctx context.Context, id string) (Models.Appointment, bool, error) {
	all, err := l.All(ctx)
	if err != nil {
		return Models.Appointment{}, false, err
	}
	for _, appointment := range all {
		if appointment.ID == id {
			return appointment, true, nil
		}
	}
	return Models.Appointment{}, false, nil
}
