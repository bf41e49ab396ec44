package Controllers

import (
	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
)

// Package-level ledgers, injected once at startup so route handlers can
// stay plain functions.
var (
	Accounts     *Ledgers.AccountDirectory
	Appointments *Ledgers.AppointmentLedger
	Reviews      *Ledgers.ReviewLedger
)

// Init wires the controllers to their ledgers.
func Init(accounts *Ledgers.AccountDirectory, appointments *Ledgers.AppointmentLedger, reviews *Ledgers.ReviewLedger) {
	Accounts = accounts
	Appointments = appointments
	Reviews = reviews
}
