package Models

import (
	"sort"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DateLayout is the stored calendar-date form, TimeLayout the stored
// 12-hour clock form ("9:00 AM", "12:30 PM").
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "3:04 PM"
	dateTimeLayout = DateLayout + " " + TimeLayout
)

// Appointment is a booked slot. Doctor fields are denormalized so a record
// renders without a catalog lookup. Date and Time stay separate strings;
// ComposeDateTime is the only place they are combined.
type Appointment struct {
	ID                   string `json:"id"`
	DoctorID             string `json:"doctorId"`
	DoctorName           string `json:"doctorName"`
	DoctorSpecialization string `json:"doctorSpecialization"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	UserID               string `json:"userId"`
	Status               string `json:"status"`
	ReminderSent         bool   `json:"reminderSent"`
	HasBeenReviewed      bool   `json:"hasBeenReviewed"`
}

// ComposeDateTime combines a calendar date ("2006-01-02") and a 12-hour
// clock time ("3:04 PM") into an absolute local timestamp. 12 AM maps to
// hour 0 and 12 PM stays 12. Sorting and status derivation both depend on
// this being the single point of date/time semantics.
func ComposeDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, date+" "+clock, time.Local)
}

// ComposedDateTime is ComposeDateTime over the appointment's own fields.
func (appointment *Appointment) ComposedDateTime() (time.Time, error) {
	return ComposeDateTime(appointment.Date, appointment.Time)
}

// SortByDateTime orders appointments by composed timestamp, ascending when
// asc is true (upcoming lists) and descending otherwise (past lists).
// Records with unparseable date/time sort to the end.
func SortByDateTime(appointments []Appointment, asc bool) {
	sort.SliceStable(appointments, func(i, j int) bool {
		ti, erri := appointments[i].ComposedDateTime()
		tj, errj := appointments[j].ComposedDateTime()
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		if asc {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
}
