// Package Mailer formats appointment reminders. Delivery is a logged stub:
// the rendered message goes to the logging sink, not a mail transport.
package Mailer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

// Notifier is the single outbound notification boundary.
type Notifier interface {
	SendAppointmentReminder(user Models.User, appointment Models.Appointment) error
}

// LogMailer renders the reminder email and writes it to the log.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer() *LogMailer {
	return &LogMailer{log: Utils.GetLogger()}
}

func (m *LogMailer) SendAppointmentReminder(user Models.User, appointment Models.Appointment) error {
	when, err := appointment.ComposedDateTime()
	if err != nil {
		return fmt.Errorf("compose appointment time: %w", err)
	}

	body := fmt.Sprintf(`--- Mock Email Reminder Sent ---
Recipient: %s
Subject: Appointment Reminder: Your appointment with %s is tomorrow!

Hi %s,

This is a friendly reminder for your upcoming appointment with %s (%s).

  - Date: %s
  - Time: %s

We look forward to seeing you. If you need to reschedule, please visit the
appointments section of your profile.

Thank you,
The DocBook Team
--------------------------------`,
		user.Email,
		appointment.DoctorName,
		user.Name,
		appointment.DoctorName,
		appointment.DoctorSpecialization,
		when.Format("Monday, January 2, 2006"),
		appointment.Time,
	)

	m.log.Info("mock email reminder sent",
		zap.String("recipient", user.Email),
		zap.String("appointmentId", appointment.ID),
		zap.String("body", body),
	)
	return nil
}
