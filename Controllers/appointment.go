package Controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/SSE"
	"github.com/nikisathe/Doctor-appointment-booking/Utils/Token"
)

type BookAppointmentInput struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// BookAppointment books a slot from the doctor's availability calendar for
// the authenticated user.
func BookAppointment(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to book an appointment."})
		return
	}

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Models.ComposeDateTime(input.Date, input.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time format"})
		return
	}

	doctor, ok := Models.GetDoctorByID(input.DoctorID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if !doctor.HasSlot(input.Date, input.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected slot is not in the doctor's availability"})
		return
	}

	appointment, err := Appointments.Create(c.Request.Context(), Models.Appointment{
		DoctorID:             doctor.ID,
		DoctorName:           doctor.Name,
		DoctorSpecialization: doctor.Specialization,
		Date:                 input.Date,
		Time:                 input.Time,
		UserID:               userID,
	})
	if err != nil {
		if errors.Is(err, Ledgers.ErrSlotTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Time Block already booked"})
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not book appointment"})
		return
	}

	SSE.AppointmentBooked(appointment.ID, appointment.DoctorID)
	c.JSON(http.StatusOK, gin.H{"message": "Booked Successfully", "appointment": appointment})
}

// FetchMyAppointments returns the caller's appointments split into upcoming
// (soonest first) and past (most recent first). Statuses are re-derived
// before the split, so a just-elapsed appointment already reads completed.
func FetchMyAppointments(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := Appointments.List(c.Request.Context(), userID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load appointments"})
		return
	}

	upcoming := make([]Models.Appointment, 0)
	past := make([]Models.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.Status == Models.StatusUpcoming {
			upcoming = append(upcoming, appointment)
		} else {
			past = append(past, appointment)
		}
	}
	Models.SortByDateTime(upcoming, true)
	Models.SortByDateTime(past, false)

	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// CancelAppointment moves one of the caller's appointments to cancelled.
// Cancelling twice is allowed and changes nothing the second time.
func CancelAppointment(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, found, err := Appointments.Get(c.Request.Context(), input.ID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load appointment"})
		return
	}
	// unknown id and foreign ownership look the same to the caller
	if !found || appointment.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if err := Appointments.Cancel(c.Request.Context(), input.ID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not cancel appointment"})
		return
	}

	SSE.AppointmentCancelled(appointment.ID, appointment.DoctorID)
	c.JSON(http.StatusOK, gin.H{"message": "Cancelled Successfully"})
}
