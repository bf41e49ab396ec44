package Controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Utils/Token"
)

// DoctorReviews lists a doctor's reviews, newest first. An unknown doctor
// id yields an empty list, not an error.
func DoctorReviews(c *gin.Context) {
	reviews, err := Reviews.ListByDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load reviews"})
		return
	}
	if reviews == nil {
		reviews = []Models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

type AddReviewInput struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

// AddReview files a review against one of the caller's completed
// appointments and flags the appointment as reviewed. The ledger itself
// does not enforce one-review-per-appointment; reviewing again overwrites
// nothing and simply appends.
func AddReview(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input AddReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, found, err := Appointments.Get(c.Request.Context(), input.AppointmentID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load appointment"})
		return
	}
	if !found || appointment.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if appointment.Status != Models.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only completed appointments can be reviewed"})
		return
	}

	user, err := Accounts.ByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := Reviews.Add(c.Request.Context(), Models.Review{
		DoctorID: appointment.DoctorID,
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   input.Rating,
		Comment:  input.Comment,
	})
	if err != nil {
		if errors.Is(err, Ledgers.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save review"})
		return
	}

	if err := Appointments.MarkReviewed(c.Request.Context(), appointment.ID); err != nil {
		log.Println(err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review Added", "review": review})
}
