package Controllers

import (
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
)

// GetDoctors lists the catalog, optionally filtered by specialization and a
// name/specialization search term, sorted by name or experience.
func GetDoctors(c *gin.Context) {
	specialization := c.Query("specialization")
	search := strings.ToLower(c.Query("search"))
	sortBy := c.DefaultQuery("sort", "name")

	doctors := make([]Models.Doctor, 0, len(Models.Doctors))
	for _, doctor := range Models.Doctors {
		if specialization != "" && doctor.Specialization != specialization {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(doctor.Name), search) &&
			!strings.Contains(strings.ToLower(doctor.Specialization), search) {
			continue
		}
		doctors = append(doctors, doctor)
	}

	switch sortBy {
	case "experience":
		sort.SliceStable(doctors, func(i, j int) bool {
			return doctors[i].Experience > doctors[j].Experience
		})
	default:
		sort.SliceStable(doctors, func(i, j int) bool {
			return doctors[i].Name < doctors[j].Name
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"doctors":         doctors,
		"specializations": Models.Specializations(),
	})
}

// GetDoctor returns one profile with availability, reviews and the average
// rating.
func GetDoctor(c *gin.Context) {
	doctor, ok := Models.GetDoctorByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	reviews, err := Reviews.ListByDoctor(c.Request.Context(), doctor.ID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load reviews"})
		return
	}
	if reviews == nil {
		reviews = []Models.Review{}
	}

	average, count, err := Reviews.AverageForDoctor(c.Request.Context(), doctor.ID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":        doctor,
		"reviews":       reviews,
		"averageRating": average,
		"reviewCount":   count,
	})
}
