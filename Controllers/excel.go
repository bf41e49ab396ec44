package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Models"
	"github.com/nikisathe/Doctor-appointment-booking/Utils/Token"
)

// ExportAppointmentsExcel writes the caller's appointments, optionally
// limited to a date range, into a spreadsheet and serves the file.
func ExportAppointmentsExcel(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointments, err := Appointments.List(c.Request.Context(), userID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load appointments"})
		return
	}

	if input.DateFrom != "" && input.DateTo != "" {
		filtered := appointments[:0]
		for _, appointment := range appointments {
			// dates are "2006-01-02", so string compare is date compare
			if appointment.Date >= input.DateFrom && appointment.Date <= input.DateTo {
				filtered = append(filtered, appointment)
			}
		}
		appointments = filtered
	}
	Models.SortByDateTime(appointments, true)

	headers := map[string]string{
		"A1": "Date",
		"B1": "Time",
		"C1": "Doctor",
		"D1": "Specialization",
		"E1": "Status",
	}

	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i, appointment := range appointments {
		row := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), appointment.Date)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), appointment.Time)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), appointment.DoctorName)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), appointment.DoctorSpecialization)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", row), appointment.Status)
	}

	filename := "./Appointments.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}
