package Models

import "time"

// Review is an append-only rating left for a doctor. Date is the RFC3339
// creation timestamp; reviews are never edited or deleted.
type Review struct {
	ID       string `json:"id"`
	DoctorID string `json:"doctorId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// CreatedAt parses the creation timestamp, zero time on malformed input so
// broken records sort last rather than failing a listing.
func (review *Review) CreatedAt() time.Time {
	t, err := time.Parse(time.RFC3339, review.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
