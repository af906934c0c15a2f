package models

import "time"

// Reservation statuses as the API reports them.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Comment   *string   `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationInput is the public booking payload. Date is YYYY-MM-DD and Time
// is HH:MM, matching what the API validates.
type ReservationInput struct {
	Name    string  `json:"name" form:"name"`
	Phone   string  `json:"phone" form:"phone"`
	Email   *string `json:"email,omitempty" form:"email"`
	Date    string  `json:"date" form:"date"`
	Time    string  `json:"time" form:"time"`
	Guests  int     `json:"guests" form:"guests"`
	Comment *string `json:"comment,omitempty" form:"comment"`
}
