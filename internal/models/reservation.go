package models

import "time"

// Reservation is a single guest's RSVP. Rows are insert-only: no exposed
// operation updates or deletes them.
type Reservation struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Guests    int       `db:"guests" json:"guests"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
