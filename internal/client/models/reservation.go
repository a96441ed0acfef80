package models

import "time"

// Reservation lifecycle statuses as the service reports them.
const (
	ReservationActive  = "Active"
	ReservationQueue   = "Queue"
	ReservationHistory = "History"
)

// BorrowDurations are the loan lengths the service accepts, in days.
var BorrowDurations = []int{7, 14, 21, 30}

// DefaultBorrowDays is used when the reader does not pick a duration.
const DefaultBorrowDays = 14

// ValidBorrowDays reports whether days is one of the accepted durations.
func ValidBorrowDays(days int) bool {
	for _, d := range BorrowDurations {
		if days == d {
			return true
		}
	}
	return false
}

// Reservation links a user to a book. User and Book are embedded records the
// service expands on list endpoints; either may be nil on sparse responses.
type Reservation struct {
	ID            int64      `json:"id"`
	User          *User      `json:"user,omitempty"`
	Book          *Book      `json:"book,omitempty"`
	Status        string     `json:"status"`
	ReservedDate  time.Time  `json:"reservedDate"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Position      int        `json:"position,omitempty"`
	EstimatedWait string     `json:"estimatedWait,omitempty"`
}

// CanCancel reports whether the reservation can still be withdrawn. History
// rows are settled and immutable.
func (r *Reservation) CanCancel() bool {
	return r.Status != ReservationHistory
}

// Queued reports whether the reservation is waiting for a copy.
func (r *Reservation) Queued() bool {
	return r.Status == ReservationQueue
}
