package models

import "time"

// BookingStatus enumerates the negotiation states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingDeclined  BookingStatus = "declined"
	BookingCountered BookingStatus = "countered"
	BookingCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transitions are permitted from s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingApproved, BookingDeclined, BookingCancelled:
		return true
	}
	return false
}

// Booking represents a negotiated engagement between a client and a freelancer.
// Price and timestamps are only mutable while the booking is pending or countered.
type Booking struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	FreelancerID string        `json:"freelancer_id"`
	ServiceName  string        `json:"service_name"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// BookingInput is the payload for creating a new booking proposal.
type BookingInput struct {
	ClientID     string    `json:"client_id" binding:"required"`
	FreelancerID string    `json:"freelancer_id" binding:"required"`
	ServiceName  string    `json:"service_name"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	Price        float64   `json:"price" binding:"required"`
}

// BookingUpdate carries the revised terms of a counter-offer. Nil fields are
// left unchanged on the booking.
type BookingUpdate struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Price     *float64   `json:"price,omitempty"`
}
