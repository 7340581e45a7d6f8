package models

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// IsValid checks if the booking status is one of the five enum values
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions leave this status
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// bookingTransitions is the allowed forward path of a booking plus
// cancellation from any non-terminal state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
	BookingCompleted:  {},
	BookingCancelled:  {},
}

// CanTransitionTo reports whether the strict lifecycle allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a customer's reservation of a service for a date/time/duration
type Booking struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	UserID     uint          `json:"user_id" gorm:"not null"`
	ServiceID  uint          `json:"service_id" gorm:"not null"`
	WorkerID   *uint         `json:"worker_id"` // Assigned by an admin after creation
	Date       time.Time     `json:"date" gorm:"not null"`
	Time       string        `json:"time" gorm:"size:20;not null"`
	Duration   int           `json:"duration" gorm:"not null"`
	GuestCount *int          `json:"guest_count"`
	Address    string        `json:"address" gorm:"size:500;not null"`
	Notes      *string       `json:"notes" gorm:"size:1000"`
	BasePrice  float64       `json:"base_price" gorm:"type:decimal(10,2);not null"`
	FinalPrice float64       `json:"final_price" gorm:"type:decimal(10,2);not null"`
	Status     BookingStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';check:status IN ('PENDING','CONFIRMED','IN_PROGRESS','COMPLETED','CANCELLED')"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User    User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Service Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Worker  *Worker  `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:BookingID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// CreateBookingRequest represents the customer payload for creating a booking
type CreateBookingRequest struct {
	ServiceID  uint    `json:"service_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	Duration   int     `json:"duration" binding:"required,min=1"`
	GuestCount *int    `json:"guest_count"`
	Address    string  `json:"address" binding:"required"`
	Notes      *string `json:"notes"`
}

// NullableWorkerID keeps "unassign" (explicit null) and "leave unchanged"
// (field absent) distinguishable after JSON decoding.
type NullableWorkerID struct {
	Set   bool
	Value *uint
}

// UnmarshalJSON marks the field as present and accepts null or a worker id
func (n *NullableWorkerID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// UpdateBookingRequest represents the admin payload for updating a booking
type UpdateBookingRequest struct {
	ID       uint             `json:"id" binding:"required"`
	Status   *string          `json:"status"`
	WorkerID NullableWorkerID `json:"worker_id"`
}
