package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkerStatus tracks a worker's standing on the platform
type WorkerStatus string

const (
	WorkerActive    WorkerStatus = "ACTIVE"
	WorkerInactive  WorkerStatus = "INACTIVE"
	WorkerVerified  WorkerStatus = "VERIFIED"
	WorkerSuspended WorkerStatus = "SUSPENDED"
)

// IsValid checks if the worker status is one of the known values
func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerActive, WorkerInactive, WorkerVerified, WorkerSuspended:
		return true
	default:
		return false
	}
}

// Worker represents a service-provider profile that can be assigned to bookings.
// ServiceTypes is stored as a JSON set so eligibility checks never have to
// guess between a single value and an encoded list.
type Worker struct {
	ID           uint                             `json:"id" gorm:"primaryKey"`
	Name         string                           `json:"name" gorm:"size:255;not null"`
	Email        string                           `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone        string                           `json:"phone" gorm:"size:20;not null"`
	ServiceTypes datatypes.JSONSlice[ServiceType] `json:"service_types"`
	HourlyRate   float64                          `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Status       WorkerStatus                     `json:"status" gorm:"type:varchar(20);not null;default:'INACTIVE';check:status IN ('ACTIVE','INACTIVE','VERIFIED','SUSPENDED')"`
	Bio          *string                          `json:"bio" gorm:"type:text"`
	Experience   *string                          `json:"experience" gorm:"type:text"`
	AvgRating    float64                          `json:"avg_rating" gorm:"type:decimal(3,2);default:0"`
	CreatedAt    time.Time                        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                        `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// CoversServiceType reports whether the worker offers the given service type
func (w *Worker) CoversServiceType(t ServiceType) bool {
	for _, st := range w.ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}

// CreateWorkerRequest represents the admin payload for creating a worker
type CreateWorkerRequest struct {
	Name         string   `json:"name" binding:"required,min=2"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required,min=8"`
	ServiceTypes []string `json:"service_types" binding:"required"`
	HourlyRate   float64  `json:"hourly_rate" binding:"min=0"`
	Bio          *string  `json:"bio"`
	Experience   *string  `json:"experience"`
}

// UpdateWorkerRequest represents the admin payload for updating a worker
type UpdateWorkerRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	ServiceTypes []string `json:"service_types"`
	HourlyRate   *float64 `json:"hourly_rate"`
	Bio          *string  `json:"bio"`
	Experience   *string  `json:"experience"`
	Status       *string  `json:"status"`
}
