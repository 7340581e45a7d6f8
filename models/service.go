package models

import (
	"time"

	"gorm.io/datatypes"
)

// ServiceType identifies one of the bookable service offerings
type ServiceType string

const (
	ServiceHomeCooking       ServiceType = "HOME_COOKING"
	ServiceEventCooking      ServiceType = "EVENT_COOKING"
	ServiceHomeOrganization  ServiceType = "HOME_ORGANIZATION"
	ServiceSeasonalConcierge ServiceType = "SEASONAL_CONCIERGE"
	ServiceCustomCooking     ServiceType = "CUSTOM_COOKING"
)

// IsValid checks if the service type is one of the known offerings
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceHomeCooking, ServiceEventCooking, ServiceHomeOrganization,
		ServiceSeasonalConcierge, ServiceCustomCooking:
		return true
	default:
		return false
	}
}

// Service represents a bookable offering
type Service struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" gorm:"size:200;not null"`
	Type            ServiceType                 `json:"type" gorm:"type:varchar(30);not null;uniqueIndex"`
	StartingPrice   float64                     `json:"starting_price" gorm:"type:decimal(10,2);not null"`
	Description     string                      `json:"description" gorm:"size:500;not null"`
	LongDescription *string                     `json:"long_description" gorm:"type:text"`
	Included        datatypes.JSONSlice[string] `json:"included"`
	Excluded        datatypes.JSONSlice[string] `json:"excluded"`
	Image           *string                     `json:"image" gorm:"size:255"`
	CreatedAt       time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ServiceID"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// CreateServiceRequest represents the admin payload for creating a service
type CreateServiceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required"`
	StartingPrice   float64  `json:"starting_price" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	LongDescription *string  `json:"long_description"`
	Included        []string `json:"included"`
	Excluded        []string `json:"excluded"`
	Image           *string  `json:"image"`
}

// UpdateServiceRequest represents the admin payload for updating a service.
// Pointer fields distinguish absent from zero values.
type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Type            *string  `json:"type"`
	StartingPrice   *float64 `json:"starting_price"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"long_description"`
	Included        []string `json:"included"`
	Excluded        []string `json:"excluded"`
	Image           *string  `json:"image"`
}
