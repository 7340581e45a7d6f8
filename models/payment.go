package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is the monetary record created alongside its booking, 1:1
type Payment struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	BookingID uint          `json:"booking_id" gorm:"uniqueIndex;not null"`
	UserID    uint          `json:"user_id" gorm:"not null"`
	Reference string        `json:"reference" gorm:"size:36;uniqueIndex;not null"`
	Amount    float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status    PaymentStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';check:status IN ('PENDING','COMPLETED','FAILED','REFUNDED')"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns a payment reference if one was not provided
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Reference == "" {
		p.Reference = uuid.NewString()
	}
	return nil
}
