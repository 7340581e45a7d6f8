package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tasknest-server/models"
)

// BookingEvent describes a lifecycle change pushed to live listeners
type BookingEvent struct {
	Type      string          `json:"type"`
	Booking   *models.Booking `json:"booking"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	EventBookingCreated = "booking_created"
	EventBookingUpdated = "booking_updated"
)

// EventPublisher receives booking lifecycle events. Implementations must not
// block; publishing happens on the request path.
type EventPublisher interface {
	PublishBookingEvent(event BookingEvent)
}

// BookingService owns the booking lifecycle: creation with its payment
// record, listing projections and admin status/assignment updates.
type BookingService struct {
	db                *gorm.DB
	strictTransitions bool
	events            EventPublisher
}

// NewBookingService builds a BookingService. events may be nil.
func NewBookingService(db *gorm.DB, strictTransitions bool, events EventPublisher) *BookingService {
	return &BookingService{
		db:                db,
		strictTransitions: strictTransitions,
		events:            events,
	}
}

// acceptedTimeLayouts covers the storefront's "HH:MM" picker plus the
// display form shown on booking cards.
var acceptedTimeLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// CreateBooking validates the request, prices it and persists the booking
// together with its payment record in one transaction.
func (s *BookingService) CreateBooking(userID uint, req models.CreateBookingRequest) (*models.Booking, error) {
	var service models.Service
	if err := s.db.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Service"}
		}
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, NewFieldError("date", "Date must be in YYYY-MM-DD format")
	}

	clock, err := parseClock(req.Time)
	if err != nil {
		return nil, NewFieldError("time", "Time must be a valid time of day")
	}
	startsAt := date.Add(clock)

	if fields := ValidateBookingInput(service.Type, req.Duration, req.GuestCount, req.Address, date); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	price := ComputePrice(service.Type, service.StartingPrice, req.Duration, req.GuestCount)

	booking := models.Booking{
		UserID:     userID,
		ServiceID:  service.ID,
		Date:       startsAt,
		Time:       req.Time,
		Duration:   req.Duration,
		GuestCount: req.GuestCount,
		Address:    req.Address,
		Notes:      req.Notes,
		BasePrice:  price,
		FinalPrice: price,
		Status:     models.BookingPending,
	}

	// Booking and payment land together or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		payment := models.Payment{
			BookingID: booking.ID,
			UserID:    userID,
			Amount:    booking.FinalPrice,
			Status:    models.PaymentPending,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	created, err := s.getBooking(booking.ID)
	if err != nil {
		return nil, err
	}

	s.publish(EventBookingCreated, created)

	return created, nil
}

// ListBookingsForUser returns the customer's own bookings, newest date first
func (s *BookingService) ListBookingsForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("user_id = ?", userID).
		Preload("Service").
		Preload("Worker").
		Preload("Payment").
		Order("date DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetBookingForUser returns a single booking scoped to its owner
func (s *BookingService) GetBookingForUser(id, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Service").
		Preload("Worker").
		Preload("Payment").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Booking"}
		}
		return nil, err
	}
	return &booking, nil
}

// ListAllBookings returns the admin projection, optionally filtered by status
func (s *BookingService) ListAllBookings(status string) ([]models.Booking, error) {
	query := s.db.
		Preload("User").
		Preload("Service").
		Preload("Worker").
		Preload("Payment").
		Order("date DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var bookings []models.Booking
	err := query.Find(&bookings).Error
	return bookings, err
}

// UpdateBooking applies an admin's status change and/or worker assignment.
// A non-nil worker must be ACTIVE and cover the booking's service type.
// Status transitions outside the lifecycle table are rejected only when
// strict transitions are enabled.
func (s *BookingService) UpdateBooking(req models.UpdateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Service").First(&booking, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Booking"}
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		if !status.IsValid() {
			return nil, NewFieldError("status", "Status must be one of PENDING, CONFIRMED, IN_PROGRESS, COMPLETED, CANCELLED")
		}
		if s.strictTransitions && !booking.Status.CanTransitionTo(status) {
			return nil, NewFieldError("status", "Transition from "+string(booking.Status)+" to "+string(status)+" is not allowed")
		}
		updates["status"] = status
	}

	if req.WorkerID.Set {
		if req.WorkerID.Value == nil {
			updates["worker_id"] = nil
		} else {
			var worker models.Worker
			if err := s.db.First(&worker, *req.WorkerID.Value).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &NotFoundError{Entity: "Worker"}
				}
				return nil, err
			}
			if worker.Status != models.WorkerActive {
				return nil, NewFieldError("worker_id", "Worker is not active")
			}
			if !worker.CoversServiceType(booking.Service.Type) {
				return nil, NewFieldError("worker_id", "Worker does not offer this service type")
			}
			updates["worker_id"] = worker.ID
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&booking).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	updated, err := s.getBooking(booking.ID)
	if err != nil {
		return nil, err
	}

	s.publish(EventBookingUpdated, updated)

	return updated, nil
}

func (s *BookingService) getBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Preload("User").
		Preload("Service").
		Preload("Worker").
		Preload("Payment").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingService) publish(eventType string, booking *models.Booking) {
	if s.events == nil {
		return
	}
	s.events.PublishBookingEvent(BookingEvent{
		Type:      eventType,
		Booking:   booking,
		Timestamp: time.Now().UTC(),
	})
}

func parseClock(value string) (time.Duration, error) {
	var lastErr error
	for _, layout := range acceptedTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
		}
		lastErr = err
	}
	return 0, lastErr
}
