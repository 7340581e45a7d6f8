package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tasknest-server/database"
	"tasknest-server/models"
)

// eventRecorder captures published booking events for assertions
type eventRecorder struct {
	events []BookingEvent
}

func (r *eventRecorder) PublishBookingEvent(event BookingEvent) {
	r.events = append(r.events, event)
}

func setupBookingTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	user := models.User{
		Name:         "Test Customer",
		Email:        "customer@example.com",
		PasswordHash: "x",
		Role:         models.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestService(t *testing.T, db *gorm.DB, serviceType models.ServiceType, price float64) models.Service {
	service := models.Service{
		Name:          "Test Service",
		Type:          serviceType,
		StartingPrice: price,
		Description:   "A test service",
	}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func createTestWorker(t *testing.T, db *gorm.DB, email string, status models.WorkerStatus, types ...models.ServiceType) models.Worker {
	worker := models.Worker{
		Name:         "Test Worker",
		Email:        email,
		Phone:        "5551234567",
		ServiceTypes: datatypes.NewJSONSlice(types),
		HourlyRate:   50,
		Status:       status,
	}
	require.NoError(t, db.Create(&worker).Error)
	return worker
}

func validRequest(serviceID uint) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ServiceID: serviceID,
		Date:      time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:      "10:00",
		Duration:  3,
		Address:   "42 Example Avenue, Springfield",
	}
}

func TestCreateBookingPersistsBookingAndPayment(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	recorder := &eventRecorder{}
	svc := NewBookingService(db, false, recorder)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 1197.0, booking.BasePrice)
	assert.Equal(t, 1197.0, booking.FinalPrice)
	assert.Equal(t, user.ID, booking.UserID)
	assert.Nil(t, booking.WorkerID)

	require.NotNil(t, booking.Payment)
	assert.Equal(t, booking.ID, booking.Payment.BookingID)
	assert.Equal(t, 1197.0, booking.Payment.Amount)
	assert.Equal(t, models.PaymentPending, booking.Payment.Status)
	assert.NotEmpty(t, booking.Payment.Reference)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, EventBookingCreated, recorder.events[0].Type)
}

func TestCreateBookingRejectsUnknownService(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	svc := NewBookingService(db, false, nil)

	_, err := svc.CreateBooking(user.ID, validRequest(999))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Service", notFound.Entity)
}

func TestCreateBookingValidationLeavesNoRows(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	req := validRequest(service.ID)
	req.Address = "short"
	_, err := svc.CreateBooking(user.ID, req)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "address")

	var bookings, payments int64
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.Payment{}).Count(&payments)
	assert.Zero(t, bookings)
	assert.Zero(t, payments)
}

func TestCreateBookingRejectsMalformedDateAndTime(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	req := validRequest(service.ID)
	req.Date = "07/15/2026"
	_, err := svc.CreateBooking(user.ID, req)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "date")

	req = validRequest(service.ID)
	req.Time = "sometime in the afternoon"
	_, err = svc.CreateBooking(user.ID, req)
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "time")
}

func TestCreateBookingAcceptsTwelveHourClock(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	req := validRequest(service.ID)
	req.Time = "2:30 PM"
	booking, err := svc.CreateBooking(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 14, booking.Date.Hour())
	assert.Equal(t, 30, booking.Date.Minute())
}

func TestListAndGetBookingsScopedToOwner(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	other := models.User{Name: "Other", Email: "other@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&other).Error)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	mine, err := svc.ListBookingsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := svc.ListBookingsForUser(other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = svc.GetBookingForUser(booking.ID, other.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	got, err := svc.GetBookingForUser(booking.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}

func TestListAllBookingsFiltersByStatus(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	first, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)
	_, err = svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	status := string(models.BookingConfirmed)
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: first.ID, Status: &status})
	require.NoError(t, err)

	all, err := svc.ListAllBookings("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := svc.ListAllBookings(status)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.ID, confirmed[0].ID)
}

func TestUpdateBookingStatusPermissiveByDefault(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	recorder := &eventRecorder{}
	svc := NewBookingService(db, false, recorder)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	// Skipping CONFIRMED and IN_PROGRESS is allowed when not strict
	status := string(models.BookingCompleted)
	updated, err := svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	require.Len(t, recorder.events, 2)
	assert.Equal(t, EventBookingUpdated, recorder.events[1].Type)
}

func TestUpdateBookingStrictTransitions(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, true, nil)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	status := string(models.BookingCompleted)
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &status})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "status")

	// The forward path is still allowed
	for _, status := range []string{"CONFIRMED", "IN_PROGRESS", "COMPLETED"} {
		s := status
		_, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &s})
		require.NoError(t, err)
	}

	// COMPLETED is terminal
	status = string(models.BookingCancelled)
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &status})
	require.ErrorAs(t, err, &validation)
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	svc := NewBookingService(db, false, nil)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	status := "DONE"
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &status})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "status")
}

func TestUpdateBookingWorkerAssignment(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	active := createTestWorker(t, db, "active@example.com", models.WorkerActive, models.ServiceHomeCooking)
	inactive := createTestWorker(t, db, "inactive@example.com", models.WorkerInactive, models.ServiceHomeCooking)
	wrongType := createTestWorker(t, db, "events@example.com", models.WorkerActive, models.ServiceEventCooking)
	svc := NewBookingService(db, false, nil)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	assign := func(workerID uint) (*models.Booking, error) {
		id := workerID
		return svc.UpdateBooking(models.UpdateBookingRequest{
			ID:       booking.ID,
			WorkerID: models.NullableWorkerID{Set: true, Value: &id},
		})
	}

	var validation *ValidationError
	_, err = assign(inactive.ID)
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "worker_id")

	_, err = assign(wrongType.ID)
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "worker_id")

	var notFound *NotFoundError
	_, err = assign(999)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Worker", notFound.Entity)

	updated, err := assign(active.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.WorkerID)
	assert.Equal(t, active.ID, *updated.WorkerID)
	require.NotNil(t, updated.Worker)
	assert.Equal(t, active.Email, updated.Worker.Email)
}

func TestUpdateBookingUnassignsWorker(t *testing.T) {
	db := setupBookingTest(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, models.ServiceHomeCooking, 399)
	worker := createTestWorker(t, db, "worker@example.com", models.WorkerActive, models.ServiceHomeCooking)
	svc := NewBookingService(db, false, nil)

	booking, err := svc.CreateBooking(user.ID, validRequest(service.ID))
	require.NoError(t, err)

	workerID := worker.ID
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{
		ID:       booking.ID,
		WorkerID: models.NullableWorkerID{Set: true, Value: &workerID},
	})
	require.NoError(t, err)

	// Explicit null clears the assignment
	updated, err := svc.UpdateBooking(models.UpdateBookingRequest{
		ID:       booking.ID,
		WorkerID: models.NullableWorkerID{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.WorkerID)

	// Absent field leaves it unchanged
	_, err = svc.UpdateBooking(models.UpdateBookingRequest{
		ID:       booking.ID,
		WorkerID: models.NullableWorkerID{Set: true, Value: &workerID},
	})
	require.NoError(t, err)
	status := string(models.BookingConfirmed)
	updated, err = svc.UpdateBooking(models.UpdateBookingRequest{ID: booking.ID, Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkerID)
	assert.Equal(t, worker.ID, *updated.WorkerID)
}

func TestUpdateBookingNotFound(t *testing.T) {
	db := setupBookingTest(t)
	svc := NewBookingService(db, false, nil)

	status := "CONFIRMED"
	_, err := svc.UpdateBooking(models.UpdateBookingRequest{ID: 42, Status: &status})
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Booking", notFound.Entity)
}
