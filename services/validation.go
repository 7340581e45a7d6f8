package services

import (
	"fmt"
	"strings"
	"time"

	"tasknest-server/models"
)

const (
	minDurationHours = 1
	maxDurationHours = 12

	minEventGuests = 7
	maxEventGuests = 15

	minAddressLength = 10
)

// minDurationPerType holds per-service minimum durations stricter than the
// global floor of 1 hour.
var minDurationPerType = map[models.ServiceType]int{
	models.ServiceHomeCooking:      2,
	models.ServiceHomeOrganization: 3,
	models.ServiceCustomCooking:    3,
}

// ValidateBookingInput applies the per-service-type booking rules and returns
// field-scoped messages. An empty map means the input is acceptable.
func ValidateBookingInput(serviceType models.ServiceType, duration int, guestCount *int, address string, date time.Time) map[string][]string {
	errs := make(map[string][]string)

	if duration < minDurationHours || duration > maxDurationHours {
		errs["duration"] = append(errs["duration"],
			fmt.Sprintf("Duration must be between %d and %d hours", minDurationHours, maxDurationHours))
	}
	if min, ok := minDurationPerType[serviceType]; ok && duration < min {
		errs["duration"] = append(errs["duration"],
			fmt.Sprintf("This service requires a minimum of %d hours", min))
	}

	if serviceType == models.ServiceEventCooking {
		if guestCount == nil || *guestCount < minEventGuests || *guestCount > maxEventGuests {
			errs["guest_count"] = append(errs["guest_count"],
				fmt.Sprintf("Guest count must be between %d and %d", minEventGuests, maxEventGuests))
		}
	}

	if len(strings.TrimSpace(address)) < minAddressLength {
		errs["address"] = append(errs["address"],
			fmt.Sprintf("Address must be at least %d characters", minAddressLength))
	}

	if dateOnly(date).Before(dateOnly(time.Now())) {
		errs["date"] = append(errs["date"], "Date cannot be in the past")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
