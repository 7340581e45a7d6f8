package services

import "tasknest-server/models"

// Per-type default rates applied when a service carries no configured price.
// A price of 0 is treated the same as unset, matching the billing rules the
// storefront has always applied.
const (
	defaultHourlyCookingRate      = 499
	defaultEventGuestRate         = 299
	defaultOrganizationHourlyRate = 249
	defaultConciergePackagePrice  = 1499

	defaultEventGuestCount = 5
)

// ComputePrice maps a service type and booking parameters to the price charged.
// Hourly types bill startingPrice per hour, event cooking bills per guest and
// the concierge package is a flat rate. Unknown types price at 0. Pure; inputs
// are trusted as already validated by the caller.
func ComputePrice(serviceType models.ServiceType, startingPrice float64, duration int, guestCount *int) float64 {
	switch serviceType {
	case models.ServiceHomeCooking, models.ServiceCustomCooking:
		return priceOrDefault(startingPrice, defaultHourlyCookingRate) * float64(duration)
	case models.ServiceEventCooking:
		guests := defaultEventGuestCount
		if guestCount != nil && *guestCount != 0 {
			guests = *guestCount
		}
		return float64(guests) * priceOrDefault(startingPrice, defaultEventGuestRate)
	case models.ServiceHomeOrganization:
		return priceOrDefault(startingPrice, defaultOrganizationHourlyRate) * float64(duration)
	case models.ServiceSeasonalConcierge:
		return priceOrDefault(startingPrice, defaultConciergePackagePrice)
	default:
		return 0
	}
}

func priceOrDefault(price, fallback float64) float64 {
	if price == 0 {
		return fallback
	}
	return price
}
