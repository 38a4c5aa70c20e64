package services

import "beta_law_site/services/showcase"

// Process-wide services, initialized by cmd/server before the routes are served
var (
	Showcases *showcase.Registry
	Bookings  *BookingService
)
