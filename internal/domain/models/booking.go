package models

import "time"

// Booking status tokens. French tokens are the canonical set, matching what the
// production database already contains.
const (
	StatusPending   = "en_attente"
	StatusConfirmed = "confirme"
	StatusInTransit = "en_cours"
	StatusCompleted = "termine"
	StatusCancelled = "annule"
)

// Client categories and destinations accepted by the booking form.
const (
	ClientIndividual = "individuel"
	ClientFamily     = "famille"
	ClientPMR        = "pmr"

	DestAirport = "aeroport"
	DestStation = "gare"
	DestPort    = "port"
	DestHome    = "domicile"
)

// Booking is the sole persistent entity of the service.
type Booking struct {
	ID                  int64      `json:"id"`
	ClientType          string     `json:"client_type"`
	ClientName          string     `json:"client_name"`
	ClientEmail         string     `json:"client_email"`
	ClientPhone         string     `json:"client_phone"`
	PickupAddress       string     `json:"pickup_address"`
	Destination         string     `json:"destination"`
	PickupDatetime      string     `json:"pickup_datetime"`
	BagCount            string     `json:"bag_count"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	EstimatedPrice      float64    `json:"estimated_price"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// BookingInput carries the public booking form payload.
type BookingInput struct {
	ClientType          string `json:"client_type" validate:"required"`
	ClientName          string `json:"client_name" validate:"required,min=2"`
	ClientEmail         string `json:"client_email" validate:"required,email"`
	ClientPhone         string `json:"client_phone" validate:"required,min=6"`
	PickupAddress       string `json:"pickup_address" validate:"required"`
	Destination         string `json:"destination" validate:"required"`
	PickupDatetime      string `json:"pickup_datetime" validate:"required"`
	BagCount            string `json:"bag_count" validate:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

// BookingFilter narrows admin listings.
type BookingFilter struct {
	Status string
	Search string
}

// BookingStats aggregates dashboard counters.
type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgPrice          float64 `json:"avg_price"`
}

// DailyStat is one day of the dashboard booking series.
type DailyStat struct {
	Date          string  `json:"date"`
	BookingsCount int64   `json:"bookings_count"`
	DailyRevenue  float64 `json:"daily_revenue"`
}

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusInTransit: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsValidStatus reports whether s belongs to the allowed status enum.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}
