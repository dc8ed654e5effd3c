// Package queue defines the message payloads exchanged over the broker
// and the background consumer that records them.
package queue

// ListingPublishedEvent is emitted after a submitted car reached the
// persisted catalog. It carries enough for downstream consumers to
// notify or index without re-reading the catalog.
type ListingPublishedEvent struct {
	CarID       string  `json:"car_id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	PricePerDay float64 `json:"price_per_day"`
	City        string  `json:"city"`
	OwnerID     string  `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	PublishedAt string  `json:"published_at"`
}

// BookingRequestedEvent is emitted when a renter files a rental request
// for a car; the owner-notification pipeline consumes it.
type BookingRequestedEvent struct {
	RequestID   string  `json:"request_id"`
	CarID       string  `json:"car_id"`
	CarLabel    string  `json:"car"`
	Renter      string  `json:"renter"`
	DateRange   string  `json:"date"`
	TotalPrice  float64 `json:"total_price"`
	RequestedAt string  `json:"requested_at"`
}
