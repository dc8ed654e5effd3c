// Package model holds the domain entities shared across repositories,
// services and handlers. Cars embed a full copy of their owner and
// location; owner records are intentionally denormalized, so editing a
// profile never rewrites already-published cars.
package model

// FuelType enumerates the supported fuel kinds. The values are the
// display strings the catalog was seeded with and are stored verbatim.
type FuelType string

const (
	FuelGasoline FuelType = "Benzin"
	FuelDiesel   FuelType = "Dizel"
	FuelHybrid   FuelType = "Hibrit"
	FuelElectric FuelType = "Elektrik"
)

// Transmission enumerates gearbox kinds.
type Transmission string

const (
	TransmissionManual    Transmission = "Manuel"
	TransmissionAutomatic Transmission = "Otomatik"
)

// BodyType enumerates car body styles.
type BodyType string

const (
	BodySedan     BodyType = "Sedan"
	BodyHatchback BodyType = "Hatchback"
	BodySUV       BodyType = "SUV"
	BodyVan       BodyType = "Van"
)

// Location places a car in a city. Coordinates are not validated against
// the city/district names; the submission fallbacks can leave them
// inconsistent and that is accepted.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	City     string  `json:"city"`
	District string  `json:"district"`
	Address  string  `json:"address,omitempty"`
}

// Owner is the embedded owner snapshot carried by every car.
type Owner struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PhotoURL     string  `json:"photoUrl"`
	Rating       float64 `json:"rating"`
	ResponseRate int     `json:"responseRate"`
	Verified     bool    `json:"verified"`
}

// Car is a single rental listing. The json tags match the persisted
// catalog blob format, so stored entries round-trip unchanged.
type Car struct {
	ID           string       `json:"id"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	PricePerDay  float64      `json:"pricePerDay"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	Type         BodyType     `json:"type"`
	Images       []string     `json:"images"`
	Location     Location     `json:"location"`
	Owner        Owner        `json:"owner"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	IsAvailable  bool         `json:"isAvailable"`
}
