// Package listing turns the multi-step wizard's accumulated draft into a
// canonical catalog entry and commits it.
package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/getaroag/getaroag-api/internal/geo"
	"github.com/getaroag/getaroag-api/internal/model"
)

// Fallbacks applied by ToCar when optional draft fields are missing.
// Only brand, model, year and price are load-bearing; everything else
// defaults so an incomplete draft never blocks publishing.
const (
	PlaceholderImage = "https://picsum.photos/800/600?car=new"
	FallbackCity     = "Belirsiz"
	FallbackDistrict = "Merkez"
	FallbackLat      = 41.0082
	FallbackLng      = 28.9784
)

// GPS enrichment constants. The wizard has no reverse geocoder, so a fix
// gets a generated address string and a fixed city/district pair.
const (
	gpsCity     = "İstanbul"
	gpsDistrict = "Mevcut Konum"
)

// newListingFeature tags every freshly published car.
const newListingFeature = "Yeni İlan"

// Draft is the in-progress state of the listing wizard. Field names match
// the wizard's JSON payload.
type Draft struct {
	Brand        string             `json:"brand"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	PricePerDay  float64            `json:"price"`
	Type         model.BodyType     `json:"type"`
	FuelType     model.FuelType     `json:"fuel"`
	Transmission model.Transmission `json:"transmission"`
	City         string             `json:"city"`
	District     string             `json:"district"`
	Address      string             `json:"address"`
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	Photos       []string           `json:"photos"`
	Description  string             `json:"description"`
}

// ValidationError names the required fields a draft is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("listing draft missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks the four required fields. All other fields are optional
// and covered by fallbacks in ToCar.
func Validate(d Draft) error {
	var missing []string
	if strings.TrimSpace(d.Brand) == "" {
		missing = append(missing, "brand")
	}
	if strings.TrimSpace(d.Model) == "" {
		missing = append(missing, "model")
	}
	if d.Year <= 0 {
		missing = append(missing, "year")
	}
	if d.PricePerDay <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// ApplyFix overwrites the draft's coordinates with a device fix and sets
// a generated address plus the fixed city/district pair. On geolocation
// failure the caller leaves the draft alone instead of calling this.
func (d *Draft) ApplyFix(f geo.Fix) {
	d.Lat = f.Lat
	d.Lng = f.Lng
	d.Address = fmt.Sprintf("GPS Konumu: %.4f, %.4f", f.Lat, f.Lng)
	d.City = gpsCity
	d.District = gpsDistrict
}

// ToCar maps a validated draft and the submitting owner to a catalog
// entry. Pure: no storage access, no side effects. The generated id is
// the submission prefix plus the creation timestamp in milliseconds,
// which cannot collide with the small-integer seed ids.
func ToCar(d Draft, owner model.Owner, now time.Time) model.Car {
	images := d.Photos
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	loc := model.Location{
		Lat:      d.Lat,
		Lng:      d.Lng,
		City:     d.City,
		District: d.District,
		Address:  d.Address,
	}
	if loc.Lat == 0 {
		loc.Lat = FallbackLat
	}
	if loc.Lng == 0 {
		loc.Lng = FallbackLng
	}
	if loc.City == "" {
		loc.City = FallbackCity
	}
	if loc.District == "" {
		loc.District = FallbackDistrict
	}
	return model.Car{
		ID:           fmt.Sprintf("local_%d", now.UnixMilli()),
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         d.Year,
		PricePerDay:  d.PricePerDay,
		FuelType:     d.FuelType,
		Transmission: d.Transmission,
		Type:         d.Type,
		Images:       images,
		Location:     loc,
		Owner:        owner,
		Description:  d.Description,
		Features:     []string{newListingFeature},
		IsAvailable:  true,
	}
}
