// Package catalog is the single source of truth for "all cars that
// exist": a compiled-in seed set merged with user-submitted listings
// persisted in the storage backend.
package catalog

import "github.com/getaroag/getaroag-api/internal/model"

// seedCars is the immutable initial catalog. Declaration order is the
// order they are listed after submitted cars.
var seedCars = []model.Car{
	{
		ID:           "1",
		Brand:        "Fiat",
		Model:        "Egea",
		Year:         2022,
		PricePerDay:  850,
		FuelType:     model.FuelDiesel,
		Transmission: model.TransmissionAutomatic,
		Type:         model.BodySedan,
		Images:       []string{"https://picsum.photos/800/500?random=10", "https://picsum.photos/800/500?random=11"},
		Location:     model.Location{Lat: 41.0082, Lng: 28.9784, City: "İstanbul", District: "Kadıköy"},
		Owner:        model.Owner{ID: "o1", Name: "Ahmet Y.", PhotoURL: "https://picsum.photos/100/100?random=1", Rating: 4.8, ResponseRate: 95, Verified: true},
		Description:  "Şehir içi kullanım için ideal, az yakan aile aracı.",
		Features:     []string{"Bluetooth", "Klima", "USB", "Arka Park Sensörü"},
		IsAvailable:  true,
	},
	{
		ID:           "2",
		Brand:        "Renault",
		Model:        "Clio",
		Year:         2021,
		PricePerDay:  750,
		FuelType:     model.FuelGasoline,
		Transmission: model.TransmissionManual,
		Type:         model.BodyHatchback,
		Images:       []string{"https://picsum.photos/800/500?random=12"},
		Location:     model.Location{Lat: 41.0122, Lng: 28.9854, City: "İstanbul", District: "Beşiktaş"},
		Owner:        model.Owner{ID: "o2", Name: "Selin K.", PhotoURL: "https://picsum.photos/100/100?random=2", Rating: 4.9, ResponseRate: 98, Verified: true},
		Description:  "Çok temiz, sigara içilmemiş, ekonomik araç.",
		Features:     []string{"CarPlay", "Start/Stop", "Klima"},
		IsAvailable:  true,
	},
	{
		ID:           "3",
		Brand:        "Peugeot",
		Model:        "3008",
		Year:         2023,
		PricePerDay:  1500,
		FuelType:     model.FuelDiesel,
		Transmission: model.TransmissionAutomatic,
		Type:         model.BodySUV,
		Images:       []string{"https://picsum.photos/800/500?random=13"},
		Location:     model.Location{Lat: 41.0150, Lng: 28.9900, City: "İstanbul", District: "Şişli"},
		Owner:        model.Owner{ID: "o3", Name: "Mehmet T.", PhotoURL: "https://picsum.photos/100/100?random=3", Rating: 5.0, ResponseRate: 90, Verified: true},
		Description:  "Konforlu uzun yol aracı. Geniş bagaj hacmi.",
		Features:     []string{"Panoramik Cam Tavan", "Navigasyon", "Deri Koltuk", "360 Kamera"},
		IsAvailable:  true,
	},
	{
		ID:           "4",
		Brand:        "Tesla",
		Model:        "Model Y",
		Year:         2023,
		PricePerDay:  3500,
		FuelType:     model.FuelElectric,
		Transmission: model.TransmissionAutomatic,
		Type:         model.BodySUV,
		Images:       []string{"https://picsum.photos/800/500?random=14"},
		Location:     model.Location{Lat: 38.4237, Lng: 27.1428, City: "İzmir", District: "Alsancak"},
		Owner:        model.Owner{ID: "o4", Name: "Caner E.", PhotoURL: "https://picsum.photos/100/100?random=4", Rating: 4.7, ResponseRate: 88, Verified: true},
		Description:  "Elektrikli sürüş keyfi. Uzun menzil.",
		Features:     []string{"Otopilot", "Premium Ses Sistemi", "Hızlı Şarj"},
		IsAvailable:  true,
	},
}

// SeedCars returns a copy of the compiled-in catalog.
func SeedCars() []model.Car {
	out := make([]model.Car, len(seedCars))
	copy(out, seedCars)
	return out
}
