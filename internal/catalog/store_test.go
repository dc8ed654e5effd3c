package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func testCar(id string) model.Car {
	return model.Car{
		ID:           id,
		Brand:        "Honda",
		Model:        "Civic",
		Year:         2020,
		PricePerDay:  1200,
		FuelType:     model.FuelGasoline,
		Transmission: model.TransmissionManual,
		Type:         model.BodySedan,
		Images:       []string{"https://example.com/car.jpg"},
		Location:     model.Location{Lat: 39.92, Lng: 32.85, City: "Ankara", District: "Çankaya"},
		Owner:        model.Owner{ID: "o9", Name: "Test O."},
		IsAvailable:  true,
	}
}

func TestStoreAllSeedOnly(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())

	cars := s.All(context.Background())
	require.Len(t, cars, len(seedCars))
	assert.Equal(t, "1", cars[0].ID)
	assert.Equal(t, "4", cars[3].ID)
}

func TestStoreAppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryStore())

	first := testCar("local_100")
	second := testCar("local_200")
	require.NoError(t, s.Append(ctx, first))
	require.NoError(t, s.Append(ctx, second))

	cars := s.All(ctx)
	require.Len(t, cars, len(seedCars)+2)
	// Most recently appended comes first, seed cars follow.
	assert.Equal(t, "local_200", cars[0].ID)
	assert.Equal(t, "local_100", cars[1].ID)
	assert.Equal(t, "1", cars[2].ID)
}

func TestStoreCorruptBlobDegradesToSeed(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.KeyCustomCars, []byte("{not json")))

	s := NewStore(kv)
	cars := s.All(ctx)
	require.Len(t, cars, len(seedCars))
	assert.Empty(t, s.Submitted(ctx))
}

func TestStoreAppendWriteFailure(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	kv.FailWrites = errors.New("quota exceeded")

	s := NewStore(kv)
	err := s.Append(ctx, testCar("local_300"))
	require.Error(t, err)

	// Nothing was persisted and browsing still works.
	kv.FailWrites = nil
	assert.Len(t, s.All(ctx), len(seedCars))
}
