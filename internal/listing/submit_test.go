package listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func TestSubmitPersistsCar(t *testing.T) {
	store := catalog.NewStore(storage.NewMemoryStore())
	svc := NewService(store)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	car, err := svc.Submit(ctx, completeDraft(), model.Owner{})
	require.NoError(t, err)
	assert.Equal(t, "local_1700000000000", car.ID)

	submitted := store.Submitted(ctx)
	require.Len(t, submitted, 1)
	assert.Equal(t, car.ID, submitted[0].ID)
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.FailWrites = assert.AnError
	store := catalog.NewStore(kv)
	svc := NewService(store)

	_, err := svc.Submit(context.Background(), Draft{}, model.Owner{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	// Nothing was written: the injected write failure never surfaced.
	assert.Empty(t, store.Submitted(context.Background()))
}

func TestSubmitAppendFailure(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.FailWrites = assert.AnError
	store := catalog.NewStore(kv)
	svc := NewService(store)

	_, err := svc.Submit(context.Background(), completeDraft(), model.Owner{})
	assert.ErrorIs(t, err, assert.AnError)
}
