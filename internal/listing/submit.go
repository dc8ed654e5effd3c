package listing

import (
	"context"
	"time"

	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/model"
)

// Service publishes validated drafts into the catalog.
type Service struct {
	store *catalog.Store
	now   func() time.Time
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit validates the draft, maps it to a car and appends it to the
// catalog, in that order. Validation failures short-circuit before any
// write; append failures come back to the caller, who owns the
// user-visible messaging.
func (s *Service) Submit(ctx context.Context, d Draft, owner model.Owner) (model.Car, error) {
	if err := Validate(d); err != nil {
		return model.Car{}, err
	}
	car := ToCar(d, owner, s.now())
	if err := s.store.Append(ctx, car); err != nil {
		return model.Car{}, err
	}
	return car, nil
}
