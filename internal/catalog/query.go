package catalog

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/getaroag/getaroag-api/internal/model"
)

// Filter narrows a catalog search. Zero values impose no constraint;
// supplied fields are combined with logical AND. Price bounds are
// inclusive.
type Filter struct {
	City         string
	MinPrice     float64
	MaxPrice     float64
	FuelType     model.FuelType
	Transmission model.Transmission
}

// Query answers searches and lookups against the Store. Both operations
// wait out a configurable latency before answering, so clients exercise
// their loading states the same way they would against a remote API.
type Query struct {
	store       *Store
	searchDelay time.Duration
	lookupDelay time.Duration
}

// NewQuery wires a Query to a Store. The delays may be zero (tests).
func NewQuery(store *Store, searchDelay, lookupDelay time.Duration) *Query {
	return &Query{store: store, searchDelay: searchDelay, lookupDelay: lookupDelay}
}

// Search returns the cars matching every supplied predicate, in store
// order. An empty filter returns the whole catalog.
func (q *Query) Search(ctx context.Context, f Filter) ([]model.Car, error) {
	if err := wait(ctx, q.searchDelay); err != nil {
		return nil, err
	}
	out := []model.Car{}
	for _, c := range q.store.All(ctx) {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ByID returns the car with the given identifier. Seed cars are checked
// before submitted ones; a miss in both returns ErrCarNotFound.
func (q *Query) ByID(ctx context.Context, id string) (model.Car, error) {
	if err := wait(ctx, q.lookupDelay); err != nil {
		return model.Car{}, err
	}
	for _, c := range SeedCars() {
		if c.ID == id {
			return c, nil
		}
	}
	for _, c := range q.store.Submitted(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Car{}, ErrCarNotFound
}

func (f Filter) matches(c model.Car) bool {
	if f.City != "" && !strings.Contains(foldSearch(c.Location.City), foldSearch(f.City)) {
		return false
	}
	if f.MinPrice > 0 && c.PricePerDay < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && c.PricePerDay > f.MaxPrice {
		return false
	}
	if f.FuelType != "" && c.FuelType != f.FuelType {
		return false
	}
	if f.Transmission != "" && c.Transmission != f.Transmission {
		return false
	}
	return true
}

// searchFolder strips combining marks after NFD decomposition so that
// dotted/accented letters compare equal to their plain forms. Turkish
// city names need this: "İstanbul" must match a search for "ISTANBUL".
var searchFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldSearch(s string) string {
	folded, _, err := transform.String(searchFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
