package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/geo"
	"github.com/getaroag/getaroag-api/internal/listing"
	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/queue"
	queue_publisher "github.com/getaroag/getaroag-api/internal/service"
)

// ListingHandler accepts wizard drafts and turns them into published
// catalog entries.
type ListingHandler struct {
	Listings *listing.Service
	Sessions *auth.SessionStore
}

func NewListingHandler(svc *listing.Service, sessions *auth.SessionStore) *ListingHandler {
	return &ListingHandler{Listings: svc, Sessions: sessions}
}

// CreateCar publishes a listing draft. Validation failures return 400
// with the missing field names and write nothing; storage failures
// return 500. On success the car is announced on the broker
// best-effort.
func (h *ListingHandler) CreateCar(c echo.Context) error {
	var draft listing.Draft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	owner := model.OwnerFromUser(h.sessionUser(ctx))

	car, err := h.Listings.Submit(ctx, draft, owner)
	if err != nil {
		var verr *listing.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields", "fields": verr.Missing})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "publish failed"})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishListingPublished(ctx, queue.ListingPublishedEvent{
			CarID:       car.ID,
			Brand:       car.Brand,
			Model:       car.Model,
			Year:        car.Year,
			PricePerDay: car.PricePerDay,
			City:        car.Location.City,
			OwnerID:     car.Owner.ID,
			OwnerName:   car.Owner.Name,
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, car)
}

type locateReq struct {
	Draft listing.Draft `json:"draft"`
	Lat   float64       `json:"lat"`
	Lng   float64       `json:"lng"`
	Error string        `json:"error"`
}

// LocateDraft applies a device geolocation fix to a draft. The fix (or
// the failure kind) comes from the client, which owns the actual device
// APIs. Failures leave the draft untouched and are reported with a
// classified reason, never as a hard error.
func (h *ListingHandler) LocateDraft(c echo.Context) error {
	var req locateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Error != "" {
		kind := geo.ParseKind(req.Error)
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "geolocation_failed",
			"reason": string(kind),
			"draft":  req.Draft,
		})
	}
	req.Draft.ApplyFix(geo.Fix{Lat: req.Lat, Lng: req.Lng})
	return c.JSON(http.StatusOK, echo.Map{"draft": req.Draft})
}

// sessionUser loads the persisted profile, falling back to the demo
// user when the session blob is gone. The submission path always has an
// owner to embed this way.
func (h *ListingHandler) sessionUser(ctx context.Context) model.User {
	user, err := h.Sessions.Load(ctx)
	if err != nil {
		log.Printf("listing: no persisted session, using demo profile: %v", err)
		return auth.DemoUser
	}
	return user
}
