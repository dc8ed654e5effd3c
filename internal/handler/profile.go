package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/booking"
	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/queue"
	queue_publisher "github.com/getaroag/getaroag-api/internal/service"
)

// ProfileHandler serves the signed-in owner's view: their cars, the
// incoming rental requests and payout settings.
//
// The "my cars" list is a display list: deleting from it only hides the
// entry here, the persisted catalog keeps the car and public search
// still finds it. That mirrors the observed client behavior and is kept
// on purpose.
type ProfileHandler struct {
	Store    *catalog.Store
	Query    *catalog.Query
	Requests *booking.Book
	Sessions *auth.SessionStore

	mu     sync.Mutex
	hidden map[string]bool
	iban   string
}

func NewProfileHandler(store *catalog.Store, query *catalog.Query, requests *booking.Book, sessions *auth.SessionStore) *ProfileHandler {
	return &ProfileHandler{
		Store:    store,
		Query:    query,
		Requests: requests,
		Sessions: sessions,
		hidden:   map[string]bool{},
	}
}

// MyCars lists the owner's display list: everything they submitted plus
// the demo seed cars attributed to them, minus locally hidden entries.
func (h *ProfileHandler) MyCars(c echo.Context) error {
	ctx := c.Request().Context()
	cars := append(h.Store.Submitted(ctx), catalog.SeedCars()[:2]...)

	h.mu.Lock()
	out := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		if !h.hidden[car.ID] {
			out = append(out, car)
		}
	}
	h.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// DeleteCar hides a car from the display list. The persisted catalog is
// not touched.
func (h *ProfileHandler) DeleteCar(c echo.Context) error {
	h.mu.Lock()
	h.hidden[c.Param("id")] = true
	h.mu.Unlock()
	return c.NoContent(http.StatusNoContent)
}

// ListRequests returns the incoming rental requests.
func (h *ProfileHandler) ListRequests(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Requests.List()})
}

// ApproveRequest marks a rental request approved.
func (h *ProfileHandler) ApproveRequest(c echo.Context) error {
	return h.setRequestStatus(c, booking.StatusApproved)
}

// RejectRequest marks a rental request rejected.
func (h *ProfileHandler) RejectRequest(c echo.Context) error {
	return h.setRequestStatus(c, booking.StatusRejected)
}

func (h *ProfileHandler) setRequestStatus(c echo.Context, st booking.Status) error {
	req, err := h.Requests.SetStatus(c.Param("id"), st)
	if err != nil {
		if errors.Is(err, booking.ErrRequestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, req)
}

// GetPayout returns the payout (IBAN) settings.
func (h *ProfileHandler) GetPayout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"iban": h.payoutIBAN(c.Request().Context())})
}

// payoutIBAN resolves the current IBAN: an in-memory override first,
// then the persisted profile, then the demo default.
func (h *ProfileHandler) payoutIBAN(ctx context.Context) string {
	h.mu.Lock()
	override := h.iban
	h.mu.Unlock()
	if override != "" {
		return override
	}
	if user, err := h.Sessions.Load(ctx); err == nil && user.IBAN != "" {
		return user.IBAN
	}
	return auth.DemoUser.IBAN
}

type payoutReq struct {
	IBAN string `json:"iban"`
}

// UpdatePayout replaces the payout IBAN. Held in memory only, like the
// rest of the profile demo state.
func (h *ProfileHandler) UpdatePayout(c echo.Context) error {
	var req payoutReq
	if err := c.Bind(&req); err != nil || req.IBAN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "iban required"})
	}
	h.mu.Lock()
	h.iban = req.IBAN
	h.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"iban": req.IBAN})
}

type bookingReq struct {
	DateRange  string  `json:"date"`
	TotalPrice float64 `json:"total_price"`
}

// CreateBooking files a pending rental request for a car and announces
// it on the broker best-effort. The renter is the signed-in user.
func (h *ProfileHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	car, err := h.Query.ByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	renter := auth.DemoUser.Name
	if user, err := h.Sessions.Load(ctx); err == nil {
		renter = user.Name
	}

	record := h.Requests.Add(car.ID, car.Brand+" "+car.Model, req.DateRange, renter, req.TotalPrice)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingRequested(ctx, queue.BookingRequestedEvent{
			RequestID:   record.ID,
			CarID:       record.CarID,
			CarLabel:    record.Car,
			Renter:      record.Renter,
			DateRange:   record.DateRange,
			TotalPrice:  record.TotalPrice,
			RequestedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, record)
}
