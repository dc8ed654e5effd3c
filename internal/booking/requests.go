// Package booking tracks incoming rental requests shown on the owner's
// profile. Requests live in memory only; they are demo data plus
// whatever renters create during the process lifetime.
package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status of a rental request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ErrRequestNotFound is returned when no request has the given id.
var ErrRequestNotFound = errors.New("booking: request not found")

// Request is one incoming rental request.
type Request struct {
	ID         string    `json:"id"`
	CarID      string    `json:"carId,omitempty"`
	Car        string    `json:"car"`
	DateRange  string    `json:"date"`
	TotalPrice float64   `json:"price"`
	Status     Status    `json:"status"`
	Renter     string    `json:"renter"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Book holds the request list behind a mutex.
type Book struct {
	mu       sync.Mutex
	requests []Request
}

// NewBook returns a Book seeded with the demo requests.
func NewBook() *Book {
	return &Book{requests: []Request{
		{ID: "r1", Car: "Fiat Egea", DateRange: "12-15 Ekim", TotalPrice: 2550, Status: StatusPending, Renter: "Ayşe K."},
		{ID: "r2", Car: "Fiat Egea", DateRange: "20-22 Ekim", TotalPrice: 1700, Status: StatusApproved, Renter: "Mehmet B."},
	}}
}

// List returns a snapshot of all requests, newest additions last.
func (b *Book) List() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Add registers a new pending request and returns it with a generated id.
func (b *Book) Add(carID, carLabel, dateRange, renter string, totalPrice float64) Request {
	req := Request{
		ID:         uuid.NewString(),
		CarID:      carID,
		Car:        carLabel,
		DateRange:  dateRange,
		TotalPrice: totalPrice,
		Status:     StatusPending,
		Renter:     renter,
		CreatedAt:  time.Now().UTC(),
	}
	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.mu.Unlock()
	return req
}

// SetStatus updates a request's status and returns the updated record.
func (b *Book) SetStatus(id string, st Status) (Request, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.requests {
		if b.requests[i].ID == id {
			b.requests[i].Status = st
			return b.requests[i], nil
		}
	}
	return Request{}, ErrRequestNotFound
}
