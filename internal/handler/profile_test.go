package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/booking"
	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/model"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func newProfileHandler(t *testing.T) (*catalog.Store, *ProfileHandler) {
	t.Helper()
	kv := storage.NewMemoryStore()
	store := catalog.NewStore(kv)
	query := catalog.NewQuery(store, 0, 0)
	return store, NewProfileHandler(store, query, booking.NewBook(), auth.NewSessionStore(kv))
}

type carsResp struct {
	Items []model.Car `json:"items"`
}

func TestMyCarsListsSubmittedPlusDemoSeeds(t *testing.T) {
	store, h := newProfileHandler(t)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, catalog.SeedCars()[3]))

	rec := doGet(t, h.MyCars, "/v1/profile/cars", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body carsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 3)
	assert.Equal(t, "4", body.Items[0].ID)
	assert.Equal(t, "1", body.Items[1].ID)
	assert.Equal(t, "2", body.Items[2].ID)
}

func TestDeleteCarOnlyHidesFromDisplayList(t *testing.T) {
	store, h := newProfileHandler(t)

	rec := doJSON(t, h.DeleteCar, http.MethodDelete, "/v1/profile/cars/1", "", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doGet(t, h.MyCars, "/v1/profile/cars", nil)
	var body carsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "2", body.Items[0].ID)

	// Public search still finds the hidden car.
	all, err := catalog.NewQuery(store, 0, 0).Search(context.Background(), catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRequestLifecycle(t *testing.T) {
	_, h := newProfileHandler(t)

	rec := doGet(t, h.ListRequests, "/v1/profile/requests", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []booking.Request `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)

	rec = doJSON(t, h.ApproveRequest, http.MethodPost, "/v1/profile/requests/r1/approve", "", map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"approved"`)

	rec = doJSON(t, h.RejectRequest, http.MethodPost, "/v1/profile/requests/r1/reject", "", map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rejected"`)

	rec = doJSON(t, h.ApproveRequest, http.MethodPost, "/v1/profile/requests/nope/approve", "", map[string]string{"id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayoutDefaultsAndOverride(t *testing.T) {
	_, h := newProfileHandler(t)

	rec := doGet(t, h.GetPayout, "/v1/profile/payout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), auth.DemoUser.IBAN)

	rec = doJSON(t, h.UpdatePayout, http.MethodPut, "/v1/profile/payout",
		`{"iban":"TR98 7654 3210 9876 5432 10"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(t, h.GetPayout, "/v1/profile/payout", nil)
	assert.Contains(t, rec.Body.String(), "TR98 7654 3210 9876 5432 10")
}

func TestUpdatePayoutRequiresIBAN(t *testing.T) {
	_, h := newProfileHandler(t)

	rec := doJSON(t, h.UpdatePayout, http.MethodPut, "/v1/profile/payout", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking(t *testing.T) {
	_, h := newProfileHandler(t)

	rec := doJSON(t, h.CreateBooking, http.MethodPost, "/v1/cars/1/bookings",
		`{"date":"1-3 Kasım","total_price":2550}`, map[string]string{"id": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var record booking.Request
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "1", record.CarID)
	assert.Equal(t, "Fiat Egea", record.Car)
	assert.Equal(t, booking.StatusPending, record.Status)
	assert.Equal(t, auth.DemoUser.Name, record.Renter)

	assert.Len(t, h.Requests.List(), 3)
}

func TestCreateBookingUnknownCar(t *testing.T) {
	_, h := newProfileHandler(t)

	rec := doJSON(t, h.CreateBooking, http.MethodPost, "/v1/cars/nope/bookings",
		`{"date":"1-3 Kasım","total_price":100}`, map[string]string{"id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
