package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func newPublicHandler(t *testing.T) (*catalog.Store, *PublicHandler) {
	t.Helper()
	store := catalog.NewStore(storage.NewMemoryStore())
	return store, NewPublicHandler(catalog.NewQuery(store, 0, 0))
}

func doGet(t *testing.T, h echo.HandlerFunc, target string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

type searchResp struct {
	Items []json.RawMessage `json:"items"`
	Total int               `json:"total"`
}

func TestSearchCarsNoFilter(t *testing.T) {
	_, h := newPublicHandler(t)

	rec := doGet(t, h.SearchCars, "/v1/cars", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body searchResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Total)
	assert.Len(t, body.Items, 4)
}

func TestSearchCarsCityFilter(t *testing.T) {
	_, h := newPublicHandler(t)

	rec := doGet(t, h.SearchCars, "/v1/cars?city=ISTANBUL", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body searchResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)
}

func TestSearchCarsBadPrice(t *testing.T) {
	_, h := newPublicHandler(t)

	rec := doGet(t, h.SearchCars, "/v1/cars?min_price=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, h.SearchCars, "/v1/cars?max_price=-", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCar(t *testing.T) {
	_, h := newPublicHandler(t)

	rec := doGet(t, h.GetCar, "/v1/cars/1", map[string]string{"id": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Fiat"`)

	rec = doGet(t, h.GetCar, "/v1/cars/nope", map[string]string{"id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	_, h := newPublicHandler(t)

	rec := doGet(t, h.GetCities, "/v1/cities", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "İstanbul")

	rec = doGet(t, h.GetBrands, "/v1/brands", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renault")

	rec = doGet(t, h.GetBrandModels, "/v1/brands/Fiat/models", map[string]string{"brand": "Fiat"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Egea")

	rec = doGet(t, h.GetBrandModels, "/v1/brands/Nope/models", map[string]string{"brand": "Nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
