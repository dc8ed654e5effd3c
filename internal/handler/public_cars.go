// Package handler exposes the HTTP handlers. This file holds the public
// browse endpoints: catalog search, car detail and the reference data
// the client renders its shelves and wizard dropdowns from. No
// authentication is required on any of them.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/model"
)

// PublicHandler answers unauthenticated catalog queries.
type PublicHandler struct {
	Query *catalog.Query
}

func NewPublicHandler(q *catalog.Query) *PublicHandler {
	return &PublicHandler{Query: q}
}

// SearchCars lists catalog entries matching the optional query
// parameters city, min_price, max_price, fuel_type and transmission.
// With no parameters it returns the whole catalog in store order.
func (h *PublicHandler) SearchCars(c echo.Context) error {
	f := catalog.Filter{
		City:         c.QueryParam("city"),
		FuelType:     model.FuelType(c.QueryParam("fuel_type")),
		Transmission: model.Transmission(c.QueryParam("transmission")),
	}
	if s := c.QueryParam("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_price"})
		}
		f.MinPrice = v
	}
	if s := c.QueryParam("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		f.MaxPrice = v
	}

	cars, err := h.Query.Search(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cars, "total": len(cars)})
}

// GetCar returns a single car by id, 404 when it exists in neither the
// seed set nor the submitted set.
func (h *PublicHandler) GetCar(c echo.Context) error {
	car, err := h.Query.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, car)
}

// GetCities returns the launch cities for the home shelf.
func (h *PublicHandler) GetCities(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.Cities})
}

// GetBrands returns the brand list offered by the listing wizard.
func (h *PublicHandler) GetBrands(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.Brands})
}

// GetBrandModels returns the models of one brand, 404 for a brand the
// wizard does not offer.
func (h *PublicHandler) GetBrandModels(c echo.Context) error {
	models, ok := catalog.BrandModels[c.Param("brand")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": models})
}
