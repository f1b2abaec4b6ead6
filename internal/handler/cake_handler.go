package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bespoke-cakes/backend/internal/service"
)

type CakeHandler struct {
	svc service.CakeService
}

func NewCakeHandler(svc service.CakeService) *CakeHandler {
	return &CakeHandler{svc: svc}
}

// List handles GET /cakes?category=<string>&featured=<bool>.
func (h *CakeHandler) List(c echo.Context) error {
	var featured *bool
	if raw := c.QueryParam("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "featured must be a boolean"))
		}
		featured = &v
	}

	cakes, err := h.svc.List(c.Request().Context(), c.QueryParam("category"), featured)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch cakes"))
	}
	return c.JSON(http.StatusOK, cakes)
}

// Get handles GET /cakes/:slug.
func (h *CakeHandler) Get(c echo.Context) error {
	cake, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, DetailResponse{Detail: "Cake not found"})
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch cake"))
	}
	return c.JSON(http.StatusOK, cake)
}
