package hematology

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hemoscan/hemoscan/internal/domain/record"
	"github.com/hemoscan/hemoscan/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments/anemia", h.Classify)
	api.GET("/assessments/anemia/recent", h.Recent)
}

// Classify accepts a raw record as a JSON object. An optional "name"
// key labels the stored history entry; every other key is a wire field
// of ClinicalRecord.
func (h *Handler) Classify(c echo.Context) error {
	raw := record.Raw{}
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	name, _ := record.String(raw, "name")
	res, err := h.svc.ClassifyRecord(c.Request().Context(), raw, name)
	if err != nil {
		var vErr *record.ValidationError
		if errors.As(err, &vErr) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) Recent(c echo.Context) error {
	pg := pagination.FromContext(c)
	entries, total, err := h.svc.RecentResults(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(entries, total, pg.Limit, pg.Offset))
}
