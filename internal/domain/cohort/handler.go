package cohort

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hemoscan/hemoscan/internal/domain/record"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/cohorts/classify", h.Classify)
}

// Classify accepts a JSON array of raw record rows, as produced by an
// external tabular parser.
func (h *Handler) Classify(c echo.Context) error {
	var rows []record.Raw
	if err := c.Bind(&rows); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	batch, err := h.svc.ClassifyBatch(rows)
	if err != nil {
		if errors.Is(err, ErrNoValidRecords) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, batch)
}
