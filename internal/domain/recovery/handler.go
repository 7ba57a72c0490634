package recovery

import (
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
	api.POST("/assessments/recovery", h.Assess)
}

// Assess accepts a raw check-in as a JSON object keyed by the
// TrajectoryInput wire fields.
func (h *Handler) Assess(c echo.Context) error {
	raw := record.Raw{}
	if err := c.Bind(&raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := h.svc.AssessCheckIn(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}
