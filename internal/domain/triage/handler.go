package triage

import (
	"net/http"

	"github.com/google/uuid"
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
	api.GET("/triage/board", h.Board)
	api.GET("/triage/board/:id", h.Entry)
	api.POST("/triage/admissions", h.Admit)
	api.POST("/triage/manual", h.ManualAdmit)
}

type admitRequest struct {
	Name   string     `json:"name"`
	Record record.Raw `json:"record"`
}

type manualAdmitRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	RiskScore int    `json:"risk_score"`
	Diagnosis string `json:"diagnosis"`
}

// Admit classifies the embedded clinical record and admits the patient
// under the derived risk score.
func (h *Handler) Admit(c echo.Context) error {
	var req admitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ent, err := h.svc.AdmitFromRecord(req.Record, req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, ent)
}

// ManualAdmit admits a patient from operator-entered fields.
func (h *Handler) ManualAdmit(c echo.Context) error {
	var req manualAdmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ent, err := h.svc.ManualAdmit(req.Name, req.Age, req.RiskScore, req.Diagnosis)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, ent)
}

// Entry returns a single admitted entry by id.
func (h *Handler) Entry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ent, ok := h.svc.GetEntry(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "triage entry not found")
	}
	return c.JSON(http.StatusOK, ent)
}

// Board lists the visible queue, highest risk first.
func (h *Handler) Board(c echo.Context) error {
	pg := pagination.FromContext(c)
	entries := h.svc.BoardSnapshot()
	total := len(entries)
	start, end := pg.Window(total)
	return c.JSON(http.StatusOK, pagination.NewResponse(entries[start:end], total, pg.Limit, pg.Offset))
}
