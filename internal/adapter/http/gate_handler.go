package http

import (
	"net/http"

	"campus-leave-service/internal/usecase/gate"

	"github.com/labstack/echo/v4"
)

// GateHandler is the security-operator surface: who may be off-site
// today, and exit/return assertions against that authorization.
type GateHandler struct{ uc *gate.Usecase }

func NewGateHandler(uc *gate.Usecase) *GateHandler { return &GateHandler{uc: uc} }

// GET /gate/authorized-today
func (h *GateHandler) ListAuthorizedToday(c echo.Context) error {
	rows, err := h.uc.ListAuthorizedToday(c.Request().Context())
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /gate/exit/:staff_id
func (h *GateHandler) MarkExit(c echo.Context) error {
	staffID := c.Param("staff_id")
	if !reHex32.MatchString(staffID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid staff_id"})
	}
	dto, err := h.uc.MarkExit(c.Request().Context(), staffID)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}

// POST /gate/return/:staff_id
func (h *GateHandler) MarkReturn(c echo.Context) error {
	staffID := c.Param("staff_id")
	if !reHex32.MatchString(staffID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid staff_id"})
	}
	dto, err := h.uc.MarkReturn(c.Request().Context(), staffID)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}
