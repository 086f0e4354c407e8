package http

import (
	"net/http"

	"campus-leave-service/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	StaffID    string `json:"staff_id"    validate:"required,hex32"`
	StaffName  string `json:"staff_name"  validate:"required,max=120"`
	Department string `json:"department"  validate:"required,max=80"`
	Category   string `json:"category"    validate:"required,leavecategory"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	FromDate string `json:"from_date"   validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date"     validate:"required,datetime=2006-01-02"`
	Reason   string `json:"reason"      validate:"max=2000"`
}

func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		StaffID:    req.StaffID,
		StaffName:  req.StaffName,
		Department: req.Department,
		Category:   req.Category,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Reason:     req.Reason,
	})
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), applicationID)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) ListStaffApplications(c echo.Context) error {
	staffID := c.Param("staff_id")
	if !reHex32.MatchString(staffID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid staff_id"})
	}
	rows, err := h.uc.ListByStaff(c.Request().Context(), staffID)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /approvals/pending?role=hod&department=… or ?role=principal
func (h *ApplicationHandler) ListPending(c echo.Context) error {
	role := c.QueryParam("role")
	department := c.QueryParam("department")
	rows, err := h.uc.ListPending(c.Request().Context(), role, department)
	if err != nil {
		if err == application.ErrUnknownRole {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be hod (with department) or principal"})
		}
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) GetBalance(c echo.Context) error {
	staffID := c.Param("staff_id")
	if !reHex32.MatchString(staffID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid staff_id"})
	}
	dto, err := h.uc.GetBalance(c.Request().Context(), staffID, c.Param("category"))
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}
