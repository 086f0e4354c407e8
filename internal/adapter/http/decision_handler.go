package http

import (
	"net/http"

	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type DecisionHandler struct{ uc *approval.Usecase }

func NewDecisionHandler(uc *approval.Usecase) *DecisionHandler {
	return &DecisionHandler{uc: uc}
}

type decisionReq struct {
	Decision  string `json:"decision"   validate:"required,decision"`
	DecidedBy string `json:"decided_by" validate:"required,hex32"`
}

// POST /applications/:application_id/hod-decision
func (h *DecisionHandler) RecordHodDecision(c echo.Context) error {
	in, ok := h.bindDecision(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.RecordHodDecision(c.Request().Context(), in)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}

// POST /applications/:application_id/principal-decision
func (h *DecisionHandler) RecordPrincipalDecision(c echo.Context) error {
	in, ok := h.bindDecision(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.RecordPrincipalDecision(c.Request().Context(), in)
	if err != nil {
		code, msg := domainStatus(err)
		return c.JSON(code, ErrorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, dto)
}

// bindDecision validates path and payload; on failure it writes the
// error response itself and reports ok=false.
func (h *DecisionHandler) bindDecision(c echo.Context) (approval.DecisionInput, bool) {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
		return approval.DecisionInput{}, false
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		return approval.DecisionInput{}, false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
		return approval.DecisionInput{}, false
	}
	decision, err := leave.ParseDecision(req.Decision)
	if err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "unknown decision"})
		return approval.DecisionInput{}, false
	}
	return approval.DecisionInput{
		ApplicationID: applicationID,
		Decision:      decision,
		DecidedBy:     req.DecidedBy,
	}, true
}
