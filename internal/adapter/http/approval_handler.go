package http

import (
	"net/http"
	"strings"

	ucApproval "campus-approvals/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

// AdminEmailHeader carries the authenticated approver's email, injected
// by the upstream auth layer. Handlers never trust a body-supplied email.
const AdminEmailHeader = "Ax-Admin-Email"

type ApprovalHandler struct{ uc *ucApproval.Usecase }

func NewApprovalHandler(uc *ucApproval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

func callerEmail(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Request().Header.Get(AdminEmailHeader)))
}

type recordDecisionReq struct {
	Decision string  `json:"decision" validate:"required,oneof=approved rejected"`
	Comments *string `json:"comments"`
}

func (h *ApprovalHandler) RecordDecision(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	caller := callerEmail(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + AdminEmailHeader})
	}

	var req recordDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.RecordDecision(c.Request().Context(), ucApproval.RecordDecisionInput{
		ProposalID:  proposalID,
		AdminEmail:  caller,
		CallerEmail: caller,
		Decision:    req.Decision,
		Comments:    req.Comments,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) Eligibility(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	caller := callerEmail(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + AdminEmailHeader})
	}
	elig, err := h.uc.CanApprove(c.Request().Context(), caller, proposalID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, elig)
}

func (h *ApprovalHandler) ListApprovals(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	rows, err := h.uc.ListApprovals(c.Request().Context(), proposalID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
