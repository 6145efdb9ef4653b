package http

import (
	"errors"
	"net/http"

	approvalDomain "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	proposalDomain "campus-approvals/internal/domain/proposal"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps the approval-engine error taxonomy to HTTP.
// Every taxonomy error keeps its own message so the UI can show it
// verbatim; anything unrecognized becomes a generic 500.
func writeDomainError(c echo.Context, err error) error {
	var ge *approvalDomain.GatingError
	switch {
	case errors.As(err, &ge):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ge.Reason})
	case errors.Is(err, approvalDomain.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not an authorized admin"})
	case errors.Is(err, approvalDomain.ErrAlreadyProcessed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "already processed"})
	case errors.Is(err, approvalDomain.ErrInvalidDecision):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, proposalDomain.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, proposalDomain.ErrNoActiveApprovers):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, proposalDomain.ErrNotFound),
		errors.Is(err, approvalDomain.ErrNotFound),
		errors.Is(err, approver.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
