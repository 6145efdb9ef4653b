package http

import (
	"net/http"

	ucApproval "campus-approvals/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

// PublicHandler serves the unauthenticated status page.
type PublicHandler struct{ uc *ucApproval.Usecase }

func NewPublicHandler(uc *ucApproval.Usecase) *PublicHandler { return &PublicHandler{uc: uc} }

func (h *PublicHandler) Status(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	dto, err := h.uc.PublicStatus(c.Request().Context(), proposalID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
