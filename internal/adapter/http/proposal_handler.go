package http

import (
	"net/http"
	"time"

	ucProposal "campus-approvals/internal/usecase/proposal"

	"github.com/labstack/echo/v4"
)

type ProposalHandler struct{ uc *ucProposal.Usecase }

func NewProposalHandler(uc *ucProposal.Usecase) *ProposalHandler { return &ProposalHandler{uc: uc} }

type createProposalReq struct {
	Title          string `json:"title"           validate:"required,max=255"`
	Description    string `json:"description"`
	Kind           string `json:"kind"            validate:"required,oneof=event club_formation"`
	SubmitterName  string `json:"submitter_name"  validate:"required,max=255"`
	SubmitterEmail string `json:"submitter_email" validate:"required,email"`
	// Canonical date `YYYY-MM-DD`, optional (club formations have none)
	EventDate string `json:"event_date"      validate:"omitempty,datetime=2006-01-02"`
}

func (h *ProposalHandler) CreateProposal(c echo.Context) error {
	var req createProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := ucProposal.CreateProposalInput{
		Title:          req.Title,
		Description:    req.Description,
		Kind:           req.Kind,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
	}
	if req.EventDate != "" {
		d, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid event_date"})
		}
		d = d.UTC()
		in.EventDate = &d
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProposalHandler) GetProposal(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), proposalID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProposalHandler) ListProposals(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type forceStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending under_consideration approved rejected"`
}

// ForceStatus is the explicit admin override path, separate from the
// decision-driven recomputation.
func (h *ProposalHandler) ForceStatus(c echo.Context) error {
	proposalID := c.Param("proposal_id")
	if !reHex32.MatchString(proposalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid proposal_id"})
	}
	var req forceStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ForceStatus(c.Request().Context(), proposalID, req.Status)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
