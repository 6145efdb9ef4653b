package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	domainProposal "campus-approvals/internal/domain/proposal"
	"campus-approvals/internal/domain/uow"
	"campus-approvals/internal/testutil/approvalmock"
	"campus-approvals/internal/testutil/approvermock"
	"campus-approvals/internal/testutil/proposalmock"
	"campus-approvals/internal/testutil/uowmock"
	ucApproval "campus-approvals/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

const testPID = "0123456789abcdef0123456789abcdef"

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func decisionUsecase(t *testing.T, role approver.Role, rows []domainApproval.RecordWithApprover, rowsAffected int64) *ucApproval.Usecase {
	t.Helper()
	admins := &approvermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*approver.Approver, error) {
			return &approver.Approver{Email: email, Name: "X", Role: role, IsActive: true}, nil
		},
	}
	proposals := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, proposalID string) (*domainProposal.Proposal, error) {
			return &domainProposal.Proposal{ID: 1, ProposalID: proposalID, Status: domainProposal.StatusPending}, nil
		},
		GetByProposalIDFn: func(ctx context.Context, proposalID string) (*domainProposal.Proposal, error) {
			return &domainProposal.Proposal{ID: 1, ProposalID: proposalID, Status: domainProposal.StatusPending}, nil
		},
		SaveFn: func(ctx context.Context, p *domainProposal.Proposal) error { return nil },
	}
	approvals := &approvalmock.Repo{
		ListWithApproversFn: func(ctx context.Context, proposalID uint64) ([]domainApproval.RecordWithApprover, error) {
			return rows, nil
		},
		RecordDecisionFn: func(ctx context.Context, proposalID uint64, email string, status domainApproval.Status, comments *string, decidedAt time.Time) (int64, error) {
			return rowsAffected, nil
		},
		ListByProposalIDFn: func(ctx context.Context, proposalID uint64) ([]domainApproval.Approval, error) {
			return []domainApproval.Approval{{Status: domainApproval.StatusApproved}, {Status: domainApproval.StatusPending}}, nil
		},
	}
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Approvers: admins, Proposals: proposals, Approvals: approvals})
		},
	}
	return ucApproval.NewUsecase(admins, proposals, approvals, tx)
}

func pendingRows() []domainApproval.RecordWithApprover {
	return []domainApproval.RecordWithApprover{
		{AdminEmail: "pres@c.edu", AdminRole: approver.RolePresident, Status: domainApproval.StatusPending},
		{AdminEmail: "treas@c.edu", AdminRole: approver.RoleTreasurer, Status: domainApproval.StatusPending},
		{AdminEmail: "sa@c.edu", AdminRole: approver.RoleSAOffice, Status: domainApproval.StatusPending},
	}
}

func doDecision(t *testing.T, uc *ucApproval.Usecase, email, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	h := NewApprovalHandler(uc)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if email != "" {
		req.Header.Set(AdminEmailHeader, email)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/proposals/:proposal_id/decision")
	c.SetParamNames("proposal_id")
	c.SetParamValues(testPID)

	if err := h.RecordDecision(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestRecordDecision_Success(t *testing.T) {
	uc := decisionUsecase(t, approver.RolePresident, pendingRows(), 1)
	rec := doDecision(t, uc, "pres@c.edu", `{"decision":"approved","comments":"fine by me"}`)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto ucApproval.ApprovalDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if dto.Status != "approved" || dto.AdminEmail != "pres@c.edu" {
		t.Fatalf("dto mismatch: %+v", dto)
	}
}

func TestRecordDecision_MissingIdentityHeader(t *testing.T) {
	uc := decisionUsecase(t, approver.RolePresident, pendingRows(), 1)
	rec := doDecision(t, uc, "", `{"decision":"approved"}`)
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRecordDecision_InvalidDecisionValue(t *testing.T) {
	uc := decisionUsecase(t, approver.RolePresident, pendingRows(), 1)
	rec := doDecision(t, uc, "pres@c.edu", `{"decision":"maybe"}`)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Details) == 0 || resp.Details[0].Field != "Decision" {
		t.Fatalf("expected field error on Decision, got %+v", resp)
	}
}

func TestRecordDecision_GatingViolation(t *testing.T) {
	uc := decisionUsecase(t, approver.RoleSAOffice, pendingRows(), 1)
	rec := doDecision(t, uc, "sa@c.edu", `{"decision":"approved"}`)

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	// the gating reason surfaces verbatim for the UI
	if resp.Error != "Core student council members must approve first" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestRecordDecision_AlreadyProcessedConflict(t *testing.T) {
	rows := pendingRows()
	rows[0].Status = domainApproval.StatusApproved
	uc := decisionUsecase(t, approver.RolePresident, rows, 0)
	rec := doDecision(t, uc, "pres@c.edu", `{"decision":"rejected"}`)
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestEligibility(t *testing.T) {
	uc := decisionUsecase(t, approver.RoleSAOffice, pendingRows(), 1)
	e := newEchoWithValidator()
	h := NewApprovalHandler(uc)

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req.Header.Set(AdminEmailHeader, "sa@c.edu")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/proposals/:proposal_id/eligibility")
	c.SetParamNames("proposal_id")
	c.SetParamValues(testPID)

	if err := h.Eligibility(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var elig ucApproval.Eligibility
	if err := json.Unmarshal(rec.Body.Bytes(), &elig); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if elig.Allowed || elig.Reason == "" {
		t.Fatalf("expected gated eligibility, got %+v", elig)
	}
}

func TestListApprovals_BadProposalID(t *testing.T) {
	uc := decisionUsecase(t, approver.RolePresident, pendingRows(), 1)
	e := newEchoWithValidator()
	h := NewApprovalHandler(uc)

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/proposals/:proposal_id/approvals")
	c.SetParamNames("proposal_id")
	c.SetParamValues("not-a-hex-id")

	if err := h.ListApprovals(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
