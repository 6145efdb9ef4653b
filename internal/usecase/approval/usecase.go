package approval

import (
	"context"
	"errors"
	"time"

	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	domainProposal "campus-approvals/internal/domain/proposal"
	"campus-approvals/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	approverRepo approver.Repository
	proposalRepo domainProposal.Repository
	approvalRepo domainApproval.Repository
	uow          uow.UnitOfWork
}

// NewUsecase: pass all repos plus a UoW for the decision tx.
func NewUsecase(approvers approver.Repository, proposals domainProposal.Repository, approvals domainApproval.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{approverRepo: approvers, proposalRepo: proposals, approvalRepo: approvals, uow: tx}
}

// CanApprove is the read-only eligibility check driving UI enablement.
// RecordDecision re-runs the same policy server-side inside its tx.
func (u *Usecase) CanApprove(ctx context.Context, adminEmail, proposalID string) (Eligibility, error) {
	adm, err := u.approverRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, approver.ErrNotFound) {
			return Eligibility{Allowed: false, Reason: reasonNotAuthorized}, nil
		}
		return Eligibility{}, err
	}

	p, err := u.proposalRepo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Eligibility{}, domainProposal.ErrNotFound
		}
		return Eligibility{}, err
	}

	rows, err := u.approvalRepo.ListWithApprovers(ctx, p.ID)
	if err != nil {
		return Eligibility{}, err
	}
	return evaluate(adm, rows), nil
}

func (u *Usecase) RecordDecision(ctx context.Context, in RecordDecisionInput) (*ApprovalDTO, error) {
	// Self-service only: nobody decides on another approver's behalf.
	if in.CallerEmail == "" || in.CallerEmail != in.AdminEmail {
		return nil, domainApproval.ErrNotAuthorized
	}
	status, err := parseDecision(in.Decision)
	if err != nil {
		return nil, err
	}

	var dto *ApprovalDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByProposalIDForUpdate(ctx, in.ProposalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainProposal.ErrNotFound
			}
			return err
		}

		adm, err := r.Approvers.GetByEmail(ctx, in.AdminEmail)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, approver.ErrNotFound) {
				return domainApproval.ErrNotAuthorized
			}
			return err
		}

		rows, err := r.Approvals.ListWithApprovers(ctx, p.ID)
		if err != nil {
			return err
		}
		if e := evaluate(adm, rows); !e.Allowed {
			return eligibilityError(e)
		}

		// Conditional update keyed on status='pending'. A concurrent
		// decision that won the race leaves zero rows for us.
		now := time.Now().UTC()
		n, err := r.Approvals.RecordDecision(ctx, p.ID, adm.Email, status, in.Comments, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return domainApproval.ErrAlreadyProcessed
		}

		// Keep the denormalized proposal status consistent.
		refreshed, err := r.Approvals.ListByProposalID(ctx, p.ID)
		if err != nil {
			return err
		}
		p.Status = OverallStatus(refreshed)
		p.StatusUpdatedAt = now
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}

		dto = &ApprovalDTO{
			ProposalID: p.ProposalID,
			AdminEmail: adm.Email,
			Status:     string(status),
			Comments:   in.Comments,
			DecidedAt:  &now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListApprovals returns the admin dashboard view: every approval joined
// with its approver, developers excluded, in approval_order.
func (u *Usecase) ListApprovals(ctx context.Context, proposalID string) ([]ApprovalRowDTO, error) {
	p, err := u.proposalRepo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProposal.ErrNotFound
		}
		return nil, err
	}
	rows, err := u.approvalRepo.ListWithApprovers(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ApprovalRowDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ApprovalRowDTO{
			AdminEmail:    rows[i].AdminEmail,
			AdminName:     rows[i].AdminName,
			AdminRole:     rows[i].AdminRole,
			ApprovalOrder: rows[i].ApprovalOrder,
			Status:        string(rows[i].Status),
			Comments:      rows[i].Comments,
			DecidedAt:     rows[i].DecidedAt,
		})
	}
	return out, nil
}

// PublicStatus backs the public status page: rich-vocabulary aggregate
// plus one row per active approver, synthesized as pending when the
// approver joined the registry after this proposal's fan-out.
func (u *Usecase) PublicStatus(ctx context.Context, proposalID string) (*PublicStatusDTO, error) {
	p, err := u.proposalRepo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProposal.ErrNotFound
		}
		return nil, err
	}
	rows, err := u.approvalRepo.ListWithApprovers(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	active, err := u.approverRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := &PublicStatusDTO{
		ProposalID:  p.ProposalID,
		Status:      ComputePublicState(rows),
		Approvals:   make([]PublicApprovalDTO, 0, len(active)),
		LastUpdated: p.UpdatedAt,
	}

	// Snapshot rows first (fan-out order), then synthesize pending rows
	// for active approvers that postdate this proposal's fan-out.
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		seen[rows[i].AdminEmail] = true
		if rows[i].UpdatedAt.After(out.LastUpdated) {
			out.LastUpdated = rows[i].UpdatedAt
		}
		out.Approvals = append(out.Approvals, PublicApprovalDTO{
			AdminName: rows[i].AdminName,
			AdminRole: rows[i].AdminRole,
			Status:    string(rows[i].Status),
			Comments:  rows[i].Comments,
			DecidedAt: rows[i].DecidedAt,
		})
	}
	for i := range active {
		if seen[active[i].Email] {
			continue
		}
		out.Approvals = append(out.Approvals, PublicApprovalDTO{
			AdminName: active[i].Name,
			AdminRole: active[i].Role,
			Status:    string(domainApproval.StatusPending),
		})
	}
	return out, nil
}

func parseDecision(d string) (domainApproval.Status, error) {
	switch domainApproval.Status(d) {
	case domainApproval.StatusApproved:
		return domainApproval.StatusApproved, nil
	case domainApproval.StatusRejected:
		return domainApproval.StatusRejected, nil
	default:
		return "", domainApproval.ErrInvalidDecision
	}
}
