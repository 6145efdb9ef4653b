package uow

import (
	"context"

	"campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	"campus-approvals/internal/domain/proposal"
)

type Repos struct {
	Approvers approver.Repository
	Proposals proposal.Repository
	Approvals approval.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the proposal row first, then pass it in
	WithinProposalTx(ctx context.Context, proposalID string, fn func(r Repos, p *proposal.Proposal) error) error
}
