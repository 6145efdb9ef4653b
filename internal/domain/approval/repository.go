package approval

import (
	"context"
	"time"
)

type Repository interface {
	// Fan-out insert at proposal creation.
	CreateBatch(ctx context.Context, as []*Approval) error

	ListByProposalID(ctx context.Context, proposalID uint64) ([]Approval, error)

	// Joined with approvers, developer rows excluded, approval_order ascending.
	ListWithApprovers(ctx context.Context, proposalID uint64) ([]RecordWithApprover, error)

	GetByProposalAndEmail(ctx context.Context, proposalID uint64, email string) (*Approval, error)

	// Single conditional UPDATE keyed on (proposal, admin, status='pending').
	// Returns rows affected: zero means the row was missing or already
	// terminal, which callers surface as ErrAlreadyProcessed.
	RecordDecision(ctx context.Context, proposalID uint64, email string, status Status, comments *string, decidedAt time.Time) (int64, error)
}
