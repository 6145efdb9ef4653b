package approvalmock

import (
	"context"
	"time"

	domain "campus-approvals/internal/domain/approval"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn           func(ctx context.Context, as []*domain.Approval) error
	ListByProposalIDFn      func(ctx context.Context, proposalID uint64) ([]domain.Approval, error)
	ListWithApproversFn     func(ctx context.Context, proposalID uint64) ([]domain.RecordWithApprover, error)
	GetByProposalAndEmailFn func(ctx context.Context, proposalID uint64, email string) (*domain.Approval, error)
	RecordDecisionFn        func(ctx context.Context, proposalID uint64, email string, status domain.Status, comments *string, decidedAt time.Time) (int64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, as []*domain.Approval) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, as)
	}
	return nil
}

func (m *Repo) ListByProposalID(ctx context.Context, proposalID uint64) ([]domain.Approval, error) {
	if m.ListByProposalIDFn != nil {
		return m.ListByProposalIDFn(ctx, proposalID)
	}
	return nil, nil
}

func (m *Repo) ListWithApprovers(ctx context.Context, proposalID uint64) ([]domain.RecordWithApprover, error) {
	if m.ListWithApproversFn != nil {
		return m.ListWithApproversFn(ctx, proposalID)
	}
	return nil, nil
}

func (m *Repo) GetByProposalAndEmail(ctx context.Context, proposalID uint64, email string) (*domain.Approval, error) {
	if m.GetByProposalAndEmailFn != nil {
		return m.GetByProposalAndEmailFn(ctx, proposalID, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) RecordDecision(ctx context.Context, proposalID uint64, email string, status domain.Status, comments *string, decidedAt time.Time) (int64, error) {
	if m.RecordDecisionFn != nil {
		return m.RecordDecisionFn(ctx, proposalID, email, status, comments, decidedAt)
	}
	return 0, nil
}
