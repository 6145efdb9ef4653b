package proposalmock

import (
	"context"

	domain "campus-approvals/internal/domain/proposal"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, p *domain.Proposal) error
	GetByProposalIDFn          func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	GetByProposalIDForUpdateFn func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	ListFn                     func(ctx context.Context) ([]domain.Proposal, error)
	SaveFn                     func(ctx context.Context, p *domain.Proposal) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Proposal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProposalID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDFn != nil {
		return m.GetByProposalIDFn(ctx, proposalID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDForUpdateFn != nil {
		return m.GetByProposalIDForUpdateFn(ctx, proposalID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Proposal, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Proposal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
