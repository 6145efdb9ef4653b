package proposal

import "context"

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByProposalID(ctx context.Context, proposalID string) (*Proposal, error)
	// Same lookup with a row lock; use inside a transaction.
	GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*Proposal, error)
	List(ctx context.Context) ([]Proposal, error)
	Save(ctx context.Context, p *Proposal) error
}
