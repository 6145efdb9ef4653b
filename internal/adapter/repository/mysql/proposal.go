package mysql

import (
	"context"

	proposalDomain "campus-approvals/internal/domain/proposal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepository struct{ db *gorm.DB }

func NewProposalRepository(db *gorm.DB) *ProposalRepository { return &ProposalRepository{db: db} }

func (r *ProposalRepository) Create(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalRepository) Save(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalRepository) GetByProposalID(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

// GetByProposalIDForUpdate locks the row; call only inside a transaction.
func (r *ProposalRepository) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	tx := r.db.WithContext(ctx)
	// sqlite (tests) has no FOR UPDATE; its writes serialize anyway
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out proposalDomain.Proposal
	res := tx.Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) List(ctx context.Context) ([]proposalDomain.Proposal, error) {
	var out []proposalDomain.Proposal
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
