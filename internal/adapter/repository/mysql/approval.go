package mysql

import (
	"context"
	"time"

	approvalDomain "campus-approvals/internal/domain/approval"
	approverDomain "campus-approvals/internal/domain/approver"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) CreateBatch(ctx context.Context, as []*approvalDomain.Approval) error {
	if len(as) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(as).Error
}

func (r *ApprovalRepository) ListByProposalID(ctx context.Context, proposalID uint64) ([]approvalDomain.Approval, error) {
	var out []approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) ListWithApprovers(ctx context.Context, proposalID uint64) ([]approvalDomain.RecordWithApprover, error) {
	var out []approvalDomain.RecordWithApprover
	res := r.db.WithContext(ctx).
		Table("approvals").
		Select("approvals.id, approvals.proposal_id, approvals.admin_email, approvals.status, approvals.comments, approvals.decided_at, approvals.updated_at, approvers.name AS admin_name, approvers.role AS admin_role, approvers.approval_order AS approval_order").
		Joins("JOIN approvers ON approvers.email = approvals.admin_email").
		Where("approvals.proposal_id = ? AND approvers.role <> ?", proposalID, approverDomain.RoleDeveloper).
		Order("approvers.approval_order ASC, approvals.id ASC").
		Scan(&out)
	return out, res.Error
}

func (r *ApprovalRepository) GetByProposalAndEmail(ctx context.Context, proposalID uint64, email string) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("proposal_id = ? AND admin_email = ?", proposalID, email).
		First(&out)
	return &out, res.Error
}

// RecordDecision is the single conditional UPDATE that makes concurrent
// decisions deterministic: whoever loses the race updates zero rows.
func (r *ApprovalRepository) RecordDecision(ctx context.Context, proposalID uint64, email string, status approvalDomain.Status, comments *string, decidedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&approvalDomain.Approval{}).
		Where("proposal_id = ? AND admin_email = ? AND status = ?", proposalID, email, approvalDomain.StatusPending).
		Updates(map[string]any{
			"status":     status,
			"comments":   comments,
			"decided_at": decidedAt,
		})
	return res.RowsAffected, res.Error
}
