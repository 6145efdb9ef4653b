package mysql

import (
	"context"

	approverDomain "campus-approvals/internal/domain/approver"

	"gorm.io/gorm"
)

type ApproverRepository struct{ db *gorm.DB }

func NewApproverRepository(db *gorm.DB) *ApproverRepository { return &ApproverRepository{db: db} }

func (r *ApproverRepository) ListActive(ctx context.Context) ([]approverDomain.Approver, error) {
	var out []approverDomain.Approver
	res := r.db.WithContext(ctx).
		Where("is_active = ? AND role <> ?", true, approverDomain.RoleDeveloper).
		Order("approval_order ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApproverRepository) GetByEmail(ctx context.Context, email string) (*approverDomain.Approver, error) {
	var out approverDomain.Approver
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}
