package approval

import (
	"errors"
	"time"

	"campus-approvals/internal/domain/approver"
)

var (
	ErrNotFound         = errors.New("approval not found")
	ErrNotAuthorized    = errors.New("not an authorized admin")
	ErrAlreadyProcessed = errors.New("approval already processed")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")
)

// GatingError carries the human-readable reason shown to the approver
// when a role-order precondition is not met.
type GatingError struct {
	Reason string
}

func (e *GatingError) Error() string { return e.Reason }

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Table: approvals — one row per (proposal, approver), fanned out at
// proposal creation. pending -> approved|rejected, terminal after that.
type Approval struct {
	ID         uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProposalID uint64  `gorm:"column:proposal_id;not null;uniqueIndex:ux_approvals_proposal_admin,priority:1"`
	AdminEmail string  `gorm:"column:admin_email;size:255;not null;uniqueIndex:ux_approvals_proposal_admin,priority:2"`
	Status     Status  `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'"`
	Comments   *string `gorm:"column:comments;type:text"`
	// Set on any terminal transition, rejections included.
	DecidedAt *time.Time `gorm:"column:decided_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Approval) TableName() string { return "approvals" }

// RecordWithApprover is an approval row joined with its approver's
// display fields, as the admin dashboard and the gating policy see it.
type RecordWithApprover struct {
	ID            uint64        `gorm:"column:id"`
	ProposalID    uint64        `gorm:"column:proposal_id"`
	AdminEmail    string        `gorm:"column:admin_email"`
	Status        Status        `gorm:"column:status"`
	Comments      *string       `gorm:"column:comments"`
	DecidedAt     *time.Time    `gorm:"column:decided_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at"`
	AdminName     string        `gorm:"column:admin_name"`
	AdminRole     approver.Role `gorm:"column:admin_role"`
	ApprovalOrder int           `gorm:"column:approval_order"`
}
