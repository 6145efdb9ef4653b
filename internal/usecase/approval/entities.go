package approval

import (
	"time"

	"campus-approvals/internal/domain/approver"
)

type RecordDecisionInput struct {
	ProposalID string
	// Target approval row and the authenticated caller; the two must match.
	AdminEmail  string
	CallerEmail string
	Decision    string // "approved" | "rejected"
	Comments    *string
}

type ApprovalDTO struct {
	ProposalID string     `json:"proposal_id"`
	AdminEmail string     `json:"admin_email"`
	Status     string     `json:"status"`
	Comments   *string    `json:"comments,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

// ApprovalRowDTO is one joined row of the admin dashboard view.
type ApprovalRowDTO struct {
	AdminEmail    string        `json:"admin_email"`
	AdminName     string        `json:"admin_name"`
	AdminRole     approver.Role `json:"admin_role"`
	ApprovalOrder int           `json:"approval_order"`
	Status        string        `json:"status"`
	Comments      *string       `json:"comments,omitempty"`
	DecidedAt     *time.Time    `json:"decided_at,omitempty"`
}

// PublicApprovalDTO deliberately omits admin emails.
type PublicApprovalDTO struct {
	AdminName string        `json:"admin_name"`
	AdminRole approver.Role `json:"admin_role"`
	Status    string        `json:"status"`
	Comments  *string       `json:"comments,omitempty"`
	DecidedAt *time.Time    `json:"decided_at,omitempty"`
}

type PublicStatusDTO struct {
	ProposalID  string              `json:"proposal_id"`
	Status      PublicState         `json:"status"`
	Approvals   []PublicApprovalDTO `json:"approvals"`
	LastUpdated time.Time           `json:"last_updated"`
}
