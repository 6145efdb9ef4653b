package proposal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("proposal not found")
	ErrInvalidStatus     = errors.New("invalid proposal status")
	ErrNoActiveApprovers = errors.New("no active approvers to assign")
)

type Status string

const (
	StatusPending            Status = "pending"
	StatusUnderConsideration Status = "under_consideration"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusUnderConsideration, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Kind string

const (
	KindEvent         Kind = "event"
	KindClubFormation Kind = "club_formation"
)

// Table: proposals
type Proposal struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ProposalID     string     `gorm:"column:proposal_id;type:char(32);not null;uniqueIndex:ux_proposals_proposal_id_active"`
	Title          string     `gorm:"column:title;size:255;not null"`
	Description    string     `gorm:"column:description;type:text"`
	Kind           Kind       `gorm:"column:kind;type:enum('event','club_formation');not null"`
	SubmitterName  string     `gorm:"column:submitter_name;size:255;not null"`
	SubmitterEmail string     `gorm:"column:submitter_email;size:255;not null;index"`
	EventDate      *time.Time `gorm:"column:event_date;type:date"`
	// Derived cache of the approval set; recomputed after every decision.
	// Only the explicit force-status path writes it independently.
	Status          Status         `gorm:"column:status;type:enum('pending','under_consideration','approved','rejected');default:'pending'"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Proposal) TableName() string { return "proposals" }
