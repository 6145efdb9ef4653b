package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no enums/engine specifics) ---

type approverSQLite struct {
	ID            uint64 `gorm:"primaryKey;column:id;autoIncrement"`
	Email         string `gorm:"size:255;uniqueIndex;column:email"`
	Name          string `gorm:"size:255;column:name"`
	Role          string `gorm:"size:32;column:role"`
	ApprovalOrder int    `gorm:"column:approval_order"`
	IsActive      bool   `gorm:"column:is_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (approverSQLite) TableName() string { return "approvers" }

type proposalSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id;autoIncrement"`
	ProposalID      string         `gorm:"size:64;uniqueIndex;column:proposal_id"`
	Title           string         `gorm:"size:255;column:title"`
	Description     string         `gorm:"column:description"`
	Kind            string         `gorm:"size:32;column:kind"`
	SubmitterName   string         `gorm:"size:255;column:submitter_name"`
	SubmitterEmail  string         `gorm:"size:255;column:submitter_email"`
	EventDate       *time.Time     `gorm:"column:event_date"`
	Status          string         `gorm:"size:32;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (proposalSQLite) TableName() string { return "proposals" }

type approvalSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id;autoIncrement"`
	ProposalID uint64     `gorm:"column:proposal_id;uniqueIndex:ux_approvals_proposal_admin,priority:1"`
	AdminEmail string     `gorm:"size:255;column:admin_email;uniqueIndex:ux_approvals_proposal_admin,priority:2"`
	Status     string     `gorm:"size:32;column:status"`
	Comments   *string    `gorm:"column:comments"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (approvalSQLite) TableName() string { return "approvals" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe shadows, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&approverSQLite{}, &proposalSQLite{}, &approvalSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
