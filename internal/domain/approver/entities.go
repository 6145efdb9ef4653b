package approver

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("approver not found")

type Role string

const (
	RolePresident      Role = "president"
	RoleVicePresident  Role = "vice_president"
	RoleTreasurer      Role = "treasurer"
	RoleSAOffice       Role = "sa_office"
	RoleFacultyAdvisor Role = "faculty_advisor"
	RoleFinalApprover  Role = "final_approver"
	// Developers get dashboard access but never participate in approvals.
	RoleDeveloper Role = "developer"
)

// Table: approvers
type Approver struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Email         string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_approvers_email"`
	Name          string    `gorm:"column:name;size:255;not null"`
	Role          Role      `gorm:"column:role;type:enum('president','vice_president','treasurer','sa_office','faculty_advisor','final_approver','developer');not null"`
	ApprovalOrder int       `gorm:"column:approval_order;not null;index"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Approver) TableName() string { return "approvers" }

// Eligible reports whether this approver may ever take part in approvals.
func (a *Approver) Eligible() bool {
	return a != nil && a.IsActive && a.Role != RoleDeveloper
}
