package main

import (
	"log"

	"gorm.io/gorm/clause"

	"campus-approvals/internal/config"
	"campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	"campus-approvals/internal/domain/proposal"
	"campus-approvals/internal/infrastructure/db"
)

var registry = []approver.Approver{
	{Email: "president@campus.edu", Name: "Student Council President", Role: approver.RolePresident, ApprovalOrder: 1, IsActive: true},
	{Email: "vicepresident@campus.edu", Name: "Student Council Vice President", Role: approver.RoleVicePresident, ApprovalOrder: 2, IsActive: true},
	{Email: "treasurer@campus.edu", Name: "Student Council Treasurer", Role: approver.RoleTreasurer, ApprovalOrder: 3, IsActive: true},
	{Email: "sa-office@campus.edu", Name: "Student Affairs Office", Role: approver.RoleSAOffice, ApprovalOrder: 4, IsActive: true},
	{Email: "advisor@campus.edu", Name: "Faculty Advisor", Role: approver.RoleFacultyAdvisor, ApprovalOrder: 5, IsActive: true},
	{Email: "dean@campus.edu", Name: "Dean of Students", Role: approver.RoleFinalApprover, ApprovalOrder: 6, IsActive: true},
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(&approver.Approver{}, &proposal.Proposal{}, &approval.Approval{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Upsert on email so reruns refresh names/roles without duplicating.
	res := gdb.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "approval_order", "is_active"}),
	}).Create(&registry)
	if res.Error != nil {
		log.Fatalf("seed approvers: %v", res.Error)
	}
	log.Printf("seeded %d approvers", len(registry))
}
