package approval

import (
	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
)

const (
	reasonNotAuthorized    = "Not an authorized admin"
	reasonAlreadyProcessed = "Already processed"
	reasonCoreFirst        = "Core student council members must approve first"
	reasonAllOthersFirst   = "All other members must approve first"
)

// Eligibility is the canApprove result shown to the UI; Reason is set
// only when Allowed is false.
type Eligibility struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// gate names the prerequisite roles that must ALL be approved before the
// gated role may act. Roles without an entry act as soon as their own
// record is pending.
type gate struct {
	requires []approver.Role
	reason   string
}

var gates = map[approver.Role]gate{
	approver.RoleSAOffice: {
		requires: []approver.Role{
			approver.RolePresident,
			approver.RoleVicePresident,
			approver.RoleTreasurer,
		},
		reason: reasonCoreFirst,
	},
	approver.RoleFinalApprover: {
		requires: []approver.Role{
			approver.RolePresident,
			approver.RoleVicePresident,
			approver.RoleTreasurer,
			approver.RoleSAOffice,
			approver.RoleFacultyAdvisor,
		},
		reason: reasonAllOthersFirst,
	},
}

// evaluate runs the gating policy for adm against the proposal's current
// approval set (rows are already joined with roles, developers excluded).
func evaluate(adm *approver.Approver, rows []domainApproval.RecordWithApprover) Eligibility {
	if !adm.Eligible() {
		return Eligibility{Allowed: false, Reason: reasonNotAuthorized}
	}

	var own *domainApproval.RecordWithApprover
	for i := range rows {
		if rows[i].AdminEmail == adm.Email {
			own = &rows[i]
			break
		}
	}
	// No row means this approver was not part of the proposal's fan-out
	// (added to the registry later); they have nothing to decide on.
	if own == nil {
		return Eligibility{Allowed: false, Reason: reasonNotAuthorized}
	}
	if own.Status != domainApproval.StatusPending {
		return Eligibility{Allowed: false, Reason: reasonAlreadyProcessed}
	}

	g, gated := gates[adm.Role]
	if !gated {
		return Eligibility{Allowed: true}
	}

	// Every prerequisite record must be approved; zero matching records
	// also fails the gate (vacuous truth is not good enough here).
	matched := 0
	for i := range rows {
		if !roleIn(rows[i].AdminRole, g.requires) {
			continue
		}
		matched++
		if rows[i].Status != domainApproval.StatusApproved {
			return Eligibility{Allowed: false, Reason: g.reason}
		}
	}
	if matched == 0 {
		return Eligibility{Allowed: false, Reason: g.reason}
	}
	return Eligibility{Allowed: true}
}

func roleIn(r approver.Role, set []approver.Role) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

// eligibilityError maps a denied Eligibility to the domain error taxonomy.
func eligibilityError(e Eligibility) error {
	switch e.Reason {
	case reasonNotAuthorized:
		return domainApproval.ErrNotAuthorized
	case reasonAlreadyProcessed:
		return domainApproval.ErrAlreadyProcessed
	default:
		return &domainApproval.GatingError{Reason: e.Reason}
	}
}
