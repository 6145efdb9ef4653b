package approval

import (
	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/proposal"
)

// OverallStatus derives the proposal's cached status from its approval
// set. Unanimity rule: approved/rejected only when every record agrees;
// any split, including a lone rejection, stays pending. Callers guarantee
// a non-empty set (fan-out at creation).
func OverallStatus(as []domainApproval.Approval) proposal.Status {
	allApproved, allRejected := true, true
	for i := range as {
		if as[i].Status != domainApproval.StatusApproved {
			allApproved = false
		}
		if as[i].Status != domainApproval.StatusRejected {
			allRejected = false
		}
	}
	switch {
	case allApproved:
		return proposal.StatusApproved
	case allRejected:
		return proposal.StatusRejected
	default:
		return proposal.StatusPending
	}
}

// PublicState is the richer vocabulary used only by the public status
// page. Unlike OverallStatus, a single rejection wins here. The two
// aggregators are intentionally separate; see DESIGN.md.
type PublicState string

const (
	PublicFullyApproved      PublicState = "fully_approved"
	PublicRejected           PublicState = "rejected"
	PublicUnderConsideration PublicState = "under_consideration"
	PublicPending            PublicState = "pending"
)

func ComputePublicState(rows []domainApproval.RecordWithApprover) PublicState {
	if len(rows) == 0 {
		return PublicPending
	}
	allApproved := true
	for i := range rows {
		switch rows[i].Status {
		case domainApproval.StatusRejected:
			return PublicRejected
		case domainApproval.StatusApproved:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return PublicFullyApproved
	}
	return PublicUnderConsideration
}
