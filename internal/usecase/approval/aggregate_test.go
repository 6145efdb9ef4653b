package approval

import (
	"testing"

	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/approver"
	"campus-approvals/internal/domain/proposal"
)

func mkApprovals(statuses ...domainApproval.Status) []domainApproval.Approval {
	out := make([]domainApproval.Approval, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, domainApproval.Approval{ID: uint64(i + 1), Status: s})
	}
	return out
}

func TestOverallStatus_Unanimity(t *testing.T) {
	const (
		pend = domainApproval.StatusPending
		appr = domainApproval.StatusApproved
		rej  = domainApproval.StatusRejected
	)

	tests := []struct {
		name string
		in   []domainApproval.Approval
		want proposal.Status
	}{
		{"all approved", mkApprovals(appr, appr, appr), proposal.StatusApproved},
		{"all rejected", mkApprovals(rej, rej, rej), proposal.StatusRejected},
		{"all pending", mkApprovals(pend, pend), proposal.StatusPending},
		{"mixed approved/pending", mkApprovals(appr, pend, appr), proposal.StatusPending},
		// A single rejection does NOT force overall rejected.
		{"one rejection rest approved", mkApprovals(rej, appr, appr), proposal.StatusPending},
		{"one rejection rest pending", mkApprovals(rej, pend, pend), proposal.StatusPending},
		{"rejected and approved mix", mkApprovals(rej, appr), proposal.StatusPending},
		{"single approved", mkApprovals(appr), proposal.StatusApproved},
		{"single rejected", mkApprovals(rej), proposal.StatusRejected},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OverallStatus(tc.in); got != tc.want {
				t.Fatalf("OverallStatus = %s, want %s", got, tc.want)
			}
		})
	}
}

// Documented non-obvious behavior: president rejects, treasurer approves,
// sa_office pending — the mix stays pending, not rejected.
func TestOverallStatus_MixedRejectionStaysPending(t *testing.T) {
	in := mkApprovals(
		domainApproval.StatusRejected, // president
		domainApproval.StatusApproved, // treasurer
		domainApproval.StatusPending,  // sa_office
	)
	if got := OverallStatus(in); got != proposal.StatusPending {
		t.Fatalf("OverallStatus = %s, want pending", got)
	}
}

func mkRows(statuses ...domainApproval.Status) []domainApproval.RecordWithApprover {
	out := make([]domainApproval.RecordWithApprover, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, domainApproval.RecordWithApprover{
			ID:        uint64(i + 1),
			AdminRole: approver.RolePresident,
			Status:    s,
		})
	}
	return out
}

func TestComputePublicState(t *testing.T) {
	const (
		pend = domainApproval.StatusPending
		appr = domainApproval.StatusApproved
		rej  = domainApproval.StatusRejected
	)

	tests := []struct {
		name string
		in   []domainApproval.RecordWithApprover
		want PublicState
	}{
		{"no rows", nil, PublicPending},
		{"all approved", mkRows(appr, appr), PublicFullyApproved},
		// Unlike OverallStatus, any rejection wins on the public page.
		{"single rejection wins", mkRows(rej, appr, pend), PublicRejected},
		{"in flight", mkRows(appr, pend), PublicUnderConsideration},
		{"all pending", mkRows(pend, pend), PublicUnderConsideration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputePublicState(tc.in); got != tc.want {
				t.Fatalf("ComputePublicState = %s, want %s", got, tc.want)
			}
		})
	}
}
