package approver

import "context"

type Repository interface {
	// Active, non-developer approvers ordered by approval_order (id breaks ties).
	ListActive(ctx context.Context) ([]Approver, error)

	// Lookup by unique email; developer/inactive rows still resolve here.
	GetByEmail(ctx context.Context, email string) (*Approver, error)
}
