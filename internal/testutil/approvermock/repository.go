package approvermock

import (
	"context"

	domain "campus-approvals/internal/domain/approver"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	ListActiveFn func(ctx context.Context) ([]domain.Approver, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Approver, error)
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Approver, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Approver, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}
