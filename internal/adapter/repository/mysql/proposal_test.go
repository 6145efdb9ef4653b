package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	proposalDomain "campus-approvals/internal/domain/proposal"

	"gorm.io/gorm"
)

func makeProposal(publicID, title string) *proposalDomain.Proposal {
	return &proposalDomain.Proposal{
		ProposalID:      publicID,
		Title:           title,
		Description:     "desc",
		Kind:            proposalDomain.KindEvent,
		SubmitterName:   "Jo Student",
		SubmitterEmail:  "jo@campus.edu",
		Status:          proposalDomain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestProposal_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()

	in := makeProposal("aaaa0000aaaa0000aaaa0000aaaa0000", "Spring Concert")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if in.ID == 0 {
		t.Fatal("numeric PK not assigned")
	}

	got, err := repo.GetByProposalID(ctx, in.ProposalID)
	if err != nil {
		t.Fatalf("GetByProposalID: %v", err)
	}
	if got.Title != "Spring Concert" || got.Status != proposalDomain.StatusPending {
		t.Fatalf("unexpected proposal: %+v", got)
	}

	if _, err := repo.GetByProposalID(ctx, "ffff0000ffff0000ffff0000ffff0000"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestProposal_SaveUpdatesStatusCache(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()

	in := makeProposal("bbbb0000bbbb0000bbbb0000bbbb0000", "Chess Club")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	in.Status = proposalDomain.StatusApproved
	in.StatusUpdatedAt = time.Now().UTC()
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByProposalID(ctx, in.ProposalID)
	if err != nil {
		t.Fatalf("GetByProposalID: %v", err)
	}
	if got.Status != proposalDomain.StatusApproved {
		t.Fatalf("status = %s, want approved", got.Status)
	}
}

func TestProposal_List(t *testing.T) {
	db := openTestDB(t)
	repo := NewProposalRepository(db)
	ctx := context.Background()

	for i, pid := range []string{
		"cccc0000cccc0000cccc0000cccc0001",
		"cccc0000cccc0000cccc0000cccc0002",
	} {
		p := makeProposal(pid, "P")
		p.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d proposals, want 2", len(got))
	}
	// newest first
	if got[0].ProposalID != "cccc0000cccc0000cccc0000cccc0002" {
		t.Fatalf("ordering wrong: %+v", got)
	}
}
