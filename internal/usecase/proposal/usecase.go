package proposal

import (
	"context"
	"errors"
	"time"

	domainApproval "campus-approvals/internal/domain/approval"
	"campus-approvals/internal/domain/proposal"
	"campus-approvals/internal/domain/uow"
	"campus-approvals/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo proposal.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r proposal.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateProposalInput struct {
	Title          string
	Description    string
	Kind           string
	SubmitterName  string
	SubmitterEmail string
	EventDate      *time.Time
}

type ProposalDTO struct {
	ProposalID     string     `json:"proposal_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Kind           string     `json:"kind"`
	SubmitterName  string     `json:"submitter_name"`
	SubmitterEmail string     `json:"submitter_email"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Create inserts the proposal and fans out one pending approval per
// active approver, all in one transaction. The fan-out is a snapshot:
// later registry changes never touch existing proposals.
func (u *Usecase) Create(ctx context.Context, in CreateProposalInput) (*ProposalDTO, error) {
	if in.Title == "" || in.SubmitterName == "" || in.SubmitterEmail == "" {
		return nil, errors.New("invalid input")
	}
	kind := proposal.Kind(in.Kind)
	if kind != proposal.KindEvent && kind != proposal.KindClubFormation {
		return nil, errors.New("invalid proposal kind")
	}

	p := &proposal.Proposal{
		ProposalID:      id.NewID32(),
		Title:           in.Title,
		Description:     in.Description,
		Kind:            kind,
		SubmitterName:   in.SubmitterName,
		SubmitterEmail:  in.SubmitterEmail,
		EventDate:       in.EventDate,
		Status:          proposal.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admins, err := r.Approvers.ListActive(ctx)
		if err != nil {
			return err
		}
		if len(admins) == 0 {
			return proposal.ErrNoActiveApprovers
		}
		if err := r.Proposals.Create(ctx, p); err != nil {
			return err
		}
		batch := make([]*domainApproval.Approval, 0, len(admins))
		for i := range admins {
			batch = append(batch, &domainApproval.Approval{
				ProposalID: p.ID,
				AdminEmail: admins[i].Email,
				Status:     domainApproval.StatusPending,
			})
		}
		return r.Approvals.CreateBatch(ctx, batch)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*ProposalDTO, error) {
	p, err := u.repo.GetByProposalID(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, proposal.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]ProposalDTO, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProposalDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}

// ForceStatus is the explicit admin override of the derived status cache.
// The next recorded decision recomputes and overwrites it.
func (u *Usecase) ForceStatus(ctx context.Context, proposalID string, status string) (*ProposalDTO, error) {
	st := proposal.Status(status)
	if !proposal.ValidStatus(st) {
		return nil, proposal.ErrInvalidStatus
	}
	var dto *ProposalDTO
	err := u.uow.WithinProposalTx(ctx, proposalID, func(r uow.Repos, p *proposal.Proposal) error {
		p.Status = st
		p.StatusUpdatedAt = time.Now().UTC()
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, proposal.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func toDTO(p *proposal.Proposal) *ProposalDTO {
	return &ProposalDTO{
		ProposalID:     p.ProposalID,
		Title:          p.Title,
		Description:    p.Description,
		Kind:           string(p.Kind),
		SubmitterName:  p.SubmitterName,
		SubmitterEmail: p.SubmitterEmail,
		EventDate:      p.EventDate,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
	}
}
