package port

import (
	"context"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// EmailFilter narrows EmailStore listings.
type EmailFilter struct {
	Processed *bool
	Provider  string
	Skip      int
	Limit     int
}

// EmailStore is the document-store contract for inbound emails. IDs are
// opaque strings assigned by the store on Create.
type EmailStore interface {
	FindByID(ctx context.Context, id string) (*domain.Email, error)
	FindByMessageID(ctx context.Context, messageID string) (*domain.Email, error)
	FindAll(ctx context.Context, filter EmailFilter) ([]domain.Email, error)
	Create(ctx context.Context, email *domain.Email) (string, error)
	MarkProcessed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ProposalStore is the document-store contract for proposal aggregates.
// Update is revision-checked: a writer that read a stale revision is
// rejected instead of silently clobbering a concurrent append.
type ProposalStore interface {
	FindByID(ctx context.Context, id string) (*domain.Proposal, error)
	FindByEmailID(ctx context.Context, emailID string) (*domain.Proposal, error)
	FindAll(ctx context.Context, skip, limit int) ([]domain.Proposal, error)
	Create(ctx context.Context, proposal *domain.Proposal) (string, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	Delete(ctx context.Context, id string) error
}

// SentEmailStore records delivery audit rows; created exactly once per
// successful send, immutable thereafter.
type SentEmailStore interface {
	Create(ctx context.Context, record *domain.SentEmailRecord) (string, error)
	FindByProposalID(ctx context.Context, proposalID string) ([]domain.SentEmailRecord, error)
}
