package port

import (
	"context"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// SendOptions carries the optional overrides of a send operation. A nil
// field falls back to the proposal's own data (recipient defaults to the
// sender of the originating email).
type SendOptions struct {
	Recipient string
	Cc        []string
	Bcc       []string
	Subject   string
	Message   string
}

// EmailWithProposal pairs a stored email with its proposal, if any.
type EmailWithProposal struct {
	Email    *domain.Email    `json:"email"`
	Proposal *domain.Proposal `json:"proposal,omitempty"`
}

// Orchestrator is the facade the boundary layer invokes; it exclusively owns
// proposal state transitions.
type Orchestrator interface {
	IngestEmails(ctx context.Context, query string, maxResults int) ([]string, error)
	AnalyzeEmail(ctx context.Context, emailID string) (*domain.Proposal, error)
	ProcessNewEmails(ctx context.Context) ([]string, error)
	ImproveProposal(ctx context.Context, proposalID, feedback string) (*domain.Proposal, error)
	ReviewProposal(ctx context.Context, proposalID string) (*ContentReview, error)
	SubmitForReview(ctx context.Context, proposalID string) (*domain.Proposal, error)
	ApproveProposal(ctx context.Context, proposalID, approverID, comments string) (*domain.Proposal, error)
	RejectProposal(ctx context.Context, proposalID, approverID, comments string) (*domain.Proposal, error)
	SendProposal(ctx context.Context, proposalID string, opts SendOptions) (*domain.SentEmailRecord, error)
	GetEmailWithProposal(ctx context.Context, emailID string) (*EmailWithProposal, error)
}
