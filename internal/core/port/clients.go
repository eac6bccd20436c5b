package port

import (
	"context"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// Extractor turns raw email text into structured project requirements.
type Extractor interface {
	Extract(ctx context.Context, emailBody string) (*domain.ExtractedRequirements, error)
}

// ContentReview is the outcome of a generator review pass.
type ContentReview struct {
	Score       float64  `json:"score"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Generator produces, revises and reviews proposal content.
type Generator interface {
	Generate(ctx context.Context, req domain.ExtractedRequirements) (string, error)
	Improve(ctx context.Context, feedback, currentContent string) (string, error)
	Review(ctx context.Context, content string) (*ContentReview, error)
}

// Renderer converts proposal content into a deliverable document.
type Renderer interface {
	RenderToDocument(ctx context.Context, content, outputPath string) (string, error)
}

// Notifier publishes workflow outcome events. Background jobs report only
// through these events and logs, never back to the original caller.
type Notifier interface {
	NotifyEmailIngested(ctx context.Context, msg *domain.EmailIngestedMessage) error
	NotifyProposalAnalyzed(ctx context.Context, msg *domain.ProposalAnalyzedMessage) error
	NotifyProposalSent(ctx context.Context, msg *domain.ProposalSentMessage) error
	NotifyDeliveryFailed(ctx context.Context, msg *domain.DeliveryFailedMessage) error
}
