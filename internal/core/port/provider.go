package port

import (
	"context"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// MailProvider is the capability contract every mailbox adapter implements.
// Variants (Gmail, IMAP) are interchangeable; callers never branch on which
// one they hold.
//
// Fetch paginates internally until MaxResults normalized messages have been
// produced or the provider runs out of pages, skipping ids already present
// in the dedup cache. A message that fails to extract is logged and skipped;
// Fetch returns the partial, successfully normalized subset. On an
// authorization failure the adapter re-authenticates exactly once before
// giving up and returning an empty result for that call.
type MailProvider interface {
	Name() string
	Fetch(ctx context.Context, q domain.FetchQuery) ([]domain.NormalizedMessage, error)
	MarkAsRead(ctx context.Context, messageID string) error
	Send(ctx context.Context, mail domain.OutgoingMail) (*domain.SendReceipt, error)
	GetLabels(ctx context.Context) ([]domain.Label, error)
	ApplyLabel(ctx context.Context, messageID, labelName string) error
	Archive(ctx context.Context, messageID string) error
	GetAttachmentData(ctx context.Context, messageID, attachmentID string) ([]byte, error)
	Health(ctx context.Context) domain.ProviderStatus
}

// DedupCache is the persisted set of provider message ids already handled.
type DedupCache interface {
	Contains(id string) bool
	MarkProcessed(id string) error
	Flush() error
}
