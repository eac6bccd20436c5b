package domain

import (
	"time"
)

// Attachment describes one file attached to an inbound message.
type Attachment struct {
	AttachmentID string `json:"attachment_id"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	LocalPath    string `json:"local_path,omitempty"`
}

// NormalizedMessage is the provider-independent view of a fetched message.
// Both provider adapters produce this shape; nothing downstream ever sees a
// raw Gmail or IMAP payload.
type NormalizedMessage struct {
	MessageID   string       `json:"message_id"`
	ThreadID    string       `json:"thread_id,omitempty"`
	Sender      string       `json:"sender"`
	Recipients  []string     `json:"recipients,omitempty"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	ReceivedAt  time.Time    `json:"received_at"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Email is one stored inbound message. Created on the first successful fetch
// of a not-yet-seen provider message id; only the Processed flag is ever
// mutated afterwards.
type Email struct {
	ID          string       `json:"id,omitempty"`
	MessageID   string       `json:"message_id"`
	ThreadID    string       `json:"thread_id,omitempty"`
	Sender      string       `json:"sender"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	ReceivedAt  time.Time    `json:"received_at"`
	Processed   bool         `json:"processed"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Provider    string       `json:"provider"`
}

// Label is a provider-side folder or label.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SendReceipt is returned by a provider adapter after a successful send.
type SendReceipt struct {
	MessageID string `json:"message_id"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// ProviderStatus is the result of a provider health probe.
type ProviderStatus struct {
	Provider  string    `json:"provider"`
	Healthy   bool      `json:"healthy"`
	Detail    string    `json:"detail,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// FetchQuery carries the parameters of a provider fetch call.
type FetchQuery struct {
	Query            string
	MaxResults       int
	Folder           string
	IncludeSpamTrash bool
	// OnlyRecent ANDs an implicit received-after filter (now - RecentWindow)
	// into the provider query.
	OnlyRecent bool
}

// RecentWindow is the lookback applied when FetchQuery.OnlyRecent is set.
const RecentWindow = 7 * 24 * time.Hour

// OutgoingMail is the payload handed to a provider adapter's Send.
type OutgoingMail struct {
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	Attachments []string // local file paths
}

// SentEmailRecord is the audit row written once a proposal has actually been
// delivered. Immutable after creation.
type SentEmailRecord struct {
	ID         string    `json:"id,omitempty"`
	ProposalID string    `json:"proposal_id"`
	Recipients []string  `json:"recipients"`
	Cc         []string  `json:"cc,omitempty"`
	Bcc        []string  `json:"bcc,omitempty"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Attachment string    `json:"attachment,omitempty"`
	MessageID  string    `json:"message_id"`
	ThreadID   string    `json:"thread_id,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// MessageMetadata is derived, I/O-free data about one inbound message.
type MessageMetadata struct {
	SenderName      string         `json:"sender_name"`
	SenderAddress   string         `json:"sender_address"`
	Keywords        []string       `json:"keywords,omitempty"`
	AttachmentTypes map[string]int `json:"attachment_types,omitempty"`
	ContentLength   int            `json:"content_length"`
}
