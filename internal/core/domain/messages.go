package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProposalExchange = "proposal"

	IngestionQueue = "proposal.ingestion"

	RoutingKeyIngestRequested = "proposal.ingest.requested"
	RoutingKeyEmailIngested   = "proposal.email.ingested"
	RoutingKeyAnalyzed        = "proposal.analyzed"
	RoutingKeySent            = "proposal.sent"
	RoutingKeyDeliveryFailed  = "proposal.delivery.failed"
)

// IngestRequestedMessage asks a worker to run one ingestion sweep.
type IngestRequestedMessage struct {
	RequestID   uuid.UUID `json:"request_id" validate:"required"`
	Query       string    `json:"query,omitempty"`
	MaxResults  int       `json:"max_results" validate:"gte=0,lte=500"`
	RequestedAt time.Time `json:"requested_at" validate:"required"`
}

// EmailIngestedMessage announces a batch of newly stored inbound emails.
type EmailIngestedMessage struct {
	BatchID    uuid.UUID `json:"batch_id" validate:"required"`
	EmailIDs   []string  `json:"email_ids" validate:"required,max=500,dive,required"`
	Provider   string    `json:"provider" validate:"required"`
	IngestedAt time.Time `json:"ingested_at" validate:"required"`
}

// ProposalAnalyzedMessage announces a created or re-analyzed proposal.
type ProposalAnalyzedMessage struct {
	ProposalID string    `json:"proposal_id" validate:"required"`
	EmailID    string    `json:"email_id" validate:"required"`
	Version    int       `json:"version" validate:"gte=1"`
	AnalyzedAt time.Time `json:"analyzed_at" validate:"required"`
}

// ProposalSentMessage announces a successful delivery.
type ProposalSentMessage struct {
	ProposalID string    `json:"proposal_id" validate:"required"`
	MessageID  string    `json:"message_id" validate:"required"`
	Recipients []string  `json:"recipients" validate:"required,dive,required"`
	SentAt     time.Time `json:"sent_at" validate:"required"`
}

// DeliveryFailedMessage reports a background delivery that did not complete.
type DeliveryFailedMessage struct {
	ProposalID string    `json:"proposal_id" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
	FailedAt   time.Time `json:"failed_at" validate:"required"`
}
