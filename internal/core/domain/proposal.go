package domain

import (
	"fmt"
	"time"
)

// Status is the proposal workflow state.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusSent        Status = "SENT"
)

// Decision is one reviewer verdict recorded in the approval history.
type Decision string

const (
	DecisionApproved         Decision = "approved"
	DecisionRejected         Decision = "rejected"
	DecisionRequestedChanges Decision = "requested_changes"
)

// ExtractedRequirements is the structured output of requirement extraction.
// Immutable once produced; the latest extraction wins on re-analysis.
type ExtractedRequirements struct {
	ProjectName string   `json:"project_name"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Priority    string   `json:"priority,omitempty"`
}

// ProposalVersion is one immutable generated draft.
type ProposalVersion struct {
	Version      int       `json:"version"`
	Content      string    `json:"content"`
	DocumentPath string    `json:"document_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by,omitempty"`
}

// ApprovalHistoryEntry is an append-only audit record; never mutated or
// removed once appended.
type ApprovalHistoryEntry struct {
	ApproverID string    `json:"approver_id"`
	Decision   Decision  `json:"decision"`
	Comments   string    `json:"comments,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
}

// Proposal is the aggregate root: one versioned workflow document per inbound
// email (1:1 by EmailID). Version numbers are exactly 1..N, strictly
// ascending, no gaps. SentAt, when set, is never earlier than CreatedAt.
type Proposal struct {
	ID              string                 `json:"id,omitempty"`
	EmailID         string                 `json:"email_id"`
	ExtractedData   ExtractedRequirements  `json:"extracted_data"`
	Versions        []ProposalVersion      `json:"versions"`
	Status          Status                 `json:"status"`
	ApprovalHistory []ApprovalHistoryEntry `json:"approval_history,omitempty"`
	ClientName      string                 `json:"client_name,omitempty"`
	Subject         string                 `json:"subject,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	SentAt          *time.Time             `json:"sent_at,omitempty"`

	// Revision is the document revision read from the store; updates are
	// rejected when it is stale so a concurrent append cannot be
	// silently overwritten.
	Revision int64 `json:"-"`
}

// NewProposal builds a DRAFT proposal with a single version numbered 1.
func NewProposal(emailID string, req ExtractedRequirements, content, clientName, subject string, now time.Time) *Proposal {
	return &Proposal{
		EmailID:       emailID,
		ExtractedData: req,
		Versions: []ProposalVersion{{
			Version:   1,
			Content:   content,
			CreatedAt: now,
		}},
		Status:     StatusDraft,
		ClientName: clientName,
		Subject:    subject,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// LatestVersion returns the highest-numbered version, or nil when the
// proposal carries none (which violates the aggregate invariant).
func (p *Proposal) LatestVersion() *ProposalVersion {
	if len(p.Versions) == 0 {
		return nil
	}
	return &p.Versions[len(p.Versions)-1]
}

// AppendVersion adds a freshly generated draft numbered max(existing)+1 and
// replaces the extracted data with the latest extraction.
func (p *Proposal) AppendVersion(req ExtractedRequirements, content, author string, now time.Time) ProposalVersion {
	next := 1
	if v := p.LatestVersion(); v != nil {
		next = v.Version + 1
	}
	version := ProposalVersion{
		Version:   next,
		Content:   content,
		CreatedAt: now,
		CreatedBy: author,
	}
	p.Versions = append(p.Versions, version)
	p.ExtractedData = req
	p.UpdatedAt = now
	return version
}

// transitions lists the legal status moves.
var transitions = map[Status][]Status{
	StatusDraft:       {StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusSent},
	StatusRejected:    {},
	StatusSent:        {},
}

// CanTransition reports whether moving from the current status to next is
// legal under the workflow state machine.
func (p *Proposal) CanTransition(next Status) bool {
	for _, s := range transitions[p.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// Transition moves the proposal to next, or returns ErrPrecondition when the
// move is not legal from the current status.
func (p *Proposal) Transition(next Status, now time.Time) error {
	if !p.CanTransition(next) {
		return fmt.Errorf("%w: cannot move proposal from %s to %s", ErrPrecondition, p.Status, next)
	}
	p.Status = next
	p.UpdatedAt = now
	if next == StatusSent {
		p.SentAt = &now
	}
	return nil
}

// RecordDecision appends an approval history entry. History is append-only
// and never rewritten.
func (p *Proposal) RecordDecision(approverID string, decision Decision, comments string, now time.Time) {
	p.ApprovalHistory = append(p.ApprovalHistory, ApprovalHistoryEntry{
		ApproverID: approverID,
		Decision:   decision,
		Comments:   comments,
		DecidedAt:  now,
	})
	p.UpdatedAt = now
}

// Validate checks the aggregate invariants: version numbers are the exact
// sequence 1..N and SentAt never precedes CreatedAt.
func (p *Proposal) Validate() error {
	for i, v := range p.Versions {
		if v.Version != i+1 {
			return fmt.Errorf("version sequence broken at index %d: got %d, want %d", i, v.Version, i+1)
		}
	}
	if p.SentAt != nil && p.SentAt.Before(p.CreatedAt) {
		return fmt.Errorf("sent_at %s precedes created_at %s", p.SentAt, p.CreatedAt)
	}
	return nil
}
