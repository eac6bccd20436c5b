package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

// Config tunes workflow behavior.
type Config struct {
	// ResetStatusOnReanalyze moves a proposal back to DRAFT when a new
	// version is appended by re-analysis, forcing a fresh review cycle.
	// Off by default: appending a version leaves an in-flight review
	// untouched. Proposals already SENT are never reset.
	ResetStatusOnReanalyze bool

	// DocumentDir is where rendered proposal documents are written.
	DocumentDir string
}

// ProposalService is the orchestrating facade. It exclusively owns proposal
// state transitions; nothing else mutates a Proposal.
type ProposalService struct {
	emails    port.EmailStore
	proposals port.ProposalStore
	sent      port.SentEmailStore
	provider  port.MailProvider
	extractor port.Extractor
	generator port.Generator
	renderer  port.Renderer
	notifier  port.Notifier
	cfg       Config

	// Per-email-id locks serialize the read-modify-write on the version
	// list so concurrent analyze calls cannot both write version N+1.
	lockMu     sync.Mutex
	emailLocks map[string]*sync.Mutex

	now func() time.Time
}

func NewProposalService(
	emails port.EmailStore,
	proposals port.ProposalStore,
	sent port.SentEmailStore,
	provider port.MailProvider,
	extractor port.Extractor,
	generator port.Generator,
	renderer port.Renderer,
	notifier port.Notifier,
	cfg Config,
) *ProposalService {
	return &ProposalService{
		emails:     emails,
		proposals:  proposals,
		sent:       sent,
		provider:   provider,
		extractor:  extractor,
		generator:  generator,
		renderer:   renderer,
		notifier:   notifier,
		cfg:        cfg,
		emailLocks: make(map[string]*sync.Mutex),
		now:        time.Now,
	}
}

func (s *ProposalService) emailLock(emailID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	mu, ok := s.emailLocks[emailID]
	if !ok {
		mu = &sync.Mutex{}
		s.emailLocks[emailID] = mu
	}
	return mu
}

// IngestEmails fetches new messages from the mail provider and stores them
// as unprocessed Email records. Returns the stored email ids. Invoked from
// background workers; failures on one message never abort the batch.
func (s *ProposalService) IngestEmails(ctx context.Context, query string, maxResults int) ([]string, error) {
	msgs, err := s.provider.Fetch(ctx, domain.FetchQuery{
		Query:      query,
		MaxResults: maxResults,
		OnlyRecent: true,
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, msg := range msgs {
		if _, err := s.emails.FindByMessageID(ctx, msg.MessageID); err == nil {
			// Already stored on an earlier run that lost its dedup entry.
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.WithError(err).WithField("messageID", msg.MessageID).Error("Failed to check for existing email")
			continue
		}

		email := &domain.Email{
			MessageID:   msg.MessageID,
			ThreadID:    msg.ThreadID,
			Sender:      msg.Sender,
			Subject:     msg.Subject,
			Body:        msg.Body,
			ReceivedAt:  msg.ReceivedAt,
			Attachments: msg.Attachments,
			Provider:    s.provider.Name(),
		}
		id, err := s.emails.Create(ctx, email)
		if err != nil {
			log.WithError(err).WithField("messageID", msg.MessageID).Error("Failed to store email")
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		notifyErr := s.notifier.NotifyEmailIngested(ctx, &domain.EmailIngestedMessage{
			BatchID:    uuid.New(),
			EmailIDs:   ids,
			Provider:   s.provider.Name(),
			IngestedAt: s.now(),
		})
		if notifyErr != nil {
			log.WithError(notifyErr).Warn("Failed to publish email ingested event")
		}
	}

	return ids, nil
}

// AnalyzeEmail runs extraction and generation for one stored email. On the
// first call it creates a DRAFT proposal with version 1; on later calls it
// appends version max+1 and replaces the extracted data. If either external
// call yields no usable output the operation aborts and nothing is mutated.
func (s *ProposalService) AnalyzeEmail(ctx context.Context, emailID string) (*domain.Proposal, error) {
	mu := s.emailLock(emailID)
	mu.Lock()
	defer mu.Unlock()

	email, err := s.emails.FindByID(ctx, emailID)
	if err != nil {
		return nil, err
	}

	req, err := s.extractor.Extract(ctx, email.Body)
	if err != nil {
		return nil, err
	}

	content, err := s.generator.Generate(ctx, *req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	proposal, err := s.proposals.FindByEmailID(ctx, emailID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		proposal = domain.NewProposal(emailID, *req, content, clientNameFromSender(email.Sender), email.Subject, now)
		id, createErr := s.proposals.Create(ctx, proposal)
		if createErr != nil {
			return nil, createErr
		}
		proposal.ID = id
	case err != nil:
		return nil, err
	default:
		proposal.AppendVersion(*req, content, "", now)
		if s.cfg.ResetStatusOnReanalyze && proposal.Status != domain.StatusSent {
			proposal.Status = domain.StatusDraft
		}
		if err := s.proposals.Update(ctx, proposal); err != nil {
			return nil, err
		}
	}

	if !email.Processed {
		if err := s.emails.MarkProcessed(ctx, emailID); err != nil {
			log.WithError(err).WithField("emailID", emailID).Warn("Failed to mark email processed")
		}
	}

	latest := proposal.LatestVersion()
	notifyErr := s.notifier.NotifyProposalAnalyzed(ctx, &domain.ProposalAnalyzedMessage{
		ProposalID: proposal.ID,
		EmailID:    emailID,
		Version:    latest.Version,
		AnalyzedAt: now,
	})
	if notifyErr != nil {
		log.WithError(notifyErr).Warn("Failed to publish proposal analyzed event")
	}

	return proposal, nil
}

// ProcessNewEmails sweeps unprocessed emails and analyzes each. A failure on
// one email is logged and does not stop the batch. Returns the ids of the
// proposals created or updated.
func (s *ProposalService) ProcessNewEmails(ctx context.Context) ([]string, error) {
	unprocessed := false
	emails, err := s.emails.FindAll(ctx, port.EmailFilter{Processed: &unprocessed})
	if err != nil {
		return nil, err
	}

	var proposalIDs []string
	for _, email := range emails {
		proposal, err := s.AnalyzeEmail(ctx, email.ID)
		if err != nil {
			log.WithError(err).WithField("emailID", email.ID).Error("Failed to analyze email, continuing batch")
			continue
		}
		proposalIDs = append(proposalIDs, proposal.ID)
	}

	log.WithFields(log.Fields{
		"swept":     len(emails),
		"proposals": len(proposalIDs),
	}).Info("Processed new emails")

	return proposalIDs, nil
}

// ImproveProposal asks the generator to revise the latest version according
// to reviewer feedback and appends the result as a new version. The status is
// left alone; a SENT proposal can no longer be improved.
func (s *ProposalService) ImproveProposal(ctx context.Context, proposalID, feedback string) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	mu := s.emailLock(proposal.EmailID)
	mu.Lock()
	defer mu.Unlock()

	// Re-read under the lock so a concurrent analyze cannot be clobbered.
	proposal, err = s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status == domain.StatusSent {
		return nil, fmt.Errorf("%w: proposal %s is already SENT", domain.ErrPrecondition, proposalID)
	}
	latest := proposal.LatestVersion()
	if latest == nil {
		return nil, fmt.Errorf("%w: proposal %s has no versions", domain.ErrPrecondition, proposalID)
	}

	content, err := s.generator.Improve(ctx, feedback, latest.Content)
	if err != nil {
		return nil, err
	}

	proposal.AppendVersion(proposal.ExtractedData, content, "", s.now())
	if err := s.proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// ReviewProposal runs an automated quality review on the latest version.
// Read-only: no proposal state changes.
func (s *ProposalService) ReviewProposal(ctx context.Context, proposalID string) (*port.ContentReview, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	latest := proposal.LatestVersion()
	if latest == nil {
		return nil, fmt.Errorf("%w: proposal %s has no versions", domain.ErrPrecondition, proposalID)
	}
	return s.generator.Review(ctx, latest.Content)
}

// SubmitForReview moves a DRAFT proposal to UNDER_REVIEW.
func (s *ProposalService) SubmitForReview(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if err := proposal.Transition(domain.StatusUnderReview, s.now()); err != nil {
		return nil, err
	}
	if err := s.proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// ApproveProposal records an approval and moves the proposal to APPROVED.
// Fails with a precondition error when the proposal is not UNDER_REVIEW.
func (s *ProposalService) ApproveProposal(ctx context.Context, proposalID, approverID, comments string) (*domain.Proposal, error) {
	return s.decide(ctx, proposalID, approverID, comments, domain.DecisionApproved, domain.StatusApproved)
}

// RejectProposal records a rejection and moves the proposal to REJECTED.
func (s *ProposalService) RejectProposal(ctx context.Context, proposalID, approverID, comments string) (*domain.Proposal, error) {
	return s.decide(ctx, proposalID, approverID, comments, domain.DecisionRejected, domain.StatusRejected)
}

func (s *ProposalService) decide(ctx context.Context, proposalID, approverID, comments string, decision domain.Decision, next domain.Status) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := proposal.Transition(next, now); err != nil {
		return nil, err
	}
	proposal.RecordDecision(approverID, decision, comments, now)

	if err := s.proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// SendProposal delivers an APPROVED proposal. The rendered document for the
// latest version is required; when absent, rendering is attempted on demand
// and a rendering failure fails the send with no state change.
func (s *ProposalService) SendProposal(ctx context.Context, proposalID string, opts port.SendOptions) (*domain.SentEmailRecord, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !proposal.CanTransition(domain.StatusSent) {
		return nil, fmt.Errorf("%w: proposal %s is %s, only APPROVED proposals can be sent", domain.ErrPrecondition, proposalID, proposal.Status)
	}

	email, err := s.emails.FindByID(ctx, proposal.EmailID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	recipient := strings.TrimSpace(opts.Recipient)
	if recipient == "" && email != nil {
		recipient = senderAddress(email.Sender)
	}
	if recipient == "" {
		return nil, fmt.Errorf("%w: no recipient resolved for proposal %s", domain.ErrPrecondition, proposalID)
	}

	latest := proposal.LatestVersion()
	if latest == nil {
		return nil, fmt.Errorf("%w: proposal %s has no versions", domain.ErrPrecondition, proposalID)
	}

	docPath := latest.DocumentPath
	if !fileExists(docPath) {
		docPath, err = s.renderer.RenderToDocument(ctx, latest.Content,
			filepath.Join(s.cfg.DocumentDir, fmt.Sprintf("proposal_%s_v%d.pdf", proposalID, latest.Version)))
		if err != nil || docPath == "" {
			return nil, fmt.Errorf("%w: no rendered document for version %d and rendering failed: %v", domain.ErrPrecondition, latest.Version, err)
		}
		latest.DocumentPath = docPath
	}

	subject := opts.Subject
	if subject == "" {
		subject = defaultSubject(proposal)
	}
	body := opts.Message
	if body == "" {
		body = defaultBody(proposal)
	}

	receipt, err := s.provider.Send(ctx, domain.OutgoingMail{
		To:          []string{recipient},
		Cc:          opts.Cc,
		Bcc:         opts.Bcc,
		Subject:     subject,
		Body:        body,
		Attachments: []string{docPath},
	})
	if err != nil {
		notifyErr := s.notifier.NotifyDeliveryFailed(ctx, &domain.DeliveryFailedMessage{
			ProposalID: proposalID,
			Reason:     err.Error(),
			FailedAt:   s.now(),
		})
		if notifyErr != nil {
			log.WithError(notifyErr).Warn("Failed to publish delivery failed event")
		}
		return nil, err
	}

	now := s.now()
	record := &domain.SentEmailRecord{
		ProposalID: proposalID,
		Recipients: []string{recipient},
		Cc:         opts.Cc,
		Bcc:        opts.Bcc,
		Subject:    subject,
		Body:       body,
		Attachment: docPath,
		MessageID:  receipt.MessageID,
		ThreadID:   receipt.ThreadID,
		SentAt:     now,
	}
	if _, err := s.sent.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := proposal.Transition(domain.StatusSent, now); err != nil {
		return nil, err
	}
	if err := s.proposals.Update(ctx, proposal); err != nil {
		return nil, err
	}

	notifyErr := s.notifier.NotifyProposalSent(ctx, &domain.ProposalSentMessage{
		ProposalID: proposalID,
		MessageID:  receipt.MessageID,
		Recipients: record.Recipients,
		SentAt:     now,
	})
	if notifyErr != nil {
		log.WithError(notifyErr).Warn("Failed to publish proposal sent event")
	}

	return record, nil
}

// GetEmailWithProposal returns a stored email together with its proposal,
// when one exists.
func (s *ProposalService) GetEmailWithProposal(ctx context.Context, emailID string) (*port.EmailWithProposal, error) {
	email, err := s.emails.FindByID(ctx, emailID)
	if err != nil {
		return nil, err
	}

	proposal, err := s.proposals.FindByEmailID(ctx, emailID)
	if errors.Is(err, domain.ErrNotFound) {
		return &port.EmailWithProposal{Email: email}, nil
	}
	if err != nil {
		return nil, err
	}
	return &port.EmailWithProposal{Email: email, Proposal: proposal}, nil
}

func clientNameFromSender(sender string) string {
	if addr, err := mail.ParseAddress(sender); err == nil {
		if addr.Name != "" {
			return addr.Name
		}
		if at := strings.Index(addr.Address, "@"); at > 0 {
			return addr.Address[:at]
		}
	}
	return sender
}

func senderAddress(sender string) string {
	if addr, err := mail.ParseAddress(sender); err == nil {
		return addr.Address
	}
	return strings.TrimSpace(sender)
}

func defaultSubject(p *domain.Proposal) string {
	project := p.ExtractedData.ProjectName
	if project == "" {
		project = p.Subject
	}
	return "Proposal: " + project
}

func defaultBody(p *domain.Proposal) string {
	client := p.ClientName
	if client == "" {
		client = "there"
	}
	project := p.ExtractedData.ProjectName
	if project == "" {
		project = "your project"
	}
	return fmt.Sprintf(
		"Hello %s,\n\nPlease find attached our proposal for %s. We look forward to your feedback.\n\nBest regards",
		client, project,
	)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
