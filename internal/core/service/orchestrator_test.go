package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/mocks"
)

type ProposalServiceSuite struct {
	suite.Suite
	emailStore    *mocks.EmailStore
	proposalStore *mocks.ProposalStore
	sentStore     *mocks.SentEmailStore
	provider      *mocks.MailProvider
	extractor     *mocks.Extractor
	generator     *mocks.Generator
	renderer      *mocks.Renderer
	notifier      *mocks.Notifier
	service       *ProposalService
}

func TestProposalService(t *testing.T) {
	suite.Run(t, new(ProposalServiceSuite))
}

func (suite *ProposalServiceSuite) TearDownTest() {
	suite.emailStore.AssertExpectations(suite.T())
	suite.proposalStore.AssertExpectations(suite.T())
	suite.sentStore.AssertExpectations(suite.T())
	suite.provider.AssertExpectations(suite.T())
	suite.extractor.AssertExpectations(suite.T())
	suite.generator.AssertExpectations(suite.T())
	suite.renderer.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *ProposalServiceSuite) SetupTest() {
	suite.emailStore = &mocks.EmailStore{}
	suite.proposalStore = &mocks.ProposalStore{}
	suite.sentStore = &mocks.SentEmailStore{}
	suite.provider = &mocks.MailProvider{}
	suite.extractor = &mocks.Extractor{}
	suite.generator = &mocks.Generator{}
	suite.renderer = &mocks.Renderer{}
	suite.notifier = &mocks.Notifier{}
	suite.service = NewProposalService(
		suite.emailStore, suite.proposalStore, suite.sentStore,
		suite.provider, suite.extractor, suite.generator, suite.renderer, suite.notifier,
		Config{DocumentDir: suite.T().TempDir()},
	)
}

func (suite *ProposalServiceSuite) storedEmail() *domain.Email {
	return &domain.Email{
		ID:         "email-1",
		MessageID:  "msg-1",
		Sender:     "Alice Client <alice@client.example>",
		Subject:    "Website rebuild",
		Body:       "We need a new site with a shop and a blog.",
		ReceivedAt: time.Now().Add(-time.Hour),
		Provider:   "gmail",
	}
}

func (suite *ProposalServiceSuite) requirements() *domain.ExtractedRequirements {
	return &domain.ExtractedRequirements{
		ProjectName: "Website rebuild",
		Description: "E-commerce site with blog",
		Features:    []string{"shop", "blog"},
	}
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_FirstAnalysisCreatesDraft() {
	ctx := context.Background()
	email := suite.storedEmail()
	req := suite.requirements()

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.extractor.EXPECT().Extract(ctx, email.Body).Return(req, nil)
	suite.generator.EXPECT().Generate(ctx, *req).Return("Dear Alice, here is our proposal.", nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(nil, domain.ErrNotFound)
	suite.proposalStore.EXPECT().Create(ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return p.Status == domain.StatusDraft &&
			len(p.Versions) == 1 &&
			p.Versions[0].Version == 1 &&
			p.EmailID == "email-1" &&
			p.ClientName == "Alice Client"
	})).Return("prop-1", nil)
	suite.emailStore.EXPECT().MarkProcessed(ctx, "email-1").Return(nil)
	suite.notifier.EXPECT().NotifyProposalAnalyzed(ctx, mock.MatchedBy(func(m *domain.ProposalAnalyzedMessage) bool {
		return m.ProposalID == "prop-1" && m.Version == 1
	})).Return(nil)

	proposal, err := suite.service.AnalyzeEmail(ctx, "email-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "prop-1", proposal.ID)
	assert.Equal(suite.T(), domain.StatusDraft, proposal.Status)
	assert.NoError(suite.T(), proposal.Validate())
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_ReanalysisAppendsVersion() {
	ctx := context.Background()
	email := suite.storedEmail()
	email.Processed = true
	req := suite.requirements()
	existing := domain.NewProposal("email-1", *req, "v1 content", "Alice Client", email.Subject, time.Now().Add(-time.Minute))
	existing.ID = "prop-1"
	existing.Status = domain.StatusUnderReview

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.extractor.EXPECT().Extract(ctx, email.Body).Return(req, nil)
	suite.generator.EXPECT().Generate(ctx, *req).Return("v2 content", nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(existing, nil)
	suite.proposalStore.EXPECT().Update(ctx, mock.MatchedBy(func(p *domain.Proposal) bool {
		return len(p.Versions) == 2 && p.Versions[1].Version == 2 && p.Versions[1].Content == "v2 content"
	})).Return(nil)
	suite.notifier.EXPECT().NotifyProposalAnalyzed(ctx, mock.Anything).Return(nil)

	proposal, err := suite.service.AnalyzeEmail(ctx, "email-1")

	assert.NoError(suite.T(), err)
	// Re-analysis leaves an in-flight review untouched by default.
	assert.Equal(suite.T(), domain.StatusUnderReview, proposal.Status)
	assert.Equal(suite.T(), "v1 content", proposal.Versions[0].Content)
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_ResetStatusFlag() {
	ctx := context.Background()
	email := suite.storedEmail()
	email.Processed = true
	req := suite.requirements()
	existing := domain.NewProposal("email-1", *req, "v1 content", "Alice Client", email.Subject, time.Now().Add(-time.Minute))
	existing.ID = "prop-1"
	existing.Status = domain.StatusUnderReview

	suite.service.cfg.ResetStatusOnReanalyze = true

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.extractor.EXPECT().Extract(ctx, email.Body).Return(req, nil)
	suite.generator.EXPECT().Generate(ctx, *req).Return("v2 content", nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(existing, nil)
	suite.proposalStore.EXPECT().Update(ctx, mock.Anything).Return(nil)
	suite.notifier.EXPECT().NotifyProposalAnalyzed(ctx, mock.Anything).Return(nil)

	proposal, err := suite.service.AnalyzeEmail(ctx, "email-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusDraft, proposal.Status)
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_ExtractionFailureMutatesNothing() {
	ctx := context.Background()
	email := suite.storedEmail()

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.extractor.EXPECT().Extract(ctx, email.Body).Return(nil, fmt.Errorf("%w: empty result", domain.ErrGeneration))

	proposal, err := suite.service.AnalyzeEmail(ctx, "email-1")

	assert.Nil(suite.T(), proposal)
	assert.ErrorIs(suite.T(), err, domain.ErrGeneration)
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_EmailNotFound() {
	ctx := context.Background()

	suite.emailStore.EXPECT().FindByID(ctx, "missing").Return(nil, domain.ErrNotFound)

	_, err := suite.service.AnalyzeEmail(ctx, "missing")

	assert.ErrorIs(suite.T(), err, domain.ErrNotFound)
}

func (suite *ProposalServiceSuite) TestAnalyzeEmail_VersionSequenceStaysContiguous() {
	ctx := context.Background()
	email := suite.storedEmail()
	email.Processed = true
	req := suite.requirements()
	proposal := domain.NewProposal("email-1", *req, "v1", "Alice Client", email.Subject, time.Now())
	proposal.ID = "prop-1"

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.extractor.EXPECT().Extract(ctx, email.Body).Return(req, nil)
	suite.generator.EXPECT().Generate(ctx, *req).Return("regenerated", nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(proposal, nil)
	suite.proposalStore.EXPECT().Update(ctx, mock.Anything).Return(nil)
	suite.notifier.EXPECT().NotifyProposalAnalyzed(ctx, mock.Anything).Return(nil)

	rng := rand.New(rand.NewSource(7))
	n := 1 + rng.Intn(50)
	for i := 0; i < n; i++ {
		_, err := suite.service.AnalyzeEmail(ctx, "email-1")
		assert.NoError(suite.T(), err)
	}

	assert.Len(suite.T(), proposal.Versions, n+1)
	assert.NoError(suite.T(), proposal.Validate())
	assert.Equal(suite.T(), n+1, proposal.LatestVersion().Version)
}

func (suite *ProposalServiceSuite) TestProcessNewEmails_FailureDoesNotAbortBatch() {
	ctx := context.Background()
	unprocessed := false
	good := *suite.storedEmail()
	bad := *suite.storedEmail()
	bad.ID = "email-2"
	bad.Body = "gibberish"
	req := suite.requirements()

	suite.emailStore.EXPECT().FindAll(ctx, port.EmailFilter{Processed: &unprocessed}).
		Return([]domain.Email{good, bad}, nil)

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(&good, nil)
	suite.extractor.EXPECT().Extract(ctx, good.Body).Return(req, nil)
	suite.generator.EXPECT().Generate(ctx, *req).Return("content", nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(nil, domain.ErrNotFound)
	suite.proposalStore.EXPECT().Create(ctx, mock.Anything).Return("prop-1", nil)
	suite.emailStore.EXPECT().MarkProcessed(ctx, "email-1").Return(nil)
	suite.notifier.EXPECT().NotifyProposalAnalyzed(ctx, mock.Anything).Return(nil)

	suite.emailStore.EXPECT().FindByID(ctx, "email-2").Return(&bad, nil)
	suite.extractor.EXPECT().Extract(ctx, bad.Body).Return(nil, fmt.Errorf("%w: no requirements found", domain.ErrGeneration))

	ids, err := suite.service.ProcessNewEmails(ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"prop-1"}, ids)
}

func (suite *ProposalServiceSuite) TestSubmitForReview() {
	ctx := context.Background()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)

	updated, err := suite.service.SubmitForReview(ctx, "prop-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusUnderReview, updated.Status)
}

func (suite *ProposalServiceSuite) TestApproveProposal() {
	ctx := context.Background()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusUnderReview

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)

	updated, err := suite.service.ApproveProposal(ctx, "prop-1", "reviewer-1", "looks good")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusApproved, updated.Status)
	assert.Len(suite.T(), updated.ApprovalHistory, 1)
	assert.Equal(suite.T(), domain.DecisionApproved, updated.ApprovalHistory[0].Decision)
	assert.Equal(suite.T(), "reviewer-1", updated.ApprovalHistory[0].ApproverID)
}

func (suite *ProposalServiceSuite) TestApproveProposal_RequiresUnderReview() {
	ctx := context.Background()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)

	_, err := suite.service.ApproveProposal(ctx, "prop-1", "reviewer-1", "")

	assert.ErrorIs(suite.T(), err, domain.ErrPrecondition)
	assert.Equal(suite.T(), domain.StatusDraft, proposal.Status)
	assert.Empty(suite.T(), proposal.ApprovalHistory)
}

func (suite *ProposalServiceSuite) TestRejectProposal() {
	ctx := context.Background()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusUnderReview

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)

	updated, err := suite.service.RejectProposal(ctx, "prop-1", "reviewer-1", "too expensive")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusRejected, updated.Status)
	assert.Equal(suite.T(), domain.DecisionRejected, updated.ApprovalHistory[0].Decision)
}

func (suite *ProposalServiceSuite) TestSendProposal_HappyPath() {
	ctx := context.Background()
	email := suite.storedEmail()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice Client", "Website", time.Now().Add(-time.Minute))
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusApproved

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.renderer.EXPECT().RenderToDocument(ctx, "content", mock.Anything).Return("/tmp/proposal_prop-1_v1.pdf", nil)
	suite.provider.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMail) bool {
		return len(m.To) == 1 && m.To[0] == "alice@client.example" &&
			len(m.Attachments) == 1
	})).Return(&domain.SendReceipt{MessageID: "sent-msg-1"}, nil)
	suite.sentStore.EXPECT().Create(ctx, mock.MatchedBy(func(r *domain.SentEmailRecord) bool {
		return r.ProposalID == "prop-1" && r.MessageID == "sent-msg-1"
	})).Return("sent-1", nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)
	suite.notifier.EXPECT().NotifyProposalSent(ctx, mock.Anything).Return(nil)

	record, err := suite.service.SendProposal(ctx, "prop-1", port.SendOptions{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sent-msg-1", record.MessageID)
	assert.Equal(suite.T(), domain.StatusSent, proposal.Status)
	assert.NotNil(suite.T(), proposal.SentAt)
	assert.False(suite.T(), proposal.SentAt.Before(proposal.CreatedAt))
}

func (suite *ProposalServiceSuite) TestSendProposal_DeliveryFailureKeepsStatus() {
	ctx := context.Background()
	email := suite.storedEmail()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice Client", "Website", time.Now())
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusApproved

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.renderer.EXPECT().RenderToDocument(ctx, "content", mock.Anything).Return("/tmp/doc.pdf", nil)
	suite.provider.EXPECT().Send(ctx, mock.Anything).Return(nil, fmt.Errorf("%w: smtp refused", domain.ErrProvider))
	suite.notifier.EXPECT().NotifyDeliveryFailed(ctx, mock.MatchedBy(func(m *domain.DeliveryFailedMessage) bool {
		return m.ProposalID == "prop-1"
	})).Return(nil)

	record, err := suite.service.SendProposal(ctx, "prop-1", port.SendOptions{})

	assert.Nil(suite.T(), record)
	assert.ErrorIs(suite.T(), err, domain.ErrProvider)
	assert.Equal(suite.T(), domain.StatusApproved, proposal.Status)
	assert.Nil(suite.T(), proposal.SentAt)
}

func (suite *ProposalServiceSuite) TestSendProposal_RequiresApprovedStatus() {
	ctx := context.Background()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)

	_, err := suite.service.SendProposal(ctx, "prop-1", port.SendOptions{})

	assert.ErrorIs(suite.T(), err, domain.ErrPrecondition)
}

func (suite *ProposalServiceSuite) TestSendProposal_RenderFailureIsPrecondition() {
	ctx := context.Background()
	email := suite.storedEmail()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusApproved

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.renderer.EXPECT().RenderToDocument(ctx, "content", mock.Anything).
		Return("", errors.New("renderer unavailable"))

	_, err := suite.service.SendProposal(ctx, "prop-1", port.SendOptions{})

	assert.ErrorIs(suite.T(), err, domain.ErrPrecondition)
	assert.Equal(suite.T(), domain.StatusApproved, proposal.Status)
}

func (suite *ProposalServiceSuite) TestSendProposal_ExplicitRecipientOverridesSender() {
	ctx := context.Background()
	email := suite.storedEmail()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusApproved

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.renderer.EXPECT().RenderToDocument(ctx, "content", mock.Anything).Return("/tmp/doc.pdf", nil)
	suite.provider.EXPECT().Send(ctx, mock.MatchedBy(func(m domain.OutgoingMail) bool {
		return m.To[0] == "procurement@client.example" && m.Subject == "Updated proposal"
	})).Return(&domain.SendReceipt{MessageID: "sent-msg-2"}, nil)
	suite.sentStore.EXPECT().Create(ctx, mock.Anything).Return("sent-2", nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)
	suite.notifier.EXPECT().NotifyProposalSent(ctx, mock.Anything).Return(nil)

	_, err := suite.service.SendProposal(ctx, "prop-1", port.SendOptions{
		Recipient: "procurement@client.example",
		Subject:   "Updated proposal",
	})

	assert.NoError(suite.T(), err)
}

func (suite *ProposalServiceSuite) TestGetEmailWithProposal() {
	ctx := context.Background()
	email := suite.storedEmail()
	proposal := domain.NewProposal("email-1", *suite.requirements(), "content", "Alice", "Website", time.Now())
	proposal.ID = "prop-1"

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(proposal, nil)

	result, err := suite.service.GetEmailWithProposal(ctx, "email-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), email, result.Email)
	assert.Equal(suite.T(), proposal, result.Proposal)
}

func (suite *ProposalServiceSuite) TestGetEmailWithProposal_NoProposalYet() {
	ctx := context.Background()
	email := suite.storedEmail()

	suite.emailStore.EXPECT().FindByID(ctx, "email-1").Return(email, nil)
	suite.proposalStore.EXPECT().FindByEmailID(ctx, "email-1").Return(nil, domain.ErrNotFound)

	result, err := suite.service.GetEmailWithProposal(ctx, "email-1")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.Proposal)
}

func (suite *ProposalServiceSuite) TestIngestEmails_SkipsAlreadyStored() {
	ctx := context.Background()
	q := domain.FetchQuery{Query: "is:unread", MaxResults: 10, OnlyRecent: true}
	msgs := []domain.NormalizedMessage{
		{MessageID: "msg-new", Sender: "new@client.example", Subject: "New", Body: "body", ReceivedAt: time.Now()},
		{MessageID: "msg-known", Sender: "known@client.example", Subject: "Known", Body: "body", ReceivedAt: time.Now()},
	}

	suite.provider.EXPECT().Fetch(ctx, q).Return(msgs, nil)
	suite.provider.EXPECT().Name().Return("gmail")
	suite.emailStore.EXPECT().FindByMessageID(ctx, "msg-new").Return(nil, domain.ErrNotFound)
	suite.emailStore.EXPECT().Create(ctx, mock.MatchedBy(func(e *domain.Email) bool {
		return e.MessageID == "msg-new" && !e.Processed && e.Provider == "gmail"
	})).Return("email-new", nil)
	suite.emailStore.EXPECT().FindByMessageID(ctx, "msg-known").Return(&domain.Email{ID: "email-known"}, nil)
	suite.notifier.EXPECT().NotifyEmailIngested(ctx, mock.MatchedBy(func(m *domain.EmailIngestedMessage) bool {
		return len(m.EmailIDs) == 1 && m.EmailIDs[0] == "email-new"
	})).Return(nil)

	ids, err := suite.service.IngestEmails(ctx, "is:unread", 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"email-new"}, ids)
}

func (suite *ProposalServiceSuite) TestImproveProposal_AppendsRevisedVersion() {
	ctx := context.Background()
	req := suite.requirements()
	proposal := domain.NewProposal("email-1", *req, "v1 content", "Alice Client", "Website rebuild", time.Now().Add(-time.Hour))
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusUnderReview

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil).Twice()
	suite.generator.EXPECT().Improve(ctx, "shorten the intro", "v1 content").Return("v2 tightened content", nil)
	suite.proposalStore.EXPECT().Update(ctx, proposal).Return(nil)

	result, err := suite.service.ImproveProposal(ctx, "prop-1", "shorten the intro")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Versions, 2)
	assert.Equal(suite.T(), 2, result.LatestVersion().Version)
	assert.Equal(suite.T(), "v2 tightened content", result.LatestVersion().Content)
	assert.Equal(suite.T(), domain.StatusUnderReview, result.Status)
	assert.NoError(suite.T(), result.Validate())
}

func (suite *ProposalServiceSuite) TestImproveProposal_SentIsFinal() {
	ctx := context.Background()
	req := suite.requirements()
	proposal := domain.NewProposal("email-1", *req, "v1 content", "Alice Client", "Website rebuild", time.Now().Add(-time.Hour))
	proposal.ID = "prop-1"
	proposal.Status = domain.StatusSent

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil).Twice()

	_, err := suite.service.ImproveProposal(ctx, "prop-1", "any feedback")

	assert.ErrorIs(suite.T(), err, domain.ErrPrecondition)
}

func (suite *ProposalServiceSuite) TestReviewProposal() {
	ctx := context.Background()
	req := suite.requirements()
	proposal := domain.NewProposal("email-1", *req, "v1 content", "Alice Client", "Website rebuild", time.Now().Add(-time.Hour))
	proposal.ID = "prop-1"
	review := &port.ContentReview{Score: 8, Strengths: []string{"clear scope"}}

	suite.proposalStore.EXPECT().FindByID(ctx, "prop-1").Return(proposal, nil)
	suite.generator.EXPECT().Review(ctx, "v1 content").Return(review, nil)

	result, err := suite.service.ReviewProposal(ctx, "prop-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), review, result)
}
