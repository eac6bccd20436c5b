package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProposalStartsAsDraftWithVersionOne(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{ProjectName: "App"}, "content", "Client", "Subject", now)

	assert.Equal(t, StatusDraft, p.Status)
	assert.Len(t, p.Versions, 1)
	assert.Equal(t, 1, p.Versions[0].Version)
	assert.Equal(t, "content", p.LatestVersion().Content)
	assert.Nil(t, p.SentAt)
	assert.NoError(t, p.Validate())
}

func TestAppendVersionNumbersStayContiguous(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)

	r := rand.New(rand.NewSource(42))
	n := 1 + r.Intn(50)
	for i := 0; i < n; i++ {
		v := p.AppendVersion(ExtractedRequirements{ProjectName: "P"}, "regenerated", "", now.Add(time.Duration(i)*time.Second))
		assert.Equal(t, i+2, v.Version)
	}

	assert.Len(t, p.Versions, n+1)
	assert.NoError(t, p.Validate())
	assert.Equal(t, n+1, p.LatestVersion().Version)
}

func TestAppendVersionReplacesExtractedData(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{ProjectName: "Old"}, "v1", "", "", now)

	p.AppendVersion(ExtractedRequirements{ProjectName: "New"}, "v2", "analyst", now)

	assert.Equal(t, "New", p.ExtractedData.ProjectName)
	assert.Equal(t, "v1", p.Versions[0].Content)
	assert.Equal(t, "analyst", p.Versions[1].CreatedBy)
}

func TestTransitionLegalPath(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)

	assert.NoError(t, p.Transition(StatusUnderReview, now))
	assert.NoError(t, p.Transition(StatusApproved, now))
	assert.NoError(t, p.Transition(StatusSent, now.Add(time.Minute)))
	assert.Equal(t, StatusSent, p.Status)
	assert.NotNil(t, p.SentAt)
	assert.NoError(t, p.Validate())
}

func TestTransitionIllegalMoves(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		from Status
		to   Status
	}{
		{"draft to approved", StatusDraft, StatusApproved},
		{"draft to sent", StatusDraft, StatusSent},
		{"under review to sent", StatusUnderReview, StatusSent},
		{"rejected is terminal", StatusRejected, StatusUnderReview},
		{"sent is terminal", StatusSent, StatusDraft},
		{"approved cannot go back", StatusApproved, StatusUnderReview},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)
			p.Status = tc.from

			err := p.Transition(tc.to, now)

			assert.ErrorIs(t, err, ErrPrecondition)
			assert.Equal(t, tc.from, p.Status)
		})
	}
}

func TestTransitionToSentStampsSentAt(t *testing.T) {
	created := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", created)
	p.Status = StatusApproved

	sentAt := created.Add(time.Hour)
	assert.NoError(t, p.Transition(StatusSent, sentAt))

	assert.Equal(t, sentAt, *p.SentAt)
	assert.False(t, p.SentAt.Before(p.CreatedAt))
}

func TestRecordDecisionAppendsHistory(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)

	p.RecordDecision("reviewer-1", DecisionRejected, "missing budget", now)
	p.RecordDecision("reviewer-2", DecisionApproved, "", now.Add(time.Minute))

	assert.Len(t, p.ApprovalHistory, 2)
	assert.Equal(t, DecisionRejected, p.ApprovalHistory[0].Decision)
	assert.Equal(t, "reviewer-2", p.ApprovalHistory[1].ApproverID)
}

func TestValidateDetectsBrokenSequence(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)
	p.Versions = append(p.Versions, ProposalVersion{Version: 3, Content: "gap", CreatedAt: now})

	assert.Error(t, p.Validate())
}

func TestValidateDetectsSentBeforeCreated(t *testing.T) {
	now := time.Now()
	p := NewProposal("email-1", ExtractedRequirements{}, "v1", "", "", now)
	earlier := now.Add(-time.Hour)
	p.SentAt = &earlier

	assert.Error(t, p.Validate())
}
