package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

type ProposalHTTPHandler struct {
	orchestrator port.Orchestrator
}

func NewProposalHTTPHandler(orchestrator port.Orchestrator) *ProposalHTTPHandler {
	return &ProposalHTTPHandler{orchestrator: orchestrator}
}

type DecisionRequest struct {
	ApproverID string `json:"approver_id"`
	Comments   string `json:"comments,omitempty"`
}

type SendRequest struct {
	Recipient string   `json:"recipient,omitempty"`
	Cc        []string `json:"cc,omitempty"`
	Bcc       []string `json:"bcc,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Message   string   `json:"message,omitempty"`
}

type ImproveRequest struct {
	Feedback string `json:"feedback"`
}

type ProcessResponse struct {
	Message     string   `json:"message"`
	ProposalIDs []string `json:"proposal_ids"`
}

// AnalyzeEmail handles POST /api/v1/emails/:id/analyze.
func (h *ProposalHTTPHandler) AnalyzeEmail(c echo.Context) error {
	proposal, err := h.orchestrator.AnalyzeEmail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// ProcessNewEmails handles POST /api/v1/emails/process.
func (h *ProposalHTTPHandler) ProcessNewEmails(c echo.Context) error {
	ids, err := h.orchestrator.ProcessNewEmails(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ProcessResponse{
		Message:     "Batch processed",
		ProposalIDs: ids,
	})
}

// GetEmailWithProposal handles GET /api/v1/emails/:id.
func (h *ProposalHTTPHandler) GetEmailWithProposal(c echo.Context) error {
	result, err := h.orchestrator.GetEmailWithProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SubmitForReview handles POST /api/v1/proposals/:id/submit.
func (h *ProposalHTTPHandler) SubmitForReview(c echo.Context) error {
	proposal, err := h.orchestrator.SubmitForReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// Improve handles POST /api/v1/proposals/:id/improve.
func (h *ProposalHTTPHandler) Improve(c echo.Context) error {
	var req ImproveRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	proposal, err := h.orchestrator.ImproveProposal(c.Request().Context(), c.Param("id"), req.Feedback)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// Review handles GET /api/v1/proposals/:id/review.
func (h *ProposalHTTPHandler) Review(c echo.Context) error {
	review, err := h.orchestrator.ReviewProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Approve handles POST /api/v1/proposals/:id/approve.
func (h *ProposalHTTPHandler) Approve(c echo.Context) error {
	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	proposal, err := h.orchestrator.ApproveProposal(c.Request().Context(), c.Param("id"), req.ApproverID, req.Comments)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// Reject handles POST /api/v1/proposals/:id/reject.
func (h *ProposalHTTPHandler) Reject(c echo.Context) error {
	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	proposal, err := h.orchestrator.RejectProposal(c.Request().Context(), c.Param("id"), req.ApproverID, req.Comments)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// Send handles POST /api/v1/proposals/:id/send.
func (h *ProposalHTTPHandler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	record, err := h.orchestrator.SendProposal(c.Request().Context(), c.Param("id"), port.SendOptions{
		Recipient: req.Recipient,
		Cc:        req.Cc,
		Bcc:       req.Bcc,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// errorResponse maps domain error kinds to HTTP status codes.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPrecondition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrGeneration), errors.Is(err, domain.ErrProvider):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
