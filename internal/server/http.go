package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/client"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/handler"
)

type HTTPServer struct {
	echo         *echo.Echo
	publisher    client.Publisher
	provider     port.MailProvider
	orchestrator port.Orchestrator
}

type IngestRequest struct {
	Query      string `json:"query,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type IngestResponse struct {
	Message   string    `json:"message"`
	RequestID uuid.UUID `json:"request_id"`
}

func NewHTTPServer(
	publisher client.Publisher,
	provider port.MailProvider,
	orchestrator port.Orchestrator,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo:         e,
		publisher:    publisher,
		provider:     provider,
		orchestrator: orchestrator,
	}

	// Initialize handlers
	proposalHandler := handler.NewProposalHTTPHandler(orchestrator)

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/api/v1/emails/ingest", server.requestIngest)
	e.POST("/api/v1/emails/process", proposalHandler.ProcessNewEmails)
	e.GET("/api/v1/emails/:id", proposalHandler.GetEmailWithProposal)
	e.POST("/api/v1/emails/:id/analyze", proposalHandler.AnalyzeEmail)
	e.POST("/api/v1/proposals/:id/improve", proposalHandler.Improve)
	e.GET("/api/v1/proposals/:id/review", proposalHandler.Review)
	e.POST("/api/v1/proposals/:id/submit", proposalHandler.SubmitForReview)
	e.POST("/api/v1/proposals/:id/approve", proposalHandler.Approve)
	e.POST("/api/v1/proposals/:id/reject", proposalHandler.Reject)
	e.POST("/api/v1/proposals/:id/send", proposalHandler.Send)

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	status := s.provider.Health(c.Request().Context())
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":   "ok",
		"service":  "proposals",
		"provider": status,
	})
}

// requestIngest publishes an ingestion request for the background workers.
func (s *HTTPServer) requestIngest(c echo.Context) error {
	var req IngestRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request payload",
		})
	}

	msg := domain.IngestRequestedMessage{
		RequestID:   uuid.New(),
		Query:       req.Query,
		MaxResults:  req.MaxResults,
		RequestedAt: time.Now(),
	}
	if err := s.publisher.Publish(c.Request().Context(), domain.ProposalExchange, domain.RoutingKeyIngestRequested, msg); err != nil {
		log.WithError(err).Error("Failed to publish ingestion request")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "Failed to queue ingestion request",
		})
	}

	return c.JSON(http.StatusAccepted, IngestResponse{
		Message:   "Ingestion requested",
		RequestID: msg.RequestID,
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
