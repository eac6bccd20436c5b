package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/client"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/config"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/service"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/infrastructure/amqp"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/mail"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/server"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogger(cfg.Log)

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQP.URL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

	// Set up topology (exchanges, queues, bindings)
	if err := amqp.SetupTopology(amqpClient); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, cfg.Database.Host, strconv.Itoa(cfg.Database.Port),
		cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	emailStore := storage.NewEmailStore(db)
	proposalStore := storage.NewProposalStore(db)
	sentStore := storage.NewSentEmailStore(db)

	dedup, err := mail.NewFileDedupCache(cfg.Mail.DedupPath, cfg.Mail.FlushBatch)
	if err != nil {
		log.Fatalf("Failed to load dedup cache: %v", err)
	}
	provider, err := buildProvider(ctx, cfg.Mail, dedup)
	if err != nil {
		log.Fatalf("Failed to create mail provider: %v", err)
	}

	aiClient := client.NewAIClient(client.AIConfig{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Timeout: cfg.AI.Timeout,
	})
	renderer := client.NewRendererClient(client.RendererConfig{
		BaseURL: cfg.Renderer.BaseURL,
		Timeout: cfg.Renderer.Timeout,
	})

	orchestrator := service.NewProposalService(
		emailStore, proposalStore, sentStore,
		provider, aiClient, aiClient, renderer, notifier,
		service.Config{
			ResetStatusOnReanalyze: cfg.Workflow.ResetStatusOnReanalyze,
			DocumentDir:            cfg.Renderer.DocumentDir,
		},
	)

	httpServer := server.NewHTTPServer(publisher, provider, orchestrator)

	go func() {
		if err := httpServer.Start(cfg.Server.Addr()); err != nil {
			log.Infof("HTTP server stopped: %v", err)
		}
	}()

	log.Info("Proposal service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down proposal service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
	if err := dedup.Flush(); err != nil {
		log.Errorf("Error flushing dedup cache: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func buildProvider(ctx context.Context, cfg config.MailConfig, dedup port.DedupCache) (port.MailProvider, error) {
	processor := mail.NewProcessor(cfg.AttachmentDir)

	switch cfg.Provider {
	case "imap":
		return mail.NewIMAPProvider(mail.IMAPConfig{
			IMAPHost:   cfg.IMAP.Host,
			IMAPPort:   strconv.Itoa(cfg.IMAP.Port),
			SMTPHost:   cfg.IMAP.SMTPHost,
			SMTPPort:   strconv.Itoa(cfg.IMAP.SMTPPort),
			Username:   cfg.IMAP.Username,
			Password:   cfg.IMAP.Password,
			TLS:        cfg.IMAP.UseTLS,
			Sender:     cfg.IMAP.Sender,
			SenderName: cfg.IMAP.SenderName,
		}, dedup, processor), nil
	default:
		return mail.NewGmailProvider(ctx, mail.GmailConfig{
			ClientID:     cfg.Gmail.ClientID,
			ClientSecret: cfg.Gmail.ClientSecret,
			RefreshToken: cfg.Gmail.RefreshToken,
			Sender:       cfg.Gmail.Sender,
			SenderName:   cfg.Gmail.SenderName,
		}, dedup, processor)
	}
}
