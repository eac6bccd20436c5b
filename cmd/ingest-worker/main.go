package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/client"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/config"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/service"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/handler"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/infrastructure/amqp"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/mail"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogger(cfg.Log)

	amqpClient, err := amqp.NewClient(cfg.AMQP.URL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

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

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	consumer := handler.NewIngestConsumer(orchestrator, validator.New(), cfg.Ingest.Concurrency, cfg.Ingest.Concurrency*2)
	consumer.Start(workerCtx)

	amqpConsumer := amqp.NewConsumer(amqpClient, consumer)
	go func() {
		if err := amqpConsumer.Consume(workerCtx, domain.IngestionQueue); err != nil {
			log.Fatalf("Failed to consume ingestion queue: %v", err)
		}
	}()

	// Periodic sweep alongside on-demand requests.
	go func() {
		ticker := time.NewTicker(cfg.Ingest.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				sweep(workerCtx, orchestrator, cfg.Ingest)
			}
		}
	}()

	log.Info("Ingestion worker started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down ingestion worker...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	consumer.Stop(shutdownCtx)
	workerCancel()

	if err := dedup.Flush(); err != nil {
		log.Errorf("Error flushing dedup cache: %v", err)
	}
}

func sweep(ctx context.Context, orchestrator port.Orchestrator, cfg config.IngestConfig) {
	ids, err := orchestrator.IngestEmails(ctx, cfg.Query, cfg.MaxResults)
	if err != nil {
		log.WithError(err).Error("Periodic ingestion sweep failed")
		return
	}
	proposalIDs, err := orchestrator.ProcessNewEmails(ctx)
	if err != nil {
		log.WithError(err).Error("Periodic email processing failed")
		return
	}
	log.WithFields(log.Fields{
		"ingested":  len(ids),
		"proposals": len(proposalIDs),
	}).Info("Periodic sweep complete")
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
