package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

type ingestJob struct {
	message domain.IngestRequestedMessage
}

// IngestConsumer drains ingestion requests from the queue into a bounded
// worker pool. Each job runs one fetch-and-analyze sweep.
type IngestConsumer struct {
	orchestrator port.Orchestrator
	validate     *validator.Validate
	jobQueue     chan ingestJob
	wg           sync.WaitGroup
	numWorkers   int
}

func NewIngestConsumer(
	orchestrator port.Orchestrator,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *IngestConsumer {
	return &IngestConsumer{
		orchestrator: orchestrator,
		validate:     validate,
		jobQueue:     make(chan ingestJob, queueSize),
		numWorkers:   numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *IngestConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d ingestion workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *IngestConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All ingestion workers stopped after drained.")
	case <-ctx.Done():
		log.Info("Ingestion worker shutdown timed out.")
	}
}

func (c *IngestConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[IngestWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[IngestWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			c.run(jobCtx, job.message)
			cancel()
		}
	}
}

func (c *IngestConsumer) run(ctx context.Context, msg domain.IngestRequestedMessage) {
	ids, err := c.orchestrator.IngestEmails(ctx, msg.Query, msg.MaxResults)
	if err != nil {
		log.WithError(err).WithField("requestID", msg.RequestID).Error("Ingestion sweep failed")
		return
	}

	proposalIDs, err := c.orchestrator.ProcessNewEmails(ctx)
	if err != nil {
		log.WithError(err).WithField("requestID", msg.RequestID).Error("Email processing failed")
		return
	}

	log.WithFields(log.Fields{
		"requestID": msg.RequestID,
		"ingested":  len(ids),
		"proposals": len(proposalIDs),
	}).Info("Ingestion sweep complete")
}

func (c *IngestConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyIngestRequested:
		err = c.handleIngestRequestedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *IngestConsumer) handleIngestRequestedMessage(_ context.Context, delivery *amqp.Delivery) error {
	var msg domain.IngestRequestedMessage

	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		log.Errorf("failed to unmarshal ingest request: %v", err)
		return err
	}

	if err := c.validate.Struct(msg); err != nil {
		log.Errorf("ingest request validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"requestID":   msg.RequestID,
		"query":       msg.Query,
		"maxResults":  msg.MaxResults,
		"requestedAt": msg.RequestedAt,
	}).Info("Received ingestion request")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- ingestJob{message: msg}

	return nil
}
