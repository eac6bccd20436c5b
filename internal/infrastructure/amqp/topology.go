package amqp

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// SetupTopology declares the proposal exchange, the ingestion queue and its
// binding. Safe to call from every binary at startup; declarations are
// idempotent.
func SetupTopology(client *Client) error {
	ch := client.Channel()

	err := ch.ExchangeDeclare(
		domain.ProposalExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %q: %w", domain.ProposalExchange, err)
	}

	if _, err := ch.QueueDeclare(
		domain.IngestionQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", domain.IngestionQueue, err)
	}

	if err := ch.QueueBind(
		domain.IngestionQueue,
		domain.RoutingKeyIngestRequested,
		domain.ProposalExchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to bind queue %q: %w", domain.IngestionQueue, err)
	}

	log.WithFields(log.Fields{
		"exchange": domain.ProposalExchange,
		"queue":    domain.IngestionQueue,
	}).Info("AMQP topology ready")
	return nil
}
