package client

import (
	"context"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// Publisher is the slice of the AMQP publisher the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPNotifier publishes workflow outcome events on the proposal exchange.
type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{publisher: publisher}
}

func (n *AMQPNotifier) NotifyEmailIngested(ctx context.Context, msg *domain.EmailIngestedMessage) error {
	return n.publisher.Publish(ctx, domain.ProposalExchange, domain.RoutingKeyEmailIngested, msg)
}

func (n *AMQPNotifier) NotifyProposalAnalyzed(ctx context.Context, msg *domain.ProposalAnalyzedMessage) error {
	return n.publisher.Publish(ctx, domain.ProposalExchange, domain.RoutingKeyAnalyzed, msg)
}

func (n *AMQPNotifier) NotifyProposalSent(ctx context.Context, msg *domain.ProposalSentMessage) error {
	return n.publisher.Publish(ctx, domain.ProposalExchange, domain.RoutingKeySent, msg)
}

func (n *AMQPNotifier) NotifyDeliveryFailed(ctx context.Context, msg *domain.DeliveryFailedMessage) error {
	return n.publisher.Publish(ctx, domain.ProposalExchange, domain.RoutingKeyDeliveryFailed, msg)
}
