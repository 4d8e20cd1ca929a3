package events

import (
	"context"
	"time"

	"leadflow-server/internal/clients/kafka"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
)

// Publisher emits order and injection lifecycle events to Kafka. Every
// publish is fire-and-forget: a broker outage is logged, never surfaced
// to the pipeline. A nil producer disables publishing entirely.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

func (p *Publisher) publish(ctx context.Context, event kafka.EventMessage) {
	if p == nil || p.kafkaProducer == nil {
		return
	}
	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish event", err)
	}
}

// DispatchOrderCreated publishes an order.created event
func (p *Publisher) DispatchOrderCreated(ctx context.Context, order store.Order) {
	p.publish(ctx, kafka.EventMessage{
		ID:      uuid.New().String(),
		Type:    "order.created",
		OrderID: order.ID.String(),
		Data: map[string]interface{}{
			"status":            order.Status,
			"requested_ftd":     order.RequestedFTD,
			"requested_filler":  order.RequestedFiller,
			"requested_cold":    order.RequestedCold,
			"requested_live":    order.RequestedLive,
			"fulfilled_ftd":     order.FulfilledFTD,
			"fulfilled_filler":  order.FulfilledFiller,
			"fulfilled_cold":    order.FulfilledCold,
			"fulfilled_live":    order.FulfilledLive,
			"injection_enabled": order.InjectionEnabled,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DispatchOrderCancelled publishes an order.cancelled event
func (p *Publisher) DispatchOrderCancelled(ctx context.Context, order store.Order) {
	p.publish(ctx, kafka.EventMessage{
		ID:      uuid.New().String(),
		Type:    "order.cancelled",
		OrderID: order.ID.String(),
		Data: map[string]interface{}{
			"status": order.Status,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DispatchInjectionStarted publishes an injection.started event
func (p *Publisher) DispatchInjectionStarted(ctx context.Context, order store.Order) {
	p.publish(ctx, kafka.EventMessage{
		ID:      uuid.New().String(),
		Type:    "injection.started",
		OrderID: order.ID.String(),
		Data: map[string]interface{}{
			"mode":            order.InjectionMode,
			"total_to_inject": order.TotalToInject,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DispatchLeadInjected publishes an injection.lead.completed event
func (p *Publisher) DispatchLeadInjected(ctx context.Context, orderID, leadID uuid.UUID, success bool, domain string) {
	leadIDStr := leadID.String()
	p.publish(ctx, kafka.EventMessage{
		ID:      uuid.New().String(),
		Type:    "injection.lead.completed",
		OrderID: orderID.String(),
		LeadID:  &leadIDStr,
		Data: map[string]interface{}{
			"success": success,
			"domain":  domain,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// DispatchInjectionCompleted publishes an injection.completed event
func (p *Publisher) DispatchInjectionCompleted(ctx context.Context, order store.Order) {
	p.publish(ctx, kafka.EventMessage{
		ID:      uuid.New().String(),
		Type:    "injection.completed",
		OrderID: order.ID.String(),
		Data: map[string]interface{}{
			"successful_injections": order.SuccessfulInjections,
			"failed_injections":     order.FailedInjections,
			"brokers_assigned":      order.BrokersAssigned,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
