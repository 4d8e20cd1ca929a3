package progress

import (
	"context"
	"sync"
	"time"

	"leadflow-server/internal/observability"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Snapshot is one progress update for an order's injection run
type Snapshot struct {
	OrderID                 uuid.UUID `json:"order_id"`
	InjectionStatus         string    `json:"injection_status"`
	TotalToInject           int       `json:"total_to_inject"`
	SuccessfulInjections    int       `json:"successful_injections"`
	FailedInjections        int       `json:"failed_injections"`
	BrokersAssigned         int       `json:"brokers_assigned"`
	BrokerAssignmentPending bool      `json:"broker_assignment_pending"`
	CurrentLeadID           *string   `json:"current_lead_id,omitempty"`
	Timestamp               time.Time `json:"timestamp"`
}

// Hub fans injection progress out to websocket subscribers grouped by
// order. A slow subscriber is dropped rather than allowed to stall the
// pipeline.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*subscriber]struct{}
	logger      *observability.Logger
}

type subscriber struct {
	conn *websocket.Conn
	send chan Snapshot
}

func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[*subscriber]struct{}),
		logger:      logger,
	}
}

// Subscribe attaches a websocket connection to an order's progress feed
// and blocks until the connection drops or the context ends.
func (h *Hub) Subscribe(ctx context.Context, orderID uuid.UUID, conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan Snapshot, 16),
	}

	h.mu.Lock()
	if h.subscribers[orderID] == nil {
		h.subscribers[orderID] = make(map[*subscriber]struct{})
	}
	h.subscribers[orderID][sub] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.subscribers[orderID], sub)
		if len(h.subscribers[orderID]) == 0 {
			delete(h.subscribers, orderID)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// Reader goroutine drains control frames and signals disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case snapshot := <-sub.send:
			if err := conn.WriteJSON(snapshot); err != nil {
				h.logger.Warn(ctx, "failed to write progress snapshot, dropping subscriber")
				return
			}
		}
	}
}

// Publish pushes a snapshot to every subscriber of the order. Full
// buffers are skipped; the next snapshot carries the cumulative counters
// anyway.
func (h *Hub) Publish(orderID uuid.UUID, snapshot Snapshot) {
	snapshot.OrderID = orderID
	snapshot.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[orderID] {
		select {
		case sub.send <- snapshot:
		default:
		}
	}
}

// SubscriberCount reports how many connections follow an order
func (h *Hub) SubscriberCount(orderID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[orderID])
}
