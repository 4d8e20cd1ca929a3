package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const brokerHistoryColumns = `id, lead_id, broker_id, order_id, assigned_by, injection_status, domain, created_at, updated_at`

// AppendBrokerHistoryParams represents parameters for appending a broker history entry
type AppendBrokerHistoryParams struct {
	LeadID          uuid.UUID
	BrokerID        *uuid.UUID
	OrderID         uuid.UUID
	AssignedBy      *uuid.UUID
	InjectionStatus string
	Domain          *string
}

const sqlAppendBrokerHistory = `
INSERT INTO lead_broker_history (lead_id, broker_id, order_id, assigned_by, injection_status, domain)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + brokerHistoryColumns + `
`

// AppendBrokerHistory appends one entry to a lead's broker history
func (s *Store) AppendBrokerHistory(ctx context.Context, params AppendBrokerHistoryParams) (BrokerHistoryEntry, error) {
	var entry BrokerHistoryEntry
	err := s.db.GetContext(ctx, &entry, sqlAppendBrokerHistory,
		params.LeadID,
		params.BrokerID,
		params.OrderID,
		params.AssignedBy,
		params.InjectionStatus,
		params.Domain)
	if err != nil {
		return BrokerHistoryEntry{}, fmt.Errorf("failed to append broker history: %w", err)
	}
	return entry, nil
}

const sqlUpdateBrokerHistoryStatus = `
UPDATE lead_broker_history
SET injection_status = $2,
	updated_at = NOW()
WHERE id = $1
`

// UpdateBrokerHistoryStatus transitions the status of one history entry.
// Entries are never deleted; transitions supersede the previous state.
func (s *Store) UpdateBrokerHistoryStatus(ctx context.Context, entryID uuid.UUID, status string) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateBrokerHistoryStatus, entryID, status)
	if err != nil {
		return fmt.Errorf("failed to update broker history status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check broker history update: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlAttachBrokerToHistory = `
UPDATE lead_broker_history
SET broker_id = $2,
	domain = $3,
	updated_at = NOW()
WHERE id = $1
`

// AttachBrokerToHistory sets the resolved broker and domain on an entry
func (s *Store) AttachBrokerToHistory(ctx context.Context, entryID, brokerID uuid.UUID, domain string) error {
	_, err := s.db.ExecContext(ctx, sqlAttachBrokerToHistory, entryID, brokerID, domain)
	if err != nil {
		return fmt.Errorf("failed to attach broker to history: %w", err)
	}
	return nil
}

const sqlGetCurrentBrokerHistory = `
SELECT ` + brokerHistoryColumns + `
FROM lead_broker_history
WHERE lead_id = $1 AND order_id = $2
ORDER BY created_at DESC, id DESC
LIMIT 1
`

// GetCurrentBrokerHistory resolves the most recent history entry for a
// lead within an order. This is the projection over the append-only log.
func (s *Store) GetCurrentBrokerHistory(ctx context.Context, leadID, orderID uuid.UUID) (BrokerHistoryEntry, error) {
	var entry BrokerHistoryEntry
	err := s.db.GetContext(ctx, &entry, sqlGetCurrentBrokerHistory, leadID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BrokerHistoryEntry{}, ErrNotFound
		}
		return BrokerHistoryEntry{}, fmt.Errorf("failed to get current broker history: %w", err)
	}
	return entry, nil
}

const sqlHasSuccessfulInjection = `
SELECT EXISTS (
	SELECT 1 FROM lead_broker_history
	WHERE lead_id = $1 AND order_id = $2 AND injection_status = $3
)
`

// HasSuccessfulInjection reports whether a lead already injected
// successfully within an order
func (s *Store) HasSuccessfulInjection(ctx context.Context, leadID, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasSuccessfulInjection, leadID, orderID, InjectionStatusSuccessful)
	if err != nil {
		return false, fmt.Errorf("failed to check successful injection: %w", err)
	}
	return exists, nil
}

const sqlListBrokerIDsUsedByLead = `
SELECT DISTINCT broker_id
FROM lead_broker_history
WHERE lead_id = $1 AND broker_id IS NOT NULL
`

// ListBrokerIDsUsedByLead returns every broker a lead has been routed to.
// A lead may never be routed to the same broker twice.
func (s *Store) ListBrokerIDsUsedByLead(ctx context.Context, leadID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlListBrokerIDsUsedByLead, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brokers used by lead: %w", err)
	}
	return ids, nil
}

const sqlListBrokerHistoryByOrder = `
SELECT ` + brokerHistoryColumns + `
FROM lead_broker_history
WHERE order_id = $1
ORDER BY created_at ASC, id ASC
`

// ListBrokerHistoryByOrder returns every history entry written for an order
func (s *Store) ListBrokerHistoryByOrder(ctx context.Context, orderID uuid.UUID) ([]BrokerHistoryEntry, error) {
	var entries []BrokerHistoryEntry
	err := s.db.SelectContext(ctx, &entries, sqlListBrokerHistoryByOrder, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list broker history by order: %w", err)
	}
	return entries, nil
}

// AppendNetworkHistoryParams represents parameters for appending a network history entry
type AppendNetworkHistoryParams struct {
	LeadID     uuid.UUID
	NetworkID  uuid.UUID
	OrderID    *uuid.UUID
	AssignedBy *uuid.UUID
}

const sqlAppendNetworkHistory = `
INSERT INTO lead_network_history (lead_id, network_id, order_id, assigned_by)
VALUES ($1, $2, $3, $4)
RETURNING id, lead_id, network_id, order_id, assigned_by, created_at
`

// AppendNetworkHistory appends one entry to a lead's client-network history
func (s *Store) AppendNetworkHistory(ctx context.Context, params AppendNetworkHistoryParams) (NetworkHistoryEntry, error) {
	var entry NetworkHistoryEntry
	err := s.db.GetContext(ctx, &entry, sqlAppendNetworkHistory,
		params.LeadID,
		params.NetworkID,
		params.OrderID,
		params.AssignedBy)
	if err != nil {
		return NetworkHistoryEntry{}, fmt.Errorf("failed to append network history: %w", err)
	}
	return entry, nil
}
