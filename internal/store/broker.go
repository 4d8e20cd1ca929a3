package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const brokerColumns = `id, network_id, name, domain, is_active, created_at, updated_at`

const sqlGetBrokerByDomain = `
SELECT ` + brokerColumns + `
FROM brokers
WHERE domain = $1
`

// GetBrokerByDomain retrieves a broker keyed by its redirect domain
func (s *Store) GetBrokerByDomain(ctx context.Context, domain string) (Broker, error) {
	var broker Broker
	err := s.db.GetContext(ctx, &broker, sqlGetBrokerByDomain, domain)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Broker{}, ErrNotFound
		}
		return Broker{}, fmt.Errorf("failed to get broker by domain: %w", err)
	}
	return broker, nil
}

const sqlGetBrokerByID = `
SELECT ` + brokerColumns + `
FROM brokers
WHERE id = $1
`

// GetBrokerByID retrieves a broker by ID
func (s *Store) GetBrokerByID(ctx context.Context, brokerID uuid.UUID) (Broker, error) {
	var broker Broker
	err := s.db.GetContext(ctx, &broker, sqlGetBrokerByID, brokerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Broker{}, ErrNotFound
		}
		return Broker{}, fmt.Errorf("failed to get broker by id: %w", err)
	}
	return broker, nil
}

// CreateBrokerParams represents parameters for creating a broker
type CreateBrokerParams struct {
	NetworkID *uuid.UUID
	Name      string
	Domain    string
}

const sqlCreateBroker = `
INSERT INTO brokers (network_id, name, domain, is_active)
VALUES ($1, $2, $3, TRUE)
ON CONFLICT (domain) DO UPDATE SET updated_at = NOW()
RETURNING ` + brokerColumns + `
`

// CreateBroker creates a broker for a discovered redirect domain. The upsert
// keeps discovery idempotent when two injections resolve the same domain.
func (s *Store) CreateBroker(ctx context.Context, params CreateBrokerParams) (Broker, error) {
	var broker Broker
	err := s.db.GetContext(ctx, &broker, sqlCreateBroker,
		params.NetworkID,
		params.Name,
		params.Domain)
	if err != nil {
		return Broker{}, fmt.Errorf("failed to create broker: %w", err)
	}
	return broker, nil
}

const sqlListActiveBrokersByNetwork = `
SELECT ` + brokerColumns + `
FROM brokers
WHERE network_id = $1 AND is_active = TRUE
ORDER BY created_at ASC
`

// ListActiveBrokersByNetwork returns a network's active brokers
func (s *Store) ListActiveBrokersByNetwork(ctx context.Context, networkID uuid.UUID) ([]Broker, error) {
	var brokers []Broker
	err := s.db.SelectContext(ctx, &brokers, sqlListActiveBrokersByNetwork, networkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active brokers by network: %w", err)
	}
	return brokers, nil
}

const sqlGetClientNetworkByID = `
SELECT id, name, is_active, created_at, updated_at
FROM client_networks
WHERE id = $1
`

// GetClientNetworkByID retrieves a client network by ID
func (s *Store) GetClientNetworkByID(ctx context.Context, networkID uuid.UUID) (ClientNetwork, error) {
	var network ClientNetwork
	err := s.db.GetContext(ctx, &network, sqlGetClientNetworkByID, networkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientNetwork{}, ErrNotFound
		}
		return ClientNetwork{}, fmt.Errorf("failed to get client network by id: %w", err)
	}
	return network, nil
}
