package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const proxyColumns = `id, session_id, original_username, server, host, port, username, password, country, status, connection_count, max_connections, expires_at, is_expired, last_check_at, last_check_ok, failed_checks, assigned_lead_id, created_at, updated_at`

// CreateProxyParams represents parameters for persisting a provisioned proxy
type CreateProxyParams struct {
	SessionID        string
	OriginalUsername string
	Server           string
	Host             string
	Port             int
	Username         string
	Password         string
	Country          string
	MaxConnections   int
	ExpiresAt        time.Time
}

const sqlCreateProxy = `
INSERT INTO proxies (session_id, original_username, server, host, port, username, password, country, status, max_connections, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + proxyColumns + `
`

// CreateProxy persists a newly provisioned proxy in the testing state
func (s *Store) CreateProxy(ctx context.Context, params CreateProxyParams) (Proxy, error) {
	var proxy Proxy
	err := s.db.GetContext(ctx, &proxy, sqlCreateProxy,
		params.SessionID,
		params.OriginalUsername,
		params.Server,
		params.Host,
		params.Port,
		params.Username,
		params.Password,
		params.Country,
		ProxyStatusTesting,
		params.MaxConnections,
		params.ExpiresAt)
	if err != nil {
		return Proxy{}, fmt.Errorf("failed to create proxy: %w", err)
	}
	return proxy, nil
}

const sqlGetProxyByID = `
SELECT ` + proxyColumns + `
FROM proxies
WHERE id = $1
`

// GetProxyByID retrieves a proxy by ID
func (s *Store) GetProxyByID(ctx context.Context, proxyID uuid.UUID) (Proxy, error) {
	var proxy Proxy
	err := s.db.GetContext(ctx, &proxy, sqlGetProxyByID, proxyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Proxy{}, ErrNotFound
		}
		return Proxy{}, fmt.Errorf("failed to get proxy by id: %w", err)
	}
	return proxy, nil
}

const sqlUpdateProxyStatus = `
UPDATE proxies
SET status = $2,
	updated_at = NOW()
WHERE id = $1
`

// UpdateProxyStatus sets a proxy's lifecycle status
func (s *Store) UpdateProxyStatus(ctx context.Context, proxyID uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateProxyStatus, proxyID, status)
	if err != nil {
		return fmt.Errorf("failed to update proxy status: %w", err)
	}
	return nil
}

const sqlAssignLeadToProxy = `
UPDATE proxies
SET assigned_lead_id = $2,
	connection_count = connection_count + 1,
	updated_at = NOW()
WHERE id = $1 AND assigned_lead_id IS NULL AND status = $3
`

// AssignLeadToProxy claims the proxy's single assignment slot. The guard on
// assigned_lead_id makes concurrent claims safe: an occupied slot is left
// untouched and ErrNotFound is returned.
func (s *Store) AssignLeadToProxy(ctx context.Context, proxyID, leadID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlAssignLeadToProxy, proxyID, leadID, ProxyStatusActive)
	if err != nil {
		return fmt.Errorf("failed to assign lead to proxy: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check proxy assignment: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUnassignLeadFromProxy = `
UPDATE proxies
SET assigned_lead_id = NULL,
	updated_at = NOW()
WHERE id = $1
`

// UnassignLeadFromProxy frees the proxy's assignment slot
func (s *Store) UnassignLeadFromProxy(ctx context.Context, proxyID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlUnassignLeadFromProxy, proxyID)
	if err != nil {
		return fmt.Errorf("failed to unassign lead from proxy: %w", err)
	}
	return nil
}

const sqlSaveProxyHealth = `
UPDATE proxies
SET last_check_at = $2,
	last_check_ok = $3,
	failed_checks = $4,
	updated_at = NOW()
WHERE id = $1
`

// SaveProxyHealth records the outcome of a health probe
func (s *Store) SaveProxyHealth(ctx context.Context, proxyID uuid.UUID, checkedAt time.Time, ok bool, failedChecks int) error {
	_, err := s.db.ExecContext(ctx, sqlSaveProxyHealth, proxyID, checkedAt, ok, failedChecks)
	if err != nil {
		return fmt.Errorf("failed to save proxy health: %w", err)
	}
	return nil
}

const sqlListActiveProxies = `
SELECT ` + proxyColumns + `
FROM proxies
WHERE status = $1
ORDER BY created_at ASC
`

// ListActiveProxies returns every proxy in the active state
func (s *Store) ListActiveProxies(ctx context.Context) ([]Proxy, error) {
	var proxies []Proxy
	err := s.db.SelectContext(ctx, &proxies, sqlListActiveProxies, ProxyStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active proxies: %w", err)
	}
	return proxies, nil
}

const sqlListProxies = `
SELECT ` + proxyColumns + `
FROM proxies
ORDER BY created_at DESC
LIMIT $1
`

// ListProxies returns the most recently created proxies
func (s *Store) ListProxies(ctx context.Context, limit int) ([]Proxy, error) {
	var proxies []Proxy
	err := s.db.SelectContext(ctx, &proxies, sqlListProxies, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list proxies: %w", err)
	}
	return proxies, nil
}

const sqlDeleteExpiredIdleProxies = `
DELETE FROM proxies
WHERE expires_at <= $1 AND assigned_lead_id IS NULL
`

// DeleteExpiredIdleProxies removes proxies past their TTL with a free slot
// and returns how many were deleted.
func (s *Store) DeleteExpiredIdleProxies(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, sqlDeleteExpiredIdleProxies, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired idle proxies: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted proxies: %w", err)
	}
	return rows, nil
}

const sqlFlagExpiredBusyProxies = `
UPDATE proxies
SET status = $2,
	is_expired = TRUE,
	updated_at = NOW()
WHERE expires_at <= $1 AND assigned_lead_id IS NOT NULL AND status <> $2
`

// FlagExpiredBusyProxies marks expired proxies that still hold a lead.
// They keep their row for the audit trail and are deleted by a later sweep
// once the slot frees up.
func (s *Store) FlagExpiredBusyProxies(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, sqlFlagExpiredBusyProxies, now, ProxyStatusExpired)
	if err != nil {
		return 0, fmt.Errorf("failed to flag expired busy proxies: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count flagged proxies: %w", err)
	}
	return rows, nil
}

// CreateProxyAssignmentParams represents parameters for recording a lead's proxy use
type CreateProxyAssignmentParams struct {
	ProxyID uuid.UUID
	LeadID  uuid.UUID
	OrderID uuid.UUID
}

const proxyAssignmentColumns = `id, proxy_id, lead_id, order_id, status, completed_at, created_at, updated_at`

const sqlCreateProxyAssignment = `
INSERT INTO proxy_assignments (proxy_id, lead_id, order_id, status)
VALUES ($1, $2, $3, $4)
RETURNING ` + proxyAssignmentColumns + `
`

// CreateProxyAssignment opens an active assignment record. At most one
// active assignment may exist per lead and order; the partial unique index
// on (lead_id, order_id) WHERE status = 'active' enforces it.
func (s *Store) CreateProxyAssignment(ctx context.Context, params CreateProxyAssignmentParams) (ProxyAssignment, error) {
	var assignment ProxyAssignment
	err := s.db.GetContext(ctx, &assignment, sqlCreateProxyAssignment,
		params.ProxyID,
		params.LeadID,
		params.OrderID,
		ProxyAssignmentActive)
	if err != nil {
		return ProxyAssignment{}, fmt.Errorf("failed to create proxy assignment: %w", err)
	}
	return assignment, nil
}

const sqlUpdateProxyAssignmentStatus = `
UPDATE proxy_assignments
SET status = $2,
	completed_at = $3,
	updated_at = NOW()
WHERE id = $1
`

// UpdateProxyAssignmentStatus transitions an assignment to a terminal status
func (s *Store) UpdateProxyAssignmentStatus(ctx context.Context, assignmentID uuid.UUID, status string, completedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateProxyAssignmentStatus, assignmentID, status, completedAt)
	if err != nil {
		return fmt.Errorf("failed to update proxy assignment status: %w", err)
	}
	return nil
}

const sqlGetActiveProxyAssignment = `
SELECT ` + proxyAssignmentColumns + `
FROM proxy_assignments
WHERE lead_id = $1 AND order_id = $2 AND status = $3
`

// GetActiveProxyAssignment returns the lead's active assignment within an order
func (s *Store) GetActiveProxyAssignment(ctx context.Context, leadID, orderID uuid.UUID) (ProxyAssignment, error) {
	var assignment ProxyAssignment
	err := s.db.GetContext(ctx, &assignment, sqlGetActiveProxyAssignment, leadID, orderID, ProxyAssignmentActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProxyAssignment{}, ErrNotFound
		}
		return ProxyAssignment{}, fmt.Errorf("failed to get active proxy assignment: %w", err)
	}
	return assignment, nil
}

const sqlFailActiveAssignmentsForProxy = `
UPDATE proxy_assignments
SET status = $2,
	completed_at = $3,
	updated_at = NOW()
WHERE proxy_id = $1 AND status = $4
`

// FailActiveAssignmentsForProxy cascades a proxy failure to its current assignment
func (s *Store) FailActiveAssignmentsForProxy(ctx context.Context, proxyID uuid.UUID, failedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlFailActiveAssignmentsForProxy,
		proxyID, ProxyAssignmentFailed, failedAt, ProxyAssignmentActive)
	if err != nil {
		return fmt.Errorf("failed to fail active assignments for proxy: %w", err)
	}
	return nil
}
