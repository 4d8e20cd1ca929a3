package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// leadColumns contains all columns for SELECT queries
const leadColumns = `id, first_name, last_name, email, phone, country, country_code, gender, lead_type, is_assigned, assigned_to, assigned_at, order_id, broker_availability_status, sleep_details, fingerprint_id, created_at, updated_at, deleted_at`

// CreateLeadParams represents parameters for creating a lead
type CreateLeadParams struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Country     string
	CountryCode string
	Gender      *string
	LeadType    string
}

const sqlCreateLead = `
INSERT INTO leads (first_name, last_name, email, phone, country, country_code, gender, lead_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + leadColumns + `
`

// CreateLead creates a new lead record
func (s *Store) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlCreateLead,
		params.FirstName,
		params.LastName,
		params.Email,
		params.Phone,
		params.Country,
		params.CountryCode,
		params.Gender,
		params.LeadType)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByID = `
SELECT ` + leadColumns + `
FROM leads
WHERE id = $1 AND deleted_at IS NULL
`

// GetLeadByID retrieves a lead by ID
func (s *Store) GetLeadByID(ctx context.Context, leadID uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return lead, nil
}

// LeadFilters narrows candidate pools for selection
type LeadFilters struct {
	Country          *string
	Gender           *string
	ExcludeNetworkID *uuid.UUID
}

const sqlSampleLeadsByType = `
SELECT ` + leadColumns + `
FROM leads
WHERE lead_type = $1
  AND is_assigned = FALSE
  AND order_id IS NULL
  AND deleted_at IS NULL
  AND ($2::text IS NULL OR country = $2)
  AND ($3::text IS NULL OR gender = $3)
  AND ($4::uuid IS NULL OR NOT EXISTS (
	SELECT 1 FROM lead_network_history h
	WHERE h.lead_id = leads.id AND h.network_id = $4
  ))
ORDER BY random()
LIMIT $5
`

// SampleLeadsByType returns a uniformly random sample of unassigned leads of
// the given type. Random selection matters for filler diversity: adjacent
// rows tend to come from the same import batch and share phone prefixes.
func (s *Store) SampleLeadsByType(ctx context.Context, leadType string, limit int, filters LeadFilters) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlSampleLeadsByType,
		leadType, filters.Country, filters.Gender, filters.ExcludeNetworkID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample leads by type: %w", err)
	}
	return leads, nil
}

const sqlListLeadsByType = `
SELECT ` + leadColumns + `
FROM leads
WHERE lead_type = $1
  AND is_assigned = FALSE
  AND order_id IS NULL
  AND deleted_at IS NULL
  AND ($2::text IS NULL OR country = $2)
  AND ($3::text IS NULL OR gender = $3)
  AND ($4::uuid IS NULL OR NOT EXISTS (
	SELECT 1 FROM lead_network_history h
	WHERE h.lead_id = leads.id AND h.network_id = $4
  ))
ORDER BY created_at ASC, id ASC
LIMIT $5
`

// ListLeadsByType returns unassigned leads of the given type in stable order
func (s *Store) ListLeadsByType(ctx context.Context, leadType string, limit int, filters LeadFilters) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListLeadsByType,
		leadType, filters.Country, filters.Gender, filters.ExcludeNetworkID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads by type: %w", err)
	}
	return leads, nil
}

const sqlAssignLeadToOrder = `
UPDATE leads
SET order_id = $2,
	is_assigned = TRUE,
	assigned_to = COALESCE(assigned_to, $3),
	assigned_at = COALESCE(assigned_at, $4),
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`

// AssignLeadToOrder binds a lead to an order. A lead already assigned to an
// agent keeps its assignee and only gains the order reference.
func (s *Store) AssignLeadToOrder(ctx context.Context, leadID, orderID, assignedTo uuid.UUID, assignedAt time.Time) error {
	result, err := s.db.ExecContext(ctx, sqlAssignLeadToOrder, leadID, orderID, assignedTo, assignedAt)
	if err != nil {
		return fmt.Errorf("failed to assign lead to order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check lead assignment: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlReleaseOrderLeads = `
UPDATE leads
SET order_id = NULL,
	is_assigned = FALSE,
	assigned_to = NULL,
	assigned_at = NULL,
	updated_at = NOW()
WHERE order_id = $1 AND deleted_at IS NULL
`

// ReleaseOrderLeads clears assignment fields for every lead held by an order
func (s *Store) ReleaseOrderLeads(ctx context.Context, orderID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlReleaseOrderLeads, orderID)
	if err != nil {
		return fmt.Errorf("failed to release order leads: %w", err)
	}
	return nil
}

const sqlSetLeadSleep = `
UPDATE leads
SET broker_availability_status = $2,
	sleep_details = $3,
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`

// SetLeadSleep puts a lead to sleep with a reason payload
func (s *Store) SetLeadSleep(ctx context.Context, leadID uuid.UUID, details JSONB) error {
	_, err := s.db.ExecContext(ctx, sqlSetLeadSleep, leadID, BrokerAvailabilitySleep, details)
	if err != nil {
		return fmt.Errorf("failed to set lead sleep: %w", err)
	}
	return nil
}

const sqlWakeLead = `
UPDATE leads
SET broker_availability_status = $2,
	sleep_details = NULL,
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`

// WakeLead returns a sleeping lead to the available state
func (s *Store) WakeLead(ctx context.Context, leadID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlWakeLead, leadID, BrokerAvailabilityAvailable)
	if err != nil {
		return fmt.Errorf("failed to wake lead: %w", err)
	}
	return nil
}

const sqlWakeSleepingLeads = `
UPDATE leads
SET broker_availability_status = $1,
	sleep_details = NULL,
	updated_at = NOW()
WHERE broker_availability_status = $2 AND deleted_at IS NULL
`

// WakeSleepingLeads wakes every sleeping lead and returns the affected count
func (s *Store) WakeSleepingLeads(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, sqlWakeSleepingLeads,
		BrokerAvailabilityAvailable, BrokerAvailabilitySleep)
	if err != nil {
		return 0, fmt.Errorf("failed to wake sleeping leads: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count woken leads: %w", err)
	}
	return rows, nil
}

const sqlSetBrokerAvailability = `
UPDATE leads
SET broker_availability_status = $2,
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`

// SetBrokerAvailability updates a lead's broker availability status
func (s *Store) SetBrokerAvailability(ctx context.Context, leadID uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, sqlSetBrokerAvailability, leadID, status)
	if err != nil {
		return fmt.Errorf("failed to set broker availability: %w", err)
	}
	return nil
}

const sqlSetLeadFingerprint = `
UPDATE leads
SET fingerprint_id = $2,
	updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
`

// SetLeadFingerprint binds a fingerprint record to a lead
func (s *Store) SetLeadFingerprint(ctx context.Context, leadID, fingerprintID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlSetLeadFingerprint, leadID, fingerprintID)
	if err != nil {
		return fmt.Errorf("failed to set lead fingerprint: %w", err)
	}
	return nil
}
