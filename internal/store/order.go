package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const orderColumns = `id, created_by, network_id, requested_ftd, requested_filler, requested_cold, requested_live, fulfilled_ftd, fulfilled_filler, fulfilled_cold, fulfilled_live, status, country_filter, gender_filter, injection_enabled, injection_mode, injection_include_types, injection_status, device_selection_mode, device_types, device_ratio, scheduled_window_start, scheduled_window_end, total_to_inject, successful_injections, failed_injections, brokers_assigned, broker_assignment_pending, ftds_pending_manual_fill, ftd_handling_status, injection_started_at, injection_completed_at, created_at, updated_at`

// CreateOrderParams represents parameters for creating an order
type CreateOrderParams struct {
	CreatedBy uuid.UUID
	NetworkID *uuid.UUID

	RequestedFTD    int
	RequestedFiller int
	RequestedCold   int
	RequestedLive   int

	FulfilledFTD    int
	FulfilledFiller int
	FulfilledCold   int
	FulfilledLive   int

	Status string

	CountryFilter *string
	GenderFilter  *string

	InjectionEnabled      bool
	InjectionMode         string
	InjectionIncludeTypes StringArray
	DeviceSelectionMode   string
	DeviceTypes           StringArray
	DeviceRatio           JSONB

	ScheduledWindowStart *string
	ScheduledWindowEnd   *string

	FTDsPendingManualFill int
	FTDHandlingStatus     string
}

const sqlCreateOrder = `
INSERT INTO orders (
	created_by, network_id,
	requested_ftd, requested_filler, requested_cold, requested_live,
	fulfilled_ftd, fulfilled_filler, fulfilled_cold, fulfilled_live,
	status, country_filter, gender_filter,
	injection_enabled, injection_mode, injection_include_types,
	device_selection_mode, device_types, device_ratio,
	scheduled_window_start, scheduled_window_end,
	ftds_pending_manual_fill, ftd_handling_status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
RETURNING ` + orderColumns + `
`

// CreateOrder persists a new order
func (s *Store) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlCreateOrder,
		params.CreatedBy,
		params.NetworkID,
		params.RequestedFTD,
		params.RequestedFiller,
		params.RequestedCold,
		params.RequestedLive,
		params.FulfilledFTD,
		params.FulfilledFiller,
		params.FulfilledCold,
		params.FulfilledLive,
		params.Status,
		params.CountryFilter,
		params.GenderFilter,
		params.InjectionEnabled,
		params.InjectionMode,
		params.InjectionIncludeTypes,
		params.DeviceSelectionMode,
		params.DeviceTypes,
		params.DeviceRatio,
		params.ScheduledWindowStart,
		params.ScheduledWindowEnd,
		params.FTDsPendingManualFill,
		params.FTDHandlingStatus)
	if err != nil {
		return Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

const sqlGetOrderByID = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	return order, nil
}

const sqlDeleteOrder = `
DELETE FROM orders WHERE id = $1
`

// DeleteOrder removes an order. Used as the compensating action when lead
// assignment fails to verify after creation.
func (s *Store) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlDeleteOrder, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

const sqlAddOrderLead = `
INSERT INTO order_leads (order_id, lead_id, position)
VALUES ($1, $2, $3)
`

// AddOrderLeads records the ordered lead set of an order
func (s *Store) AddOrderLeads(ctx context.Context, orderID uuid.UUID, leadIDs []uuid.UUID) error {
	for i, leadID := range leadIDs {
		if _, err := s.db.ExecContext(ctx, sqlAddOrderLead, orderID, leadID, i); err != nil {
			return fmt.Errorf("failed to add order lead: %w", err)
		}
	}
	return nil
}

const sqlListOrderLeads = `
SELECT leads.id, leads.first_name, leads.last_name, leads.email, leads.phone, leads.country, leads.country_code, leads.gender, leads.lead_type, leads.is_assigned, leads.assigned_to, leads.assigned_at, leads.order_id, leads.broker_availability_status, leads.sleep_details, leads.fingerprint_id, leads.created_at, leads.updated_at, leads.deleted_at
FROM leads
JOIN order_leads ol ON ol.lead_id = leads.id
WHERE ol.order_id = $1 AND leads.deleted_at IS NULL
ORDER BY ol.position ASC
`

// ListOrderLeads returns an order's leads in their original pull order
func (s *Store) ListOrderLeads(ctx context.Context, orderID uuid.UUID) ([]Lead, error) {
	var leads []Lead
	err := s.db.SelectContext(ctx, &leads, sqlListOrderLeads, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order leads: %w", err)
	}
	return leads, nil
}

const sqlUpdateOrderStatus = `
UPDATE orders
SET status = $2,
	updated_at = NOW()
WHERE id = $1
`

// UpdateOrderStatus sets an order's fulfillment status
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateOrderStatus, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

const sqlUpdateInjectionStatus = `
UPDATE orders
SET injection_status = $2,
	updated_at = NOW()
WHERE id = $1
`

// UpdateInjectionStatus sets an order's injection lifecycle status
func (s *Store) UpdateInjectionStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateInjectionStatus, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update injection status: %w", err)
	}
	return nil
}

const sqlSetTotalToInject = `
UPDATE orders
SET total_to_inject = $2,
	updated_at = NOW()
WHERE id = $1
`

// SetTotalToInject records how many leads an injection run covers
func (s *Store) SetTotalToInject(ctx context.Context, orderID uuid.UUID, total int) error {
	_, err := s.db.ExecContext(ctx, sqlSetTotalToInject, orderID, total)
	if err != nil {
		return fmt.Errorf("failed to set total to inject: %w", err)
	}
	return nil
}

const sqlSetInjectionStartedAt = `
UPDATE orders
SET injection_started_at = COALESCE(injection_started_at, $2),
	updated_at = NOW()
WHERE id = $1
`

// SetInjectionStartedAt stamps the first injection start time
func (s *Store) SetInjectionStartedAt(ctx context.Context, orderID uuid.UUID, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlSetInjectionStartedAt, orderID, startedAt)
	if err != nil {
		return fmt.Errorf("failed to set injection started at: %w", err)
	}
	return nil
}

const sqlSetInjectionCompletedAt = `
UPDATE orders
SET injection_completed_at = $2,
	updated_at = NOW()
WHERE id = $1
`

// SetInjectionCompletedAt stamps injection completion
func (s *Store) SetInjectionCompletedAt(ctx context.Context, orderID uuid.UUID, completedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlSetInjectionCompletedAt, orderID, completedAt)
	if err != nil {
		return fmt.Errorf("failed to set injection completed at: %w", err)
	}
	return nil
}

const sqlIncrementSuccessfulInjections = `
UPDATE orders
SET successful_injections = successful_injections + 1,
	updated_at = NOW()
WHERE id = $1
RETURNING ` + orderColumns + `
`

// IncrementSuccessfulInjections bumps the success counter and returns the
// updated order so callers can evaluate completion.
func (s *Store) IncrementSuccessfulInjections(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlIncrementSuccessfulInjections, orderID)
	if err != nil {
		return Order{}, fmt.Errorf("failed to increment successful injections: %w", err)
	}
	return order, nil
}

const sqlIncrementFailedInjections = `
UPDATE orders
SET failed_injections = failed_injections + 1,
	updated_at = NOW()
WHERE id = $1
RETURNING ` + orderColumns + `
`

// IncrementFailedInjections bumps the failure counter and returns the
// updated order so callers can evaluate completion.
func (s *Store) IncrementFailedInjections(ctx context.Context, orderID uuid.UUID) (Order, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlIncrementFailedInjections, orderID)
	if err != nil {
		return Order{}, fmt.Errorf("failed to increment failed injections: %w", err)
	}
	return order, nil
}

const sqlIncrementBrokersAssigned = `
UPDATE orders
SET brokers_assigned = brokers_assigned + 1,
	updated_at = NOW()
WHERE id = $1
`

// IncrementBrokersAssigned bumps the broker-assignment counter
func (s *Store) IncrementBrokersAssigned(ctx context.Context, orderID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementBrokersAssigned, orderID)
	if err != nil {
		return fmt.Errorf("failed to increment brokers assigned: %w", err)
	}
	return nil
}

const sqlSetBrokerAssignmentPending = `
UPDATE orders
SET broker_assignment_pending = $2,
	updated_at = NOW()
WHERE id = $1
`

// SetBrokerAssignmentPending flags an order for manual broker follow-up
func (s *Store) SetBrokerAssignmentPending(ctx context.Context, orderID uuid.UUID, pending bool) error {
	_, err := s.db.ExecContext(ctx, sqlSetBrokerAssignmentPending, orderID, pending)
	if err != nil {
		return fmt.Errorf("failed to set broker assignment pending: %w", err)
	}
	return nil
}

const sqlSetFTDHandlingStatus = `
UPDATE orders
SET ftd_handling_status = $2,
	updated_at = NOW()
WHERE id = $1
`

// SetFTDHandlingStatus updates an order's FTD manual-fill phase
func (s *Store) SetFTDHandlingStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	_, err := s.db.ExecContext(ctx, sqlSetFTDHandlingStatus, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to set ftd handling status: %w", err)
	}
	return nil
}

const sqlDecrementFTDsPendingManualFill = `
UPDATE orders
SET ftds_pending_manual_fill = GREATEST(ftds_pending_manual_fill - 1, 0),
	updated_at = NOW()
WHERE id = $1
RETURNING ftds_pending_manual_fill
`

// DecrementFTDsPendingManualFill decrements the pending FTD counter and
// returns the remaining count.
func (s *Store) DecrementFTDsPendingManualFill(ctx context.Context, orderID uuid.UUID) (int, error) {
	var remaining int
	err := s.db.GetContext(ctx, &remaining, sqlDecrementFTDsPendingManualFill, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement pending ftds: %w", err)
	}
	return remaining, nil
}
