package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
)

// OrderStore defines the database operations required by OrderProcessor
type OrderStore interface {
	CreateOrder(ctx context.Context, params store.CreateOrderParams) (store.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	AddOrderLeads(ctx context.Context, orderID uuid.UUID, leadIDs []uuid.UUID) error
	ListOrderLeads(ctx context.Context, orderID uuid.UUID) ([]store.Lead, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error
	AssignLeadToOrder(ctx context.Context, leadID, orderID, assignedTo uuid.UUID, assignedAt time.Time) error
	ReleaseOrderLeads(ctx context.Context, orderID uuid.UUID) error
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error)
	AppendNetworkHistory(ctx context.Context, params store.AppendNetworkHistoryParams) (store.NetworkHistoryEntry, error)
}

// LeadSelector defines the pool selection operations required by OrderProcessor
type LeadSelector interface {
	Select(ctx context.Context, leadType string, count int, filters store.LeadFilters) ([]store.Lead, error)
}

// EventDispatcher defines the event operations required by OrderProcessor
type EventDispatcher interface {
	DispatchOrderCreated(ctx context.Context, order store.Order)
	DispatchOrderCancelled(ctx context.Context, order store.Order)
}

var (
	ErrInvalidOrderRequest    = errors.New("order must request at least one lead")
	ErrInvalidInjectionMode   = errors.New("invalid injection mode")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderAlreadyCancelled  = errors.New("order is already cancelled")
	ErrLeadAssignmentMismatch = errors.New("lead assignment failed to verify")
)

type OrderProcessor struct {
	store      OrderStore
	selector   LeadSelector
	dispatcher EventDispatcher
	logger     *observability.Logger
}

func New(store OrderStore, selector LeadSelector, dispatcher EventDispatcher, logger *observability.Logger) OrderProcessor {
	return OrderProcessor{
		store:      store,
		selector:   selector,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateOrderRequest represents a client request for a pool of leads
type CreateOrderRequest struct {
	CreatedBy uuid.UUID
	NetworkID *uuid.UUID

	RequestedFTD    int
	RequestedFiller int
	RequestedCold   int
	RequestedLive   int

	CountryFilter *string
	GenderFilter  *string

	InjectionEnabled      bool
	InjectionMode         string
	InjectionIncludeTypes []string
	DeviceSelectionMode   string
	DeviceTypes           []string
	DeviceRatio           map[string]interface{}

	ScheduledWindowStart *string
	ScheduledWindowEnd   *string
}

// selectionOrder fixes the sequence types are pulled in
var selectionOrder = []string{store.LeadTypeFTD, store.LeadTypeFiller, store.LeadTypeCold, store.LeadTypeLive}

// CreateOrder pulls matching leads per requested type, classifies
// fulfillment, persists the order and binds every pulled lead to it. A
// failed post-assignment verification deletes the order; there is no
// silent partial commit.
func (p *OrderProcessor) CreateOrder(ctx context.Context, req CreateOrderRequest) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "created_by", Value: req.CreatedBy.String()},
	)

	if err := validateRequest(req); err != nil {
		return store.Order{}, err
	}

	filters := store.LeadFilters{
		Country:          req.CountryFilter,
		Gender:           req.GenderFilter,
		ExcludeNetworkID: req.NetworkID,
	}
	requests := map[string]int{
		store.LeadTypeFTD:    req.RequestedFTD,
		store.LeadTypeFiller: req.RequestedFiller,
		store.LeadTypeCold:   req.RequestedCold,
		store.LeadTypeLive:   req.RequestedLive,
	}

	fulfilled := make(map[string]int, len(requests))
	var pulled []store.Lead
	for _, leadType := range selectionOrder {
		count := requests[leadType]
		if count == 0 {
			continue
		}
		leads, err := p.selector.Select(ctx, leadType, count, filters)
		if err != nil {
			p.logger.Error(ctx, "failed to select leads for order", err)
			return store.Order{}, err
		}
		fulfilled[leadType] = len(leads)
		pulled = append(pulled, leads...)
	}

	status := classifyStatus(requests, fulfilled)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_status", Value: status},
		observability.Field{Key: "pulled_leads", Value: len(pulled)},
	)

	ftdHandling := store.FTDHandlingSkipped
	if fulfilled[store.LeadTypeFTD] > 0 {
		ftdHandling = store.FTDHandlingManualFillRequired
	}

	includeTypes := req.InjectionIncludeTypes
	if len(includeTypes) == 0 {
		includeTypes = []string{store.LeadTypeFiller, store.LeadTypeCold, store.LeadTypeLive}
	}
	deviceSelection := req.DeviceSelectionMode
	if deviceSelection == "" {
		deviceSelection = store.DeviceSelectionRandom
	}

	order, err := p.store.CreateOrder(ctx, store.CreateOrderParams{
		CreatedBy:             req.CreatedBy,
		NetworkID:             req.NetworkID,
		RequestedFTD:          req.RequestedFTD,
		RequestedFiller:       req.RequestedFiller,
		RequestedCold:         req.RequestedCold,
		RequestedLive:         req.RequestedLive,
		FulfilledFTD:          fulfilled[store.LeadTypeFTD],
		FulfilledFiller:       fulfilled[store.LeadTypeFiller],
		FulfilledCold:         fulfilled[store.LeadTypeCold],
		FulfilledLive:         fulfilled[store.LeadTypeLive],
		Status:                status,
		CountryFilter:         req.CountryFilter,
		GenderFilter:          req.GenderFilter,
		InjectionEnabled:      req.InjectionEnabled,
		InjectionMode:         req.InjectionMode,
		InjectionIncludeTypes: includeTypes,
		DeviceSelectionMode:   deviceSelection,
		DeviceTypes:           req.DeviceTypes,
		DeviceRatio:           req.DeviceRatio,
		ScheduledWindowStart:  req.ScheduledWindowStart,
		ScheduledWindowEnd:    req.ScheduledWindowEnd,
		FTDsPendingManualFill: fulfilled[store.LeadTypeFTD],
		FTDHandlingStatus:     ftdHandling,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist order", err)
		return store.Order{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: order.ID.String()},
	)

	if status == store.OrderStatusCancelled {
		// Nothing was pulled; no lead updates to make.
		return order, nil
	}

	leadIDs := make([]uuid.UUID, len(pulled))
	for i, lead := range pulled {
		leadIDs[i] = lead.ID
	}
	if err := p.store.AddOrderLeads(ctx, order.ID, leadIDs); err != nil {
		p.logger.Error(ctx, "failed to record order leads", err)
		p.compensate(ctx, order.ID)
		return store.Order{}, err
	}

	now := time.Now()
	for _, lead := range pulled {
		if err := p.assignAndVerify(ctx, lead, order.ID, req.CreatedBy, now); err != nil {
			p.logger.Error(ctx, "lead assignment failed, rolling back order", err)
			p.compensate(ctx, order.ID)
			return store.Order{}, err
		}
		if req.NetworkID != nil {
			_, err := p.store.AppendNetworkHistory(ctx, store.AppendNetworkHistoryParams{
				LeadID:     lead.ID,
				NetworkID:  *req.NetworkID,
				OrderID:    &order.ID,
				AssignedBy: &req.CreatedBy,
			})
			if err != nil {
				p.logger.Error(ctx, "lead network history failed, rolling back order", err)
				p.compensate(ctx, order.ID)
				return store.Order{}, err
			}
		}
	}

	if p.dispatcher != nil {
		p.dispatcher.DispatchOrderCreated(ctx, order)
	}
	p.logger.Info(ctx, "order created")
	return order, nil
}

// assignAndVerify binds a lead to the order and re-reads the record to
// confirm the update landed.
func (p *OrderProcessor) assignAndVerify(ctx context.Context, lead store.Lead, orderID, createdBy uuid.UUID, assignedAt time.Time) error {
	if err := p.store.AssignLeadToOrder(ctx, lead.ID, orderID, createdBy, assignedAt); err != nil {
		return fmt.Errorf("failed to assign lead %s: %w", lead.ID, err)
	}
	updated, err := p.store.GetLeadByID(ctx, lead.ID)
	if err != nil {
		return fmt.Errorf("failed to re-read lead %s: %w", lead.ID, err)
	}
	if updated.OrderID == nil || *updated.OrderID != orderID {
		return fmt.Errorf("lead %s: %w", lead.ID, ErrLeadAssignmentMismatch)
	}
	return nil
}

// compensate undoes a partially committed order
func (p *OrderProcessor) compensate(ctx context.Context, orderID uuid.UUID) {
	if err := p.store.ReleaseOrderLeads(ctx, orderID); err != nil {
		p.logger.Error(ctx, "failed to release leads during rollback", err)
	}
	if err := p.store.DeleteOrder(ctx, orderID); err != nil {
		p.logger.Error(ctx, "failed to delete order during rollback", err)
	}
}

// GetOrder retrieves an order by ID
func (p *OrderProcessor) GetOrder(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to get order", err)
		return store.Order{}, err
	}
	return order, nil
}

// GetOrderLeads returns an order's leads in pull order
func (p *OrderProcessor) GetOrderLeads(ctx context.Context, orderID uuid.UUID) ([]store.Lead, error) {
	if _, err := p.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	leads, err := p.store.ListOrderLeads(ctx, orderID)
	if err != nil {
		p.logger.Error(ctx, "failed to list order leads", err)
		return nil, err
	}
	return leads, nil
}

// CancelOrder releases every lead held by the order and marks it cancelled
func (p *OrderProcessor) CancelOrder(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
	)

	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to get order for cancellation", err)
		return store.Order{}, err
	}
	if order.Status == store.OrderStatusCancelled {
		return store.Order{}, ErrOrderAlreadyCancelled
	}

	if err := p.store.ReleaseOrderLeads(ctx, orderID); err != nil {
		p.logger.Error(ctx, "failed to release order leads", err)
		return store.Order{}, err
	}
	if err := p.store.UpdateOrderStatus(ctx, orderID, store.OrderStatusCancelled); err != nil {
		p.logger.Error(ctx, "failed to mark order cancelled", err)
		return store.Order{}, err
	}

	order.Status = store.OrderStatusCancelled
	if p.dispatcher != nil {
		p.dispatcher.DispatchOrderCancelled(ctx, order)
	}
	p.logger.Info(ctx, "order cancelled")
	return order, nil
}

func validateRequest(req CreateOrderRequest) error {
	if req.RequestedFTD < 0 || req.RequestedFiller < 0 || req.RequestedCold < 0 || req.RequestedLive < 0 {
		return ErrInvalidOrderRequest
	}
	if req.RequestedFTD+req.RequestedFiller+req.RequestedCold+req.RequestedLive == 0 {
		return ErrInvalidOrderRequest
	}
	if req.InjectionEnabled {
		switch req.InjectionMode {
		case store.InjectionModeBulk, store.InjectionModeScheduled:
		default:
			return ErrInvalidInjectionMode
		}
	}
	return nil
}

// classifyStatus is computed once at creation and only revised by
// cancellation.
func classifyStatus(requests, fulfilled map[string]int) string {
	total := 0
	complete := true
	for leadType, requested := range requests {
		got := fulfilled[leadType]
		total += got
		if got < requested {
			complete = false
		}
	}
	if total == 0 {
		return store.OrderStatusCancelled
	}
	if complete {
		return store.OrderStatusFulfilled
	}
	return store.OrderStatusPartial
}
