package handler

import (
	"errors"
	"net/http"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/orders/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.OrderProcessor
	logger    *observability.Logger
}

func New(processor processor.OrderProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateOrderRequest represents the HTTP request for creating an order
type CreateOrderRequest struct {
	NetworkID *string `json:"network_id,omitempty" binding:"omitempty,uuid"`

	RequestedFTD    int `json:"requested_ftd" binding:"gte=0"`
	RequestedFiller int `json:"requested_filler" binding:"gte=0"`
	RequestedCold   int `json:"requested_cold" binding:"gte=0"`
	RequestedLive   int `json:"requested_live" binding:"gte=0"`

	CountryFilter *string `json:"country_filter,omitempty"`
	GenderFilter  *string `json:"gender_filter,omitempty" binding:"omitempty,oneof=male female"`

	InjectionEnabled      bool                   `json:"injection_enabled"`
	InjectionMode         string                 `json:"injection_mode" binding:"omitempty,oneof=bulk scheduled"`
	InjectionIncludeTypes []string               `json:"injection_include_types,omitempty" binding:"dive,oneof=ftd filler cold live"`
	DeviceSelectionMode   string                 `json:"device_selection_mode" binding:"omitempty,oneof=bulk individual ratio random"`
	DeviceTypes           []string               `json:"device_types,omitempty" binding:"dive,oneof=windows android ios mac"`
	DeviceRatio           map[string]interface{} `json:"device_ratio,omitempty"`

	ScheduledWindowStart *string `json:"scheduled_window_start,omitempty"`
	ScheduledWindowEnd   *string `json:"scheduled_window_end,omitempty"`
}

// HandleCreateOrder creates an order and assigns its lead pool
func (h *Handler) HandleCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	operatorID, ok := h.getOperatorID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "operator_id", Value: operatorID.String()})

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	var networkID *uuid.UUID
	if req.NetworkID != nil {
		parsed, err := uuid.Parse(*req.NetworkID)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "Invalid network ID format")
			return
		}
		networkID = &parsed
	}

	order, err := h.processor.CreateOrder(ctx, processor.CreateOrderRequest{
		CreatedBy:             operatorID,
		NetworkID:             networkID,
		RequestedFTD:          req.RequestedFTD,
		RequestedFiller:       req.RequestedFiller,
		RequestedCold:         req.RequestedCold,
		RequestedLive:         req.RequestedLive,
		CountryFilter:         req.CountryFilter,
		GenderFilter:          req.GenderFilter,
		InjectionEnabled:      req.InjectionEnabled,
		InjectionMode:         req.InjectionMode,
		InjectionIncludeTypes: req.InjectionIncludeTypes,
		DeviceSelectionMode:   req.DeviceSelectionMode,
		DeviceTypes:           req.DeviceTypes,
		DeviceRatio:           req.DeviceRatio,
		ScheduledWindowStart:  req.ScheduledWindowStart,
		ScheduledWindowEnd:    req.ScheduledWindowEnd,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// HandleGetOrder retrieves an order by ID
func (h *Handler) HandleGetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	order, err := h.processor.GetOrder(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleGetOrderLeads lists the leads assigned to an order
func (h *Handler) HandleGetOrderLeads(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	leads, err := h.processor.GetOrderLeads(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// HandleCancelOrder cancels an order and releases its leads
func (h *Handler) HandleCancelOrder(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	order, err := h.processor.CancelOrder(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) getOperatorID(c *gin.Context) (uuid.UUID, bool) {
	operatorIDStr, exists := c.Get("Operator-ID")
	if !exists {
		apierrors.Unauthorized(c, "Operator ID not found in context")
		return uuid.UUID{}, false
	}

	operatorID, err := uuid.Parse(operatorIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid operator ID format")
		return uuid.UUID{}, false
	}
	return operatorID, true
}

func (h *Handler) getOrderID(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid order ID format")
		return uuid.UUID{}, false
	}
	return orderID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrOrderNotFound):
		apierrors.NotFound(c, "Order not found")
	case errors.Is(err, processor.ErrInvalidOrderRequest):
		apierrors.BadRequest(c, "INVALID_ORDER", "Order must request at least one lead")
	case errors.Is(err, processor.ErrInvalidInjectionMode):
		apierrors.BadRequest(c, "INVALID_INJECTION_MODE", "Invalid injection mode")
	case errors.Is(err, processor.ErrOrderAlreadyCancelled):
		apierrors.Conflict(c, "ALREADY_CANCELLED", "Order is already cancelled")
	case errors.Is(err, processor.ErrLeadAssignmentMismatch):
		apierrors.Conflict(c, "ASSIGNMENT_CONFLICT", "Lead assignment failed to verify, order was rolled back")
	default:
		apierrors.InternalError(c, err)
	}
}
