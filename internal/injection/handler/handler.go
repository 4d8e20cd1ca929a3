package handler

import (
	"errors"
	"net/http"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/injection/processor"
	"leadflow-server/internal/injection/progress"
	"leadflow-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	processor *processor.InjectionProcessor
	hub       *progress.Hub
	logger    *observability.Logger
}

func New(processor *processor.InjectionProcessor, hub *progress.Hub, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		hub:       hub,
		logger:    logger,
	}
}

// upgrader is a shared WebSocket upgrader for progress feeds
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CompleteFTDRequest records an operator-filled FTD injection
type CompleteFTDRequest struct {
	BrokerID *string `json:"broker_id,omitempty" binding:"omitempty,uuid"`
	Domain   *string `json:"domain,omitempty"`
}

// AssignBrokerRequest resolves a pending broker assignment
type AssignBrokerRequest struct {
	Domain string `json:"domain" binding:"required,min=1"`
}

// HandleStartInjection starts or resumes an order's injection run
func (h *Handler) HandleStartInjection(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	order, err := h.processor.Start(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandlePauseInjection pauses a running injection at its next checkpoint
func (h *Handler) HandlePauseInjection(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}

	order, err := h.processor.Pause(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleStopInjection aborts an injection run
func (h *Handler) HandleStopInjection(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}

	order, err := h.processor.Stop(ctx, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleCompleteFTD records a manually injected FTD lead
func (h *Handler) HandleCompleteFTD(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}
	operatorID, ok := h.getOperatorID(c)
	if !ok {
		return
	}

	var req CompleteFTDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	var brokerID *uuid.UUID
	if req.BrokerID != nil {
		parsed, err := uuid.Parse(*req.BrokerID)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "Invalid broker ID format")
			return
		}
		brokerID = &parsed
	}

	if err := h.processor.CompleteFTD(ctx, orderID, leadID, brokerID, req.Domain, operatorID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ftd completed"})
}

// HandleAssignBroker resolves a pending broker assignment by domain
func (h *Handler) HandleAssignBroker(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}
	operatorID, ok := h.getOperatorID(c)
	if !ok {
		return
	}

	var req AssignBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.AssignBrokerManually(ctx, orderID, leadID, req.Domain, operatorID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "broker assigned"})
}

// HandleProgressFeed upgrades the connection and streams injection
// progress snapshots for the order until the client disconnects.
func (h *Handler) HandleProgressFeed(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, ok := h.getOrderID(c)
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "order_id", Value: orderID.String()})

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "websocket upgrade failed", err)
		return
	}

	h.logger.Info(ctx, "progress feed subscriber connected")
	h.hub.Subscribe(ctx, orderID, conn)
	h.logger.Info(ctx, "progress feed subscriber disconnected")
}

func (h *Handler) getOrderID(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid order ID format")
		return uuid.UUID{}, false
	}
	return orderID, true
}

func (h *Handler) getLeadID(c *gin.Context) (uuid.UUID, bool) {
	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid lead ID format")
		return uuid.UUID{}, false
	}
	return leadID, true
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

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrOrderNotFound):
		apierrors.NotFound(c, "Order not found")
	case errors.Is(err, processor.ErrInjectionDisabled):
		apierrors.BadRequest(c, "INJECTION_DISABLED", "Injection is not enabled for this order")
	case errors.Is(err, processor.ErrInvalidTransition):
		apierrors.Conflict(c, "INVALID_TRANSITION", "Injection status does not allow this transition")
	case errors.Is(err, processor.ErrLeadNotInOrder):
		apierrors.NotFound(c, "Lead does not belong to this order")
	case errors.Is(err, processor.ErrNotFTDLead):
		apierrors.BadRequest(c, "NOT_FTD_LEAD", "Lead is not an FTD")
	case errors.Is(err, processor.ErrBrokerRequired):
		apierrors.BadRequest(c, "BROKER_REQUIRED", "A broker ID or domain is required")
	case errors.Is(err, processor.ErrBadScheduledWindow):
		apierrors.BadRequest(c, "INVALID_WINDOW", "Scheduled window bounds are invalid")
	default:
		apierrors.InternalError(c, err)
	}
}
