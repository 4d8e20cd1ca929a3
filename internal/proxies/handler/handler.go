package handler

import (
	"errors"
	"net/http"
	"strconv"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/proxies/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ProxyProcessor
	logger    *observability.Logger
}

func New(processor processor.ProxyProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ProvisionProxyRequest requests a fresh proxy from the upstream provider
type ProvisionProxyRequest struct {
	Country     string `json:"country" binding:"required,min=2"`
	CountryCode string `json:"country_code" binding:"required,len=2"`
}

// HandleProvisionProxy acquires, probes and activates a new proxy
func (h *Handler) HandleProvisionProxy(c *gin.Context) {
	ctx := c.Request.Context()

	var req ProvisionProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "country_code", Value: req.CountryCode})

	proxy, err := h.processor.Provision(ctx, req.Country, req.CountryCode)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proxy)
}

// HandleListProxies lists recent proxies in the pool
func (h *Handler) HandleListProxies(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 500 {
			apierrors.BadRequest(c, "INVALID_INPUT", "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	proxies, err := h.processor.ListProxies(ctx, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proxies": proxies, "count": len(proxies)})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrProvisionFailed):
		apierrors.ServiceUnavailable(c, "PROVISION_FAILED", "Proxy provider could not supply a working proxy", err)
	case errors.Is(err, processor.ErrProxyNotFound):
		apierrors.NotFound(c, "Proxy not found")
	case errors.Is(err, processor.ErrProxySlotOccupied):
		apierrors.Conflict(c, "PROXY_BUSY", "Proxy is already serving a lead")
	default:
		apierrors.InternalError(c, err)
	}
}
