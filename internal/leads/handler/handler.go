package handler

import (
	"context"
	"errors"
	"net/http"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadStore defines the database operations required by the lead intake API
type LeadStore interface {
	CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error)
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error)
	WakeLead(ctx context.Context, leadID uuid.UUID) error
	WakeSleepingLeads(ctx context.Context) (int64, error)
}

type Handler struct {
	store  LeadStore
	logger *observability.Logger
}

func New(store LeadStore, logger *observability.Logger) Handler {
	return Handler{
		store:  store,
		logger: logger,
	}
}

// CreateLeadRequest represents the HTTP request for adding a lead to the pool
type CreateLeadRequest struct {
	FirstName   string  `json:"first_name" binding:"required,min=1"`
	LastName    string  `json:"last_name" binding:"required,min=1"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone" binding:"required,min=5"`
	Country     string  `json:"country" binding:"required,min=2"`
	CountryCode string  `json:"country_code" binding:"required,len=2"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=male female"`
	LeadType    string  `json:"lead_type" binding:"required,oneof=ftd filler cold live"`
}

// HandleCreateLead adds a lead to the distribution pool
func (h *Handler) HandleCreateLead(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_type", Value: req.LeadType})

	lead, err := h.store.CreateLead(ctx, store.CreateLeadParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		Gender:      req.Gender,
		LeadType:    req.LeadType,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to create lead", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// HandleGetLead retrieves a lead by ID
func (h *Handler) HandleGetLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid lead ID format")
		return
	}

	lead, err := h.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "Lead not found")
			return
		}
		h.logger.Error(ctx, "failed to get lead", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// HandleWakeLead clears a single lead's sleep state
func (h *Handler) HandleWakeLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid lead ID format")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	if err := h.store.WakeLead(ctx, leadID); err != nil {
		h.logger.Error(ctx, "failed to wake lead", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead woken"})
}

// HandleWakeSleepingLeads wakes every slept lead in one sweep
func (h *Handler) HandleWakeSleepingLeads(c *gin.Context) {
	ctx := c.Request.Context()

	woken, err := h.store.WakeSleepingLeads(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to wake sleeping leads", err)
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"woken": woken})
}
