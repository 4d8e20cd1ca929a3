package handler

import (
	"errors"
	"net/http"
	"strings"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/auth/processor"
	"leadflow-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin agent"`
}

func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	token, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrOperatorNotFound), errors.Is(err, processor.ErrIncorrectPassword):
			apierrors.Unauthorized(c, "Invalid email or password")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	operator, err := h.authProcessor.Signup(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrEmailAlreadyExists):
			apierrors.Conflict(c, "EMAIL_EXISTS", "Email already exists")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, operator)
}

// HandleJWTMiddleware authenticates requests and stores the operator
// identity on the gin context for downstream handlers.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenHeader := c.GetHeader("Authorization")
	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, "Invalid or expired token")
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil {
		apierrors.Unauthorized(c, "Invalid token subject")
		c.Abort()
		return
	}

	c.Set("Operator-ID", sub)
	c.Set("Operator-Role", claims.Role)
	c.Next()
}

func (h *Handler) HandleGetMe(c *gin.Context) {
	ctx := c.Request.Context()

	operatorIDStr, ok := c.Get("Operator-ID")
	if !ok {
		apierrors.Unauthorized(c, "Operator ID not found in context")
		return
	}
	operatorID, err := uuid.Parse(operatorIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid operator ID format")
		return
	}

	operator, err := h.authProcessor.GetOperatorByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, processor.ErrOperatorNotFound) {
			apierrors.NotFound(c, "Operator not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"operator": operator})
}
