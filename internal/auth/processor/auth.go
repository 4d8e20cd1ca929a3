package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateOperator(ctx context.Context, params store.CreateOperatorParams) (store.Operator, error)
	GetOperatorByEmail(ctx context.Context, email string) (store.Operator, error)
	GetOperatorByID(ctx context.Context, operatorID uuid.UUID) (store.Operator, error)
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrExpiredToken       = errors.New("token expired")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
)

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	logger    *observability.Logger
}

func New(store AuthStore, jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Signup creates an operator account and returns a session token for it
func (p *AuthProcessor) Signup(ctx context.Context, name, email, password, role string) (store.Operator, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if _, err := p.store.GetOperatorByEmail(ctx, email); err == nil {
		return store.Operator{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check operator email", err)
		return store.Operator{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.Operator{}, err
	}

	operator, err := p.store.CreateOperator(ctx, store.CreateOperatorParams{
		Email:          email,
		HashedPassword: string(hashedPassword),
		Name:           name,
		Role:           role,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create operator", err)
		return store.Operator{}, err
	}
	return operator, nil
}

// Login verifies an operator's credentials and returns a signed JWT
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	operator, err := p.store.GetOperatorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrOperatorNotFound
		}
		p.logger.Error(ctx, "failed to get operator by email", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.HashedPassword), []byte(password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := p.generateJWTToken(ctx, operator)
	if err != nil {
		p.logger.Error(ctx, "failed to generate jwt token", err)
		return "", err
	}
	return token, nil
}

// GetOperatorByID loads the operator behind a validated token subject
func (p *AuthProcessor) GetOperatorByID(ctx context.Context, operatorID uuid.UUID) (store.Operator, error) {
	operator, err := p.store.GetOperatorByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Operator{}, ErrOperatorNotFound
		}
		p.logger.Error(ctx, "failed to get operator by id", err)
		return store.Operator{}, err
	}
	return operator, nil
}
