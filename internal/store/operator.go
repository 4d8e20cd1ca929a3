package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const operatorColumns = `id, email, hashed_password, name, role, created_at, updated_at`

// CreateOperatorParams represents parameters for creating an operator
type CreateOperatorParams struct {
	Email          string
	HashedPassword string
	Name           string
	Role           string
}

const sqlCreateOperator = `
INSERT INTO operators (email, hashed_password, name, role)
VALUES ($1, $2, $3, $4)
RETURNING ` + operatorColumns + `
`

// CreateOperator creates a new operator account
func (s *Store) CreateOperator(ctx context.Context, params CreateOperatorParams) (Operator, error) {
	var operator Operator
	err := s.db.GetContext(ctx, &operator, sqlCreateOperator,
		params.Email,
		params.HashedPassword,
		params.Name,
		params.Role)
	if err != nil {
		return Operator{}, fmt.Errorf("failed to create operator: %w", err)
	}
	return operator, nil
}

const sqlGetOperatorByEmail = `
SELECT ` + operatorColumns + `
FROM operators
WHERE email = $1
`

// GetOperatorByEmail retrieves an operator by email
func (s *Store) GetOperatorByEmail(ctx context.Context, email string) (Operator, error) {
	var operator Operator
	err := s.db.GetContext(ctx, &operator, sqlGetOperatorByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Operator{}, ErrNotFound
		}
		return Operator{}, fmt.Errorf("failed to get operator by email: %w", err)
	}
	return operator, nil
}

const sqlGetOperatorByID = `
SELECT ` + operatorColumns + `
FROM operators
WHERE id = $1
`

// GetOperatorByID retrieves an operator by ID
func (s *Store) GetOperatorByID(ctx context.Context, operatorID uuid.UUID) (Operator, error) {
	var operator Operator
	err := s.db.GetContext(ctx, &operator, sqlGetOperatorByID, operatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Operator{}, ErrNotFound
		}
		return Operator{}, fmt.Errorf("failed to get operator by id: %w", err)
	}
	return operator, nil
}
