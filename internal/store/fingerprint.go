package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const fingerprintColumns = `id, lead_id, device_type, user_agent, screen_width, screen_height, pixel_ratio, timezone, language, platform, canvas_hash, audio_hash, webgl_hash, created_at, updated_at`

// CreateFingerprintParams represents parameters for creating a fingerprint
type CreateFingerprintParams struct {
	LeadID     uuid.UUID
	DeviceType string
	UserAgent  string

	ScreenWidth  int
	ScreenHeight int
	PixelRatio   float64

	Timezone string
	Language string
	Platform string

	CanvasHash string
	AudioHash  string
	WebGLHash  string
}

const sqlCreateFingerprint = `
INSERT INTO fingerprints (lead_id, device_type, user_agent, screen_width, screen_height, pixel_ratio, timezone, language, platform, canvas_hash, audio_hash, webgl_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + fingerprintColumns + `
`

// CreateFingerprint persists a synthetic device profile for a lead
func (s *Store) CreateFingerprint(ctx context.Context, params CreateFingerprintParams) (Fingerprint, error) {
	var fingerprint Fingerprint
	err := s.db.GetContext(ctx, &fingerprint, sqlCreateFingerprint,
		params.LeadID,
		params.DeviceType,
		params.UserAgent,
		params.ScreenWidth,
		params.ScreenHeight,
		params.PixelRatio,
		params.Timezone,
		params.Language,
		params.Platform,
		params.CanvasHash,
		params.AudioHash,
		params.WebGLHash)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("failed to create fingerprint: %w", err)
	}
	return fingerprint, nil
}

const sqlGetFingerprintByLeadID = `
SELECT ` + fingerprintColumns + `
FROM fingerprints
WHERE lead_id = $1
`

// GetFingerprintByLeadID retrieves a lead's fingerprint
func (s *Store) GetFingerprintByLeadID(ctx context.Context, leadID uuid.UUID) (Fingerprint, error) {
	var fingerprint Fingerprint
	err := s.db.GetContext(ctx, &fingerprint, sqlGetFingerprintByLeadID, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Fingerprint{}, ErrNotFound
		}
		return Fingerprint{}, fmt.Errorf("failed to get fingerprint by lead id: %w", err)
	}
	return fingerprint, nil
}

const sqlDeleteFingerprintByLeadID = `
DELETE FROM fingerprints WHERE lead_id = $1
`

// DeleteFingerprintByLeadID removes a lead's fingerprint. Fingerprints are
// replaced wholesale on a device-type change.
func (s *Store) DeleteFingerprintByLeadID(ctx context.Context, leadID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlDeleteFingerprintByLeadID, leadID)
	if err != nil {
		return fmt.Errorf("failed to delete fingerprint by lead id: %w", err)
	}
	return nil
}
