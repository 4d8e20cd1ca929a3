package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"

	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
)

// FingerprintStore defines the database operations required by FingerprintProcessor
type FingerprintStore interface {
	GetFingerprintByLeadID(ctx context.Context, leadID uuid.UUID) (store.Fingerprint, error)
	CreateFingerprint(ctx context.Context, params store.CreateFingerprintParams) (store.Fingerprint, error)
	DeleteFingerprintByLeadID(ctx context.Context, leadID uuid.UUID) error
	SetLeadFingerprint(ctx context.Context, leadID, fingerprintID uuid.UUID) error
}

// DeviceSelection carries an order's device assignment policy
type DeviceSelection struct {
	Mode  string
	Types []string
	Ratio map[string]interface{}
}

const defaultDeviceType = store.DeviceTypeAndroid

var knownDeviceTypes = map[string]bool{
	store.DeviceTypeWindows: true,
	store.DeviceTypeAndroid: true,
	store.DeviceTypeIOS:     true,
	store.DeviceTypeMac:     true,
}

// deviceProfile is the raw material a synthetic fingerprint is built from
type deviceProfile struct {
	userAgents []string
	screens    [][2]int
	pixelRatio float64
	platform   string
}

var deviceProfiles = map[string]deviceProfile{
	store.DeviceTypeWindows: {
		userAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36 Edg/123.0.2420.81",
		},
		screens:    [][2]int{{1920, 1080}, {2560, 1440}, {1366, 768}},
		pixelRatio: 1.0,
		platform:   "Win32",
	},
	store.DeviceTypeAndroid: {
		userAgents: []string{
			"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
			"Mozilla/5.0 (Linux; Android 13; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Mobile Safari/537.36",
			"Mozilla/5.0 (Linux; Android 14; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
		},
		screens:    [][2]int{{412, 915}, {360, 800}, {393, 873}},
		pixelRatio: 2.625,
		platform:   "Linux armv8l",
	},
	store.DeviceTypeIOS: {
		userAgents: []string{
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
		},
		screens:    [][2]int{{390, 844}, {393, 852}, {430, 932}},
		pixelRatio: 3.0,
		platform:   "iPhone",
	},
	store.DeviceTypeMac: {
		userAgents: []string{
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		},
		screens:    [][2]int{{1440, 900}, {1680, 1050}, {2560, 1600}},
		pixelRatio: 2.0,
		platform:   "MacIntel",
	},
}

var timezones = []string{
	"Europe/London", "Europe/Berlin", "Europe/Sofia", "Europe/Riga",
	"Europe/Madrid", "Europe/Rome", "America/New_York", "America/Chicago",
}

var languages = []string{"en-US", "en-GB", "de-DE", "bg-BG", "lv-LV", "es-ES", "it-IT"}

type FingerprintProcessor struct {
	store  FingerprintStore
	logger *observability.Logger
}

func New(store FingerprintStore, logger *observability.Logger) FingerprintProcessor {
	return FingerprintProcessor{
		store:  store,
		logger: logger,
	}
}

// EnsureFingerprint returns the lead's existing fingerprint or synthesizes
// one from the order's device policy. An existing fingerprint is kept as is
// unless the policy pins a specific device type the lead does not match, in
// which case it is replaced wholesale.
func (p *FingerprintProcessor) EnsureFingerprint(ctx context.Context, lead store.Lead, selection DeviceSelection, leadIndex int) (store.Fingerprint, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_id", Value: lead.ID.String()},
	)

	deviceType := p.deviceTypeFor(selection, leadIndex)

	existing, err := p.store.GetFingerprintByLeadID(ctx, lead.ID)
	if err == nil {
		if selection.Mode != store.DeviceSelectionBulk || existing.DeviceType == deviceType {
			return existing, nil
		}
		// Device type changed under a pinned policy; no partial edits.
		if err := p.store.DeleteFingerprintByLeadID(ctx, lead.ID); err != nil {
			p.logger.Error(ctx, "failed to replace stale fingerprint", err)
			return store.Fingerprint{}, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up fingerprint", err)
		return store.Fingerprint{}, err
	}

	fingerprint, err := p.store.CreateFingerprint(ctx, synthesize(lead.ID, deviceType))
	if err != nil {
		p.logger.Error(ctx, "failed to create fingerprint", err)
		return store.Fingerprint{}, err
	}
	if err := p.store.SetLeadFingerprint(ctx, lead.ID, fingerprint.ID); err != nil {
		p.logger.Error(ctx, "failed to bind fingerprint to lead", err)
		return store.Fingerprint{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "device_type", Value: deviceType},
	), "fingerprint assigned")
	return fingerprint, nil
}

// deviceTypeFor resolves the device type for one lead under the order's
// selection mode. Anything invalid falls back to the default type.
func (p *FingerprintProcessor) deviceTypeFor(selection DeviceSelection, leadIndex int) string {
	switch selection.Mode {
	case store.DeviceSelectionBulk:
		if len(selection.Types) > 0 && knownDeviceTypes[selection.Types[0]] {
			return selection.Types[0]
		}
	case store.DeviceSelectionIndividual:
		if len(selection.Types) > 0 {
			candidate := selection.Types[leadIndex%len(selection.Types)]
			if knownDeviceTypes[candidate] {
				return candidate
			}
		}
	case store.DeviceSelectionRatio:
		if candidate, ok := weightedPick(selection.Ratio); ok {
			return candidate
		}
	case store.DeviceSelectionRandom:
		return randomDeviceType()
	}
	return defaultDeviceType
}

func randomDeviceType() string {
	types := []string{store.DeviceTypeWindows, store.DeviceTypeAndroid, store.DeviceTypeIOS, store.DeviceTypeMac}
	return types[rand.Intn(len(types))]
}

// weightedPick draws a device type proportionally to its ratio weight.
// Unknown types and non-numeric weights are ignored.
func weightedPick(ratio map[string]interface{}) (string, bool) {
	type entry struct {
		deviceType string
		weight     float64
	}
	var entries []entry
	var total float64
	for _, deviceType := range []string{store.DeviceTypeWindows, store.DeviceTypeAndroid, store.DeviceTypeIOS, store.DeviceTypeMac} {
		raw, ok := ratio[deviceType]
		if !ok {
			continue
		}
		weight := toFloat(raw)
		if weight <= 0 {
			continue
		}
		entries = append(entries, entry{deviceType: deviceType, weight: weight})
		total += weight
	}
	if total == 0 {
		return "", false
	}
	draw := rand.Float64() * total
	for _, e := range entries {
		draw -= e.weight
		if draw < 0 {
			return e.deviceType, true
		}
	}
	return entries[len(entries)-1].deviceType, true
}

func toFloat(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// synthesize builds a device profile for a lead. Signature hashes are
// seeded from the lead ID plus randomness so two leads never share one.
func synthesize(leadID uuid.UUID, deviceType string) store.CreateFingerprintParams {
	profile, ok := deviceProfiles[deviceType]
	if !ok {
		profile = deviceProfiles[defaultDeviceType]
		deviceType = defaultDeviceType
	}

	screen := profile.screens[rand.Intn(len(profile.screens))]
	return store.CreateFingerprintParams{
		LeadID:       leadID,
		DeviceType:   deviceType,
		UserAgent:    profile.userAgents[rand.Intn(len(profile.userAgents))],
		ScreenWidth:  screen[0],
		ScreenHeight: screen[1],
		PixelRatio:   profile.pixelRatio,
		Timezone:     timezones[rand.Intn(len(timezones))],
		Language:     languages[rand.Intn(len(languages))],
		Platform:     profile.platform,
		CanvasHash:   signatureHash(leadID, "canvas"),
		AudioHash:    signatureHash(leadID, "audio"),
		WebGLHash:    signatureHash(leadID, "webgl"),
	}
}

func signatureHash(leadID uuid.UUID, kind string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", leadID, kind, rand.Int63())))
	return hex.EncodeToString(sum[:16])
}
