package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadflow-server/internal/clients/proxyrotation"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
)

// ProxyStore defines the database operations required by ProxyProcessor
type ProxyStore interface {
	CreateProxy(ctx context.Context, params store.CreateProxyParams) (store.Proxy, error)
	GetProxyByID(ctx context.Context, proxyID uuid.UUID) (store.Proxy, error)
	UpdateProxyStatus(ctx context.Context, proxyID uuid.UUID, status string) error
	AssignLeadToProxy(ctx context.Context, proxyID, leadID uuid.UUID) error
	UnassignLeadFromProxy(ctx context.Context, proxyID uuid.UUID) error
	SaveProxyHealth(ctx context.Context, proxyID uuid.UUID, checkedAt time.Time, ok bool, failedChecks int) error
	ListActiveProxies(ctx context.Context) ([]store.Proxy, error)
	ListProxies(ctx context.Context, limit int) ([]store.Proxy, error)
	DeleteExpiredIdleProxies(ctx context.Context, now time.Time) (int64, error)
	FlagExpiredBusyProxies(ctx context.Context, now time.Time) (int64, error)
	CreateProxyAssignment(ctx context.Context, params store.CreateProxyAssignmentParams) (store.ProxyAssignment, error)
	UpdateProxyAssignmentStatus(ctx context.Context, assignmentID uuid.UUID, status string, completedAt time.Time) error
	GetActiveProxyAssignment(ctx context.Context, leadID, orderID uuid.UUID) (store.ProxyAssignment, error)
	FailActiveAssignmentsForProxy(ctx context.Context, proxyID uuid.UUID, failedAt time.Time) error
}

// RotationClient defines the upstream provider operations required by ProxyProcessor
type RotationClient interface {
	GetProxy(ctx context.Context, country string, countryCode string) (proxyrotation.ProxyDetails, error)
	Probe(ctx context.Context, cfg proxyrotation.ProxyConfig) error
}

var (
	ErrProvisionFailed   = errors.New("proxy failed its post-provision probe")
	ErrProxySlotOccupied = errors.New("proxy already has an assigned lead")
	ErrProxyNotFound     = errors.New("proxy not found")
)

// Config carries the pool's lifecycle knobs
type Config struct {
	TTL             time.Duration
	MaxFailedChecks int
	MaxConnections  int
}

type ProxyProcessor struct {
	store    ProxyStore
	rotation RotationClient
	config   Config
	logger   *observability.Logger
}

func New(store ProxyStore, rotation RotationClient, config Config, logger *observability.Logger) ProxyProcessor {
	return ProxyProcessor{
		store:    store,
		rotation: rotation,
		config:   config,
		logger:   logger,
	}
}

// Provision checks out a fresh endpoint from the provider, persists it in
// the testing state and probes it. Only a proxy that passes the probe goes
// active; a failed probe leaves the row marked failed so the caller can
// retry with a new endpoint.
func (p *ProxyProcessor) Provision(ctx context.Context, country string, countryCode string) (store.Proxy, error) {
	details, err := p.rotation.GetProxy(ctx, country, countryCode)
	if err != nil {
		p.logger.Error(ctx, "failed to check out proxy from provider", err)
		return store.Proxy{}, err
	}

	proxy, err := p.store.CreateProxy(ctx, store.CreateProxyParams{
		SessionID:        details.SessionID,
		OriginalUsername: details.OriginalUsername,
		Server:           details.Config.Server,
		Host:             details.Config.Host,
		Port:             details.Config.Port,
		Username:         details.Config.Username,
		Password:         details.Config.Password,
		Country:          country,
		MaxConnections:   p.config.MaxConnections,
		ExpiresAt:        time.Now().Add(p.config.TTL),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist provisioned proxy", err)
		return store.Proxy{}, err
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "proxy_id", Value: proxy.ID.String()},
	)

	if err := p.rotation.Probe(ctx, details.Config); err != nil {
		p.logger.Warn(ctx, "provisioned proxy failed probe")
		if updateErr := p.store.UpdateProxyStatus(ctx, proxy.ID, store.ProxyStatusFailed); updateErr != nil {
			p.logger.Error(ctx, "failed to mark unreachable proxy failed", updateErr)
		}
		return store.Proxy{}, fmt.Errorf("%w: %v", ErrProvisionFailed, err)
	}

	if err := p.store.UpdateProxyStatus(ctx, proxy.ID, store.ProxyStatusActive); err != nil {
		p.logger.Error(ctx, "failed to activate proxy", err)
		return store.Proxy{}, err
	}
	if err := p.store.SaveProxyHealth(ctx, proxy.ID, time.Now(), true, 0); err != nil {
		p.logger.Error(ctx, "failed to record initial proxy health", err)
	}

	proxy.Status = store.ProxyStatusActive
	p.logger.Info(ctx, "proxy provisioned and active")
	return proxy, nil
}

// AssignLead claims the proxy's single slot for a lead and opens the
// assignment record. The slot claim is a compare-and-set on the database
// row, so two concurrent claims cannot both win.
func (p *ProxyProcessor) AssignLead(ctx context.Context, proxyID, leadID, orderID uuid.UUID) (store.ProxyAssignment, error) {
	if err := p.store.AssignLeadToProxy(ctx, proxyID, leadID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ProxyAssignment{}, ErrProxySlotOccupied
		}
		p.logger.Error(ctx, "failed to claim proxy slot", err)
		return store.ProxyAssignment{}, err
	}

	assignment, err := p.store.CreateProxyAssignment(ctx, store.CreateProxyAssignmentParams{
		ProxyID: proxyID,
		LeadID:  leadID,
		OrderID: orderID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to open proxy assignment, freeing slot", err)
		if freeErr := p.store.UnassignLeadFromProxy(ctx, proxyID); freeErr != nil {
			p.logger.Error(ctx, "failed to free proxy slot during rollback", freeErr)
		}
		return store.ProxyAssignment{}, err
	}
	return assignment, nil
}

// UnassignLead closes the lead's active assignment with a terminal status
// and frees the proxy slot.
func (p *ProxyProcessor) UnassignLead(ctx context.Context, proxyID, leadID, orderID uuid.UUID, terminalStatus string) error {
	assignment, err := p.store.GetActiveProxyAssignment(ctx, leadID, orderID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to look up active proxy assignment", err)
		return err
	}
	if err == nil {
		if err := p.store.UpdateProxyAssignmentStatus(ctx, assignment.ID, terminalStatus, time.Now()); err != nil {
			p.logger.Error(ctx, "failed to close proxy assignment", err)
			return err
		}
	}
	if err := p.store.UnassignLeadFromProxy(ctx, proxyID); err != nil {
		p.logger.Error(ctx, "failed to free proxy slot", err)
		return err
	}
	return nil
}

// GetProxy retrieves a proxy by ID
func (p *ProxyProcessor) GetProxy(ctx context.Context, proxyID uuid.UUID) (store.Proxy, error) {
	proxy, err := p.store.GetProxyByID(ctx, proxyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Proxy{}, ErrProxyNotFound
		}
		return store.Proxy{}, err
	}
	return proxy, nil
}

// ListProxies returns the most recently provisioned proxies
func (p *ProxyProcessor) ListProxies(ctx context.Context, limit int) ([]store.Proxy, error) {
	return p.store.ListProxies(ctx, limit)
}

// RunHealthChecks probes every active proxy once. A successful probe
// resets the failure streak; reaching the consecutive-failure limit fails
// the proxy and cascades to its current assignment.
func (p *ProxyProcessor) RunHealthChecks(ctx context.Context) error {
	proxies, err := p.store.ListActiveProxies(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list proxies for health check", err)
		return err
	}

	now := time.Now()
	for _, proxy := range proxies {
		proxyCtx := observability.WithFields(ctx,
			observability.Field{Key: "proxy_id", Value: proxy.ID.String()},
		)

		if !proxy.ExpiresAt.After(now) {
			// The sweep job owns expiry; skip rather than double-handle.
			continue
		}

		probeErr := p.rotation.Probe(proxyCtx, proxyrotation.ProxyConfig{
			Server:   proxy.Server,
			Username: proxy.Username,
			Password: proxy.Password,
			Host:     proxy.Host,
			Port:     proxy.Port,
		})
		if probeErr == nil {
			if err := p.store.SaveProxyHealth(proxyCtx, proxy.ID, now, true, 0); err != nil {
				p.logger.Error(proxyCtx, "failed to record proxy health", err)
			}
			continue
		}

		failedChecks := proxy.FailedChecks + 1
		if err := p.store.SaveProxyHealth(proxyCtx, proxy.ID, now, false, failedChecks); err != nil {
			p.logger.Error(proxyCtx, "failed to record proxy health", err)
			continue
		}
		if failedChecks < p.config.MaxFailedChecks {
			p.logger.Warn(proxyCtx, "proxy failed health probe")
			continue
		}

		p.logger.Warn(proxyCtx, "proxy exceeded failure limit, marking failed")
		if err := p.store.UpdateProxyStatus(proxyCtx, proxy.ID, store.ProxyStatusFailed); err != nil {
			p.logger.Error(proxyCtx, "failed to mark proxy failed", err)
			continue
		}
		if err := p.store.FailActiveAssignmentsForProxy(proxyCtx, proxy.ID, now); err != nil {
			p.logger.Error(proxyCtx, "failed to cascade proxy failure to assignment", err)
		}
	}
	return nil
}

// CleanupExpired removes idle proxies past their TTL and flags busy ones
// so they are removed once their slot frees up.
func (p *ProxyProcessor) CleanupExpired(ctx context.Context) error {
	now := time.Now()
	deleted, err := p.store.DeleteExpiredIdleProxies(ctx, now)
	if err != nil {
		p.logger.Error(ctx, "failed to delete expired idle proxies", err)
		return err
	}
	flagged, err := p.store.FlagExpiredBusyProxies(ctx, now)
	if err != nil {
		p.logger.Error(ctx, "failed to flag expired busy proxies", err)
		return err
	}
	if deleted > 0 || flagged > 0 {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "deleted", Value: deleted},
			observability.Field{Key: "flagged", Value: flagged},
		), "expired proxy sweep complete")
	}
	return nil
}
