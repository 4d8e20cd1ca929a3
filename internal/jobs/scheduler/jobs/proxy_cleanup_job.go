package jobs

import (
	"context"
	"time"

	"leadflow-server/internal/observability"
	processor "leadflow-server/internal/proxies/processor"
)

// ProxyCleanupJob sweeps proxies past their TTL
type ProxyCleanupJob struct {
	proxies  *processor.ProxyProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewProxyCleanupJob creates a new expired proxy sweep job
func NewProxyCleanupJob(proxies *processor.ProxyProcessor, logger *observability.Logger, interval time.Duration) *ProxyCleanupJob {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	return &ProxyCleanupJob{
		proxies:  proxies,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *ProxyCleanupJob) Name() string {
	return "proxy_cleanup"
}

// Schedule returns how often the job should run
func (j *ProxyCleanupJob) Schedule() time.Duration {
	return j.interval
}

// Run deletes expired idle proxies and flags expired busy ones
func (j *ProxyCleanupJob) Run(ctx context.Context) error {
	return j.proxies.CleanupExpired(ctx)
}
