package jobs

import (
	"context"
	"time"

	"leadflow-server/internal/observability"
	processor "leadflow-server/internal/proxies/processor"
)

// ProxyHealthJob probes the active proxy pool on a schedule
type ProxyHealthJob struct {
	proxies  *processor.ProxyProcessor
	logger   *observability.Logger
	interval time.Duration
}

// NewProxyHealthJob creates a new proxy health check job
func NewProxyHealthJob(proxies *processor.ProxyProcessor, logger *observability.Logger, interval time.Duration) *ProxyHealthJob {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	return &ProxyHealthJob{
		proxies:  proxies,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *ProxyHealthJob) Name() string {
	return "proxy_health_check"
}

// Schedule returns how often the job should run
func (j *ProxyHealthJob) Schedule() time.Duration {
	return j.interval
}

// Run probes every active proxy once
func (j *ProxyHealthJob) Run(ctx context.Context) error {
	return j.proxies.RunHealthChecks(ctx)
}
