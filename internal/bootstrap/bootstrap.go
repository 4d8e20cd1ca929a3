package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"leadflow-server/internal/config"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	authHandler "leadflow-server/internal/auth/handler"
	authProcessor "leadflow-server/internal/auth/processor"
	kafkaClient "leadflow-server/internal/clients/kafka"
	"leadflow-server/internal/clients/proxyrotation"
	redisClient "leadflow-server/internal/clients/redis"
	"leadflow-server/internal/events"
	fingerprintProcessor "leadflow-server/internal/fingerprints/processor"
	injectionHandler "leadflow-server/internal/injection/handler"
	injectionProcessor "leadflow-server/internal/injection/processor"
	"leadflow-server/internal/injection/progress"
	"leadflow-server/internal/injection/worker"
	"leadflow-server/internal/jobs/scheduler"
	"leadflow-server/internal/jobs/scheduler/jobs"
	leadsHandler "leadflow-server/internal/leads/handler"
	"leadflow-server/internal/leads/selector"
	ordersHandler "leadflow-server/internal/orders/handler"
	ordersProcessor "leadflow-server/internal/orders/processor"
	proxiesHandler "leadflow-server/internal/proxies/handler"
	proxiesProcessor "leadflow-server/internal/proxies/processor"
	"leadflow-server/internal/ratelimit"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      authHandler.Handler
	OrdersHandler    ordersHandler.Handler
	LeadsHandler     leadsHandler.Handler
	ProxiesHandler   proxiesHandler.Handler
	InjectionHandler injectionHandler.Handler

	// Cross-cutting services
	RateLimiter *ratelimit.Service
	Scheduler   *scheduler.Scheduler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis (optional, rate limiting degrades without it)
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize Kafka producer and event publisher (optional)
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: strings.Split(cfg.Kafka.Brokers, ","),
			Topic:   cfg.Kafka.Topic,
		}, logger)
	}
	eventPublisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize proxy pool
	rotationClient := proxyrotation.NewClient(
		cfg.Proxy.ProviderBaseURL,
		cfg.Proxy.ProviderUsername,
		cfg.Proxy.ProviderPassword,
		logger,
	)
	proxyProc := proxiesProcessor.New(&deps.Store, rotationClient, proxiesProcessor.Config{
		TTL:             cfg.Proxy.TTL,
		MaxFailedChecks: cfg.Proxy.MaxFailedChecks,
		MaxConnections:  cfg.Proxy.MaxConnections,
	}, logger)
	deps.ProxiesHandler = proxiesHandler.New(proxyProc, logger)

	// Initialize lead selection and order engine
	leadSelector := selector.New(&deps.Store, logger)
	orderProc := ordersProcessor.New(&deps.Store, &leadSelector, eventPublisher, logger)
	deps.OrdersHandler = ordersHandler.New(orderProc, logger)
	deps.LeadsHandler = leadsHandler.New(&deps.Store, logger)

	// Initialize fingerprint assignment
	fingerprintProc := fingerprintProcessor.New(&deps.Store, logger)

	// Initialize injection orchestrator
	workerRunner := worker.NewRunner(cfg.Injection.WorkerCommand, cfg.Injection.WorkerScript, logger)
	progressHub := progress.NewHub(logger)
	injectionProc := injectionProcessor.New(
		&deps.Store,
		&proxyProc,
		&fingerprintProc,
		&workerRunner,
		eventPublisher,
		progressHub,
		injectionProcessor.Config{
			TargetURL:      cfg.Injection.TargetURL,
			InterLeadDelay: cfg.Injection.InterLeadDelay,
			WorkerTimeout:  cfg.Injection.WorkerTimeout,
		},
		logger,
	)
	deps.InjectionHandler = injectionHandler.New(injectionProc, progressHub, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	// Initialize rate limiting
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.Server.RateLimitPerMinute, logger)

	// Initialize scheduled jobs
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewProxyHealthJob(&proxyProc, logger, cfg.Proxy.HealthCheckInterval))
	deps.Scheduler.Register(jobs.NewProxyCleanupJob(&proxyProc, logger, cfg.Proxy.CleanupInterval))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
}
