package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"leadflow-server/internal/clients/proxyrotation"
	fingerprints "leadflow-server/internal/fingerprints/processor"
	"leadflow-server/internal/injection/progress"
	"leadflow-server/internal/injection/worker"
	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"

	"github.com/google/uuid"
)

// InjectionStore defines the database operations required by InjectionProcessor
type InjectionStore interface {
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	ListOrderLeads(ctx context.Context, orderID uuid.UUID) ([]store.Lead, error)
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error)

	UpdateInjectionStatus(ctx context.Context, orderID uuid.UUID, status string) error
	SetTotalToInject(ctx context.Context, orderID uuid.UUID, total int) error
	SetInjectionStartedAt(ctx context.Context, orderID uuid.UUID, startedAt time.Time) error
	SetInjectionCompletedAt(ctx context.Context, orderID uuid.UUID, completedAt time.Time) error
	IncrementSuccessfulInjections(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	IncrementFailedInjections(ctx context.Context, orderID uuid.UUID) (store.Order, error)
	IncrementBrokersAssigned(ctx context.Context, orderID uuid.UUID) error
	SetBrokerAssignmentPending(ctx context.Context, orderID uuid.UUID, pending bool) error
	SetFTDHandlingStatus(ctx context.Context, orderID uuid.UUID, status string) error
	DecrementFTDsPendingManualFill(ctx context.Context, orderID uuid.UUID) (int, error)

	HasSuccessfulInjection(ctx context.Context, leadID, orderID uuid.UUID) (bool, error)
	AppendBrokerHistory(ctx context.Context, params store.AppendBrokerHistoryParams) (store.BrokerHistoryEntry, error)
	UpdateBrokerHistoryStatus(ctx context.Context, entryID uuid.UUID, status string) error
	AttachBrokerToHistory(ctx context.Context, entryID, brokerID uuid.UUID, domain string) error
	GetCurrentBrokerHistory(ctx context.Context, leadID, orderID uuid.UUID) (store.BrokerHistoryEntry, error)
	ListBrokerHistoryByOrder(ctx context.Context, orderID uuid.UUID) ([]store.BrokerHistoryEntry, error)
	ListBrokerIDsUsedByLead(ctx context.Context, leadID uuid.UUID) ([]uuid.UUID, error)

	GetBrokerByDomain(ctx context.Context, domain string) (store.Broker, error)
	GetBrokerByID(ctx context.Context, brokerID uuid.UUID) (store.Broker, error)
	CreateBroker(ctx context.Context, params store.CreateBrokerParams) (store.Broker, error)
	ListActiveBrokersByNetwork(ctx context.Context, networkID uuid.UUID) ([]store.Broker, error)

	WakeLead(ctx context.Context, leadID uuid.UUID) error
	SetLeadSleep(ctx context.Context, leadID uuid.UUID, details store.JSONB) error
}

// ProxyPool defines the proxy operations required by InjectionProcessor
type ProxyPool interface {
	Provision(ctx context.Context, country string, countryCode string) (store.Proxy, error)
	AssignLead(ctx context.Context, proxyID, leadID, orderID uuid.UUID) (store.ProxyAssignment, error)
	UnassignLead(ctx context.Context, proxyID, leadID, orderID uuid.UUID, terminalStatus string) error
}

// FingerprintAssigner defines the fingerprint operations required by InjectionProcessor
type FingerprintAssigner interface {
	EnsureFingerprint(ctx context.Context, lead store.Lead, selection fingerprints.DeviceSelection, leadIndex int) (store.Fingerprint, error)
}

// WorkerRunner defines the automation worker invocation
type WorkerRunner interface {
	Run(ctx context.Context, task worker.Task) (worker.Result, error)
}

// EventDispatcher defines the lifecycle event operations required by InjectionProcessor
type EventDispatcher interface {
	DispatchInjectionStarted(ctx context.Context, order store.Order)
	DispatchLeadInjected(ctx context.Context, orderID, leadID uuid.UUID, success bool, domain string)
	DispatchInjectionCompleted(ctx context.Context, order store.Order)
}

// ProgressSink receives progress snapshots for live subscribers
type ProgressSink interface {
	Publish(orderID uuid.UUID, snapshot progress.Snapshot)
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInjectionDisabled  = errors.New("injection is not enabled for this order")
	ErrInvalidTransition  = errors.New("injection status does not allow this transition")
	ErrLeadNotInOrder     = errors.New("lead does not belong to this order")
	ErrNotFTDLead         = errors.New("lead is not an ftd")
	ErrBrokerRequired     = errors.New("a broker id or domain is required")
	ErrBadScheduledWindow = errors.New("scheduled window bounds are invalid")
)

// Config carries the orchestrator's pacing knobs
type Config struct {
	TargetURL      string
	InterLeadDelay time.Duration
	WorkerTimeout  time.Duration
}

type InjectionProcessor struct {
	store        InjectionStore
	proxies      ProxyPool
	fingerprints FingerprintAssigner
	worker       WorkerRunner
	dispatcher   EventDispatcher
	progress     ProgressSink
	config       Config
	logger       *observability.Logger
}

func New(
	store InjectionStore,
	proxies ProxyPool,
	fingerprints FingerprintAssigner,
	workerRunner WorkerRunner,
	dispatcher EventDispatcher,
	progressSink ProgressSink,
	config Config,
	logger *observability.Logger,
) *InjectionProcessor {
	return &InjectionProcessor{
		store:        store,
		proxies:      proxies,
		fingerprints: fingerprints,
		worker:       workerRunner,
		dispatcher:   dispatcher,
		progress:     progressSink,
		config:       config,
		logger:       logger,
	}
}

// Start flips the order to in_progress and launches the injection run in
// the background. Legal only from pending or paused; resume is the same
// call. totalToInject is computed on first start and never revised.
func (p *InjectionProcessor) Start(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
	)

	order, err := p.loadOrder(ctx, orderID)
	if err != nil {
		return store.Order{}, err
	}
	if !order.InjectionEnabled {
		return store.Order{}, ErrInjectionDisabled
	}
	switch order.InjectionStatus {
	case store.OrderInjectionStatusPending, store.OrderInjectionStatusPaused:
	default:
		return store.Order{}, ErrInvalidTransition
	}

	if order.TotalToInject == 0 {
		leads, err := p.store.ListOrderLeads(ctx, orderID)
		if err != nil {
			p.logger.Error(ctx, "failed to list order leads", err)
			return store.Order{}, err
		}
		total := countInjectable(leads, order.InjectionIncludeTypes)
		if err := p.store.SetTotalToInject(ctx, orderID, total); err != nil {
			p.logger.Error(ctx, "failed to set total to inject", err)
			return store.Order{}, err
		}
		order.TotalToInject = total
	}

	if err := p.store.UpdateInjectionStatus(ctx, orderID, store.OrderInjectionStatusInProgress); err != nil {
		p.logger.Error(ctx, "failed to mark injection in progress", err)
		return store.Order{}, err
	}
	if err := p.store.SetInjectionStartedAt(ctx, orderID, time.Now()); err != nil {
		p.logger.Error(ctx, "failed to stamp injection start", err)
	}
	order.InjectionStatus = store.OrderInjectionStatusInProgress

	if p.dispatcher != nil {
		p.dispatcher.DispatchInjectionStarted(ctx, order)
	}
	p.publishProgress(order, nil)
	p.logger.Info(ctx, "injection started")

	// The run outlives the request; only its own checkpoints stop it.
	runCtx := observability.WithFields(context.Background(),
		observability.Field{Key: "order_id", Value: orderID.String()},
	)
	go p.processOrder(runCtx, order)

	return order, nil
}

// Pause moves a running injection to paused at the next checkpoint
func (p *InjectionProcessor) Pause(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	return p.transition(ctx, orderID, store.OrderInjectionStatusInProgress, store.OrderInjectionStatusPaused)
}

// Stop aborts the injection run. The in-flight lead still completes; the
// run halts at its next checkpoint.
func (p *InjectionProcessor) Stop(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
	)
	order, err := p.loadOrder(ctx, orderID)
	if err != nil {
		return store.Order{}, err
	}
	switch order.InjectionStatus {
	case store.OrderInjectionStatusInProgress, store.OrderInjectionStatusPaused:
	default:
		return store.Order{}, ErrInvalidTransition
	}
	if err := p.store.UpdateInjectionStatus(ctx, orderID, store.OrderInjectionStatusFailed); err != nil {
		p.logger.Error(ctx, "failed to mark injection stopped", err)
		return store.Order{}, err
	}
	if err := p.store.SetInjectionCompletedAt(ctx, orderID, time.Now()); err != nil {
		p.logger.Error(ctx, "failed to stamp injection stop", err)
	}
	order.InjectionStatus = store.OrderInjectionStatusFailed
	p.publishProgress(order, nil)
	p.logger.Info(ctx, "injection stopped")
	return order, nil
}

func (p *InjectionProcessor) transition(ctx context.Context, orderID uuid.UUID, from, to string) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
	)
	order, err := p.loadOrder(ctx, orderID)
	if err != nil {
		return store.Order{}, err
	}
	if order.InjectionStatus != from {
		return store.Order{}, ErrInvalidTransition
	}
	if err := p.store.UpdateInjectionStatus(ctx, orderID, to); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("failed to move injection to %s", to), err)
		return store.Order{}, err
	}
	order.InjectionStatus = to
	p.publishProgress(order, nil)
	return order, nil
}

func (p *InjectionProcessor) loadOrder(ctx context.Context, orderID uuid.UUID) (store.Order, error) {
	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to load order", err)
		return store.Order{}, err
	}
	return order, nil
}

// countInjectable counts order leads inside the include set. FTD leads
// are never auto-injected regardless of the configured set.
func countInjectable(leads []store.Lead, includeTypes []string) int {
	include := make(map[string]bool, len(includeTypes))
	for _, t := range includeTypes {
		include[t] = true
	}
	count := 0
	for _, lead := range leads {
		if lead.LeadType == store.LeadTypeFTD {
			continue
		}
		if include[lead.LeadType] {
			count++
		}
	}
	return count
}

// processOrder walks the order's injectable leads sequentially. Before
// each lead the order status is re-read; anything but in_progress halts
// the walk, which is how pause and stop take effect.
func (p *InjectionProcessor) processOrder(ctx context.Context, order store.Order) {
	leads, err := p.store.ListOrderLeads(ctx, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list order leads for injection", err)
		return
	}

	include := make(map[string]bool, len(order.InjectionIncludeTypes))
	for _, t := range order.InjectionIncludeTypes {
		include[t] = true
	}
	var injectable []store.Lead
	for _, lead := range leads {
		if lead.LeadType == store.LeadTypeFTD || !include[lead.LeadType] {
			continue
		}
		injectable = append(injectable, lead)
	}

	switch order.InjectionMode {
	case store.InjectionModeScheduled:
		p.runScheduled(ctx, order, injectable)
	default:
		p.runBulk(ctx, order, injectable)
	}
}

func (p *InjectionProcessor) runBulk(ctx context.Context, order store.Order, injectable []store.Lead) {
	for i, lead := range injectable {
		if !p.verifyInProgress(ctx, order.ID) {
			return
		}
		p.injectLead(ctx, order, lead, i)

		if i < len(injectable)-1 && p.config.InterLeadDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.config.InterLeadDelay):
			}
		}
	}
}

// runScheduled gives every lead a uniformly random offset inside the
// configured window, then fires them in offset order from one goroutine.
func (p *InjectionProcessor) runScheduled(ctx context.Context, order store.Order, injectable []store.Lead) {
	windowStart, windowEnd, err := parseScheduledWindow(order.ScheduledWindowStart, order.ScheduledWindowEnd, time.Now())
	if err != nil {
		p.logger.Error(ctx, "invalid scheduled window, falling back to bulk pacing", err)
		p.runBulk(ctx, order, injectable)
		return
	}

	type slot struct {
		lead  store.Lead
		index int
		fire  time.Time
	}
	slots := make([]slot, len(injectable))
	for i, lead := range injectable {
		slots[i] = slot{lead: lead, index: i, fire: randomTimeIn(windowStart, windowEnd)}
	}
	// Fire order is chronological regardless of pull order.
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[j].fire.Before(slots[i].fire) {
				slots[i], slots[j] = slots[j], slots[i]
			}
		}
	}

	for _, s := range slots {
		if wait := time.Until(s.fire); wait > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
		}
		// Deferred fire: the order may have been paused meanwhile.
		if !p.verifyInProgress(ctx, order.ID) {
			return
		}
		p.injectLead(ctx, order, s.lead, s.index)
	}
}

func (p *InjectionProcessor) verifyInProgress(ctx context.Context, orderID uuid.UUID) bool {
	order, err := p.store.GetOrderByID(ctx, orderID)
	if err != nil {
		p.logger.Error(ctx, "failed to re-read order at checkpoint", err)
		return false
	}
	if order.InjectionStatus != store.OrderInjectionStatusInProgress {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "injection_status", Value: order.InjectionStatus},
		), "injection run halting at checkpoint")
		return false
	}
	return true
}

// injectLead drives one lead through the full per-lead sequence. Every
// outcome is terminal for the lead within this run; failures never abort
// the batch.
func (p *InjectionProcessor) injectLead(ctx context.Context, order store.Order, lead store.Lead, leadIndex int) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_id", Value: lead.ID.String()},
	)

	done, err := p.store.HasSuccessfulInjection(ctx, lead.ID, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to check prior injection", err)
		p.recordFailure(ctx, order, lead, nil)
		return
	}
	if done {
		// Idempotent re-entry counts as success without re-running.
		p.logger.Info(ctx, "lead already injected, skipping")
		p.recordSuccess(ctx, order, lead, nil, "")
		return
	}

	if lead.BrokerAvailabilityStatus == store.BrokerAvailabilitySleep {
		if err := p.store.WakeLead(ctx, lead.ID); err != nil {
			p.logger.Error(ctx, "failed to wake lead", err)
			p.recordFailure(ctx, order, lead, nil)
			return
		}
	}

	if exhausted, err := p.brokersExhausted(ctx, order, lead); err != nil {
		p.logger.Error(ctx, "failed to check broker availability", err)
		p.recordFailure(ctx, order, lead, nil)
		return
	} else if exhausted {
		p.sleepLead(ctx, order, lead)
		p.recordFailure(ctx, order, lead, nil)
		return
	}

	fingerprint, err := p.fingerprints.EnsureFingerprint(ctx, lead, fingerprints.DeviceSelection{
		Mode:  order.DeviceSelectionMode,
		Types: order.DeviceTypes,
		Ratio: order.DeviceRatio,
	}, leadIndex)
	if err != nil {
		p.logger.Error(ctx, "failed to ensure fingerprint", err)
		p.recordFailure(ctx, order, lead, nil)
		return
	}

	entry, err := p.store.AppendBrokerHistory(ctx, store.AppendBrokerHistoryParams{
		LeadID:          lead.ID,
		OrderID:         order.ID,
		InjectionStatus: store.InjectionStatusPending,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to open broker history entry", err)
		p.recordFailure(ctx, order, lead, nil)
		return
	}

	proxy, err := p.proxies.Provision(ctx, lead.Country, lead.CountryCode)
	if err != nil {
		// No proxy, no attempt; the batch moves on.
		p.logger.Warn(ctx, "no usable proxy for lead")
		p.recordFailure(ctx, order, lead, &entry.ID)
		return
	}
	if _, err := p.proxies.AssignLead(ctx, proxy.ID, lead.ID, order.ID); err != nil {
		p.logger.Error(ctx, "failed to claim proxy for lead", err)
		p.recordFailure(ctx, order, lead, &entry.ID)
		return
	}

	workerCtx := ctx
	if p.config.WorkerTimeout > 0 {
		var cancel context.CancelFunc
		workerCtx, cancel = context.WithTimeout(ctx, p.config.WorkerTimeout)
		defer cancel()
	}
	result, err := p.worker.Run(workerCtx, worker.Task{
		LeadID:      lead.ID.String(),
		FirstName:   lead.FirstName,
		LastName:    lead.LastName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Country:     lead.Country,
		CountryCode: lead.CountryCode,
		Fingerprint: fingerprint,
		Proxy:       proxyConfig(proxy),
		TargetURL:   p.config.TargetURL,
	})
	if err != nil || !result.Success {
		if err != nil {
			p.logger.Error(ctx, "worker invocation failed", err)
		}
		if unassignErr := p.proxies.UnassignLead(ctx, proxy.ID, lead.ID, order.ID, store.ProxyAssignmentFailed); unassignErr != nil {
			p.logger.Error(ctx, "failed to release proxy after failure", unassignErr)
		}
		p.recordFailure(ctx, order, lead, &entry.ID)
		return
	}

	if unassignErr := p.proxies.UnassignLead(ctx, proxy.ID, lead.ID, order.ID, store.ProxyAssignmentCompleted); unassignErr != nil {
		p.logger.Error(ctx, "failed to release proxy after success", unassignErr)
	}
	p.recordSuccess(ctx, order, lead, &entry.ID, result.Domain)
}

// brokersExhausted reports whether the lead has already been routed to
// every active broker of the order's network.
func (p *InjectionProcessor) brokersExhausted(ctx context.Context, order store.Order, lead store.Lead) (bool, error) {
	if order.NetworkID == nil {
		return false, nil
	}
	brokers, err := p.store.ListActiveBrokersByNetwork(ctx, *order.NetworkID)
	if err != nil {
		return false, err
	}
	if len(brokers) == 0 {
		return false, nil
	}
	usedIDs, err := p.store.ListBrokerIDsUsedByLead(ctx, lead.ID)
	if err != nil {
		return false, err
	}
	used := make(map[uuid.UUID]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}
	for _, broker := range brokers {
		if !used[broker.ID] {
			return false, nil
		}
	}
	return true, nil
}

func (p *InjectionProcessor) sleepLead(ctx context.Context, order store.Order, lead store.Lead) {
	details := store.JSONB{
		"reason":   "no_available_brokers",
		"order_id": order.ID.String(),
		"slept_at": time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.store.SetLeadSleep(ctx, lead.ID, details); err != nil {
		p.logger.Error(ctx, "failed to put lead to sleep", err)
		return
	}
	p.logger.Info(ctx, "lead slept, no brokers remain for its network")
}

// recordFailure closes the attempt as failed and advances the order's
// counters. entryID is nil when the attempt failed before a history
// entry existed.
func (p *InjectionProcessor) recordFailure(ctx context.Context, order store.Order, lead store.Lead, entryID *uuid.UUID) {
	if entryID != nil {
		if err := p.store.UpdateBrokerHistoryStatus(ctx, *entryID, store.InjectionStatusFailed); err != nil {
			p.logger.Error(ctx, "failed to mark history entry failed", err)
		}
	}
	updated, err := p.store.IncrementFailedInjections(ctx, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to count failed injection", err)
		return
	}
	if p.dispatcher != nil {
		p.dispatcher.DispatchLeadInjected(ctx, order.ID, lead.ID, false, "")
	}
	p.publishProgress(updated, &lead.ID)
	p.maybeComplete(ctx, updated)
}

// recordSuccess closes the attempt as successful, resolves the broker
// behind the redirect domain and advances the order's counters.
func (p *InjectionProcessor) recordSuccess(ctx context.Context, order store.Order, lead store.Lead, entryID *uuid.UUID, domain string) {
	if entryID != nil {
		if domain != "" {
			if broker, err := p.resolveBroker(ctx, order, domain); err != nil {
				p.logger.Error(ctx, "failed to resolve broker, flagging for manual assignment", err)
				if pendErr := p.store.SetBrokerAssignmentPending(ctx, order.ID, true); pendErr != nil {
					p.logger.Error(ctx, "failed to flag broker assignment pending", pendErr)
				}
			} else {
				if err := p.store.AttachBrokerToHistory(ctx, *entryID, broker.ID, domain); err != nil {
					p.logger.Error(ctx, "failed to attach broker to history", err)
				} else if err := p.store.IncrementBrokersAssigned(ctx, order.ID); err != nil {
					p.logger.Error(ctx, "failed to count broker assignment", err)
				}
			}
		} else {
			p.logger.Warn(ctx, "worker reported no redirect domain")
			if err := p.store.SetBrokerAssignmentPending(ctx, order.ID, true); err != nil {
				p.logger.Error(ctx, "failed to flag broker assignment pending", err)
			}
		}
		if err := p.store.UpdateBrokerHistoryStatus(ctx, *entryID, store.InjectionStatusSuccessful); err != nil {
			p.logger.Error(ctx, "failed to mark history entry successful", err)
		}
	}

	updated, err := p.store.IncrementSuccessfulInjections(ctx, order.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to count successful injection", err)
		return
	}
	if p.dispatcher != nil {
		p.dispatcher.DispatchLeadInjected(ctx, order.ID, lead.ID, true, domain)
	}
	p.publishProgress(updated, &lead.ID)
	p.maybeComplete(ctx, updated)
}

// resolveBroker finds or creates the broker behind a redirect domain.
// Creation is an upsert keyed by domain, so concurrent discoveries of
// the same broker collapse to one row.
func (p *InjectionProcessor) resolveBroker(ctx context.Context, order store.Order, domain string) (store.Broker, error) {
	broker, err := p.store.GetBrokerByDomain(ctx, domain)
	if err == nil {
		return broker, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Broker{}, err
	}
	return p.store.CreateBroker(ctx, store.CreateBrokerParams{
		NetworkID: order.NetworkID,
		Name:      domain,
		Domain:    domain,
	})
}

// maybeComplete flips the order to completed once every injectable lead
// has a terminal outcome, and closes the broker phase when nothing is
// left pending.
func (p *InjectionProcessor) maybeComplete(ctx context.Context, order store.Order) {
	if order.TotalToInject == 0 {
		return
	}
	if order.SuccessfulInjections+order.FailedInjections < order.TotalToInject {
		return
	}
	if order.InjectionStatus == store.OrderInjectionStatusCompleted {
		return
	}

	if err := p.store.UpdateInjectionStatus(ctx, order.ID, store.OrderInjectionStatusCompleted); err != nil {
		p.logger.Error(ctx, "failed to mark injection completed", err)
		return
	}
	if err := p.store.SetInjectionCompletedAt(ctx, order.ID, time.Now()); err != nil {
		p.logger.Error(ctx, "failed to stamp injection completion", err)
	}
	order.InjectionStatus = store.OrderInjectionStatusCompleted

	if !order.BrokerAssignmentPending {
		if allAssigned, err := p.successesHaveBrokers(ctx, order.ID); err != nil {
			p.logger.Error(ctx, "failed to audit broker assignments", err)
		} else if allAssigned {
			p.logger.Info(ctx, "broker assignment phase completed")
		}
	}

	if p.dispatcher != nil {
		p.dispatcher.DispatchInjectionCompleted(ctx, order)
	}
	p.publishProgress(order, nil)
	p.logger.Info(ctx, "injection completed")
}

func (p *InjectionProcessor) successesHaveBrokers(ctx context.Context, orderID uuid.UUID) (bool, error) {
	entries, err := p.store.ListBrokerHistoryByOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.InjectionStatus == store.InjectionStatusSuccessful && entry.BrokerID == nil {
			return false, nil
		}
	}
	return true, nil
}

// CompleteFTD records an operator-supplied broker for an FTD lead. FTDs
// are never auto-injected; this is the only path that completes them.
func (p *InjectionProcessor) CompleteFTD(ctx context.Context, orderID, leadID uuid.UUID, brokerID *uuid.UUID, domain *string, operatorID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
	)

	order, err := p.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	lead, err := p.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotInOrder
		}
		return err
	}
	if lead.OrderID == nil || *lead.OrderID != orderID {
		return ErrLeadNotInOrder
	}
	if lead.LeadType != store.LeadTypeFTD {
		return ErrNotFTDLead
	}

	broker, err := p.brokerFromRef(ctx, order, brokerID, domain)
	if err != nil {
		return err
	}

	_, err = p.store.AppendBrokerHistory(ctx, store.AppendBrokerHistoryParams{
		LeadID:          leadID,
		BrokerID:        &broker.ID,
		OrderID:         orderID,
		AssignedBy:      &operatorID,
		InjectionStatus: store.InjectionStatusSuccessful,
		Domain:          &broker.Domain,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record ftd completion", err)
		return err
	}

	remaining, err := p.store.DecrementFTDsPendingManualFill(ctx, orderID)
	if err != nil {
		p.logger.Error(ctx, "failed to count ftd completion", err)
		return err
	}
	if remaining == 0 {
		if err := p.store.SetFTDHandlingStatus(ctx, orderID, store.FTDHandlingCompleted); err != nil {
			p.logger.Error(ctx, "failed to close ftd handling", err)
			return err
		}
	}
	p.logger.Info(ctx, "ftd completed manually")
	return nil
}

// AssignBrokerManually resolves a pending broker assignment after a
// successful injection whose redirect domain was missing or unknown.
func (p *InjectionProcessor) AssignBrokerManually(ctx context.Context, orderID, leadID uuid.UUID, domain string, operatorID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID.String()},
		observability.Field{Key: "lead_id", Value: leadID.String()},
	)
	if domain == "" {
		return ErrBrokerRequired
	}

	order, err := p.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	entry, err := p.store.GetCurrentBrokerHistory(ctx, leadID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotInOrder
		}
		return err
	}

	broker, err := p.resolveBroker(ctx, order, domain)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve broker for manual assignment", err)
		return err
	}
	if err := p.store.AttachBrokerToHistory(ctx, entry.ID, broker.ID, domain); err != nil {
		p.logger.Error(ctx, "failed to attach broker to history", err)
		return err
	}
	if err := p.store.IncrementBrokersAssigned(ctx, orderID); err != nil {
		p.logger.Error(ctx, "failed to count broker assignment", err)
		return err
	}

	// Clear the pending flag once no success lacks a broker.
	if allAssigned, err := p.successesHaveBrokers(ctx, orderID); err != nil {
		p.logger.Error(ctx, "failed to audit broker assignments", err)
	} else if allAssigned {
		if err := p.store.SetBrokerAssignmentPending(ctx, orderID, false); err != nil {
			p.logger.Error(ctx, "failed to clear broker assignment pending", err)
		}
	}
	p.logger.Info(ctx, "broker assigned manually")
	return nil
}

func (p *InjectionProcessor) brokerFromRef(ctx context.Context, order store.Order, brokerID *uuid.UUID, domain *string) (store.Broker, error) {
	if brokerID != nil {
		broker, err := p.store.GetBrokerByID(ctx, *brokerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Broker{}, ErrBrokerRequired
			}
			return store.Broker{}, err
		}
		return broker, nil
	}
	if domain != nil && *domain != "" {
		return p.resolveBroker(ctx, order, *domain)
	}
	return store.Broker{}, ErrBrokerRequired
}

func (p *InjectionProcessor) publishProgress(order store.Order, leadID *uuid.UUID) {
	if p.progress == nil {
		return
	}
	snapshot := progress.Snapshot{
		InjectionStatus:         order.InjectionStatus,
		TotalToInject:           order.TotalToInject,
		SuccessfulInjections:    order.SuccessfulInjections,
		FailedInjections:        order.FailedInjections,
		BrokersAssigned:         order.BrokersAssigned,
		BrokerAssignmentPending: order.BrokerAssignmentPending,
	}
	if leadID != nil {
		s := leadID.String()
		snapshot.CurrentLeadID = &s
	}
	p.progress.Publish(order.ID, snapshot)
}

func proxyConfig(proxy store.Proxy) proxyrotation.ProxyConfig {
	return proxyrotation.ProxyConfig{
		Server:   proxy.Server,
		Username: proxy.Username,
		Password: proxy.Password,
		Host:     proxy.Host,
		Port:     proxy.Port,
	}
}

// parseScheduledWindow normalizes the order's window bounds to absolute
// times. Bounds are either RFC3339 timestamps or HH:MM times of day; a
// time-of-day window ending before it starts rolls over midnight, and a
// window fully in the past shifts to the next day.
func parseScheduledWindow(startRef, endRef *string, now time.Time) (time.Time, time.Time, error) {
	if startRef == nil || endRef == nil {
		return time.Time{}, time.Time{}, ErrBadScheduledWindow
	}
	start, err := parseWindowBound(*startRef, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseWindowBound(*endRef, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	if end.Before(now) {
		start = start.Add(24 * time.Hour)
		end = end.Add(24 * time.Hour)
	}
	if start.Before(now) {
		start = now
	}
	return start, end, nil
}

func parseWindowBound(ref string, now time.Time) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, ref); err == nil {
		return ts, nil
	}
	tod, err := time.Parse("15:04", ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadScheduledWindow, ref)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, now.Location()), nil
}

func randomTimeIn(start, end time.Time) time.Time {
	window := end.Sub(start)
	if window <= 0 {
		return start
	}
	return start.Add(time.Duration(rand.Int63n(int64(window))))
}
