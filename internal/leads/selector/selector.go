package selector

//go:generate go run go.uber.org/mock/mockgen@latest -source=selector.go -destination=mocks_test.go -package=selector

import (
	"context"
	"errors"

	"leadflow-server/internal/observability"
	"leadflow-server/internal/store"
)

// LeadStore defines the database operations required by the Selector
type LeadStore interface {
	SampleLeadsByType(ctx context.Context, leadType string, limit int, filters store.LeadFilters) ([]store.Lead, error)
	ListLeadsByType(ctx context.Context, leadType string, limit int, filters store.LeadFilters) ([]store.Lead, error)
}

var ErrUnknownLeadType = errors.New("unknown lead type")

// Pair caps per requested-count regime. A "pair" is every even-numbered
// pick (2nd, 4th, ...) drawn from a pattern that already contributed.
const (
	smallBatchMax  = 10
	mediumBatchMax = 20
	largeBatchMax  = 40

	mediumPairCap = 10
	largePairCap  = 20
)

// Over-fetch multipliers per regime. Filtering shrinks the achievable set,
// so the candidate pool is a random sample several times the requested
// count.
const (
	smallBatchOverFetch  = 50
	mediumBatchOverFetch = 25
	largeBatchOverFetch  = 15
	bulkOverFetch        = 5
)

// Selector chooses lead pools per type under exclusion filters, enforcing
// the phone-prefix diversity constraint for filler leads.
type Selector struct {
	store  LeadStore
	logger *observability.Logger
}

func New(store LeadStore, logger *observability.Logger) Selector {
	return Selector{store: store, logger: logger}
}

// Select returns at most count matching leads. A short result is a
// legitimate outcome consumed by order fulfillment, never an error.
func (s *Selector) Select(ctx context.Context, leadType string, count int, filters store.LeadFilters) ([]store.Lead, error) {
	if count <= 0 {
		return nil, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_type", Value: leadType},
		observability.Field{Key: "requested_count", Value: count},
	)

	switch leadType {
	case store.LeadTypeFiller:
		return s.selectFiller(ctx, count, filters)
	case store.LeadTypeFTD, store.LeadTypeCold, store.LeadTypeLive:
		leads, err := s.store.ListLeadsByType(ctx, leadType, count, filters)
		if err != nil {
			s.logger.Error(ctx, "failed to list leads for selection", err)
			return nil, err
		}
		return leads, nil
	default:
		return nil, ErrUnknownLeadType
	}
}

// selectFiller over-fetches a random sample and applies the diversity regime
func (s *Selector) selectFiller(ctx context.Context, count int, filters store.LeadFilters) ([]store.Lead, error) {
	fetchLimit := count * overFetchMultiplier(count)
	candidates, err := s.store.SampleLeadsByType(ctx, store.LeadTypeFiller, fetchLimit, filters)
	if err != nil {
		s.logger.Error(ctx, "failed to sample filler leads", err)
		return nil, err
	}

	selected := Diversify(candidates, count)

	if len(selected) < count {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "selected_count", Value: len(selected)},
		)
		s.logger.Warn(ctx, "filler selection fell short of requested count")
	}
	return selected, nil
}

func overFetchMultiplier(count int) int {
	switch {
	case count <= smallBatchMax:
		return smallBatchOverFetch
	case count <= mediumBatchMax:
		return mediumBatchOverFetch
	case count <= largeBatchMax:
		return largeBatchOverFetch
	default:
		return bulkOverFetch
	}
}

// Diversify applies the phone-prefix diversity constraint to a candidate
// pool, returning at most count leads.
//
// count <= 10: every result has a distinct pattern; patternless candidates
// backfill when too few distinct patterns exist.
// 10 < count <= 20 and 20 < count <= 40: round-robin across patterns with a
// total pair cap of 10 and 20 respectively.
// count > 40: the first count candidates, verbatim.
func Diversify(candidates []store.Lead, count int) []store.Lead {
	if count <= 0 {
		return nil
	}
	if count > largeBatchMax {
		if len(candidates) > count {
			return candidates[:count]
		}
		return candidates
	}

	patternOrder := make([]string, 0, len(candidates))
	groups := make(map[string][]store.Lead)
	var patternless []store.Lead

	for _, lead := range candidates {
		pattern, ok := ExtractPattern(lead.Phone)
		if !ok {
			patternless = append(patternless, lead)
			continue
		}
		if _, seen := groups[pattern]; !seen {
			patternOrder = append(patternOrder, pattern)
		}
		groups[pattern] = append(groups[pattern], lead)
	}

	if count <= smallBatchMax {
		return pickDistinct(patternOrder, groups, patternless, count)
	}

	pairCap := mediumPairCap
	if count > mediumBatchMax {
		pairCap = largePairCap
	}
	return pickRoundRobin(patternOrder, groups, patternless, count, pairCap)
}

// pickDistinct takes one lead per pattern, then backfills from the
// patternless pool.
func pickDistinct(patternOrder []string, groups map[string][]store.Lead, patternless []store.Lead, count int) []store.Lead {
	selected := make([]store.Lead, 0, count)
	for _, pattern := range patternOrder {
		if len(selected) == count {
			return selected
		}
		selected = append(selected, groups[pattern][0])
	}
	for _, lead := range patternless {
		if len(selected) == count {
			break
		}
		selected = append(selected, lead)
	}
	return selected
}

// pickRoundRobin cycles across pattern groups. The first pick from a
// pattern is free; every even-numbered pick from the same pattern consumes
// one unit of the pair budget.
func pickRoundRobin(patternOrder []string, groups map[string][]store.Lead, patternless []store.Lead, count, pairCap int) []store.Lead {
	selected := make([]store.Lead, 0, count)
	taken := make(map[string]int, len(groups))
	pairsUsed := 0

	for progress := true; progress && len(selected) < count; {
		progress = false
		for _, pattern := range patternOrder {
			if len(selected) == count {
				break
			}
			idx := taken[pattern]
			if idx >= len(groups[pattern]) {
				continue
			}
			// Picks beyond the first from one pattern come in pairs:
			// the 2nd, 4th, ... each consume pair budget.
			if idx > 0 && (idx+1)%2 == 0 {
				if pairsUsed == pairCap {
					continue
				}
				pairsUsed++
			}
			selected = append(selected, groups[pattern][idx])
			taken[pattern] = idx + 1
			progress = true
		}
	}

	for _, lead := range patternless {
		if len(selected) == count {
			break
		}
		selected = append(selected, lead)
	}
	return selected
}
