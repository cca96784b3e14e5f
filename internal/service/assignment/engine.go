// Package assignment ranks a candidate pool against store rules. It is pure and never writes.
package assignment

import (
	"math"
	"sort"
	"strings"
	"time"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
)

// Confidence tuning.
const (
	confidenceSole         = 100
	confidencePerExtraRule = 15
	confidenceFloor        = 40
	confidenceTied         = 30
	penaltyUnknownLocation = 15
	penaltyUnknownVehicle  = 10
)

// Engine scores candidates. Safe for concurrent use.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, o := range opts {
		o(e)
	}
	return e
}

type scored struct {
	c        domain.DriverCandidate
	distance *float64
}

// Assign filters, ranks and decides. It never fails: an empty pool yields MethodNoCandidates.
func (e *Engine) Assign(target domain.AssignTarget, candidates []domain.DriverCandidate, rules domain.AssignmentRules) domain.AssignmentResult {
	now := e.now()
	res := domain.AssignmentResult{Candidates: []domain.RankedCandidate{}, DecidedAt: now}

	pool := filter(target, candidates, rules)
	if len(pool) == 0 {
		res.Method = domain.MethodNoCandidates
		return res
	}

	keys := ruleKeys(target, rules.PriorityRules)
	sort.SliceStable(pool, func(i, j int) bool {
		for _, key := range keys {
			a, b := key(pool[i]), key(pool[j])
			if a != b {
				return a < b
			}
		}
		return pool[i].c.DriverID.String() < pool[j].c.DriverID.String()
	})

	for i, s := range pool {
		res.Candidates = append(res.Candidates, domain.RankedCandidate{
			DriverCandidate: s.c,
			Rank:            i + 1,
			DistanceKm:      s.distance,
		})
	}

	winner := pool[0]
	chain, tied := decide(pool, keys, rules.PriorityRules)
	res.Method = methodLabel(len(pool), chain, tied)
	res.Confidence = confidence(len(pool), len(chain), tied, winner, target)
	id := winner.c.DriverID
	res.SuggestedDriverID = &id

	switch {
	case rules.WorkingHours != nil && !rules.WorkingHours.Contains(now):
		res.Method = domain.MethodOutsideHours
	case rules.Mode != domain.ModeAuto:
		res.Method = domain.MethodSuggest
	default:
		res.RecommendedDriverID = &id
	}
	return res
}

// filter drops candidates at capacity or known to be outside the radius.
func filter(target domain.AssignTarget, candidates []domain.DriverCandidate, rules domain.AssignmentRules) []scored {
	out := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ActiveDeliveryCount >= rules.MaxConcurrentDeliveries {
			continue
		}
		s := scored{c: c}
		if target.Location != nil && c.Location != nil {
			d := geo.HaversineKm(*target.Location, *c.Location)
			if d > rules.AssignmentRadiusKm {
				continue
			}
			s.distance = &d
		}
		out = append(out, s)
	}
	return out
}

// ruleKeys returns one key per known rule; lower is better.
func ruleKeys(target domain.AssignTarget, rules []domain.RuleTag) []func(scored) float64 {
	keys := make([]func(scored) float64, 0, len(rules))
	for _, r := range rules {
		switch r {
		case domain.RuleLeastLoaded:
			keys = append(keys, func(s scored) float64 { return float64(s.c.ActiveDeliveryCount) })
		case domain.RuleClosestDriver:
			keys = append(keys, func(s scored) float64 {
				if s.distance == nil {
					return math.Inf(1)
				}
				return *s.distance
			})
		case domain.RuleVehicleMatch:
			req := target.RequiredVehicle
			keys = append(keys, func(s scored) float64 {
				if req == nil || s.c.VehicleType == *req {
					return 0
				}
				return 1
			})
		case domain.RuleCompletionRate:
			keys = append(keys, func(s scored) float64 { return -s.c.CompletionRate })
		default:
			keys = append(keys, func(scored) float64 { return 0 })
		}
	}
	return keys
}

// decide replays the rules as successive partitions over the sorted pool and returns the rules
// consumed until one candidate was left. tied is true when no rule separated the leaders.
func decide(pool []scored, keys []func(scored) float64, rules []domain.RuleTag) ([]domain.RuleTag, bool) {
	leaders := len(pool)
	var chain []domain.RuleTag
	for i, key := range keys {
		if leaders == 1 {
			break
		}
		best := key(pool[0])
		n := 1
		for n < leaders && key(pool[n]) == best {
			n++
		}
		leaders = n
		chain = append(chain, rules[i])
	}
	return chain, leaders > 1
}

func methodLabel(poolSize int, chain []domain.RuleTag, tied bool) string {
	if poolSize == 1 {
		return domain.MethodSingle
	}
	names := make([]string, 0, len(chain)+1)
	for _, r := range chain {
		names = append(names, r.String())
	}
	if tied {
		names = append(names, domain.MethodTiebreak)
	}
	return strings.Join(names, "+")
}

func confidence(poolSize, rulesUsed int, tied bool, winner scored, target domain.AssignTarget) int {
	var score int
	switch {
	case poolSize == 1:
		score = confidenceSole
	case tied:
		score = confidenceTied
	default:
		score = confidenceSole - confidencePerExtraRule*(rulesUsed-1)
		if score < confidenceFloor {
			score = confidenceFloor
		}
	}
	if winner.distance == nil {
		score -= penaltyUnknownLocation
	}
	if !winner.c.VehicleType.Valid() {
		score -= penaltyUnknownVehicle
	}
	return max(0, min(100, score))
}
