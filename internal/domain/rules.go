package domain

import (
	"fmt"
	"strings"
	"time"
)

// AssignmentMode tells whether an engine recommendation may be committed.
type AssignmentMode string

// List of assignment modes
const (
	ModeAuto    AssignmentMode = "auto"
	ModeSuggest AssignmentMode = "suggest"
)

// Valid checks if the AssignmentMode is valid
func (m AssignmentMode) Valid() bool {
	return m == ModeAuto || m == ModeSuggest
}

// RuleTag is a known priority rule. The set is closed; unknown names are dropped by ParseRules.
type RuleTag uint8

// List of priority rules, version 1.
const (
	RuleUnknown RuleTag = iota
	RuleLeastLoaded
	RuleClosestDriver
	RuleVehicleMatch
	RuleCompletionRate
)

var ruleNames = map[string]RuleTag{
	"least_loaded":    RuleLeastLoaded,
	"closest_driver":  RuleClosestDriver,
	"vehicle_match":   RuleVehicleMatch,
	"rating_first":    RuleCompletionRate,
	"completion_rate": RuleCompletionRate,
}

func (r RuleTag) String() string {
	switch r {
	case RuleLeastLoaded:
		return "least_loaded"
	case RuleClosestDriver:
		return "closest_driver"
	case RuleVehicleMatch:
		return "vehicle_match"
	case RuleCompletionRate:
		return "completion_rate"
	default:
		return "unknown"
	}
}

// ParseRule maps a store-supplied rule name to its tag.
func ParseRule(name string) (RuleTag, bool) {
	tag, ok := ruleNames[strings.ToLower(strings.TrimSpace(name))]
	return tag, ok
}

// ParseRules keeps the known rule names in order and skips the rest.
// The skipped names are returned so callers can log them.
func ParseRules(names []string) (rules []RuleTag, skipped []string) {
	rules = make([]RuleTag, 0, len(names))
	for _, n := range names {
		tag, ok := ParseRule(n)
		if !ok {
			skipped = append(skipped, n)
			continue
		}
		rules = append(rules, tag)
	}
	return rules, skipped
}

// WorkingHours is a daily window in a store's local time. End before Start means the window crosses midnight.
type WorkingHours struct {
	Start    time.Duration
	End      time.Duration
	Location *time.Location
}

// ParseWorkingHours builds a window from "HH:MM" strings.
func ParseWorkingHours(start, end string, loc *time.Location) (*WorkingHours, error) {
	s, err := parseClock(start)
	if err != nil {
		return nil, fmt.Errorf("working hours start: %w", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return nil, fmt.Errorf("working hours end: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &WorkingHours{Start: s, End: e, Location: loc}, nil
}

func parseClock(v string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Contains reports whether t falls inside the window. A zero-length window is always open.
func (w WorkingHours) Contains(t time.Time) bool {
	loc := w.Location
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	at := time.Duration(lt.Hour())*time.Hour + time.Duration(lt.Minute())*time.Minute + time.Duration(lt.Second())*time.Second
	switch {
	case w.Start == w.End:
		return true
	case w.Start < w.End:
		return at >= w.Start && at < w.End
	default:
		return at >= w.Start || at < w.End
	}
}

// AssignmentRules is per-store engine configuration.
type AssignmentRules struct {
	Mode                    AssignmentMode
	PriorityRules           []RuleTag
	MaxConcurrentDeliveries int
	AssignmentRadiusKm      float64
	WorkingHours            *WorkingHours
}

// DefaultRules returns the rules used when a store has not configured any.
func DefaultRules() AssignmentRules {
	return AssignmentRules{
		Mode:                    ModeSuggest,
		PriorityRules:           []RuleTag{RuleLeastLoaded, RuleClosestDriver, RuleVehicleMatch},
		MaxConcurrentDeliveries: 3,
		AssignmentRadiusKm:      10,
	}
}

// StoreSettings is the stored dispatch configuration of a store.
type StoreSettings struct {
	Rules         AssignmentRules
	TimeZone      string
	WebhookSecret string
}
