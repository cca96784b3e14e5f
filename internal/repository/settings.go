package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

// StoreSettingsRow is the raw store_dispatch_settings row.
type StoreSettingsRow struct {
	StoreID                 uuid.UUID
	AssignmentMode          string
	PriorityRules           []string
	MaxConcurrentDeliveries int
	AssignmentRadiusKm      float64
	WorkingHoursStart       *string
	WorkingHoursEnd         *string
	TimeZone                string
	WebhookSecret           string
}

// SettingsRepo reads per-store dispatch settings.
type SettingsRepo struct {
	db *pgxpool.Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetStoreSettings returns nil, nil when the store has no row.
func (r *SettingsRepo) GetStoreSettings(ctx context.Context, storeID uuid.UUID) (*StoreSettingsRow, error) {
	var s StoreSettingsRow
	err := r.db.QueryRow(ctx, `
        SELECT store_id, assignment_mode, priority_rules, max_concurrent_deliveries, assignment_radius_km,
               working_hours_start, working_hours_end, time_zone, provider_webhook_secret
        FROM store_dispatch_settings
        WHERE store_id = $1
    `, storeID).Scan(&s.StoreID, &s.AssignmentMode, &s.PriorityRules, &s.MaxConcurrentDeliveries,
		&s.AssignmentRadiusKm, &s.WorkingHoursStart, &s.WorkingHoursEnd, &s.TimeZone, &s.WebhookSecret)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store settings %s: %w", storeID, err)
	}
	return &s, nil
}

// ToDomain converts the row, falling back to defaults for unusable values.
// defaultTZ is used when the row has no time zone.
func (s StoreSettingsRow) ToDomain(defaultTZ *time.Location) (domain.StoreSettings, []string, error) {
	rules := domain.DefaultRules()
	if m := domain.AssignmentMode(s.AssignmentMode); m.Valid() {
		rules.Mode = m
	}
	parsed, skipped := domain.ParseRules(s.PriorityRules)
	rules.PriorityRules = parsed
	if s.MaxConcurrentDeliveries > 0 {
		rules.MaxConcurrentDeliveries = s.MaxConcurrentDeliveries
	}
	if s.AssignmentRadiusKm > 0 {
		rules.AssignmentRadiusKm = s.AssignmentRadiusKm
	}

	loc := defaultTZ
	if s.TimeZone != "" {
		l, err := time.LoadLocation(s.TimeZone)
		if err != nil {
			return domain.StoreSettings{}, skipped, fmt.Errorf("store %s time zone %q: %w", s.StoreID, s.TimeZone, err)
		}
		loc = l
	}
	if s.WorkingHoursStart != nil && s.WorkingHoursEnd != nil {
		wh, err := domain.ParseWorkingHours(*s.WorkingHoursStart, *s.WorkingHoursEnd, loc)
		if err != nil {
			return domain.StoreSettings{}, skipped, fmt.Errorf("store %s: %w", s.StoreID, err)
		}
		rules.WorkingHours = wh
	}

	return domain.StoreSettings{
		Rules:         rules,
		TimeZone:      loc.String(),
		WebhookSecret: s.WebhookSecret,
	}, skipped, nil
}
