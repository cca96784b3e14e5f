// Package settings loads per-store dispatch configuration.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/repository"
)

type settingsRepository interface {
	GetStoreSettings(ctx context.Context, storeID uuid.UUID) (*repository.StoreSettingsRow, error)
}

// Provider returns a store's settings, defaults when the store has none.
type Provider struct {
	repo      settingsRepository
	defaultTZ *time.Location
	logger    logx.Logger
}

// NewProvider creates a Provider. A nil defaultTZ means UTC.
func NewProvider(repo settingsRepository, defaultTZ *time.Location, logger logx.Logger) *Provider {
	if defaultTZ == nil {
		defaultTZ = time.UTC
	}
	return &Provider{repo: repo, defaultTZ: defaultTZ, logger: logger}
}

// Get loads storeID's settings.
func (p *Provider) Get(ctx context.Context, storeID uuid.UUID) (domain.StoreSettings, error) {
	row, err := p.repo.GetStoreSettings(ctx, storeID)
	if err != nil {
		return domain.StoreSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if row == nil {
		return domain.StoreSettings{Rules: domain.DefaultRules(), TimeZone: p.defaultTZ.String()}, nil
	}

	s, skipped, err := row.ToDomain(p.defaultTZ)
	if err != nil {
		return domain.StoreSettings{}, err
	}
	if len(skipped) > 0 {
		p.logger.Warn("unknown priority rules skipped",
			logx.String("event", "rules_skipped"),
			logx.Stringer("store_id", storeID),
			logx.Any("rules", skipped),
		)
	}
	return s, nil
}
