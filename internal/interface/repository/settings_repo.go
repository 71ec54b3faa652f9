package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	settingFollowupDays    = "followup_days"
	settingInternalDomains = "internal_domains"
)

// GormSettingsRepository implements the SettingsRepository interface
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository
func NewGormSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &GormSettingsRepository{
		db: db,
	}
}

// Settings GORM model for database mapping. Admin-owned key/value rows;
// this repository only ever reads them.
type Settings struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name
func (Settings) TableName() string {
	return "m_settings"
}

func (r *GormSettingsRepository) getValue(ctx context.Context, key string) (string, error) {
	var row Settings
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", entity.ErrMissingSetting, key)
		}
		return "", result.Error
	}

	return row.Value, nil
}

// FollowupDays returns the configured working-day threshold. A missing or
// unusable row is an error, never a silent default.
func (r *GormSettingsRepository) FollowupDays(ctx context.Context) (int, error) {
	value, err := r.getValue(ctx, settingFollowupDays)
	if err != nil {
		return 0, err
	}

	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %q", entity.ErrMissingSetting, settingFollowupDays, value)
	}
	if days < 0 {
		return 0, fmt.Errorf("%w: %s is negative: %d", entity.ErrMissingSetting, settingFollowupDays, days)
	}

	return days, nil
}

// InternalDomains returns the JSON-encoded internal domain list. Owned by
// the same settings store but not consulted by the follow-up engine.
func (r *GormSettingsRepository) InternalDomains(ctx context.Context) ([]string, error) {
	value, err := r.getValue(ctx, settingInternalDomains)
	if err != nil {
		return nil, err
	}

	var domains []string
	if err := json.Unmarshal([]byte(value), &domains); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON list: %q", entity.ErrMissingSetting, settingInternalDomains, value)
	}

	return domains, nil
}
