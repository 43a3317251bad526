package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// settingRepository implements the SettingRepository interface using GORM
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new site setting repository
func NewSettingRepository(db *gorm.DB) repositories.SettingRepository {
	return &settingRepository{db: db}
}

// Get retrieves one setting value
func (r *settingRepository) Get(ctx context.Context, key string) (*string, error) {
	var setting entities.SiteSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get site setting: %w", err)
	}
	return setting.Value, nil
}

// Changelog retrieves changelog entries, newest first
func (r *settingRepository) Changelog(ctx context.Context) ([]*entities.ChangelogEntry, error) {
	var entries []*entities.ChangelogEntry
	if err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Limit(100).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list changelog: %w", err)
	}
	return entries, nil
}
