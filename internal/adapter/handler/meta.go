package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/errors"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// Meta serves site-level toggles and the public changelog
type Meta struct {
	settingRepo repositories.SettingRepository
	logger      *zap.Logger
}

// NewMeta creates a new meta handler
func NewMeta(settingRepo repositories.SettingRepository, logger *zap.Logger) *Meta {
	return &Meta{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Get handles GET /v1/meta
func (h *Meta) Get(c echo.Context) error {
	ctx := c.Request().Context()

	banner, err := h.settingRepo.Get(ctx, entities.SettingMaintenanceBanner)
	if err != nil && !stdErrors.Is(err, entities.ErrSettingNotFound) {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get setting", err))
	}
	safeMode, err := h.settingRepo.Get(ctx, entities.SettingElectionSafeMode)
	if err != nil && !stdErrors.Is(err, entities.ErrSettingNotFound) {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get setting", err))
	}

	changelog, err := h.settingRepo.Changelog(ctx)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list changelog", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"maintenance_banner": banner,
		"election_safe_mode": safeMode != nil && *safeMode == "true",
		"changelog":          changelog,
	})
}
