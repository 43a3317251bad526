package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// speechRepository implements the SpeechRepository interface using GORM
type speechRepository struct {
	db *gorm.DB
}

// NewSpeechRepository creates a new speech repository
func NewSpeechRepository(db *gorm.DB) repositories.SpeechRepository {
	return &speechRepository{db: db}
}

// ListByMember retrieves a member's speeches, newest first
func (r *speechRepository) ListByMember(ctx context.Context, memberID string, opts repositories.SpeechListOptions) ([]*entities.Speech, error) {
	limit := opts.Limit
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	query := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("spoken_at DESC NULLS LAST, id ASC").
		Limit(limit)

	if !opts.IncludeProcedural {
		query = query.Where("is_procedural = ?", false)
	}

	var speeches []*entities.Speech
	if err := query.Find(&speeches).Error; err != nil {
		return nil, fmt.Errorf("failed to list speeches for member: %w", err)
	}
	return speeches, nil
}

// ListPage retrieves one page of the full speech table, ordered by id
func (r *speechRepository) ListPage(ctx context.Context, offset, limit int) ([]*entities.Speech, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var speeches []*entities.Speech
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&speeches).Error; err != nil {
		return nil, fmt.Errorf("failed to list speech page: %w", err)
	}
	return speeches, nil
}
