package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// scoreRepository implements the ScoreRepository interface using GORM
type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new activity score repository
func NewScoreRepository(db *gorm.DB) repositories.ScoreRepository {
	return &scoreRepository{db: db}
}

// FindByMember retrieves a member's score
func (r *scoreRepository) FindByMember(ctx context.Context, memberID string) (*entities.ActivityScore, error) {
	var score entities.ActivityScore
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to find score for member: %w", err)
	}
	return &score, nil
}

// ListAll retrieves every computed score
func (r *scoreRepository) ListAll(ctx context.Context) ([]*entities.ActivityScore, error) {
	var scores []*entities.ActivityScore
	if err := r.db.WithContext(ctx).
		Order("member_id ASC").
		Limit(DefaultLimit).
		Find(&scores).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity scores: %w", err)
	}
	return scores, nil
}

// Upsert fully overwrites the score row for the member. Concurrent runs
// race here with last-write-wins semantics keyed by calculated_at; the next
// scheduled recomputation corrects any stale overwrite.
func (r *scoreRepository) Upsert(ctx context.Context, score *entities.ActivityScore) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "member_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance", "speeches", "questions", "bills", "committee",
				"total", "calculated_at",
			}),
		}).
		Create(score).Error; err != nil {
		return fmt.Errorf("failed to upsert activity score: %w", err)
	}
	return nil
}
