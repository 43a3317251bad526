package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// questionRepository implements the QuestionRepository interface using GORM
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &questionRepository{db: db}
}

// ListByMember retrieves a member's written questions, newest first
func (r *questionRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.Question, error) {
	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("submitted_at DESC NULLS LAST, id ASC").
		Limit(DefaultLimit).
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions for member: %w", err)
	}
	return questions, nil
}

// ListPage retrieves one page of the full question table, ordered by id
func (r *questionRepository) ListPage(ctx context.Context, offset, limit int) ([]*entities.Question, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list question page: %w", err)
	}
	return questions, nil
}
