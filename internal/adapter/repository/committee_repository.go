package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// committeeRepository implements the CommitteeRepository interface using GORM
type committeeRepository struct {
	db *gorm.DB
}

// NewCommitteeRepository creates a new committee repository
func NewCommitteeRepository(db *gorm.DB) repositories.CommitteeRepository {
	return &committeeRepository{db: db}
}

// ListByMember retrieves a member's committee memberships
func (r *committeeRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.CommitteeMembership, error) {
	var memberships []*entities.CommitteeMembership
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("committee ASC").
		Limit(DefaultLimit).
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("failed to list committees for member: %w", err)
	}
	return memberships, nil
}

// ListPage retrieves one page of the full membership table, ordered by id
func (r *committeeRepository) ListPage(ctx context.Context, offset, limit int) ([]*entities.CommitteeMembership, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var memberships []*entities.CommitteeMembership
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("failed to list committee membership page: %w", err)
	}
	return memberships, nil
}
