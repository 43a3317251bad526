package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// DefaultLimit caps every list query. The Diet tops out well under a
// thousand sitting members, so 2000 avoids silent truncation without
// unbounded reads.
const DefaultLimit = 2000

// memberRepository implements the MemberRepository interface using GORM
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &memberRepository{db: db}
}

// FindByID retrieves a member by id
func (r *memberRepository) FindByID(ctx context.Context, id string) (*entities.Member, error) {
	var member entities.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member by id: %w", err)
	}
	return &member, nil
}

// List retrieves members with filters, alphabetical by reading
func (r *memberRepository) List(ctx context.Context, filters repositories.MemberFilters) ([]*entities.Member, error) {
	query := r.db.WithContext(ctx).Model(&entities.Member{})

	if filters.Party != nil {
		query = query.Where("party = ?", *filters.Party)
	}
	if filters.House != nil {
		query = query.Where("house = ?", *filters.House)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var members []*entities.Member
	if err := query.
		Order("name_reading ASC, id ASC").
		Limit(DefaultLimit).
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// ListActive retrieves all current office holders
func (r *memberRepository) ListActive(ctx context.Context) ([]*entities.Member, error) {
	active := true
	return r.List(ctx, repositories.MemberFilters{IsActive: &active})
}

// ListByParty retrieves active members of one party
func (r *memberRepository) ListByParty(ctx context.Context, party string) ([]*entities.Member, error) {
	active := true
	return r.List(ctx, repositories.MemberFilters{Party: &party, IsActive: &active})
}

// UpdateCounters overwrites the cached derived counters for one member
func (r *memberRepository) UpdateCounters(ctx context.Context, id string, speechCount, sessionCount, questionCount int) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Member{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"speech_count":   speechCount,
			"session_count":  sessionCount,
			"question_count": questionCount,
		}).Error; err != nil {
		return fmt.Errorf("failed to update member counters: %w", err)
	}
	return nil
}
