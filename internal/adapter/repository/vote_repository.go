package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// voteRepository implements the VoteRepository interface using GORM
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) repositories.VoteRepository {
	return &voteRepository{db: db}
}

// ListByMember retrieves a member's votes, newest first
func (r *voteRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.Vote, error) {
	var votes []*entities.Vote
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("vote_date DESC, bill_id ASC").
		Limit(DefaultLimit).
		Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to list votes for member: %w", err)
	}
	return votes, nil
}

// ListByMembers retrieves votes for a set of members, newest first
func (r *voteRepository) ListByMembers(ctx context.Context, memberIDs []string) ([]*entities.Vote, error) {
	if len(memberIDs) == 0 {
		return []*entities.Vote{}, nil
	}

	var votes []*entities.Vote
	if err := r.db.WithContext(ctx).
		Where("member_id IN ?", memberIDs).
		Order("vote_date DESC, bill_id ASC").
		Limit(DefaultLimit).
		Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to list votes for members: %w", err)
	}
	return votes, nil
}

// ListByBill retrieves all votes on one bill
func (r *voteRepository) ListByBill(ctx context.Context, billID string) ([]*entities.Vote, error) {
	var votes []*entities.Vote
	if err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("member_id ASC").
		Limit(DefaultLimit).
		Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to list votes for bill: %w", err)
	}
	return votes, nil
}
