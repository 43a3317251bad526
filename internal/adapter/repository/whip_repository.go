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

// whipRepository implements the WhipRepository interface using GORM
type whipRepository struct {
	db *gorm.DB
}

// NewWhipRepository creates a new party whip repository
func NewWhipRepository(db *gorm.DB) repositories.WhipRepository {
	return &whipRepository{db: db}
}

// FindByBillAndParty retrieves the whip record for one (bill, party) pair.
// A missing record means "no position collected", not an error.
func (r *whipRepository) FindByBillAndParty(ctx context.Context, billID, party string) (*entities.PartyWhipRecord, error) {
	var record entities.PartyWhipRecord
	if err := r.db.WithContext(ctx).
		Where("bill_id = ? AND party = ?", billID, party).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find whip record: %w", err)
	}
	return &record, nil
}

// ListByBills retrieves whip records for a set of bills
func (r *whipRepository) ListByBills(ctx context.Context, billIDs []string) ([]*entities.PartyWhipRecord, error) {
	if len(billIDs) == 0 {
		return []*entities.PartyWhipRecord{}, nil
	}

	var records []*entities.PartyWhipRecord
	if err := r.db.WithContext(ctx).
		Where("bill_id IN ?", billIDs).
		Order("bill_id ASC, party ASC").
		Limit(DefaultLimit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list whip records: %w", err)
	}
	return records, nil
}

// Upsert writes a whip record keyed by (bill, party)
func (r *whipRepository) Upsert(ctx context.Context, record *entities.PartyWhipRecord) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "bill_id"}, {Name: "party"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"bill_name", "official_stance", "stance_source", "stance_confidence", "updated_at",
			}),
		}).
		Create(record).Error; err != nil {
		return fmt.Errorf("failed to upsert whip record: %w", err)
	}
	return nil
}
