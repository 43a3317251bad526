package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
)

// billRepository implements the BillRepository interface using GORM
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) repositories.BillRepository {
	return &billRepository{db: db}
}

// FindByID retrieves a bill by id
func (r *billRepository) FindByID(ctx context.Context, id string) (*entities.Bill, error) {
	var bill entities.Bill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to find bill by id: %w", err)
	}
	return &bill, nil
}

// ListByMember retrieves bills sponsored by the member, via JSONB
// containment on the submitter id array
func (r *billRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.Bill, error) {
	var bills []*entities.Bill
	if err := r.db.WithContext(ctx).
		Where(datatypes.JSONArrayQuery("submitter_ids").Contains(memberID)).
		Order("submitted_at DESC NULLS LAST, id ASC").
		Limit(DefaultLimit).
		Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to list bills for member: %w", err)
	}
	return bills, nil
}

// ListPage retrieves one page of the full bill table, ordered by id
func (r *billRepository) ListPage(ctx context.Context, offset, limit int) ([]*entities.Bill, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var bills []*entities.Bill
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to list bill page: %w", err)
	}
	return bills, nil
}
