package repositories

import (
	"context"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// FindByID retrieves a member by id. Returns entities.ErrMemberNotFound
	// when no row exists; any other error is a data-access failure.
	FindByID(ctx context.Context, id string) (*entities.Member, error)

	// List retrieves members with filters, alphabetical by reading
	List(ctx context.Context, filters MemberFilters) ([]*entities.Member, error)

	// ListActive retrieves all current office holders
	ListActive(ctx context.Context) ([]*entities.Member, error)

	// ListByParty retrieves active members of one party
	ListByParty(ctx context.Context, party string) ([]*entities.Member, error)

	// UpdateCounters overwrites the cached derived counters for one member.
	// Idempotent upsert semantics, last write wins.
	UpdateCounters(ctx context.Context, id string, speechCount, sessionCount, questionCount int) error
}

// MemberFilters represents filter options for listing members
type MemberFilters struct {
	Party    *string
	House    *entities.House
	IsActive *bool
}
