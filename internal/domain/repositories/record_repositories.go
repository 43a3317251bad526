package repositories

import (
	"context"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// QuestionRepository defines the interface for written-question data access
type QuestionRepository interface {
	// ListByMember retrieves a member's written questions, newest first
	ListByMember(ctx context.Context, memberID string) ([]*entities.Question, error)

	// ListPage retrieves one page of the full question table, ordered by id
	ListPage(ctx context.Context, offset, limit int) ([]*entities.Question, error)
}

// VoteRepository defines the interface for individual vote data access
type VoteRepository interface {
	// ListByMember retrieves a member's votes, newest first
	ListByMember(ctx context.Context, memberID string) ([]*entities.Vote, error)

	// ListByMembers retrieves votes for a set of members, newest first
	ListByMembers(ctx context.Context, memberIDs []string) ([]*entities.Vote, error)

	// ListByBill retrieves all votes on one bill
	ListByBill(ctx context.Context, billID string) ([]*entities.Vote, error)
}

// BillRepository defines the interface for bill data access
type BillRepository interface {
	// FindByID retrieves a bill by id. Returns entities.ErrBillNotFound
	// when no row exists.
	FindByID(ctx context.Context, id string) (*entities.Bill, error)

	// ListByMember retrieves bills sponsored by the member
	ListByMember(ctx context.Context, memberID string) ([]*entities.Bill, error)

	// ListPage retrieves one page of the full bill table, ordered by id
	ListPage(ctx context.Context, offset, limit int) ([]*entities.Bill, error)
}

// CommitteeRepository defines the interface for committee membership access
type CommitteeRepository interface {
	// ListByMember retrieves a member's committee memberships
	ListByMember(ctx context.Context, memberID string) ([]*entities.CommitteeMembership, error)

	// ListPage retrieves one page of the full membership table, ordered by id
	ListPage(ctx context.Context, offset, limit int) ([]*entities.CommitteeMembership, error)
}

// WhipRepository defines the interface for party whip record access
type WhipRepository interface {
	// FindByBillAndParty retrieves the whip record for one (bill, party) pair.
	// Returns nil without error when no record has been collected.
	FindByBillAndParty(ctx context.Context, billID, party string) (*entities.PartyWhipRecord, error)

	// ListByBills retrieves whip records for a set of bills
	ListByBills(ctx context.Context, billIDs []string) ([]*entities.PartyWhipRecord, error)

	// Upsert writes a whip record keyed by (bill, party)
	Upsert(ctx context.Context, record *entities.PartyWhipRecord) error
}

// ScoreRepository defines the interface for activity score access
type ScoreRepository interface {
	// FindByMember retrieves a member's score. Returns
	// entities.ErrScoreNotFound when none has been computed.
	FindByMember(ctx context.Context, memberID string) (*entities.ActivityScore, error)

	// ListAll retrieves every computed score
	ListAll(ctx context.Context) ([]*entities.ActivityScore, error)

	// Upsert fully overwrites the score row for the member
	Upsert(ctx context.Context, score *entities.ActivityScore) error
}

// SettingRepository defines the interface for site settings and changelog
type SettingRepository interface {
	// Get retrieves one setting value. Returns entities.ErrSettingNotFound
	// when the key does not exist.
	Get(ctx context.Context, key string) (*string, error)

	// Changelog retrieves changelog entries, newest first
	Changelog(ctx context.Context) ([]*entities.ChangelogEntry, error)
}
