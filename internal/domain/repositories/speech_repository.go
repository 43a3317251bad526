package repositories

import (
	"context"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// SpeechRepository defines the interface for speech data access
type SpeechRepository interface {
	// ListByMember retrieves a member's speeches, newest first. Procedural
	// speech is excluded unless IncludeProcedural is set.
	ListByMember(ctx context.Context, memberID string, opts SpeechListOptions) ([]*entities.Speech, error)

	// ListPage retrieves one page of the full speech table, ordered by id
	// so that repeated snapshots paginate deterministically.
	ListPage(ctx context.Context, offset, limit int) ([]*entities.Speech, error)
}

// SpeechListOptions controls member speech listings
type SpeechListOptions struct {
	IncludeProcedural bool
	Limit             int // 0 means the default page ceiling
}
