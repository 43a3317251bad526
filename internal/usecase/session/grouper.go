// Package session collapses raw speech records into speech sessions, the
// unit every listing and ranking treats as "number of times a member spoke".
// A session is one distinct (date, committee) pairing containing at least
// one non-procedural utterance.
package session

import (
	"sort"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// Session is one (date, committee) group of a member's speeches, carrying
// its sub-records for UI drill-down.
type Session struct {
	Date      string             `json:"date"` // YYYY-MM-DD, empty when the source records carry no date
	Committee string             `json:"committee"`
	Speeches  []*entities.Speech `json:"speeches"`
}

// Result is the grouped view of one member's speech list
type Result struct {
	SessionCount int       `json:"session_count"`
	SpeechCount  int       `json:"speech_count"` // non-procedural utterances
	Sessions     []Session `json:"sessions"`
}

type sessionKey struct {
	date      string
	committee string
}

// Group collapses a member's speeches into sessions. Procedural speech is
// discarded before grouping, so a presiding chair's remarks never inflate
// the count. Input order does not matter; output is deterministic.
func Group(speeches []*entities.Speech) Result {
	groups := make(map[sessionKey][]*entities.Speech)
	speechCount := 0

	for _, sp := range speeches {
		if sp.IsProcedural {
			continue
		}
		speechCount++
		key := sessionKey{date: sp.DateKey(), committee: sp.Committee}
		groups[key] = append(groups[key], sp)
	}

	sessions := make([]Session, 0, len(groups))
	for key, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ID < group[j].ID
		})
		sessions = append(sessions, Session{
			Date:      key.date,
			Committee: key.committee,
			Speeches:  group,
		})
	}

	// Most recent date first; undated sessions last. Same-day ordering is
	// unspecified by policy but must be stable, so committee name breaks
	// the tie.
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.Date != b.Date {
			if a.Date == "" {
				return false
			}
			if b.Date == "" {
				return true
			}
			return a.Date > b.Date
		}
		return a.Committee < b.Committee
	})

	return Result{
		SessionCount: len(sessions),
		SpeechCount:  speechCount,
		Sessions:     sessions,
	}
}

// Count returns only the session count, for callers that do not need the
// drill-down list.
func Count(speeches []*entities.Speech) int {
	seen := make(map[sessionKey]struct{})
	for _, sp := range speeches {
		if sp.IsProcedural {
			continue
		}
		seen[sessionKey{date: sp.DateKey(), committee: sp.Committee}] = struct{}{}
	}
	return len(seen)
}
