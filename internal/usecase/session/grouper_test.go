package session

import (
	"testing"
	"time"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

func speech(id, memberID, date, committee string, procedural bool) *entities.Speech {
	sp := &entities.Speech{
		ID:           id,
		MemberID:     memberID,
		Committee:    committee,
		IsProcedural: procedural,
	}
	if date != "" {
		t, _ := time.Parse("2006-01-02", date)
		sp.SpokenAt = &t
	}
	return sp
}

func TestGroup_ProceduralExcluded(t *testing.T) {
	// Three substantive utterances in the budget committee on one day plus
	// one procedural plenary remark: exactly one session.
	speeches := []*entities.Speech{
		speech("s1", "m1", "2025-05-01", "予算委員会", false),
		speech("s2", "m1", "2025-05-01", "予算委員会", false),
		speech("s3", "m1", "2025-05-01", "予算委員会", false),
		speech("s4", "m1", "2025-05-01", entities.Plenary, true),
	}

	result := Group(speeches)
	if result.SessionCount != 1 {
		t.Fatalf("expected 1 session, got %d", result.SessionCount)
	}
	if result.SpeechCount != 3 {
		t.Fatalf("expected 3 speeches, got %d", result.SpeechCount)
	}
	if got := result.Sessions[0].Committee; got != "予算委員会" {
		t.Fatalf("unexpected committee %q", got)
	}
	if len(result.Sessions[0].Speeches) != 3 {
		t.Fatalf("expected 3 sub-records, got %d", len(result.Sessions[0].Speeches))
	}
}

func TestGroup_ProceduralOnly(t *testing.T) {
	speeches := []*entities.Speech{
		speech("s1", "m1", "2025-04-01", entities.Plenary, true),
		speech("s2", "m1", "2025-04-02", entities.Plenary, true),
	}

	result := Group(speeches)
	if result.SessionCount != 0 {
		t.Fatalf("expected 0 sessions, got %d", result.SessionCount)
	}
	if result.Sessions == nil {
		t.Fatal("expected empty session list, got nil")
	}
}

func TestGroup_IdempotentUnderDuplication(t *testing.T) {
	base := []*entities.Speech{
		speech("s1", "m1", "2025-05-01", "予算委員会", false),
		speech("s2", "m1", "2025-05-02", "本会議", false),
		speech("s3", "m1", "2025-05-02", "法務委員会", false),
	}

	before := Group(base).SessionCount

	duplicated := append([]*entities.Speech{}, base...)
	duplicated = append(duplicated,
		speech("s4", "m1", "2025-05-01", "予算委員会", false),
		speech("s5", "m1", "2025-05-02", "本会議", false),
	)

	after := Group(duplicated).SessionCount
	if before != after {
		t.Fatalf("session count changed under duplication: %d != %d", before, after)
	}
	if before != 3 {
		t.Fatalf("expected 3 sessions, got %d", before)
	}
}

func TestGroup_Ordering(t *testing.T) {
	speeches := []*entities.Speech{
		speech("s1", "m1", "2025-05-01", "法務委員会", false),
		speech("s2", "m1", "2025-05-02", "予算委員会", false),
		speech("s3", "m1", "2025-05-02", "本会議", false),
		speech("s4", "m1", "", "内閣委員会", false), // undated sorts last
	}

	result := Group(speeches)
	got := make([]string, 0, len(result.Sessions))
	for _, s := range result.Sessions {
		got = append(got, s.Date+"/"+s.Committee)
	}

	want := []string{
		"2025-05-02/予算委員会",
		"2025-05-02/本会議",
		"2025-05-01/法務委員会",
		"/内閣委員会",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q (full order %v)", i, want[i], got[i], got)
		}
	}

	// Deterministic across repeated runs regardless of input order.
	reversed := []*entities.Speech{speeches[3], speeches[2], speeches[1], speeches[0]}
	again := Group(reversed)
	for i, s := range again.Sessions {
		if s.Date+"/"+s.Committee != want[i] {
			t.Fatalf("unstable ordering at %d: %q", i, s.Date+"/"+s.Committee)
		}
	}
}

func TestCount_MatchesGroup(t *testing.T) {
	speeches := []*entities.Speech{
		speech("s1", "m1", "2025-05-01", "予算委員会", false),
		speech("s2", "m1", "2025-05-01", "予算委員会", false),
		speech("s3", "m1", "2025-05-03", "本会議", false),
		speech("s4", "m1", "2025-05-03", "本会議", true),
	}

	if got, want := Count(speeches), Group(speeches).SessionCount; got != want {
		t.Fatalf("Count %d != Group %d", got, want)
	}
}
