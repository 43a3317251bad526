// Package scoring computes the composite 0-100 activity score.
//
// Score composition (sums to 100):
//
//	attendance  30  session-attendance rate
//	speeches    30  speech sessions, log-scaled
//	questions   15  written questions
//	bills       15  member-sponsored bills
//	committee   10  committee attendance rate
//
// Each metric is an independent function so new indicators can be added
// without touching the others.
package scoring

import (
	"math"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// Targets holds the normalization targets: the raw count that earns full
// marks on each count-based sub-score. Tunables with the long-standing
// defaults; every curve stays monotonic non-decreasing and maps 0 to 0.
type Targets struct {
	// SpeechFullMarks is the session count treated as a fully active
	// speaker (log curve reference point).
	SpeechFullMarks int `envconfig:"SCORE_SPEECH_FULL_MARKS" default:"60"`

	// QuestionFullMarks is the written-question count for full marks.
	QuestionFullMarks int `envconfig:"SCORE_QUESTION_FULL_MARKS" default:"20"`

	// BillFullMarks is the sponsored-bill count for full marks.
	BillFullMarks int `envconfig:"SCORE_BILL_FULL_MARKS" default:"5"`
}

// DefaultTargets returns the standard normalization targets
func DefaultTargets() Targets {
	return Targets{
		SpeechFullMarks:   60,
		QuestionFullMarks: 20,
		BillFullMarks:     5,
	}
}

// Stats is the raw per-member input to the calculator. Rate fields are nil
// when the member's chamber does not publish the underlying records; a nil
// input yields a nil sub-score, which is "not applicable", not zero.
type Stats struct {
	MemberID       string
	AttendanceRate *float64 // 0.0 - 1.0
	SessionCount   int      // speech sessions in the current Diet session
	QuestionCount  int      // written questions submitted
	SponsoredBills int      // member-sponsored bills
	CommitteeRate  *float64 // committee attendance, 0.0 - 1.0
}

// Breakdown is the scored result. Nil sub-scores carry "input unavailable"
// through to the API; they count as 0 in Total.
type Breakdown struct {
	Attendance *int `json:"attendance"` // 0-30
	Speeches   *int `json:"speeches"`   // 0-30
	Questions  *int `json:"questions"`  // 0-15
	Bills      *int `json:"bills"`      // 0-15
	Committee  *int `json:"committee"`  // 0-10
	Total      int  `json:"total"`      // 0-100
}

// Calculator converts raw member stats into score breakdowns
type Calculator struct {
	targets Targets
}

// NewCalculator creates a calculator with the given normalization targets.
// Out-of-range targets fall back to the defaults.
func NewCalculator(targets Targets) *Calculator {
	def := DefaultTargets()
	if targets.SpeechFullMarks <= 0 {
		targets.SpeechFullMarks = def.SpeechFullMarks
	}
	if targets.QuestionFullMarks <= 0 {
		targets.QuestionFullMarks = def.QuestionFullMarks
	}
	if targets.BillFullMarks <= 0 {
		targets.BillFullMarks = def.BillFullMarks
	}
	return &Calculator{targets: targets}
}

// ScoreAttendance converts an attendance rate to 0-30 points. Below 75%
// the score drops off sharply.
func ScoreAttendance(rate float64) int {
	switch {
	case rate >= 0.95:
		return entities.MaxAttendanceScore
	case rate >= 0.85:
		return int(20 + (rate-0.85)/0.10*10)
	case rate >= 0.75:
		return int(10 + (rate-0.75)/0.10*10)
	default:
		if v := int(rate / 0.75 * 10); v > 0 {
			return v
		}
		return 0
	}
}

// ScoreSpeeches converts a session count to 0-30 points on a log scale, so
// one prolific speaker cannot zero out everyone else's share.
func (c *Calculator) ScoreSpeeches(count int) int {
	if count <= 0 {
		return 0
	}
	raw := math.Log(float64(count)+1) / math.Log(float64(c.targets.SpeechFullMarks)+1) * float64(entities.MaxSpeechScore)
	if v := int(raw); v < entities.MaxSpeechScore {
		return v
	}
	return entities.MaxSpeechScore
}

// ScoreQuestions converts a written-question count to 0-15 points
func (c *Calculator) ScoreQuestions(count int) int {
	if count <= 0 {
		return 0
	}
	v := int(float64(count) / float64(c.targets.QuestionFullMarks) * float64(entities.MaxQuestionScore))
	if v < entities.MaxQuestionScore {
		return v
	}
	return entities.MaxQuestionScore
}

// ScoreBills converts a sponsored-bill count to 0-15 points
func (c *Calculator) ScoreBills(count int) int {
	if count <= 0 {
		return 0
	}
	v := int(float64(count) / float64(c.targets.BillFullMarks) * float64(entities.MaxBillScore))
	if v < entities.MaxBillScore {
		return v
	}
	return entities.MaxBillScore
}

// ScoreCommittee converts a committee attendance rate to 0-10 points
func ScoreCommittee(rate float64) int {
	v := int(rate * float64(entities.MaxCommitteeScore))
	if v < entities.MaxCommitteeScore {
		return v
	}
	return entities.MaxCommitteeScore
}

// Calculate scores one member's stats. The total is the sum of the
// sub-scores with nil counted as 0, so it is always within [0, 100].
func (c *Calculator) Calculate(stats Stats) Breakdown {
	var b Breakdown

	if stats.AttendanceRate != nil {
		v := ScoreAttendance(*stats.AttendanceRate)
		b.Attendance = &v
	}
	speeches := c.ScoreSpeeches(stats.SessionCount)
	b.Speeches = &speeches
	questions := c.ScoreQuestions(stats.QuestionCount)
	b.Questions = &questions
	bills := c.ScoreBills(stats.SponsoredBills)
	b.Bills = &bills
	if stats.CommitteeRate != nil {
		v := ScoreCommittee(*stats.CommitteeRate)
		b.Committee = &v
	}

	for _, p := range []*int{b.Attendance, b.Speeches, b.Questions, b.Bills, b.Committee} {
		if p != nil {
			b.Total += *p
		}
	}
	return b
}

// Label is the display band for a total score
type Label struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Alert bool   `json:"alert"`
}

// ScoreLabel maps a total score to its display band
func ScoreLabel(total int) Label {
	switch {
	case total >= 80:
		return Label{Text: "活発", Color: "#22c55e"}
	case total >= 60:
		return Label{Text: "普通", Color: "#f59e0b"}
	case total >= 40:
		return Label{Text: "低調", Color: "#f97316", Alert: true}
	default:
		return Label{Text: "不活発", Color: "#ef4444", Alert: true}
	}
}
