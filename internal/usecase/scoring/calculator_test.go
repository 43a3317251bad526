package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestScoreAttendance(t *testing.T) {
	cases := []struct {
		rate float64
		want int
	}{
		{1.00, 30},
		{0.95, 30},
		{0.875, 22}, // middle band: 20 + (rate-0.85)/0.10*10
		{0.76, 11},  // lower band: 10 + (rate-0.75)/0.10*10
		{0.72, 9},   // below 75% the penalty curve applies
		{0.50, 6},
		{0.00, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ScoreAttendance(c.rate), "rate %v", c.rate)
	}
}

func TestScoreSpeeches(t *testing.T) {
	calc := NewCalculator(DefaultTargets())

	assert.Equal(t, 0, calc.ScoreSpeeches(0))
	assert.Equal(t, 0, calc.ScoreSpeeches(-1))
	assert.Equal(t, 5, calc.ScoreSpeeches(1))
	assert.Equal(t, 30, calc.ScoreSpeeches(60))  // full marks at the target
	assert.Equal(t, 30, calc.ScoreSpeeches(120)) // clamped above it

	// Monotonic non-decreasing.
	prev := 0
	for count := 0; count <= 200; count++ {
		got := calc.ScoreSpeeches(count)
		require.GreaterOrEqual(t, got, prev, "curve decreased at count %d", count)
		prev = got
	}
}

func TestScoreQuestionsAndBills(t *testing.T) {
	calc := NewCalculator(DefaultTargets())

	assert.Equal(t, 0, calc.ScoreQuestions(0))
	assert.Equal(t, 7, calc.ScoreQuestions(10))
	assert.Equal(t, 15, calc.ScoreQuestions(20))
	assert.Equal(t, 15, calc.ScoreQuestions(100))

	assert.Equal(t, 0, calc.ScoreBills(0))
	assert.Equal(t, 3, calc.ScoreBills(1))
	assert.Equal(t, 6, calc.ScoreBills(2))
	assert.Equal(t, 15, calc.ScoreBills(5))
	assert.Equal(t, 15, calc.ScoreBills(9))
}

func TestCalculate_KnownProfiles(t *testing.T) {
	calc := NewCalculator(DefaultTargets())

	t.Run("highly active member", func(t *testing.T) {
		b := calc.Calculate(Stats{
			MemberID:       "A",
			AttendanceRate: floatPtr(0.98),
			SessionCount:   120,
			QuestionCount:  30,
			SponsoredBills: 5,
			CommitteeRate:  floatPtr(0.95),
		})
		require.NotNil(t, b.Attendance)
		assert.Equal(t, 30, *b.Attendance)
		assert.Equal(t, 30, *b.Speeches)
		assert.Equal(t, 15, *b.Questions)
		assert.Equal(t, 15, *b.Bills)
		assert.Equal(t, 9, *b.Committee)
		assert.Equal(t, 99, b.Total)
	})

	t.Run("low activity member", func(t *testing.T) {
		b := calc.Calculate(Stats{
			MemberID:       "B",
			AttendanceRate: floatPtr(0.72),
			SessionCount:   8,
			QuestionCount:  1,
			SponsoredBills: 0,
			CommitteeRate:  floatPtr(0.60),
		})
		assert.Equal(t, 9, *b.Attendance)
		assert.Equal(t, 16, *b.Speeches)
		assert.Equal(t, 0, *b.Questions)
		assert.Equal(t, 0, *b.Bills)
		assert.Equal(t, 6, *b.Committee)
		assert.Equal(t, 31, b.Total)
	})
}

func TestCalculate_BoundsAndSum(t *testing.T) {
	calc := NewCalculator(DefaultTargets())

	profiles := []Stats{
		{},
		{AttendanceRate: floatPtr(1.0), SessionCount: 1000, QuestionCount: 1000, SponsoredBills: 1000, CommitteeRate: floatPtr(1.0)},
		{AttendanceRate: floatPtr(0.5), SessionCount: 3, QuestionCount: 2, SponsoredBills: 1, CommitteeRate: floatPtr(0.3)},
		{SessionCount: 40}, // rates unavailable
	}

	for i, p := range profiles {
		b := calc.Calculate(p)
		require.GreaterOrEqual(t, b.Total, 0, "profile %d", i)
		require.LessOrEqual(t, b.Total, 100, "profile %d", i)

		sum := 0
		for _, sub := range []*int{b.Attendance, b.Speeches, b.Questions, b.Bills, b.Committee} {
			if sub != nil {
				sum += *sub
			}
		}
		assert.Equal(t, sum, b.Total, "profile %d: total must equal exact sub-score sum", i)
	}
}

func TestCalculate_MissingInputsStayNil(t *testing.T) {
	calc := NewCalculator(DefaultTargets())

	// A chamber without published vote records yields no attendance input.
	b := calc.Calculate(Stats{SessionCount: 10, QuestionCount: 5})
	assert.Nil(t, b.Attendance, "unavailable input must stay nil, not zero")
	assert.Nil(t, b.Committee)
	require.NotNil(t, b.Speeches)
	assert.Equal(t, *b.Speeches+*b.Questions+*b.Bills, b.Total)
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "活発", ScoreLabel(85).Text)
	assert.Equal(t, "普通", ScoreLabel(60).Text)
	assert.Equal(t, "低調", ScoreLabel(40).Text)
	assert.Equal(t, "不活発", ScoreLabel(10).Text)
	assert.True(t, ScoreLabel(39).Alert)
	assert.False(t, ScoreLabel(80).Alert)
}
