package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(recs []Recommendation) []Level {
	out := make([]Level, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Level)
	}
	return out
}

func TestRecommend_Scenario(t *testing.T) {
	recs := Build(scenarioPositions(), testNow, DefaultOptions()).Recommendations
	require.Len(t, recs, 4)
	assert.Equal(t, []Level{LevelCritical, LevelWarning, LevelWarning, LevelInfo}, levels(recs))
	assert.Equal(t, "Some positions don't have Take Profit!", recs[1].Message)
	assert.Equal(t, "More losing positions than winning!", recs[2].Message)
	assert.Len(t, recs[3].Hints, 2)
}

func TestRecommend_HealthyBook(t *testing.T) {
	r := &Report{
		Winning: WinningSection{Count: 2},
		Losing:  LosingSection{Count: 2},
	}
	// Equal counts do not trigger the losing warning.
	assert.Empty(t, Recommend(r))
	assert.Empty(t, Recommend(nil))
}

func TestRecommend_ThresholdInMessage(t *testing.T) {
	r := &Report{Age: AgeSection{ThresholdHours: 12.5, Old: 1}}
	recs := Recommend(r)
	require.Len(t, recs, 1)
	assert.Equal(t, "Some positions are open for > 12.5h", recs[0].Message)
}
