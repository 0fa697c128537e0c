package report

// Level ranks a recommendation.
type Level string

const (
	LevelCritical Level = "CRITICAL"
	LevelWarning  Level = "WARNING"
	LevelInfo     Level = "INFO"
)

type Recommendation struct {
	Level   Level    `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Hints   []string `json:"hints" yaml:"hints"`
}

// Recommend derives the static advice list from already computed sections.
func Recommend(r *Report) []Recommendation {
	out := make([]Recommendation, 0, 4)
	if r == nil {
		return out
	}
	if r.MissingStopLoss.Count > 0 {
		out = append(out, Recommendation{
			Level:   LevelCritical,
			Message: "Some positions don't have Stop Loss!",
			Hints:   []string{"Check PositionMonitor logs for SL placement errors"},
		})
	}
	if r.MissingTakeProfit.Count > 0 {
		out = append(out, Recommendation{
			Level:   LevelWarning,
			Message: "Some positions don't have Take Profit!",
			Hints:   []string{"Check PositionMonitor logs for TP placement errors"},
		})
	}
	if r.Losing.Count > r.Winning.Count {
		out = append(out, Recommendation{
			Level:   LevelWarning,
			Message: "More losing positions than winning!",
			Hints: []string{
				"Review entry conditions and trend filters",
				"Check if SL is being hit too early",
			},
		})
	}
	if r.Age.Old > 0 {
		out = append(out, Recommendation{
			Level:   LevelInfo,
			Message: "Some positions are open for > " + formatHours(r.Age.ThresholdHours) + "h",
			Hints: []string{
				"Review if these should still be open",
				"Check trailing TP logic",
			},
		})
	}
	return out
}
