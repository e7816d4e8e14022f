package save

import (
	"math"
	"time"

	"GymSimulator/internal/config"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
)

// restMultiplier is the rest bonus granted after a long absence.
const restMultiplier = 2

// ApplyOffline credits the automation earned between lastSave and now and
// opens the rest window. The rate is taken before the rest bonus starts.
// It returns nil when the absence was too short to report.
func ApplyOffline(st *model.State, lastSave, now time.Time, b config.Balance) *model.OfflineReport {
	if lastSave.IsZero() {
		return nil
	}
	elapsed := now.Sub(lastSave)
	if elapsed < b.OfflineMin {
		return nil
	}

	capped := min(elapsed, b.MaxOffline)
	rps := progression.AutoRps(st, progression.Shape(st), now)
	earned := math.Floor(rps * capped.Seconds())

	report := &model.OfflineReport{Elapsed: elapsed, Earned: earned}
	if elapsed > b.RestThreshold {
		window := time.Duration(capped.Hours() * 5 * float64(time.Minute))
		report.RestFor = min(window, b.RestMaxWindow)
		st.Rest = model.TimedMultiplier{Source: "rest", Mult: restMultiplier, Until: now.Add(report.RestFor)}
	}
	st.Earn(earned)

	if earned == 0 && report.RestFor == 0 {
		return nil
	}
	return report
}
