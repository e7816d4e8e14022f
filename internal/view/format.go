package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"GymSimulator/internal/model"
)

var suffixes = []struct {
	val    float64
	suffix string
}{
	{1e12, "T"}, {1e9, "B"}, {1e6, "M"}, {1e3, "K"},
}

// absurdNames label every thousandfold step from 1e15 upwards.
var absurdNames = []string{"Goblin Gainz", "Chad Stacks", "Swole Units", "Absolute Numbers", "Sigma Reps"}

// FormatReps renders a rep count: plain below 1000, K/M/B/T with two
// decimals up to 1e15, absurd names beyond.
func FormatReps(n float64) string {
	n = math.Floor(n)
	if n >= 1e15 {
		div, idx := 1e15, 0
		for n >= div*1000 {
			div *= 1000
			idx++
		}
		return fmt.Sprintf("%.2f %s", n/div, absurdNames[min(idx, len(absurdNames)-1)])
	}
	for _, s := range suffixes {
		if n >= s.val {
			return fmt.Sprintf("%.2f%s", n/s.val, s.suffix)
		}
	}
	return strconv.FormatFloat(n, 'f', 0, 64)
}

// FormatCoins renders a GymCoin count with thousands separators.
func FormatCoins(n int64) string {
	return humanize.Comma(n) + " 🪙"
}

// FormatAway renders how long the player was gone, e.g. "2 hours".
func FormatAway(d time.Duration) string {
	now := time.Unix(0, 0)
	return strings.TrimSpace(humanize.RelTime(now.Add(-d), now, "", ""))
}

// OfflineText is the body of the welcome-back report.
func OfflineText(r *model.OfflineReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💤 You were away for %s.\n", FormatAway(r.Elapsed)))
	b.WriteString(fmt.Sprintf("🤖 Your auto-gym earned %s reps while you were gone.\n", FormatReps(r.Earned)))
	if r.RestFor > 0 {
		b.WriteString(fmt.Sprintf("⚡ Rest Bonus active: x2 gains for %.0f minutes!\n", r.RestFor.Minutes()))
	}
	return b.String()
}

// BodyFat is the made-up mirror stat, shrinking with lifetime reps down to 3%.
func BodyFat(lifetime float64) float64 {
	return math.Max(3, 35-math.Log10(math.Max(1, lifetime))*3)
}

// Stars marks upgrades owned in bulk.
func Stars(owned int) string {
	switch {
	case owned >= 50:
		return "🌟"
	case owned >= 25:
		return "⭐⭐"
	case owned >= 10:
		return "⭐"
	}
	return ""
}
