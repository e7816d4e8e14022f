package progression

import (
	"math"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/config"
	"GymSimulator/internal/model"
)

// comboMasterBonus is the extra window granted by the Combo Master perk.
const comboMasterBonus = 400 * time.Millisecond

// ComboWindow is the longest gap between clicks that keeps a streak alive.
func ComboWindow(st *model.State, sheet model.Sheet, b config.Balance) time.Duration {
	w := b.ComboWindow + sheet.ComboWindowBonus
	if st.Perks[catalog.PerkComboMaster] {
		w += comboMasterBonus
	}
	return w
}

// ComboCap is the highest reachable streak.
func ComboCap(sheet model.Sheet, b config.Balance) int {
	c := b.ComboBaseCap + sheet.ComboCapBonus
	if c > b.ComboMaxCap {
		c = b.ComboMaxCap
	}
	return c
}

// ComboMultiplier is 1 + 0.25 per three streak clicks, scaled by metal radio.
func ComboMultiplier(streak int, station model.Station) float64 {
	return 1 + math.Floor(float64(streak)/3)*0.25*RadioBonus(station, RadioCombo)
}

// PrestigeGains is the gains multiplier held after count prestiges.
func PrestigeGains(count int) float64 {
	return 1 + float64(count)*0.5
}

// CanPrestige reports whether Go Pro is available.
func CanPrestige(st *model.State, b config.Balance) bool {
	return st.Reps >= b.PrestigeThreshold
}

// CanAscend reports whether an ascension is available.
func CanAscend(st *model.State, b config.Balance) bool {
	return st.LifetimePrestiges >= b.AscensionThreshold && st.AscensionStars < b.MaxAscensionStars
}

// PrestigeCoins is the GymCoin payout of a prestige right now.
func PrestigeCoins(st *model.State) int64 {
	logReps := math.Max(1, math.Log10(math.Max(st.LifetimeReps, 1)))
	influencer := 1.0
	if st.Perks[catalog.PerkGymInfluencer] {
		influencer = 2
	}
	return int64(math.Max(1, math.Floor(logReps*influencer)))
}

// Title returns the title for a prestige count by nearest-below threshold.
func Title(count int) model.Title {
	t := catalog.Titles[0]
	for _, pt := range catalog.Titles {
		if count >= pt.Min {
			t = pt
		}
	}
	return t
}

// Visible returns the upgrades shown in the shop.
func Visible(st *model.State) []model.Upgrade {
	var out []model.Upgrade
	for _, u := range catalog.Upgrades {
		if u.Maxed(st.Owned[u.ID]) || st.Reps >= u.UnlockAt || st.LifetimeReps >= u.UnlockAt*0.5 {
			out = append(out, u)
		}
	}
	return out
}

// Midnight reports whether now falls in the 02:00-04:00 secret window.
func Midnight(now time.Time) bool {
	h := now.Hour()
	return h >= 2 && h < 4
}

// ReqValue is the current value of an achievement's requirement.
func ReqValue(st *model.State, r model.Reward, now time.Time) float64 {
	switch r.Req {
	case model.ReqReps:
		return st.Reps
	case model.ReqUpgrades:
		return float64(st.TotalOwned())
	case model.ReqAutoTier:
		return float64(st.AutoTier)
	case model.ReqClicks:
		return float64(st.TotalClicks)
	case model.ReqPrestige:
		return float64(st.PrestigeCount)
	case model.ReqAscension:
		return float64(st.AscensionStars)
	case model.ReqGoblin:
		if st.Earned(catalog.RewardGoblinCaught) {
			return 1
		}
		return 0
	case model.ReqLifetimeSeconds:
		return float64(st.LifetimeSeconds)
	case model.ReqSecretNoBuyClick:
		return float64(st.NoBuyClicks)
	case model.ReqSecretMidnight:
		if Midnight(now) {
			return 1
		}
		return 0
	}
	return 0
}

// NewlyEarned lists unearned achievements whose threshold is met. Secrets
// are left to their trigger points, except the playtime one.
func NewlyEarned(st *model.State, now time.Time) []model.Reward {
	var out []model.Reward
	for _, r := range catalog.Rewards {
		if st.Earned(r.ID) {
			continue
		}
		if r.Secret && r.Req != model.ReqLifetimeSeconds {
			continue
		}
		if ReqValue(st, r, now) >= r.Threshold {
			out = append(out, r)
		}
	}
	return out
}

// NextReward is the first unearned non-secret achievement, falling back to
// the first unearned secret.
func NextReward(st *model.State) (model.Reward, bool) {
	for _, r := range catalog.Rewards {
		if !r.Secret && !st.Earned(r.ID) {
			return r, true
		}
	}
	for _, r := range catalog.Rewards {
		if !st.Earned(r.ID) {
			return r, true
		}
	}
	return model.Reward{}, false
}

// Progress is the percentage towards NextReward, 100 when all are earned.
func Progress(st *model.State, now time.Time) float64 {
	r, ok := NextReward(st)
	if !ok {
		return 100
	}
	return math.Min(100, ReqValue(st, r, now)/r.Threshold*100)
}

// DailyTarget is the daily goal target and GymCoin reward for a prestige count.
func DailyTarget(prestige int) (float64, int64) {
	targets := []float64{500, 5000, 50000, 500000, 5000000}
	i := prestige
	if i > len(targets)-1 {
		i = len(targets) - 1
	}
	return targets[i], int64(2 + prestige)
}
