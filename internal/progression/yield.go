package progression

import (
	"math"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/config"
	"GymSimulator/internal/model"
)

// Radio targets.
const (
	RadioClick = "click"
	RadioAuto  = "auto"
	RadioCombo = "combo"
)

// chaosThreshold is the chaos score from which the rerolled multiplier applies.
const chaosThreshold = 4

// Cost is the price of the next unit of u when owned units are held.
func Cost(u model.Upgrade, owned int) float64 {
	if u.BasePrice == 0 {
		return 0
	}
	return math.Floor(u.BasePrice * math.Pow(u.Growth, float64(owned)))
}

// Shape folds every owned upgrade into a stat sheet.
func Shape(st *model.State) model.Sheet {
	s := model.NewSheet()
	for _, u := range catalog.Upgrades {
		u.Effect.Shape(&s, st.Owned[u.ID])
	}
	return s
}

func ownedWithSynergy(st *model.State, syn model.Synergy) int {
	n := 0
	for _, u := range catalog.Upgrades {
		if u.Synergy == syn {
			n += st.Owned[u.ID]
		}
	}
	return n
}

// ClickSynergy is +10% per 10 owned click-build upgrades.
func ClickSynergy(st *model.State) float64 {
	return 1 + math.Floor(float64(ownedWithSynergy(st, model.SynergyClick))/10)*0.10
}

// AutoSynergy is +5% per 5 owned auto-build upgrades.
func AutoSynergy(st *model.State) float64 {
	return 1 + math.Floor(float64(ownedWithSynergy(st, model.SynergyAuto))/5)*0.05
}

// ChaosScore counts owned chaos upgrades.
func ChaosScore(st *model.State) int {
	n := 0
	for _, u := range catalog.Upgrades {
		if u.Chaos {
			n += st.Owned[u.ID]
		}
	}
	return n
}

// ChaosActive reports whether the chaos synergy multiplier applies.
func ChaosActive(st *model.State) bool {
	return ChaosScore(st) >= chaosThreshold
}

// ChaosBonus is the current rerolled chaos multiplier, or 1 below the threshold.
func ChaosBonus(st *model.State) float64 {
	if !ChaosActive(st) || st.ChaosMultiplier <= 0 {
		return 1
	}
	return st.ChaosMultiplier
}

// MomentumBonus is +2% per momentum tick.
func MomentumBonus(st *model.State) float64 {
	return 1 + float64(st.MomentumTicks)*0.02
}

// AscensionBonus doubles all gains per ascension star.
func AscensionBonus(st *model.State) float64 {
	return math.Pow(2, float64(st.AscensionStars))
}

// LongHaulBonus is the permanent +25% of The Long Haul secret.
func LongHaulBonus(st *model.State) float64 {
	if st.Earned(catalog.RewardLongHaul) {
		return 1.25
	}
	return 1
}

// RestBonus is the offline rest multiplier while its window lasts.
func RestBonus(st *model.State, now time.Time) float64 {
	if st.Rest.Active(now) {
		return st.Rest.Mult
	}
	return 1
}

// BoostBonus multiplies every active temporary click boost.
func BoostBonus(st *model.State, now time.Time) float64 {
	m := 1.0
	for _, b := range st.Boosts {
		if b.Active(now) {
			m *= b.Mult
		}
	}
	return m
}

// RadioBonus is the station bonus for target.
func RadioBonus(station model.Station, target string) float64 {
	switch {
	case station == model.StationRock && target == RadioClick:
		return 1.15
	case station == model.StationLofi && target == RadioAuto:
		return 1.20
	case station == model.StationMetal && target == RadioCombo:
		return 1.25
	}
	return 1
}

// MysteryBonus is the rolled Mystery Supplement multiplier.
func MysteryBonus(st *model.State) float64 {
	if st.Mystery == nil {
		return 1
	}
	return st.Mystery.Mult
}

// EventActive returns the ordinary event still in effect at now.
func EventActive(st *model.State, now time.Time) (*model.ActiveEvent, bool) {
	if st.Event == nil || !now.Before(st.Event.Until) {
		return nil, false
	}
	return st.Event, true
}

// EventMultiplier is the active event multiplier for automation; a
// malfunction yields zero.
func EventMultiplier(st *model.State, now time.Time) float64 {
	ev, ok := EventActive(st, now)
	if !ok {
		return 1
	}
	if ev.Def.AutoOffline {
		return 0
	}
	return ev.Def.Multiplier
}

// ClickEventMultiplier is the active event multiplier for clicks; a
// malfunction leaves clicks untouched.
func ClickEventMultiplier(st *model.State, now time.Time) float64 {
	ev, ok := EventActive(st, now)
	if !ok || ev.Def.AutoOffline {
		return 1
	}
	return ev.Def.Multiplier
}

// EffectiveClick is the per-click yield before combo, event and mystery.
func EffectiveClick(st *model.State, sheet model.Sheet, now time.Time) float64 {
	rpc := st.RepsPerClick * sheet.ClickMult
	rpc *= ClickSynergy(st)
	rpc *= st.GainsMultiplier
	rpc *= LongHaulBonus(st)
	rpc *= MomentumBonus(st)
	rpc *= RestBonus(st, now)
	rpc *= RadioBonus(st.Station, RadioClick)
	rpc *= ChaosBonus(st)
	rpc *= AscensionBonus(st)
	rpc *= BoostBonus(st, now)
	return rpc
}

// ClickGain is the whole number of reps one click earns right now.
func ClickGain(st *model.State, sheet model.Sheet, now time.Time) float64 {
	gain := EffectiveClick(st, sheet, now) * st.Combo.Multiplier
	gain *= ClickEventMultiplier(st, now)
	gain *= MysteryBonus(st)
	return math.Floor(gain)
}

// AutoRps is the automation yield in reps per second.
func AutoRps(st *model.State, sheet model.Sheet, now time.Time) float64 {
	if st.AutoTier <= 0 {
		return 0
	}
	ev := EventMultiplier(st, now)
	if ev == 0 {
		return 0
	}

	var base float64
	switch st.AutoTier {
	case 1:
		base = st.RepsPerClick / 3
	case 2:
		base = st.RepsPerClick
	default:
		base = st.RepsPerClick * 2
	}

	base *= sheet.AutoPreMult
	base += sheet.AutoFlat
	base *= sheet.AutoPostMult
	if sheet.VortexPerMinute > 0 {
		base += math.Floor(float64(st.LifetimeSeconds)/60) * sheet.VortexPerMinute
	}

	base *= AutoSynergy(st)
	base *= st.GainsMultiplier
	base *= LongHaulBonus(st)
	base *= MomentumBonus(st)
	base *= RestBonus(st, now)
	base *= RadioBonus(st.Station, RadioAuto)
	base *= ChaosBonus(st)
	base *= AscensionBonus(st)
	return base * ev
}

// AutoInterval is the payout period for an automation tier. Coarser tiers
// pay rps times the interval so throughput stays continuous.
func AutoInterval(tier int) time.Duration {
	switch {
	case tier <= 0:
		return 0
	case tier == 1:
		return 3 * time.Second
	case tier == 2:
		return time.Second
	default:
		return 500 * time.Millisecond
	}
}

// MomentumInterval is the momentum tick period, halved by Morning Routine.
func MomentumInterval(st *model.State, b config.Balance) time.Duration {
	if st.Perks[catalog.PerkMorningRoutine] {
		return b.MomentumTick / 2
	}
	return b.MomentumTick
}
