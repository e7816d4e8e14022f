package game

import (
	"log"
	"math"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
	"GymSimulator/internal/view"
)

const (
	// goblinChaseFactor is how many clicks' worth of reps one chase click recovers.
	goblinChaseFactor = 5
	flavorChance      = 0.15
)

// Click performs one workout click.
func (g *Game) Click() {
	now := g.clock.Now()
	st := g.st
	defer g.commit()

	g.updateCombo(now)

	st.NoBuyClicks++
	if r, _ := catalog.Reward(catalog.RewardMethodActor); float64(st.NoBuyClicks) == r.Threshold {
		g.unlockSecret(catalog.RewardMethodActor)
	}

	if st.Goblin != nil {
		g.chaseGoblin()
		return
	}

	if every := g.sheet.BadAdviceEvery; every > 0 {
		st.BadAdviceCounter = (st.BadAdviceCounter + 1) % every
		if st.BadAdviceCounter == 0 {
			st.TotalClicks++
			g.notify(view.NoticeError, "🧠 Bro science says skip this rep. 0 reps.")
			return
		}
	}

	gain := progression.ClickGain(st, g.sheet, now)
	st.Earn(gain)
	st.TotalClicks++

	if g.sheet.MeatChance > 0 && g.gen.Chance(g.sheet.MeatChance) {
		bonus := math.Floor(gain * g.sheet.MeatBonus)
		st.Earn(bonus)
		st.Boosts = append(st.Boosts, model.TimedMultiplier{Source: "meat", Mult: g.sheet.MeatBoost, Until: now.Add(g.sheet.MeatDuration)})
		g.notify(view.NoticeEvent, "🥩 MEAT EVENT! +%s reps and x%g clicks!", view.FormatReps(bonus), g.sheet.MeatBoost)
	}

	if g.gen.Chance(flavorChance) {
		st.Flavor = g.gen.Flavor()
	}

	if progression.Midnight(now) {
		g.unlockSecret(catalog.RewardMidnight)
	}
}

// Buy purchases one unit of an upgrade with reps.
func (g *Game) Buy(id string) error {
	u, ok := catalog.Upgrade(id)
	if !ok {
		return g.reject(ErrUnknownUpgrade, "Unknown upgrade.")
	}
	st := g.st
	owned := st.Owned[id]
	if u.Maxed(owned) {
		return g.reject(ErrMaxed, "Already maxed!")
	}
	cost := progression.Cost(u, owned)
	if st.Reps < cost {
		return g.reject(ErrInsufficientReps, "Need %s reps!", view.FormatReps(cost))
	}

	st.Reps -= cost
	st.NoBuyClicks = 0
	g.grant(u)
	g.notify(view.NoticeSuccess, "%s %s purchased!", u.Icon, u.Name)
	g.Save()
	g.commit()
	return nil
}

// grant adds one owned unit of u and applies its purchase effect.
func (g *Game) grant(u model.Upgrade) {
	st := g.st
	st.Owned[u.ID]++
	u.Effect.Bought(st)

	if u.ID == catalog.MysterySupp && st.Mystery == nil {
		m := g.gen.Mystery()
		st.Mystery = &m
		g.notify(view.NoticeEvent, "%s", m.Msg)
	}

	g.sheet = progression.Shape(st)
	g.restartAuto()
	if progression.ChaosActive(st) && !g.timers.Active(timerChaos) {
		g.startChaos()
	}
}

// BuyPerk purchases a permanent perk with GymCoins.
func (g *Game) BuyPerk(id string) error {
	p, ok := catalog.Perk(id)
	if !ok {
		return g.reject(ErrUnknownPerk, "Unknown perk.")
	}
	st := g.st
	if st.Perks[id] {
		return g.reject(ErrAlreadyOwned, "Already owned!")
	}
	if st.GymCoins < p.Cost {
		return g.reject(ErrInsufficientCoins, "Need %d 🪙 GymCoins!", p.Cost)
	}

	st.GymCoins -= p.Cost
	st.Perks[id] = true
	if id == catalog.PerkMorningRoutine {
		g.restartMomentum()
	}
	g.notify(view.NoticeSuccess, "✅ %s %s permanently unlocked!", p.Icon, p.Name)
	g.Save()
	g.commit()
	return nil
}

// Prestige trades the run for GymCoins and a permanent gains multiplier.
func (g *Game) Prestige() error {
	st := g.st
	if !progression.CanPrestige(st, g.balance) {
		return g.reject(ErrPrestigeLocked, "Need %s reps to Go Pro!", view.FormatReps(g.balance.PrestigeThreshold))
	}

	repsBefore := st.Reps
	coins := progression.PrestigeCoins(st)
	st.GymCoins += coins
	st.TotalGymCoinsEarned += coins
	st.PrestigeCount++
	st.LifetimePrestiges++
	st.GainsMultiplier = progression.PrestigeGains(st.PrestigeCount)
	g.newRun()

	title := progression.Title(st.PrestigeCount)
	log.Printf("[INFO] prestige %d: +%d coins, now %s", st.PrestigeCount, coins, title.Name)
	g.notify(view.NoticeCongrats, "🌟 WENT PRO! Now: %s! +%d 🪙 GymCoins!", title.Name, coins)
	g.recordReset("PRESTIGE", repsBefore, coins)
	g.Save()
	g.commit()
	return nil
}

// Ascend spends ten prestiges on a permanent ascension star.
func (g *Game) Ascend() error {
	st := g.st
	if !progression.CanAscend(st, g.balance) {
		return g.reject(ErrAscensionLocked, "Need %d lifetime prestiges to ascend!", g.balance.AscensionThreshold)
	}

	repsBefore := st.Reps
	st.AscensionStars++
	st.PrestigeCount = 0
	st.GainsMultiplier = 1
	st.GymCoins = 0
	st.LifetimePrestiges = 0
	st.Perks = make(map[string]bool)
	g.newRun()

	log.Printf("[INFO] ascension %d", st.AscensionStars)
	g.notify(view.NoticeCongrats, "✨ ASCENDED! Star %d/%d! All gains x%g!", st.AscensionStars, g.balance.MaxAscensionStars, progression.AscensionBonus(st))
	g.recordReset("ASCENSION", repsBefore, 0)
	g.Save()
	g.commit()
	return nil
}

// Reset wipes the save slot and starts over from nothing.
func (g *Game) Reset() {
	now := g.clock.Now()
	old := g.st
	g.timers.CancelAll()
	g.run++
	if err := g.slot.Wipe(); err != nil {
		log.Printf("[ERROR] wipe save: %v", err)
	}

	st := model.NewState()
	st.Station = old.Station
	st.UltraFired = old.UltraFired
	g.st = st
	g.sheet = progression.Shape(st)
	g.accruedAt = now
	g.loadDaily(now)
	g.startTimers()

	log.Println("[INFO] full reset")
	g.notify(view.NoticeSuccess, "Complete reset. The gains begin again. 💪")
	g.recordReset("RESET", old.Reps, 0)
	g.commit()
}

// ToggleStation tunes the radio to name, or turns it off when name is
// already playing.
func (g *Game) ToggleStation(name string) error {
	station := model.Station(name)
	switch station {
	case model.StationRock, model.StationLofi, model.StationMetal:
	default:
		return g.reject(ErrUnknownStation, "Unknown station.")
	}

	st := g.st
	if st.Station == station {
		st.Station = model.StationOff
	} else {
		st.Station = station
	}
	if st.Combo.Streak > 0 {
		st.Combo.Multiplier = progression.ComboMultiplier(st.Combo.Streak, st.Station)
	}

	switch st.Station {
	case model.StationRock:
		g.notify(view.NoticeSuccess, "🎸 Rock: +15% click power")
	case model.StationLofi:
		g.notify(view.NoticeSuccess, "🎵 Lo-fi: +20% auto gains")
	case model.StationMetal:
		g.notify(view.NoticeSuccess, "🤘 Metal: +25% combo multiplier")
	default:
		g.notify(view.NoticeSuccess, "📻 Radio off. Silence is also gains.")
	}
	g.commit()
	return nil
}

// CloseOfflineReport dismisses the welcome-back report.
func (g *Game) CloseOfflineReport() {
	g.st.Offline = nil
	g.commit()
}

// newRun cancels the old run's timers, clears the run and starts it again
// with the starting perks applied.
func (g *Game) newRun() {
	g.timers.CancelAll()
	g.run++

	st := g.st
	st.ResetRun()
	if st.Perks[catalog.PerkStartingSupps] {
		if u, ok := catalog.Upgrade(catalog.ProteinShake); ok {
			for i := 0; i < 10; i++ {
				st.Owned[u.ID]++
				u.Effect.Bought(st)
			}
		}
	}
	if st.Perks[catalog.PerkVIPMembership] {
		if u, ok := catalog.Upgrade(catalog.AutoGym); ok {
			st.Owned[u.ID]++
			u.Effect.Bought(st)
		}
	}
	g.sheet = progression.Shape(st)
	g.startTimers()
}

func (g *Game) updateCombo(now time.Time) {
	st := g.st
	window := progression.ComboWindow(st, g.sheet, g.balance)
	c := &st.Combo
	if !c.LastClickAt.IsZero() && now.Sub(c.LastClickAt) <= window {
		c.Streak = min(c.Streak+1, progression.ComboCap(g.sheet, g.balance))
	} else {
		c.Streak = 1
	}
	c.LastClickAt = now
	c.Multiplier = progression.ComboMultiplier(c.Streak, st.Station)

	g.timers.After(timerCombo, window+comboGrace, g.guard(g.comboExpired))
}
