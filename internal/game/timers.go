package game

import (
	"time"

	"GymSimulator/internal/progression"
	"GymSimulator/internal/view"
)

// Named timers. Scheduling a name replaces whatever ran under it.
const (
	timerAuto     = "auto"
	timerMomentum = "momentum"
	timerCombo    = "combo"
	timerEvent    = "event"
	timerEventEnd = "eventEnd"
	timerChain    = "chain"
	timerGoblin   = "goblin"
	timerAutosave = "autosave"
	timerLifetime = "lifetime"
	timerChaos    = "chaos"
)

// comboGrace is added to the combo window before the streak expires.
const comboGrace = 100 * time.Millisecond

// guard wraps a timer callback so it is dropped once the run it was
// scheduled in has been reset.
func (g *Game) guard(fn func()) func() {
	run := g.run
	return func() {
		if g.run != run {
			return
		}
		fn()
	}
}

// startTimers starts every recurring timer of a run.
func (g *Game) startTimers() {
	g.autoEvery = 0
	g.restartAuto()
	g.momentumEvery = 0
	g.restartMomentum()
	g.scheduleNextEvent()
	if progression.ChaosActive(g.st) {
		g.startChaos()
	}
	g.timers.Every(timerAutosave, g.balance.AutosaveInterval, g.guard(g.Save))
	g.timers.Every(timerLifetime, g.balance.LifetimeInterval, g.guard(g.lifetimeTick))
}

// restartAuto keeps the automation timer in step with the current tier.
func (g *Game) restartAuto() {
	every := progression.AutoInterval(g.st.AutoTier)
	if every == g.autoEvery && g.timers.Active(timerAuto) {
		return
	}
	g.autoEvery = every
	if every <= 0 {
		g.timers.Cancel(timerAuto)
		return
	}
	g.timers.Every(timerAuto, every, g.guard(g.autoTick))
}

func (g *Game) restartMomentum() {
	every := progression.MomentumInterval(g.st, g.balance)
	if every == g.momentumEvery && g.timers.Active(timerMomentum) {
		return
	}
	g.momentumEvery = every
	g.timers.Every(timerMomentum, every, g.guard(g.momentumTick))
}

func (g *Game) startChaos() {
	g.timers.Every(timerChaos, g.balance.ChaosInterval, g.guard(g.chaosTick))
}

func (g *Game) autoTick() {
	st := g.st
	if st.AutoTier <= 0 || g.autoEvery <= 0 {
		return
	}
	rps := progression.AutoRps(st, g.sheet, g.clock.Now())
	st.Earn(rps * g.autoEvery.Seconds())
	g.commit()
}

func (g *Game) momentumTick() {
	st := g.st
	if st.MomentumTicks >= g.balance.MaxMomentum {
		return
	}
	st.MomentumTicks++
	if st.MomentumTicks == g.balance.MaxMomentum {
		g.notify(view.NoticeEvent, "🔥 MAX MOMENTUM! +50% all gains!")
	}
	g.commit()
}

func (g *Game) comboExpired() {
	st := g.st
	st.Combo.Streak = 0
	st.Combo.Multiplier = 1
	g.commit()
}

func (g *Game) chaosTick() {
	st := g.st
	if !progression.ChaosActive(st) {
		return
	}
	st.ChaosMultiplier = g.gen.ChaosMultiplier()
	g.notify(view.NoticeEvent, "🌀 CHAOS SYNERGY REROLLED: x%.2f", st.ChaosMultiplier)
	g.commit()
}

func (g *Game) lifetimeTick() {
	g.accrue(g.clock.Now())
	g.commit()
}
