package game

import (
	"log"
	"math"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/events"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
	"GymSimulator/internal/view"
)

const (
	goblinTheft    = 0.05
	goblinInterest = 1.5
	chaserBonus    = 1.5
	coachBoost     = 10
	coachDuration  = time.Minute
)

func (g *Game) scheduleNextEvent() {
	g.timers.After(timerEvent, g.gen.NextDelay(g.sheet), g.guard(g.rollEvent))
}

// rollEvent fires whatever the generator rolls. An event or chase still
// running schedules the next roll itself when it ends.
func (g *Game) rollEvent() {
	now := g.clock.Now()
	st := g.st
	if st.Goblin != nil {
		return
	}
	if _, ok := progression.EventActive(st, now); ok {
		return
	}

	r := g.gen.Roll(st)
	switch r.Kind {
	case events.KindGoblin:
		g.startGoblin(now)
	case events.KindUltra:
		st.UltraFired = true
		g.fireEvent(r.Def, now, "ULTRA")
	default:
		g.fireEvent(r.Def, now, "EVENT")
	}
	g.commit()
}

// fireEvent makes def the active event and applies its one-off effects.
func (g *Game) fireEvent(def model.EventDef, now time.Time, kind string) {
	st := g.st
	d := def.Duration
	if st.Perks[catalog.PerkEventChaser] {
		d = time.Duration(float64(d) * chaserBonus)
	}
	g.eventSeq++
	seq := g.eventSeq
	st.Event = &model.ActiveEvent{Def: def, Until: now.Add(d), Seq: seq}
	g.notify(view.NoticeEvent, "%s", def.Text)

	var amount float64
	switch {
	case def.OneHourDump:
		amount = math.Floor(progression.AutoRps(st, g.sheet, now) * 3600)
		st.Earn(amount)
	case def.GiftUpgrade:
		g.giveGift()
	case def.TempUpgrade:
		st.Boosts = append(st.Boosts, model.TimedMultiplier{Source: "coach", Mult: coachBoost, Until: now.Add(coachDuration)})
	}
	g.recordGameEvent(kind, def.ID, def.Multiplier, amount)

	if !def.Positive() && g.gen.ChainFollows() {
		st.PendingChain = true
		g.timers.After(timerChain, d+g.balance.ChainDelay, g.guard(g.fireChain))
	}
	g.timers.After(timerEventEnd, d, g.guard(func() { g.endEvent(seq) }))
}

// endEvent clears the event numbered seq, if it is still the active one.
func (g *Game) endEvent(seq uint64) {
	st := g.st
	if st.Event == nil || st.Event.Seq != seq {
		return
	}
	st.Event = nil
	g.scheduleNextEvent()
	g.commit()
}

func (g *Game) fireChain() {
	st := g.st
	if !st.PendingChain {
		return
	}
	st.PendingChain = false
	g.fireEvent(g.gen.PickChain(), g.clock.Now(), "CHAIN")
	g.commit()
}

// giveGift hands out one free unit of a random upgrade that is not maxed.
func (g *Game) giveGift() {
	var candidates []model.Upgrade
	for _, u := range catalog.Upgrades {
		if !u.Maxed(g.st.Owned[u.ID]) {
			candidates = append(candidates, u)
		}
	}
	u, ok := g.gen.Gift(candidates)
	if !ok {
		return
	}
	g.grant(u)
	g.notify(view.NoticeEvent, "🎁 Swole Santa gave you a free %s %s!", u.Icon, u.Name)
}

func (g *Game) startGoblin(now time.Time) {
	st := g.st
	stolen := math.Floor(st.Reps * goblinTheft)
	st.Reps -= stolen
	st.Goblin = &model.GoblinChase{Stolen: stolen, Debt: stolen, Until: now.Add(g.balance.GoblinWindow)}
	g.notify(view.NoticeEvent, "👹 GAINS GOBLIN stole %s reps! CLICK FAST to chase it down!", view.FormatReps(stolen))
	g.recordGameEvent("GOBLIN_STOLE", "", 0, stolen)
	g.timers.After(timerGoblin, g.balance.GoblinWindow, g.guard(g.goblinEscaped))
}

// chaseGoblin spends one click on the chase. Clearing the debt returns the
// theft with interest.
func (g *Game) chaseGoblin() {
	st := g.st
	chase := st.Goblin
	chase.Debt = math.Max(0, chase.Debt-st.RepsPerClick*goblinChaseFactor)
	if chase.Debt > 0 {
		return
	}

	refund := math.Floor(chase.Stolen * goblinInterest)
	st.Reps = math.Min(st.Reps+chase.Stolen, st.LifetimeReps)
	st.Earn(refund - chase.Stolen)
	st.Goblin = nil
	g.timers.Cancel(timerGoblin)

	if r, ok := catalog.Reward(catalog.RewardGoblinCaught); ok && !st.Earned(r.ID) {
		g.earn(r)
	}
	log.Printf("[INFO] goblin caught, refunded %.0f reps", refund)
	g.notify(view.NoticeCongrats, "👹 GOBLIN CAUGHT! Got back %s reps with interest!", view.FormatReps(refund))
	g.recordGameEvent("GOBLIN_CAUGHT", "", 0, refund)
	g.scheduleNextEvent()
}

func (g *Game) goblinEscaped() {
	st := g.st
	if st.Goblin == nil {
		return
	}
	lost := st.Goblin.Stolen
	st.Goblin = nil
	g.notify(view.NoticeError, "👹 The goblin escaped with %s reps. RIP.", view.FormatReps(lost))
	g.recordGameEvent("GOBLIN_ESCAPED", "", 0, lost)
	g.scheduleNextEvent()
	g.commit()
}
