package game

import (
	"fmt"
	"log"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/clock"
	"GymSimulator/internal/config"
	"GymSimulator/internal/events"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
	"GymSimulator/internal/recorder"
	"GymSimulator/internal/save"
	"GymSimulator/internal/scheduler"
	"GymSimulator/internal/view"
)

// Presenter receives everything the player gets to see.
type Presenter interface {
	Render(s view.Snapshot)
	Notify(n view.Notice)
}

// Game owns the state and is the only code that mutates it. It is not safe
// for concurrent use: intents and timers must all run on one scheduler.Loop.
type Game struct {
	balance config.Balance
	clock   clock.Clock
	timers  *scheduler.Registry
	gen     *events.Generator
	slot    *save.Slot
	rec     recorder.Recorder
	out     Presenter

	st    *model.State
	sheet model.Sheet

	// run is bumped on every reset so stale timer callbacks can tell.
	run           uint64
	eventSeq      uint64
	autoEvery     time.Duration
	momentumEvery time.Duration
	accruedAt     time.Time
}

// New creates a game. Call Start before sending intents.
func New(b config.Balance, clk clock.Clock, timers scheduler.Timers, gen *events.Generator, slot *save.Slot, rec recorder.Recorder, out Presenter) *Game {
	st := model.NewState()
	return &Game{
		balance: b,
		clock:   clk,
		timers:  scheduler.NewRegistry(timers),
		gen:     gen,
		slot:    slot,
		rec:     rec,
		out:     out,
		st:      st,
		sheet:   progression.Shape(st),
	}
}

// State exposes the live state for inspection. Callers must not mutate it.
func (g *Game) State() *model.State { return g.st }

// Snapshot renders the current state without committing anything.
func (g *Game) Snapshot() view.Snapshot {
	return view.Build(g.st, g.balance, g.clock.Now())
}

// Start loads the save slot, credits the time spent away and starts the
// timers.
func (g *Game) Start() {
	now := g.clock.Now()
	st, last, err := g.slot.Load()
	if err != nil {
		log.Printf("[ERROR] load save, starting fresh: %v", err)
	}
	g.st = st
	if report := save.ApplyOffline(st, last, now, g.balance); report != nil {
		st.Offline = report
		log.Printf("[INFO] away for %s, auto-gym earned %.0f reps", report.Elapsed.Round(time.Second), report.Earned)
	}
	g.sheet = progression.Shape(st)
	g.loadDaily(now)
	g.accruedAt = now
	g.startTimers()
	log.Printf("[INFO] game started: run %d, %.0f reps, %d prestiges, %d stars", st.RunNumber, st.Reps, st.PrestigeCount, st.AscensionStars)
	g.commit()
}

// Stop cancels every timer and writes a final save.
func (g *Game) Stop() {
	g.timers.CancelAll()
	g.run++
	g.Save()
	log.Println("[INFO] game stopped")
}

// Save accrues playtime and writes the save slot.
func (g *Game) Save() {
	now := g.clock.Now()
	g.accrue(now)
	if err := g.slot.Save(g.st, now); err != nil {
		log.Printf("[ERROR] save game: %v", err)
	}
}

// commit re-derives everything after a mutation and renders it.
func (g *Game) commit() {
	now := g.clock.Now()
	g.sheet = progression.Shape(g.st)
	g.pruneBoosts(now)
	for _, r := range progression.NewlyEarned(g.st, now) {
		if r.Secret {
			g.unlockSecret(r.ID)
		} else {
			g.earn(r)
		}
	}
	g.checkDaily(now)
	g.out.Render(view.Build(g.st, g.balance, now))
}

func (g *Game) pruneBoosts(now time.Time) {
	kept := g.st.Boosts[:0]
	for _, b := range g.st.Boosts {
		if b.Active(now) {
			kept = append(kept, b)
		}
	}
	g.st.Boosts = kept
}

func (g *Game) earn(r model.Reward) {
	g.st.Reward(r.ID).Earned = true
	g.notify(view.NoticeCongrats, "%s %s Unlocked!", r.Icon, r.Name)
	g.recordAchievement(r)
}

// unlockSecret earns a secret achievement and stores its revealed text.
func (g *Game) unlockSecret(id string) {
	if g.st.Earned(id) {
		return
	}
	r, ok := catalog.Reward(id)
	if !ok {
		return
	}
	*g.st.Reward(id) = model.RewardState{Earned: true, DisplayName: r.Reveal, Icon: r.Icon}
	g.notify(view.NoticeCongrats, "🔓 SECRET UNLOCKED: %s", r.Reveal)
	g.recordAchievement(r)
	g.Save()
}

func (g *Game) loadDaily(now time.Time) {
	goal, err := g.slot.Daily(now, g.st.PrestigeCount)
	if err != nil {
		log.Printf("[WARN] store daily goal: %v", err)
	}
	g.st.Daily = goal
}

func (g *Game) checkDaily(now time.Time) {
	if g.st.Daily == nil || g.st.Daily.Date != save.DailyDate(now) {
		g.loadDaily(now)
	}
	d := g.st.Daily
	if d.Earned || g.st.Reps < d.Target {
		return
	}
	d.Earned = true
	g.st.GymCoins += d.Reward
	g.st.TotalGymCoinsEarned += d.Reward
	if err := g.slot.SaveDaily(d); err != nil {
		log.Printf("[ERROR] save daily goal: %v", err)
	}
	g.notify(view.NoticeCongrats, "📅 DAILY GOAL COMPLETE! +%d 🪙 GymCoins!", d.Reward)
	g.recordGameEvent("DAILY_GOAL", "", 0, float64(d.Reward))
}

// accrue moves whole elapsed seconds into the lifetime playtime counter.
func (g *Game) accrue(now time.Time) {
	secs := int64(now.Sub(g.accruedAt) / time.Second)
	if secs <= 0 {
		return
	}
	g.st.LifetimeSeconds += secs
	g.accruedAt = g.accruedAt.Add(time.Duration(secs) * time.Second)
}

func (g *Game) notify(kind view.NoticeKind, format string, args ...any) {
	g.out.Notify(view.Notice{Kind: kind, Text: fmt.Sprintf(format, args...)})
}

// reject reports a refused intent to the player and returns err.
func (g *Game) reject(err error, format string, args ...any) error {
	g.notify(view.NoticeError, format, args...)
	return err
}

func (g *Game) recordReset(kind string, repsBefore float64, coins int64) {
	st := g.st
	if err := g.rec.RecordReset(&recorder.ResetEvent{
		Kind:           kind,
		RunNumber:      st.RunNumber,
		RepsBefore:     repsBefore,
		LifetimeReps:   st.LifetimeReps,
		PrestigeCount:  st.PrestigeCount,
		AscensionStars: st.AscensionStars,
		CoinsEarned:    coins,
		GymCoinsAfter:  st.GymCoins,
	}); err != nil {
		log.Printf("[ERROR] record %s: %v", kind, err)
	}
}

func (g *Game) recordAchievement(r model.Reward) {
	if err := g.rec.RecordAchievement(&recorder.AchievementEvent{
		RewardID:  r.ID,
		Name:      r.Name,
		Secret:    r.Secret,
		RunNumber: g.st.RunNumber,
	}); err != nil {
		log.Printf("[ERROR] record achievement: %v", err)
	}
}

func (g *Game) recordGameEvent(kind, id string, mult, amount float64) {
	if err := g.rec.RecordGameEvent(&recorder.GameEvent{
		Kind:       kind,
		EventID:    id,
		Multiplier: mult,
		Amount:     amount,
		RunNumber:  g.st.RunNumber,
	}); err != nil {
		log.Printf("[ERROR] record game event: %v", err)
	}
}
