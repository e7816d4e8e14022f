package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/clock"
	"GymSimulator/internal/config"
	"GymSimulator/internal/events"
	"GymSimulator/internal/model"
	"GymSimulator/internal/recorder"
	"GymSimulator/internal/save"
	"GymSimulator/internal/scheduler"
	"GymSimulator/internal/store"
	"GymSimulator/internal/view"
)

var start = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type recordingPresenter struct {
	renders int
	last    view.Snapshot
	notices []view.Notice
}

func (p *recordingPresenter) Render(s view.Snapshot) {
	p.renders++
	p.last = s
}

func (p *recordingPresenter) Notify(n view.Notice) { p.notices = append(p.notices, n) }

func (p *recordingPresenter) lastNotice() view.Notice {
	if len(p.notices) == 0 {
		return view.Notice{}
	}
	return p.notices[len(p.notices)-1]
}

type memoryRecorder struct {
	resets       []*recorder.ResetEvent
	achievements []*recorder.AchievementEvent
	events       []*recorder.GameEvent
}

func (r *memoryRecorder) RecordReset(evt *recorder.ResetEvent) error {
	r.resets = append(r.resets, evt)
	return nil
}

func (r *memoryRecorder) RecordAchievement(evt *recorder.AchievementEvent) error {
	r.achievements = append(r.achievements, evt)
	return nil
}

func (r *memoryRecorder) RecordGameEvent(evt *recorder.GameEvent) error {
	r.events = append(r.events, evt)
	return nil
}

func (r *memoryRecorder) Close() error { return nil }

type harness struct {
	g      *Game
	clock  *clock.FakeClock
	timers *scheduler.ManualTimers
	kv     *store.MemoryStore
	out    *recordingPresenter
	rec    *memoryRecorder
}

// quiet disables every random event so tests only see what they trigger.
func quiet() config.Balance {
	b := config.Default()
	b.UltraChance = 0
	b.GoblinChance = 0
	b.ChainChance = 0
	return b
}

func newHarness(t *testing.T, b config.Balance, at time.Time, kv *store.MemoryStore) *harness {
	t.Helper()
	if kv == nil {
		kv = store.NewMemoryStore()
	}
	fc := clock.NewFakeClock(at)
	mt := scheduler.NewManualTimers(fc)
	h := &harness{
		clock:  fc,
		timers: mt,
		kv:     kv,
		out:    &recordingPresenter{},
		rec:    &memoryRecorder{},
	}
	h.g = New(b, fc, mt, events.NewSeeded(7, b), save.NewSlot(kv), h.rec, h.out)
	h.g.Start()
	return h
}

// set applies a direct state change and re-derives.
func (h *harness) set(fn func(st *model.State)) {
	fn(h.g.st)
	h.g.commit()
}

func TestFirstClick(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.g.Click()

	st := h.g.State()
	assert.Equal(t, 1.0, st.Reps)
	assert.Equal(t, int64(1), st.TotalClicks)
	assert.Equal(t, 1.0, st.LifetimeReps)
	assert.Equal(t, "1 REPS", h.out.last.Reps)
}

func TestBuyFirstUpgradeAtBasePrice(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.set(func(st *model.State) { st.Reps = 10 })

	require.NoError(t, h.g.Buy(catalog.ProteinShake))
	st := h.g.State()
	assert.Zero(t, st.Reps)
	assert.Equal(t, 1, st.Owned[catalog.ProteinShake])
	assert.Equal(t, 2.0, st.RepsPerClick)

	_, ok, _ := h.kv.Get(save.KeySave)
	assert.True(t, ok, "a purchase saves the slot")
}

func TestBuyRejections(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)

	assert.ErrorIs(t, h.g.Buy("dumbbellRack"), ErrUnknownUpgrade)
	assert.ErrorIs(t, h.g.Buy(catalog.ProteinShake), ErrInsufficientReps)
	assert.Equal(t, view.NoticeError, h.out.lastNotice().Kind)
	assert.Zero(t, h.g.State().Owned[catalog.ProteinShake])

	require.NoError(t, h.g.Buy("motivationalPoster"))
	assert.ErrorIs(t, h.g.Buy("motivationalPoster"), ErrMaxed)
	assert.Equal(t, "Already maxed!", h.out.lastNotice().Text)
}

func TestComboStreak(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	for i := 0; i < 6; i++ {
		h.g.Click()
	}
	st := h.g.State()
	assert.Equal(t, 6, st.Combo.Streak)
	assert.Equal(t, 1.5, st.Combo.Multiplier)

	h.timers.Advance(900 * time.Millisecond)
	assert.Zero(t, st.Combo.Streak)
	assert.Equal(t, 1.0, st.Combo.Multiplier)

	h.g.Click()
	assert.Equal(t, 1, st.Combo.Streak)
}

func TestAutomationPaysPerTick(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.set(func(st *model.State) { st.Reps = 1000 })
	require.NoError(t, h.g.Buy(catalog.AutoGym))
	require.NoError(t, h.g.Buy(catalog.AutoGym))

	st := h.g.State()
	require.Equal(t, 2, st.AutoTier)
	before := st.Reps
	h.timers.Advance(3 * time.Second)
	assert.Equal(t, before+3, st.Reps)
}

func TestMalfunctionStopsAutomation(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.set(func(st *model.State) { st.Reps = 1000 })
	require.NoError(t, h.g.Buy(catalog.AutoGym))
	require.NoError(t, h.g.Buy(catalog.AutoGym))

	malfunction := catalog.Events[13]
	require.True(t, malfunction.AutoOffline)
	h.g.fireEvent(malfunction, h.clock.Now(), "EVENT")

	st := h.g.State()
	before := st.Reps
	h.timers.Advance(5 * time.Second)
	assert.Equal(t, before, st.Reps, "no automation while the equipment is down")

	h.g.Click()
	assert.Greater(t, st.Reps, before, "clicks still work")
}

func TestEventEndsAndSchedulesNext(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()

	for i := 0; i < 90 && st.Event == nil; i++ {
		h.timers.Advance(time.Second)
	}
	require.NotNil(t, st.Event)
	assert.False(t, h.g.timers.Active(timerEvent))
	require.NotNil(t, h.out.last.Banner)

	h.timers.Advance(st.Event.Until.Sub(h.clock.Now()))
	assert.Nil(t, st.Event)
	assert.True(t, h.g.timers.Active(timerEvent))
	assert.Nil(t, h.out.last.Banner)
}

func TestEventChaserExtendsEvents(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.set(func(st *model.State) { st.Perks[catalog.PerkEventChaser] = true })

	ev := catalog.Events[0]
	h.g.fireEvent(ev, h.clock.Now(), "EVENT")
	assert.Equal(t, h.clock.Now().Add(ev.Duration*3/2), h.g.State().Event.Until)
}

func TestChainFollowsNegativeEvent(t *testing.T) {
	b := quiet()
	b.ChainChance = 1
	h := newHarness(t, b, start, nil)
	st := h.g.State()

	yoga := catalog.Events[7]
	require.False(t, yoga.Positive())
	h.g.fireEvent(yoga, h.clock.Now(), "EVENT")
	assert.True(t, st.PendingChain)

	h.timers.Advance(yoga.Duration + b.ChainDelay)
	require.NotNil(t, st.Event)
	assert.Equal(t, "chain_event", st.Event.Def.ID)
	assert.False(t, st.PendingChain)
}

func TestUltraFiresOncePerSession(t *testing.T) {
	b := quiet()
	b.UltraChance = 1
	h := newHarness(t, b, start, nil)
	st := h.g.State()

	for i := 0; i < 90 && st.Event == nil; i++ {
		h.timers.Advance(time.Second)
	}
	require.NotNil(t, st.Event)
	assert.True(t, st.Event.Def.Ultra)
	assert.True(t, st.UltraFired)
	assert.Equal(t, view.BannerUltra, h.out.last.Banner.Category)

	first := st.Event.Seq
	for i := 0; i < 400 && (st.Event == nil || st.Event.Seq == first); i++ {
		h.timers.Advance(time.Second)
	}
	require.NotNil(t, st.Event)
	assert.False(t, st.Event.Def.Ultra)
}

func TestTheCoachIsATemporaryBoost(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()

	var coach model.EventDef
	for _, ev := range catalog.Events {
		if ev.TempUpgrade {
			coach = ev
		}
	}
	h.g.fireEvent(coach, h.clock.Now(), "ULTRA")
	h.g.Click()
	assert.Equal(t, 20.0, st.Reps, "x10 boost and x2 event")
	assert.Equal(t, 1.0, st.RepsPerClick)

	h.timers.Advance(61 * time.Second)
	assert.Empty(t, st.Boosts)
	before := st.Reps
	h.g.Click()
	assert.Equal(t, before+1, st.Reps)
}

func TestGoblinChase(t *testing.T) {
	b := quiet()
	b.GoblinChance = 1
	h := newHarness(t, b, start, nil)
	st := h.g.State()
	h.set(func(st *model.State) {
		st.Reps = 1000
		st.LifetimeReps = 1000
		st.RepsPerClick = 10
	})

	for i := 0; i < 90 && st.Goblin == nil; i++ {
		h.timers.Advance(time.Second)
	}
	require.NotNil(t, st.Goblin)
	assert.Equal(t, 950.0, st.Reps)
	assert.Equal(t, 1000.0, st.LifetimeReps)
	assert.Equal(t, view.BannerGoblin, h.out.last.Banner.Category)

	h.g.Click()
	assert.Nil(t, st.Goblin)
	assert.Equal(t, 1025.0, st.Reps)
	assert.Equal(t, 1025.0, st.LifetimeReps)
	assert.True(t, st.Earned(catalog.RewardGoblinCaught))
	assert.Zero(t, st.TotalClicks, "chase clicks earn nothing")
	assert.False(t, h.g.timers.Active(timerGoblin))
	assert.True(t, h.g.timers.Active(timerEvent))
}

func TestGoblinEscapes(t *testing.T) {
	b := quiet()
	b.GoblinChance = 1
	h := newHarness(t, b, start, nil)
	st := h.g.State()
	h.set(func(st *model.State) {
		st.Reps = 1000
		st.LifetimeReps = 1000
	})

	for i := 0; i < 90 && st.Goblin == nil; i++ {
		h.timers.Advance(time.Second)
	}
	require.NotNil(t, st.Goblin)
	h.g.Click()
	require.NotNil(t, st.Goblin, "one click at 1 rep is not enough")

	h.timers.Advance(b.GoblinWindow)
	assert.Nil(t, st.Goblin)
	assert.Equal(t, 950.0, st.Reps)
	assert.False(t, st.Earned(catalog.RewardGoblinCaught))
	assert.Equal(t, "GOBLIN_ESCAPED", h.rec.events[len(h.rec.events)-1].Kind)
}

func TestPrestige(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()

	assert.ErrorIs(t, h.g.Prestige(), ErrPrestigeLocked)

	h.set(func(st *model.State) {
		st.Reps = 20000
		st.LifetimeReps = 20000
		st.RepsPerClick = 40
		st.Owned[catalog.ProteinShake] = 5
		st.MomentumTicks = 7
	})
	pending := h.timers.Pending()
	coins := st.GymCoins
	require.NoError(t, h.g.Prestige())

	assert.Zero(t, st.Reps)
	assert.Equal(t, 1.0, st.RepsPerClick)
	assert.Equal(t, 1, st.PrestigeCount)
	assert.Equal(t, 1.5, st.GainsMultiplier)
	assert.Equal(t, coins+4, st.GymCoins)
	assert.Empty(t, st.Owned)
	assert.Zero(t, st.MomentumTicks)
	assert.Equal(t, 20000.0, st.LifetimeReps)
	assert.Equal(t, 1, st.RunNumber)
	assert.True(t, st.Earned(catalog.RewardWentPro))
	assert.True(t, st.Earned("firstSteps"), "achievements survive a prestige")
	assert.Equal(t, pending, h.timers.Pending(), "run timers are replaced, not duplicated")

	require.Len(t, h.rec.resets, 1)
	assert.Equal(t, "PRESTIGE", h.rec.resets[0].Kind)
	assert.Equal(t, 20000.0, h.rec.resets[0].RepsBefore)
	assert.Equal(t, int64(4), h.rec.resets[0].CoinsEarned)
}

func TestPrestigeAppliesStartingPerks(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) {
		st.Reps = 10000
		st.Perks[catalog.PerkStartingSupps] = true
		st.Perks[catalog.PerkVIPMembership] = true
	})
	pending := h.timers.Pending()

	require.NoError(t, h.g.Prestige())
	assert.Equal(t, 10, st.Owned[catalog.ProteinShake])
	assert.Equal(t, 11.0, st.RepsPerClick)
	assert.Equal(t, 1, st.AutoTier)
	assert.Equal(t, pending+1, h.timers.Pending(), "automation starts with the run")
	assert.True(t, h.g.timers.Active(timerAuto))
}

func TestStaleTimersDoNotFireAfterPrestige(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) { st.Reps = 20000 })
	require.NoError(t, h.g.Buy(catalog.AutoGym))
	require.NoError(t, h.g.Buy(catalog.AutoGym))

	require.NoError(t, h.g.Prestige())
	h.timers.Advance(10 * time.Second)
	assert.Zero(t, st.Reps, "the old automation timer is gone")
}

func TestAscend(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	assert.ErrorIs(t, h.g.Ascend(), ErrAscensionLocked)

	h.set(func(st *model.State) {
		st.LifetimePrestiges = 10
		st.PrestigeCount = 10
		st.GainsMultiplier = 6
		st.GymCoins = 50
		st.TotalGymCoinsEarned = 80
		st.Perks[catalog.PerkBroNetwork] = true
	})
	require.NoError(t, h.g.Ascend())

	assert.Equal(t, 1, st.AscensionStars)
	assert.Zero(t, st.PrestigeCount)
	assert.Zero(t, st.LifetimePrestiges)
	assert.Equal(t, 1.0, st.GainsMultiplier)
	assert.Zero(t, st.GymCoins)
	assert.Equal(t, int64(80), st.TotalGymCoinsEarned)
	assert.Empty(t, st.Perks)
	assert.True(t, st.Earned(catalog.RewardAscended))

	h.g.Click()
	assert.Equal(t, 2.0, st.Reps, "one star doubles gains")
}

func TestBuyPerk(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) { st.GymCoins = 12 })

	assert.ErrorIs(t, h.g.BuyPerk("gymMembership"), ErrUnknownPerk)
	require.NoError(t, h.g.BuyPerk(catalog.PerkStartingSupps))
	assert.Equal(t, int64(7), st.GymCoins)
	assert.ErrorIs(t, h.g.BuyPerk(catalog.PerkStartingSupps), ErrAlreadyOwned)
	assert.ErrorIs(t, h.g.BuyPerk(catalog.PerkBroNetwork), ErrInsufficientCoins)
	assert.Equal(t, int64(7), st.GymCoins)
}

func TestMorningRoutineSpeedsMomentum(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) { st.GymCoins = 18 })
	require.NoError(t, h.g.BuyPerk(catalog.PerkMorningRoutine))

	h.timers.Advance(10 * time.Minute)
	assert.Equal(t, 2, st.MomentumTicks)
}

func TestToggleStation(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()

	require.NoError(t, h.g.ToggleStation("rock"))
	assert.Equal(t, model.StationRock, st.Station)
	require.NoError(t, h.g.ToggleStation("metal"))
	assert.Equal(t, model.StationMetal, st.Station)
	require.NoError(t, h.g.ToggleStation("metal"))
	assert.Equal(t, model.StationOff, st.Station)
	assert.ErrorIs(t, h.g.ToggleStation("jazz"), ErrUnknownStation)
}

func TestMysteryRollsOnce(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) { st.Reps = 1e6 })

	require.NoError(t, h.g.Buy(catalog.MysterySupp))
	require.NotNil(t, st.Mystery)
	first := *st.Mystery
	require.NoError(t, h.g.Buy(catalog.MysterySupp))
	assert.Equal(t, first, *st.Mystery)
}

func TestBadAdvice(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	h.set(func(st *model.State) { st.Owned["broScienceDegree"] = 1 })

	for i := 0; i < 9; i++ {
		h.g.Click()
	}
	before := st.Reps
	h.g.Click()
	assert.Equal(t, before, st.Reps)
	assert.Equal(t, int64(10), st.TotalClicks)
}

func TestSecrets(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()

	for i := 0; i < 68; i++ {
		h.g.Click()
	}
	assert.False(t, st.Earned(catalog.RewardMethodActor))
	h.g.Click()
	assert.True(t, st.Earned(catalog.RewardMethodActor))
	r, _ := catalog.Reward(catalog.RewardMethodActor)
	assert.Equal(t, r.Reveal, st.Rewards[catalog.RewardMethodActor].DisplayName)

	night := newHarness(t, quiet(), time.Date(2026, 3, 14, 2, 30, 0, 0, time.UTC), nil)
	night.g.Click()
	assert.True(t, night.g.State().Earned(catalog.RewardMidnight))
}

func TestDailyGoal(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	st := h.g.State()
	require.NotNil(t, st.Daily)
	assert.Equal(t, 500.0, st.Daily.Target)

	h.set(func(st *model.State) { st.Reps = 499 })
	h.g.Click()
	assert.True(t, st.Daily.Earned)
	assert.Equal(t, int64(2), st.GymCoins)

	h.g.Click()
	assert.Equal(t, int64(2), st.GymCoins, "paid once per day")
}

func TestOfflineCatchUpOnStart(t *testing.T) {
	kv := store.NewMemoryStore()
	first := newHarness(t, quiet(), start, kv)
	first.set(func(st *model.State) { st.Reps = 1000 })
	require.NoError(t, first.g.Buy(catalog.AutoGym))
	require.NoError(t, first.g.Buy(catalog.AutoGym))
	first.g.Stop()
	saved := first.g.State().Reps

	second := newHarness(t, quiet(), start.Add(2*time.Hour), kv)
	st := second.g.State()
	require.NotNil(t, st.Offline)
	assert.Equal(t, 7200.0, st.Offline.Earned)
	assert.Equal(t, saved+7200, st.Reps)
	require.NotNil(t, second.out.last.Offline)
	assert.Equal(t, "2 hours", second.out.last.Offline.Away)

	second.g.CloseOfflineReport()
	assert.Nil(t, st.Offline)
	assert.Nil(t, second.out.last.Offline)
}

func TestLifetimeSecondsAccrue(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.timers.Advance(3 * time.Minute)
	assert.Equal(t, int64(180), h.g.State().LifetimeSeconds)
}

func TestReset(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.set(func(st *model.State) {
		st.Reps = 50000
		st.LifetimeReps = 50000
		st.PrestigeCount = 3
	})
	h.g.Save()

	h.g.Reset()
	st := h.g.State()
	assert.Zero(t, st.Reps)
	assert.Zero(t, st.LifetimeReps)
	assert.Zero(t, st.PrestigeCount)
	assert.False(t, st.Earned("firstSteps"))
	_, ok, _ := h.kv.Get(save.KeySave)
	assert.False(t, ok)
	assert.Equal(t, "RESET", h.rec.resets[len(h.rec.resets)-1].Kind)
	assert.True(t, h.g.timers.Active(timerEvent))
}

func TestStop(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	h.g.Stop()
	assert.Zero(t, h.timers.Pending())
	_, ok, _ := h.kv.Get(save.KeySave)
	assert.True(t, ok)
}

func TestLifetimeRepsNeverDecrease(t *testing.T) {
	b := config.Default()
	b.GoblinChance = 0.3
	b.ChainChance = 0.5
	h := newHarness(t, b, start, nil)
	h.set(func(st *model.State) { st.Perks[catalog.PerkVIPMembership] = true })
	rng := rand.New(rand.NewSource(3))

	st := h.g.State()
	prev := st.LifetimeReps
	for i := 0; i < 2000; i++ {
		switch rng.Intn(6) {
		case 0, 1, 2:
			h.g.Click()
		case 3:
			u := catalog.Upgrades[rng.Intn(len(catalog.Upgrades))]
			_ = h.g.Buy(u.ID)
		case 4:
			h.timers.Advance(time.Duration(rng.Intn(5000)) * time.Millisecond)
		case 5:
			if st.Reps >= 10000 {
				require.NoError(t, h.g.Prestige())
			}
		}
		require.GreaterOrEqual(t, st.LifetimeReps, prev, "step %d", i)
		require.LessOrEqual(t, st.Reps, st.LifetimeReps, "step %d", i)
		prev = st.LifetimeReps
	}
}

func TestClicksRotateFlavorText(t *testing.T) {
	h := newHarness(t, quiet(), start, nil)
	assert.Equal(t, catalog.FlavorTexts[0], h.out.last.Flavor)

	st := h.g.State()
	for i := 0; i < 200 && st.Flavor == ""; i++ {
		h.g.Click()
	}
	require.NotEmpty(t, st.Flavor)
	assert.Contains(t, catalog.FlavorTexts, st.Flavor)
	assert.Equal(t, st.Flavor, h.out.last.Flavor)
}
