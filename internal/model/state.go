package model

import "time"

// Station is a Gym Vibes Radio channel.
type Station string

const (
	StationOff   Station = ""
	StationRock  Station = "rock"
	StationLofi  Station = "lofi"
	StationMetal Station = "metal"
)

// RewardState is the persisted part of an achievement. DisplayName and Icon
// carry the revealed text of secret achievements.
type RewardState struct {
	Earned      bool
	DisplayName string
	Icon        string
}

// TimedMultiplier is a multiplier that stops applying at Until.
type TimedMultiplier struct {
	Source string
	Mult   float64
	Until  time.Time
}

// Active reports whether the multiplier still applies at now.
func (m TimedMultiplier) Active(now time.Time) bool {
	return m.Mult > 0 && now.Before(m.Until)
}

// Combo tracks the consecutive-click streak.
type Combo struct {
	Streak      int
	Multiplier  float64
	LastClickAt time.Time
}

// ActiveEvent is the ordinary random event currently in effect.
type ActiveEvent struct {
	Def   EventDef
	Until time.Time
	Seq   uint64
}

// GoblinChase tracks a Gains Goblin theft that can still be recovered.
type GoblinChase struct {
	Stolen float64
	Debt   float64
	Until  time.Time
}

// DailyGoal is the calendar-day rep target.
type DailyGoal struct {
	Date   string
	Target float64
	Reward int64
	Earned bool
}

// OfflineReport summarises the catch-up credited on load.
type OfflineReport struct {
	Elapsed time.Duration
	Earned  float64
	RestFor time.Duration
}

// State holds every progression counter of a save slot plus the transient
// modifiers of the running session.
type State struct {
	Reps            float64
	LifetimeReps    float64
	RepsPerClick    float64
	TotalClicks     int64
	AutoTier        int
	LifetimeSeconds int64

	GymCoins            int64
	TotalGymCoinsEarned int64

	PrestigeCount     int
	GainsMultiplier   float64
	AscensionStars    int
	LifetimePrestiges int
	RunNumber         int

	Owned   map[string]int
	Perks   map[string]bool
	Rewards map[string]*RewardState
	Mystery *MysteryEffect

	// Session-only modifiers, never persisted.
	Combo            Combo
	MomentumTicks    int
	Rest             TimedMultiplier
	Station          Station
	Event            *ActiveEvent
	Goblin           *GoblinChase
	Boosts           []TimedMultiplier
	ChaosMultiplier  float64
	UltraFired       bool
	PendingChain     bool
	BadAdviceCounter int
	NoBuyClicks      int
	Daily            *DailyGoal
	Offline          *OfflineReport
	Flavor           string
}

// NewState returns the first-run defaults.
func NewState() *State {
	return &State{
		RepsPerClick:    1,
		GainsMultiplier: 1,
		ChaosMultiplier: 1,
		Owned:           make(map[string]int),
		Perks:           make(map[string]bool),
		Rewards:         make(map[string]*RewardState),
		Combo:           Combo{Multiplier: 1},
	}
}

// Earn credits gained reps to both the spendable and the lifetime counter.
func (s *State) Earn(amount float64) {
	if amount <= 0 {
		return
	}
	s.Reps += amount
	s.LifetimeReps += amount
}

// Reward returns the mutable state of an achievement, creating it if needed.
func (s *State) Reward(id string) *RewardState {
	r, ok := s.Rewards[id]
	if !ok {
		r = &RewardState{}
		s.Rewards[id] = r
	}
	return r
}

// Earned reports whether an achievement has been earned.
func (s *State) Earned(id string) bool {
	r, ok := s.Rewards[id]
	return ok && r.Earned
}

// TotalOwned is the number of upgrade units owned across all upgrades.
func (s *State) TotalOwned() int {
	n := 0
	for _, c := range s.Owned {
		n += c
	}
	return n
}

// ResetRun zeroes the per-run counters shared by prestige and ascension.
func (s *State) ResetRun() {
	s.Reps = 0
	s.RepsPerClick = 1
	s.TotalClicks = 0
	s.AutoTier = 0
	s.Owned = make(map[string]int)
	s.Mystery = nil
	s.MomentumTicks = 0
	s.Combo = Combo{Multiplier: 1}
	s.Event = nil
	s.Goblin = nil
	s.Boosts = nil
	s.ChaosMultiplier = 1
	s.PendingChain = false
	s.BadAdviceCounter = 0
	s.RunNumber++
}
