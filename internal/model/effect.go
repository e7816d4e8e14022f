package model

import "time"

// Sheet collects what owned upgrades contribute to the derived yields.
// Multiplicative fields start at 1; see NewSheet.
type Sheet struct {
	ClickMult float64

	// Automation pipeline, applied in field order.
	AutoPreMult     float64
	AutoFlat        float64
	AutoPostMult    float64
	VortexPerMinute float64

	ComboCapBonus    int
	ComboWindowBonus time.Duration
	EventDelayFactor float64

	BadAdviceEvery int

	MeatChance   float64
	MeatBonus    float64
	MeatBoost    float64
	MeatDuration time.Duration

	MysteryOwned bool
}

// NewSheet returns a sheet with neutral multipliers.
func NewSheet() Sheet {
	return Sheet{
		ClickMult:        1,
		AutoPreMult:      1,
		AutoPostMult:     1,
		EventDelayFactor: 1,
	}
}

// Effect is the closed set of upgrade effects. Each variant applies its
// one-off purchase effect in Bought and its standing contribution in Shape.
type Effect interface {
	Bought(st *State)
	Shape(s *Sheet, owned int)
	sealed()
}

// ClickBonus adds a flat amount to the base click value per unit bought.
type ClickBonus struct{ Amount float64 }

func (e ClickBonus) Bought(st *State) { st.RepsPerClick += e.Amount }
func (ClickBonus) Shape(*Sheet, int)  {}
func (ClickBonus) sealed()            {}

// BadAdvice is a click bonus that turns every Nth click into a dud.
type BadAdvice struct {
	Amount float64
	Every  int
}

func (e BadAdvice) Bought(st *State) { st.RepsPerClick += e.Amount }
func (e BadAdvice) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.BadAdviceEvery = e.Every
	}
}
func (BadAdvice) sealed() {}

// MeatSlap multiplies clicks and occasionally triggers a meat event.
type MeatSlap struct {
	ClickMult float64
	Chance    float64
	Bonus     float64
	Boost     float64
	BoostFor  time.Duration
}

func (MeatSlap) Bought(*State) {}
func (e MeatSlap) Shape(s *Sheet, owned int) {
	if owned == 0 {
		return
	}
	s.ClickMult *= e.ClickMult
	s.MeatChance = e.Chance
	s.MeatBonus = e.Bonus
	s.MeatBoost = e.Boost
	s.MeatDuration = e.BoostFor
}
func (MeatSlap) sealed() {}

// AutoTier raises the automation tier by one per unit.
type AutoTier struct{}

func (AutoTier) Bought(st *State)  { st.AutoTier++ }
func (AutoTier) Shape(*Sheet, int) {}
func (AutoTier) sealed()           {}

// AutoBoost multiplies automation before flat bonuses once any unit is owned.
type AutoBoost struct{ Mult float64 }

func (AutoBoost) Bought(*State) {}
func (e AutoBoost) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.AutoPreMult *= e.Mult
	}
}
func (AutoBoost) sealed() {}

// AutoFlat adds reps per second for every unit owned.
type AutoFlat struct{ PerUnit float64 }

func (AutoFlat) Bought(*State) {}
func (e AutoFlat) Shape(s *Sheet, owned int) {
	s.AutoFlat += float64(owned) * e.PerUnit
}
func (AutoFlat) sealed() {}

// AutoScaling multiplies automation by Factor times the owned count.
type AutoScaling struct{ Factor float64 }

func (AutoScaling) Bought(*State) {}
func (e AutoScaling) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.AutoPostMult *= e.Factor * float64(owned)
	}
}
func (AutoScaling) sealed() {}

// AllGains multiplies both click and automation yield.
type AllGains struct{ Mult float64 }

func (AllGains) Bought(*State) {}
func (e AllGains) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.ClickMult *= e.Mult
		s.AutoPostMult *= e.Mult
	}
}
func (AllGains) sealed() {}

// Vortex adds automation proportional to lifetime playtime.
type Vortex struct{ PerMinute float64 }

func (Vortex) Bought(*State) {}
func (e Vortex) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.VortexPerMinute = e.PerMinute
	}
}
func (Vortex) sealed() {}

// ComboCap raises the combo streak cap per unit.
type ComboCap struct{ Step int }

func (ComboCap) Bought(*State) {}
func (e ComboCap) Shape(s *Sheet, owned int) {
	s.ComboCapBonus += owned * e.Step
}
func (ComboCap) sealed() {}

// ComboWindow widens the combo window per unit.
type ComboWindow struct{ Step time.Duration }

func (ComboWindow) Bought(*State) {}
func (e ComboWindow) Shape(s *Sheet, owned int) {
	s.ComboWindowBonus += time.Duration(owned) * e.Step
}
func (ComboWindow) sealed() {}

// EventFrequency shortens the delay between random events.
type EventFrequency struct{ DelayFactor float64 }

func (EventFrequency) Bought(*State) {}
func (e EventFrequency) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.EventDelayFactor = e.DelayFactor
	}
}
func (EventFrequency) sealed() {}

// Mystery rolls a random permanent multiplier on the first purchase. The roll
// itself needs the event generator, so the game performs it.
type Mystery struct{}

func (Mystery) Bought(*State) {}
func (Mystery) Shape(s *Sheet, owned int) {
	if owned > 0 {
		s.MysteryOwned = true
	}
}
func (Mystery) sealed() {}

// Cosmetic does nothing.
type Cosmetic struct{}

func (Cosmetic) Bought(*State)     {}
func (Cosmetic) Shape(*Sheet, int) {}
func (Cosmetic) sealed()           {}
