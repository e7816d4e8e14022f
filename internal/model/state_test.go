package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	st := NewState()
	assert.Equal(t, 1.0, st.RepsPerClick)
	assert.Equal(t, 1.0, st.GainsMultiplier)
	assert.Equal(t, 1.0, st.Combo.Multiplier)
	assert.Zero(t, st.Reps)
	assert.Empty(t, st.Owned)
}

func TestEarnKeepsLifetimeAhead(t *testing.T) {
	st := NewState()
	st.Earn(10)
	st.Earn(-5)
	st.Reps -= 4
	st.Earn(2.5)
	assert.Equal(t, 8.5, st.Reps)
	assert.Equal(t, 12.5, st.LifetimeReps)
	assert.GreaterOrEqual(t, st.LifetimeReps, st.Reps)
}

func TestResetRunKeepsMetaProgress(t *testing.T) {
	st := NewState()
	st.Reps = 500
	st.LifetimeReps = 900
	st.RepsPerClick = 40
	st.GymCoins = 7
	st.Owned["proteinShake"] = 3
	st.Reward("firstSteps").Earned = true
	st.Mystery = &MysteryEffect{Name: "x", Mult: 2}

	st.ResetRun()

	assert.Zero(t, st.Reps)
	assert.Equal(t, 1.0, st.RepsPerClick)
	assert.Empty(t, st.Owned)
	assert.Nil(t, st.Mystery)
	assert.Equal(t, 900.0, st.LifetimeReps)
	assert.Equal(t, int64(7), st.GymCoins)
	assert.True(t, st.Earned("firstSteps"))
	assert.Equal(t, 1, st.RunNumber)
}

func TestTimedMultiplierActive(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := TimedMultiplier{Mult: 2, Until: now.Add(time.Second)}
	assert.True(t, m.Active(now))
	assert.False(t, m.Active(now.Add(time.Second)))
	assert.False(t, TimedMultiplier{}.Active(now))
}

func TestEffectsShapeSheet(t *testing.T) {
	s := NewSheet()
	AutoBoost{Mult: 2}.Shape(&s, 3)
	AutoFlat{PerUnit: 5}.Shape(&s, 4)
	AutoScaling{Factor: 1.5}.Shape(&s, 2)
	ComboWindow{Step: 200 * time.Millisecond}.Shape(&s, 2)
	EventFrequency{DelayFactor: 0.7}.Shape(&s, 0)

	assert.Equal(t, 2.0, s.AutoPreMult)
	assert.Equal(t, 20.0, s.AutoFlat)
	assert.Equal(t, 3.0, s.AutoPostMult)
	assert.Equal(t, 400*time.Millisecond, s.ComboWindowBonus)
	assert.Equal(t, 1.0, s.EventDelayFactor)

	st := NewState()
	ClickBonus{Amount: 5}.Bought(st)
	AutoTier{}.Bought(st)
	require.Equal(t, 6.0, st.RepsPerClick)
	assert.Equal(t, 1, st.AutoTier)
}
