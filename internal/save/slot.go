package save

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
	"GymSimulator/internal/store"
)

// Store keys.
const (
	KeySave     = "gymSimulatorSave"
	KeyLastSave = "gymSimulatorLastSave"
	KeyDaily    = "gymSimulatorDaily"
)

// dateLayout keys the daily goal by local calendar day.
const dateLayout = "2006-01-02"

// Slot reads and writes the single save slot of a store.
type Slot struct {
	store store.Store
}

func NewSlot(s store.Store) *Slot {
	return &Slot{store: s}
}

// Load returns the saved state and the time of the last save. Without a
// save it returns a fresh state and a zero time. A corrupt record yields a
// fresh state together with the error, which callers log and move on from.
func (s *Slot) Load() (*model.State, time.Time, error) {
	raw, ok, err := s.store.Get(KeySave)
	if err != nil {
		return model.NewState(), time.Time{}, fmt.Errorf("read save: %w", err)
	}
	if !ok {
		return model.NewState(), time.Time{}, nil
	}
	rec, err := Decode([]byte(raw))
	if err != nil {
		return model.NewState(), time.Time{}, err
	}

	var last time.Time
	if v, ok, err := s.store.Get(KeyLastSave); err == nil && ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			last = time.UnixMilli(ms)
		}
	}
	return Restore(rec), last, nil
}

// Save writes st and stamps the save time.
func (s *Slot) Save(st *model.State, now time.Time) error {
	data, err := Encode(Snapshot(st))
	if err != nil {
		return err
	}
	if err := s.store.Set(KeySave, string(data)); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := s.store.Set(KeyLastSave, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return fmt.Errorf("write save time: %w", err)
	}
	return nil
}

// Wipe removes the save and its timestamp. The daily goal is kept.
func (s *Slot) Wipe() error {
	return s.store.Delete(KeySave, KeyLastSave)
}

// DailyRecord is the persisted daily goal.
type DailyRecord struct {
	Date string `json:"date"`
	Goal struct {
		Target float64 `json:"target"`
		Coins  int64   `json:"coins"`
	} `json:"goal"`
	Earned bool `json:"earned"`
}

// Daily returns today's goal, generating and storing a new one when the
// stored goal belongs to another day or cannot be read.
func (s *Slot) Daily(now time.Time, prestige int) (*model.DailyGoal, error) {
	today := DailyDate(now)
	if raw, ok, err := s.store.Get(KeyDaily); err == nil && ok {
		var rec DailyRecord
		if json.Unmarshal([]byte(raw), &rec) == nil && rec.Date == today && rec.Goal.Target > 0 {
			return &model.DailyGoal{Date: rec.Date, Target: rec.Goal.Target, Reward: rec.Goal.Coins, Earned: rec.Earned}, nil
		}
	}

	target, reward := progression.DailyTarget(prestige)
	goal := &model.DailyGoal{Date: today, Target: target, Reward: reward}
	return goal, s.SaveDaily(goal)
}

// DailyDate is the calendar day a daily goal belongs to.
func DailyDate(now time.Time) string {
	return now.Format(dateLayout)
}

// SaveDaily writes the daily goal.
func (s *Slot) SaveDaily(goal *model.DailyGoal) error {
	var rec DailyRecord
	rec.Date = goal.Date
	rec.Goal.Target = goal.Target
	rec.Goal.Coins = goal.Reward
	rec.Earned = goal.Earned
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode daily goal: %w", err)
	}
	if err := s.store.Set(KeyDaily, string(data)); err != nil {
		return fmt.Errorf("write daily goal: %w", err)
	}
	return nil
}
