package save

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
)

// Version is the current save record version. Records without a version
// field are version 0.
const Version = 1

// UpgradeEntry is the owned count of one upgrade.
type UpgradeEntry struct {
	ID    string `json:"id"`
	Owned int    `json:"owned"`
}

// PerkEntry is the ownership of one Gym Corp perk.
type PerkEntry struct {
	ID    string `json:"id"`
	Owned bool   `json:"owned"`
}

// RewardEntry is the state of one achievement. DisplayName and Icon hold the
// revealed text of secrets.
type RewardEntry struct {
	ID          string `json:"id"`
	Earned      bool   `json:"earned"`
	DisplayName string `json:"displayName,omitempty"`
	Icon        string `json:"icon,omitempty"`

	// version 0 names, read for migration only
	Name  string `json:"name,omitempty" jsonschema:"-"`
	Emoji string `json:"emoji,omitempty" jsonschema:"-"`
}

// Record is the persisted save slot.
type Record struct {
	Version             int                  `json:"version" jsonschema:"description=Record layout version; absent in legacy saves"`
	Reps                float64              `json:"reps" jsonschema:"minimum=0"`
	RepsPerClick        float64              `json:"repsPerClick" jsonschema:"minimum=1"`
	TotalClicks         int64                `json:"totalClicks" jsonschema:"minimum=0"`
	AutoGymLevel        int                  `json:"autoGymLevel" jsonschema:"minimum=0"`
	LifetimeReps        float64              `json:"lifetimeReps" jsonschema:"minimum=0"`
	LifetimeSeconds     int64                `json:"lifetimeSeconds" jsonschema:"minimum=0"`
	GymCoins            int64                `json:"gymCoins" jsonschema:"minimum=0"`
	TotalGymCoinsEarned int64                `json:"totalGymCoinsEarned" jsonschema:"minimum=0"`
	PrestigeCount       int                  `json:"prestigeCount" jsonschema:"minimum=0"`
	GainsMultiplier     float64              `json:"gainsMultiplier" jsonschema:"minimum=1"`
	AscensionStars      int                  `json:"ascensionStars" jsonschema:"minimum=0,maximum=5"`
	LifetimePrestiges   int                  `json:"lifetimePrestigesEverDone" jsonschema:"minimum=0"`
	Upgrades            []UpgradeEntry       `json:"upgrades"`
	Rewards             []RewardEntry        `json:"rewards"`
	Perks               []PerkEntry          `json:"gymCorpUpgrades"`
	Mystery             *model.MysteryEffect `json:"mysterySupplementEffect"`
	RunNumber           int                  `json:"runNumber" jsonschema:"minimum=0"`
}

// Default returns the record of a fresh game.
func Default() *Record {
	return &Record{
		Version:         Version,
		RepsPerClick:    1,
		GainsMultiplier: 1,
	}
}

func (r *Record) fields() map[string]any {
	return map[string]any{
		"version":                   &r.Version,
		"reps":                      &r.Reps,
		"repsPerClick":              &r.RepsPerClick,
		"totalClicks":               &r.TotalClicks,
		"autoGymLevel":              &r.AutoGymLevel,
		"lifetimeReps":              &r.LifetimeReps,
		"lifetimeSeconds":           &r.LifetimeSeconds,
		"gymCoins":                  &r.GymCoins,
		"totalGymCoinsEarned":       &r.TotalGymCoinsEarned,
		"prestigeCount":             &r.PrestigeCount,
		"gainsMultiplier":           &r.GainsMultiplier,
		"ascensionStars":            &r.AscensionStars,
		"lifetimePrestigesEverDone": &r.LifetimePrestiges,
		"upgrades":                  &r.Upgrades,
		"rewards":                   &r.Rewards,
		"gymCorpUpgrades":           &r.Perks,
		"mysterySupplementEffect":   &r.Mystery,
		"runNumber":                 &r.RunNumber,
	}
}

// Decode parses a save record field by field. A missing, null or
// malformed field keeps its default; only a record that is not a JSON
// object at all is an error.
func Decode(data []byte) (*Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}

	rec := Default()
	rec.Version = 0
	for name, dst := range rec.fields() {
		v, ok := raw[name]
		if !ok || string(v) == "null" {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			log.Printf("[WARN] save field %q unreadable, using default: %v", name, err)
		}
	}

	if rec.Version < Version {
		rec.migrate()
	}
	rec.normalize()
	return rec, nil
}

// Encode serialises the record at the current version.
func Encode(rec *Record) ([]byte, error) {
	rec.Version = Version
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// migrate upgrades a version 0 record. Version 0 kept secret reveal text
// in name/emoji and folded The Long Haul into the gains multiplier.
func (r *Record) migrate() {
	for i := range r.Rewards {
		e := &r.Rewards[i]
		if e.DisplayName == "" {
			e.DisplayName = e.Name
		}
		if e.Icon == "" {
			e.Icon = e.Emoji
		}
		e.Name, e.Emoji = "", ""
	}
	r.GainsMultiplier = progression.PrestigeGains(r.PrestigeCount)
	r.Version = Version
}

func (r *Record) normalize() {
	nonNeg := func(v float64) float64 {
		if math.IsNaN(v) || v < 0 {
			return 0
		}
		return v
	}
	r.Reps = nonNeg(r.Reps)
	r.LifetimeReps = math.Max(nonNeg(r.LifetimeReps), r.Reps)
	if r.RepsPerClick < 1 || math.IsNaN(r.RepsPerClick) {
		r.RepsPerClick = 1
	}
	r.TotalClicks = max(r.TotalClicks, 0)
	r.AutoGymLevel = max(r.AutoGymLevel, 0)
	r.LifetimeSeconds = max(r.LifetimeSeconds, 0)
	r.GymCoins = max(r.GymCoins, 0)
	r.TotalGymCoinsEarned = max(r.TotalGymCoinsEarned, r.GymCoins)
	r.PrestigeCount = max(r.PrestigeCount, 0)
	r.AscensionStars = min(max(r.AscensionStars, 0), 5)
	r.LifetimePrestiges = max(r.LifetimePrestiges, 0)
	r.RunNumber = max(r.RunNumber, 0)
	if r.GainsMultiplier < 1 || math.IsNaN(r.GainsMultiplier) {
		r.GainsMultiplier = progression.PrestigeGains(r.PrestigeCount)
	}
	if r.Mystery != nil && r.Mystery.Mult <= 0 {
		r.Mystery = nil
	}
}

// Snapshot captures the persistent part of st.
func Snapshot(st *model.State) *Record {
	rec := &Record{
		Version:             Version,
		Reps:                st.Reps,
		RepsPerClick:        st.RepsPerClick,
		TotalClicks:         st.TotalClicks,
		AutoGymLevel:        st.AutoTier,
		LifetimeReps:        st.LifetimeReps,
		LifetimeSeconds:     st.LifetimeSeconds,
		GymCoins:            st.GymCoins,
		TotalGymCoinsEarned: st.TotalGymCoinsEarned,
		PrestigeCount:       st.PrestigeCount,
		GainsMultiplier:     st.GainsMultiplier,
		AscensionStars:      st.AscensionStars,
		LifetimePrestiges:   st.LifetimePrestiges,
		RunNumber:           st.RunNumber,
	}
	if st.Mystery != nil {
		m := *st.Mystery
		rec.Mystery = &m
	}
	for _, u := range catalog.Upgrades {
		rec.Upgrades = append(rec.Upgrades, UpgradeEntry{ID: u.ID, Owned: st.Owned[u.ID]})
	}
	for _, p := range catalog.Perks {
		rec.Perks = append(rec.Perks, PerkEntry{ID: p.ID, Owned: st.Perks[p.ID]})
	}
	for _, r := range catalog.Rewards {
		e := RewardEntry{ID: r.ID}
		if rs, ok := st.Rewards[r.ID]; ok {
			e.Earned = rs.Earned
			e.DisplayName = rs.DisplayName
			e.Icon = rs.Icon
		}
		rec.Rewards = append(rec.Rewards, e)
	}
	return rec
}

// Restore builds a state from rec. Ids the catalog no longer knows are
// dropped.
func Restore(rec *Record) *model.State {
	st := model.NewState()
	st.Reps = rec.Reps
	st.RepsPerClick = rec.RepsPerClick
	st.TotalClicks = rec.TotalClicks
	st.AutoTier = rec.AutoGymLevel
	st.LifetimeReps = rec.LifetimeReps
	st.LifetimeSeconds = rec.LifetimeSeconds
	st.GymCoins = rec.GymCoins
	st.TotalGymCoinsEarned = rec.TotalGymCoinsEarned
	st.PrestigeCount = rec.PrestigeCount
	st.GainsMultiplier = rec.GainsMultiplier
	st.AscensionStars = rec.AscensionStars
	st.LifetimePrestiges = rec.LifetimePrestiges
	st.RunNumber = rec.RunNumber
	if rec.Mystery != nil {
		m := *rec.Mystery
		st.Mystery = &m
	}

	for _, e := range rec.Upgrades {
		u, ok := catalog.Upgrade(e.ID)
		if !ok || e.Owned <= 0 {
			continue
		}
		owned := e.Owned
		if u.MaxOwned > 0 && owned > u.MaxOwned {
			owned = u.MaxOwned
		}
		st.Owned[e.ID] = owned
	}
	for _, e := range rec.Perks {
		if _, ok := catalog.Perk(e.ID); ok && e.Owned {
			st.Perks[e.ID] = true
		}
	}
	for _, e := range rec.Rewards {
		def, ok := catalog.Reward(e.ID)
		if !ok || !e.Earned {
			continue
		}
		rs := st.Reward(e.ID)
		rs.Earned = true
		rs.DisplayName = e.DisplayName
		rs.Icon = e.Icon
		if def.Secret && rs.DisplayName == "" {
			rs.DisplayName, rs.Icon = def.Reveal, def.Icon
		}
	}
	return st
}
