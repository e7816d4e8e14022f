package model

import "time"

// Synergy groups upgrades into builds for the synergy bonuses.
type Synergy string

const (
	SynergyNone  Synergy = ""
	SynergyClick Synergy = "click"
	SynergyAuto  Synergy = "auto"
	SynergyCombo Synergy = "combo"
	SynergyEvent Synergy = "event"
	SynergyChaos Synergy = "chaos"
)

// Upgrade is a rep-bought upgrade definition. Ownership lives in State.Owned.
type Upgrade struct {
	ID        string
	Name      string
	Icon      string
	Desc      string
	BasePrice float64
	Growth    float64
	UnlockAt  float64
	MaxOwned  int // 0 means uncapped
	Synergy   Synergy
	Chaos     bool // counts towards the chaos synergy score
	Effect    Effect
}

// Maxed reports whether owned has reached the cap.
func (u Upgrade) Maxed(owned int) bool {
	return u.MaxOwned > 0 && owned >= u.MaxOwned
}

// Perk is a permanent GymCoin-bought upgrade.
type Perk struct {
	ID   string
	Name string
	Icon string
	Desc string
	Cost int64
}

// Requirement selects the counter an achievement is measured against.
type Requirement string

const (
	ReqReps             Requirement = "reps"
	ReqUpgrades         Requirement = "upgrades"
	ReqAutoTier         Requirement = "autoGym"
	ReqClicks           Requirement = "clicks"
	ReqPrestige         Requirement = "prestige"
	ReqAscension        Requirement = "ascension"
	ReqGoblin           Requirement = "goblin"
	ReqLifetimeSeconds  Requirement = "lifetime_seconds"
	ReqSecretNoBuyClick Requirement = "secret_69clicks"
	ReqSecretMidnight   Requirement = "secret_midnight"
)

// Reward is an achievement definition.
type Reward struct {
	ID        string
	Name      string
	Icon      string
	Req       Requirement
	Threshold float64
	Secret    bool
	Reveal    string // display text once a secret is earned
}

// Title is a prestige display title, held from Min prestiges upwards.
type Title struct {
	Min   int
	Name  string
	Color string
}

// EventDef describes a random gym event.
type EventDef struct {
	ID          string
	Text        string
	Multiplier  float64
	Duration    time.Duration
	Rare        bool
	Ultra       bool
	AutoOffline bool // automation yields nothing while active
	GiftUpgrade bool
	OneHourDump bool
	TempUpgrade bool
}

// Positive reports whether the event helps the player.
func (e EventDef) Positive() bool {
	return e.Multiplier >= 1
}

// MysteryEffect is the rolled outcome of the Mystery Supplement.
type MysteryEffect struct {
	Name string  `json:"name"`
	Mult float64 `json:"mult"`
	Msg  string  `json:"msg"`
}
