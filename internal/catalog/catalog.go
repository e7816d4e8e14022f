package catalog

import (
	"time"

	"GymSimulator/internal/model"
)

// Upgrade ids referenced by game logic.
const (
	ProteinShake = "proteinShake"
	AutoGym      = "autoGym"
	MysterySupp  = "mysterySupp"
)

// Perk ids.
const (
	PerkStartingSupps    = "startingSupps"
	PerkVIPMembership    = "vipMembership"
	PerkBroNetwork       = "broNetwork"
	PerkSteroidKnowledge = "steroidKnowledge"
	PerkEventChaser      = "eventChaser"
	PerkComboMaster      = "comboMaster"
	PerkGymInfluencer    = "gymInfluencer"
	PerkMorningRoutine   = "morningRoutine"
)

// Reward ids referenced by game logic.
const (
	RewardWentPro      = "wentPro"
	RewardAscended     = "ascended"
	RewardGoblinCaught = "goblinCaught"
	RewardMethodActor  = "methodActor"
	RewardMidnight     = "midnightGains"
	RewardLongHaul     = "longHaul"
	RewardBecomeTheGym = "becomeTheGym"
)

// Upgrades is the rep shop, in display order.
var Upgrades = []model.Upgrade{
	// Click build
	{ID: ProteinShake, Name: "Protein Shake", Icon: "🥤", Desc: "+1 click. The classic.", BasePrice: 10, Growth: 1.25, UnlockAt: 0, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 1}},
	{ID: "preworkout", Name: "Pre-Workout", Icon: "⚡", Desc: "+5 click. Jittery hands included.", BasePrice: 50, Growth: 1.28, UnlockAt: 30, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 5}},
	{ID: "rawEggSmoothie", Name: "Raw Egg Smoothie", Icon: "🥚", Desc: "+3 click. Tastes like regret.", BasePrice: 120, Growth: 1.27, UnlockAt: 150, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 3}},
	{ID: "personalTrainer", Name: "Personal Trainer", Icon: "👨‍🏫", Desc: "+20 click. He's judging you.", BasePrice: 200, Growth: 1.30, UnlockAt: 300, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 20}},
	{ID: "creatine", Name: "Creatine (Legal)", Icon: "🧪", Desc: "+50 click. Probably fine.", BasePrice: 800, Growth: 1.33, UnlockAt: 1000, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 50}},
	{ID: "saunaSession", Name: "Sauna Session", Icon: "🧖", Desc: "+100 click. Transcended pain.", BasePrice: 3000, Growth: 1.35, UnlockAt: 5000, Synergy: model.SynergyClick, Effect: model.ClickBonus{Amount: 100}},
	{ID: "broScienceDegree", Name: "Bro Science Degree", Icon: "🧠", Desc: "+500 click. Not accredited. Every 10th click does 0.", BasePrice: 50000, Growth: 1.40, UnlockAt: 500000, Synergy: model.SynergyClick, Effect: model.BadAdvice{Amount: 500, Every: 10}},
	{ID: "steakTherapy", Name: "Raw Steak Slap Therapy", Icon: "🥩", Desc: "x2 click. 1% chance per click: MEAT EVENT (3x for 5s).", BasePrice: 5000000, Growth: 1.45, UnlockAt: 5000000, Synergy: model.SynergyClick, Effect: model.MeatSlap{ClickMult: 2, Chance: 0.01, Bonus: 2, Boost: 3, BoostFor: 5 * time.Second}},
	// Auto build
	{ID: AutoGym, Name: "Auto-Gym Machine", Icon: "🤖", Desc: "Passive reps. Bots do the work.", BasePrice: 100, Growth: 1.35, UnlockAt: 80, Synergy: model.SynergyAuto, Effect: model.AutoTier{}},
	{ID: "bluetoothSpeaker", Name: "Eye of the Tiger 24/7", Icon: "📢", Desc: "x2 auto output. Legally distinct.", BasePrice: 400, Growth: 1.32, UnlockAt: 500, Synergy: model.SynergyAuto, Effect: model.AutoBoost{Mult: 2}},
	{ID: "chairGrandpa", Name: "Motivational Grandpa", Icon: "🪑", Desc: "+5 passive rps per owned. He believes in you.", BasePrice: 1500, Growth: 1.38, UnlockAt: 2000, Synergy: model.SynergyAuto, Effect: model.AutoFlat{PerUnit: 5}},
	{ID: "robotGymCrew", Name: "Robot Gym Crew", Icon: "🦾", Desc: "+50 base rps. An army of polite iron men.", BasePrice: 25000, Growth: 1.40, UnlockAt: 20000, Synergy: model.SynergyAuto, Effect: model.AutoFlat{PerUnit: 50}},
	{ID: "aiTrainer", Name: "AI Personal Trainer", Icon: "🖥️", Desc: "Auto rps x1.5. It also judges your form.", BasePrice: 100000, Growth: 1.42, UnlockAt: 80000, Synergy: model.SynergyAuto, Effect: model.AutoScaling{Factor: 1.5}},
	{ID: "theVortex", Name: "The Vortex", Icon: "🌀", Desc: "A dimensional rift. Income based on total lifetime playtime.", BasePrice: 500000000, Growth: 1.50, UnlockAt: 500000000, MaxOwned: 1, Synergy: model.SynergyAuto, Chaos: true, Effect: model.Vortex{PerMinute: 1000}},
	// Combo build
	{ID: "rhythmTraining", Name: "Rhythm Training", Icon: "🥁", Desc: "+10 combo streak cap. Feel the beat.", BasePrice: 2000, Growth: 1.35, UnlockAt: 3000, Synergy: model.SynergyCombo, Effect: model.ComboCap{Step: 10}},
	{ID: "comboWindow", Name: "Wider Combo Window", Icon: "⏱️", Desc: "+200ms click window per owned.", BasePrice: 5000, Growth: 1.38, UnlockAt: 8000, Synergy: model.SynergyCombo, Effect: model.ComboWindow{Step: 200 * time.Millisecond}},
	// Event and chaos build
	{ID: "chaosMagnet", Name: "Chaos Magnet", Icon: "🧲", Desc: "Events 30% more frequent. You attract drama.", BasePrice: 10000, Growth: 1.40, UnlockAt: 15000, Synergy: model.SynergyEvent, Effect: model.EventFrequency{DelayFactor: 0.7}},
	{ID: MysterySupp, Name: "Mystery Supplement", Icon: "💊", Desc: "Unknown effect. Manufacturer unclear. Effect: ???", BasePrice: 50000, Growth: 1.50, UnlockAt: 50000, Synergy: model.SynergyChaos, Chaos: true, Effect: model.Mystery{}},
	{ID: "giraffeSpotter", Name: "Giraffe Spotter", Icon: "🦒", Desc: "A giraffe walks in. You don't question it. +10% all gains.", BasePrice: 1000000, Growth: 1.45, UnlockAt: 1000000, Synergy: model.SynergyChaos, Chaos: true, Effect: model.AllGains{Mult: 1.10}},
	// Vibes only
	{ID: "motivationalPoster", Name: "Mountain Poster", Icon: "🏔️", Desc: `"Climb Every Mountain." Costs 0. Does nothing. Vibes only.`, BasePrice: 0, Growth: 1.0, UnlockAt: 3000, MaxOwned: 1, Chaos: true, Effect: model.Cosmetic{}},
}

// Perks is the Gym Corp shop.
var Perks = []model.Perk{
	{ID: PerkStartingSupps, Name: "Starting Supplement Pack", Icon: "🎒", Desc: "Begin each run with 10 free Protein Shakes pre-purchased.", Cost: 5},
	{ID: PerkVIPMembership, Name: "VIP Membership", Icon: "💳", Desc: "Auto-gym starts at tier 1 immediately on new run.", Cost: 8},
	{ID: PerkBroNetwork, Name: "Bro Network", Icon: "🤜", Desc: "Positive events twice as likely. Bros look out for you.", Cost: 12},
	{ID: PerkSteroidKnowledge, Name: "Steroid Knowledge", Icon: "📚", Desc: "Unlock an exclusive prestige-only upgrade each run.", Cost: 20},
	{ID: PerkEventChaser, Name: "Event Chaser", Icon: "🏃", Desc: "+50% event duration. You milk every event dry.", Cost: 15},
	{ID: PerkComboMaster, Name: "Combo Master Cert", Icon: "🎓", Desc: "Combo window starts at 1200ms instead of 800ms.", Cost: 10},
	{ID: PerkGymInfluencer, Name: "Gym Influencer Status", Icon: "📸", Desc: "All GymCoin income x2. The algorithm loves you.", Cost: 25},
	{ID: PerkMorningRoutine, Name: "Morning Routine", Icon: "☀️", Desc: "Momentum ticks 50% faster. You're a morning person now.", Cost: 18},
}

// Rewards is the achievement list. The impossible dream stays last.
var Rewards = []model.Reward{
	{ID: "firstSteps", Name: "First Steps", Icon: "👟", Req: model.ReqReps, Threshold: 10},
	{ID: "firstCentury", Name: "First Century", Icon: "💯", Req: model.ReqReps, Threshold: 100},
	{ID: "ironWill", Name: "Iron Will", Icon: "🎖️", Req: model.ReqUpgrades, Threshold: 3},
	{ID: "automatedAthlete", Name: "Automated Athlete", Icon: "🤖", Req: model.ReqAutoTier, Threshold: 1},
	{ID: "gymLegend", Name: "Gym Legend", Icon: "👑", Req: model.ReqReps, Threshold: 1000},
	{ID: "clicky", Name: "Clicky Fingers", Icon: "🖱️", Req: model.ReqClicks, Threshold: 500},
	{ID: RewardWentPro, Name: "Went Pro", Icon: "🌟", Req: model.ReqPrestige, Threshold: 1},
	{ID: "millionaire", Name: "Rep Millionaire", Icon: "💰", Req: model.ReqReps, Threshold: 1e6},
	{ID: "billionaire", Name: "Rep Billionaire", Icon: "🏦", Req: model.ReqReps, Threshold: 1e9},
	{ID: RewardAscended, Name: "Ascended", Icon: "✨", Req: model.ReqAscension, Threshold: 1},
	{ID: RewardGoblinCaught, Name: "Goblin Hunter", Icon: "👹", Req: model.ReqGoblin, Threshold: 1},
	{ID: RewardMethodActor, Name: "???", Icon: "🤫", Req: model.ReqSecretNoBuyClick, Threshold: 69, Secret: true, Reveal: "🤫 Method Actor — You know what you did."},
	{ID: RewardMidnight, Name: "???", Icon: "🌙", Req: model.ReqSecretMidnight, Threshold: 1, Secret: true, Reveal: "🌙 Midnight Gains — No one can see you cry."},
	{ID: RewardLongHaul, Name: "???", Icon: "💀", Req: model.ReqLifetimeSeconds, Threshold: 86400, Secret: true, Reveal: "💀 The Long Haul — Seek help. (+25% permanent gains)"},
	{ID: RewardBecomeTheGym, Name: "Become The Gym", Icon: "🌌", Req: model.ReqReps, Threshold: 1e15},
}

// Titles maps prestige counts to display titles, ascending by Min.
var Titles = []model.Title{
	{Min: 0, Name: "Gym Newbie", Color: "#aaa"},
	{Min: 1, Name: "Regular", Color: "#4ecdc4"},
	{Min: 2, Name: "Swole", Color: "#66d9e8"},
	{Min: 3, Name: "Shredded", Color: "#ffd700"},
	{Min: 5, Name: "Certified Gym Rat", Color: "#ff8c00"},
	{Min: 8, Name: "Absolute Unit", Color: "#ff6b6b"},
	{Min: 12, Name: "Ascended Chad", Color: "#da70d6"},
	{Min: 20, Name: "The Gains God", Color: "#fff"},
}

// Upgrade looks up an upgrade definition by id.
func Upgrade(id string) (model.Upgrade, bool) {
	for _, u := range Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return model.Upgrade{}, false
}

// Perk looks up a perk definition by id.
func Perk(id string) (model.Perk, bool) {
	for _, p := range Perks {
		if p.ID == id {
			return p, true
		}
	}
	return model.Perk{}, false
}

// Reward looks up an achievement definition by id.
func Reward(id string) (model.Reward, bool) {
	for _, r := range Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reward{}, false
}
