package catalog

import (
	"time"

	"GymSimulator/internal/model"
)

// Events is the random event pool. Ultra events only come from the
// once-per-session ultra roll.
var Events = []model.EventDef{
	// Positive
	{ID: "preworkout_kick", Text: "⚡ Pre-workout KICKED IN. You see God.", Multiplier: 3, Duration: 15 * time.Second},
	{ID: "eye_tiger", Text: "🎵 Eye of the Tiger just dropped. YOU'RE UNSTOPPABLE.", Multiplier: 2, Duration: 20 * time.Second},
	{ID: "bro_hype", Text: "💪 Gym bro hyped you up. 'THAT'S ALL YOU!' It was not.", Multiplier: 2, Duration: 10 * time.Second},
	{ID: "raw_egg", Text: "🥚 You slammed a raw egg smoothie. Taste: regret. Effect: gains.", Multiplier: 2.5, Duration: 12 * time.Second},
	{ID: "mirror_eye_contact", Text: "🪞 Accidentally made eye contact with yourself for 5 seconds. Activated.", Multiplier: 1.5, Duration: 15 * time.Second},
	{ID: "new_rack", Text: "🏆 New squat rack just opened. You sprinted to claim it.", Multiplier: 2, Duration: 12 * time.Second},
	{ID: "pizza_gym", Text: "🍕 Someone brought PIZZA to the gym. You ate some. No regrets.", Multiplier: 1.2, Duration: 15 * time.Second},
	// Negative
	{ID: "yoga_squat_rack", Text: "🧘 Someone is doing yoga IN the squat rack. Focus down.", Multiplier: 0.5, Duration: 12 * time.Second},
	{ID: "gym_karen", Text: "👀 Gym Karen complained about your grunting. You grunt louder.", Multiplier: 0.75, Duration: 10 * time.Second},
	{ID: "instagram_distract", Text: "📱 You're watching someone else's gym reel. Embarrassing.", Multiplier: 0.5, Duration: 8 * time.Second},
	{ID: "sweat_bench", Text: "💀 Someone left sweat on your bench. You rage-cleaned it for 10 minutes.", Multiplier: 0.8, Duration: 10 * time.Second},
	{ID: "dumbbell_drop", Text: "🧲 Dropped a dumbbell. Everyone stared. You stared back. Nobody won.", Multiplier: 0.6, Duration: 8 * time.Second},
	{ID: "influencer_filming", Text: "🤳 Influencer is literally filming IN YOUR SPOT.", Multiplier: 0.75, Duration: 15 * time.Second},
	{ID: "equipment_malfunction", Text: "⚠️ EQUIPMENT MALFUNCTION. Auto-gym offline. The treadmill yeeted someone.", Multiplier: 0, Duration: 20 * time.Second, AutoOffline: true},
	// Chaos
	{ID: "protein_spill", Text: "🌩️ PROTEIN SPILL. 40lbs of whey. Vanilla cloud. EVERYONE GAINS.", Multiplier: 5, Duration: 30 * time.Second, Rare: true},
	{ID: "swole_santa", Text: "🎅 SWOLE SANTA appeared. He gave you a gift. In a tank top.", Multiplier: 3, Duration: 20 * time.Second, Rare: true, GiftUpgrade: true},
	// Ultra
	{ID: "corporate_sponsor", Text: "💰 CORPORATE SPONSORSHIP. You went viral. ALL income x5 for 2 minutes.", Multiplier: 5, Duration: 2 * time.Minute, Rare: true, Ultra: true},
	{ID: "went_viral", Text: "📸 YOU WENT VIRAL. One hour of income just appeared in your account.", Multiplier: 1, Duration: 5 * time.Second, Rare: true, Ultra: true, OneHourDump: true},
	{ID: "the_coach", Text: "🦁 THE COACH appeared from the shadows. Grants a temporary secret upgrade.", Multiplier: 2, Duration: time.Minute, Rare: true, Ultra: true, TempUpgrade: true},
}

// ChainEvents are the compensation follow-ups to negative events.
var ChainEvents = []model.EventDef{
	{ID: "chain_event", Text: "✨ The universe felt bad. Compensation gains incoming.", Multiplier: 3, Duration: 20 * time.Second},
	{ID: "chain_event", Text: "🔄 Karma reversed. Your suffering was not in vain.", Multiplier: 2.5, Duration: 15 * time.Second},
	{ID: "chain_event", Text: "💫 Plot twist: the bad event was secretly the tutorial.", Multiplier: 4, Duration: 10 * time.Second},
}

// MysteryEffects are the equally likely Mystery Supplement outcomes.
var MysteryEffects = []model.MysteryEffect{
	{Name: "💪 Massive gains", Mult: 5.0, Msg: "💊 Mystery Supplement: MASSIVE GAINS! x5 everything!"},
	{Name: "⚡ Energy boost", Mult: 2.0, Msg: "💊 Mystery Supplement: Energy boost! x2 gains."},
	{Name: "🤏 Micro gains", Mult: 0.5, Msg: "💊 Mystery Supplement: ...Micro gains. x0.5."},
	{Name: "🌀 Transcendence", Mult: 10.0, Msg: "💊 Mystery Supplement: TRANSCENDENCE!!! x10 ALL GAINS!"},
	{Name: "💀 Nothing happened", Mult: 1.0, Msg: "💊 Mystery Supplement: Nothing happened. You feel watched."},
	{Name: "🔥 Moderate gains", Mult: 3.0, Msg: "💊 Mystery Supplement: Solid 3x gains. Respectable."},
	{Name: "🧊 Ice cold", Mult: 0.25, Msg: "💊 Mystery Supplement: Ice cold. Everything slowed down."},
	{Name: "✨ Pure chaos", Mult: 7.5, Msg: "💊 Mystery Supplement: Pure chaos. 7.5x. Is this real?"},
}

// FlavorTexts rotate under the workout button.
var FlavorTexts = []string{
	"Do you even lift?",
	"Pain is just weakness leaving the body (allegedly).",
	"No days off. Except rest days. But not today.",
	"You call THAT a rep?!",
	"Someone's watching. Make it count.",
	"The mirror never lies. Unfortunately.",
	"Every rep brings you closer to your final form.",
	"Sweat is just your fat crying.",
	"The gains are worth it. Probably.",
	"One more. No, seriously, just one more.",
	"Bro, do you even science?",
	"The weights don't care about your feelings.",
	"Technically you could just close this tab.",
	"But you won't. You can't. It has you.",
}
