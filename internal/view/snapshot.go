package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/config"
	"GymSimulator/internal/model"
	"GymSimulator/internal/progression"
)

// Banner categories.
const (
	BannerPositive = "positive"
	BannerNegative = "negative"
	BannerUltra    = "ultra"
	BannerGoblin   = "goblin"
)

// UpgradeCard is one shop entry.
type UpgradeCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Desc       string `json:"desc"`
	Owned      string `json:"owned"`
	Cost       string `json:"cost"`
	Affordable bool   `json:"affordable"`
	Maxed      bool   `json:"maxed"`
	Synergy    string `json:"synergy"`
}

// PerkCard is one Gym Corp shop entry.
type PerkCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Desc       string `json:"desc"`
	Cost       string `json:"cost"`
	Owned      bool   `json:"owned"`
	Affordable bool   `json:"affordable"`
}

// RewardBadge is one achievement, masked while a secret is locked.
type RewardBadge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Earned bool   `json:"earned"`
	Dream  bool   `json:"dream,omitempty"`
	Hint   string `json:"hint,omitempty"`
}

// Banner is the active event strip.
type Banner struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// OfflineCard is the welcome-back report.
type OfflineCard struct {
	Away   string `json:"away"`
	Earned string `json:"earned"`
	Text   string `json:"text"`
}

// Snapshot is everything the presentation layer shows.
type Snapshot struct {
	Reps          string `json:"reps"`
	PerClick      string `json:"perClick"`
	PerSecond     string `json:"perSecond"`
	Lifetime      string `json:"lifetime"`
	TotalClicks   int64  `json:"totalClicks"`
	AutoTier      int    `json:"autoTier"`
	TotalUpgrades int    `json:"totalUpgrades"`

	GymCoins      string `json:"gymCoins"`
	Title         string `json:"title"`
	TitleColor    string `json:"titleColor"`
	PrestigeCount int    `json:"prestigeCount"`
	Stars         string `json:"stars"`
	CanPrestige   bool   `json:"canPrestige"`
	CanAscend     bool   `json:"canAscend"`
	PrestigeCoins string `json:"prestigeCoins"`

	Upgrades      []UpgradeCard `json:"upgrades"`
	Perks         []PerkCard    `json:"perks"`
	Rewards       []RewardBadge `json:"rewards"`
	RewardCount   string        `json:"rewardCount"`
	Progress      float64       `json:"progress"`
	ProgressLabel string        `json:"progressLabel"`

	Banner   *Banner `json:"banner,omitempty"`
	Combo    string  `json:"combo,omitempty"`
	Momentum string  `json:"momentum"`
	Rest     string  `json:"rest,omitempty"`
	Daily    string  `json:"daily,omitempty"`
	Mirror   string  `json:"mirror"`
	Station  string  `json:"station,omitempty"`
	Mystery  string  `json:"mystery,omitempty"`
	Chaos    string  `json:"chaos,omitempty"`
	Flavor   string  `json:"flavor"`

	Offline *OfflineCard `json:"offline,omitempty"`
}

// Build derives a snapshot from the state at now.
func Build(st *model.State, b config.Balance, now time.Time) Snapshot {
	sheet := progression.Shape(st)
	title := progression.Title(st.PrestigeCount)

	s := Snapshot{
		Reps:          FormatReps(st.Reps) + " REPS",
		PerClick:      FormatReps(progression.EffectiveClick(st, sheet, now) * st.Combo.Multiplier),
		PerSecond:     FormatReps(progression.AutoRps(st, sheet, now)),
		Lifetime:      FormatReps(st.LifetimeReps),
		TotalClicks:   st.TotalClicks,
		AutoTier:      st.AutoTier,
		TotalUpgrades: st.TotalOwned(),
		GymCoins:      FormatCoins(st.GymCoins),
		Title:         fmt.Sprintf("%s (x%.1f gains)", title.Name, st.GainsMultiplier),
		TitleColor:    title.Color,
		PrestigeCount: st.PrestigeCount,
		Stars:         strings.Repeat("⭐", st.AscensionStars),
		CanPrestige:   progression.CanPrestige(st, b),
		CanAscend:     progression.CanAscend(st, b),
		PrestigeCoins: fmt.Sprintf("Will earn: ~%d 🪙 GymCoins", progression.PrestigeCoins(st)),
		Upgrades:      upgradeCards(st),
		Perks:         perkCards(st),
		Progress:      progression.Progress(st, now),
		ProgressLabel: progressLabel(st),
		Banner:        banner(st, now),
		Momentum:      fmt.Sprintf("⚡ Momentum: %d/%d (+%d%%)", st.MomentumTicks, b.MaxMomentum, st.MomentumTicks*2),
		Mirror:        fmt.Sprintf("🪞 Body Fat: %.1f%%", BodyFat(st.LifetimeReps)),
		Station:       string(st.Station),
	}
	if s.Stars == "" {
		s.Stars = "—"
	}
	s.Rewards, s.RewardCount = rewardBadges(st)

	if st.Combo.Streak >= 3 {
		s.Combo = fmt.Sprintf("🔥 x%.2f COMBO (%d streak)", st.Combo.Multiplier, st.Combo.Streak)
	}
	if st.Rest.Active(now) {
		left := int(math.Ceil(st.Rest.Until.Sub(now).Seconds()))
		s.Rest = fmt.Sprintf("😴 Rest Bonus: x%g (%ds)", st.Rest.Mult, left)
	}
	if d := st.Daily; d != nil {
		if d.Earned {
			s.Daily = fmt.Sprintf("📅 Daily Goal: COMPLETE ✅ (+%d GymCoins earned)", d.Reward)
		} else {
			pct := math.Min(100, st.Reps/d.Target*100)
			s.Daily = fmt.Sprintf("📅 Daily: %s/%s reps (%.0f%%) → +%d 🪙", FormatReps(st.Reps), FormatReps(d.Target), pct, d.Reward)
		}
	}
	s.Flavor = st.Flavor
	if s.Flavor == "" {
		s.Flavor = catalog.FlavorTexts[0]
	}
	if st.Mystery != nil {
		s.Mystery = fmt.Sprintf("%s (x%g)", st.Mystery.Name, st.Mystery.Mult)
	}
	if progression.ChaosActive(st) {
		s.Chaos = fmt.Sprintf("🌀 Chaos Synergy: x%.2f", st.ChaosMultiplier)
	}
	if r := st.Offline; r != nil {
		s.Offline = &OfflineCard{Away: FormatAway(r.Elapsed), Earned: FormatReps(r.Earned), Text: OfflineText(r)}
	}
	return s
}

func upgradeCards(st *model.State) []UpgradeCard {
	visible := progression.Visible(st)
	cards := make([]UpgradeCard, 0, len(visible))
	for _, u := range visible {
		owned := st.Owned[u.ID]
		cost := progression.Cost(u, owned)
		maxed := u.Maxed(owned)

		name := u.Icon + " " + u.Name
		if star := Stars(owned); star != "" {
			name += " " + star
		}
		ownedText := fmt.Sprintf("Owned: %d", owned)
		if u.MaxOwned > 0 {
			ownedText += fmt.Sprintf("/%d", u.MaxOwned)
		}
		costText := FormatReps(cost) + " reps"
		if maxed {
			costText = "MAXED"
		}
		cards = append(cards, UpgradeCard{
			ID:         u.ID,
			Name:       name,
			Desc:       u.Desc,
			Owned:      ownedText,
			Cost:       costText,
			Affordable: !maxed && st.Reps >= cost,
			Maxed:      maxed,
			Synergy:    string(u.Synergy),
		})
	}
	return cards
}

func perkCards(st *model.State) []PerkCard {
	cards := make([]PerkCard, 0, len(catalog.Perks))
	for _, p := range catalog.Perks {
		owned := st.Perks[p.ID]
		cost := fmt.Sprintf("%d 🪙", p.Cost)
		if owned {
			cost = "Owned"
		}
		cards = append(cards, PerkCard{
			ID:         p.ID,
			Name:       p.Icon + " " + p.Name,
			Desc:       p.Desc,
			Cost:       cost,
			Owned:      owned,
			Affordable: !owned && st.GymCoins >= p.Cost,
		})
	}
	return cards
}

func rewardBadges(st *model.State) ([]RewardBadge, string) {
	badges := make([]RewardBadge, 0, len(catalog.Rewards))
	earned := 0
	for _, r := range catalog.Rewards {
		b := RewardBadge{ID: r.ID, Name: r.Name, Icon: r.Icon, Earned: st.Earned(r.ID)}
		if b.Earned {
			earned++
		}
		if r.Secret {
			switch {
			case !b.Earned:
				b.Name, b.Icon = "???", "🔒"
			case st.Rewards[r.ID].DisplayName != "":
				b.Name, b.Icon = st.Rewards[r.ID].DisplayName, st.Rewards[r.ID].Icon
			default:
				b.Name = r.Reveal
			}
		}
		if r.ID == catalog.RewardBecomeTheGym {
			b.Dream = true
			b.Hint = fmt.Sprintf("Become The Gym: %.6f%% there", math.Min(100, st.LifetimeReps/r.Threshold*100))
		}
		badges = append(badges, b)
	}
	return badges, fmt.Sprintf("(%d/%d)", earned, len(catalog.Rewards))
}

func progressLabel(st *model.State) string {
	r, ok := progression.NextReward(st)
	if !ok {
		return "All trophies earned! 🎉"
	}
	if r.Secret {
		return "Next secret: ???"
	}
	var target string
	switch r.Req {
	case model.ReqReps:
		target = FormatReps(r.Threshold) + " reps"
	case model.ReqClicks:
		target = FormatReps(r.Threshold) + " clicks"
	case model.ReqLifetimeSeconds:
		target = FormatReps(r.Threshold) + "s playtime"
	default:
		target = fmt.Sprintf("%g", r.Threshold)
	}
	return fmt.Sprintf("Next: %s (%s)", r.Name, target)
}

func banner(st *model.State, now time.Time) *Banner {
	if g := st.Goblin; g != nil {
		return &Banner{
			Text:     fmt.Sprintf("👹 GAINS GOBLIN has %s of your reps! Click to chase it down (%s to go)", FormatReps(g.Stolen), FormatReps(g.Debt)),
			Category: BannerGoblin,
		}
	}
	ev, ok := progression.EventActive(st, now)
	if !ok {
		return nil
	}
	category := BannerNegative
	switch {
	case ev.Def.Ultra:
		category = BannerUltra
	case ev.Def.Positive():
		category = BannerPositive
	}
	return &Banner{Text: ev.Def.Text, Category: category}
}
