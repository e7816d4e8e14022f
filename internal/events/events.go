package events

import (
	"math/rand"
	"time"

	"GymSimulator/internal/catalog"
	"GymSimulator/internal/config"
	"GymSimulator/internal/model"
)

// Kind is what an event roll produced.
type Kind int

const (
	KindEvent Kind = iota
	KindUltra
	KindGoblin
)

// Roll is the outcome of one event roll. Def is unset for KindGoblin.
type Roll struct {
	Kind Kind
	Def  model.EventDef
}

// Generator draws every random decision of the game from one source so a
// seeded source replays a session exactly.
type Generator struct {
	rng *rand.Rand
	b   config.Balance
}

// New creates a generator over rng.
func New(rng *rand.Rand, b config.Balance) *Generator {
	return &Generator{rng: rng, b: b}
}

// NewSeeded creates a generator with its own source.
func NewSeeded(seed int64, b config.Balance) *Generator {
	return New(rand.New(rand.NewSource(seed)), b)
}

// Chance reports true with probability p.
func (g *Generator) Chance(p float64) bool {
	return g.rng.Float64() < p
}

// NextDelay is the wait until the next event roll.
func (g *Generator) NextDelay(sheet model.Sheet) time.Duration {
	d := g.b.EventDelayMin + time.Duration(g.rng.Float64()*float64(g.b.EventDelaySpread))
	return time.Duration(float64(d) * sheet.EventDelayFactor)
}

// Roll picks the next event: the session's single ultra first, then the
// goblin, then the weighted ordinary pool.
func (g *Generator) Roll(st *model.State) Roll {
	if !st.UltraFired && g.Chance(g.b.UltraChance) {
		return Roll{Kind: KindUltra, Def: g.pickUltra()}
	}
	if g.Chance(g.b.GoblinChance) {
		return Roll{Kind: KindGoblin}
	}
	return Roll{Kind: KindEvent, Def: g.Pick(st.Perks[catalog.PerkBroNetwork])}
}

// Weight is the draw weight of an ordinary event.
func Weight(ev model.EventDef, broNetwork bool) int {
	if broNetwork && ev.Positive() {
		return 2
	}
	return 1
}

// Pick draws from the ordinary event pool.
func (g *Generator) Pick(broNetwork bool) model.EventDef {
	total := 0
	for _, ev := range catalog.Events {
		if !ev.Ultra {
			total += Weight(ev, broNetwork)
		}
	}
	n := g.rng.Intn(total)
	for _, ev := range catalog.Events {
		if ev.Ultra {
			continue
		}
		n -= Weight(ev, broNetwork)
		if n < 0 {
			return ev
		}
	}
	return catalog.Events[0]
}

func (g *Generator) pickUltra() model.EventDef {
	var pool []model.EventDef
	for _, ev := range catalog.Events {
		if ev.Ultra {
			pool = append(pool, ev)
		}
	}
	return pool[g.rng.Intn(len(pool))]
}

// ChainFollows reports whether a negative event earns a compensation event.
func (g *Generator) ChainFollows() bool {
	return g.Chance(g.b.ChainChance)
}

// PickChain draws a compensation event.
func (g *Generator) PickChain() model.EventDef {
	return catalog.ChainEvents[g.rng.Intn(len(catalog.ChainEvents))]
}

// Mystery rolls a Mystery Supplement outcome.
func (g *Generator) Mystery() model.MysteryEffect {
	return catalog.MysteryEffects[g.rng.Intn(len(catalog.MysteryEffects))]
}

// ChaosMultiplier rolls a chaos synergy multiplier in [0.5, 10).
func (g *Generator) ChaosMultiplier() float64 {
	return 0.5 + g.rng.Float64()*9.5
}

// Gift picks one of the candidates, reporting false when there are none.
func (g *Generator) Gift(candidates []model.Upgrade) (model.Upgrade, bool) {
	if len(candidates) == 0 {
		return model.Upgrade{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

// Flavor picks a motivational line.
func (g *Generator) Flavor() string {
	return catalog.FlavorTexts[g.rng.Intn(len(catalog.FlavorTexts))]
}
