package game

import "strconv"

// EffectKind identifies one component of a card's effect.
type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectHealth
	EffectShield
)

func (k EffectKind) String() string {
	switch k {
	case EffectDamage:
		return "damage"
	case EffectHealth:
		return "health"
	case EffectShield:
		return "shield"
	default:
		return "unknown"
	}
}

// CardKind is the closed set of card variants.
type CardKind int

const (
	KindCard CardKind = iota // catalog placeholder, never constructed in play
	KindShield
	KindHeal
	KindFireball
	KindMinion
	KindWyrm
	KindRaptor
)

// Card symbols as they appear in snapshots and on the board. Fireball has no
// fixed symbol; it renders its turn counter.
const (
	CardSymbol   = "C"
	ShieldSymbol = "S"
	HealSymbol   = "H"
	MinionSymbol = "M"
	WyrmSymbol   = "W"
	RaptorSymbol = "R"
)

// Card is a playable card: a variant tag plus the fields every card carries.
// Fireball's TurnsInHand is the only mutable field; its symbol and damage are
// derived from it at read time so they can never go stale.
type Card struct {
	Kind        CardKind
	Name        string
	Description string
	Cost        int
	Permanent   bool
	TurnsInHand int // Fireball only
}

func (c *Card) String() string {
	return c.Name + ": " + c.Description
}

// Symbol returns the single-character symbol for this card. Fireball's symbol
// is its decimal turn counter.
func (c *Card) Symbol() string {
	switch c.Kind {
	case KindShield:
		return ShieldSymbol
	case KindHeal:
		return HealSymbol
	case KindFireball:
		return strconv.Itoa(c.TurnsInHand)
	case KindMinion:
		return MinionSymbol
	case KindWyrm:
		return WyrmSymbol
	case KindRaptor:
		return RaptorSymbol
	default:
		return CardSymbol
	}
}

// Effect returns the card's effect mapping, recomputed on every call.
// Raptor's live-health damage is handled by Minion.Effect; a Raptor card
// still in hand or deck has no entity stats yet and reports nothing here.
func (c *Card) Effect() map[EffectKind]int {
	switch c.Kind {
	case KindShield:
		return map[EffectKind]int{EffectShield: 5}
	case KindHeal:
		return map[EffectKind]int{EffectHealth: 2}
	case KindFireball:
		return map[EffectKind]int{EffectDamage: c.TurnsInHand + 3}
	case KindWyrm:
		return map[EffectKind]int{EffectHealth: 1, EffectShield: 1}
	default:
		return map[EffectKind]int{}
	}
}

// IncrementTurn registers another turn spent in a hero's hand. Only Fireball
// cards age; for every other kind this is a no-op.
func (c *Card) IncrementTurn() {
	if c.Kind == KindFireball {
		c.TurnsInHand++
	}
}

// --- Catalog ---

// NewCard creates the generic placeholder card.
func NewCard() *Card {
	return &Card{
		Kind:        KindCard,
		Name:        "Card",
		Description: "A card.",
		Cost:        1,
	}
}

// NewShield creates a Shield card: 5 shield for 1 energy.
func NewShield() *Card {
	return &Card{
		Kind:        KindShield,
		Name:        "Shield",
		Description: "Cast a protective shield that can absorb 5 damage.",
		Cost:        1,
	}
}

// NewHeal creates a Heal card: 2 health for 2 energy.
func NewHeal() *Card {
	return &Card{
		Kind:        KindHeal,
		Name:        "Heal",
		Description: "Cast an aura on target. It recovers 2 health.",
		Cost:        2,
	}
}

// NewFireball creates a Fireball card that has already spent the given number
// of turns in a hand. It deals 3 + turns-in-hand damage.
func NewFireball(turnsInHand int) *Card {
	return &Card{
		Kind:        KindFireball,
		Name:        "Fireball",
		Description: "FIREBALL! Deals 3 + [turns in hand] damage.",
		Cost:        3,
		TurnsInHand: turnsInHand,
	}
}

// minionCard builds the card facet shared by all minion variants.
func minionCard(kind CardKind) Card {
	switch kind {
	case KindWyrm:
		return Card{
			Kind:        KindWyrm,
			Name:        "Wyrm",
			Description: "Summon a Mana Wyrm to buff your minions.",
			Cost:        2,
			Permanent:   true,
		}
	case KindRaptor:
		return Card{
			Kind:        KindRaptor,
			Name:        "Raptor",
			Description: "Summon a Bloodfen Raptor to fight for you.",
			Cost:        2,
			Permanent:   true,
		}
	default:
		return Card{
			Kind:        KindMinion,
			Name:        "Minion",
			Description: "Summon a minion.",
			Cost:        2,
			Permanent:   true,
		}
	}
}

// NewMinionCard creates the hand form of a generic Minion card.
func NewMinionCard() *Card {
	c := minionCard(KindMinion)
	return &c
}

// NewWyrmCard creates the hand form of a Wyrm card.
func NewWyrmCard() *Card {
	c := minionCard(KindWyrm)
	return &c
}

// NewRaptorCard creates the hand form of a Raptor card.
func NewRaptorCard() *Card {
	c := minionCard(KindRaptor)
	return &c
}

// CardFromSymbol builds the card a snapshot symbol denotes. Unknown symbols
// return nil; the decoder treats that as a malformed snapshot.
func CardFromSymbol(symbol string) *Card {
	switch symbol {
	case CardSymbol:
		return NewCard()
	case ShieldSymbol:
		return NewShield()
	case HealSymbol:
		return NewHeal()
	case MinionSymbol:
		return NewMinionCard()
	case WyrmSymbol:
		return NewWyrmCard()
	case RaptorSymbol:
		return NewRaptorCard()
	}
	if turns, err := strconv.Atoi(symbol); err == nil && turns >= 0 {
		return NewFireball(turns)
	}
	return nil
}

// CardRegistry maps catalog card names to their hand-form constructors.
// The web front uses it to list the playable catalog.
var CardRegistry = map[string]func() *Card{
	"Card":     NewCard,
	"Shield":   NewShield,
	"Heal":     NewHeal,
	"Fireball": func() *Card { return NewFireball(0) },
	"Minion":   NewMinionCard,
	"Wyrm":     NewWyrmCard,
	"Raptor":   NewRaptorCard,
}
