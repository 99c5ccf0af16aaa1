package game

// MaxHandSize is the hand limit enforced by the turn refresh. A hero draws
// back up to this many cards at the start of each of their turns.
const MaxHandSize = 5

// Hero is an entity with the agency to act: an energy pool with a growing
// capacity, a deck, and a hand. A freshly created hero always starts at full
// energy. Unlike a base entity, a hero with an exhausted deck is defeated
// even with positive health.
type Hero struct {
	Entity
	energyCapacity int
	energy         int
	deck           *CardDeck
	hand           []*Card
}

// NewHero creates a hero with the given stats, deck, and hand. Energy starts
// at capacity.
func NewHero(health, shield, maxEnergy int, deck *CardDeck, hand []*Card) *Hero {
	return &Hero{
		Entity:         NewEntity(health, shield),
		energyCapacity: maxEnergy,
		energy:         maxEnergy,
		deck:           deck,
		hand:           hand,
	}
}

// Energy returns the hero's current energy level.
func (h *Hero) Energy() int {
	return h.energy
}

// MaxEnergy returns the hero's energy capacity.
func (h *Hero) MaxEnergy() int {
	return h.energyCapacity
}

// Deck returns the hero's deck.
func (h *Hero) Deck() *CardDeck {
	return h.deck
}

// Hand returns the hero's hand in order. Callers must not mutate it;
// all hand mutation goes through the match.
func (h *Hero) Hand() []*Card {
	return h.hand
}

// SpendEnergy attempts to spend the given amount of energy. If the hero does
// not have enough, nothing happens and false is returned.
func (h *Hero) SpendEnergy(energy int) bool {
	if energy > h.energy {
		return false
	}
	h.energy -= energy
	return true
}

// NewTurn refreshes the hero for a new turn: every Fireball already in hand
// ages one turn, the hero draws back up to the hand limit, and energy
// capacity grows by one and refills. Fireballs age before the draw, so a
// card drawn this turn has not yet spent a turn in hand.
func (h *Hero) NewTurn() []*Card {
	for _, card := range h.hand {
		card.IncrementTurn()
	}

	toDraw := MaxHandSize - len(h.hand)
	if toDraw < 0 {
		toDraw = 0
	}
	drawn := h.deck.DrawCards(toDraw)
	h.hand = append(h.hand, drawn...)

	h.energyCapacity++
	h.energy = h.energyCapacity
	return drawn
}

// IsAlive reports whether the hero can still fight: health above zero and at
// least one card left in the deck.
func (h *Hero) IsAlive() bool {
	return h.Entity.IsAlive() && h.deck.RemainingCount() > 0
}

// removeFromHand removes the given card (by identity) from the hand,
// preserving order. Removing a card not in hand is a no-op.
func (h *Hero) removeFromHand(card *Card) {
	for i, c := range h.hand {
		if c == card {
			h.hand = append(h.hand[:i], h.hand[i+1:]...)
			return
		}
	}
}
