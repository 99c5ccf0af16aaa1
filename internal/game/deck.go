package game

// CardDeck is an ordered deck of cards. Cards are drawn from the front and
// added to the back. An empty deck is valid.
type CardDeck struct {
	cards []*Card
}

// NewCardDeck creates a deck holding the given cards in order, front first.
func NewCardDeck(cards []*Card) *CardDeck {
	return &CardDeck{cards: cards}
}

// IsEmpty reports whether the deck has no cards left.
func (d *CardDeck) IsEmpty() bool {
	return len(d.cards) == 0
}

// RemainingCount returns how many cards are currently in the deck.
func (d *CardDeck) RemainingCount() int {
	return len(d.cards)
}

// DrawCards removes and returns the first num cards in draw order. If fewer
// than num remain, all remaining cards are drawn and the deck is emptied.
func (d *CardDeck) DrawCards(num int) []*Card {
	if num <= 0 {
		return nil
	}
	if num > len(d.cards) {
		num = len(d.cards)
	}
	drawn := d.cards[:num]
	d.cards = d.cards[num:]
	return drawn
}

// AddCard adds the given card to the back of the deck.
func (d *CardDeck) AddCard(card *Card) {
	d.cards = append(d.cards, card)
}

// Cards returns the deck contents in order, front first. The engine's
// serializer and the renderers read it; they must not mutate it.
func (d *CardDeck) Cards() []*Card {
	return d.cards
}
