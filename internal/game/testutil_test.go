package game

// Shared helpers for building fixture matches.

// makeDeck builds a deck of n generic cards.
func makeDeck(n int) *CardDeck {
	var cards []*Card
	for i := 0; i < n; i++ {
		cards = append(cards, NewCard())
	}
	return NewCardDeck(cards)
}

// testHero builds a hero with the given stats, a padded generic deck, and
// the given hand.
func testHero(health, shield, maxEnergy, deckSize int, hand ...*Card) *Hero {
	return NewHero(health, shield, maxEnergy, makeDeck(deckSize), hand)
}

// testMatch builds a match between the given heroes with empty boards.
func testMatch(player, enemy *Hero) *Match {
	return NewMatch(MatchConfig{Player: player, Enemy: enemy})
}
