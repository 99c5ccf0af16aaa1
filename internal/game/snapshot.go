package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSnapshot is returned when a snapshot line cannot be decoded.
// Callers match it with errors.Is and fall back to a last-known-good save.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Snapshot format, one line:
//
//	<player>|<player_minions>|<enemy>|<enemy_minions>
//
// where a hero is "health,shield,energy_capacity;<deck_symbols>;<hand_symbols>"
// with comma-separated card symbols, and minions are semicolon-separated
// "symbol,health,shield" triples (empty string for an empty board). Current
// energy is not stored; a loaded hero starts at full capacity.

// EncodeSnapshot serializes the full match state to a single line.
func EncodeSnapshot(m *Match) string {
	return strings.Join([]string{
		encodeHero(m.Player()),
		encodeMinions(m.PlayerMinions()),
		encodeHero(m.Enemy()),
		encodeMinions(m.EnemyMinions()),
	}, "|")
}

func encodeHero(h *Hero) string {
	stats := fmt.Sprintf("%d,%d,%d", h.Health(), h.Shield(), h.MaxEnergy())
	return stats + ";" + encodeCards(h.Deck().Cards()) + ";" + encodeCards(h.Hand())
}

func encodeCards(cards []*Card) string {
	symbols := make([]string, len(cards))
	for i, c := range cards {
		symbols[i] = c.Symbol()
	}
	return strings.Join(symbols, ",")
}

func encodeMinions(minions []*Minion) string {
	triples := make([]string, len(minions))
	for i, m := range minions {
		triples[i] = fmt.Sprintf("%s,%d,%d", m.Symbol(), m.Health(), m.Shield())
	}
	return strings.Join(triples, ";")
}

// DecodeSnapshot parses a snapshot line back into a match. Only the first
// line of the input is considered. Decode failures wrap ErrMalformedSnapshot.
func DecodeSnapshot(line string) (*Match, error) {
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, "\r")

	fields := strings.Split(line, "|")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: want 4 pipe-separated fields, got %d", ErrMalformedSnapshot, len(fields))
	}

	player, err := decodeHero(fields[0])
	if err != nil {
		return nil, fmt.Errorf("player hero: %w", err)
	}
	playerMinions, err := decodeMinions(fields[1])
	if err != nil {
		return nil, fmt.Errorf("player minions: %w", err)
	}
	enemy, err := decodeHero(fields[2])
	if err != nil {
		return nil, fmt.Errorf("enemy hero: %w", err)
	}
	enemyMinions, err := decodeMinions(fields[3])
	if err != nil {
		return nil, fmt.Errorf("enemy minions: %w", err)
	}

	return NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: playerMinions,
		Enemy:         enemy,
		EnemyMinions:  enemyMinions,
	}), nil
}

func decodeHero(s string) (*Hero, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: hero %q: want stats;deck;hand", ErrMalformedSnapshot, s)
	}

	stats := strings.Split(parts[0], ",")
	if len(stats) != 3 {
		return nil, fmt.Errorf("%w: hero stats %q", ErrMalformedSnapshot, parts[0])
	}
	health, err1 := strconv.Atoi(stats[0])
	shield, err2 := strconv.Atoi(stats[1])
	maxEnergy, err3 := strconv.Atoi(stats[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: hero stats %q", ErrMalformedSnapshot, parts[0])
	}

	deckCards, err := decodeCards(parts[1])
	if err != nil {
		return nil, err
	}
	hand, err := decodeCards(parts[2])
	if err != nil {
		return nil, err
	}

	return NewHero(health, shield, maxEnergy, NewCardDeck(deckCards), hand), nil
}

func decodeCards(s string) ([]*Card, error) {
	if s == "" {
		return nil, nil
	}
	var cards []*Card
	for _, symbol := range strings.Split(s, ",") {
		card := CardFromSymbol(symbol)
		if card == nil {
			return nil, fmt.Errorf("%w: unknown card symbol %q", ErrMalformedSnapshot, symbol)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func decodeMinions(s string) ([]*Minion, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var minions []*Minion
	for _, triple := range strings.Split(s, ";") {
		parts := strings.Split(triple, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: minion %q: want symbol,health,shield", ErrMalformedSnapshot, triple)
		}
		health, err1 := strconv.Atoi(parts[1])
		shield, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: minion stats %q", ErrMalformedSnapshot, triple)
		}

		var minion *Minion
		switch parts[0] {
		case MinionSymbol:
			minion = NewMinion(health, shield)
		case WyrmSymbol:
			minion = NewWyrm(health, shield)
		case RaptorSymbol:
			minion = NewRaptor(health, shield)
		default:
			return nil, fmt.Errorf("%w: unknown minion symbol %q", ErrMalformedSnapshot, parts[0])
		}
		minions = append(minions, minion)
	}
	return minions, nil
}
