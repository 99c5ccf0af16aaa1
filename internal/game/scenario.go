package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioFile represents the top-level YAML structure.
type ScenarioFile struct {
	Scenarios []ScenarioEntry `yaml:"scenarios"`
}

// ScenarioEntry represents a single named starting position.
type ScenarioEntry struct {
	Name          string        `yaml:"name"`
	Player        HeroEntry     `yaml:"player"`
	PlayerMinions []MinionEntry `yaml:"player_minions"`
	Enemy         HeroEntry     `yaml:"enemy"`
	EnemyMinions  []MinionEntry `yaml:"enemy_minions"`
}

// HeroEntry holds a hero's stats and card symbols.
type HeroEntry struct {
	Health    int      `yaml:"health"`
	Shield    int      `yaml:"shield"`
	MaxEnergy int      `yaml:"max_energy"`
	Deck      []string `yaml:"deck"`
	Hand      []string `yaml:"hand"`
}

// MinionEntry holds a summoned minion's symbol and stats.
type MinionEntry struct {
	Symbol string `yaml:"symbol"`
	Health int    `yaml:"health"`
	Shield int    `yaml:"shield"`
}

// ParseScenarioFile parses a YAML scenario file and returns the entries in
// file order.
func ParseScenarioFile(path string) ([]ScenarioEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	return sf.Scenarios, nil
}

// ScenarioByName loads the named scenario from a YAML file and builds a
// fresh match from it.
func ScenarioByName(path, name string) (*Match, error) {
	entries, err := ParseScenarioFile(path)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Name == name {
			return entry.Build()
		}
	}
	return nil, fmt.Errorf("scenario %q not found in %s", name, path)
}

// Build constructs a match from the scenario entry.
func (e ScenarioEntry) Build() (*Match, error) {
	player, err := e.Player.build()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: player: %w", e.Name, err)
	}
	enemy, err := e.Enemy.build()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: enemy: %w", e.Name, err)
	}
	playerMinions, err := buildMinions(e.PlayerMinions)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: player minions: %w", e.Name, err)
	}
	enemyMinions, err := buildMinions(e.EnemyMinions)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: enemy minions: %w", e.Name, err)
	}

	return NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: playerMinions,
		Enemy:         enemy,
		EnemyMinions:  enemyMinions,
	}), nil
}

func (e HeroEntry) build() (*Hero, error) {
	deckCards, err := buildCards(e.Deck)
	if err != nil {
		return nil, err
	}
	hand, err := buildCards(e.Hand)
	if err != nil {
		return nil, err
	}
	return NewHero(e.Health, e.Shield, e.MaxEnergy, NewCardDeck(deckCards), hand), nil
}

func buildCards(symbols []string) ([]*Card, error) {
	var cards []*Card
	for _, symbol := range symbols {
		card := CardFromSymbol(symbol)
		if card == nil {
			return nil, fmt.Errorf("unknown card symbol %q", symbol)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func buildMinions(entries []MinionEntry) ([]*Minion, error) {
	var minions []*Minion
	for _, entry := range entries {
		switch entry.Symbol {
		case MinionSymbol:
			minions = append(minions, NewMinion(entry.Health, entry.Shield))
		case WyrmSymbol:
			minions = append(minions, NewWyrm(entry.Health, entry.Shield))
		case RaptorSymbol:
			minions = append(minions, NewRaptor(entry.Health, entry.Shield))
		default:
			return nil, fmt.Errorf("unknown minion symbol %q", entry.Symbol)
		}
	}
	return minions, nil
}
