// Package view holds the JSON projections of match state shared by the web
// and MCP fronts.
package view

import (
	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/log"
)

// StateView is the match state from the player's perspective. The enemy
// hand is shown as a count only.
type StateView struct {
	Player      HeroView     `json:"player"`
	PlayerBoard []MinionView `json:"player_board"`
	Enemy       HeroView     `json:"enemy"`
	EnemyBoard  []MinionView `json:"enemy_board"`
	Turn        int          `json:"turn"`
	Won         bool         `json:"won"`
	Lost        bool         `json:"lost"`
}

// HeroView shows one hero's stats, deck size, and hand.
type HeroView struct {
	Health    int        `json:"health"`
	Shield    int        `json:"shield"`
	Energy    int        `json:"energy"`
	MaxEnergy int        `json:"max_energy"`
	DeckCount int        `json:"deck_count"`
	HandCount int        `json:"hand_count"`
	Hand      []CardView `json:"hand,omitempty"`
}

// CardView describes a hand card.
type CardView struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// MinionView describes a summoned minion in slot order.
type MinionView struct {
	Slot   int    `json:"slot"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Health int    `json:"health"`
	Shield int    `json:"shield"`
}

// EventView is a game event formatted for clients.
type EventView struct {
	Turn    int    `json:"turn"`
	Side    string `json:"side"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// BuildStateView projects the match into the player-facing view.
func BuildStateView(m *game.Match) StateView {
	return StateView{
		Player:      buildHeroView(m.Player(), true),
		PlayerBoard: buildMinionViews(m.PlayerMinions()),
		Enemy:       buildHeroView(m.Enemy(), false),
		EnemyBoard:  buildMinionViews(m.EnemyMinions()),
		Turn:        m.Turn(),
		Won:         m.HasWon(),
		Lost:        m.HasLost(),
	}
}

func buildHeroView(h *game.Hero, showHand bool) HeroView {
	hv := HeroView{
		Health:    h.Health(),
		Shield:    h.Shield(),
		Energy:    h.Energy(),
		MaxEnergy: h.MaxEnergy(),
		DeckCount: h.Deck().RemainingCount(),
		HandCount: len(h.Hand()),
	}
	if showHand {
		for i, c := range h.Hand() {
			hv.Hand = append(hv.Hand, CardView{
				Index:       i + 1,
				Name:        c.Name,
				Symbol:      c.Symbol(),
				Description: c.Description,
				Cost:        c.Cost,
			})
		}
	}
	return hv
}

func buildMinionViews(minions []*game.Minion) []MinionView {
	views := make([]MinionView, len(minions))
	for i, m := range minions {
		views[i] = MinionView{
			Slot:   i + 1,
			Name:   m.Name,
			Symbol: m.Symbol(),
			Health: m.Health(),
			Shield: m.Shield(),
		}
	}
	return views
}

// BuildEventViews converts logged events for clients, newest last.
func BuildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, len(events))
	for i, e := range events {
		views[i] = EventView{
			Turn:    e.Turn,
			Side:    e.Side,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		}
	}
	return views
}
