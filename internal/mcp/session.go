// Package mcp exposes the game over the Model Context Protocol, one session
// per stdio process.
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/log"
	"github.com/peterkuimelis/hearthx/internal/save"
	"github.com/peterkuimelis/hearthx/internal/view"
)

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	match   *game.Match
	logger  *log.MemoryLogger
	store   save.Store
	lastSeq int
}

// NewGameSession starts a session from the named scenario in the scenario
// file.
func NewGameSession(scenariosFile, scenario string, store save.Store) (*GameSession, error) {
	match, err := game.ScenarioByName(scenariosFile, scenario)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return newSession(match, store), nil
}

// RestoreGameSession starts a session from a saved snapshot.
func RestoreGameSession(store save.Store) (*GameSession, error) {
	snapshot, err := store.Load()
	if err != nil {
		return nil, err
	}
	match, err := game.DecodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return newSession(match, store), nil
}

func newSession(match *game.Match, store save.Store) *GameSession {
	logger := log.NewMemoryLogger()
	match.SetLogger(logger)
	return &GameSession{match: match, logger: logger, store: store}
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	State    view.StateView   `json:"state"`
	Events   []view.EventView `json:"events"`
	Messages []string         `json:"messages,omitempty"`
	GameOver bool             `json:"game_over"`
	Result   string           `json:"result,omitempty"`
}

// buildResponse projects the current state and drains events logged since
// the last response.
func (s *GameSession) buildResponse(messages []string) *ToolResponse {
	var fresh []log.GameEvent
	for _, e := range s.logger.Events() {
		if e.Seq > s.lastSeq {
			fresh = append(fresh, e)
			s.lastSeq = e.Seq
		}
	}

	resp := &ToolResponse{
		State:    view.BuildStateView(s.match),
		Events:   view.BuildEventViews(fresh),
		Messages: messages,
	}
	if resp.Events == nil {
		resp.Events = []view.EventView{}
	}

	if s.match.HasWon() {
		resp.GameOver = true
		resp.Result = "You have defeated your opponent, Congratulations!"
	} else if s.match.HasLost() {
		resp.GameOver = true
		resp.Result = "You have been defeated. Better luck next time!"
	}
	return resp
}

// resolveTarget maps a target identifier to a combatant. Valid identifiers
// are "M" (your hero), "O" (the enemy hero), "1" to "5" (enemy minion
// slots), and "6" to "10" (your minion slots).
func (s *GameSession) resolveTarget(target string) (game.Combatant, error) {
	switch target {
	case "M":
		return s.match.Player(), nil
	case "O":
		return s.match.Enemy(), nil
	}

	var n int
	if _, err := fmt.Sscanf(target, "%d", &n); err != nil {
		return nil, fmt.Errorf("invalid target %q", target)
	}
	if n >= 1 && n <= 5 && n <= len(s.match.EnemyMinions()) {
		return s.match.EnemyMinions()[n-1], nil
	}
	if n >= 6 && n <= 10 && n-5 <= len(s.match.PlayerMinions()) {
		return s.match.PlayerMinions()[n-6], nil
	}
	return nil, fmt.Errorf("no minion at target %q", target)
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
