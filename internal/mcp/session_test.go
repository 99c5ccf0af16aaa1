package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/save"
)

const testScenarios = `scenarios:
  - name: standard
    player:
      health: 20
      shield: 0
      max_energy: 3
      deck: [C, C, C, C, C, C]
      hand: [S, H]
    player_minions:
      - { symbol: W, health: 2, shield: 0 }
    enemy:
      health: 20
      shield: 0
      max_energy: 3
      deck: [C, C, C, C, C, C]
      hand: [C]
    enemy_minions:
      - { symbol: R, health: 3, shield: 0 }
`

func fixtureSession(t *testing.T) *GameSession {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(testScenarios), 0o644); err != nil {
		t.Fatal(err)
	}
	sess, err := NewGameSession(path, "standard", save.NewMemStore())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return sess
}

func TestSessionBuildResponse(t *testing.T) {
	sess := fixtureSession(t)

	resp := sess.buildResponse(nil)
	if resp.State.Player.Health != 20 {
		t.Errorf("player health = %d, want 20", resp.State.Player.Health)
	}
	if resp.Events == nil {
		t.Error("events must never be nil in the JSON envelope")
	}
	if resp.GameOver {
		t.Error("fresh game should not be over")
	}
}

func TestSessionDrainsEventsOnce(t *testing.T) {
	sess := fixtureSession(t)

	shield := sess.match.Player().Hand()[0]
	sess.match.PlayCard(shield, sess.match.Player())

	first := sess.buildResponse(nil)
	if len(first.Events) == 0 {
		t.Fatal("the play should produce events")
	}
	second := sess.buildResponse(nil)
	if len(second.Events) != 0 {
		t.Error("already-delivered events must not repeat")
	}
}

func TestSessionResolveTarget(t *testing.T) {
	sess := fixtureSession(t)

	if c, err := sess.resolveTarget("M"); err != nil || c != game.Combatant(sess.match.Player()) {
		t.Error("M should resolve to the player hero")
	}
	if c, err := sess.resolveTarget("O"); err != nil || c != game.Combatant(sess.match.Enemy()) {
		t.Error("O should resolve to the enemy hero")
	}
	if c, err := sess.resolveTarget("1"); err != nil || c != game.Combatant(sess.match.EnemyMinions()[0]) {
		t.Error("1 should resolve to the first enemy minion")
	}
	if c, err := sess.resolveTarget("6"); err != nil || c != game.Combatant(sess.match.PlayerMinions()[0]) {
		t.Error("6 should resolve to the first player minion")
	}
	if _, err := sess.resolveTarget("5"); err == nil {
		t.Error("an empty enemy slot is not a valid target")
	}
	if _, err := sess.resolveTarget("x"); err == nil {
		t.Error("garbage is not a valid target")
	}
}

func TestSessionRestore(t *testing.T) {
	store := save.NewMemStore()
	store.Save("5,1,2;C,C;H|" + "|" + "9,0,3;C;|")

	sess, err := RestoreGameSession(store)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if sess.match.Player().Health() != 5 {
		t.Errorf("player health = %d, want 5", sess.match.Player().Health())
	}
	if sess.match.Player().Energy() != 2 {
		t.Error("restored hero should be at full energy")
	}
}
