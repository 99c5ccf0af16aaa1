package game

import (
	"testing"

	"github.com/peterkuimelis/hearthx/internal/log"
)

// unaffordableHand fills a hand with cards the enemy cannot pay for at low
// energy, so a fixture enemy stands idle on its turn.
func unaffordableHand() []*Card {
	return []*Card{NewFireball(9), NewFireball(9), NewFireball(9), NewFireball(9), NewFireball(9)}
}

func TestPlayCardWithoutEnergyFails(t *testing.T) {
	player := testHero(10, 0, 1, 10, NewHeal())
	m := testMatch(player, testHero(10, 0, 3, 10))

	if m.PlayCard(player.Hand()[0], m.Player()) {
		t.Fatal("Heal costs 2, player has 1 energy")
	}
	if player.Energy() != 1 || len(player.Hand()) != 1 {
		t.Error("failed play must not mutate anything")
	}
}

func TestPlaySpellOnEnemyHero(t *testing.T) {
	fireball := NewFireball(1)
	player := testHero(10, 0, 3, 10, fireball)
	enemy := testHero(10, 2, 3, 10)
	m := testMatch(player, enemy)

	if !m.PlayCard(fireball, enemy) {
		t.Fatal("play should succeed")
	}
	// 4 damage: 2 soaked by shield, 2 to health
	if enemy.Health() != 8 || enemy.Shield() != 0 {
		t.Errorf("enemy at %d/%d, want 8/0", enemy.Health(), enemy.Shield())
	}
	if player.Energy() != 0 {
		t.Errorf("player energy = %d, want 0", player.Energy())
	}
	if len(player.Hand()) != 0 {
		t.Error("played card should leave the hand")
	}
}

func TestPlayMinionCardSummons(t *testing.T) {
	wyrm := NewWyrmCard()
	player := testHero(10, 0, 3, 10, wyrm)
	m := testMatch(player, testHero(10, 0, 3, 10))

	if !m.PlayCard(wyrm, nil) {
		t.Fatal("play should succeed")
	}
	board := m.PlayerMinions()
	if len(board) != 1 || board[0].Kind != KindWyrm {
		t.Fatalf("board = %v, want a single Wyrm", board)
	}
	if board[0].Health() != 1 || board[0].Shield() != 0 {
		t.Error("summoned minion should enter play at 1/0")
	}
}

func TestSummonOntoFullBoardEvictsLeftmost(t *testing.T) {
	card := NewMinionCard()
	player := testHero(10, 0, 3, 10, card)
	board := []*Minion{NewMinion(1, 0), NewMinion(2, 0), NewMinion(3, 0), NewMinion(4, 0), NewMinion(5, 0)}
	m := NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: append([]*Minion{}, board...),
		Enemy:         testHero(10, 0, 3, 10),
	})

	m.PlayCard(card, nil)

	got := m.PlayerMinions()
	if len(got) != MaxMinionSlots {
		t.Fatalf("board size = %d, want %d", len(got), MaxMinionSlots)
	}
	// Everyone shifts left, the new minion takes the rightmost slot.
	for i := 0; i < 4; i++ {
		if got[i] != board[i+1] {
			t.Errorf("slot %d holds the wrong minion", i+1)
		}
	}
	if got[4].Health() != 1 {
		t.Error("rightmost slot should hold the new minion")
	}
}

func TestDiscardGoesToDeckBottomForFree(t *testing.T) {
	heal := NewHeal()
	player := testHero(10, 0, 3, 2, heal)
	m := testMatch(player, testHero(10, 0, 3, 10))

	m.DiscardCard(heal)

	if player.Energy() != 3 {
		t.Error("discarding must cost nothing")
	}
	if len(player.Hand()) != 0 {
		t.Error("discarded card should leave the hand")
	}
	deck := player.Deck().Cards()
	if len(deck) != 3 || deck[2] != heal {
		t.Error("discarded card should sit at the bottom of the deck")
	}
}

func TestEnemyPlaysNothingItCannotAfford(t *testing.T) {
	player := testHero(10, 0, 3, 10)
	enemy := testHero(10, 0, 1, 10, unaffordableHand()...)
	m := testMatch(player, enemy)

	played := m.EndTurn()

	if played == nil {
		t.Fatal("play list must not be nil")
	}
	if len(played) != 0 {
		t.Errorf("enemy played %v with 2 energy against cost-3 cards", played)
	}
	if len(enemy.Hand()) != 5 {
		t.Error("enemy hand should be untouched")
	}
}

func TestEnemyRestartsScanAfterEachPlay(t *testing.T) {
	// After its refresh the enemy has 4 energy. It plays Heal (2 left),
	// rescans and plays Shield (1 left), then cannot afford any Fireball.
	hand := []*Card{NewHeal(), NewShield(), NewFireball(9), NewFireball(9), NewFireball(9)}
	player := testHero(10, 0, 3, 10)
	enemy := testHero(10, 0, 3, 10, hand...)
	m := testMatch(player, enemy)

	played := m.EndTurn()

	want := []string{"Heal", "Shield"}
	if len(played) != len(want) || played[0] != want[0] || played[1] != want[1] {
		t.Fatalf("played %v, want %v", played, want)
	}
	// Heal and Shield both land on the enemy itself.
	if enemy.Health() != 12 || enemy.Shield() != 5 {
		t.Errorf("enemy at %d/%d, want 12/5", enemy.Health(), enemy.Shield())
	}
	if player.Health() != 10 {
		t.Error("player should be untouched")
	}
}

func TestEnemyDamageTargetsThePlayer(t *testing.T) {
	hand := []*Card{NewFireball(0), NewFireball(9), NewFireball(9), NewFireball(9), NewFireball(9)}
	player := testHero(10, 0, 3, 10)
	enemy := testHero(10, 0, 2, 10, hand...)
	m := testMatch(player, enemy)

	played := m.EndTurn()

	if len(played) != 1 || played[0] != "Fireball" {
		t.Fatalf("played %v, want one Fireball", played)
	}
	// The Fireball ages once during the enemy refresh: 3 + 1 = 4 damage.
	if player.Health() != 6 {
		t.Errorf("player health = %d, want 6", player.Health())
	}
	if enemy.Health() != 10 {
		t.Error("enemy should not hit itself with damage")
	}
}

func TestEnemySummonsItsMinions(t *testing.T) {
	hand := []*Card{NewRaptorCard(), NewFireball(9), NewFireball(9), NewFireball(9), NewFireball(9)}
	player := testHero(10, 0, 3, 10)
	enemy := testHero(10, 0, 1, 10, hand...)
	m := testMatch(player, enemy)

	played := m.EndTurn()

	if len(played) != 1 || played[0] != "Raptor" {
		t.Fatalf("played %v, want one Raptor", played)
	}
	board := m.EnemyMinions()
	if len(board) != 1 || board[0].Kind != KindRaptor {
		t.Fatal("enemy board should hold the summoned Raptor")
	}
	// The fresh 1-health Raptor acts in the same turn and hits the player.
	if player.Health() != 9 {
		t.Errorf("player health = %d, want 9", player.Health())
	}
}

func TestEnemyDefeatedDuringRefreshSkipsEverything(t *testing.T) {
	player := testHero(10, 0, 3, 10)
	// Three cards in hand, two in deck: the refresh drains the deck.
	enemy := testHero(10, 0, 3, 2, NewFireball(0), NewFireball(0), NewFireball(0))
	m := testMatch(player, enemy)

	played := m.EndTurn()

	if played == nil || len(played) != 0 {
		t.Errorf("played %v, want an empty list", played)
	}
	if !m.HasWon() {
		t.Error("enemy with an exhausted deck is defeated")
	}
	// The player's own refresh is skipped entirely.
	if player.MaxEnergy() != 3 || player.Energy() != 3 {
		t.Errorf("player at %d/%d energy, want untouched 3/3", player.Energy(), player.MaxEnergy())
	}
	if len(m.Logger().(*log.MemoryLogger).EventsOfType(log.EventWin)) != 1 {
		t.Error("want exactly one win event")
	}
}

func TestWyrmSweepFavorsTheHeroOnTies(t *testing.T) {
	player := testHero(10, 0, 3, 10)
	wyrm := NewWyrm(10, 0)
	m := NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: []*Minion{wyrm},
		Enemy:         testHero(30, 0, 1, 10, unaffordableHand()...),
	})

	m.EndTurn()

	if player.Health() != 11 || player.Shield() != 1 {
		t.Errorf("player at %d/%d, want 11/1", player.Health(), player.Shield())
	}
	if wyrm.Health() != 10 || wyrm.Shield() != 0 {
		t.Error("the tied Wyrm must not buff itself")
	}
}

func TestRaptorSweepHitsStrongestEnemyMinion(t *testing.T) {
	player := testHero(10, 0, 3, 10)
	board := []*Minion{NewMinion(3, 0), NewMinion(7, 0), NewMinion(7, 0), NewMinion(2, 0)}
	m := NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: []*Minion{NewRaptor(5, 0)},
		Enemy:         testHero(10, 0, 1, 10, unaffordableHand()...),
		EnemyMinions:  board,
	})

	m.EndTurn()

	got := m.EnemyMinions()
	if len(got) != 4 {
		t.Fatalf("enemy board size = %d, want 4", len(got))
	}
	if got[1].Health() != 2 {
		t.Errorf("leftmost strongest minion at %d health, want 2", got[1].Health())
	}
	if got[2].Health() != 7 {
		t.Error("the second 7-health minion must be untouched")
	}
}

func TestDeadMinionCannotSoakAnEffect(t *testing.T) {
	heal := NewHeal()
	player := testHero(10, 0, 3, 10, heal)
	dead := NewMinion(0, 5)
	m := NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: []*Minion{dead},
		Enemy:         testHero(10, 0, 3, 10),
	})

	m.PlayCard(heal, dead)

	if len(m.PlayerMinions()) != 0 {
		t.Error("a zero-health minion is destroyed before the effect lands")
	}
}

func TestDestroyedMinionStillActsInTheSweepItStartedIn(t *testing.T) {
	// The sweep iterates the roster as it stood when the sweep began. The
	// Wyrm enters the sweep at zero health, is pruned when the first minion
	// acts, but still takes its own action afterwards.
	player := testHero(10, 0, 3, 10)
	wounded := NewMinion(2, 0)
	deadWyrm := NewWyrm(0, 0)
	m := NewMatch(MatchConfig{
		Player:        player,
		PlayerMinions: []*Minion{wounded, deadWyrm},
		Enemy:         testHero(10, 0, 1, 10, unaffordableHand()...),
	})

	m.EndTurn()

	if got := m.PlayerMinions(); len(got) != 1 || got[0] != wounded {
		t.Fatal("the dead Wyrm should be pruned from the roster")
	}
	if wounded.Health() != 3 || wounded.Shield() != 1 {
		t.Errorf("wounded minion at %d/%d, want 3/1 from the Wyrm's parting buff",
			wounded.Health(), wounded.Shield())
	}
}

func TestLethalSpellWinsImmediately(t *testing.T) {
	fireball := NewFireball(0)
	player := testHero(10, 0, 3, 10, fireball)
	enemy := testHero(3, 0, 3, 10)
	m := testMatch(player, enemy)

	m.PlayCard(fireball, enemy)

	if !m.HasWon() {
		t.Fatal("3 damage against 3 health is lethal")
	}
	logger := m.Logger().(*log.MemoryLogger)
	if len(logger.EventsOfType(log.EventWin)) != 1 {
		t.Error("want exactly one win event")
	}
}

func TestTurnCounterAdvances(t *testing.T) {
	player := testHero(10, 0, 3, 10)
	enemy := testHero(10, 0, 1, 10, unaffordableHand()...)
	m := testMatch(player, enemy)

	m.EndTurn()
	m.EndTurn()

	if m.Turn() != 2 {
		t.Errorf("turn = %d, want 2", m.Turn())
	}
}
