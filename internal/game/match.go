package game

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/hearthx/internal/log"
)

// MaxMinionSlots is the number of minion slots per side. Slots fill leftmost
// first; summoning onto a full board evicts the leftmost minion.
const MaxMinionSlots = 5

// Side labels used in event logging.
const (
	PlayerSide = "player"
	EnemySide  = "enemy"
)

// MatchConfig holds everything needed to start a match.
type MatchConfig struct {
	Player        *Hero
	PlayerMinions []*Minion
	Enemy         *Hero
	EnemyMinions  []*Minion
	Logger        log.EventLogger
}

// Match is the turn and combat coordinator. It exclusively owns both heroes
// and both minion rosters; all cross-entity mutation goes through its
// operations. Every operation runs to completion before returning, and none
// of them fail for game-legal states: an unaffordable card play is a false
// return, not an error.
//
// The enemy hero plays itself. On each turn end it attempts every card in
// its hand in order, restarting from the front of the hand after each
// successful play; damaging cards target the player's hero, everything else
// targets the enemy hero itself.
type Match struct {
	player        *Hero
	enemy         *Hero
	playerMinions []*Minion
	enemyMinions  []*Minion

	turn         int
	logger       log.EventLogger
	resultLogged bool
}

// NewMatch creates a match from the given config. A nil logger falls back to
// an in-memory logger.
func NewMatch(cfg MatchConfig) *Match {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Match{
		player:        cfg.Player,
		playerMinions: cfg.PlayerMinions,
		enemy:         cfg.Enemy,
		enemyMinions:  cfg.EnemyMinions,
		logger:        logger,
	}
}

// SetLogger replaces the match's event logger. Controllers that decode a
// snapshot attach their own logger afterwards.
func (m *Match) SetLogger(logger log.EventLogger) {
	if logger != nil {
		m.logger = logger
	}
}

// Logger returns the match's event logger.
func (m *Match) Logger() log.EventLogger {
	return m.logger
}

// Player returns the player's hero.
func (m *Match) Player() *Hero {
	return m.player
}

// Enemy returns the enemy hero.
func (m *Match) Enemy() *Hero {
	return m.enemy
}

// PlayerMinions returns the player's active minions in slot order, leftmost
// first. Callers must not mutate the slice.
func (m *Match) PlayerMinions() []*Minion {
	return m.playerMinions
}

// EnemyMinions returns the enemy's active minions in slot order, leftmost
// first. Callers must not mutate the slice.
func (m *Match) EnemyMinions() []*Minion {
	return m.enemyMinions
}

// Turn returns how many turns have been ended so far.
func (m *Match) Turn() int {
	return m.turn
}

// HasWon reports whether the player has won: their hero stands and the enemy
// hero is defeated.
func (m *Match) HasWon() bool {
	return m.player.IsAlive() && !m.enemy.IsAlive()
}

// HasLost reports whether the player has lost: their hero is defeated.
func (m *Match) HasLost() bool {
	return !m.player.IsAlive()
}

// PlayCard attempts to play the given card from the player's hand against
// the given target. It fails, mutating nothing, if the player cannot afford
// the card's cost. The target is ignored for permanent cards, which are
// summoned to the player's board instead of resolving an effect.
func (m *Match) PlayCard(card *Card, target Combatant) bool {
	if !m.player.SpendEnergy(card.Cost) {
		return false
	}

	m.player.removeFromHand(card)
	m.logger.Log(log.NewPlayCardEvent(m.turn, PlayerSide, card.Name))

	if card.Permanent {
		m.playerMinions = m.summon(m.playerMinions, PlayerSide, MinionFromCard(card))
	} else {
		m.useEffect(PlayerSide, card.Name, card.Effect(), target)
	}

	m.checkResult()
	return true
}

// DiscardCard moves the given card from the player's hand to the bottom of
// the player's deck. Discarding is free and has no effect resolution.
func (m *Match) DiscardCard(card *Card) {
	m.player.Deck().AddCard(card)
	m.player.removeFromHand(card)
	m.logger.Log(log.NewDiscardEvent(m.turn, PlayerSide, card.Name))
}

// EndTurn ends the player's turn and runs the full enemy turn. It returns
// the names of the cards the enemy played, in play order. If the enemy hero
// is already defeated after its own refresh, the enemy takes no action and
// the play list is empty.
func (m *Match) EndTurn() []string {
	m.turn++

	// Player minions act first, in slot order. The sweep iterates the
	// roster as it stood when the sweep began; targeting always sees the
	// live rosters.
	for _, minion := range m.playerMinions {
		target := minion.ChooseTarget(m.player, m.enemy, m.playerMinions, m.enemyMinions)
		m.useEffect(PlayerSide, minion.Name, minion.Effect(), target)
	}

	drawn := m.enemy.NewTurn()
	m.logger.Log(log.NewTurnEvent(m.turn, EnemySide, len(drawn), m.enemy.Energy()))

	if !m.enemy.IsAlive() {
		m.checkResult()
		return []string{}
	}

	played := m.enemyPlayCards()

	// Enemy minions act, in slot order, from the enemy's perspective.
	for _, minion := range m.enemyMinions {
		target := minion.ChooseTarget(m.enemy, m.player, m.enemyMinions, m.playerMinions)
		m.useEffect(EnemySide, minion.Name, minion.Effect(), target)
	}

	drawn = m.player.NewTurn()
	m.logger.Log(log.NewTurnEvent(m.turn, PlayerSide, len(drawn), m.player.Energy()))
	for _, card := range drawn {
		m.logger.Log(log.NewDrawEvent(m.turn, PlayerSide, card.Name))
	}

	m.checkResult()
	return played
}

// enemyPlayCards runs the enemy's card-playing loop: scan the hand from the
// front, play the first affordable card, then restart the scan. The loop
// stops once a scan gets through the whole hand without playing anything.
func (m *Match) enemyPlayCards() []string {
	played := []string{}

	for playing := true; playing; {
		skipped := 0

		for _, card := range m.enemy.Hand() {
			if !m.enemy.SpendEnergy(card.Cost) {
				skipped++
				continue
			}

			if card.Permanent {
				m.enemyMinions = m.summon(m.enemyMinions, EnemySide, MinionFromCard(card))
			} else if _, ok := card.Effect()[EffectDamage]; ok {
				// Damaging cards always target the player's hero.
				m.useEffect(EnemySide, card.Name, card.Effect(), m.player)
			} else {
				// Everything else the enemy casts on itself.
				m.useEffect(EnemySide, card.Name, card.Effect(), m.enemy)
			}

			played = append(played, card.Name)
			m.enemy.removeFromHand(card)
			m.logger.Log(log.NewEnemyPlayEvent(m.turn, card.Name))
			break
		}

		if skipped >= len(m.enemy.Hand()) {
			playing = false
		}
	}

	return played
}

// summon places a minion in the rightmost free slot of the given roster,
// evicting the leftmost minion first when the board is full. The evicted
// minion is destroyed, not requeued.
func (m *Match) summon(roster []*Minion, side string, minion *Minion) []*Minion {
	if len(roster) == MaxMinionSlots {
		evicted := roster[0]
		roster = roster[1:]
		m.logger.Log(log.NewEvictEvent(m.turn, side, evicted.Name))
	}
	roster = append(roster, minion)
	m.logger.Log(log.NewSummonEvent(m.turn, side, minion.Name, len(roster)-1))
	return roster
}

// useEffect applies an effect to a single target. Dead minions are pruned
// both before the effect lands, so a minion at zero health cannot soak a
// heal, and after, so a minion killed by this very effect is gone before any
// later targeting decision can select it. Components apply in a fixed
// order: damage, then health, then shield.
func (m *Match) useEffect(side string, sourceName string, effect map[EffectKind]int, target Combatant) {
	m.pruneDefeated()

	if damage, ok := effect[EffectDamage]; ok {
		target.ApplyDamage(damage)
	}
	if health, ok := effect[EffectHealth]; ok {
		target.ApplyHealth(health)
	}
	if shield, ok := effect[EffectShield]; ok {
		target.ApplyShield(shield)
	}

	m.logger.Log(log.NewEffectEvent(m.turn, side, sourceName,
		fmt.Sprintf("%s %s to %s", sourceName, describeEffect(effect), m.describeTarget(target))))

	m.pruneDefeated()
}

// pruneDefeated removes dead minions from both rosters.
func (m *Match) pruneDefeated() {
	m.playerMinions = m.pruneRoster(m.playerMinions, PlayerSide)
	m.enemyMinions = m.pruneRoster(m.enemyMinions, EnemySide)
}

func (m *Match) pruneRoster(roster []*Minion, side string) []*Minion {
	alive := roster[:0:0]
	for _, minion := range roster {
		if minion.IsAlive() {
			alive = append(alive, minion)
		} else {
			m.logger.Log(log.NewMinionDestroyedEvent(m.turn, side, minion.Name))
		}
	}
	return alive
}

// checkResult logs a win or loss event the first time a terminal state is
// observed. Win and loss are evaluated independently.
func (m *Match) checkResult() {
	if m.resultLogged {
		return
	}
	if m.HasLost() {
		m.logger.Log(log.NewLossEvent(m.turn))
		m.resultLogged = true
		return
	}
	if m.HasWon() {
		m.logger.Log(log.NewWinEvent(m.turn))
		m.resultLogged = true
	}
}

// describeEffect renders an effect mapping for the event log, in apply order.
func describeEffect(effect map[EffectKind]int) string {
	var parts []string
	if damage, ok := effect[EffectDamage]; ok {
		parts = append(parts, fmt.Sprintf("deals %d damage", damage))
	}
	if health, ok := effect[EffectHealth]; ok {
		parts = append(parts, fmt.Sprintf("restores %d health", health))
	}
	if shield, ok := effect[EffectShield]; ok {
		parts = append(parts, fmt.Sprintf("grants %d shield", shield))
	}
	if len(parts) == 0 {
		return "does nothing"
	}
	return strings.Join(parts, " and ")
}

// describeTarget names a target for the event log.
func (m *Match) describeTarget(target Combatant) string {
	switch target {
	case Combatant(m.player):
		return "the player hero"
	case Combatant(m.enemy):
		return "the enemy hero"
	}
	if minion, ok := target.(*Minion); ok {
		for i, p := range m.playerMinions {
			if p == minion {
				return fmt.Sprintf("player minion %d (%s)", i+1, minion.Name)
			}
		}
		for i, e := range m.enemyMinions {
			if e == minion {
				return fmt.Sprintf("enemy minion %d (%s)", i+1, minion.Name)
			}
		}
		return fmt.Sprintf("a %s", minion.Name)
	}
	return "its target"
}
