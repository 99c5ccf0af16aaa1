package game

// Minion is a permanent card that is also a combatant: it carries both the
// card facet (cost, effect, symbol) and the entity facet (health, shield).
// Playing a minion card places a Minion in a roster slot instead of
// resolving an effect.
type Minion struct {
	Card
	Entity
}

// NewMinion creates a generic minion with the given stats. Generic minions
// have no effect and always target themselves.
func NewMinion(health, shield int) *Minion {
	return &Minion{Card: minionCard(KindMinion), Entity: NewEntity(health, shield)}
}

// NewWyrm creates a Wyrm minion: its effect applies 1 health and 1 shield to
// the friendly entity with the lowest health.
func NewWyrm(health, shield int) *Minion {
	return &Minion{Card: minionCard(KindWyrm), Entity: NewEntity(health, shield)}
}

// NewRaptor creates a Raptor minion: its effect deals damage equal to its
// current health to the strongest enemy minion, or the enemy hero.
func NewRaptor(health, shield int) *Minion {
	return &Minion{Card: minionCard(KindRaptor), Entity: NewEntity(health, shield)}
}

// MinionFromCard promotes a hand card into a roster minion. Minions entering
// play from a hand or deck always start at 1 health and 0 shield.
func MinionFromCard(c *Card) *Minion {
	switch c.Kind {
	case KindWyrm:
		return NewWyrm(1, 0)
	case KindRaptor:
		return NewRaptor(1, 0)
	default:
		return NewMinion(1, 0)
	}
}

// Effect returns the minion's effect mapping. Raptor damage is recomputed
// from live health on every read.
func (m *Minion) Effect() map[EffectKind]int {
	if m.Kind == KindRaptor {
		return map[EffectKind]int{EffectDamage: m.Health()}
	}
	return m.Card.Effect()
}

// ChooseTarget selects this minion's target. Ally and enemy are from the
// acting minion's perspective: the ally hero and minions are the ones
// friendly to this minion, whichever side it fights for. Minion slices are
// in slot order, leftmost first.
func (m *Minion) ChooseTarget(allyHero, enemyHero *Hero, allyMinions, enemyMinions []*Minion) Combatant {
	switch m.Kind {
	case KindWyrm:
		return chooseLowestHealthAlly(allyHero, allyMinions)
	case KindRaptor:
		return chooseHighestHealthEnemy(enemyHero, enemyMinions)
	default:
		return m
	}
}

// chooseLowestHealthAlly picks the allied entity with strictly lowest health.
// The hero seeds the scan, so it wins every tie; among tied minions the
// leftmost wins because only a strict improvement replaces the pick.
func chooseLowestHealthAlly(allyHero *Hero, allyMinions []*Minion) Combatant {
	var lowest Combatant = allyHero
	for _, minion := range allyMinions {
		if minion.Health() < lowest.Health() {
			lowest = minion
		}
	}
	return lowest
}

// chooseHighestHealthEnemy picks the enemy minion with strictly highest
// health, leftmost winning ties. With no enemy minions the enemy hero is
// attacked directly.
func chooseHighestHealthEnemy(enemyHero *Hero, enemyMinions []*Minion) Combatant {
	if len(enemyMinions) == 0 {
		return enemyHero
	}
	highest := enemyMinions[0]
	for _, minion := range enemyMinions[1:] {
		if minion.Health() > highest.Health() {
			highest = minion
		}
	}
	return highest
}
