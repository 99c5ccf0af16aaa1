package game

// Entity is the basic combat capability: a health pool behind a shield pool.
// Heroes and minions both build on it. Health never goes below zero.
type Entity struct {
	health int
	shield int
}

// NewEntity creates an entity with the given starting stats.
func NewEntity(health, shield int) Entity {
	return Entity{health: health, shield: shield}
}

// Health returns the entity's current health.
func (e *Entity) Health() int {
	return e.health
}

// Shield returns the entity's current shield.
func (e *Entity) Shield() int {
	return e.shield
}

// ApplyShield adds the given amount of shield.
func (e *Entity) ApplyShield(shield int) {
	e.shield += shield
}

// ApplyHealth adds the given amount of health. There is no upper cap.
func (e *Entity) ApplyHealth(health int) {
	e.health += health
}

// ApplyDamage applies damage, shield first. Damage beyond what is needed to
// reduce health to zero is discarded; health never goes negative.
func (e *Entity) ApplyDamage(damage int) {
	if damage <= e.shield {
		e.shield -= damage
		return
	}
	overflow := damage - e.shield
	e.shield = 0
	e.health -= overflow
	if e.health < 0 {
		e.health = 0
	}
}

// IsAlive reports whether the entity's health is above zero.
func (e *Entity) IsAlive() bool {
	return e.health > 0
}

// Combatant is anything an effect can be applied to: a hero or a minion.
type Combatant interface {
	Health() int
	Shield() int
	ApplyDamage(int)
	ApplyHealth(int)
	ApplyShield(int)
	IsAlive() bool
}
