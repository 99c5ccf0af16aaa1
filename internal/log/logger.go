package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	side := e.Side
	for len(side) < 6 {
		side += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, side, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, side string, drawn int, energy int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== %s turn %d: drew %d, energy %d ===", side, turn, drawn, energy),
	}
}

func NewDrawEvent(turn int, side string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", side, cardName),
	}
}

func NewPlayCardEvent(turn int, side string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventPlayCard,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", side, cardName),
	}
}

func NewDiscardEvent(turn int, side string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s to the bottom of their deck", side, cardName),
	}
}

func NewSummonEvent(turn int, side string, cardName string, slot int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventSummon,
		Card:    cardName,
		Details: fmt.Sprintf("%s summons %s to slot %d", side, cardName, slot+1),
	}
}

func NewEvictEvent(turn int, side string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventEvict,
		Card:    cardName,
		Details: fmt.Sprintf("%s's leftmost minion %s is evicted from a full board", side, cardName),
	}
}

func NewEffectEvent(turn int, side string, cardName string, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventEffect,
		Card:    cardName,
		Details: details,
	}
}

func NewMinionDestroyedEvent(turn int, side string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventMinionDestroyed,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s is destroyed", side, cardName),
	}
}

func NewEnemyPlayEvent(turn int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    "enemy",
		Type:    EventEnemyPlay,
		Card:    cardName,
		Details: fmt.Sprintf("enemy plays %s", cardName),
	}
}

func NewSaveEvent(turn int, location string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    "player",
		Type:    EventSave,
		Details: fmt.Sprintf("game saved to %s", location),
	}
}

func NewLoadEvent(location string) GameEvent {
	return GameEvent{
		Side:    "player",
		Type:    EventLoad,
		Details: fmt.Sprintf("game loaded from %s", location),
	}
}

func NewWinEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    "player",
		Type:    EventWin,
		Details: "player wins: the enemy hero is defeated",
	}
}

func NewLossEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Side:    "player",
		Type:    EventLoss,
		Details: "player loses: their hero is defeated",
	}
}
