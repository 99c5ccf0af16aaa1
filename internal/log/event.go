package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventDraw
	EventPlayCard
	EventDiscard
	EventSummon
	EventEvict
	EventEffect
	EventMinionDestroyed
	EventEnemyPlay
	EventSave
	EventLoad
	EventWin
	EventLoss
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventPlayCard:
		return "PlayCard"
	case EventDiscard:
		return "Discard"
	case EventSummon:
		return "Summon"
	case EventEvict:
		return "Evict"
	case EventEffect:
		return "Effect"
	case EventMinionDestroyed:
		return "MinionDestroyed"
	case EventEnemyPlay:
		return "EnemyPlay"
	case EventSave:
		return "Save"
	case EventLoad:
		return "Load"
	case EventWin:
		return "Win"
	case EventLoss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Side    string    // acting side: "player" or "enemy"
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
