// Package web serves the browser UI and a per-connection game session.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	stdlog "log"
	"net/http"
	"sort"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/log"
	"github.com/peterkuimelis/hearthx/internal/save"
	"github.com/peterkuimelis/hearthx/internal/view"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Permanent   bool   `json:"permanent"`
}

// ScenarioInfo is the JSON representation of a starting position for the
// /api/scenarios endpoint.
type ScenarioInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Server is the hearthx web UI server.
type Server struct {
	scenariosFile string
	mux           *http.ServeMux
}

// NewServer creates a new web server backed by the given scenario file.
func NewServer(scenariosFile string) *Server {
	s := &Server{
		scenariosFile: scenariosFile,
		mux:           http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/scenarios", s.handleScenarios)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for name, ctor := range game.CardRegistry {
		c := ctor()
		cards = append(cards, CardInfo{
			Name:        name,
			Symbol:      c.Symbol(),
			Description: c.Description,
			Cost:        c.Cost,
			Permanent:   c.Permanent,
		})
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	entries, err := game.ParseScenarioFile(s.scenariosFile)
	if err != nil {
		http.Error(w, "could not read scenarios file", http.StatusInternalServerError)
		return
	}

	var scenarios []ScenarioInfo
	for i, entry := range entries {
		scenarios = append(scenarios, ScenarioInfo{Number: i + 1, Name: entry.Name})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scenarios)
}

// ClientMessage is the envelope for all browser-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "start"
	Scenario string `json:"scenario,omitempty"`

	// For "restore"
	Snapshot string `json:"snapshot,omitempty"`

	// For "play" and "discard" (one-indexed hand position)
	Index int `json:"index,omitempty"`

	// For "play": "M", "O", "1".."5" (enemy minions), "6".."10" (yours)
	Target string `json:"target,omitempty"`
}

// ServerMessage is the envelope for all server-to-browser messages.
type ServerMessage struct {
	Type     string           `json:"type"`
	Session  string           `json:"session,omitempty"`
	State    *view.StateView  `json:"state,omitempty"`
	Events   []view.EventView `json:"events,omitempty"`
	Messages []string         `json:"messages,omitempty"`
	Snapshot string           `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// session is one browser's game, owned by a single websocket connection.
type session struct {
	id      string
	match   *game.Match
	logger  *log.MemoryLogger
	store   *save.MemStore
	lastSeq int
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		stdlog.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	sess := &session{
		id:    uuid.NewString(),
		store: save.NewMemStore(),
	}

	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(ctx, wsConn, ServerMessage{Type: "error", Error: "bad message"})
			continue
		}

		reply := s.handleMessage(sess, msg)
		reply.Session = sess.id
		if err := s.send(ctx, wsConn, reply); err != nil {
			return
		}

		if sess.match != nil && (sess.match.HasWon() || sess.match.HasLost()) {
			result := "You have been defeated. Better luck next time!"
			if sess.match.HasWon() {
				result = "You have defeated your opponent, Congratulations!"
			}
			s.send(ctx, wsConn, ServerMessage{
				Type:     "game_over",
				Session:  sess.id,
				Messages: []string{result},
			})
			wsConn.Close(websocket.StatusNormalClosure, "game ended")
			return
		}
	}
}

func (s *Server) send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

func (s *Server) handleMessage(sess *session, msg ClientMessage) ServerMessage {
	switch msg.Type {
	case "start":
		match, err := game.ScenarioByName(s.scenariosFile, msg.Scenario)
		if err != nil {
			return ServerMessage{Type: "error", Error: err.Error()}
		}
		sess.attach(match)
		return sess.stateMessage(nil)

	case "restore":
		match, err := game.DecodeSnapshot(msg.Snapshot)
		if err != nil {
			return ServerMessage{Type: "error", Error: err.Error()}
		}
		sess.attach(match)
		return sess.stateMessage(nil)
	}

	if sess.match == nil {
		return ServerMessage{Type: "error", Error: "no game in progress"}
	}

	switch msg.Type {
	case "play":
		return sess.play(msg.Index, msg.Target)

	case "discard":
		hand := sess.match.Player().Hand()
		if msg.Index < 1 || msg.Index > len(hand) {
			return ServerMessage{Type: "error", Error: "no card at that position"}
		}
		card := hand[msg.Index-1]
		sess.match.DiscardCard(card)
		return sess.stateMessage([]string{"Discarded " + card.Name})

	case "end_turn":
		var messages []string
		for _, name := range sess.match.EndTurn() {
			messages = append(messages, "Opponent played "+name)
		}
		return sess.stateMessage(messages)

	case "save":
		snapshot := game.EncodeSnapshot(sess.match)
		sess.store.Save(snapshot)
		reply := sess.stateMessage([]string{"Game Saved."})
		reply.Snapshot = snapshot
		return reply

	default:
		return ServerMessage{Type: "error", Error: fmt.Sprintf("unknown message type %q", msg.Type)}
	}
}

func (sess *session) attach(match *game.Match) {
	sess.match = match
	sess.logger = log.NewMemoryLogger()
	sess.lastSeq = 0
	match.SetLogger(sess.logger)
}

func (sess *session) play(index int, target string) ServerMessage {
	hand := sess.match.Player().Hand()
	if index < 1 || index > len(hand) {
		return ServerMessage{Type: "error", Error: "no card at that position"}
	}
	card := hand[index-1]

	var combatant game.Combatant
	if !card.Permanent {
		var ok bool
		combatant, ok = sess.resolveTarget(target)
		if !ok {
			return ServerMessage{Type: "error", Error: "invalid target"}
		}
	}

	if !sess.match.PlayCard(card, combatant) {
		return sess.stateMessage([]string{"Insufficient Energy!"})
	}
	return sess.stateMessage([]string{"Played " + card.Name})
}

func (sess *session) resolveTarget(target string) (game.Combatant, bool) {
	switch target {
	case "M":
		return sess.match.Player(), true
	case "O":
		return sess.match.Enemy(), true
	}

	var n int
	if _, err := fmt.Sscanf(target, "%d", &n); err != nil {
		return nil, false
	}
	if n >= 1 && n <= 5 && n <= len(sess.match.EnemyMinions()) {
		return sess.match.EnemyMinions()[n-1], true
	}
	if n >= 6 && n <= 10 && n-5 <= len(sess.match.PlayerMinions()) {
		return sess.match.PlayerMinions()[n-6], true
	}
	return nil, false
}

// stateMessage builds a state reply carrying only events logged since the
// previous reply.
func (sess *session) stateMessage(messages []string) ServerMessage {
	sv := view.BuildStateView(sess.match)

	var fresh []log.GameEvent
	for _, e := range sess.logger.Events() {
		if e.Seq > sess.lastSeq {
			fresh = append(fresh, e)
			sess.lastSeq = e.Seq
		}
	}

	return ServerMessage{
		Type:     "state",
		State:    &sv,
		Events:   view.BuildEventViews(fresh),
		Messages: messages,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
