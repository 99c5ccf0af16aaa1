package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/save"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// scenariosFile is the path to the scenario YAML file, set by main.
var scenariosFile string

// savePath is where save_game writes snapshots, set by main.
var savePath string

// SetScenariosFile sets the path to the scenario YAML file.
func SetScenariosFile(path string) {
	scenariosFile = path
}

// SetSavePath sets the snapshot save location.
func SetSavePath(path string) {
	savePath = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(discardCardTool(), handleDiscardCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(saveGameTool(), handleSaveGame)
	s.AddTool(loadGameTool(), handleLoadGame)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new game from a named scenario. Returns the initial board state. "+
			"You are the player; the opponent is played by the engine when you end your turn."),
		mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario name from the scenario file (e.g. 'standard')")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current board state and any events since the last call. Read-only."),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play the card at the given hand position. Spell cards need a target; "+
			"minion cards ignore it and are summoned to your rightmost slot."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position of the card in your hand")),
		mcp.WithString("target", mcp.Description("Target: 'M' (your hero), 'O' (enemy hero), '1'-'5' (enemy minion slot), '6'-'10' (your minion slot)")),
	)
}

func discardCardTool() mcp.Tool {
	return mcp.NewTool("discard_card",
		mcp.WithDescription("Discard the card at the given hand position to the bottom of your deck. Costs no energy."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based position of the card in your hand")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your turn. Your minions attack, the opponent takes a full turn, "+
			"then you draw back up. Returns the cards the opponent played."),
	)
}

func saveGameTool() mcp.Tool {
	return mcp.NewTool("save_game",
		mcp.WithDescription("Save the current game state to the save file."),
	)
}

func loadGameTool() mcp.Tool {
	return mcp.NewTool("load_game",
		mcp.WithDescription("Load the game state from the save file, replacing any game in progress."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenario := request.GetString("scenario", "")
	if scenario == "" {
		return mcp.NewToolResultError("scenario is required"), nil
	}

	sess, err := NewGameSession(scenariosFile, scenario, save.NewFileStore(savePath))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(respondJSON(sess.buildResponse(nil))), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.buildResponse(nil))), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess := activeSession

	index := request.GetInt("index", 0)
	hand := sess.match.Player().Hand()
	if index < 1 || index > len(hand) {
		return mcp.NewToolResultErrorf("Invalid index %d. Hand has %d card(s).", index, len(hand)), nil
	}
	card := hand[index-1]

	var target game.Combatant
	if !card.Permanent {
		var err error
		target, err = sess.resolveTarget(request.GetString("target", ""))
		if err != nil {
			return mcp.NewToolResultErrorf("%v", err), nil
		}
	}

	var messages []string
	if sess.match.PlayCard(card, target) {
		messages = []string{"Played " + card.Name}
	} else {
		messages = []string{"Insufficient Energy!"}
	}
	return mcp.NewToolResultText(respondJSON(sess.buildResponse(messages))), nil
}

func handleDiscardCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess := activeSession

	index := request.GetInt("index", 0)
	hand := sess.match.Player().Hand()
	if index < 1 || index > len(hand) {
		return mcp.NewToolResultErrorf("Invalid index %d. Hand has %d card(s).", index, len(hand)), nil
	}
	card := hand[index-1]
	sess.match.DiscardCard(card)

	return mcp.NewToolResultText(respondJSON(sess.buildResponse([]string{"Discarded " + card.Name}))), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess := activeSession

	var messages []string
	for _, name := range sess.match.EndTurn() {
		messages = append(messages, "Opponent played "+name)
	}

	resp := sess.buildResponse(messages)
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSaveGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess := activeSession

	if err := sess.store.Save(game.EncodeSnapshot(sess.match)); err != nil {
		return mcp.NewToolResultErrorf("Failed to save: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.buildResponse([]string{"Game Saved."}))), nil
}

func handleLoadGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := RestoreGameSession(save.NewFileStore(savePath))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(respondJSON(sess.buildResponse(nil))), nil
}
