// Package cli runs the interactive terminal game.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/log"
	"github.com/peterkuimelis/hearthx/internal/save"
)

const (
	playerSelect = "M"
	enemySelect  = "O"

	commandPrompt = "Please enter command (or Help to see valid commands): "
	entityPrompt  = "Please enter target Minion number, 'M' for yourself, or " +
		"'O' for your opponent: "

	invalidCommand = "Invalid command! Enter 'Help' to see a list of valid commands."
	invalidEntity  = "Invalid target."

	welcomeMessage = "Welcome to HearthStone!"

	playMessage      = "Played "
	energyMessage    = "Insufficient Energy!"
	enemyPlayMessage = "Opponent played "
	discardMessage   = "Discarded "

	gameSaveMessage = "Game Saved."
	gameLoadMessage = "Loaded "
	badFileMessage  = "Malformed File: "
	noFileMessage   = " not found."

	winMessage  = "You have defeated your opponent, Congratulations!"
	lossMessage = "You have been defeated. Better luck next time!"
)

var helpMessages = []string{
	"Commands:",
	"  - Help: See possible commands.",
	"  - Play X: Plays Card at position X in hand.",
	"  - Discard X: Discards Card at position X in hand.",
	"  - End turn: end your turn and let the enemy move.",
	"  - load FILE: loads game state from FILE.",
}

// Controller drives a game session over a line-based terminal.
type Controller struct {
	match    *game.Match
	autosave save.Store
	in       *bufio.Reader
	out      io.Writer
	trace    io.Writer
}

// NewController loads the starting state from the save file at path. On any
// load failure it falls back to the autosave.
func NewController(path string, autosave save.Store) (*Controller, error) {
	c := &Controller{
		autosave: autosave,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	if err := c.loadFile(path); err != nil {
		snapshot, loadErr := autosave.Load()
		if loadErr != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		match, decodeErr := game.DecodeSnapshot(snapshot)
		if decodeErr != nil {
			return nil, fmt.Errorf("load autosave: %w", decodeErr)
		}
		c.match = match
	}
	return c, nil
}

// SetIO redirects the controller's input and output streams.
func (c *Controller) SetIO(in io.Reader, out io.Writer) {
	c.in = bufio.NewReader(in)
	c.out = out
}

// SetTrace streams every game event to w as it happens. Loading a new state
// carries the trace over to the fresh match.
func (c *Controller) SetTrace(w io.Writer) {
	c.trace = w
	if c.match != nil && w != nil {
		c.match.SetLogger(log.NewTextLogger(w))
	}
}

func (c *Controller) loadFile(path string) error {
	snapshot, err := save.NewFileStore(path).Load()
	if err != nil {
		return err
	}
	match, err := game.DecodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	c.match = match
	if c.trace != nil {
		c.match.SetLogger(log.NewTextLogger(c.trace))
	}
	return nil
}

// Run conducts a game from the loaded state until the player wins or loses.
func (c *Controller) Run() error {
	c.display([]string{welcomeMessage})

	for !c.match.HasWon() && !c.match.HasLost() {
		command, err := c.readCommand()
		if err != nil {
			return err
		}

		var messages []string
		fields := strings.Fields(command)
		switch {
		case command == "help":
			messages = helpMessages

		case fields[0] == "play":
			messages = c.handlePlay(fields[1])

		case fields[0] == "discard":
			messages = c.handleDiscard(fields[1])

		case fields[0] == "load":
			messages = c.handleLoad(fields[1])

		case command == "end turn":
			messages = c.handleEndTurn()
		}

		if c.match.HasWon() {
			messages = append(messages, winMessage)
		}
		if c.match.HasLost() {
			messages = append(messages, lossMessage)
		}
		c.display(messages)
	}
	return nil
}

func (c *Controller) display(messages []string) {
	RenderBoard(c.out, c.match, messages)
}

// readCommand prompts until a valid command is entered. Commands are case
// insensitive and card positions are one-indexed into the current hand.
func (c *Controller) readCommand() (string, error) {
	for {
		fmt.Fprint(c.out, commandPrompt)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		command := strings.ToLower(strings.TrimSpace(line))

		if command == "help" || command == "end turn" {
			return command, nil
		}
		fields := strings.Fields(command)
		if len(fields) == 2 {
			if fields[0] == "load" {
				return command, nil
			}
			if fields[0] == "play" || fields[0] == "discard" {
				n, err := strconv.Atoi(fields[1])
				if err == nil && n >= 1 && n <= len(c.match.Player().Hand()) {
					return command, nil
				}
			}
		}
		c.display([]string{invalidCommand})
	}
}

// readTarget prompts until a valid entity identifier is entered. Enemy
// minions are selected with 1 to 5 and player minions with 6 to 10.
func (c *Controller) readTarget() (game.Combatant, error) {
	for {
		fmt.Fprint(c.out, entityPrompt)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return nil, err
		}
		target := strings.ToUpper(strings.TrimSpace(line))

		switch {
		case target == playerSelect:
			return c.match.Player(), nil
		case target == enemySelect:
			return c.match.Enemy(), nil
		}

		if n, err := strconv.Atoi(target); err == nil {
			if n >= 1 && n <= 5 && n <= len(c.match.EnemyMinions()) {
				return c.match.EnemyMinions()[n-1], nil
			}
			if n >= 6 && n <= 10 && n-5 <= len(c.match.PlayerMinions()) {
				return c.match.PlayerMinions()[n-6], nil
			}
		}
		c.display([]string{invalidEntity})
	}
}

func (c *Controller) handlePlay(position string) []string {
	index, _ := strconv.Atoi(position)
	card := c.match.Player().Hand()[index-1]

	var target game.Combatant
	if !card.Permanent {
		var err error
		target, err = c.readTarget()
		if err != nil {
			return []string{invalidEntity}
		}
	}

	if c.match.PlayCard(card, target) {
		return []string{playMessage + card.Name}
	}
	return []string{energyMessage}
}

func (c *Controller) handleDiscard(position string) []string {
	index, _ := strconv.Atoi(position)
	card := c.match.Player().Hand()[index-1]
	c.match.DiscardCard(card)
	return []string{discardMessage + card.Name}
}

func (c *Controller) handleLoad(path string) []string {
	if err := c.loadFile(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{path + noFileMessage}
		}
		return []string{badFileMessage + err.Error()}
	}
	return []string{gameLoadMessage + path}
}

func (c *Controller) handleEndTurn() []string {
	var messages []string
	for _, name := range c.match.EndTurn() {
		messages = append(messages, enemyPlayMessage+name)
	}

	if !c.match.HasWon() && !c.match.HasLost() {
		if err := c.autosave.Save(game.EncodeSnapshot(c.match)); err != nil {
			messages = append(messages, badFileMessage+err.Error())
		} else {
			messages = append(messages, gameSaveMessage)
		}
	}
	return messages
}
