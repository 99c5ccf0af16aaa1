package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterkuimelis/hearthx/internal/game"
)

const boardWidth = 54

// RenderBoard prints the full board from the player's perspective, with any
// status messages below it. Enemy minion slots are numbered 1 to 5 and
// player minion slots 6 to 10, matching the targeting identifiers.
func RenderBoard(w io.Writer, m *game.Match, messages []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔"+strings.Repeat("═", boardWidth)+"╗")

	enemy := m.Enemy()
	fmt.Fprintf(w, "║  OPPONENT  HP: %d  Shield: %d  Hand: %d  Deck: %d\n",
		enemy.Health(), enemy.Shield(), len(enemy.Hand()), enemy.Deck().RemainingCount())

	fmt.Fprintf(w, "║  ")
	for i := 0; i < game.MaxMinionSlots; i++ {
		fmt.Fprintf(w, "%s ", formatSlot(m.EnemyMinions(), i, i+1))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "║"+strings.Repeat("─", boardWidth))

	fmt.Fprintf(w, "║  ")
	for i := 0; i < game.MaxMinionSlots; i++ {
		fmt.Fprintf(w, "%s ", formatSlot(m.PlayerMinions(), i, i+6))
	}
	fmt.Fprintln(w)

	player := m.Player()
	fmt.Fprintf(w, "║  YOU  HP: %d  Shield: %d  Energy: %d/%d  Deck: %d\n",
		player.Health(), player.Shield(), player.Energy(), player.MaxEnergy(),
		player.Deck().RemainingCount())
	fmt.Fprintln(w, "╚"+strings.Repeat("═", boardWidth)+"╝")

	if hand := player.Hand(); len(hand) > 0 {
		fmt.Fprintf(w, "Hand: ")
		for i, c := range hand {
			fmt.Fprintf(w, "[%d] %s/%d  ", i+1, c.Name, c.Cost)
		}
		fmt.Fprintln(w)
	}

	for _, msg := range messages {
		fmt.Fprintln(w, msg)
	}
}

func formatSlot(minions []*game.Minion, index, label int) string {
	if index >= len(minions) {
		return fmt.Sprintf("%d:[   ]", label)
	}
	m := minions[index]
	return fmt.Sprintf("%d:[%s %d/%d]", label, m.Symbol(), m.Health(), m.Shield())
}
