package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/hearthx/internal/cli"
	"github.com/peterkuimelis/hearthx/internal/game"
	"github.com/peterkuimelis/hearthx/internal/save"
)

func main() {
	file := flag.String("file", save.DefaultPath, "save file to load the game from")
	scenariosFile := flag.String("scenarios", "", "start from a named scenario file instead of a save")
	scenario := flag.String("scenario", "standard", "scenario name to start from")
	trace := flag.Bool("trace", false, "log every game event to stderr")
	flag.Parse()

	autosave := save.NewFileStore(save.DefaultPath)

	if *scenariosFile != "" {
		match, err := game.ScenarioByName(*scenariosFile, *scenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := autosave.Save(game.EncodeSnapshot(match)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		*file = save.DefaultPath
	}

	ctrl, err := cli.NewController(*file, autosave)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *trace {
		ctrl.SetTrace(os.Stderr)
	}

	if err := ctrl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
