package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	hearthxmcp "github.com/peterkuimelis/hearthx/internal/mcp"
	"github.com/peterkuimelis/hearthx/internal/save"
)

func main() {
	scenarios := flag.String("scenarios", "scenarios.yaml", "path to scenario YAML file")
	saveFile := flag.String("save", save.DefaultPath, "path to the snapshot save file")
	flag.Parse()

	hearthxmcp.SetScenariosFile(*scenarios)
	hearthxmcp.SetSavePath(*saveFile)

	s := server.NewMCPServer("hearthx", "1.0.0")
	hearthxmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
