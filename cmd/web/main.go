package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/hearthx/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	scenariosFile := flag.String("scenarios", "scenarios.yaml", "path to scenario YAML file")
	flag.Parse()

	srv := web.NewServer(*scenariosFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("hearthx web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
