package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/dvalenta/terrainforge/services/terrain"
)

func main() {
	seed := flag.Int64("seed", 1, "noise seed")
	res := flag.Int("res", 129, "heightmap resolution")
	logLevel := flag.String("log", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}

	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg := terrain.DefaultConfig()
	cfg.Seed = *seed
	cfg.Resolution = *res
	cfg.AlphaResolution = *res - 1

	program := tea.NewProgram(newViewerModel(cfg), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		log.Fatal("Error running terrain viewer", "error", err)
	}
}
