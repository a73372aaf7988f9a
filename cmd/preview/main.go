package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"astrox_site/internal/config"
	"astrox_site/internal/preview"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	p := tea.NewProgram(preview.New(cfg.MissionVideo), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}
