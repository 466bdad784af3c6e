package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/config"
	"voxview/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "voxview.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	var m tea.Model
	switch {
	case flag.NArg() > 1:
		m = tui.NewWithDataset(cfg, flag.Arg(0), flag.Arg(1))
	case flag.NArg() > 0:
		m = tui.NewWithPath(cfg, flag.Arg(0))
	default:
		m = tui.New(cfg)
	}
	if err := tea.NewProgram(m, tea.WithAltScreen()).Start(); err != nil {
		log.Fatal(err)
	}
}
