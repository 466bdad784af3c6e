package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/colormap"
	"voxview/internal/config"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg *config.Config
	reg *colormap.Registry

	// File explorer; after a file is opened the same list shows the
	// datasets inside it until esc goes back up.
	cwd         string
	l           list.Model
	browsingSet bool
	selPath     string
	selDataset  string

	// Displays; volumetric picks which one is active
	planar     *PlanarDisplay
	vol        *VolumeDisplay
	volumetric bool

	// fingerprint table
	showAttrs bool
	tbl       table.Model
}

func New(cfg *config.Config) Model {
	m := Model{
		showSidebar: true,
		helpVisible: true,
		status:      "voxview ready",
		cfg:         cfg,
		reg:         colormap.NewRegistry(),
		volumetric:  cfg.Display.Volumetric,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// fingerprint table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath opens a file at launch and loads its first rank-3
// dataset when there is one.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.openFile(path)
	m.loadFirstVolume()
	return m
}

// NewWithDataset opens a file and a named dataset inside it at launch.
func NewWithDataset(cfg *config.Config, path, internalPath string) Model {
	m := New(cfg)
	m.openFile(path)
	if m.browsingSet {
		m.loadDataset(internalPath)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
