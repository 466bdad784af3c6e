package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"voxview/internal/h5io"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

type datasetItem struct {
	path  string // dataset path inside the file
	shape []int
}

func (d datasetItem) Title() string { return d.path }
func (d datasetItem) Description() string {
	parts := make([]string, len(d.shape))
	for i, s := range d.shape {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (d datasetItem) FilterValue() string { return d.path }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".h5" || ext == ".hdf5" || ext == ".he5" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.browsingSet = false
	m.l.Title = "Files"
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no hdf5 files in current directory"
	}
}

// openFile lists the datasets inside an HDF5 file in the sidebar.
func (m *Model) openFile(p string) {
	infos, err := h5io.ListDatasets(p)
	if err != nil {
		m.status = "open error: " + err.Error()
		return
	}
	m.selPath = p
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, datasetItem{path: info.Path, shape: info.Shape})
	}
	m.browsingSet = true
	m.l.Title = filepath.Base(p)
	m.l.SetItems(items)
	m.l.ResetSelected()
	if len(items) == 0 {
		m.status = "no datasets in " + filepath.Base(p)
	} else {
		m.status = fmt.Sprintf("opened: %s  datasets: %d", filepath.Base(p), len(items))
	}
}

// loadDataset reads a dataset and builds both displays for it.
func (m *Model) loadDataset(internalPath string) {
	arr, err := h5io.ReadArray(m.selPath, internalPath)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}

	planar, err := NewPlanarDisplay(arr, m.reg, m.cfg.Display.Colormap,
		m.cfg.Display.WindowLow, m.cfg.Display.WindowHigh)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	vol, err := NewVolumeDisplay(arr, m.reg,
		WithWindow(m.cfg.Display.WindowLow, m.cfg.Display.WindowHigh),
		WithOpacity(m.cfg.Volume.Opacity),
		WithColormap(m.cfg.Display.Colormap))
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}

	m.planar = planar
	m.vol = vol
	m.selDataset = internalPath
	shape := planar.Shape()
	m.status = fmt.Sprintf("loaded: %s  shape: (%d, %d, %d)", internalPath, shape[0], shape[1], shape[2])
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// loadFirstVolume loads the first rank-3 dataset of the opened file.
func (m *Model) loadFirstVolume() {
	if !m.browsingSet {
		return
	}
	for _, it := range m.l.Items() {
		ds, ok := it.(datasetItem)
		if !ok || len(ds.shape) != 3 {
			continue
		}
		m.loadDataset(ds.path)
		return
	}
	m.status = "no volumetric dataset found"
}
