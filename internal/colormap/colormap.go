// Package colormap holds the fixed lookup tables that map windowed scalar
// values to display colors. The set of names mirrors the matplotlib maps
// commonly used for scientific volume data.
package colormap

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// tableSize is the number of entries in every lookup table.
const tableSize = 256

// Table is a fixed lookup table from normalized scalar values to colors.
type Table struct {
	name    string
	entries [tableSize]colorful.Color
}

// Name returns the registered name of the table.
func (t *Table) Name() string { return t.name }

// At maps v through the windowing range (lo, hi) to a color. Values at or
// below lo clamp to the first entry, at or above hi to the last. A
// degenerate window (lo >= hi) yields the first entry.
func (t *Table) At(v, lo, hi float64) colorful.Color {
	if hi <= lo {
		return t.entries[0]
	}
	f := (v - lo) / (hi - lo)
	if f <= 0 {
		return t.entries[0]
	}
	if f >= 1 {
		return t.entries[tableSize-1]
	}
	return t.entries[int(f*float64(tableSize-1))]
}

// Entry returns table entry i directly.
func (t *Table) Entry(i int) colorful.Color { return t.entries[i] }

// anchor hex stops per colormap, blended evenly across the table.
var anchors = map[string][]string{
	"viridis": {"#440154", "#3B528B", "#21918C", "#5EC962", "#FDE725"},
	"cividis": {"#00224E", "#31446B", "#666970", "#958F78", "#CABA69", "#FEE838"},
	"inferno": {"#000004", "#57106E", "#BC3754", "#F98C0A", "#FCFFA4"},
	"plasma":  {"#0D0887", "#7E03A8", "#CC4778", "#F89441", "#F0F921"},
	"magma":   {"#000004", "#51127C", "#B73779", "#FC8961", "#FCFDBF"},
	"gray":    {"#000000", "#FFFFFF"},
	"jet":     {"#00007F", "#0000FF", "#00FFFF", "#FFFF00", "#FF0000", "#7F0000"},
	"hot":     {"#000000", "#FF0000", "#FFFF00", "#FFFFFF"},
	"cool":    {"#00FFFF", "#FF00FF"},
}

// order fixes the presentation order of the registry.
var order = []string{
	"viridis", "cividis", "inferno", "plasma", "magma",
	"gray", "jet", "hot", "cool",
}

// Registry is a read-only set of named colormap tables, built once at
// startup and injected into the display constructors.
type Registry struct {
	names  []string
	tables map[string]*Table
}

// NewRegistry builds the full table set.
func NewRegistry() *Registry {
	r := &Registry{tables: make(map[string]*Table, len(order))}
	for _, name := range order {
		r.names = append(r.names, name)
		r.tables[name] = build(name, anchors[name])
	}
	return r
}

// Names returns the registered names in presentation order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup returns the table for name, or false if name is unknown.
func (r *Registry) Lookup(name string) (*Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

func build(name string, stops []string) *Table {
	cols := make([]colorful.Color, len(stops))
	for i, hex := range stops {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic("colormap: bad anchor " + hex)
		}
		cols[i] = c
	}
	t := &Table{name: name}
	segs := len(cols) - 1
	for i := 0; i < tableSize; i++ {
		pos := float64(i) / float64(tableSize-1) * float64(segs)
		seg := int(pos)
		if seg >= segs {
			seg = segs - 1
		}
		t.entries[i] = cols[seg].BlendRgb(cols[seg+1], pos-float64(seg)).Clamped()
	}
	return t
}
