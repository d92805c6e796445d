package drv

import (
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/i915gbm/drm"
)

// CombinationMetadata identifies one layout tier a format can be allocated with
type CombinationMetadata struct {
	Tiling   drm.Tiling
	Priority int
	Modifier Modifier
}

// Combination is one capability entry: a format, a layout tier, and the
// usages that tier supports
type Combination struct {
	Format   Format
	Metadata CombinationMetadata
	UseFlags UseFlags
}

// CombinationTable stores the capability entries a backend registers at init.
// It is written only while the backend is being opened and is read-only afterwards.
type CombinationTable interface {
	// AddCombination appends an entry for format
	AddCombination(format Format, metadata CombinationMetadata, useFlags UseFlags)
	// AddCombinations appends the same entry for every format in formats
	AddCombinations(formats []Format, metadata CombinationMetadata, useFlags UseFlags)
	// ModifyCombination adds useFlags to the entry for format whose metadata
	// equals metadata. It does nothing if there is no such entry.
	ModifyCombination(format Format, metadata CombinationMetadata, useFlags UseFlags)
	// ModifyLinearCombinations applies the modifications every backend shares
	// to linear entries
	ModifyLinearCombinations()
	// Best returns the highest-priority entry for format whose usages include
	// all of useFlags
	Best(format Format, useFlags UseFlags) (Combination, bool)
	// Combinations returns the entries for format in insertion order
	Combinations(format Format) []Combination
	// Formats returns every format with at least one entry, in the order
	// each was first added
	Formats() []Format
}

// LinearMetadata is the linear tier every backend registers first
var LinearMetadata = CombinationMetadata{
	Tiling:   drm.TilingNone,
	Priority: 1,
	Modifier: ModifierLinear,
}

// Combinations is the default CombinationTable
type Combinations struct {
	entries *swiss.Map[Format, []Combination]
	order   []Format
}

var _ CombinationTable = &Combinations{}

func NewCombinations() *Combinations {
	return &Combinations{
		entries: swiss.NewMap[Format, []Combination](32),
	}
}

func (c *Combinations) AddCombination(format Format, metadata CombinationMetadata, useFlags UseFlags) {
	entries, ok := c.entries.Get(format)
	if !ok {
		c.order = append(c.order, format)
	}

	entries = append(entries, Combination{
		Format:   format,
		Metadata: metadata,
		UseFlags: useFlags,
	})
	c.entries.Put(format, entries)
}

func (c *Combinations) AddCombinations(formats []Format, metadata CombinationMetadata, useFlags UseFlags) {
	for _, format := range formats {
		c.AddCombination(format, metadata, useFlags)
	}
}

func (c *Combinations) ModifyCombination(format Format, metadata CombinationMetadata, useFlags UseFlags) {
	entries, ok := c.entries.Get(format)
	if !ok {
		return
	}

	for i := range entries {
		if entries[i].Metadata == metadata {
			entries[i].UseFlags |= useFlags
		}
	}
}

func (c *Combinations) ModifyLinearCombinations() {
	// Linear XRGB8888 and ARGB8888 can be scanned out as a primary plane and as a cursor everywhere
	c.ModifyCombination(FormatXRGB8888, LinearMetadata, UseCursor|UseScanout)
	c.ModifyCombination(FormatARGB8888, LinearMetadata, UseCursor|UseScanout)
}

func (c *Combinations) Best(format Format, useFlags UseFlags) (Combination, bool) {
	if format == FormatNone || useFlags == UseNone {
		return Combination{}, false
	}

	entries, ok := c.entries.Get(format)
	if !ok {
		return Combination{}, false
	}

	var best *Combination
	for i := range entries {
		if entries[i].UseFlags&useFlags != useFlags {
			continue
		}
		if best == nil || best.Metadata.Priority < entries[i].Metadata.Priority {
			best = &entries[i]
		}
	}

	if best == nil {
		return Combination{}, false
	}
	return *best, true
}

func (c *Combinations) Combinations(format Format) []Combination {
	entries, _ := c.entries.Get(format)
	out := make([]Combination, len(entries))
	copy(out, entries)
	return out
}

func (c *Combinations) Formats() []Format {
	out := make([]Format, len(c.order))
	copy(out, c.order)
	return out
}

// PrintCombinations writes every entry of table, grouped by format
func PrintCombinations(table CombinationTable, json *jwriter.ObjectState) {
	for _, format := range table.Formats() {
		entries := json.Name(format.String()).Array()
		for _, combination := range table.Combinations(format) {
			obj := entries.Object()
			obj.Name("Priority").Int(combination.Metadata.Priority)
			obj.Name("Modifier").String(combination.Metadata.Modifier.String())
			obj.Name("Tiling").String(combination.Metadata.Tiling.String())
			obj.Name("Usage").String(combination.UseFlags.String())
			obj.End()
		}
		entries.End()
	}
}
