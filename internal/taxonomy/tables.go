// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the static pattern tables the classifier scans
// with and the preset catalog, family and bonus tables the ranker scores
// with. Tables are built once and never mutated afterwards, so a single
// *Tables may be shared by any number of goroutines.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// Category is a named value with the keywords that indicate it.
// Order inside a table is significant: it breaks ties and decides
// first-match lookups.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// ColorKeyword maps a word found in analysis text to a color id.
type ColorKeyword struct {
	Keyword string `json:"keyword" yaml:"keyword"`
	Color   string `json:"color" yaml:"color"`
}

// DepthRule assigns Depth when any AnyOf marker is present or when every
// AllOf marker is present.
type DepthRule struct {
	Depth types.Depth `json:"depth" yaml:"depth"`
	AnyOf []string    `json:"any_of" yaml:"any_of"`
	AllOf []string    `json:"all_of" yaml:"all_of"`
}

// Bonus is a flat score added to one preset.
type Bonus struct {
	Preset string `json:"preset" yaml:"preset"`
	Points int    `json:"points" yaml:"points"`
}

// ColorBonus applies Bonuses once when any of Colors is in the analysis.
type ColorBonus struct {
	Colors  []string `json:"colors" yaml:"colors"`
	Bonuses []Bonus  `json:"bonuses" yaml:"bonuses"`
}

// Tables is the complete set of reference data.
type Tables struct {
	Industries  []Category        `json:"industries" yaml:"industries"`
	Styles      []Category        `json:"styles" yaml:"styles"`
	Colors      []ColorKeyword    `json:"colors" yaml:"colors"`
	ColorHex    map[string]string `json:"color_hex" yaml:"color_hex"`
	Depth       []DepthRule       `json:"depth" yaml:"depth"`
	Effects     []Category        `json:"effects" yaml:"effects"`
	Metallic    []Category        `json:"metallic" yaml:"metallic"`
	Glow        []Category        `json:"glow" yaml:"glow"`
	Patterns    []Category        `json:"patterns" yaml:"patterns"`
	FontStyles  []Category        `json:"font_styles" yaml:"font_styles"`
	FontWeights []Category        `json:"font_weights" yaml:"font_weights"`
	Icons       []Category        `json:"icons" yaml:"icons"`
	Layouts     []Category        `json:"layouts" yaml:"layouts"`

	// FrameShapes and FrameMaterials list the words that may precede
	// "frame", "border", "emblem" or "rim" in a frame description.
	FrameShapes    []Category `json:"frame_shapes" yaml:"frame_shapes"`
	FrameMaterials []Category `json:"frame_materials" yaml:"frame_materials"`

	Catalog []types.Preset `json:"catalog" yaml:"catalog"`

	// IndustryPresets and StylePresets are ordered families: earlier
	// entries score higher.
	IndustryPresets map[string][]string `json:"industry_presets" yaml:"industry_presets"`
	StylePresets    map[string][]string `json:"style_presets" yaml:"style_presets"`
	PatternPresets  map[string][]string `json:"pattern_presets" yaml:"pattern_presets"`

	MetallicBonuses []Bonus      `json:"metallic_bonuses" yaml:"metallic_bonuses"`
	GlowBonuses     []Bonus      `json:"glow_bonuses" yaml:"glow_bonuses"`
	ColorBonuses    []ColorBonus `json:"color_bonuses" yaml:"color_bonuses"`

	// DefaultPresets are floor-seeded so a ranking is never short.
	DefaultPresets []string `json:"default_presets" yaml:"default_presets"`

	// FallbackIndustry and FallbackStyle name the families used for
	// values without a family of their own.
	FallbackIndustry string `json:"fallback_industry" yaml:"fallback_industry"`
	FallbackStyle    string `json:"fallback_style" yaml:"fallback_style"`
}

// Preset returns the catalog entry for id.
func (t *Tables) Preset(id string) (types.Preset, bool) {
	for _, p := range t.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return types.Preset{}, false
}

// HasColor reports whether id is in the color vocabulary.
func (t *Tables) HasColor(id string) bool {
	_, ok := t.ColorHex[id]
	return ok
}

// Hex returns the hex value for a color id.
func (t *Tables) Hex(id string) (string, bool) {
	hex, ok := t.ColorHex[id]
	return hex, ok
}

// Validate checks that every preset reference resolves to the catalog,
// every color keyword targets a known color, and the sections the engine
// cannot run without are present.
func (t *Tables) Validate() error {
	var errs []string

	if len(t.Catalog) == 0 {
		errs = append(errs, "catalog is empty")
	}
	if len(t.DefaultPresets) == 0 {
		errs = append(errs, "default_presets is empty")
	}
	if len(t.ColorHex) == 0 {
		errs = append(errs, "color_hex is empty")
	}

	seen := make(map[string]bool, len(t.Catalog))
	for i, p := range t.Catalog {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("catalog[%d]: empty id", i))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("catalog[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}

	checkIDs := func(where string, ids []string) {
		for _, id := range ids {
			if !seen[id] {
				errs = append(errs, fmt.Sprintf("%s: unknown preset %q", where, id))
			}
		}
	}
	checkBonuses := func(where string, bonuses []Bonus) {
		for _, b := range bonuses {
			if !seen[b.Preset] {
				errs = append(errs, fmt.Sprintf("%s: unknown preset %q", where, b.Preset))
			}
		}
	}

	checkIDs("default_presets", t.DefaultPresets)
	for _, k := range sortedKeys(t.IndustryPresets) {
		checkIDs("industry_presets."+k, t.IndustryPresets[k])
	}
	for _, k := range sortedKeys(t.StylePresets) {
		checkIDs("style_presets."+k, t.StylePresets[k])
	}
	for _, k := range sortedKeys(t.PatternPresets) {
		checkIDs("pattern_presets."+k, t.PatternPresets[k])
	}
	checkBonuses("metallic_bonuses", t.MetallicBonuses)
	checkBonuses("glow_bonuses", t.GlowBonuses)
	for i, cb := range t.ColorBonuses {
		checkBonuses(fmt.Sprintf("color_bonuses[%d]", i), cb.Bonuses)
	}

	if _, ok := t.IndustryPresets[t.FallbackIndustry]; !ok {
		errs = append(errs, fmt.Sprintf("fallback_industry %q has no family", t.FallbackIndustry))
	}
	if _, ok := t.StylePresets[t.FallbackStyle]; !ok {
		errs = append(errs, fmt.Sprintf("fallback_style %q has no family", t.FallbackStyle))
	}

	for i, ck := range t.Colors {
		if !t.HasColor(ck.Color) {
			errs = append(errs, fmt.Sprintf("colors[%d]: keyword %q maps to unknown color %q", i, ck.Keyword, ck.Color))
		}
	}
	if !t.HasColor(types.DefaultColor) {
		errs = append(errs, fmt.Sprintf("color_hex: default color %q missing", types.DefaultColor))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid tables: %s", strings.Join(errs, "; "))
	}
	return nil
}
