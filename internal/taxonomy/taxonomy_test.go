// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.DefaultPresets[0] = "changed"
	a.ColorHex["gold"] = "#000000"

	assert.Equal(t, "modern-minimal", b.DefaultPresets[0])
	assert.Equal(t, "#D4AF37", b.ColorHex["gold"])
}

func TestDefaultPresetsCoverTopN(t *testing.T) {
	// The ranker returns four presets; a shorter default list could not
	// guarantee a full ranking.
	assert.Len(t, Default().DefaultPresets, 4)
}

func TestPresetLookup(t *testing.T) {
	tbl := Default()

	p, ok := tbl.Preset("luxury-crown")
	require.True(t, ok)
	assert.Equal(t, "luxury", p.Category)

	_, ok = tbl.Preset("no-such-preset")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tbl *Tables)
		wantErr string
	}{
		{
			name:    "unknown preset in family",
			mutate:  func(tbl *Tables) { tbl.IndustryPresets["tech"] = []string{"ghost"} },
			wantErr: `industry_presets.tech: unknown preset "ghost"`,
		},
		{
			name:    "unknown preset in bonus",
			mutate:  func(tbl *Tables) { tbl.GlowBonuses = []Bonus{{Preset: "ghost", Points: 3}} },
			wantErr: `glow_bonuses: unknown preset "ghost"`,
		},
		{
			name:    "empty default list",
			mutate:  func(tbl *Tables) { tbl.DefaultPresets = nil },
			wantErr: "default_presets is empty",
		},
		{
			name:    "color keyword to unknown color",
			mutate:  func(tbl *Tables) { tbl.Colors = append(tbl.Colors, ColorKeyword{Keyword: "mauve", Color: "mauve"}) },
			wantErr: `maps to unknown color "mauve"`,
		},
		{
			name:    "fallback style without family",
			mutate:  func(tbl *Tables) { tbl.FallbackStyle = "baroque" },
			wantErr: `fallback_style "baroque" has no family`,
		},
		{
			name: "duplicate catalog id",
			mutate: func(tbl *Tables) {
				tbl.Catalog = append(tbl.Catalog, tbl.Catalog[0])
			},
			wantErr: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := Default()
			tt.mutate(tbl)
			err := tbl.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns built-in tables", func(t *testing.T) {
		tbl, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().DefaultPresets, tbl.DefaultPresets)
	})

	t.Run("section in file replaces built-in section", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tables.yaml", `
default_presets:
  - tech-circuit
  - tech-neon
  - tech-gradient
  - luxury-gold
`)
		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"tech-circuit", "tech-neon", "tech-gradient", "luxury-gold"}, tbl.DefaultPresets)
		assert.Len(t, tbl.Industries, len(Default().Industries))
	})

	t.Run("map section replaced whole", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tables.yaml", `
industry_presets:
  corporate: [corporate-clean, modern-minimal]
style_presets:
  modern: [modern-minimal]
`)
		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"corporate": {"corporate-clean", "modern-minimal"}}, tbl.IndustryPresets)
		assert.Equal(t, map[string][]string{"modern": {"modern-minimal"}}, tbl.StylePresets)
		assert.Equal(t, Default().ColorHex, tbl.ColorHex)
		assert.Equal(t, Default().PatternPresets, tbl.PatternPresets)
	})

	t.Run("keywords lower-cased", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tables.yaml", `
styles:
  - name: bold
    keywords: [Heavy, LOUD]
colors:
  - keyword: Crimson
    color: red
depth:
  - depth: flat
    any_of: ["[FLAT]"]
    all_of: [Flat, 2D]
`)
		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"heavy", "loud"}, tbl.Styles[0].Keywords)
		assert.Equal(t, "crimson", tbl.Colors[0].Keyword)
		assert.Equal(t, []string{"[flat]"}, tbl.Depth[0].AnyOf)
		assert.Equal(t, []string{"flat", "2d"}, tbl.Depth[0].AllOf)
	})

	t.Run("invalid reference rejected", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tables.yaml", "default_presets: [ghost]\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown preset "ghost"`)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "tables.yaml", "default_presets: [unterminated\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing tables")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading tables")
	})
}

func TestWriteYAMLRoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, Default().WriteYAML(path))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Catalog, tbl.Catalog)
	assert.Equal(t, Default().IndustryPresets, tbl.IndustryPresets)
}
