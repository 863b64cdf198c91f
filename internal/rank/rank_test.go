// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

func ids(ranked []types.ScoredPreset) []string {
	out := make([]string, len(ranked))
	for i, p := range ranked {
		out[i] = p.PresetID
	}
	return out
}

func stackedLuxury() types.AnalysisResult {
	r := types.NewAnalysisResult()
	r.Industry = types.IndustryLuxury
	r.Style = types.StyleElegant
	r.Metallic = types.MetallicGold
	r.Colors = []string{"gold"}
	return r
}

func TestRankCoverageOnDefaults(t *testing.T) {
	got := Rank(types.NewAnalysisResult())

	want := []types.ScoredPreset{
		{PresetID: "modern-minimal", Score: 20},
		{PresetID: "corporate-clean", Score: 19},
		{PresetID: "tech-gradient", Score: 6},
		{PresetID: "elegant-serif", Score: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}

	defaults := taxonomy.Default().DefaultPresets
	for _, p := range got {
		assert.Contains(t, defaults, p.PresetID)
		assert.GreaterOrEqual(t, p.Score, floorScore)
	}
}

func TestRankDeterministic(t *testing.T) {
	inputs := []types.AnalysisResult{types.NewAnalysisResult(), stackedLuxury()}

	r := types.NewAnalysisResult()
	r.Effects = []types.Effect{types.EffectGlow, types.EffectMetallic}
	r.Pattern = types.PatternHalftone
	r.Colors = []string{"purple", "pink", "cyan"}
	inputs = append(inputs, r)

	fresh := New(taxonomy.Default())
	for _, in := range inputs {
		first := Rank(in)
		for i := 0; i < 10; i++ {
			if diff := cmp.Diff(first, Rank(in)); diff != "" {
				t.Fatalf("Rank not deterministic (-first +again):\n%s", diff)
			}
		}
		if diff := cmp.Diff(first, fresh.Rank(in)); diff != "" {
			t.Fatalf("Rank differs across rankers (-default +fresh):\n%s", diff)
		}
	}
}

func TestRankTieKeepsInsertionOrder(t *testing.T) {
	r := types.NewAnalysisResult()
	r.Effects = []types.Effect{types.EffectGlow}

	got := Rank(r)

	// tech-gradient scored before tech-neon; both total 6.
	assert.Equal(t, []string{"modern-minimal", "corporate-clean", "tech-gradient", "tech-neon"}, ids(got))
	assert.Equal(t, got[2].Score, got[3].Score)
}

func TestRankPresetMatch(t *testing.T) {
	t.Run("high confidence leads", func(t *testing.T) {
		r := stackedLuxury()
		r.PresetMatch = "nature-leaf"
		r.Confidence = 90

		got := Rank(r)
		require.NotEmpty(t, got)
		assert.Equal(t, "nature-leaf", got[0].PresetID)
		assert.Equal(t, types.MaxPresetScore, got[0].Score)
	})

	t.Run("stacked bonuses overtake low confidence", func(t *testing.T) {
		r := stackedLuxury()
		r.PresetMatch = "nature-leaf"
		r.Confidence = 10

		got := Rank(r)
		assert.Equal(t, []string{"luxury-gold", "luxury-crown", "luxury-chrome", "nature-leaf"}, ids(got))
		assert.Equal(t, []int{20, 20, 15, 10}, []int{got[0].Score, got[1].Score, got[2].Score, got[3].Score})
	})

	t.Run("bonuses above ninety overtake high confidence", func(t *testing.T) {
		tbl := taxonomy.Default()
		tbl.MetallicBonuses = append(tbl.MetallicBonuses, taxonomy.Bonus{Preset: "luxury-gold", Points: 80})

		r := stackedLuxury()
		r.PresetMatch = "nature-leaf"
		r.Confidence = 90

		got := New(tbl).Rank(r)
		assert.Equal(t, "luxury-gold", got[0].PresetID)
		assert.Equal(t, "nature-leaf", got[1].PresetID)
	})

	t.Run("missing confidence seeds eighty", func(t *testing.T) {
		r := stackedLuxury()
		r.PresetMatch = "nature-leaf"
		r.Confidence = 0

		assert.Equal(t, "nature-leaf", Rank(r)[0].PresetID)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		r := types.NewAnalysisResult()
		r.PresetMatch = "made-up"

		assert.Equal(t, Rank(types.NewAnalysisResult()), Rank(r))
	})
}

func TestRankUnknownValuesUseFallbacks(t *testing.T) {
	r := types.NewAnalysisResult()
	r.Industry = types.Industry("aerospace")
	r.Style = types.Style("brutalist")
	r.Pattern = types.Pattern("plaid")
	r.Metallic = types.Metallic("")
	r.Glow = types.Glow("")

	assert.Equal(t, Rank(types.NewAnalysisResult()), Rank(r))
}

func TestRankColorRuleFiresOnce(t *testing.T) {
	r := types.NewAnalysisResult()
	r.Industry = types.IndustryTech
	r.Colors = []string{"cyan", "blue"}

	want := []types.ScoredPreset{
		{PresetID: "tech-circuit", Score: 18},
		{PresetID: "tech-neon", Score: 16},
		{PresetID: "tech-gradient", Score: 15},
		{PresetID: "modern-minimal", Score: 8},
	}
	if diff := cmp.Diff(want, Rank(r)); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRankPatternFamily(t *testing.T) {
	r := types.NewAnalysisResult()
	r.Industry = types.IndustryTech
	r.Pattern = types.PatternCircuit

	got := Rank(r)

	assert.Equal(t, []string{"tech-circuit", "tech-gradient", "tech-neon", "modern-minimal"}, ids(got))
	assert.Equal(t, 19, got[0].Score)
}

func TestRankScoresClamped(t *testing.T) {
	for _, p := range Rank(stackedLuxury()) {
		assert.GreaterOrEqual(t, p.Score, 0)
		assert.LessOrEqual(t, p.Score, types.MaxPresetScore)
	}

	assert.Equal(t, 0, clamp(-3))
	assert.Equal(t, types.MaxPresetScore, clamp(25))
	assert.Equal(t, 7, clamp(7))
}

func TestRankNeverExceedsTopN(t *testing.T) {
	r := stackedLuxury()
	r.Effects = []types.Effect{types.EffectGlow}
	r.Pattern = types.PatternRadial
	r.Colors = []string{"gold", "green", "blue"}

	assert.Len(t, Rank(r), TopN)
}
