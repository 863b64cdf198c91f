// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores the preset catalog against a types.AnalysisResult
// and returns the best few presets.
//
// Scoring is additive. Rule families run in a fixed order over ordered
// tables, so identical input always yields identical output, including
// the order of tied presets.
package rank

import (
	"sort"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// Scoring constants.
const (
	// presetMatchSeed is the explicit-match seed used when the analysis
	// carries no usable confidence.
	presetMatchSeed = 80

	industryBase = 15
	industryStep = 3
	styleBase    = 8
	styleStep    = 2
	patternBonus = 4
	floorScore   = 5

	// TopN is the maximum number of presets Rank returns.
	TopN = 4
)

// Ranker scores presets with one set of tables.
type Ranker struct {
	tables *taxonomy.Tables
}

// New returns a Ranker for tables.
func New(tables *taxonomy.Tables) *Ranker {
	return &Ranker{tables: tables}
}

var defaultRanker = New(taxonomy.Default())

// Rank ranks the built-in catalog for result.
func Rank(result types.AnalysisResult) []types.ScoredPreset {
	return defaultRanker.Rank(result)
}

// Rank returns at most TopN presets ordered by descending score. Returned
// scores are clamped to [0, types.MaxPresetScore]; the order is decided on
// the unclamped totals, with ties kept in the order presets first scored.
func (r *Ranker) Rank(result types.AnalysisResult) []types.ScoredPreset {
	b := newBoard()
	t := r.tables

	// Explicit match.
	if result.PresetMatch != "" {
		if _, ok := t.Preset(result.PresetMatch); ok {
			seed := result.Confidence
			if seed <= 0 {
				seed = presetMatchSeed
			}
			b.add(result.PresetMatch, seed)
		}
	}

	// Industry family.
	family, ok := t.IndustryPresets[string(result.Industry)]
	if !ok {
		family = t.IndustryPresets[t.FallbackIndustry]
	}
	for pos, id := range family {
		b.add(id, industryBase-industryStep*pos)
	}

	// Style family.
	family, ok = t.StylePresets[string(result.Style)]
	if !ok {
		family = t.StylePresets[t.FallbackStyle]
	}
	for pos, id := range family {
		b.add(id, styleBase-styleStep*pos)
	}

	// Effects.
	if hasMetallic(result) {
		b.addBonuses(t.MetallicBonuses)
	}
	if hasGlow(result) {
		b.addBonuses(t.GlowBonuses)
	}

	// Pattern family.
	if result.Pattern != types.PatternNone {
		for _, id := range t.PatternPresets[string(result.Pattern)] {
			b.add(id, patternBonus)
		}
	}

	// Colors. Each rule fires once however many of its colors are present.
	for _, cb := range t.ColorBonuses {
		if anyColor(result.Colors, cb.Colors) {
			b.addBonuses(cb.Bonuses)
		}
	}

	// Coverage floor.
	for _, id := range t.DefaultPresets {
		if !b.has(id) {
			b.add(id, floorScore)
		}
	}

	return b.top(TopN)
}

func hasMetallic(r types.AnalysisResult) bool {
	return (r.Metallic != "" && r.Metallic != types.MetallicNone) || r.HasEffect(types.EffectMetallic)
}

func hasGlow(r types.AnalysisResult) bool {
	return (r.Glow != "" && r.Glow != types.GlowNone) || r.HasEffect(types.EffectGlow)
}

func anyColor(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// board accumulates scores and remembers the order presets first scored.
type board struct {
	order  []string
	scores map[string]int
}

func newBoard() *board {
	return &board{scores: make(map[string]int)}
}

func (b *board) add(id string, points int) {
	if _, ok := b.scores[id]; !ok {
		b.order = append(b.order, id)
	}
	b.scores[id] += points
}

func (b *board) addBonuses(bonuses []taxonomy.Bonus) {
	for _, bonus := range bonuses {
		b.add(bonus.Preset, bonus.Points)
	}
}

func (b *board) has(id string) bool {
	_, ok := b.scores[id]
	return ok
}

func (b *board) top(n int) []types.ScoredPreset {
	ranked := make([]types.ScoredPreset, len(b.order))
	for i, id := range b.order {
		ranked[i] = types.ScoredPreset{PresetID: id, Score: b.scores[id]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Score = clamp(ranked[i].Score)
	}
	return ranked
}

func clamp(score int) int {
	return max(0, min(types.MaxPresetScore, score))
}
