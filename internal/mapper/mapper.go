// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper projects a types.AnalysisResult onto the two vocabularies
// the configurator consumes: questionnaire answers and the renderer's flat
// configuration record.
//
// Both projections are total. Every enum passes through a lookup table and
// values without an entry fall back to a fixed identifier, so the output
// never carries a key the consumer does not know.
package mapper

import (
	"strings"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// Mapper resolves color ids to hex with one set of tables.
type Mapper struct {
	tables *taxonomy.Tables
}

// New returns a Mapper for tables.
func New(tables *taxonomy.Tables) *Mapper {
	return &Mapper{tables: tables}
}

var defaultMapper = New(taxonomy.Default())

// ToAnswers maps result with the built-in tables.
func ToAnswers(result types.AnalysisResult, displayName string) types.Answers {
	return defaultMapper.ToAnswers(result, displayName)
}

// ToConfig maps result with the built-in tables.
func ToConfig(result types.AnalysisResult, displayName string) types.RendererConfig {
	return defaultMapper.ToConfig(result, displayName)
}

// ToAnswers returns the questionnaire answers for result. Values are string
// or []string; optional questions are omitted when there is nothing to say.
func (m *Mapper) ToAnswers(result types.AnalysisResult, displayName string) types.Answers {
	a := types.Answers{
		types.QuestionIndustry: lookup(industryAnswers, result.Industry, defaultIndustryAnswer),
		types.QuestionStyle:    lookup(styleAnswers, result.Style, defaultStyleAnswer),
		types.QuestionColors:   m.colorIDs(result.Colors),
		types.QuestionDepth:    lookup(depthAnswers, result.Depth, defaultDepthAnswer),
		types.QuestionFont:     lookup(fontAnswers, result.FontStyle, defaultFontAnswer),
		types.QuestionWeight:   lookup(weightAnswers, result.FontWeight, defaultWeightAnswer),
		types.QuestionLayout:   lookup(textArrangements, result.TextArrangement, defaultTextArrangement),
	}

	if effects := effectIDs(result.Effects); len(effects) > 0 {
		a[types.QuestionEffects] = effects
	}
	if icon := iconHint(result.IconType); icon != "" {
		a[types.QuestionIcon] = icon
	}
	if name := resolveName(displayName, result.BrandName); name != "" {
		a[types.QuestionBrandName] = name
	}
	if finish := metallicFinish(result); finish != "" {
		a[types.QuestionMetallic] = finish
	}
	if glow := glowStyle(result); glow != "" {
		a[types.QuestionGlow] = glow
	}
	if p, ok := techPatterns[result.Pattern]; ok {
		a[types.QuestionPattern] = p
	}
	return a
}

// ToConfig returns the renderer configuration for result. Fields left
// empty are unset and take the renderer's own default.
func (m *Mapper) ToConfig(result types.AnalysisResult, displayName string) types.RendererConfig {
	cfg := types.RendererConfig{
		BrandName:       resolveName(displayName, result.BrandName),
		Initials:        strings.TrimSpace(result.Initials),
		TextArrangement: lookup(textArrangements, result.TextArrangement, defaultTextArrangement),
		Industry:        lookup(industryAnswers, result.Industry, defaultIndustryAnswer),
		DepthLevel:      lookup(depthLevels, result.Depth, defaultDepthLevel),
		MetallicFinish:  metallicFinish(result),
		TechGlowStyle:   glowStyle(result),
		FontStyle:       lookup(fontStyles, result.FontStyle, defaultFontStyle),
		TextWeight:      lookup(textWeights, result.FontWeight, defaultTextWeight),
		SwooshStyle:     swooshStyles[result.Style],
		FrameStyle:      frameStyles[result.FrameShape],
		IconStyle:       iconHint(result.IconType),
	}

	cfg.TextColor = m.hexAt(result.Colors, 0)
	cfg.AccentColor = m.hexAt(result.Colors, 1)
	cfg.GlowColor = m.hexAt(result.Colors, 2)

	if p, ok := techPatterns[result.Pattern]; ok {
		cfg.TechPattern = p
		cfg.PatternStyle = lookup(patternStyles, result.Depth, defaultPatternStyle)
	}

	cfg.DotGradient = result.HasEffect(types.EffectGradient)
	if result.HasEffect(types.EffectShadow) {
		cfg.ShadowStyle = shadowStyle
	}
	if result.HasEffect(types.EffectSparkle) {
		cfg.SparkleIntensity = sparkleIntensity
	}
	if result.HasEffect(types.EffectBevel) {
		cfg.BevelStyle = bevelStyle
	}
	return cfg
}

// hexAt returns the hex for colors[i], or "" when the slot is missing or
// the id has no hex.
func (m *Mapper) hexAt(colors []string, i int) string {
	if i >= len(colors) {
		return ""
	}
	hex, _ := m.tables.Hex(colors[i])
	return hex
}

// colorIDs copies the known color ids, capped at types.MaxColors.
func (m *Mapper) colorIDs(colors []string) []string {
	ids := make([]string, 0, types.MaxColors)
	for _, c := range colors {
		if !m.tables.HasColor(c) {
			continue
		}
		ids = append(ids, c)
		if len(ids) == types.MaxColors {
			break
		}
	}
	if len(ids) == 0 {
		ids = append(ids, types.DefaultColor)
	}
	return ids
}

func effectIDs(effects []types.Effect) []string {
	ids := make([]string, 0, len(effects))
	for _, e := range effects {
		ids = append(ids, string(e))
	}
	return ids
}

// metallicFinish resolves the finish in precedence order: the explicit
// metallic value, the generic metallic effect, then the frame material.
func metallicFinish(r types.AnalysisResult) string {
	if f, ok := metallicFinishes[r.Metallic]; ok {
		return f
	}
	if r.HasEffect(types.EffectMetallic) {
		return genericMetallicFinish
	}
	return frameFinishes[r.FrameMaterial]
}

// glowStyle resolves the explicit glow value, then the generic glow effect.
func glowStyle(r types.AnalysisResult) string {
	if g, ok := glowStyles[r.Glow]; ok {
		return g
	}
	if r.HasEffect(types.EffectGlow) {
		return genericGlowStyle
	}
	return ""
}

func iconHint(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" || icon == types.DefaultIconType {
		return ""
	}
	return icon
}

// resolveName prefers what the user typed over what the classifier read.
func resolveName(displayName, extracted string) string {
	if name := strings.TrimSpace(displayName); name != "" {
		return name
	}
	return strings.TrimSpace(extracted)
}
