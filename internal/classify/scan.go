// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

var (
	confidenceRe = regexp.MustCompile(`confidence:\s*(\d+)`)
	presetRe     = regexp.MustCompile(`\bpreset(?:[ _-]?match)?\s*:\s*["'\x60]?([a-z0-9-]+)`)
	iconRe       = regexp.MustCompile(`\bicon(?:[ _-]?type)?\s*:\s*["'\x60]?([a-z][a-z0-9 -]*)`)

	// Brand text is read from the original casing.
	brandNameRe = regexp.MustCompile(`(?im)^[ \t*#>-]*brand(?:[ _-]?name)?[ \t*]*:[ \t*]*["']?([^"'\r\n*]+)`)
	initialsRe  = regexp.MustCompile(`(?i)initials[ \t*]*:[ \t*]*["']?([a-z]{1,4})\b`)
)

// fromText fills a default record by scanning the lower-cased text.
func (c *Classifier) fromText(raw string) types.AnalysisResult {
	t := c.tables
	text := strings.ToLower(raw)
	r := types.NewAnalysisResult()
	r.Raw = raw

	r.Industry = types.Industry(bestCategory(text, t.Industries, string(types.DefaultIndustry)))
	r.Style = types.Style(bestCategory(text, t.Styles, string(types.DefaultStyle)))
	r.Colors = c.scanColors(text)
	r.Depth = scanDepth(text, t.Depth)

	if v, ok := firstCategory(text, t.Metallic); ok {
		r.Metallic = types.Metallic(v)
	}
	if v, ok := firstCategory(text, t.Glow); ok {
		r.Glow = types.Glow(v)
	}
	if v, ok := firstCategory(text, t.Patterns); ok {
		r.Pattern = types.Pattern(v)
	}
	if v, ok := firstCategory(text, t.FontStyles); ok {
		r.FontStyle = types.FontStyle(v)
	}
	if v, ok := firstCategory(text, t.FontWeights); ok {
		r.FontWeight = types.FontWeight(v)
	}
	if v, ok := firstCategory(text, t.Layouts); ok {
		r.TextArrangement = types.TextArrangement(v)
	}

	r.IconType = c.scanIcon(text)
	r.PresetMatch = c.scanPreset(text)
	if n, ok := scanConfidence(text); ok {
		r.Confidence = n
	}
	r.Effects = scanEffects(text, t.Effects)

	if m := brandNameRe.FindStringSubmatch(raw); m != nil {
		r.BrandName = cleanName(m[1])
	}
	if m := initialsRe.FindStringSubmatch(raw); m != nil {
		r.Initials = cleanInitials(m[1])
	}
	if c.frameShape != nil {
		if m := c.frameShape.FindStringSubmatch(text); m != nil {
			r.FrameShape = types.FrameShape(c.shapeByWord[m[1]])
		}
	}
	if c.frameMaterial != nil {
		if m := c.frameMaterial.FindStringSubmatch(text); m != nil {
			r.FrameMaterial = types.FrameMaterial(c.matByWord[m[1]])
		}
	}

	return r
}

// bestCategory returns the category with the most keyword hits. Ties go
// to the category declared first; no hits at all return fallback.
func bestCategory(text string, cats []taxonomy.Category, fallback string) string {
	best, bestCount := fallback, 0
	for _, cat := range cats {
		count := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = cat.Name, count
		}
	}
	return best
}

// firstCategory returns the first category, in table order, with any
// keyword present in text.
func firstCategory(text string, cats []taxonomy.Category) (string, bool) {
	for _, cat := range cats {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				return cat.Name, true
			}
		}
	}
	return "", false
}

// scanColors collects distinct color ids in table order, capped at
// types.MaxColors. No match yields the default color.
func (c *Classifier) scanColors(text string) []string {
	colors := make([]string, 0, types.MaxColors)
	for i, ck := range c.tables.Colors {
		if contains(colors, ck.Color) || !c.colorPatterns[i].MatchString(text) {
			continue
		}
		colors = append(colors, ck.Color)
		if len(colors) == types.MaxColors {
			break
		}
	}
	if len(colors) == 0 {
		colors = append(colors, types.DefaultColor)
	}
	return colors
}

func scanDepth(text string, rules []taxonomy.DepthRule) types.Depth {
	for _, rule := range rules {
		for _, marker := range rule.AnyOf {
			if strings.Contains(text, marker) {
				return rule.Depth
			}
		}
		if len(rule.AllOf) > 0 && containsAll(text, rule.AllOf) {
			return rule.Depth
		}
	}
	return types.DefaultDepth
}

func containsAll(text string, markers []string) bool {
	for _, m := range markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	return true
}

// scanEffects appends one tag per effect category with any keyword
// present. Each category contributes at most once.
func scanEffects(text string, cats []taxonomy.Category) []types.Effect {
	effects := []types.Effect{}
	for _, cat := range cats {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				effects = append(effects, types.Effect(cat.Name))
				break
			}
		}
	}
	return effects
}

// scanIcon prefers an explicit "icon: ..." line and falls back to the
// icon keyword table.
func (c *Classifier) scanIcon(text string) string {
	if m := iconRe.FindStringSubmatch(text); m != nil {
		if v := normalize(m[1]); v != "" {
			return v
		}
	}
	if v, ok := firstCategory(text, c.tables.Icons); ok {
		return v
	}
	return types.DefaultIconType
}

// scanPreset prefers an explicit "preset: id" line and falls back to the
// first catalog id mentioned anywhere. Ids outside the catalog are ignored.
func (c *Classifier) scanPreset(text string) string {
	if m := presetRe.FindStringSubmatch(text); m != nil {
		if _, ok := c.tables.Preset(m[1]); ok {
			return m[1]
		}
	}
	for _, p := range c.tables.Catalog {
		if strings.Contains(text, p.ID) {
			return p.ID
		}
	}
	return ""
}

func scanConfidence(text string) (int, bool) {
	m := confidenceRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 100, true
		}
		return 0, false
	}
	return clampConfidence(n), true
}

func clampConfidence(n int) int {
	return max(0, min(100, n))
}

// cleanName trims decoration around an extracted brand name and drops
// placeholder values.
func cleanName(v string) string {
	v = strings.TrimFunc(v, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`"'*.,;:`+"`", r)
	})
	switch strings.ToLower(v) {
	case "", "none", "unknown", "n/a", "null":
		return ""
	}
	return v
}

func cleanInitials(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if len(v) > 4 {
		v = v[:4]
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return ""
		}
	}
	return v
}
