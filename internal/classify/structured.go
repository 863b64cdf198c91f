// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

var fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\r?\n?(.*?)```")

// structuredFields holds the fields an upstream model may emit, named as
// in AnalysisResult. Pointers distinguish "absent" from "empty".
type structuredFields struct {
	Industry        *string
	Style           *string
	Colors          []string
	Depth           *string
	Effects         []string
	Metallic        *string
	Glow            *string
	FontStyle       *string
	FontWeight      *string
	Pattern         *string
	IconType        *string
	PresetMatch     *string
	Confidence      *float64
	BrandName       *string
	Initials        *string
	TextArrangement *string
	FrameShape      *string
	FrameMaterial   *string
}

// fromStructured looks for the first fenced block holding a JSON object
// and applies it over the defaults. ok is false when no block parses.
func (c *Classifier) fromStructured(raw string) (types.AnalysisResult, bool) {
	for _, m := range fencedBlockRe.FindAllStringSubmatch(raw, -1) {
		body := strings.TrimSpace(m[1])
		if !strings.HasPrefix(body, "{") {
			continue
		}
		f, ok := decodeStructured(body)
		if !ok {
			continue
		}
		result := c.applyStructured(f)
		result.Raw = raw
		return result, true
	}
	return types.AnalysisResult{}, false
}

// decodeStructured reads a JSON object field by field. A field holding
// the wrong JSON type is treated as absent; only a body that is not a
// JSON object fails.
func decodeStructured(body string) (structuredFields, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil || obj == nil {
		return structuredFields{}, false
	}
	return structuredFields{
		Industry:        jsonString(obj, "industry"),
		Style:           jsonString(obj, "style"),
		Colors:          jsonStrings(obj, "colors"),
		Depth:           jsonString(obj, "depth"),
		Effects:         jsonStrings(obj, "effects"),
		Metallic:        jsonString(obj, "metallic"),
		Glow:            jsonString(obj, "glow"),
		FontStyle:       jsonString(obj, "fontStyle"),
		FontWeight:      jsonString(obj, "fontWeight"),
		Pattern:         jsonString(obj, "pattern"),
		IconType:        jsonString(obj, "iconType"),
		PresetMatch:     jsonString(obj, "presetMatch"),
		Confidence:      jsonNumber(obj, "confidence"),
		BrandName:       jsonString(obj, "brandName"),
		Initials:        jsonString(obj, "initials"),
		TextArrangement: jsonString(obj, "textArrangement"),
		FrameShape:      jsonString(obj, "frameShape"),
		FrameMaterial:   jsonString(obj, "frameMaterial"),
	}, true
}

func jsonString(obj map[string]json.RawMessage, key string) *string {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// jsonStrings accepts an array (non-string items are skipped) or a single
// string, which is read as a one-element list.
func jsonStrings(obj map[string]json.RawMessage, key string) []string {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			return nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if json.Unmarshal(item, &s) == nil {
				out = append(out, s)
			}
		}
		return out
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	return nil
}

// jsonNumber accepts a JSON number or a numeric string such as "85" or "85%".
func jsonNumber(obj map[string]json.RawMessage, key string) *float64 {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")), 64)
	if err != nil {
		return nil
	}
	return &n
}

// applyStructured copies every present, in-vocabulary field of f onto a
// default record. Values outside the vocabulary leave the default in place.
func (c *Classifier) applyStructured(f structuredFields) types.AnalysisResult {
	t := c.tables
	r := types.NewAnalysisResult()

	if v, ok := vocab(f.Industry, t.Industries, noNone); ok {
		r.Industry = types.Industry(v)
	}
	if v, ok := vocab(f.Style, t.Styles, noNone); ok {
		r.Style = types.Style(v)
	}
	if f.Colors != nil {
		if colors := c.normalizeColors(f.Colors); len(colors) > 0 {
			r.Colors = colors
		}
	}
	if f.Depth != nil {
		switch d := types.Depth(normalize(*f.Depth)); d {
		case types.DepthFlat, types.DepthSubtle, types.DepthMedium, types.DepthDeep, types.DepthExtreme:
			r.Depth = d
		}
	}
	if f.Effects != nil {
		r.Effects = normalizeEffects(f.Effects, t.Effects)
	}
	if v, ok := vocab(f.Metallic, t.Metallic, allowNone); ok {
		r.Metallic = types.Metallic(v)
	}
	if v, ok := vocab(f.Glow, t.Glow, allowNone); ok {
		r.Glow = types.Glow(v)
	}
	if v, ok := vocab(f.FontStyle, t.FontStyles, noNone); ok {
		r.FontStyle = types.FontStyle(v)
	}
	if v, ok := vocab(f.FontWeight, t.FontWeights, noNone); ok {
		r.FontWeight = types.FontWeight(v)
	}
	if v, ok := vocab(f.Pattern, t.Patterns, allowNone); ok {
		r.Pattern = types.Pattern(v)
	}
	if f.IconType != nil {
		if v := normalize(*f.IconType); v != "" {
			r.IconType = v
		}
	}
	if f.PresetMatch != nil {
		if id := normalize(*f.PresetMatch); id != "" {
			if _, ok := t.Preset(id); ok {
				r.PresetMatch = id
			}
		}
	}
	if f.Confidence != nil && !math.IsNaN(*f.Confidence) {
		r.Confidence = clampConfidence(int(math.Round(math.Max(-1, math.Min(101, *f.Confidence)))))
	}
	if f.BrandName != nil {
		r.BrandName = cleanName(*f.BrandName)
	}
	if f.Initials != nil {
		r.Initials = cleanInitials(*f.Initials)
	}
	if v, ok := vocab(f.TextArrangement, t.Layouts, noNone); ok {
		r.TextArrangement = types.TextArrangement(v)
	}
	if v, ok := vocab(f.FrameShape, t.FrameShapes, allowNone); ok {
		r.FrameShape = types.FrameShape(v)
	}
	if v, ok := vocab(f.FrameMaterial, t.FrameMaterials, allowNone); ok {
		r.FrameMaterial = types.FrameMaterial(v)
	}
	return r
}

const (
	noNone    = false
	allowNone = true
)

// vocab reports the normalized value of p when it names a category in
// cats, or is "none" and the field's closed set includes none.
func vocab(p *string, cats []taxonomy.Category, acceptNone bool) (string, bool) {
	if p == nil {
		return "", false
	}
	v := normalize(*p)
	if v == "none" {
		return v, acceptNone
	}
	for _, cat := range cats {
		if cat.Name == v {
			return v, true
		}
	}
	return "", false
}

// normalizeColors keeps known color ids in order, without duplicates, up
// to types.MaxColors.
func (c *Classifier) normalizeColors(in []string) []string {
	out := make([]string, 0, types.MaxColors)
	for _, raw := range in {
		id := normalize(raw)
		if !c.tables.HasColor(id) || contains(out, id) {
			continue
		}
		out = append(out, id)
		if len(out) == types.MaxColors {
			break
		}
	}
	return out
}

func normalizeEffects(in []string, cats []taxonomy.Category) []types.Effect {
	out := []types.Effect{}
	for _, cat := range cats {
		for _, raw := range in {
			if normalize(raw) == cat.Name {
				out = append(out, types.Effect(cat.Name))
				break
			}
		}
	}
	return out
}

// normalize lower-cases v, trims it and turns inner spaces and
// underscores into hyphens so "Rose Gold" and "rose_gold" both read as
// "rose-gold".
func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == ' ' || r == '_' || r == '\t'
	}), "-")
}

func contains(list []string, v string) bool {
	for _, have := range list {
		if have == v {
			return true
		}
	}
	return false
}
