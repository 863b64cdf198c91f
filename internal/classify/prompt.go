// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
)

// analysisPromptTmpl is the instruction sent alongside a logo image to the
// upstream vision model. It asks for prose plus one fenced JSON block whose
// keys and values match what Classify reads.
var analysisPromptTmpl = template.Must(template.New("analysis").Funcs(template.FuncMap{
	"names": categoryNames,
	"join":  strings.Join,
}).Parse(`You are a brand identity analyst. Study the attached logo and describe it for a logo generator.

Write a short paragraph covering industry, visual style, main colors, typography, effects and any frame or emblem around the mark. Tag the perceived depth with exactly one of [flat], [subtle], [medium], [deep] or [extreme].
{{- if .BrandHint}}

The brand is called "{{.BrandHint}}".
{{- end}}

Then add a fenced JSON block with these fields. Leave out any field you cannot judge; "none" is only valid where it is listed:
- industry: one of {{join (names .Tables.Industries) ", "}}
- style: one of {{join (names .Tables.Styles) ", "}}
- colors: up to 3 of {{join .Colors ", "}}, most prominent first
- depth: one of flat, subtle, medium, deep, extreme
- effects: any of {{join (names .Tables.Effects) ", "}}
- metallic: one of none, {{join (names .Tables.Metallic) ", "}}
- glow: one of none, {{join (names .Tables.Glow) ", "}}
- pattern: one of none, {{join (names .Tables.Patterns) ", "}}
- fontStyle: one of {{join (names .Tables.FontStyles) ", "}}
- fontWeight: one of {{join (names .Tables.FontWeights) ", "}}
- iconType: a one or two word description of the main symbol
- brandName, initials: the text in the logo, if readable
- textArrangement: one of {{join (names .Tables.Layouts) ", "}}
- frameShape: one of none, {{join (names .Tables.FrameShapes) ", "}}
- frameMaterial: one of none, {{join (names .Tables.FrameMaterials) ", "}}
- presetMatch: the closest preset id, only if one clearly fits:
{{- range .Tables.Catalog}}
    {{.ID}}: {{.Description}}
{{- end}}
- confidence: an integer from 0 to 100

Example:
` + "```json" + `
{"industry": "luxury", "style": "elegant", "colors": ["gold", "black"], "depth": "deep", "effects": ["metallic", "bevel"], "metallic": "gold", "glow": "none", "pattern": "none", "fontStyle": "serif", "fontWeight": "bold", "iconType": "crown", "brandName": "Aurum", "initials": "A", "textArrangement": "stacked", "frameShape": "circle", "frameMaterial": "gold", "presetMatch": "luxury-crown", "confidence": 85}
` + "```" + `
`))

// RenderPrompt returns the vision-analysis prompt for the classifier's
// tables. brandHint is the name the user typed, if any.
func (c *Classifier) RenderPrompt(brandHint string) (string, error) {
	data := struct {
		Tables    *taxonomy.Tables
		Colors    []string
		BrandHint string
	}{
		Tables:    c.tables,
		Colors:    colorIDs(c.tables),
		BrandHint: strings.TrimSpace(brandHint),
	}

	var buf bytes.Buffer
	if err := analysisPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func categoryNames(cats []taxonomy.Category) []string {
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = cat.Name
	}
	return names
}

// colorIDs lists the color vocabulary in keyword-table order.
func colorIDs(t *taxonomy.Tables) []string {
	var ids []string
	for _, ck := range t.Colors {
		if !contains(ids, ck.Color) {
			ids = append(ids, ck.Color)
		}
	}
	return ids
}
