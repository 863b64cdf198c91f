// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify turns raw vision-analysis text into a normalized
// types.AnalysisResult.
//
// A fenced JSON block in the input is authoritative: when one parses, its
// fields are applied over the defaults and the free text is ignored.
// Otherwise the lower-cased text is scanned with the keyword tables from
// package taxonomy. Classification never fails; the worst case is a record
// with every field at its default.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// Classifier scans analysis text with one set of tables. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	tables *taxonomy.Tables

	// colorPatterns[i] matches tables.Colors[i].Keyword as a whole word.
	colorPatterns []*regexp.Regexp

	frameShape    *regexp.Regexp
	frameMaterial *regexp.Regexp
	shapeByWord   map[string]string
	matByWord     map[string]string
}

// New compiles a Classifier for tables.
func New(tables *taxonomy.Tables) *Classifier {
	c := &Classifier{
		tables:        tables,
		colorPatterns: make([]*regexp.Regexp, len(tables.Colors)),
	}
	for i, ck := range tables.Colors {
		c.colorPatterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(ck.Keyword)) + `\b`)
	}
	c.frameShape, c.shapeByWord = framePattern(tables.FrameShapes, `(?:\s+|-)(?:frame|border|emblem)\b`)
	c.frameMaterial, c.matByWord = framePattern(tables.FrameMaterials, `(?:\s+[a-z]+)?\s+(?:frame|border|rim)\b`)
	return c
}

// Tables returns the tables the classifier scans with.
func (c *Classifier) Tables() *taxonomy.Tables {
	return c.tables
}

var defaultClassifier = New(taxonomy.Default())

// Classify classifies raw with the built-in tables.
func Classify(raw string) types.AnalysisResult {
	return defaultClassifier.Classify(raw)
}

// Classify returns the normalized record for raw. It never fails.
func (c *Classifier) Classify(raw string) types.AnalysisResult {
	if result, ok := c.fromStructured(raw); ok {
		return result
	}
	return c.fromText(raw)
}

// framePattern builds one alternation over every keyword in cats followed
// by suffix, and the keyword→category lookup for its first group.
func framePattern(cats []taxonomy.Category, suffix string) (*regexp.Regexp, map[string]string) {
	byWord := make(map[string]string)
	var alts []string
	for _, cat := range cats {
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(kw)
			if _, dup := byWord[kw]; dup {
				continue
			}
			byWord[kw] = cat.Name
			alts = append(alts, regexp.QuoteMeta(kw))
		}
	}
	if len(alts) == 0 {
		return nil, byWord
	}
	return regexp.MustCompile(`\b(` + strings.Join(alts, "|") + `)` + suffix), byWord
}
