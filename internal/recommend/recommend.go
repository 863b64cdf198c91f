// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend runs the full pipeline for one analysis, or for a
// directory of them: classify the text, then map and rank the result.
package recommend

import (
	"github.com/pdiddy/brand-engine/internal/classify"
	"github.com/pdiddy/brand-engine/internal/mapper"
	"github.com/pdiddy/brand-engine/internal/rank"
	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// Engine wires the classifier, mapper and ranker to one set of tables.
// It is safe for concurrent use.
type Engine struct {
	tables     *taxonomy.Tables
	classifier *classify.Classifier
	mapper     *mapper.Mapper
	ranker     *rank.Ranker
}

// New returns an Engine for tables.
func New(tables *taxonomy.Tables) *Engine {
	return &Engine{
		tables:     tables,
		classifier: classify.New(tables),
		mapper:     mapper.New(tables),
		ranker:     rank.New(tables),
	}
}

// Tables returns the tables the engine runs with.
func (e *Engine) Tables() *taxonomy.Tables {
	return e.tables
}

// Classify returns the normalized record for raw.
func (e *Engine) Classify(raw string) types.AnalysisResult {
	return e.classifier.Classify(raw)
}

// Prompt returns the vision-analysis prompt for the engine's tables.
func (e *Engine) Prompt(brandHint string) (string, error) {
	return e.classifier.RenderPrompt(brandHint)
}

// Recommend classifies raw once and derives answers, config and the preset
// ranking from the same record.
func (e *Engine) Recommend(raw, displayName string) types.Recommendation {
	result := e.classifier.Classify(raw)
	return types.Recommendation{
		Analysis: result,
		Answers:  e.mapper.ToAnswers(result, displayName),
		Config:   e.mapper.ToConfig(result, displayName),
		Presets:  e.ranker.Rank(result),
	}
}

var defaultEngine = New(taxonomy.Default())

// Recommend runs the pipeline with the built-in tables.
func Recommend(raw, displayName string) types.Recommendation {
	return defaultEngine.Recommend(raw, displayName)
}
