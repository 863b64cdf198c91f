// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/brand-engine/pkg/types"
)

const (
	defaultWorkers = 4
	outputSuffix   = "-recommendation"
)

// analysisExts are the input file extensions RecommendAll picks up.
var analysisExts = map[string]bool{
	".txt": true,
	".md":  true,
}

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Recommended int
	Skipped     int
	Failed      int
}

// Total returns the number of analyses processed.
func (s BatchSummary) Total() int {
	return s.Recommended + s.Skipped + s.Failed
}

// HasFailures reports whether any analysis failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

type status int

const (
	statusRecommended status = iota
	statusSkipped
	statusFailed
)

// outcome is the result of one file. Outcomes are reported in input order
// once every worker has finished, so progress output does not depend on
// scheduling.
type outcome struct {
	name   string
	status status
	err    error
	top    string
}

// job is one analysis file and where its recommendation goes.
type job struct {
	slot    int
	name    string
	inPath  string
	outPath string
}

// RecommendAll processes every *.txt and *.md analysis in cfg.InputDir and
// writes one recommendation per file to cfg.OutputDir. Files whose output
// is newer than the input are skipped. Up to cfg.Workers files are
// processed at once.
//
// Per-file failures are counted in the summary and do not stop the run.
// The returned error is non-nil only when the run itself could not proceed
// or ctx was cancelled.
func (e *Engine) RecommendAll(ctx context.Context, cfg types.BatchConfig, w io.Writer) (BatchSummary, error) {
	format, err := ParseFormat(string(cfg.Format))
	if err != nil {
		return BatchSummary{}, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BatchSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	var jobs []job
	var outcomes []outcome
	seen := make(map[string]bool)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || !analysisExts[ext] {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if seen[name] {
			outcomes = append(outcomes, outcome{name: entry.Name(), status: statusFailed, err: fmt.Errorf("duplicate analysis name %q", name)})
			continue
		}
		seen[name] = true
		jobs = append(jobs, job{
			slot:    len(outcomes),
			name:    name,
			inPath:  filepath.Join(cfg.InputDir, entry.Name()),
			outPath: filepath.Join(cfg.OutputDir, name+outputSuffix+"."+string(format)),
		})
		outcomes = append(outcomes, outcome{})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[j.slot] = e.recommendFile(j, cfg.DisplayName, format)
			return nil
		})
	}
	waitErr := g.Wait()

	var summary BatchSummary
	for _, o := range outcomes {
		if o.name == "" {
			// Never started because the run was cancelled.
			continue
		}
		switch o.status {
		case statusSkipped:
			fmt.Fprintf(w, "skipped %s\n", o.name)
			summary.Skipped++
		case statusFailed:
			fmt.Fprintf(w, "failed  %s: %v\n", o.name, o.err)
			summary.Failed++
		default:
			fmt.Fprintf(w, "recommended %s (top %s)\n", o.name, o.top)
			summary.Recommended++
		}
	}

	if waitErr != nil {
		return summary, fmt.Errorf("batch interrupted: %w", waitErr)
	}
	return summary, nil
}

// RecommendAll runs a batch with the built-in tables.
func RecommendAll(ctx context.Context, cfg types.BatchConfig, w io.Writer) (BatchSummary, error) {
	return defaultEngine.RecommendAll(ctx, cfg, w)
}

func (e *Engine) recommendFile(j job, displayName string, format types.OutputFormat) outcome {
	changed, err := hasChanged(j.inPath, j.outPath)
	if err != nil {
		return outcome{name: j.name, status: statusFailed, err: err}
	}
	if !changed {
		return outcome{name: j.name, status: statusSkipped}
	}

	raw, err := os.ReadFile(j.inPath)
	if err != nil {
		return outcome{name: j.name, status: statusFailed, err: fmt.Errorf("reading analysis %s: %w", j.inPath, err)}
	}

	rec := e.Recommend(string(raw), displayName)
	if err := writeResult(j.outPath, rec, format); err != nil {
		return outcome{name: j.name, status: statusFailed, err: fmt.Errorf("write error: %w", err)}
	}

	top := "none"
	if len(rec.Presets) > 0 {
		top = rec.Presets[0].PresetID
	}
	return outcome{name: j.name, status: statusRecommended, top: top}
}

// hasChanged reports whether the analysis file is newer than its output.
// Returns true if the output does not exist or the analysis is more recent.
func hasChanged(inPath, outPath string) (bool, error) {
	inInfo, err := os.Stat(inPath)
	if err != nil {
		return false, fmt.Errorf("stat analysis %s: %w", inPath, err)
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", outPath, err)
	}

	return inInfo.ModTime().After(outInfo.ModTime()), nil
}

func writeResult(path string, rec types.Recommendation, format types.OutputFormat) error {
	data, err := Marshal(rec, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseFormat validates an output format name. Empty means YAML.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", types.OutputYAML:
		return types.OutputYAML, nil
	case types.OutputJSON:
		return types.OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want yaml or json)", s)
	}
}

// Marshal encodes v as YAML or indented JSON.
func Marshal(v any, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling json: %w", err)
		}
		return append(data, '\n'), nil
	case types.OutputYAML, "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
