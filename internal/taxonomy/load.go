// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Load returns the built-in tables with the YAML file at path applied on
// top. A section present in the file replaces the built-in section of the
// same name; absent sections keep their built-in values. Keywords are
// lower-cased. An empty path returns the built-in tables. The result is
// validated before it is returned.
func Load(path string) (*Tables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}
	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing tables %s: %w", path, err)
	}
	t.apply(&override)
	t.lowerKeywords()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// WriteYAML writes t to path in the format Load reads.
func (t *Tables) WriteYAML(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling tables: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// apply replaces every section of t that is set in o. Sections are
// replaced whole, so a map in o drops the keys it leaves out.
func (t *Tables) apply(o *Tables) {
	dst := reflect.ValueOf(t).Elem()
	src := reflect.ValueOf(o).Elem()
	for i := 0; i < src.NumField(); i++ {
		if f := src.Field(i); !f.IsZero() {
			dst.Field(i).Set(f)
		}
	}
}

// lowerKeywords lower-cases every keyword and marker; the classifier
// matches them against lower-cased text.
func (t *Tables) lowerKeywords() {
	for _, cats := range [][]Category{
		t.Industries, t.Styles, t.Effects, t.Metallic, t.Glow, t.Patterns,
		t.FontStyles, t.FontWeights, t.Icons, t.Layouts, t.FrameShapes, t.FrameMaterials,
	} {
		for i := range cats {
			lowerAll(cats[i].Keywords)
		}
	}
	for i := range t.Colors {
		t.Colors[i].Keyword = strings.ToLower(t.Colors[i].Keyword)
	}
	for i := range t.Depth {
		lowerAll(t.Depth[i].AnyOf)
		lowerAll(t.Depth[i].AllOf)
	}
}

func lowerAll(words []string) {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
