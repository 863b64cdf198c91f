// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Preset is one entry in the renderer's preset catalog.
type Preset struct {
	// ID is the stable identifier the renderer loads (e.g. "luxury-crown").
	ID string `json:"id" yaml:"id"`

	// Category groups presets for display; it matches an Industry or Style value.
	Category string `json:"category" yaml:"category"`

	// Name is the display label.
	Name string `json:"name" yaml:"name"`

	// Description is a one-line summary shown next to the preset.
	Description string `json:"description" yaml:"description"`
}

// MaxPresetScore is the ceiling applied to returned preset scores so the
// UI can show them as a 0-100% fit.
const MaxPresetScore = 20

// ScoredPreset is a ranked recommendation.
type ScoredPreset struct {
	PresetID string `json:"presetId" yaml:"preset_id"`

	// Score is in [0, MaxPresetScore].
	Score int `json:"score" yaml:"score"`
}

// Percent converts the score into the 0-100 display scale.
func (p ScoredPreset) Percent() int {
	return p.Score * 100 / MaxPresetScore
}

// Answers is the questionnaire answer set keyed by question identifier.
// Values are either string or []string.
type Answers map[string]any

// Questionnaire question identifiers.
const (
	QuestionIndustry  = "industry"
	QuestionStyle     = "style"
	QuestionColors    = "colors"
	QuestionDepth     = "depth"
	QuestionIcon      = "icon"
	QuestionBrandName = "brandName"
	QuestionEffects   = "effects"
	QuestionFont      = "font"
	QuestionWeight    = "weight"
	QuestionMetallic  = "metallic"
	QuestionGlow      = "glow"
	QuestionPattern   = "pattern"
	QuestionLayout    = "layout"
)

// RendererConfig is the flat configuration record handed to the renderer.
// Empty fields are unset and the renderer applies its own default.
type RendererConfig struct {
	BrandName        string `json:"brandName,omitempty" yaml:"brand_name,omitempty"`
	Initials         string `json:"initials,omitempty" yaml:"initials,omitempty"`
	TextArrangement  string `json:"textArrangement,omitempty" yaml:"text_arrangement,omitempty"`
	Industry         string `json:"industry,omitempty" yaml:"industry,omitempty"`
	DepthLevel       int    `json:"depthLevel,omitempty" yaml:"depth_level,omitempty"`
	TextColor        string `json:"textColor,omitempty" yaml:"text_color,omitempty"`
	AccentColor      string `json:"accentColor,omitempty" yaml:"accent_color,omitempty"`
	GlowColor        string `json:"glowColor,omitempty" yaml:"glow_color,omitempty"`
	MetallicFinish   string `json:"metallicFinish,omitempty" yaml:"metallic_finish,omitempty"`
	TechGlowStyle    string `json:"techGlowStyle,omitempty" yaml:"tech_glow_style,omitempty"`
	FontStyle        string `json:"fontStyle,omitempty" yaml:"font_style,omitempty"`
	TextWeight       string `json:"textWeight,omitempty" yaml:"text_weight,omitempty"`
	TechPattern      string `json:"techPattern,omitempty" yaml:"tech_pattern,omitempty"`
	PatternStyle     string `json:"patternStyle,omitempty" yaml:"pattern_style,omitempty"`
	DotGradient      bool   `json:"dotGradient,omitempty" yaml:"dot_gradient,omitempty"`
	ShadowStyle      string `json:"shadowStyle,omitempty" yaml:"shadow_style,omitempty"`
	SparkleIntensity string `json:"sparkleIntensity,omitempty" yaml:"sparkle_intensity,omitempty"`
	BevelStyle       string `json:"bevelStyle,omitempty" yaml:"bevel_style,omitempty"`
	SwooshStyle      string `json:"swooshStyle,omitempty" yaml:"swoosh_style,omitempty"`
	FrameStyle       string `json:"frameStyle,omitempty" yaml:"frame_style,omitempty"`
	IconStyle        string `json:"iconStyle,omitempty" yaml:"icon_style,omitempty"`
}

// Recommendation bundles everything derived from one analysis.
type Recommendation struct {
	Analysis AnalysisResult `json:"analysis" yaml:"analysis"`
	Answers  Answers        `json:"answers" yaml:"answers"`
	Config   RendererConfig `json:"config" yaml:"config"`
	Presets  []ScoredPreset `json:"presets" yaml:"presets"`
}
