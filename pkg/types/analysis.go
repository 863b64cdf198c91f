// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data shared between the classifier, mapper,
// ranker and the outer surfaces (CLI, batch, HTTP).
package types

// Industry is the brand's market category.
type Industry string

const (
	IndustryTech       Industry = "tech"
	IndustryLuxury     Industry = "luxury"
	IndustryNature     Industry = "nature"
	IndustryFood       Industry = "food"
	IndustryFinance    Industry = "finance"
	IndustryCreative   Industry = "creative"
	IndustrySports     Industry = "sports"
	IndustryRealEstate Industry = "real-estate"
	IndustryCorporate  Industry = "corporate"
)

// Style is the overall visual register of the logo.
type Style string

const (
	StyleElegant Style = "elegant"
	StyleBold    Style = "bold"
	StylePlayful Style = "playful"
	StyleOrganic Style = "organic"
	StyleModern  Style = "modern"
)

// Depth describes how three-dimensional the logo reads.
type Depth string

const (
	DepthFlat    Depth = "flat"
	DepthSubtle  Depth = "subtle"
	DepthMedium  Depth = "medium"
	DepthDeep    Depth = "deep"
	DepthExtreme Depth = "extreme"
)

// Effect is a rendering effect tag. Several may co-occur.
type Effect string

const (
	EffectMetallic Effect = "metallic"
	EffectGlow     Effect = "glow"
	EffectGradient Effect = "gradient"
	EffectShadow   Effect = "shadow"
	EffectSparkle  Effect = "sparkle"
	EffectBevel    Effect = "bevel"
)

// Metallic is a specific metal finish.
type Metallic string

const (
	MetallicNone     Metallic = "none"
	MetallicChrome   Metallic = "chrome"
	MetallicGold     Metallic = "gold"
	MetallicBronze   Metallic = "bronze"
	MetallicRoseGold Metallic = "rose-gold"
	MetallicPlatinum Metallic = "platinum"
	MetallicCopper   Metallic = "copper"
)

// Glow is a specific glow treatment.
type Glow string

const (
	GlowNone     Glow = "none"
	GlowNeon     Glow = "neon"
	GlowElectric Glow = "electric"
	GlowAurora   Glow = "aurora"
	GlowSoft     Glow = "soft"
)

// Pattern is a background or fill pattern.
type Pattern string

const (
	PatternNone      Pattern = "none"
	PatternCircuit   Pattern = "circuit"
	PatternNeural    Pattern = "neural"
	PatternGrid      Pattern = "grid"
	PatternHexagon   Pattern = "hexagon"
	PatternDotMatrix Pattern = "dot-matrix"
	PatternHalftone  Pattern = "halftone"
	PatternRadial    Pattern = "radial"
)

// FontStyle is the typographic family hint.
type FontStyle string

const (
	FontSansSerif   FontStyle = "sans-serif"
	FontSerif       FontStyle = "serif"
	FontScript      FontStyle = "script"
	FontDisplay     FontStyle = "display"
	FontMonospace   FontStyle = "monospace"
	FontHandwritten FontStyle = "handwritten"
)

// FontWeight is the typographic weight hint.
type FontWeight string

const (
	WeightLight   FontWeight = "light"
	WeightRegular FontWeight = "regular"
	WeightMedium  FontWeight = "medium"
	WeightBold    FontWeight = "bold"
	WeightBlack   FontWeight = "black"
)

// TextArrangement describes how the brand text is laid out.
type TextArrangement string

const (
	ArrangeHorizontal TextArrangement = "horizontal"
	ArrangeStacked    TextArrangement = "stacked"
	ArrangeVertical   TextArrangement = "vertical"
	ArrangeCircular   TextArrangement = "circular"
)

// FrameShape is the shape of a detected frame or emblem border.
type FrameShape string

const (
	FrameNone    FrameShape = "none"
	FrameCircle  FrameShape = "circle"
	FrameShield  FrameShape = "shield"
	FrameHexagon FrameShape = "hexagon"
	FrameSquare  FrameShape = "square"
	FrameDiamond FrameShape = "diamond"
	FrameBadge   FrameShape = "badge"
)

// FrameMaterial is the material a detected frame appears to be made of.
type FrameMaterial string

const (
	MaterialNone   FrameMaterial = "none"
	MaterialGold   FrameMaterial = "gold"
	MaterialSilver FrameMaterial = "silver"
	MaterialChrome FrameMaterial = "chrome"
	MaterialBronze FrameMaterial = "bronze"
	MaterialCopper FrameMaterial = "copper"
	MaterialWood   FrameMaterial = "wood"
	MaterialStone  FrameMaterial = "stone"
)

// Defaults applied by the classifier when nothing better is known.
const (
	DefaultIndustry        = IndustryCorporate
	DefaultStyle           = StyleModern
	DefaultColor           = "white"
	DefaultDepth           = DepthMedium
	DefaultFontStyle       = FontSansSerif
	DefaultFontWeight      = WeightBold
	DefaultIconType        = "none"
	DefaultConfidence      = 50
	DefaultTextArrangement = ArrangeHorizontal

	// MaxColors caps AnalysisResult.Colors.
	MaxColors = 3
)

// AnalysisResult is the normalized attribute record produced from one
// vision analysis. Every field is populated; Colors holds 1..MaxColors ids.
type AnalysisResult struct {
	Industry   Industry   `json:"industry" yaml:"industry"`
	Style      Style      `json:"style" yaml:"style"`
	Colors     []string   `json:"colors" yaml:"colors"`
	Depth      Depth      `json:"depth" yaml:"depth"`
	Effects    []Effect   `json:"effects" yaml:"effects"`
	Metallic   Metallic   `json:"metallic" yaml:"metallic"`
	Glow       Glow       `json:"glow" yaml:"glow"`
	FontStyle  FontStyle  `json:"fontStyle" yaml:"font_style"`
	FontWeight FontWeight `json:"fontWeight" yaml:"font_weight"`
	Pattern    Pattern    `json:"pattern" yaml:"pattern"`
	IconType   string     `json:"iconType" yaml:"icon_type"`

	// PresetMatch is a catalog preset the upstream analysis named
	// explicitly. Empty when none was named.
	PresetMatch string `json:"presetMatch,omitempty" yaml:"preset_match,omitempty"`

	// Confidence is the upstream model's self-reported confidence, 0-100.
	Confidence int `json:"confidence" yaml:"confidence"`

	BrandName       string          `json:"brandName,omitempty" yaml:"brand_name,omitempty"`
	Initials        string          `json:"initials,omitempty" yaml:"initials,omitempty"`
	TextArrangement TextArrangement `json:"textArrangement" yaml:"text_arrangement"`
	FrameShape      FrameShape      `json:"frameShape" yaml:"frame_shape"`
	FrameMaterial   FrameMaterial   `json:"frameMaterial" yaml:"frame_material"`

	// Raw is the analysis text the record was built from.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// NewAnalysisResult returns a record with every field at its default.
func NewAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Industry:        DefaultIndustry,
		Style:           DefaultStyle,
		Colors:          []string{DefaultColor},
		Depth:           DefaultDepth,
		Effects:         []Effect{},
		Metallic:        MetallicNone,
		Glow:            GlowNone,
		FontStyle:       DefaultFontStyle,
		FontWeight:      DefaultFontWeight,
		Pattern:         PatternNone,
		IconType:        DefaultIconType,
		Confidence:      DefaultConfidence,
		TextArrangement: DefaultTextArrangement,
		FrameShape:      FrameNone,
		FrameMaterial:   MaterialNone,
	}
}

// HasEffect reports whether e is among the record's effect tags.
func (r AnalysisResult) HasEffect(e Effect) bool {
	for _, have := range r.Effects {
		if have == e {
			return true
		}
	}
	return false
}
