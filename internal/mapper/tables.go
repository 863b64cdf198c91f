// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import "github.com/pdiddy/brand-engine/pkg/types"

// Questionnaire identifiers. Unknown inputs fall back to the default beside
// each table.
var (
	industryAnswers = map[types.Industry]string{
		types.IndustryTech:       "tech",
		types.IndustryLuxury:     "luxury",
		types.IndustryNature:     "eco",
		types.IndustryFood:       "food",
		types.IndustryFinance:    "finance",
		types.IndustryCreative:   "creative",
		types.IndustrySports:     "sports",
		types.IndustryRealEstate: "realestate",
		types.IndustryCorporate:  "business",
	}
	defaultIndustryAnswer = "tech"

	styleAnswers = map[types.Style]string{
		types.StyleElegant: "elegant",
		types.StyleBold:    "bold",
		types.StylePlayful: "playful",
		types.StyleOrganic: "natural",
		types.StyleModern:  "minimal",
	}
	defaultStyleAnswer = "minimal"

	depthAnswers = map[types.Depth]string{
		types.DepthFlat:    "flat",
		types.DepthSubtle:  "light",
		types.DepthMedium:  "medium",
		types.DepthDeep:    "strong",
		types.DepthExtreme: "dramatic",
	}
	defaultDepthAnswer = "medium"

	fontAnswers = map[types.FontStyle]string{
		types.FontSansSerif:   "sans",
		types.FontSerif:       "serif",
		types.FontScript:      "script",
		types.FontDisplay:     "display",
		types.FontMonospace:   "mono",
		types.FontHandwritten: "handwritten",
	}
	defaultFontAnswer = "sans"

	weightAnswers = map[types.FontWeight]string{
		types.WeightLight:   "300",
		types.WeightRegular: "400",
		types.WeightMedium:  "500",
		types.WeightBold:    "700",
		types.WeightBlack:   "900",
	}
	defaultWeightAnswer = "700"
)

// Renderer identifiers.
var (
	// depthLevels is coarser than the questionnaire's depth scale and
	// numeric.
	depthLevels = map[types.Depth]int{
		types.DepthFlat:    1,
		types.DepthSubtle:  2,
		types.DepthMedium:  3,
		types.DepthDeep:    4,
		types.DepthExtreme: 5,
	}
	defaultDepthLevel = 3

	metallicFinishes = map[types.Metallic]string{
		types.MetallicChrome:   "chrome",
		types.MetallicGold:     "gold",
		types.MetallicBronze:   "bronze",
		types.MetallicRoseGold: "rose-gold",
		types.MetallicPlatinum: "platinum",
		types.MetallicCopper:   "copper",
	}
	genericMetallicFinish = "chrome"

	// Wood and stone frames carry no finish.
	frameFinishes = map[types.FrameMaterial]string{
		types.MaterialGold:   "gold",
		types.MaterialSilver: "platinum",
		types.MaterialChrome: "chrome",
		types.MaterialBronze: "bronze",
		types.MaterialCopper: "copper",
	}

	glowStyles = map[types.Glow]string{
		types.GlowNeon:     "neon",
		types.GlowElectric: "electric",
		types.GlowAurora:   "aurora",
		types.GlowSoft:     "soft",
	}
	genericGlowStyle = "soft"

	techPatterns = map[types.Pattern]string{
		types.PatternCircuit:   "circuit",
		types.PatternNeural:    "neural-net",
		types.PatternGrid:      "grid",
		types.PatternHexagon:   "hex-grid",
		types.PatternDotMatrix: "dots",
		types.PatternHalftone:  "halftone",
		types.PatternRadial:    "radial-burst",
	}

	// patternStyles sets pattern intensity from depth.
	patternStyles = map[types.Depth]string{
		types.DepthFlat:    "subtle",
		types.DepthSubtle:  "subtle",
		types.DepthMedium:  "standard",
		types.DepthDeep:    "bold",
		types.DepthExtreme: "bold",
	}
	defaultPatternStyle = "standard"

	fontStyles = map[types.FontStyle]string{
		types.FontSansSerif:   "sans-serif",
		types.FontSerif:       "serif",
		types.FontScript:      "script",
		types.FontDisplay:     "display",
		types.FontMonospace:   "monospace",
		types.FontHandwritten: "handwritten",
	}
	defaultFontStyle = "sans-serif"

	textWeights = map[types.FontWeight]string{
		types.WeightLight:   "light",
		types.WeightRegular: "regular",
		types.WeightMedium:  "medium",
		types.WeightBold:    "bold",
		types.WeightBlack:   "black",
	}
	defaultTextWeight = "bold"

	textArrangements = map[types.TextArrangement]string{
		types.ArrangeHorizontal: "horizontal",
		types.ArrangeStacked:    "stacked",
		types.ArrangeVertical:   "vertical",
		types.ArrangeCircular:   "circular",
	}
	defaultTextArrangement = "horizontal"

	// Modern has no swoosh.
	swooshStyles = map[types.Style]string{
		types.StyleBold:    "dynamic",
		types.StylePlayful: "wave",
		types.StyleOrganic: "leaf",
		types.StyleElegant: "ribbon",
	}

	frameStyles = map[types.FrameShape]string{
		types.FrameCircle:  "ring",
		types.FrameShield:  "crest",
		types.FrameHexagon: "hex-badge",
		types.FrameSquare:  "plate",
		types.FrameDiamond: "diamond",
		types.FrameBadge:   "badge",
	}
)

const (
	shadowStyle      = "drop"
	sparkleIntensity = "medium"
	bevelStyle       = "classic"
)

// lookup returns m[k], or fallback when k has no entry.
func lookup[K comparable, V any](m map[K]V, k K, fallback V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return fallback
}
