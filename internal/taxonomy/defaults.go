// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import "github.com/pdiddy/brand-engine/pkg/types"

// Default returns a fresh copy of the built-in tables. Callers may modify
// the copy without affecting other callers.
func Default() *Tables {
	return &Tables{
		Industries:       defaultIndustries(),
		Styles:           defaultStyles(),
		Colors:           defaultColorKeywords(),
		ColorHex:         defaultColorHex(),
		Depth:            defaultDepthRules(),
		Effects:          defaultEffects(),
		Metallic:         defaultMetallic(),
		Glow:             defaultGlow(),
		Patterns:         defaultPatterns(),
		FontStyles:       defaultFontStyles(),
		FontWeights:      defaultFontWeights(),
		Icons:            defaultIcons(),
		Layouts:          defaultLayouts(),
		FrameShapes:      defaultFrameShapes(),
		FrameMaterials:   defaultFrameMaterials(),
		Catalog:          defaultCatalog(),
		IndustryPresets:  defaultIndustryPresets(),
		StylePresets:     defaultStylePresets(),
		PatternPresets:   defaultPatternPresets(),
		MetallicBonuses:  defaultMetallicBonuses(),
		GlowBonuses:      defaultGlowBonuses(),
		ColorBonuses:     defaultColorBonuses(),
		DefaultPresets:   []string{"modern-minimal", "corporate-clean", "tech-gradient", "elegant-serif"},
		FallbackIndustry: string(types.IndustryCorporate),
		FallbackStyle:    string(types.StyleModern),
	}
}

// Keywords are matched as substrings of the lower-cased analysis text.
func defaultIndustries() []Category {
	return []Category{
		{Name: string(types.IndustryTech), Keywords: []string{"tech", "digital", "software", "cyber", "futuristic", "data", "network", "startup", "computer", "robot"}},
		{Name: string(types.IndustryLuxury), Keywords: []string{"luxury", "premium", "exclusive", "jewel", "royal", "high-end", "boutique", "fashion", "opulent"}},
		{Name: string(types.IndustryNature), Keywords: []string{"nature", "leaf", "leaves", "eco", "plant", "tree", "garden", "environment", "sustainab", "forest"}},
		{Name: string(types.IndustryFood), Keywords: []string{"food", "restaurant", "cafe", "coffee", "bakery", "kitchen", "chef", "culinary", "beverage", "pizza"}},
		{Name: string(types.IndustryFinance), Keywords: []string{"finance", "financial", "bank", "invest", "capital", "wealth", "insurance", "accounting", "trading"}},
		{Name: string(types.IndustryCreative), Keywords: []string{"creative", "design studio", "studio", "artist", "music", "media", "agency", "photography", "gallery"}},
		{Name: string(types.IndustrySports), Keywords: []string{"sport", "fitness", "gym", "athlet", "team", "esports", "racing", "league", "trainer"}},
		{Name: string(types.IndustryRealEstate), Keywords: []string{"real estate", "real-estate", "property", "realty", "housing", "construction", "architect", "skyline"}},
		{Name: string(types.IndustryCorporate), Keywords: []string{"corporate", "business", "consulting", "professional", "enterprise", "company", "firm", "solutions"}},
	}
}

func defaultStyles() []Category {
	return []Category{
		{Name: string(types.StyleElegant), Keywords: []string{"elegant", "sophisticated", "refined", "graceful", "classic", "luxurious", "ornate", "timeless"}},
		{Name: string(types.StyleBold), Keywords: []string{"bold", "strong", "powerful", "heavy", "impact", "aggressive", "dynamic", "striking"}},
		{Name: string(types.StylePlayful), Keywords: []string{"playful", "fun", "whimsical", "cartoon", "friendly", "bubbly", "cute", "quirky"}},
		{Name: string(types.StyleOrganic), Keywords: []string{"organic", "natural", "hand-drawn", "flowing", "earthy", "botanical", "rustic"}},
		{Name: string(types.StyleModern), Keywords: []string{"modern", "minimal", "clean", "sleek", "geometric", "contemporary", "simple"}},
	}
}

// Color keywords are matched as whole words, in this order.
func defaultColorKeywords() []ColorKeyword {
	return []ColorKeyword{
		{Keyword: "gold", Color: "gold"},
		{Keyword: "golden", Color: "gold"},
		{Keyword: "silver", Color: "silver"},
		{Keyword: "black", Color: "black"},
		{Keyword: "white", Color: "white"},
		{Keyword: "red", Color: "red"},
		{Keyword: "crimson", Color: "red"},
		{Keyword: "orange", Color: "orange"},
		{Keyword: "yellow", Color: "yellow"},
		{Keyword: "green", Color: "green"},
		{Keyword: "emerald", Color: "green"},
		{Keyword: "teal", Color: "teal"},
		{Keyword: "cyan", Color: "cyan"},
		{Keyword: "turquoise", Color: "cyan"},
		{Keyword: "blue", Color: "blue"},
		{Keyword: "navy", Color: "navy"},
		{Keyword: "purple", Color: "purple"},
		{Keyword: "violet", Color: "purple"},
		{Keyword: "magenta", Color: "pink"},
		{Keyword: "pink", Color: "pink"},
	}
}

func defaultColorHex() map[string]string {
	return map[string]string{
		"gold":   "#D4AF37",
		"silver": "#C0C0C0",
		"black":  "#000000",
		"white":  "#FFFFFF",
		"red":    "#E53935",
		"orange": "#FB8C00",
		"yellow": "#FDD835",
		"green":  "#43A047",
		"teal":   "#00897B",
		"cyan":   "#00E5FF",
		"blue":   "#1E88E5",
		"navy":   "#1A237E",
		"purple": "#8E24AA",
		"pink":   "#EC407A",
	}
}

// First matching rule wins.
func defaultDepthRules() []DepthRule {
	return []DepthRule{
		{Depth: types.DepthFlat, AnyOf: []string{"[flat]"}, AllOf: []string{"flat", "2d"}},
		{Depth: types.DepthSubtle, AnyOf: []string{"[subtle]"}},
		{Depth: types.DepthDeep, AnyOf: []string{"[deep]"}},
		{Depth: types.DepthExtreme, AnyOf: []string{"[extreme]"}},
		{Depth: types.DepthMedium, AnyOf: []string{"[medium]", "moderate"}},
	}
}

func defaultEffects() []Category {
	return []Category{
		{Name: string(types.EffectMetallic), Keywords: []string{"metallic", "metal"}},
		{Name: string(types.EffectGlow), Keywords: []string{"glow", "neon", "luminous"}},
		{Name: string(types.EffectGradient), Keywords: []string{"gradient", "ombre"}},
		{Name: string(types.EffectShadow), Keywords: []string{"shadow"}},
		{Name: string(types.EffectSparkle), Keywords: []string{"sparkle", "glitter", "shimmer"}},
		{Name: string(types.EffectBevel), Keywords: []string{"bevel", "emboss"}},
	}
}

// Chrome is checked before gold, and rose gold before plain gold.
func defaultMetallic() []Category {
	return []Category{
		{Name: string(types.MetallicChrome), Keywords: []string{"chrome", "chromium", "mirror finish"}},
		{Name: string(types.MetallicRoseGold), Keywords: []string{"rose gold", "rose-gold"}},
		{Name: string(types.MetallicGold), Keywords: []string{"gold"}},
		{Name: string(types.MetallicBronze), Keywords: []string{"bronze"}},
		{Name: string(types.MetallicPlatinum), Keywords: []string{"platinum"}},
		{Name: string(types.MetallicCopper), Keywords: []string{"copper"}},
	}
}

func defaultGlow() []Category {
	return []Category{
		{Name: string(types.GlowNeon), Keywords: []string{"neon"}},
		{Name: string(types.GlowElectric), Keywords: []string{"electric"}},
		{Name: string(types.GlowAurora), Keywords: []string{"aurora"}},
		{Name: string(types.GlowSoft), Keywords: []string{"soft glow", "halo", "gentle glow"}},
	}
}

func defaultPatterns() []Category {
	return []Category{
		{Name: string(types.PatternCircuit), Keywords: []string{"circuit"}},
		{Name: string(types.PatternNeural), Keywords: []string{"neural", "neuron"}},
		{Name: string(types.PatternGrid), Keywords: []string{"grid"}},
		{Name: string(types.PatternHexagon), Keywords: []string{"hexagon pattern", "hexagonal pattern", "honeycomb"}},
		{Name: string(types.PatternDotMatrix), Keywords: []string{"dot matrix", "dot-matrix", "dotted"}},
		{Name: string(types.PatternHalftone), Keywords: []string{"halftone"}},
		{Name: string(types.PatternRadial), Keywords: []string{"radial", "sunburst"}},
	}
}

// sans-serif precedes serif because "serif" is a substring of it.
func defaultFontStyles() []Category {
	return []Category{
		{Name: string(types.FontSansSerif), Keywords: []string{"sans-serif", "sans serif", "grotesk"}},
		{Name: string(types.FontSerif), Keywords: []string{"serif"}},
		{Name: string(types.FontScript), Keywords: []string{"script", "calligraph", "cursive"}},
		{Name: string(types.FontDisplay), Keywords: []string{"display font", "decorative font", "display typeface"}},
		{Name: string(types.FontMonospace), Keywords: []string{"monospace", "monospaced"}},
		{Name: string(types.FontHandwritten), Keywords: []string{"handwritten", "hand-lettered", "brush lettering"}},
	}
}

func defaultFontWeights() []Category {
	return []Category{
		{Name: string(types.WeightBlack), Keywords: []string{"extra bold", "extra-bold", "ultra bold", "heavy weight", "black weight"}},
		{Name: string(types.WeightLight), Keywords: []string{"thin", "light weight", "lightweight", "hairline"}},
		{Name: string(types.WeightMedium), Keywords: []string{"medium weight", "semi-bold", "semibold"}},
		{Name: string(types.WeightRegular), Keywords: []string{"regular weight", "normal weight", "book weight"}},
		{Name: string(types.WeightBold), Keywords: []string{"bold"}},
	}
}

func defaultIcons() []Category {
	return []Category{
		{Name: "crown", Keywords: []string{"crown", "tiara"}},
		{Name: "shield", Keywords: []string{"shield", "crest"}},
		{Name: "leaf", Keywords: []string{"leaf", "leaves", "sprout"}},
		{Name: "star", Keywords: []string{"star"}},
		{Name: "lightning", Keywords: []string{"lightning", "thunderbolt"}},
		{Name: "globe", Keywords: []string{"globe", "planet"}},
		{Name: "mountain", Keywords: []string{"mountain", "peak"}},
		{Name: "animal", Keywords: []string{"lion", "eagle", "wolf", "horse", "bird"}},
		{Name: "monogram", Keywords: []string{"monogram", "lettermark"}},
	}
}

func defaultLayouts() []Category {
	return []Category{
		{Name: string(types.ArrangeStacked), Keywords: []string{"stacked", "two lines", "two-line"}},
		{Name: string(types.ArrangeVertical), Keywords: []string{"vertical text", "vertically"}},
		{Name: string(types.ArrangeCircular), Keywords: []string{"circular text", "text on a circle", "around the circle", "curved text"}},
		{Name: string(types.ArrangeHorizontal), Keywords: []string{"horizontal", "single line", "inline"}},
	}
}

func defaultFrameShapes() []Category {
	return []Category{
		{Name: string(types.FrameCircle), Keywords: []string{"circle", "circular", "round"}},
		{Name: string(types.FrameShield), Keywords: []string{"shield"}},
		{Name: string(types.FrameHexagon), Keywords: []string{"hexagon", "hexagonal"}},
		{Name: string(types.FrameSquare), Keywords: []string{"square", "rectangular"}},
		{Name: string(types.FrameDiamond), Keywords: []string{"diamond"}},
		{Name: string(types.FrameBadge), Keywords: []string{"badge"}},
	}
}

func defaultFrameMaterials() []Category {
	return []Category{
		{Name: string(types.MaterialGold), Keywords: []string{"gold", "golden", "gilded"}},
		{Name: string(types.MaterialSilver), Keywords: []string{"silver"}},
		{Name: string(types.MaterialChrome), Keywords: []string{"chrome"}},
		{Name: string(types.MaterialBronze), Keywords: []string{"bronze"}},
		{Name: string(types.MaterialCopper), Keywords: []string{"copper"}},
		{Name: string(types.MaterialWood), Keywords: []string{"wood", "wooden"}},
		{Name: string(types.MaterialStone), Keywords: []string{"stone", "marble"}},
	}
}
