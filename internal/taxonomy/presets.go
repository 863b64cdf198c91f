// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import "github.com/pdiddy/brand-engine/pkg/types"

func defaultCatalog() []types.Preset {
	return []types.Preset{
		{ID: "tech-circuit", Category: "tech", Name: "Circuit Board", Description: "Traced circuitry behind crisp sans lettering"},
		{ID: "tech-neon", Category: "tech", Name: "Neon Grid", Description: "Electric neon strokes on a dark field"},
		{ID: "tech-gradient", Category: "tech", Name: "Tech Gradient", Description: "Smooth blue-to-violet gradient wordmark"},
		{ID: "tech-hologram", Category: "tech", Name: "Hologram", Description: "Iridescent chrome with a holographic sheen"},
		{ID: "luxury-gold", Category: "luxury", Name: "Gold Foil", Description: "Polished gold foil on deep black"},
		{ID: "luxury-crown", Category: "luxury", Name: "Royal Crown", Description: "Crowned monogram with fine serif type"},
		{ID: "luxury-chrome", Category: "luxury", Name: "Mirror Chrome", Description: "High-polish chrome lettering with bevel"},
		{ID: "luxury-emblem", Category: "luxury", Name: "Heritage Emblem", Description: "Circular emblem with radial guilloche"},
		{ID: "nature-leaf", Category: "nature", Name: "Fresh Leaf", Description: "Leaf mark in living greens"},
		{ID: "nature-organic", Category: "nature", Name: "Organic Form", Description: "Hand-drawn shapes and earthy tones"},
		{ID: "food-badge", Category: "food", Name: "Bistro Badge", Description: "Round badge with warm, appetizing colors"},
		{ID: "food-script", Category: "food", Name: "Cafe Script", Description: "Flowing script over a soft backdrop"},
		{ID: "finance-shield", Category: "finance", Name: "Trust Shield", Description: "Solid shield mark in navy and silver"},
		{ID: "finance-monogram", Category: "finance", Name: "Private Monogram", Description: "Understated serif monogram"},
		{ID: "creative-splash", Category: "creative", Name: "Color Splash", Description: "Energetic paint splash in bright hues"},
		{ID: "creative-neon-pop", Category: "creative", Name: "Neon Pop", Description: "Pink and purple neon with halftone dots"},
		{ID: "sports-dynamic", Category: "sports", Name: "Dynamic Swoosh", Description: "Italic heavy type with a speed swoosh"},
		{ID: "sports-badge", Category: "sports", Name: "Team Badge", Description: "Athletic crest with bold outlines"},
		{ID: "realestate-skyline", Category: "real-estate", Name: "Skyline", Description: "Architectural skyline over clean type"},
		{ID: "corporate-clean", Category: "corporate", Name: "Corporate Clean", Description: "Balanced wordmark for professional services"},
		{ID: "modern-minimal", Category: "modern", Name: "Modern Minimal", Description: "Flat, geometric and restrained"},
		{ID: "elegant-serif", Category: "elegant", Name: "Elegant Serif", Description: "High-contrast serif with generous spacing"},
		{ID: "bold-impact", Category: "bold", Name: "Bold Impact", Description: "Heavy condensed type with strong depth"},
		{ID: "playful-bubble", Category: "playful", Name: "Bubble Pop", Description: "Rounded bubbly letters and bright colors"},
	}
}

func defaultIndustryPresets() map[string][]string {
	return map[string][]string{
		"tech":        {"tech-circuit", "tech-neon", "tech-gradient"},
		"luxury":      {"luxury-gold", "luxury-crown", "luxury-chrome"},
		"nature":      {"nature-leaf", "nature-organic"},
		"food":        {"food-badge", "food-script"},
		"finance":     {"finance-shield", "finance-monogram", "luxury-chrome"},
		"creative":    {"creative-splash", "creative-neon-pop", "playful-bubble"},
		"sports":      {"sports-dynamic", "sports-badge", "bold-impact"},
		"real-estate": {"realestate-skyline", "finance-monogram"},
		"corporate":   {"corporate-clean", "modern-minimal"},
	}
}

func defaultStylePresets() map[string][]string {
	return map[string][]string{
		"elegant": {"elegant-serif", "luxury-crown", "finance-monogram"},
		"bold":    {"bold-impact", "sports-dynamic", "tech-neon"},
		"playful": {"playful-bubble", "creative-splash", "food-script"},
		"organic": {"nature-organic", "nature-leaf", "food-badge"},
		"modern":  {"modern-minimal", "tech-gradient", "corporate-clean"},
	}
}

func defaultPatternPresets() map[string][]string {
	return map[string][]string{
		"circuit":    {"tech-circuit", "tech-hologram"},
		"neural":     {"tech-hologram", "tech-circuit"},
		"grid":       {"tech-neon", "realestate-skyline"},
		"hexagon":    {"tech-circuit", "sports-badge"},
		"dot-matrix": {"creative-neon-pop", "tech-neon"},
		"halftone":   {"creative-neon-pop", "creative-splash"},
		"radial":     {"luxury-emblem", "sports-dynamic"},
	}
}

func defaultMetallicBonuses() []Bonus {
	return []Bonus{
		{Preset: "luxury-chrome", Points: 6},
		{Preset: "luxury-gold", Points: 5},
		{Preset: "tech-hologram", Points: 4},
		{Preset: "luxury-emblem", Points: 3},
	}
}

func defaultGlowBonuses() []Bonus {
	return []Bonus{
		{Preset: "tech-neon", Points: 6},
		{Preset: "creative-neon-pop", Points: 5},
		{Preset: "tech-hologram", Points: 4},
	}
}

func defaultColorBonuses() []ColorBonus {
	return []ColorBonus{
		{Colors: []string{"gold"}, Bonuses: []Bonus{{Preset: "luxury-gold", Points: 5}, {Preset: "luxury-crown", Points: 3}}},
		{Colors: []string{"green"}, Bonuses: []Bonus{{Preset: "nature-leaf", Points: 5}, {Preset: "nature-organic", Points: 3}}},
		{Colors: []string{"cyan", "blue"}, Bonuses: []Bonus{{Preset: "tech-neon", Points: 4}, {Preset: "tech-circuit", Points: 3}}},
		{Colors: []string{"purple", "pink"}, Bonuses: []Bonus{{Preset: "creative-neon-pop", Points: 4}, {Preset: "creative-splash", Points: 3}}},
	}
}
