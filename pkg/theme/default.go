package theme

// Default returns the built-in Spexop light theme. Each call returns a fresh
// value.
func Default() Config {
	return Config{
		Meta: Meta{
			Name:        "Spexop Default",
			Version:     "1.0.0",
			Author:      "Spexop",
			Description: "Neutral light theme with a blue primary accent.",
			Tags:        []string{"light", "default"},
		},
		Colors: Colors{
			Primary:          "#3b82f6",
			PrimaryHover:     "#2563eb",
			PrimaryActive:    "#1d4ed8",
			Secondary:        "#64748b",
			Surface:          "#ffffff",
			SurfaceSecondary: "#f8fafc",
			SurfaceHover:     "#f1f5f9",
			Text:             "#0f172a",
			TextSecondary:    "#334155",
			TextMuted:        "#64748b",
			Border:           "#cbd5e1",
			BorderStrong:     "#94a3b8",
			BorderSubtle:     "#e2e8f0",
			Success:          "#15803d",
			Warning:          "#b45309",
			Error:            "#dc2626",
			Info:             "#0369a1",
			Link:             "#2563eb",
			Focus:            "#3b82f6",
		},
		Typography: Typography{
			FontFamily:     "Inter, system-ui, sans-serif",
			FontFamilyMono: "JetBrains Mono, monospace",
			BaseSize:       16,
			Scale:          1.25,
			Weights:        DefaultWeights(),
			LineHeights:    DefaultLineHeights(),
		},
		Spacing: Spacing{
			BaseUnit: 4,
			Scale:    []float64{0, 0.25, 0.5, 1, 1.5, 2, 3, 4, 6, 8},
		},
		Borders: Borders{
			Thin:          1,
			Default:       2,
			Thick:         4,
			RadiusSubtle:  4,
			RadiusRelaxed: 8,
			RadiusPill:    9999,
			DefaultStyle:  BorderSolid,
		},
	}
}
