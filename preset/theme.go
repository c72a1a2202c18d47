package preset

import (
	"strconv"

	"github.com/agiangrant/tailcss/theme"
)

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var palettes = map[string][]string{
	"slate":   {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
	"gray":    {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
	"zinc":    {"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"},
	"neutral": {"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"},
	"stone":   {"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"},
	"red":     {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
	"orange":  {"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"},
	"amber":   {"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"},
	"yellow":  {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"},
	"lime":    {"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"},
	"green":   {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
	"emerald": {"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"},
	"teal":    {"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"},
	"cyan":    {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"},
	"sky":     {"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"},
	"blue":    {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	"indigo":  {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"},
	"violet":  {"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"},
	"purple":  {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"},
	"fuchsia": {"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"},
	"pink":    {"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"},
	"rose":    {"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"},
}

func colors() *theme.Value {
	children := map[string]*theme.Value{
		"inherit":     theme.String("inherit"),
		"current":     theme.String("currentColor"),
		"transparent": theme.String("transparent"),
		"black":       theme.String("#000000"),
		"white":       theme.String("#ffffff"),
	}
	for name, palette := range palettes {
		m := make(map[string]string, len(shades))
		for i, shade := range shades {
			m[shade] = palette[i]
		}
		children[name] = theme.Strings(m)
	}
	return theme.Map(children)
}

// rem converts a pixel measure at a 16px root.
//
//	16 → "1rem", 2 → "0.125rem", 0 → "0px"
func rem(px float64) string {
	if px == 0 {
		return "0px"
	}
	return strconv.FormatFloat(px/16, 'f', -1, 64) + "rem"
}

func rems(px map[string]float64) map[string]string {
	out := make(map[string]string, len(px))
	for k, v := range px {
		out[k] = rem(v)
	}
	return out
}

func spacing() map[string]string {
	m := rems(map[string]float64{
		"0": 0, "0.5": 2, "1": 4, "1.5": 6, "2": 8, "2.5": 10, "3": 12, "3.5": 14,
		"4": 16, "5": 20, "6": 24, "7": 28, "8": 32, "9": 36, "10": 40, "11": 44,
		"12": 48, "14": 56, "16": 64, "20": 80, "24": 96, "28": 112, "32": 128,
		"36": 144, "40": 160, "44": 176, "48": 192, "52": 208, "56": 224,
		"60": 240, "64": 256, "72": 288, "80": 320, "96": 384,
	})
	m["px"] = "1px"
	return m
}

func with(base map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func scale(values ...string) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[v] = v
	}
	return m
}

func percents(values ...int) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		k := strconv.Itoa(v)
		m[k] = strconv.FormatFloat(float64(v)/100, 'f', -1, 64)
	}
	return m
}

func degrees(values ...int) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		k := strconv.Itoa(v)
		m[k] = k + "deg"
	}
	return m
}

func millis(values ...int) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		k := strconv.Itoa(v)
		m[k] = k + "ms"
	}
	return m
}

// Theme returns the default design tokens. Every call builds a fresh tree.
func Theme() *theme.Value {
	space := spacing()
	sizes := with(space, map[string]string{
		"auto":   "auto",
		"full":   "100%",
		"min":    "min-content",
		"max":    "max-content",
		"fit":    "fit-content",
		"screen": "100vw",
		"svw":    "100svw",
		"lvw":    "100lvw",
		"dvw":    "100dvw",
	})
	heights := with(sizes, map[string]string{
		"screen": "100vh",
		"svh":    "100svh",
		"lvh":    "100lvh",
		"dvh":    "100dvh",
	})
	containerSizes := rems(map[string]float64{
		"3xs": 256, "2xs": 288, "xs": 320, "sm": 384, "md": 448, "lg": 512,
		"xl": 576, "2xl": 672, "3xl": 768, "4xl": 896, "5xl": 1024, "6xl": 1152, "7xl": 1280,
	})
	opacity := percents(0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100)

	categories := map[string]*theme.Value{
		"colors":  colors(),
		"spacing": theme.Strings(space),
		"screens": theme.DefaultBreakpoints().Value(),
		"opacity": theme.Strings(opacity),

		"width":     theme.Strings(sizes),
		"height":    theme.Strings(heights),
		"size":      theme.Strings(sizes),
		"minWidth":  theme.Strings(sizes),
		"minHeight": theme.Strings(heights),
		"maxWidth": theme.Strings(with(with(sizes, containerSizes), map[string]string{
			"none":  "none",
			"prose": "65ch",
		})),
		"maxHeight": theme.Strings(with(heights, map[string]string{"none": "none"})),
		"inset": theme.Strings(with(space, map[string]string{
			"auto": "auto",
			"full": "100%",
		})),
		"margin":      theme.Strings(map[string]string{"auto": "auto"}),
		"translate":   theme.Strings(with(space, map[string]string{"full": "100%"})),
		"flexBasis":   theme.Strings(with(sizes, containerSizes)),
		"borderRadius": theme.Strings(with(rems(map[string]float64{
			"sm": 2, "DEFAULT": 4, "md": 6, "lg": 8, "xl": 12, "2xl": 16, "3xl": 24,
		}), map[string]string{"none": "0px", "full": "9999px"})),
		"borderWidth": theme.Strings(map[string]string{
			"DEFAULT": "1px", "0": "0px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"outlineWidth": theme.Strings(map[string]string{
			"DEFAULT": "1px", "0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"outlineOffset": theme.Strings(map[string]string{
			"0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"ringWidth": theme.Strings(map[string]string{
			"DEFAULT": "3px", "0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"ringOffsetWidth": theme.Strings(map[string]string{
			"0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"strokeWidth": theme.Strings(scale("0", "1", "2")),
		"textDecorationThickness": theme.Strings(map[string]string{
			"auto": "auto", "from-font": "from-font", "0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),
		"textUnderlineOffset": theme.Strings(map[string]string{
			"auto": "auto", "0": "0px", "1": "1px", "2": "2px", "4": "4px", "8": "8px",
		}),

		"fontSize": theme.Strings(rems(map[string]float64{
			"xs": 12, "sm": 14, "base": 16, "lg": 18, "xl": 20, "2xl": 24, "3xl": 30,
			"4xl": 36, "5xl": 48, "6xl": 60, "7xl": 72, "8xl": 96, "9xl": 128,
		})),
		"fontWeight": theme.Strings(map[string]string{
			"thin": "100", "extralight": "200", "light": "300", "normal": "400", "medium": "500",
			"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
		}),
		"fontFamily": theme.Strings(map[string]string{
			"sans":  `ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji", "Segoe UI Emoji"`,
			"serif": `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
			"mono":  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace`,
		}),
		"lineHeight": theme.Strings(with(rems(map[string]float64{
			"3": 12, "4": 16, "5": 20, "6": 24, "7": 28, "8": 32, "9": 36, "10": 40,
		}), map[string]string{
			"none": "1", "tight": "1.25", "snug": "1.375", "normal": "1.5", "relaxed": "1.625", "loose": "2",
		})),
		"letterSpacing": theme.Strings(map[string]string{
			"tighter": "-0.05em", "tight": "-0.025em", "normal": "0em",
			"wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
		}),
		"lineClamp": theme.Strings(scale("1", "2", "3", "4", "5", "6")),

		"zIndex": theme.Strings(with(scale("0", "10", "20", "30", "40", "50"), map[string]string{"auto": "auto"})),
		"order": theme.Strings(with(scale("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"), map[string]string{
			"first": "-9999", "last": "9999", "none": "0",
		})),
		"flex": theme.Strings(map[string]string{
			"1": "1 1 0%", "auto": "1 1 auto", "initial": "0 1 auto", "none": "none",
		}),
		"flexGrow":   theme.Strings(map[string]string{"DEFAULT": "1", "0": "0"}),
		"flexShrink": theme.Strings(map[string]string{"DEFAULT": "1", "0": "0"}),
		"gridTemplateColumns": theme.Strings(gridTemplate(12)),
		"gridTemplateRows":    theme.Strings(gridTemplate(12)),
		"gridColumn":          theme.Strings(gridSpan(12)),
		"gridRow":             theme.Strings(gridSpan(12)),
		"gridColumnStart":     theme.Strings(gridLines(13)),
		"gridColumnEnd":       theme.Strings(gridLines(13)),
		"gridRowStart":        theme.Strings(gridLines(13)),
		"gridRowEnd":          theme.Strings(gridLines(13)),
		"gridAutoColumns": theme.Strings(map[string]string{
			"auto": "auto", "min": "min-content", "max": "max-content", "fr": "minmax(0, 1fr)",
		}),
		"gridAutoRows": theme.Strings(map[string]string{
			"auto": "auto", "min": "min-content", "max": "max-content", "fr": "minmax(0, 1fr)",
		}),
		"aspectRatio": theme.Strings(map[string]string{"auto": "auto", "square": "1 / 1", "video": "16 / 9"}),
		"columns":     theme.Strings(with(scale("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"), with(containerSizes, map[string]string{"auto": "auto"}))),

		"boxShadow": theme.Strings(map[string]string{
			"2xs":     "0 1px rgb(0 0 0 / 0.05)",
			"xs":      "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"sm":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"DEFAULT": "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"md":      "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg":      "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"xl":      "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
			"2xl":     "0 25px 50px -12px rgb(0 0 0 / 0.25)",
			"inner":   "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
			"none":    "0 0 #0000",
		}),
		"dropShadow": theme.Strings(map[string]string{
			"sm":      "0 1px 1px rgb(0 0 0 / 0.05)",
			"DEFAULT": "0 1px 2px rgb(0 0 0 / 0.1)",
			"md":      "0 4px 3px rgb(0 0 0 / 0.07)",
			"lg":      "0 10px 8px rgb(0 0 0 / 0.04)",
			"xl":      "0 20px 13px rgb(0 0 0 / 0.03)",
			"2xl":     "0 25px 25px rgb(0 0 0 / 0.15)",
			"none":    "0 0 #0000",
		}),
		"blur": theme.Strings(with(map[string]string{
			"none": "0", "DEFAULT": "8px",
		}, map[string]string{
			"sm": "4px", "md": "12px", "lg": "16px", "xl": "24px", "2xl": "40px", "3xl": "64px",
		})),
		"brightness": theme.Strings(percents(0, 50, 75, 90, 95, 100, 105, 110, 125, 150, 200)),
		"contrast":   theme.Strings(percents(0, 50, 75, 100, 125, 150, 200)),
		"saturate":   theme.Strings(percents(0, 50, 100, 150, 200)),
		"grayscale":  theme.Strings(map[string]string{"DEFAULT": "100%", "0": "0"}),
		"invert":     theme.Strings(map[string]string{"DEFAULT": "100%", "0": "0"}),
		"sepia":      theme.Strings(map[string]string{"DEFAULT": "100%", "0": "0"}),
		"hueRotate":  theme.Strings(degrees(0, 15, 30, 60, 90, 180)),

		"rotate": theme.Strings(degrees(0, 1, 2, 3, 6, 12, 45, 90, 180)),
		"skew":   theme.Strings(degrees(0, 1, 2, 3, 6, 12)),
		"scale":  theme.Strings(percents(0, 50, 75, 90, 95, 100, 105, 110, 125, 150)),
		"transformOrigin": theme.Strings(map[string]string{
			"center": "center", "top": "top", "top-right": "top right", "right": "right",
			"bottom-right": "bottom right", "bottom": "bottom", "bottom-left": "bottom left",
			"left": "left", "top-left": "top left",
		}),

		"transitionProperty": theme.Strings(map[string]string{
			"none":      "none",
			"all":       "all",
			"DEFAULT":   "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter",
			"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
			"opacity":   "opacity",
			"shadow":    "box-shadow",
			"transform": "transform",
		}),
		"transitionDuration": theme.Strings(with(millis(0, 75, 100, 150, 200, 300, 500, 700, 1000), map[string]string{"DEFAULT": "150ms"})),
		"transitionDelay":    theme.Strings(millis(0, 75, 100, 150, 200, 300, 500, 700, 1000)),
		"transitionTimingFunction": theme.Strings(map[string]string{
			"DEFAULT": "cubic-bezier(0.4, 0, 0.2, 1)",
			"linear":  "linear",
			"in":      "cubic-bezier(0.4, 0, 1, 1)",
			"out":     "cubic-bezier(0, 0, 0.2, 1)",
			"in-out":  "cubic-bezier(0.4, 0, 0.2, 1)",
		}),
		"animation": theme.Strings(map[string]string{
			"none":   "none",
			"spin":   "spin 1s linear infinite",
			"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce": "bounce 1s infinite",
		}),

		"backgroundPosition": theme.Strings(map[string]string{
			"bottom": "bottom", "center": "center", "left": "left", "left-bottom": "left bottom",
			"left-top": "left top", "right": "right", "right-bottom": "right bottom",
			"right-top": "right top", "top": "top",
		}),
		"backgroundSize": theme.Strings(map[string]string{"auto": "auto", "cover": "cover", "contain": "contain"}),
		"backgroundImage": theme.Strings(map[string]string{
			"none":             "none",
			"gradient-to-t":    "linear-gradient(to top, var(--tw-gradient-stops))",
			"gradient-to-tr":   "linear-gradient(to top right, var(--tw-gradient-stops))",
			"gradient-to-r":    "linear-gradient(to right, var(--tw-gradient-stops))",
			"gradient-to-br":   "linear-gradient(to bottom right, var(--tw-gradient-stops))",
			"gradient-to-b":    "linear-gradient(to bottom, var(--tw-gradient-stops))",
			"gradient-to-bl":   "linear-gradient(to bottom left, var(--tw-gradient-stops))",
			"gradient-to-l":    "linear-gradient(to left, var(--tw-gradient-stops))",
			"gradient-to-tl":   "linear-gradient(to top left, var(--tw-gradient-stops))",
		}),
		"gradientColorStopPositions": theme.Strings(map[string]string{
			"0%": "0%", "5%": "5%", "10%": "10%", "25%": "25%", "50%": "50%", "75%": "75%", "90%": "90%", "100%": "100%",
		}),
		"cursor": theme.Strings(scale(
			"auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed",
			"none", "progress", "cell", "crosshair", "grab", "grabbing", "zoom-in", "zoom-out",
		)),
		"willChange": theme.Strings(map[string]string{
			"auto": "auto", "scroll": "scroll-position", "contents": "contents", "transform": "transform",
		}),
	}
	return theme.Map(categories)
}

func gridTemplate(n int) map[string]string {
	m := map[string]string{"none": "none", "subgrid": "subgrid"}
	for i := 1; i <= n; i++ {
		m[strconv.Itoa(i)] = "repeat(" + strconv.Itoa(i) + ", minmax(0, 1fr))"
	}
	return m
}

func gridSpan(n int) map[string]string {
	m := map[string]string{"auto": "auto", "span-full": "1 / -1"}
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		m["span-"+s] = "span " + s + " / span " + s
	}
	return m
}

func gridLines(n int) map[string]string {
	m := map[string]string{"auto": "auto"}
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		m[s] = s
	}
	return m
}
