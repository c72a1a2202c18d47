package preset

import (
	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/utility"
)

var (
	opacityModifier = utility.ModifierSpec{ThemeKeys: []string{"opacity"}}
	lineHeightMod   = utility.ModifierSpec{ThemeKeys: []string{"lineHeight", "spacing"}, Mode: utility.ModifierTemplate}
)

func color(key string, themeKeys []string, pairs ...string) utility.Definition {
	return dynamic(key, themeKeys, pairs...).Typed(css.TypeColor).WithModifier(opacityModifier)
}

func dynamics() []utility.Definition {
	var defs []utility.Definition
	add := func(d ...utility.Definition) {
		defs = append(defs, d...)
	}

	borderStyle := property("--tw-border-style", "*", "solid")
	outlineStyle := property("--tw-outline-style", "*", "solid")
	translateXY := properties("--tw-translate", "*", "0", "x", "y", "z")
	transform := append(properties("--tw-rotate", "*", "", "x", "y", "z"), properties("--tw-skew", "*", "", "x", "y")...)
	gradient := []css.Rule{
		property("--tw-gradient-from", "<color>", "#0000"),
		property("--tw-gradient-via", "<color>", "#0000"),
		property("--tw-gradient-to", "<color>", "#0000"),
		property("--tw-gradient-stops", "*", ""),
		property("--tw-gradient-via-stops", "*", ""),
		property("--tw-gradient-from-position", "<length-percentage>", "0%"),
		property("--tw-gradient-via-position", "<length-percentage>", "50%"),
		property("--tw-gradient-to-position", "<length-percentage>", "100%"),
	}
	shadow := []css.Rule{
		property("--tw-shadow", "*", "0 0 #0000"),
		property("--tw-shadow-color", "*", ""),
		property("--tw-ring-color", "*", ""),
		property("--tw-ring-shadow", "*", "0 0 #0000"),
		property("--tw-ring-inset", "*", ""),
		property("--tw-ring-offset-width", "<length>", "0px"),
		property("--tw-ring-offset-color", "*", "#fff"),
		property("--tw-ring-offset-shadow", "*", "0 0 #0000"),
	}
	boxShadow := "box-shadow: var(--tw-ring-offset-shadow, 0 0 #0000), var(--tw-ring-shadow, 0 0 #0000), var(--tw-shadow)"

	// Margin and padding.
	sides := []struct {
		suffix string
		props  []string
	}{
		{"x", []string{"left", "right"}},
		{"y", []string{"top", "bottom"}},
		{"t", []string{"top"}},
		{"r", []string{"right"}},
		{"b", []string{"bottom"}},
		{"l", []string{"left"}},
		{"s", []string{"inline-start"}},
		{"e", []string{"inline-end"}},
	}
	add(
		dynamic("m", keys("margin", "spacing"), "margin: $1").Typed(css.TypeLengthPercentage).Negatable().Order(order.Margin),
		dynamic("p", keys("padding", "spacing"), "padding: $1").Typed(css.TypeLengthPercentage).Order(order.Padding),
		dynamic("scroll-m", keys("scrollMargin", "spacing"), "scroll-margin: $1").Typed(css.TypeLength).Negatable(),
		dynamic("scroll-p", keys("scrollPadding", "spacing"), "scroll-padding: $1").Typed(css.TypeLength),
	)
	for _, s := range sides {
		var m, p, sm, sp []string
		for _, prop := range s.props {
			m = append(m, "margin-"+prop+": $1")
			p = append(p, "padding-"+prop+": $1")
			sm = append(sm, "scroll-margin-"+prop+": $1")
			sp = append(sp, "scroll-padding-"+prop+": $1")
		}
		marginKey, paddingKey := order.MarginSide, order.PaddingSide
		if len(s.props) > 1 {
			marginKey, paddingKey = order.MarginAxis, order.PaddingAxis
		}
		add(
			dynamic("m"+s.suffix, keys("margin", "spacing"), m...).Typed(css.TypeLengthPercentage).Negatable().Order(marginKey),
			dynamic("p"+s.suffix, keys("padding", "spacing"), p...).Typed(css.TypeLengthPercentage).Order(paddingKey),
			dynamic("scroll-m"+s.suffix, keys("scrollMargin", "spacing"), sm...).Typed(css.TypeLength).Negatable(),
			dynamic("scroll-p"+s.suffix, keys("scrollPadding", "spacing"), sp...).Typed(css.TypeLength),
		)
	}

	add(
		dynamic("space-x", keys("space", "spacing"),
			"--tw-space-x-reverse: 0",
			"margin-inline-start: calc($1 * var(--tw-space-x-reverse))",
			"margin-inline-end: calc($1 * calc(1 - var(--tw-space-x-reverse)))").
			Typed(css.TypeLength).Negatable().Wrap(childSelector).Order(order.SpaceAxis).
			WithGlobals(property("--tw-space-x-reverse", "*", "0")),
		dynamic("space-y", keys("space", "spacing"),
			"--tw-space-y-reverse: 0",
			"margin-block-start: calc($1 * var(--tw-space-y-reverse))",
			"margin-block-end: calc($1 * calc(1 - var(--tw-space-y-reverse)))").
			Typed(css.TypeLength).Negatable().Wrap(childSelector).Order(order.SpaceAxis).
			WithGlobals(property("--tw-space-y-reverse", "*", "0")),
	)

	// Position.
	add(
		dynamic("inset", keys("inset", "spacing"), "inset: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.Inset),
		dynamic("inset-x", keys("inset", "spacing"), "inset-inline: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.InsetAxis),
		dynamic("inset-y", keys("inset", "spacing"), "inset-block: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.InsetAxis),
		dynamic("start", keys("inset", "spacing"), "inset-inline-start: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.InsetSide),
		dynamic("end", keys("inset", "spacing"), "inset-inline-end: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.InsetSide),
		dynamic("top", keys("inset", "spacing"), "top: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.PositionSide),
		dynamic("right", keys("inset", "spacing"), "right: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.PositionSide),
		dynamic("bottom", keys("inset", "spacing"), "bottom: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.PositionSide),
		dynamic("left", keys("inset", "spacing"), "left: $1").Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.PositionSide),
		dynamic("z", keys("zIndex"), "z-index: $1").Typed(css.TypeInteger).Negatable(),
		dynamic("order", keys("order"), "order: $1").Typed(css.TypeInteger).Negatable(),
	)

	// Sizing.
	add(
		dynamic("w", keys("width", "spacing"), "width: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("min-w", keys("minWidth", "spacing"), "min-width: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("max-w", keys("maxWidth", "spacing"), "max-width: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("h", keys("height", "spacing"), "height: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("min-h", keys("minHeight", "spacing"), "min-height: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("max-h", keys("maxHeight", "spacing"), "max-height: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.SizeAxis),
		dynamic("size", keys("size", "spacing"), "width: $1", "height: $1").Typed(css.TypeLengthPercentage).Fractions().Order(order.Size),
		dynamic("aspect", keys("aspectRatio"), "aspect-ratio: $1").Typed(css.TypeRatio).Fractions(),
		dynamic("columns", keys("columns"), "columns: $1"),
	)

	// Flexbox and grid.
	add(
		dynamic("flex", keys("flex"), "flex: $1").Fractions(),
		dynamic("basis", keys("flexBasis", "spacing"), "flex-basis: $1").Typed(css.TypeLengthPercentage).Fractions(),
		dynamic("grow", keys("flexGrow"), "flex-grow: $1").Typed(css.TypeNumber),
		dynamic("shrink", keys("flexShrink"), "flex-shrink: $1").Typed(css.TypeNumber),
		dynamic("grid-cols", keys("gridTemplateColumns"), "grid-template-columns: $1"),
		dynamic("grid-rows", keys("gridTemplateRows"), "grid-template-rows: $1"),
		dynamic("col", keys("gridColumn"), "grid-column: $1"),
		dynamic("col-start", keys("gridColumnStart"), "grid-column-start: $1").Typed(css.TypeInteger),
		dynamic("col-end", keys("gridColumnEnd"), "grid-column-end: $1").Typed(css.TypeInteger),
		dynamic("row", keys("gridRow"), "grid-row: $1"),
		dynamic("row-start", keys("gridRowStart"), "grid-row-start: $1").Typed(css.TypeInteger),
		dynamic("row-end", keys("gridRowEnd"), "grid-row-end: $1").Typed(css.TypeInteger),
		dynamic("auto-cols", keys("gridAutoColumns"), "grid-auto-columns: $1"),
		dynamic("auto-rows", keys("gridAutoRows"), "grid-auto-rows: $1"),
		dynamic("gap", keys("gap", "spacing"), "gap: $1").Typed(css.TypeLengthPercentage),
		dynamic("gap-x", keys("gap", "spacing"), "column-gap: $1").Typed(css.TypeLengthPercentage),
		dynamic("gap-y", keys("gap", "spacing"), "row-gap: $1").Typed(css.TypeLengthPercentage),
	)

	// Transforms.
	add(
		dynamic("translate", keys("translate", "spacing"),
			"--tw-translate-x: $1", "--tw-translate-y: $1",
			"translate: var(--tw-translate-x) var(--tw-translate-y)").
			Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.Translate).WithGlobals(translateXY...),
		dynamic("translate-x", keys("translate", "spacing"),
			"--tw-translate-x: $1", "translate: var(--tw-translate-x) var(--tw-translate-y)").
			Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.TranslateAxis).WithGlobals(translateXY...),
		dynamic("translate-y", keys("translate", "spacing"),
			"--tw-translate-y: $1", "translate: var(--tw-translate-x) var(--tw-translate-y)").
			Typed(css.TypeLengthPercentage).Negatable().Fractions().Order(order.TranslateAxis).WithGlobals(translateXY...),
		dynamic("translate-z", keys("translate", "spacing"),
			"--tw-translate-z: $1", "translate: var(--tw-translate-x) var(--tw-translate-y) var(--tw-translate-z)").
			Typed(css.TypeLength).Negatable().Order(order.TranslateAxis).WithGlobals(translateXY...),
		dynamic("scale", keys("scale"),
			"--tw-scale-x: $1", "--tw-scale-y: $1", "scale: var(--tw-scale-x) var(--tw-scale-y)").
			Typed(css.TypeNumber).Negatable().Order(order.Scale).WithGlobals(properties("--tw-scale", "*", "1", "x", "y", "z")...),
		dynamic("scale-x", keys("scale"),
			"--tw-scale-x: $1", "scale: var(--tw-scale-x) var(--tw-scale-y)").
			Typed(css.TypeNumber).Negatable().Order(order.ScaleAxis).WithGlobals(properties("--tw-scale", "*", "1", "x", "y", "z")...),
		dynamic("scale-y", keys("scale"),
			"--tw-scale-y: $1", "scale: var(--tw-scale-x) var(--tw-scale-y)").
			Typed(css.TypeNumber).Negatable().Order(order.ScaleAxis).WithGlobals(properties("--tw-scale", "*", "1", "x", "y", "z")...),
		dynamic("rotate", keys("rotate"), "rotate: $1").Typed(css.TypeAngle).Negatable().Order(order.Rotate),
		dynamic("rotate-x", keys("rotate"), "--tw-rotate-x: rotateX($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.RotateAxis).WithGlobals(transform...),
		dynamic("rotate-y", keys("rotate"), "--tw-rotate-y: rotateY($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.RotateAxis).WithGlobals(transform...),
		dynamic("rotate-z", keys("rotate"), "--tw-rotate-z: rotateZ($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.RotateAxis).WithGlobals(transform...),
		dynamic("skew", keys("skew"), "--tw-skew-x: skewX($1)", "--tw-skew-y: skewY($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.Skew).WithGlobals(transform...),
		dynamic("skew-x", keys("skew"), "--tw-skew-x: skewX($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.SkewAxis).WithGlobals(transform...),
		dynamic("skew-y", keys("skew"), "--tw-skew-y: skewY($1)").
			Typed(css.TypeAngle).Negatable().InGroup(css.GroupTransform).Order(order.SkewAxis).WithGlobals(transform...),
		dynamic("transform", nil, "transform: $1").InGroup(css.GroupTransform).Order(order.Transform),
		dynamic("origin", keys("transformOrigin"), "transform-origin: $1").Typed(css.TypePosition),
		dynamic("perspective", nil, "perspective: $1").Typed(css.TypeLength),
	)

	// Borders and outlines.
	borderSides := []struct {
		suffix string
		props  []string
		width  order.Key
		color  order.Key
	}{
		{"", []string{""}, order.BorderWidth, order.BorderColor},
		{"-x", []string{"-inline"}, order.BorderWidthAxis, order.BorderColorAxis},
		{"-y", []string{"-block"}, order.BorderWidthAxis, order.BorderColorAxis},
		{"-s", []string{"-inline-start"}, order.BorderWidthSide, order.BorderColorSide},
		{"-e", []string{"-inline-end"}, order.BorderWidthSide, order.BorderColorSide},
		{"-t", []string{"-top"}, order.BorderWidthSide, order.BorderColorSide},
		{"-r", []string{"-right"}, order.BorderWidthSide, order.BorderColorSide},
		{"-b", []string{"-bottom"}, order.BorderWidthSide, order.BorderColorSide},
		{"-l", []string{"-left"}, order.BorderWidthSide, order.BorderColorSide},
	}
	for _, s := range borderSides {
		var width, col []string
		for _, p := range s.props {
			width = append(width, "border"+p+"-style: var(--tw-border-style)", "border"+p+"-width: $1")
			col = append(col, "border"+p+"-color: $1")
		}
		add(
			dynamic("border"+s.suffix, keys("borderWidth"), width...).
				Typed(css.TypeLineWidth).Order(s.width).WithGlobals(borderStyle),
			color("border"+s.suffix, keys("borderColor", "colors"), col...).Order(s.color),
		)
	}
	add(
		dynamic("rounded", keys("borderRadius"), "border-radius: $1").Typed(css.TypeLengthPercentage).Order(order.Rounded),
	)
	corners := []struct {
		suffix string
		props  []string
	}{
		{"s", []string{"start-start", "end-start"}},
		{"e", []string{"start-end", "end-end"}},
		{"t", []string{"top-left", "top-right"}},
		{"r", []string{"top-right", "bottom-right"}},
		{"b", []string{"bottom-right", "bottom-left"}},
		{"l", []string{"top-left", "bottom-left"}},
		{"ss", []string{"start-start"}},
		{"se", []string{"start-end"}},
		{"ee", []string{"end-end"}},
		{"es", []string{"end-start"}},
		{"tl", []string{"top-left"}},
		{"tr", []string{"top-right"}},
		{"br", []string{"bottom-right"}},
		{"bl", []string{"bottom-left"}},
	}
	for _, c := range corners {
		var pairs []string
		for _, p := range c.props {
			pairs = append(pairs, "border-"+p+"-radius: $1")
		}
		key := order.RoundedSide
		if len(c.props) == 1 {
			key = order.RoundedCorner
		}
		add(dynamic("rounded-"+c.suffix, keys("borderRadius"), pairs...).Typed(css.TypeLengthPercentage).Order(key))
	}
	add(
		dynamic("border-spacing", keys("borderSpacing", "spacing"),
			"--tw-border-spacing-x: $1", "--tw-border-spacing-y: $1",
			"border-spacing: var(--tw-border-spacing-x) var(--tw-border-spacing-y)").
			Typed(css.TypeLength).Order(order.BorderSpacing).
			WithGlobals(properties("--tw-border-spacing", "<length>", "0", "x", "y")...),
		dynamic("border-spacing-x", keys("borderSpacing", "spacing"),
			"--tw-border-spacing-x: $1",
			"border-spacing: var(--tw-border-spacing-x) var(--tw-border-spacing-y)").
			Typed(css.TypeLength).Order(order.BorderSpacingAxis).
			WithGlobals(properties("--tw-border-spacing", "<length>", "0", "x", "y")...),
		dynamic("border-spacing-y", keys("borderSpacing", "spacing"),
			"--tw-border-spacing-y: $1",
			"border-spacing: var(--tw-border-spacing-x) var(--tw-border-spacing-y)").
			Typed(css.TypeLength).Order(order.BorderSpacingAxis).
			WithGlobals(properties("--tw-border-spacing", "<length>", "0", "x", "y")...),

		dynamic("divide-x", keys("divideWidth", "borderWidth"),
			"--tw-divide-x-reverse: 0",
			"border-inline-start-width: calc($1 * var(--tw-divide-x-reverse))",
			"border-inline-end-width: calc($1 * calc(1 - var(--tw-divide-x-reverse)))").
			Typed(css.TypeLength).Wrap(childSelector).Order(order.BorderWidthAxis).
			WithGlobals(property("--tw-divide-x-reverse", "*", "0")),
		dynamic("divide-y", keys("divideWidth", "borderWidth"),
			"--tw-divide-y-reverse: 0",
			"border-top-width: calc($1 * calc(1 - var(--tw-divide-y-reverse)))",
			"border-bottom-width: calc($1 * var(--tw-divide-y-reverse))").
			Typed(css.TypeLength).Wrap(childSelector).Order(order.BorderWidthAxis).
			WithGlobals(property("--tw-divide-y-reverse", "*", "0")),
		color("divide", keys("divideColor", "colors"), "border-color: $1").Wrap(childSelector),

		dynamic("outline", keys("outlineWidth"),
			"outline-style: var(--tw-outline-style)", "outline-width: $1").
			Typed(css.TypeLength).WithGlobals(outlineStyle),
		color("outline", keys("outlineColor", "colors"), "outline-color: $1"),
		dynamic("outline-offset", keys("outlineOffset"), "outline-offset: $1").Typed(css.TypeLength).Negatable(),

		dynamic("ring", keys("ringWidth"),
			"--tw-ring-shadow: var(--tw-ring-inset,) 0 0 0 calc($1 + var(--tw-ring-offset-width)) var(--tw-ring-color, currentColor)",
			boxShadow).
			Typed(css.TypeLength).WithGlobals(shadow...),
		color("ring", keys("ringColor", "colors"), "--tw-ring-color: $1"),
		dynamic("ring-offset", keys("ringOffsetWidth"),
			"--tw-ring-offset-width: $1",
			"--tw-ring-offset-shadow: var(--tw-ring-inset,) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)").
			Typed(css.TypeLength).WithGlobals(shadow...),
		color("ring-offset", keys("ringOffsetColor", "colors"), "--tw-ring-offset-color: $1"),
	)

	// Backgrounds and gradients.
	add(
		color("bg", keys("backgroundColor", "colors"), "background-color: $1"),
		dynamic("bg", keys("backgroundImage"), "background-image: $1").Typed(css.TypeImage),
		dynamic("bg", keys("backgroundPosition"), "background-position: $1").Typed(css.TypePosition),
		dynamic("bg", keys("backgroundSize"), "background-size: $1").Typed(css.TypeLengthPercentage),

		color("from", keys("gradientColorStops", "colors"),
			"--tw-gradient-from: $1",
			"--tw-gradient-stops: var(--tw-gradient-via-stops, var(--tw-gradient-from) var(--tw-gradient-from-position), var(--tw-gradient-to) var(--tw-gradient-to-position))").
			Order(order.FromColor).WithGlobals(gradient...),
		dynamic("from", keys("gradientColorStopPositions"), "--tw-gradient-from-position: $1").
			Typed(css.TypeLengthPercentage).Order(order.FromPosition).WithGlobals(gradient...),
		color("via", keys("gradientColorStops", "colors"),
			"--tw-gradient-via: $1",
			"--tw-gradient-via-stops: var(--tw-gradient-from) var(--tw-gradient-from-position), var(--tw-gradient-via) var(--tw-gradient-via-position), var(--tw-gradient-to) var(--tw-gradient-to-position)",
			"--tw-gradient-stops: var(--tw-gradient-via-stops)").
			Order(order.ViaColor).WithGlobals(gradient...),
		dynamic("via", keys("gradientColorStopPositions"), "--tw-gradient-via-position: $1").
			Typed(css.TypeLengthPercentage).Order(order.ViaPosition).WithGlobals(gradient...),
		color("to", keys("gradientColorStops", "colors"),
			"--tw-gradient-to: $1",
			"--tw-gradient-stops: var(--tw-gradient-via-stops, var(--tw-gradient-from) var(--tw-gradient-from-position), var(--tw-gradient-to) var(--tw-gradient-to-position))").
			Order(order.ToColor).WithGlobals(gradient...),
		dynamic("to", keys("gradientColorStopPositions"), "--tw-gradient-to-position: $1").
			Typed(css.TypeLengthPercentage).Order(order.ToPosition).WithGlobals(gradient...),
	)

	// Typography.
	add(
		dynamic("text", keys("fontSize"), "font-size: $1", "line-height: $2").
			Typed(css.TypeLengthPercentage).WithModifier(lineHeightMod),
		color("text", keys("textColor", "colors"), "color: $1"),
		dynamic("font", keys("fontWeight"), "font-weight: $1").Typed(css.TypeNumber),
		dynamic("font", keys("fontFamily"), "font-family: $1").Typed(css.TypeFamilyName),
		dynamic("leading", keys("lineHeight", "spacing"), "line-height: $1"),
		dynamic("tracking", keys("letterSpacing"), "letter-spacing: $1").Typed(css.TypeLength).Negatable(),
		dynamic("indent", keys("textIndent", "spacing"), "text-indent: $1").Typed(css.TypeLengthPercentage).Negatable(),
		dynamic("line-clamp", keys("lineClamp"),
			"overflow: hidden", "display: -webkit-box", "-webkit-box-orient: vertical", "-webkit-line-clamp: $1").
			Typed(css.TypeInteger),
		color("decoration", keys("textDecorationColor", "colors"), "text-decoration-color: $1"),
		dynamic("decoration", keys("textDecorationThickness"), "text-decoration-thickness: $1").Typed(css.TypeLengthPercentage),
		dynamic("underline-offset", keys("textUnderlineOffset"), "text-underline-offset: $1").Typed(css.TypeLengthPercentage).Negatable(),
		color("placeholder", keys("placeholderColor", "colors"), "color: $1").Wrap("&::placeholder"),
		color("caret", keys("caretColor", "colors"), "caret-color: $1"),
		color("accent", keys("accentColor", "colors"), "accent-color: $1"),
		color("fill", keys("fill", "colors"), "fill: $1"),
		color("stroke", keys("stroke", "colors"), "stroke: $1"),
		dynamic("stroke", keys("strokeWidth"), "stroke-width: $1").Typed(css.TypeNumber),
		dynamic("content", nil, "--tw-content: $1", "content: var(--tw-content)").Typed(css.TypeString).
			WithGlobals(property("--tw-content", "*", `""`)),
	)

	// Effects and filters.
	add(
		dynamic("opacity", keys("opacity"), "opacity: $1").Typed(css.TypeNumber),
		dynamic("shadow", keys("boxShadow"), "--tw-shadow: $1", boxShadow).WithGlobals(shadow...),
		color("shadow", keys("boxShadowColor", "colors"), "--tw-shadow-color: $1").WithGlobals(shadow...),

		filter("blur", "blur", keys("blur"), css.TypeLength),
		filter("brightness", "brightness", keys("brightness"), css.TypeNumber),
		filter("contrast", "contrast", keys("contrast"), css.TypeNumber),
		filter("grayscale", "grayscale", keys("grayscale"), css.TypeLengthPercentage),
		filter("hue-rotate", "hue-rotate", keys("hueRotate"), css.TypeAngle).Negatable(),
		filter("invert", "invert", keys("invert"), css.TypeLengthPercentage),
		filter("saturate", "saturate", keys("saturate"), css.TypeNumber),
		filter("sepia", "sepia", keys("sepia"), css.TypeLengthPercentage),
		dynamic("drop-shadow", keys("dropShadow"), "--tw-drop-shadow: drop-shadow($1)").InGroup(css.GroupFilter),

		backdrop("blur", keys("backdropBlur", "blur"), css.TypeLength),
		backdrop("brightness", keys("backdropBrightness", "brightness"), css.TypeNumber),
		backdrop("contrast", keys("backdropContrast", "contrast"), css.TypeNumber),
		backdrop("grayscale", keys("backdropGrayscale", "grayscale"), css.TypeLengthPercentage),
		backdrop("hue-rotate", keys("backdropHueRotate", "hueRotate"), css.TypeAngle).Negatable(),
		backdrop("invert", keys("backdropInvert", "invert"), css.TypeLengthPercentage),
		backdrop("opacity", keys("backdropOpacity", "opacity"), css.TypeNumber),
		backdrop("saturate", keys("backdropSaturate", "saturate"), css.TypeNumber),
		backdrop("sepia", keys("backdropSepia", "sepia"), css.TypeLengthPercentage),
	)

	// Interactivity, transitions and animation.
	add(
		dynamic("cursor", keys("cursor"), "cursor: $1"),
		dynamic("will-change", keys("willChange"), "will-change: $1"),
		dynamic("transition", keys("transitionProperty"),
			"transition-property: $1",
			"transition-timing-function: cubic-bezier(0.4, 0, 0.2, 1)",
			"transition-duration: 150ms"),
		dynamic("duration", keys("transitionDuration"), "transition-duration: $1").Typed(css.TypeTime),
		dynamic("delay", keys("transitionDelay"), "transition-delay: $1").Typed(css.TypeTime),
		dynamic("ease", keys("transitionTimingFunction"), "transition-timing-function: $1"),
		dynamic("animate", keys("animation"), "animation: $1").WithGlobals(keyframes()...),
	)
	return defs
}

func filter(key, fn string, themeKeys []string, typ css.DataType) utility.Definition {
	return dynamic(key, themeKeys, "--tw-"+key+": "+fn+"($1)").Typed(typ).InGroup(css.GroupFilter)
}

func backdrop(name string, themeKeys []string, typ css.DataType) utility.Definition {
	return dynamic("backdrop-"+name, themeKeys, "--tw-backdrop-"+name+": "+name+"($1)").
		Typed(typ).InGroup(css.GroupBackdropFilter)
}

func keyframes() []css.Rule {
	frame := func(sel string, pairs ...string) css.Rule {
		return css.Rule{Selector: sel, Decls: decls(pairs...)}
	}
	return []css.Rule{
		{Selector: "@keyframes spin", Rules: []css.Rule{
			frame("to", "transform: rotate(360deg)"),
		}},
		{Selector: "@keyframes ping", Rules: []css.Rule{
			frame("75%, 100%", "transform: scale(2)", "opacity: 0"),
		}},
		{Selector: "@keyframes pulse", Rules: []css.Rule{
			frame("50%", "opacity: 0.5"),
		}},
		{Selector: "@keyframes bounce", Rules: []css.Rule{
			frame("0%, 100%", "transform: translateY(-25%)", "animation-timing-function: cubic-bezier(0.8, 0, 1, 1)"),
			frame("50%", "transform: none", "animation-timing-function: cubic-bezier(0, 0, 0.2, 1)"),
		}},
	}
}
