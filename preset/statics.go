package preset

import (
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/utility"
)

const childSelector = "&:where(& > :not(:last-child))"

func statics() []utility.Definition {
	defs := []utility.Definition{
		static("sr-only",
			"position: absolute", "width: 1px", "height: 1px", "padding: 0", "margin: -1px",
			"overflow: hidden", "clip: rect(0, 0, 0, 0)", "white-space: nowrap", "border-width: 0"),
		static("not-sr-only",
			"position: static", "width: auto", "height: auto", "padding: 0", "margin: 0",
			"overflow: visible", "clip: auto", "white-space: normal"),

		static("pointer-events-none", "pointer-events: none"),
		static("pointer-events-auto", "pointer-events: auto"),
		static("visible", "visibility: visible"),
		static("invisible", "visibility: hidden"),
		static("collapse", "visibility: collapse"),

		static("static", "position: static"),
		static("fixed", "position: fixed"),
		static("absolute", "position: absolute"),
		static("relative", "position: relative"),
		static("sticky", "position: sticky"),

		static("isolate", "isolation: isolate"),
		static("isolation-auto", "isolation: auto"),

		static("float-start", "float: inline-start"),
		static("float-end", "float: inline-end"),
		static("float-right", "float: right"),
		static("float-left", "float: left"),
		static("float-none", "float: none"),
		static("clear-start", "clear: inline-start"),
		static("clear-end", "clear: inline-end"),
		static("clear-left", "clear: left"),
		static("clear-right", "clear: right"),
		static("clear-both", "clear: both"),
		static("clear-none", "clear: none"),

		static("box-border", "box-sizing: border-box"),
		static("box-content", "box-sizing: content-box"),

		static("block", "display: block"),
		static("inline-block", "display: inline-block"),
		static("inline", "display: inline"),
		static("flex", "display: flex"),
		static("inline-flex", "display: inline-flex"),
		static("table", "display: table"),
		static("inline-table", "display: inline-table"),
		static("table-caption", "display: table-caption"),
		static("table-cell", "display: table-cell"),
		static("table-column", "display: table-column"),
		static("table-column-group", "display: table-column-group"),
		static("table-footer-group", "display: table-footer-group"),
		static("table-header-group", "display: table-header-group"),
		static("table-row-group", "display: table-row-group"),
		static("table-row", "display: table-row"),
		static("flow-root", "display: flow-root"),
		static("grid", "display: grid"),
		static("inline-grid", "display: inline-grid"),
		static("contents", "display: contents"),
		static("list-item", "display: list-item"),
		static("hidden", "display: none"),

		static("overflow-auto", "overflow: auto"),
		static("overflow-hidden", "overflow: hidden"),
		static("overflow-clip", "overflow: clip"),
		static("overflow-visible", "overflow: visible"),
		static("overflow-scroll", "overflow: scroll"),
		static("overflow-x-auto", "overflow-x: auto"),
		static("overflow-y-auto", "overflow-y: auto"),
		static("overflow-x-hidden", "overflow-x: hidden"),
		static("overflow-y-hidden", "overflow-y: hidden"),
		static("overflow-x-clip", "overflow-x: clip"),
		static("overflow-y-clip", "overflow-y: clip"),
		static("overflow-x-visible", "overflow-x: visible"),
		static("overflow-y-visible", "overflow-y: visible"),
		static("overflow-x-scroll", "overflow-x: scroll"),
		static("overflow-y-scroll", "overflow-y: scroll"),
		static("overscroll-auto", "overscroll-behavior: auto"),
		static("overscroll-contain", "overscroll-behavior: contain"),
		static("overscroll-none", "overscroll-behavior: none"),

		static("object-contain", "object-fit: contain"),
		static("object-cover", "object-fit: cover"),
		static("object-fill", "object-fit: fill"),
		static("object-none", "object-fit: none"),
		static("object-scale-down", "object-fit: scale-down"),

		static("flex-row", "flex-direction: row"),
		static("flex-row-reverse", "flex-direction: row-reverse"),
		static("flex-col", "flex-direction: column"),
		static("flex-col-reverse", "flex-direction: column-reverse"),
		static("flex-wrap", "flex-wrap: wrap"),
		static("flex-wrap-reverse", "flex-wrap: wrap-reverse"),
		static("flex-nowrap", "flex-wrap: nowrap"),

		static("grid-flow-row", "grid-auto-flow: row"),
		static("grid-flow-col", "grid-auto-flow: column"),
		static("grid-flow-dense", "grid-auto-flow: dense"),
		static("grid-flow-row-dense", "grid-auto-flow: row dense"),
		static("grid-flow-col-dense", "grid-auto-flow: column dense"),

		static("justify-normal", "justify-content: normal"),
		static("justify-start", "justify-content: flex-start"),
		static("justify-end", "justify-content: flex-end"),
		static("justify-center", "justify-content: center"),
		static("justify-between", "justify-content: space-between"),
		static("justify-around", "justify-content: space-around"),
		static("justify-evenly", "justify-content: space-evenly"),
		static("justify-stretch", "justify-content: stretch"),
		static("justify-items-start", "justify-items: start"),
		static("justify-items-end", "justify-items: end"),
		static("justify-items-center", "justify-items: center"),
		static("justify-items-stretch", "justify-items: stretch"),
		static("justify-self-auto", "justify-self: auto"),
		static("justify-self-start", "justify-self: start"),
		static("justify-self-end", "justify-self: end"),
		static("justify-self-center", "justify-self: center"),
		static("justify-self-stretch", "justify-self: stretch"),
		static("content-normal", "align-content: normal"),
		static("content-center", "align-content: center"),
		static("content-start", "align-content: flex-start"),
		static("content-end", "align-content: flex-end"),
		static("content-between", "align-content: space-between"),
		static("content-around", "align-content: space-around"),
		static("content-evenly", "align-content: space-evenly"),
		static("content-stretch", "align-content: stretch"),
		static("items-start", "align-items: flex-start"),
		static("items-end", "align-items: flex-end"),
		static("items-center", "align-items: center"),
		static("items-baseline", "align-items: baseline"),
		static("items-stretch", "align-items: stretch"),
		static("self-auto", "align-self: auto"),
		static("self-start", "align-self: flex-start"),
		static("self-end", "align-self: flex-end"),
		static("self-center", "align-self: center"),
		static("self-stretch", "align-self: stretch"),
		static("self-baseline", "align-self: baseline"),
		static("place-content-center", "place-content: center"),
		static("place-content-start", "place-content: start"),
		static("place-content-end", "place-content: end"),
		static("place-content-between", "place-content: space-between"),
		static("place-content-stretch", "place-content: stretch"),
		static("place-items-start", "place-items: start"),
		static("place-items-end", "place-items: end"),
		static("place-items-center", "place-items: center"),
		static("place-items-stretch", "place-items: stretch"),
		static("place-self-auto", "place-self: auto"),
		static("place-self-start", "place-self: start"),
		static("place-self-end", "place-self: end"),
		static("place-self-center", "place-self: center"),
		static("place-self-stretch", "place-self: stretch"),

		utility.Pair("space-x-reverse", childSelector, decls("--tw-space-x-reverse: 1")...).
			WithGlobals(property("--tw-space-x-reverse", "*", "0")),
		utility.Pair("space-y-reverse", childSelector, decls("--tw-space-y-reverse: 1")...).
			WithGlobals(property("--tw-space-y-reverse", "*", "0")),
		utility.Pair("divide-x-reverse", childSelector, decls("--tw-divide-x-reverse: 1")...).
			WithGlobals(property("--tw-divide-x-reverse", "*", "0")),
		utility.Pair("divide-y-reverse", childSelector, decls("--tw-divide-y-reverse: 1")...).
			WithGlobals(property("--tw-divide-y-reverse", "*", "0")),
		utility.Pair("divide-solid", childSelector, decls("border-style: solid")...),
		utility.Pair("divide-dashed", childSelector, decls("border-style: dashed")...),
		utility.Pair("divide-dotted", childSelector, decls("border-style: dotted")...),
		utility.Pair("divide-double", childSelector, decls("border-style: double")...),
		utility.Pair("divide-none", childSelector, decls("border-style: none")...),

		static("truncate", "overflow: hidden", "text-overflow: ellipsis", "white-space: nowrap"),
		static("text-ellipsis", "text-overflow: ellipsis"),
		static("text-clip", "text-overflow: clip"),
		static("text-left", "text-align: left"),
		static("text-center", "text-align: center"),
		static("text-right", "text-align: right"),
		static("text-justify", "text-align: justify"),
		static("text-start", "text-align: start"),
		static("text-end", "text-align: end"),
		static("text-wrap", "text-wrap: wrap"),
		static("text-nowrap", "text-wrap: nowrap"),
		static("text-balance", "text-wrap: balance"),
		static("text-pretty", "text-wrap: pretty"),
		static("uppercase", "text-transform: uppercase"),
		static("lowercase", "text-transform: lowercase"),
		static("capitalize", "text-transform: capitalize"),
		static("normal-case", "text-transform: none"),
		static("italic", "font-style: italic"),
		static("not-italic", "font-style: normal"),
		static("antialiased", "-webkit-font-smoothing: antialiased", "-moz-osx-font-smoothing: grayscale"),
		static("subpixel-antialiased", "-webkit-font-smoothing: auto", "-moz-osx-font-smoothing: auto"),
		static("normal-nums", "font-variant-numeric: normal"),
		static("ordinal", "font-variant-numeric: ordinal"),
		static("slashed-zero", "font-variant-numeric: slashed-zero"),
		static("lining-nums", "font-variant-numeric: lining-nums"),
		static("oldstyle-nums", "font-variant-numeric: oldstyle-nums"),
		static("proportional-nums", "font-variant-numeric: proportional-nums"),
		static("tabular-nums", "font-variant-numeric: tabular-nums"),
		static("underline", "text-decoration-line: underline"),
		static("overline", "text-decoration-line: overline"),
		static("line-through", "text-decoration-line: line-through"),
		static("no-underline", "text-decoration-line: none"),
		static("decoration-solid", "text-decoration-style: solid"),
		static("decoration-double", "text-decoration-style: double"),
		static("decoration-dotted", "text-decoration-style: dotted"),
		static("decoration-dashed", "text-decoration-style: dashed"),
		static("decoration-wavy", "text-decoration-style: wavy"),
		static("whitespace-normal", "white-space: normal"),
		static("whitespace-nowrap", "white-space: nowrap"),
		static("whitespace-pre", "white-space: pre"),
		static("whitespace-pre-line", "white-space: pre-line"),
		static("whitespace-pre-wrap", "white-space: pre-wrap"),
		static("whitespace-break-spaces", "white-space: break-spaces"),
		static("break-normal", "overflow-wrap: normal", "word-break: normal"),
		static("break-words", "overflow-wrap: break-word"),
		static("break-all", "word-break: break-all"),
		static("break-keep", "word-break: keep-all"),
		static("hyphens-none", "hyphens: none"),
		static("hyphens-manual", "hyphens: manual"),
		static("hyphens-auto", "hyphens: auto"),
		static("align-baseline", "vertical-align: baseline"),
		static("align-top", "vertical-align: top"),
		static("align-middle", "vertical-align: middle"),
		static("align-bottom", "vertical-align: bottom"),
		static("align-text-top", "vertical-align: text-top"),
		static("align-text-bottom", "vertical-align: text-bottom"),
		static("list-inside", "list-style-position: inside"),
		static("list-outside", "list-style-position: outside"),
		static("list-none", "list-style-type: none"),
		static("list-disc", "list-style-type: disc"),
		static("list-decimal", "list-style-type: decimal"),

		static("bg-fixed", "background-attachment: fixed"),
		static("bg-local", "background-attachment: local"),
		static("bg-scroll", "background-attachment: scroll"),
		static("bg-clip-border", "background-clip: border-box"),
		static("bg-clip-padding", "background-clip: padding-box"),
		static("bg-clip-content", "background-clip: content-box"),
		static("bg-clip-text", "background-clip: text"),
		static("bg-repeat", "background-repeat: repeat"),
		static("bg-no-repeat", "background-repeat: no-repeat"),
		static("bg-repeat-x", "background-repeat: repeat-x"),
		static("bg-repeat-y", "background-repeat: repeat-y"),
		static("bg-repeat-round", "background-repeat: round"),
		static("bg-repeat-space", "background-repeat: space"),

		static("border-solid", "--tw-border-style: solid", "border-style: solid"),
		static("border-dashed", "--tw-border-style: dashed", "border-style: dashed"),
		static("border-dotted", "--tw-border-style: dotted", "border-style: dotted"),
		static("border-double", "--tw-border-style: double", "border-style: double"),
		static("border-hidden", "--tw-border-style: hidden", "border-style: hidden"),
		static("border-none", "--tw-border-style: none", "border-style: none"),
		static("border-collapse", "border-collapse: collapse"),
		static("border-separate", "border-collapse: separate"),
		static("table-auto", "table-layout: auto"),
		static("table-fixed", "table-layout: fixed"),

		static("outline-hidden", "outline: 2px solid transparent", "outline-offset: 2px"),
		static("outline-none", "--tw-outline-style: none", "outline-style: none"),
		static("outline-solid", "--tw-outline-style: solid", "outline-style: solid"),
		static("outline-dashed", "--tw-outline-style: dashed", "outline-style: dashed"),
		static("outline-dotted", "--tw-outline-style: dotted", "outline-style: dotted"),
		static("outline-double", "--tw-outline-style: double", "outline-style: double"),
		static("ring-inset", "--tw-ring-inset: inset"),

		static("appearance-none", "appearance: none"),
		static("appearance-auto", "appearance: auto"),
		static("select-none", "user-select: none"),
		static("select-text", "user-select: text"),
		static("select-all", "user-select: all"),
		static("select-auto", "user-select: auto"),
		static("resize-none", "resize: none"),
		static("resize-y", "resize: vertical"),
		static("resize-x", "resize: horizontal"),
		static("resize", "resize: both"),
		static("snap-start", "scroll-snap-align: start"),
		static("snap-end", "scroll-snap-align: end"),
		static("snap-center", "scroll-snap-align: center"),
		static("snap-none", "scroll-snap-type: none"),
		static("scroll-auto", "scroll-behavior: auto"),
		static("scroll-smooth", "scroll-behavior: smooth"),
		static("touch-auto", "touch-action: auto"),
		static("touch-none", "touch-action: none"),
		static("touch-manipulation", "touch-action: manipulation"),

		static("transform-none", "transform: none").Order(order.Transform),
		static("transform-gpu", "transform: translateZ(0) var(--tw-rotate-x,) var(--tw-rotate-y,) var(--tw-rotate-z,) var(--tw-skew-x,) var(--tw-skew-y,)").Order(order.Transform),
		static("transform-cpu", "transform: var(--tw-rotate-x,) var(--tw-rotate-y,) var(--tw-rotate-z,) var(--tw-skew-x,) var(--tw-skew-y,)").Order(order.Transform),
		static("filter-none", "filter: none"),
		static("backdrop-filter-none", "backdrop-filter: none"),
		static("transition-none", "transition-property: none"),

		static("mix-blend-normal", "mix-blend-mode: normal"),
		static("mix-blend-multiply", "mix-blend-mode: multiply"),
		static("mix-blend-screen", "mix-blend-mode: screen"),
		static("mix-blend-overlay", "mix-blend-mode: overlay"),
		static("mix-blend-darken", "mix-blend-mode: darken"),
		static("mix-blend-lighten", "mix-blend-mode: lighten"),
		static("mix-blend-difference", "mix-blend-mode: difference"),

		static("@container", "container-type: inline-size"),
		static("-webkit-box", "display: -webkit-box"),
	}
	return defs
}
