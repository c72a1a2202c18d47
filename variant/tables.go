package variant

type pseudoElement struct {
	name     string
	template string
}

var pseudoElements = []pseudoElement{
	{"before", "&::before"},
	{"after", "&::after"},
	{"first-letter", "&::first-letter"},
	{"first-line", "&::first-line"},
	{"marker", "& *::marker, &::marker"},
	{"selection", "& *::selection, &::selection"},
	{"file", "&::file-selector-button"},
	{"placeholder", "&::placeholder"},
	{"backdrop", "&::backdrop"},
}

type pseudoClass struct {
	name   string
	pseudo string
}

// Registration order is cascade order: "hover:" rules come after
// "focus-within:" rules, "disabled:" after all of them.
var pseudoClasses = []pseudoClass{
	{"first", ":first-child"},
	{"last", ":last-child"},
	{"only", ":only-child"},
	{"odd", ":nth-child(odd)"},
	{"even", ":nth-child(even)"},
	{"first-of-type", ":first-of-type"},
	{"last-of-type", ":last-of-type"},
	{"only-of-type", ":only-of-type"},
	{"visited", ":visited"},
	{"target", ":target"},
	{"open", ":is([open], :popover-open)"},
	{"default", ":default"},
	{"checked", ":checked"},
	{"indeterminate", ":indeterminate"},
	{"placeholder-shown", ":placeholder-shown"},
	{"autofill", ":autofill"},
	{"optional", ":optional"},
	{"required", ":required"},
	{"valid", ":valid"},
	{"invalid", ":invalid"},
	{"in-range", ":in-range"},
	{"out-of-range", ":out-of-range"},
	{"read-only", ":read-only"},
	{"empty", ":empty"},
	{"focus-within", ":focus-within"},
	{"hover", ":hover"},
	{"focus", ":focus"},
	{"focus-visible", ":focus-visible"},
	{"active", ":active"},
	{"enabled", ":enabled"},
	{"disabled", ":disabled"},
}

type environmentVariant struct {
	name     string
	selector string
	atRule   string
}

var environment = []environmentVariant{
	{name: "ltr", selector: `&:where(:dir(ltr), [dir="ltr"], [dir="ltr"] *)`},
	{name: "rtl", selector: `&:where(:dir(rtl), [dir="rtl"], [dir="rtl"] *)`},
	{name: "motion-safe", atRule: "@media (prefers-reduced-motion: no-preference)"},
	{name: "motion-reduce", atRule: "@media (prefers-reduced-motion: reduce)"},
	{name: "contrast-more", atRule: "@media (prefers-contrast: more)"},
	{name: "contrast-less", atRule: "@media (prefers-contrast: less)"},
	{name: "portrait", atRule: "@media (orientation: portrait)"},
	{name: "landscape", atRule: "@media (orientation: landscape)"},
	{name: "forced-colors", atRule: "@media (forced-colors: active)"},
	{name: "print", atRule: "@media print"},
}

var ariaStates = []string{
	"busy",
	"checked",
	"disabled",
	"expanded",
	"hidden",
	"pressed",
	"readonly",
	"required",
	"selected",
}
