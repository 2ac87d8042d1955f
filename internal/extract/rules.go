package extract

// categoryRule maps a filename keyword to a component category.
// Rules are evaluated in order against the lower-cased component name;
// the first substring match wins.
type categoryRule struct {
	Keyword  string
	Category string
}

var categoryRules = []categoryRule{
	{"button", "Buttons"},
	{"btn", "Buttons"},
	{"card", "Cards"},
	{"input", "Forms"},
	{"form", "Forms"},
	{"select", "Forms"},
	{"checkbox", "Forms"},
	{"radio", "Forms"},
	{"toggle", "Forms"},
	{"switch", "Forms"},
	{"slider", "Forms"},
	{"nav", "Navigation"},
	{"header", "Navigation"},
	{"footer", "Navigation"},
	{"sidebar", "Navigation"},
	{"menu", "Navigation"},
	{"tabs", "Navigation"},
	{"modal", "Overlays"},
	{"dialog", "Overlays"},
	{"popover", "Overlays"},
	{"tooltip", "Overlays"},
	{"dropdown", "Overlays"},
	{"sheet", "Overlays"},
	{"drawer", "Overlays"},
	{"badge", "Data Display"},
	{"avatar", "Data Display"},
	{"list", "Data Display"},
	{"table", "Data Display"},
	{"accordion", "Data Display"},
	{"carousel", "Data Display"},
	{"progress", "Feedback"},
	{"spinner", "Feedback"},
	{"loader", "Feedback"},
	{"skeleton", "Feedback"},
	{"alert", "Feedback"},
	{"toast", "Feedback"},
	{"notification", "Feedback"},
	{"layout", "Layout"},
	{"container", "Layout"},
	{"grid", "Layout"},
	{"flex", "Layout"},
	{"section", "Layout"},
	{"divider", "Layout"},
	{"separator", "Layout"},
	{"space", "Layout"},
	{"typography", "Typography"},
	{"text", "Typography"},
	{"heading", "Typography"},
	{"title", "Typography"},
	{"label", "Typography"},
	{"icon", "Icons"},
	{"image", "Media"},
	{"video", "Media"},
	{"animation", "Animation"},
	{"transition", "Animation"},
	{"effect", "Animation"},
	{"gradient", "Styles"},
	{"theme", "Styles"},
	{"chart", "Data Visualization"},
	{"graph", "Data Visualization"},
}

// contentRule maps structural markers in file content to a category.
// Used only when no name keyword matched; evaluated in order, first hit wins.
type contentRule struct {
	Markers  []string
	Category string
}

var contentRules = []contentRule{
	{[]string{"<button"}, "Buttons"},
	{[]string{"<card"}, "Cards"},
	{[]string{"<input", "<form"}, "Forms"},
	{[]string{"<modal", "<dialog"}, "Overlays"},
	{[]string{"<nav"}, "Navigation"},
}

// DefaultCategory is assigned when neither name keywords nor content
// markers match.
const DefaultCategory = "Components"

// tagRule contributes its tag when any marker appears in the lower-cased
// content. Rules are independent; a file can satisfy all of them.
type tagRule struct {
	Tag     string
	Markers []string
}

var tagRules = []tagRule{
	{"animation", []string{"@keyframes", "keyframes", "animation:", "animation-"}},
	{"animated", []string{"transition", "transform"}},
	{"interactive", []string{"onclick", "onchange", "onmouseenter", "onmouseleave", "onmouseover", "onhover", "onfocus"}},
	{"gradient", []string{"gradient"}},
	{"tailwind", []string{"classname=", "@apply", "tailwind"}},
	{"styled-components", []string{"styled.", "styled(", "styled-components"}},
	{"layout", []string{"flex", "grid"}},
	{"responsive", []string{"@media", "sm:", "md:", "lg:", "xl:"}},
	{"hooks", []string{"usestate", "useeffect", "usereducer", "useref", "usememo", "usecallback"}},
	{"composable", []string{"forwardref"}},
	{"compound", []string{"children"}},
}
