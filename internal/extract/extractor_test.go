package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyByName(t *testing.T) {
	tests := []struct {
		name     string
		category string
	}{
		{"Button", "Buttons"},
		{"animated-button", "Buttons"},
		{"SubmitBtn", "Buttons"},
		{"GradientCard", "Cards"},
		{"checkbox-group", "Forms"},
		{"ToggleSwitch", "Forms"},
		{"sidebar", "Navigation"},
		{"ConfirmDialog", "Overlays"},
		{"UserAvatar", "Data Display"},
		{"LoadingSpinner", "Feedback"},
		{"FlexContainer", "Layout"},
		{"Heading", "Typography"},
		{"ArrowIcon", "Icons"},
		{"VideoPlayer", "Media"},
		{"FadeTransition", "Animation"},
		{"ThemeProvider", "Styles"},
		{"BarChart", "Data Visualization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, classify(tt.name, ""))
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "button" appears before "card" in the rule table
	assert.Equal(t, "Buttons", classify("ButtonCard", ""))
}

func TestClassifyContentFallback(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		category string
	}{
		{"widget", `return <button onClick={fire}>Go</button>`, "Buttons"},
		{"widget", `return <Card>{body}</Card>`, "Cards"},
		{"widget", `return <input value={v} />`, "Forms"},
		{"widget", `return <Dialog open={open} />`, "Overlays"},
		{"widget", `return <nav>{links}</nav>`, "Navigation"},
		{"widget", `export const x = 1`, DefaultCategory},
		{"widget", "", DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.category, classify(tt.name, tt.content))
		})
	}
}

func TestDescribe(t *testing.T) {
	e := NewExtractor("acme-ui")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"doc block",
			"/**\n * A shimmering call-to-action button.\n * @param children content\n */\nexport const X = 1",
			"A shimmering call-to-action button.",
		},
		{
			"doc block with only annotations falls through to line comment",
			"/**\n * @deprecated\n */\n// legacy button wrapper\nexport const X = 1",
			"legacy button wrapper",
		},
		{
			"line comment",
			"// Renders the primary call to action\nexport const X = 1",
			"Renders the primary call to action",
		},
		{
			"no comments",
			"export const X = 1",
			"Button component from acme-ui",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.describe("Button", tt.content))
		})
	}
}

func TestExtractTags(t *testing.T) {
	content := `
import { useState } from "react";

export const AnimatedButton = React.forwardRef((props, ref) => {
  const [hover, setHover] = useState(false);
  return (
    <button
      ref={ref}
      onClick={props.onClick}
      className="flex bg-gradient-to-r transition-all md:px-4"
    >
      {props.children}
    </button>
  );
});
`
	tags := extractTags(content)

	assert.Equal(t, []string{
		"animated", "composable", "compound", "gradient",
		"hooks", "interactive", "layout", "responsive", "tailwind",
	}, tags)
}

func TestExtractTagsInteractiveMonotonic(t *testing.T) {
	// Any onClick-style binding must always yield "interactive".
	assert.Contains(t, extractTags(`<div onClick={go} />`), "interactive")
	assert.Contains(t, extractTags(`lots of noise onClick more noise`), "interactive")
}

func TestExtractTagsEmpty(t *testing.T) {
	assert.Empty(t, extractTags("export const x = 1"))
}

func TestExtractDependencies(t *testing.T) {
	content := `
import React from "react";
import { motion } from "framer-motion";
import { cn } from "./lib/utils";
import "../styles.css";
import fs from "node:fs";
const clsx = require("clsx");
const local = require("./local-util");
`
	deps := extractDependencies(content)
	assert.Equal(t, []string{"clsx", "framer-motion", "react"}, deps)
}

func TestExtractDependenciesSetSemantics(t *testing.T) {
	content := `
import React from "react";
import { useState } from "react";
import util from "./local-util";
`
	assert.Equal(t, []string{"react"}, extractDependencies(content))
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor("acme-ui")
	item := FileItem{
		Name:      "AnimatedButton.tsx",
		Path:      "components/AnimatedButton.tsx",
		Size:      320,
		SourceURL: "https://github.com/acme/ui-kit/blob/main/components/AnimatedButton.tsx",
	}
	content := `// Animated call to action
import { motion } from "framer-motion";
export const AnimatedButton = () => <button style={{transition: "all"}} />;
`

	first := e.Extract(item, content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(item, content), "iteration %d", i)
	}

	assert.Equal(t, "AnimatedButton", first.Name)
	assert.Equal(t, "Buttons", first.Category)
	assert.Equal(t, "Animated call to action", first.Description)
	assert.Equal(t, []string{"framer-motion"}, first.Dependencies)
	assert.Contains(t, first.Tags, "animated")
	assert.Equal(t, content, first.Code)
	assert.Equal(t, int64(320), first.Size)
}

func TestExtractNameStripsExtension(t *testing.T) {
	e := NewExtractor("acme-ui")

	for _, filename := range []string{"Card.tsx", "Card.jsx", "Card.vue", "Card.svelte"} {
		t.Run(filename, func(t *testing.T) {
			rec := e.Extract(FileItem{Name: filename}, "")
			assert.Equal(t, "Card", rec.Name)
		})
	}
}

func TestExtractDescriptionNeverEmpty(t *testing.T) {
	e := NewExtractor("")
	rec := e.Extract(FileItem{Name: "Widget.tsx"}, "")
	require.NotEmpty(t, rec.Description)
	assert.Equal(t, fmt.Sprintf("Widget component from %s", "the component library"), rec.Description)
}
