// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templatePromptName
)

const (
	templatePromptName = "prompt"
	templateTableName  = "table"
)

// Options configures Render and RenderMarkdown.
type Options struct {
	// TemplateName selects a built-in markdown template ("prompt" or "table").
	TemplateName string
	// TemplateText overrides TemplateName with custom template text.
	TemplateText string
	// Validate makes Render reject invalid states instead of trusting the caller.
	Validate bool
}

// Output bundles both renderings of one state.
type Output struct {
	Document Document
	JSON     []byte
	Markdown string
}

// Render generates the prompt document and encodes it as JSON and Markdown.
func Render(state State, opt Options) (Output, error) {
	if opt.Validate {
		if err := Validate(state).Err(); err != nil {
			return Output{}, err
		}
	}

	doc := Generate(state)
	jsonBytes, err := doc.JSON()
	if err != nil {
		return Output{}, err
	}

	markdown, err := RenderMarkdown(doc, opt)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Document: doc,
		JSON:     jsonBytes,
		Markdown: markdown,
	}, nil
}

// RenderMarkdown renders a prompt document. The markdown is derived from the
// document only, so every field it shows is the one sent to the API.
func RenderMarkdown(doc Document, opt Options) (string, error) {
	markdownTemplate, normalize, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, buildRenderView(doc)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	if !normalize {
		return out.String(), nil
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(out.String())), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplates))
	for name := range builtInTemplates {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	if name == "" {
		name = defaultTemplateName
	}

	builtin, ok := builtInTemplates[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(builtin.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
