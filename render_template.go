// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtinTemplate is one embedded template and its post-processing mode.
type builtinTemplate struct {
	path string
	// normalize collapses blank lines after execution. The prompt template
	// is byte-exact and must not be touched.
	normalize bool
}

// builtInTemplates maps template aliases to embedded files.
var builtInTemplates = map[string]builtinTemplate{
	templatePromptName: {path: "templates/prompt.md.gotmpl"},
	templateTableName:  {path: "templates/table.md.gotmpl", normalize: true},
}

// resolveTemplate resolves either custom or built-in template text into a parsed template.
func resolveTemplate(opt Options) (*template.Template, bool, error) {
	templateText := strings.TrimSpace(opt.TemplateText)
	if templateText != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(opt.TemplateText)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrParseCustomTemplate, err)
		}

		return parsed, true, nil
	}

	templateName := normalizeTemplateName(opt.TemplateName)
	if templateName == "" {
		templateName = defaultTemplateName
	}

	templateText, err := BuiltinTemplate(templateName)
	if err != nil {
		return nil, false, err
	}

	parsed, err := template.New(templateName).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, false, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, templateName, err)
	}

	return parsed, builtInTemplates[templateName].normalize, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside markdown templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"cell": escapeTableCell,
		"code": func(value string) string {
			return "`" + escapeInline(value) + "`"
		},
		"join":  strings.Join,
		"lower": strings.ToLower,
	}
}
