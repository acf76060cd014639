// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// presetCatalogYAML is the embedded preset catalog.
//
//go:embed presets/catalog.yaml
var presetCatalogYAML []byte

// Preset is a named, fully populated example state.
type Preset struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	State       State  `json:"state" yaml:"state"`
}

// presetCatalog is the decoded layout of presets/catalog.yaml.
type presetCatalog struct {
	Presets []Preset `yaml:"presets"`
}

var (
	catalogOnce    sync.Once
	catalogPresets []Preset
	catalogErr     error
)

// Presets returns every built-in preset in catalog order. Returned states are
// deep copies and may be mutated freely.
func Presets() []Preset {
	presets := loadPresetCatalog()
	out := make([]Preset, 0, len(presets))
	for _, preset := range presets {
		preset.State = preset.State.Clone()
		out = append(out, preset)
	}

	return out
}

// LookupPreset returns the preset with the given identifier.
func LookupPreset(id string) (Preset, bool) {
	id = strings.TrimSpace(id)
	for _, preset := range loadPresetCatalog() {
		if preset.ID == id {
			preset.State = preset.State.Clone()
			return preset, true
		}
	}

	return Preset{}, false
}

// PresetState returns the state of the named preset, or DefaultState for an
// unknown identifier. An unknown identifier is not an error.
func PresetState(id string) State {
	if preset, ok := LookupPreset(id); ok {
		return preset.State
	}

	return DefaultState()
}

// PresetIDs returns catalog identifiers in catalog order.
func PresetIDs() []string {
	presets := loadPresetCatalog()
	ids := make([]string, 0, len(presets))
	for _, preset := range presets {
		ids = append(ids, preset.ID)
	}

	return ids
}

// loadPresetCatalog decodes the embedded catalog once. The catalog ships with
// the binary, so a decode failure is a build defect and panics.
func loadPresetCatalog() []Preset {
	catalogOnce.Do(func() {
		catalogPresets, catalogErr = decodePresetCatalog(presetCatalogYAML)
	})

	if catalogErr != nil {
		panic(catalogErr)
	}

	return catalogPresets
}

// decodePresetCatalog parses catalog YAML and re-derives each preset resolution.
func decodePresetCatalog(data []byte) ([]Preset, error) {
	var catalog presetCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodePresetCatalog, err)
	}

	seen := make(map[string]struct{}, len(catalog.Presets))
	for i := range catalog.Presets {
		preset := &catalog.Presets[i]
		if preset.ID == "" {
			return nil, fmt.Errorf("%w: preset #%d has no id", ErrDecodePresetCatalog, i)
		}

		if _, dup := seen[preset.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate preset id %q", ErrDecodePresetCatalog, preset.ID)
		}

		seen[preset.ID] = struct{}{}
		preset.State.Resolution = preset.State.AspectRatio.Resolution()
	}

	return catalog.Presets, nil
}
