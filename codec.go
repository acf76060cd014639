// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// StateFormatJSON encodes state as JSON, the persisted snapshot format.
	StateFormatJSON StateFormat = "json"
	// StateFormatYAML encodes state as YAML with section comments.
	StateFormatYAML StateFormat = "yaml"
)

// StateFormat selects the state encoding.
type StateFormat string

// stateSectionComments annotates top-level YAML keys with form step names.
var stateSectionComments = map[string]string{
	"aspect_ratio_ui": "Format: aspect ratio (9:16, 1:1, 16:9); resolution is derived from it",
	"fps":             "Format: frames per second (24, 25, 30, 60)",
	"device":          "Format: iphone_15_pro_front, iphone_14_front, pixel_8_front, dslr",
	"style":           "Format: UGC selfie, Talking head, B-roll, Studio",
	"character":       "Character",
	"setting":         "Setting",
	"cinematography":  "Cinematography shared by every shot",
	"audio":           "Audio shared by every shot",
	"product":         "Product (remove the block for a video without product)",
	"qc_negatives":    "Quality control negatives",
	"shots":           "Script & shots (total duration at least 5s)",
}

// StateFormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func StateFormatFromPath(path string) StateFormat {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(path))) {
	case ".yaml", ".yml":
		return StateFormatYAML
	default:
		return StateFormatJSON
	}
}

// DecodeState decodes a state blob. Decoding failures wrap ErrDecodeState and
// are distinct from validation failures: a decoded state may still be invalid.
func DecodeState(data []byte, format StateFormat) (State, error) {
	format, err := normalizeStateFormat(format)
	if err != nil {
		return State{}, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return State{}, fmt.Errorf("%w: empty input", ErrDecodeState)
	}

	// Decoding through a pointer tells a null document apart from an object.
	var state *State
	switch format {
	case StateFormatYAML:
		err = yaml.Unmarshal(data, &state)
	default:
		err = json.Unmarshal(data, &state)
	}

	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrDecodeState, err)
	}

	if state == nil {
		return State{}, fmt.Errorf("%w: null document", ErrDecodeState)
	}

	return *state, nil
}

// EncodeState encodes a state in the selected format.
func EncodeState(state State, format StateFormat) ([]byte, error) {
	format, err := normalizeStateFormat(format)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case StateFormatYAML:
		data, err = marshalStateYAML(state)
	default:
		data, err = marshalStateJSON(state)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeState, err)
	}

	return data, nil
}

// normalizeStateFormat validates format and falls back to JSON when empty.
func normalizeStateFormat(format StateFormat) (StateFormat, error) {
	switch StateFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", StateFormatJSON:
		return StateFormatJSON, nil
	case StateFormatYAML, "yml":
		return StateFormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStateFormat, format)
	}
}

// marshalStateJSON serializes state as pretty JSON.
func marshalStateJSON(state State) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(stateForEncoding(state)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalStateYAML serializes state as YAML with section head comments.
func marshalStateYAML(state State) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(stateForEncoding(state)); err != nil {
		return nil, err
	}

	if root.Kind != yaml.MappingNode {
		return nil, errors.New("state did not encode as a mapping")
	}

	for index := 0; index+1 < len(root.Content); index += 2 {
		keyNode := root.Content[index]
		if comment, ok := stateSectionComments[keyNode.Value]; ok {
			keyNode.HeadComment = comment
		}
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{&root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// stateForEncoding deep-copies state; Clone never yields nil lists, so
// they encode as [] rather than null.
func stateForEncoding(state State) State {
	return state.Clone()
}
