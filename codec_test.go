// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"errors"
	"reflect"
	"testing"
)

func TestStateFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]StateFormat{
		"state.yaml":     StateFormatYAML,
		"STATE.YML":      StateFormatYAML,
		"state.json":     StateFormatJSON,
		"state":          StateFormatJSON,
		" dir/state.yml": StateFormatYAML,
	}

	for path, want := range tests {
		if got := StateFormatFromPath(path); got != want {
			t.Fatalf("StateFormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestStateRoundTripJSON(t *testing.T) {
	t.Parallel()

	state := PresetState("selfie-kitchen-iphone-15")
	data, err := EncodeState(state, StateFormatJSON)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}

	text := string(data)
	for _, key := range []string{`"aspect_ratio_ui": "9:16"`, `"fps": 30`, `"sceneSummary"`, `"audioNotes"`, `"jar_label"`} {
		assertContains(t, text, key)
	}

	decoded, err := DecodeState(data, StateFormatJSON)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	if !reflect.DeepEqual(decoded, state) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, state)
	}
}

func TestStateRoundTripYAML(t *testing.T) {
	t.Parallel()

	state := PresetState("talking-head-studio")
	data, err := EncodeState(state, "yml")
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}

	text := string(data)
	assertContains(t, text, "# Script & shots (total duration at least 5s)\nshots:")
	assertContains(t, text, "# Character\ncharacter:")
	assertNotContains(t, text, "product:")

	decoded, err := DecodeState(data, StateFormatYAML)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	if !reflect.DeepEqual(decoded, state) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, state)
	}
}

func TestEncodeStateEmptyListsAsArrays(t *testing.T) {
	t.Parallel()

	data, err := EncodeState(State{}, StateFormatJSON)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}

	text := string(data)
	assertContains(t, text, `"qc_negatives": []`)
	assertContains(t, text, `"shots": []`)
	assertContains(t, text, `"persona_tone": []`)
	assertNotContains(t, text, "null")
}

func TestDecodeStateRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		format StateFormat
	}{
		{name: "empty", data: "  \n", format: StateFormatJSON},
		{name: "truncated json", data: `{"fps": 30,`, format: StateFormatJSON},
		{name: "wrong type", data: `{"shots": "many"}`, format: StateFormatJSON},
		{name: "yaml list", data: "- a\n- b\n", format: StateFormatYAML},
		{name: "json null", data: " null\n", format: StateFormatJSON},
		{name: "yaml null", data: "null\n", format: StateFormatYAML},
		{name: "yaml tilde", data: "~\n", format: StateFormatYAML},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeState([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrDecodeState) {
				t.Fatalf("expected ErrDecodeState, got %v", err)
			}
		})
	}
}

func TestDecodeStateKeepsUnknownEnums(t *testing.T) {
	t.Parallel()

	state, err := DecodeState([]byte(`{"aspect_ratio_ui":"4:3","fps":29,"device":"gopro","style":"vlog"}`), StateFormatJSON)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	if state.AspectRatio != "4:3" || state.FrameRate != 29 {
		t.Fatalf("decoder rewrote raw values: %+v", state)
	}

	result := Validate(state)
	if !result.Has(ErrInvalidEnum) {
		t.Fatalf("expected enum errors, got %v", result.Errors)
	}
}

func TestUnknownStateFormat(t *testing.T) {
	t.Parallel()

	if _, err := EncodeState(DefaultState(), "toml"); !errors.Is(err, ErrUnknownStateFormat) {
		t.Fatalf("EncodeState: expected ErrUnknownStateFormat, got %v", err)
	}

	if _, err := DecodeState([]byte("{}"), "toml"); !errors.Is(err, ErrUnknownStateFormat) {
		t.Fatalf("DecodeState: expected ErrUnknownStateFormat, got %v", err)
	}
}
