// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"reflect"
	"testing"
)

func TestDefaultState(t *testing.T) {
	t.Parallel()

	state := DefaultState()
	if state.AspectRatio != AspectRatioPortrait || state.Resolution != "1080x1920" {
		t.Fatalf("unexpected format: %s %s", state.AspectRatio, state.Resolution)
	}

	if state.FrameRate != FrameRate30 || state.Device != DeviceIPhone15ProFront || state.Style != StyleUGCSelfie || !state.SingleTake {
		t.Fatalf("unexpected defaults: %+v", state)
	}

	if state.Product != nil || len(state.QCNegatives) != 0 {
		t.Fatalf("blank state carries product or negatives")
	}

	if len(state.Shots) != 1 || state.Shots[0].Duration != 15 {
		t.Fatalf("unexpected shots: %+v", state.Shots)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	t.Parallel()

	state := PresetState("selfie-kitchen-iphone-15")
	clone := state.Clone()

	clone.Character.PersonaTone[0] = "calm"
	clone.QCNegatives[0] = "no lens flare"
	clone.Shots[0].Actions = "changed"
	clone.Product.Name = "Other"

	if state.Character.PersonaTone[0] != "energetic" || state.QCNegatives[0] != "no subtitles" {
		t.Fatalf("clone shares slices with original")
	}

	if state.Shots[0].Actions == "changed" || state.Product.Name != "Body Gleam" {
		t.Fatalf("clone shares shots or product with original")
	}
}

func TestSetAspectRatioDerivesResolution(t *testing.T) {
	t.Parallel()

	want := map[AspectRatio]string{
		AspectRatioPortrait:  "1080x1920",
		AspectRatioSquare:    "1080x1080",
		AspectRatioLandscape: "1920x1080",
	}

	for ratio, resolution := range want {
		state := DefaultState()
		state.SetAspectRatio(ratio)
		if state.Resolution != resolution {
			t.Fatalf("%s: resolution = %s, want %s", ratio, state.Resolution, resolution)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	state := PresetState("talking-head-studio")
	state.AspectRatio = "4:3"
	state.FrameRate = 12
	state.Device = "gopro"
	state.Style = "vlog"

	changed := state.Normalize()
	want := []string{"aspect_ratio_ui", "fps", "device", "style", "resolution"}
	if !reflect.DeepEqual(changed, want) {
		t.Fatalf("changed = %v, want %v", changed, want)
	}

	if state.AspectRatio != DefaultAspectRatio || state.Resolution != "1080x1920" || state.FrameRate != DefaultFrameRate ||
		state.Device != DefaultDevice || state.Style != DefaultStyle {
		t.Fatalf("unexpected normalized state: %+v", state)
	}

	if again := state.Normalize(); len(again) != 0 {
		t.Fatalf("normalize is not idempotent: %v", again)
	}
}

func TestShotEditing(t *testing.T) {
	t.Parallel()

	state := DefaultState()
	state.Shots[0].SceneSummary = "first"

	state.AddShot()
	if len(state.Shots) != 2 || state.Shots[1].Duration != 10 || state.TotalDuration() != 25 {
		t.Fatalf("AddShot: %+v", state.Shots)
	}

	if !state.DuplicateShot(0) || state.Shots[1].SceneSummary != "first" || len(state.Shots) != 3 {
		t.Fatalf("DuplicateShot: %+v", state.Shots)
	}

	state.Shots[2].SceneSummary = "last"
	if !state.MoveShot(2, 0) || state.Shots[0].SceneSummary != "last" || state.Shots[1].SceneSummary != "first" {
		t.Fatalf("MoveShot: %+v", state.Shots)
	}

	if state.DuplicateShot(5) || state.MoveShot(0, 3) || state.RemoveShot(-1) {
		t.Fatal("out of range edits must be rejected")
	}

	if !state.RemoveShot(0) || !state.RemoveShot(0) {
		t.Fatalf("RemoveShot: %+v", state.Shots)
	}

	if state.RemoveShot(0) || len(state.Shots) != 1 {
		t.Fatalf("last shot must not be removed: %+v", state.Shots)
	}
}

func TestToggleTonePreservesOrder(t *testing.T) {
	t.Parallel()

	state := DefaultState()
	state.ToggleTone("warm")
	state.ToggleTone("calm")
	state.ToggleTone("energetic")
	state.ToggleTone("calm")

	if want := []string{"warm", "energetic"}; !reflect.DeepEqual(state.Character.PersonaTone, want) {
		t.Fatalf("tones = %v, want %v", state.Character.PersonaTone, want)
	}

	state.ToggleNegative("no blur")
	state.ToggleNegative("no filters")
	state.ToggleNegative("no blur")
	if want := []string{"no filters"}; !reflect.DeepEqual(state.QCNegatives, want) {
		t.Fatalf("negatives = %v, want %v", state.QCNegatives, want)
	}
}

func TestProductToggle(t *testing.T) {
	t.Parallel()

	state := DefaultState()
	state.EnableProduct()
	if state.Product == nil {
		t.Fatal("EnableProduct did not attach product")
	}

	state.Product.Name = "Jar"
	state.EnableProduct()
	if state.Product.Name != "Jar" {
		t.Fatal("EnableProduct replaced existing product")
	}

	state.DisableProduct()
	if state.Product != nil {
		t.Fatal("DisableProduct kept product")
	}
}

func TestSuggestionsAreCopies(t *testing.T) {
	t.Parallel()

	first := Suggestions()
	first.QCNegatives[0] = "mutated"

	second := Suggestions()
	if second.QCNegatives[0] != "no subtitles" || len(second.PersonaTones) != 8 || len(second.Locations) != 8 {
		t.Fatalf("suggestions leaked mutation or changed size: %+v", second)
	}
}
