// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import "slices"

const (
	// MinTotalDuration is the smallest accepted sum of shot durations, in seconds.
	MinTotalDuration = 5
	// defaultFirstShotDuration is the duration of the single shot in a blank state.
	defaultFirstShotDuration = 15
	// defaultAddedShotDuration is the duration of shots appended by AddShot.
	defaultAddedShotDuration = 10
)

// State is the complete builder form state describing one video prompt.
//
// Field names of the JSON and YAML encodings match the persisted snapshot
// written by the builder, so existing snapshots decode unchanged.
type State struct {
	AspectRatio    AspectRatio    `json:"aspect_ratio_ui" yaml:"aspect_ratio_ui" validate:"enum"`
	Resolution     string         `json:"resolution" yaml:"resolution"`
	FrameRate      FrameRate      `json:"fps" yaml:"fps" validate:"enum"`
	Device         Device         `json:"device" yaml:"device" validate:"enum"`
	Style          Style          `json:"style" yaml:"style" validate:"enum"`
	SingleTake     bool           `json:"single_take" yaml:"single_take"`
	Character      Character      `json:"character" yaml:"character"`
	Setting        Setting        `json:"setting" yaml:"setting"`
	Cinematography Cinematography `json:"cinematography" yaml:"cinematography"`
	Audio          Audio          `json:"audio" yaml:"audio"`
	Product        *Product       `json:"product,omitempty" yaml:"product,omitempty"`
	QCNegatives    []string       `json:"qc_negatives" yaml:"qc_negatives"`
	Shots          []Shot         `json:"shots" yaml:"shots" validate:"min=1,dive"`
}

// Character describes the on-camera person.
type Character struct {
	EthnicityGender string   `json:"ethnicity_gender" yaml:"ethnicity_gender" validate:"required"`
	AgeRange        string   `json:"age_range" yaml:"age_range" validate:"required"`
	Hair            string   `json:"hair" yaml:"hair" validate:"required"`
	Eyes            string   `json:"eyes" yaml:"eyes" validate:"required"`
	Skin            string   `json:"skin" yaml:"skin" validate:"required"`
	Outfit          string   `json:"outfit" yaml:"outfit" validate:"required"`
	Accessories     string   `json:"accessories" yaml:"accessories"`
	PersonaTone     []string `json:"persona_tone" yaml:"persona_tone" validate:"min=1"`
}

// Setting describes where the video is recorded.
type Setting struct {
	Location        string `json:"location" yaml:"location" validate:"required"`
	BackgroundElems string `json:"background_elems" yaml:"background_elems" validate:"required"`
	Lighting        string `json:"lighting" yaml:"lighting" validate:"required"`
}

// Cinematography holds the base camera language shared by every shot.
type Cinematography struct {
	Framing    string `json:"framing" yaml:"framing" validate:"required"`
	Angle      string `json:"angle" yaml:"angle" validate:"required"`
	Motion     string `json:"motion" yaml:"motion" validate:"required"`
	DOF        string `json:"dof" yaml:"dof" validate:"required"`
	ColorGrade string `json:"color_grade" yaml:"color_grade" validate:"required"`
}

// Audio holds the base sound description shared by every shot.
type Audio struct {
	Mic        string `json:"mic" yaml:"mic" validate:"required"`
	RoomReverb string `json:"room_reverb" yaml:"room_reverb" validate:"required"`
	BGNoise    string `json:"bg_noise" yaml:"bg_noise"`
	Music      bool   `json:"music" yaml:"music"`
}

// Product is the optional product featured in the video.
type Product struct {
	Name     string `json:"name" yaml:"name"`
	Form     string `json:"form" yaml:"form"`
	JarLabel string `json:"jar_label" yaml:"jar_label"`
	Emphasis string `json:"emphasis" yaml:"emphasis"`
}

// Shot is one ordered segment of the video.
type Shot struct {
	Duration       int    `json:"duration" yaml:"duration" validate:"min=1"`
	SceneSummary   string `json:"sceneSummary" yaml:"sceneSummary" validate:"required"`
	Actions        string `json:"actions" yaml:"actions" validate:"required"`
	Cinematography string `json:"cinematography" yaml:"cinematography"`
	AudioNotes     string `json:"audioNotes" yaml:"audioNotes"`
}

// DefaultState returns the blank builder state.
func DefaultState() State {
	return State{
		AspectRatio: DefaultAspectRatio,
		Resolution:  DefaultAspectRatio.Resolution(),
		FrameRate:   DefaultFrameRate,
		Device:      DefaultDevice,
		Style:       DefaultStyle,
		SingleTake:  true,
		Character:   Character{PersonaTone: []string{}},
		QCNegatives: []string{},
		Shots:       []Shot{{Duration: defaultFirstShotDuration}},
	}
}

// Clone returns a deep copy that shares no slices or pointers with s.
func (s State) Clone() State {
	out := s
	out.Character.PersonaTone = cloneStrings(s.Character.PersonaTone)
	out.QCNegatives = cloneStrings(s.QCNegatives)
	out.Shots = append(make([]Shot, 0, len(s.Shots)), s.Shots...)
	if s.Product != nil {
		product := *s.Product
		out.Product = &product
	}

	return out
}

// TotalDuration returns the sum of all shot durations in seconds.
func (s State) TotalDuration() int {
	total := 0
	for _, shot := range s.Shots {
		total += shot.Duration
	}

	return total
}

// SetAspectRatio selects a ratio and re-derives the bound resolution.
func (s *State) SetAspectRatio(ratio AspectRatio) {
	s.AspectRatio = ratio
	s.Resolution = ratio.Resolution()
}

// Normalize replaces unknown enumeration values by their defaults and
// re-derives resolution. It returns the field paths it rewrote.
func (s *State) Normalize() []string {
	var changed []string
	if !s.AspectRatio.Known() {
		s.AspectRatio = DefaultAspectRatio
		changed = append(changed, "aspect_ratio_ui")
	}

	if !s.FrameRate.Known() {
		s.FrameRate = DefaultFrameRate
		changed = append(changed, "fps")
	}

	if !s.Device.Known() {
		s.Device = DefaultDevice
		changed = append(changed, "device")
	}

	if !s.Style.Known() {
		s.Style = DefaultStyle
		changed = append(changed, "style")
	}

	if resolution := s.AspectRatio.Resolution(); s.Resolution != resolution {
		s.Resolution = resolution
		changed = append(changed, "resolution")
	}

	return changed
}

// AddShot appends a blank shot.
func (s *State) AddShot() {
	s.Shots = append(s.Shots, Shot{Duration: defaultAddedShotDuration})
}

// DuplicateShot inserts a copy of shot i right after it.
func (s *State) DuplicateShot(i int) bool {
	if i < 0 || i >= len(s.Shots) {
		return false
	}

	s.Shots = slices.Insert(s.Shots, i+1, s.Shots[i])
	return true
}

// RemoveShot deletes shot i. The last remaining shot is never removed.
func (s *State) RemoveShot(i int) bool {
	if len(s.Shots) <= 1 || i < 0 || i >= len(s.Shots) {
		return false
	}

	s.Shots = slices.Delete(s.Shots, i, i+1)
	return true
}

// MoveShot moves shot from to position to, shifting the shots in between.
func (s *State) MoveShot(from, to int) bool {
	if from < 0 || from >= len(s.Shots) || to < 0 || to >= len(s.Shots) {
		return false
	}

	if from == to {
		return true
	}

	shot := s.Shots[from]
	s.Shots = slices.Delete(s.Shots, from, from+1)
	s.Shots = slices.Insert(s.Shots, to, shot)
	return true
}

// ToggleTone adds tone when missing and removes it when present.
func (s *State) ToggleTone(tone string) {
	s.Character.PersonaTone = toggle(s.Character.PersonaTone, tone)
}

// ToggleNegative adds a QC negative when missing and removes it when present.
func (s *State) ToggleNegative(negative string) {
	s.QCNegatives = toggle(s.QCNegatives, negative)
}

// EnableProduct attaches a blank product unless one is already present.
func (s *State) EnableProduct() {
	if s.Product == nil {
		s.Product = &Product{}
	}
}

// DisableProduct removes the product.
func (s *State) DisableProduct() {
	s.Product = nil
}

// toggle implements order-preserving set toggle semantics.
func toggle(values []string, value string) []string {
	if i := slices.Index(values, value); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}

	return append(slices.Clone(values), value)
}

// cloneStrings copies values into a new non-nil slice.
func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
