// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Model is the storyboard model identifier written into every document.
const Model = "sora-2-pro-storyboard"

// Document is the prompt document consumed by the video generation API.
// Field names are part of the wire contract.
type Document struct {
	Model       string       `json:"model"`
	AspectRatio string       `json:"aspect_ratio"`
	NFrames     int          `json:"n_frames"`
	Shots       []PromptShot `json:"shots"`
}

// PromptShot is one rendered shot of the prompt document.
//
// The capitalized "Scene" key is what downstream consumers already parse.
type PromptShot struct {
	Duration                int      `json:"duration"`
	Scene                   string   `json:"Scene"`
	Character               string   `json:"character"`
	Cinematography          string   `json:"cinematography"`
	Audio                   string   `json:"audio"`
	Product                 string   `json:"product,omitempty"`
	Actions                 string   `json:"actions"`
	UGCAuthenticityKeywords []string `json:"ugc_authenticity_keywords"`
	QualityControlNegatives []string `json:"quality_control_negatives"`
}

// Generate derives the prompt document from a state.
//
// The caller is expected to validate first; Generate does not re-validate.
// Missing optional fields contribute nothing and never cause a panic.
func Generate(state State) Document {
	character := characterDescription(state.Character)
	cinematography := baseCinematography(state.Cinematography)
	audio := baseAudio(state.Audio)
	product := productDescription(state.Product)
	keywords := AuthenticityKeywords(state)

	shots := make([]PromptShot, 0, len(state.Shots))
	for _, shot := range state.Shots {
		shots = append(shots, PromptShot{
			Duration:                shot.Duration,
			Scene:                   sceneText(state, shot),
			Character:               character,
			Cinematography:          appendNote(cinematography, shot.Cinematography),
			Audio:                   appendNote(audio, shot.AudioNotes),
			Product:                 product,
			Actions:                 shot.Actions,
			UGCAuthenticityKeywords: cloneStrings(keywords),
			QualityControlNegatives: cloneStrings(state.QCNegatives),
		})
	}

	return Document{
		Model:       Model,
		AspectRatio: state.AspectRatio.PromptAspectRatio(),
		NFrames:     FrameCount(int(state.FrameRate), float64(state.TotalDuration())),
		Shots:       shots,
	}
}

// FrameCount returns fps*seconds rounded to the nearest integer, halves away from zero.
func FrameCount(fps int, seconds float64) int {
	return int(math.Round(float64(fps) * seconds))
}

// AuthenticityKeywords classifies the state into the fixed-order UGC keyword list.
func AuthenticityKeywords(state State) []string {
	keywords := make([]string, 0, 6)

	device := string(state.Device)
	if strings.Contains(device, "iphone") || strings.Contains(device, "pixel") {
		keywords = append(keywords, "smartphone selfie")
	} else {
		keywords = append(keywords, "camera recording")
	}

	if strings.Contains(state.Cinematography.Motion, "handheld") {
		keywords = append(keywords, "handheld realism")
	} else {
		keywords = append(keywords, "stable shot")
	}

	location := state.Setting.Location
	if strings.Contains(location, "kitchen") || strings.Contains(location, "home") {
		keywords = append(keywords, "home setting")
	} else {
		keywords = append(keywords, "location setting")
	}

	if strings.Contains(state.Setting.Lighting, "natural") {
		keywords = append(keywords, "natural light")
	} else {
		keywords = append(keywords, "lighting")
	}

	if state.Style == StyleUGCSelfie {
		keywords = append(keywords, "direct-to-camera")
	} else {
		keywords = append(keywords, "on-camera")
	}

	if state.SingleTake {
		keywords = append(keywords, "single take")
	}

	return keywords
}

// JSON encodes the document with two-space indentation and a trailing newline.
// HTML characters are kept verbatim since dialogue often contains them.
func (d Document) JSON() ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(d.normalized()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return out.Bytes(), nil
}

// normalized replaces nil lists so they encode as [] rather than null.
func (d Document) normalized() Document {
	shots := make([]PromptShot, len(d.Shots))
	for i, shot := range d.Shots {
		shot.UGCAuthenticityKeywords = cloneStrings(shot.UGCAuthenticityKeywords)
		shot.QualityControlNegatives = cloneStrings(shot.QualityControlNegatives)
		shots[i] = shot
	}

	d.Shots = shots
	return d
}

func characterDescription(c Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s, with %s, %s, %s. Wearing %s", c.EthnicityGender, c.AgeRange, c.Hair, c.Eyes, c.Skin, c.Outfit)
	if c.Accessories != "" {
		b.WriteString(", accessorized with ")
		b.WriteString(c.Accessories)
	}

	b.WriteString(". Natural skin texture without filters. Personality: ")
	b.WriteString(strings.Join(c.PersonaTone, ", "))
	b.WriteString(".")
	return b.String()
}

func baseCinematography(c Cinematography) string {
	return strings.Join([]string{c.Framing, c.Angle, c.Motion, c.DOF, c.ColorGrade}, ", ")
}

func baseAudio(a Audio) string {
	var b strings.Builder
	b.WriteString(a.Mic)
	if a.RoomReverb != "" {
		b.WriteString(", ")
		b.WriteString(a.RoomReverb)
	}

	if a.BGNoise != "" {
		fmt.Fprintf(&b, ", with faint %s in the background", a.BGNoise)
	}

	if !a.Music {
		b.WriteString(", no music")
	}

	return b.String()
}

// productDescription returns "" when no product is attached.
func productDescription(p *Product) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s, with %s label", p.Name, p.Form, p.JarLabel)
	if p.Emphasis != "" {
		b.WriteString(". ")
		b.WriteString(p.Emphasis)
	}

	b.WriteString(". Label clearly legible.")
	return b.String()
}

func sceneText(state State, shot Shot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s in %s. %s. %s",
		state.Device.Description(),
		strings.ToLower(string(state.Style)),
		state.Setting.Location,
		state.Setting.BackgroundElems,
		shot.SceneSummary,
	)

	if state.SingleTake {
		b.WriteString(". No cuts; one continuous take.")
	}

	return b.String()
}

// appendNote appends a per-shot override as ". note" when non-empty.
func appendNote(base, note string) string {
	if note == "" {
		return base
	}

	return base + ". " + note
}
