// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

// Suggested vocabularies offered by the builder form. They are hints for
// callers building a form; the validator does not restrict fields to them.
var (
	suggestedPersonaTones = []string{
		"energetic", "warm", "persuasive", "neutral",
		"professional", "casual", "enthusiastic", "calm",
	}
	suggestedLocations = []string{
		"modern kitchen", "living room", "bedroom", "bathroom",
		"home office", "outdoor patio", "coffee shop", "studio",
	}
	suggestedFraming = []string{
		"extreme close-up", "close-up", "medium close-up",
		"medium shot", "waist-up", "full body",
	}
	suggestedAngles = []string{
		"slightly high angle", "eye level", "slightly low angle", "high angle", "low angle",
	}
	suggestedMotion = []string{
		"handheld with micro-jitters", "static on tripod", "slow pan right",
		"slow pan left", "slow zoom in", "gimbal smooth",
	}
	suggestedDepthOfField = []string{
		"no background blur", "slight background blur",
		"shallow depth of field, f/2.8", "deep focus, f/8",
	}
	suggestedColorGrades = []string{
		"warm neutral, HDR on", "warm neutral, HDR off", "cool neutral",
		"cinematic neutral, slight teal-orange", "vibrant, saturated", "muted, desaturated",
	}
	suggestedNegatives = []string{
		"no subtitles", "no watermarks", "no text overlays", "no oversaturation",
		"no blur", "no distortion", "no filters", "no excessive color grading",
	}
)

// Vocabulary groups suggestion lists by form field.
type Vocabulary struct {
	PersonaTones []string `json:"persona_tone" yaml:"persona_tone"`
	Locations    []string `json:"location" yaml:"location"`
	Framing      []string `json:"framing" yaml:"framing"`
	Angles       []string `json:"angle" yaml:"angle"`
	Motion       []string `json:"motion" yaml:"motion"`
	DepthOfField []string `json:"dof" yaml:"dof"`
	ColorGrades  []string `json:"color_grade" yaml:"color_grade"`
	QCNegatives  []string `json:"qc_negatives" yaml:"qc_negatives"`
}

// Suggestions returns a copy of every suggestion list.
func Suggestions() Vocabulary {
	return Vocabulary{
		PersonaTones: cloneStrings(suggestedPersonaTones),
		Locations:    cloneStrings(suggestedLocations),
		Framing:      cloneStrings(suggestedFraming),
		Angles:       cloneStrings(suggestedAngles),
		Motion:       cloneStrings(suggestedMotion),
		DepthOfField: cloneStrings(suggestedDepthOfField),
		ColorGrades:  cloneStrings(suggestedColorGrades),
		QCNegatives:  cloneStrings(suggestedNegatives),
	}
}
