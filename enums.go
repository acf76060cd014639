// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import "strconv"

// AspectRatio is the frame shape selected in the builder form.
type AspectRatio string

const (
	// AspectRatioPortrait is the vertical 9:16 frame.
	AspectRatioPortrait AspectRatio = "9:16"
	// AspectRatioSquare is the 1:1 frame.
	AspectRatioSquare AspectRatio = "1:1"
	// AspectRatioLandscape is the horizontal 16:9 frame.
	AspectRatioLandscape AspectRatio = "16:9"
)

// Default enumeration members, used for blank states and as decode fallback.
const (
	DefaultAspectRatio = AspectRatioPortrait
	DefaultFrameRate   = FrameRate30
	DefaultDevice      = DeviceIPhone15ProFront
	DefaultStyle       = StyleUGCSelfie
)

var aspectRatios = []AspectRatio{AspectRatioPortrait, AspectRatioSquare, AspectRatioLandscape}

// AspectRatios returns all aspect ratio members in form order.
func AspectRatios() []AspectRatio {
	return append([]AspectRatio(nil), aspectRatios...)
}

// Known reports whether value is a member of the closed set.
func (a AspectRatio) Known() bool {
	switch a {
	case AspectRatioPortrait, AspectRatioSquare, AspectRatioLandscape:
		return true
	default:
		return false
	}
}

// Values returns allowed raw values.
func (AspectRatio) Values() []string {
	return stringValues(aspectRatios)
}

// Resolution returns the canonical pixel dimensions bound to the ratio.
func (a AspectRatio) Resolution() string {
	switch a {
	case AspectRatioPortrait:
		return "1080x1920"
	case AspectRatioSquare:
		return "1080x1080"
	case AspectRatioLandscape:
		return "1920x1080"
	default:
		return DefaultAspectRatio.Resolution()
	}
}

// PromptAspectRatio returns the aspect ratio keyword of the prompt document.
func (a AspectRatio) PromptAspectRatio() string {
	switch a {
	case AspectRatioPortrait:
		return "portrait"
	case AspectRatioSquare:
		return "square"
	case AspectRatioLandscape:
		return "landscape"
	default:
		return DefaultAspectRatio.PromptAspectRatio()
	}
}

// Label returns the form label.
func (a AspectRatio) Label() string {
	switch a {
	case AspectRatioPortrait:
		return "9:16 (Portrait)"
	case AspectRatioSquare:
		return "1:1 (Square)"
	case AspectRatioLandscape:
		return "16:9 (Landscape)"
	default:
		return string(a)
	}
}

// FrameRate is the capture frame rate in frames per second.
type FrameRate int

const (
	FrameRate24 FrameRate = 24
	FrameRate25 FrameRate = 25
	FrameRate30 FrameRate = 30
	FrameRate60 FrameRate = 60
)

var frameRates = []FrameRate{FrameRate24, FrameRate25, FrameRate30, FrameRate60}

// FrameRates returns all frame rate members in ascending order.
func FrameRates() []FrameRate {
	return append([]FrameRate(nil), frameRates...)
}

// Known reports whether value is a member of the closed set.
func (f FrameRate) Known() bool {
	switch f {
	case FrameRate24, FrameRate25, FrameRate30, FrameRate60:
		return true
	default:
		return false
	}
}

// Values returns allowed values as decimal strings.
func (FrameRate) Values() []string {
	out := make([]string, 0, len(frameRates))
	for _, f := range frameRates {
		out = append(out, f.String())
	}

	return out
}

func (f FrameRate) String() string {
	return strconv.Itoa(int(f))
}

// Device is the capture device preset.
type Device string

const (
	DeviceIPhone15ProFront Device = "iphone_15_pro_front"
	DeviceIPhone14Front    Device = "iphone_14_front"
	DevicePixel8Front      Device = "pixel_8_front"
	DeviceDSLR             Device = "dslr"
)

var devices = []Device{DeviceIPhone15ProFront, DeviceIPhone14Front, DevicePixel8Front, DeviceDSLR}

// Devices returns all device members in form order.
func Devices() []Device {
	return append([]Device(nil), devices...)
}

// Known reports whether value is a member of the closed set.
func (d Device) Known() bool {
	switch d {
	case DeviceIPhone15ProFront, DeviceIPhone14Front, DevicePixel8Front, DeviceDSLR:
		return true
	default:
		return false
	}
}

// Values returns allowed raw values.
func (Device) Values() []string {
	return stringValues(devices)
}

// Description returns the device phrase used in scene text.
func (d Device) Description() string {
	switch d {
	case DeviceIPhone15ProFront:
		return "iPhone 15 Pro front-facing camera"
	case DeviceIPhone14Front:
		return "iPhone 14 front-facing camera"
	case DevicePixel8Front:
		return "Google Pixel 8 front-facing camera"
	case DeviceDSLR:
		return "DSLR camera"
	default:
		return DefaultDevice.Description()
	}
}

// Label returns the form label.
func (d Device) Label() string {
	switch d {
	case DeviceIPhone15ProFront:
		return "iPhone 15 Pro (front)"
	case DeviceIPhone14Front:
		return "iPhone 14 (front)"
	case DevicePixel8Front:
		return "Google Pixel 8 (front)"
	case DeviceDSLR:
		return "DSLR Camera"
	default:
		return string(d)
	}
}

// Style is the overall video style.
type Style string

const (
	StyleUGCSelfie   Style = "UGC selfie"
	StyleTalkingHead Style = "Talking head"
	StyleBRoll       Style = "B-roll"
	StyleStudio      Style = "Studio"
)

var styles = []Style{StyleUGCSelfie, StyleTalkingHead, StyleBRoll, StyleStudio}

// Styles returns all style members in form order.
func Styles() []Style {
	return append([]Style(nil), styles...)
}

// Known reports whether value is a member of the closed set.
func (s Style) Known() bool {
	switch s {
	case StyleUGCSelfie, StyleTalkingHead, StyleBRoll, StyleStudio:
		return true
	default:
		return false
	}
}

// Values returns allowed raw values.
func (Style) Values() []string {
	return stringValues(styles)
}

// Label returns the form label.
func (s Style) Label() string {
	switch s {
	case StyleUGCSelfie:
		return "UGC Selfie"
	case StyleTalkingHead:
		return "Talking Head"
	case StyleBRoll:
		return "B-roll"
	case StyleStudio:
		return "Studio"
	default:
		return string(s)
	}
}

// enumerated is implemented by every closed vocabulary type.
type enumerated interface {
	Known() bool
	Values() []string
}

func stringValues[T ~string](members []T) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, string(m))
	}

	return out
}
