// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import "errors"

var (
	// ErrDecodeState is returned when a persisted or supplied state blob cannot be decoded.
	ErrDecodeState = errors.New("decode builder state")
	// ErrEncodeState is returned when state encoding fails.
	ErrEncodeState = errors.New("encode builder state")
	// ErrUnknownStateFormat is returned when state format is not json or yaml.
	ErrUnknownStateFormat = errors.New("unknown state format")
	// ErrEncodeDocument is returned when prompt document JSON encoding fails.
	ErrEncodeDocument = errors.New("encode prompt document")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller-supplied template text does not parse.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrDecodePresetCatalog is returned when the embedded preset catalog cannot be decoded.
	ErrDecodePresetCatalog = errors.New("decode preset catalog")
)

// Validation error kinds. Every FieldError unwraps to exactly one of these.
var (
	// ErrInvalidState wraps every validation failure returned by ValidationResult.Err.
	ErrInvalidState = errors.New("invalid builder state")
	// ErrRequired marks a mandatory string field left empty.
	ErrRequired = errors.New("required")
	// ErrInvalidEnum marks a value outside its fixed vocabulary.
	ErrInvalidEnum = errors.New("invalid value")
	// ErrTooFewTones marks an empty persona tone set.
	ErrTooFewTones = errors.New("select at least one persona tone")
	// ErrNoShots marks an empty shot list.
	ErrNoShots = errors.New("at least one shot required")
	// ErrShotTooShort marks a shot shorter than one second.
	ErrShotTooShort = errors.New("duration must be at least 1s")
	// ErrDurationFloor marks a shot list whose total duration is below the floor.
	ErrDurationFloor = errors.New("total duration below minimum")
)
