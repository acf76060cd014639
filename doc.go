// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

/*
Package ugcprompt builds storyboard prompts for short user-generated-content
style videos.

A State holds the builder form: output format, character, setting,
cinematography, audio, an optional product, quality control negatives and
an ordered list of shots. Validate checks a state, Generate derives the
prompt document sent to the video model, and RenderMarkdown presents that
document for human review with a built-in ("prompt", "table") or custom
template.

Start from a preset and render both outputs:

	state := ugcprompt.PresetState("selfie-kitchen-iphone-15")
	state.Shots[0].Actions = "Holds jar at chest level."

	out, err := ugcprompt.Render(state, ugcprompt.Options{Validate: true})
	if err != nil {
		return err
	}

	fmt.Print(string(out.JSON))
	fmt.Print(out.Markdown)

Report every validation problem at once:

	result := ugcprompt.Validate(state)
	for _, fieldErr := range result.Errors {
		fmt.Println(fieldErr)
	}

	if result.Has(ugcprompt.ErrDurationFloor) {
		fmt.Println("add more footage")
	}

Decode and encode state blobs:

	state, err := ugcprompt.DecodeState(data, ugcprompt.StateFormatJSON)
	if err != nil {
		return err
	}

	yamlBytes, err := ugcprompt.EncodeState(state, ugcprompt.StateFormatYAML)
	if err != nil {
		return err
	}

	fmt.Print(string(yamlBytes))

Persisting state between sessions is handled by the snapshot subpackage.
*/
package ugcprompt
