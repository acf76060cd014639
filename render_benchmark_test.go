// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import "testing"

// BenchmarkGenerate measures prompt document derivation for the multi-shot preset.
func BenchmarkGenerate(b *testing.B) {
	state := PresetState("selfie-kitchen-iphone-15")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Generate(state)
	}
}

// BenchmarkValidate measures full state validation cost.
func BenchmarkValidate(b *testing.B) {
	state := PresetState("selfie-kitchen-iphone-15")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if result := Validate(state); !result.Valid() {
			b.Fatalf("Validate: %v", result.Err())
		}
	}
}

// BenchmarkRenderPromptTemplate measures full in-memory render flow for prompt template.
func BenchmarkRenderPromptTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "prompt")
}

// BenchmarkRenderTableTemplate measures full in-memory render flow for table template.
func BenchmarkRenderTableTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "table")
}

// BenchmarkDecodeStateJSON measures snapshot decoding cost.
func BenchmarkDecodeStateJSON(b *testing.B) {
	data, err := EncodeState(PresetState("selfie-kitchen-iphone-15"), StateFormatJSON)
	if err != nil {
		b.Fatalf("EncodeState: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := DecodeState(data, StateFormatJSON); err != nil {
			b.Fatalf("DecodeState: %v", err)
		}
	}
}

// benchmarkRenderTemplate runs common in-memory benchmark for selected template.
func benchmarkRenderTemplate(b *testing.B, templateName string) {
	state := PresetState("selfie-kitchen-iphone-15")
	options := Options{
		TemplateName: templateName,
		Validate:     true,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Render(state, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}
