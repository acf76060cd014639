// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Model         string
	AspectRatio   string
	NFrames       int
	TotalDuration int
	Shots         []shotView
}

// shotView represents one shot section in markdown output.
type shotView struct {
	Number         int
	Duration       int
	Scene          string
	Character      string
	Cinematography string
	Audio          string
	Product        string
	HasProduct     bool
	Actions        string
	Keywords       []string
	Negatives      []string
}

// buildRenderView prepares document data for markdown template rendering.
func buildRenderView(doc Document) renderView {
	view := renderView{
		Model:       doc.Model,
		AspectRatio: doc.AspectRatio,
		NFrames:     doc.NFrames,
		Shots:       make([]shotView, 0, len(doc.Shots)),
	}

	for i, shot := range doc.Shots {
		view.TotalDuration += shot.Duration
		view.Shots = append(view.Shots, shotView{
			Number:         i + 1,
			Duration:       shot.Duration,
			Scene:          shot.Scene,
			Character:      shot.Character,
			Cinematography: shot.Cinematography,
			Audio:          shot.Audio,
			Product:        shot.Product,
			HasProduct:     shot.Product != "",
			Actions:        shot.Actions,
			Keywords:       cloneStrings(shot.UGCAuthenticityKeywords),
			Negatives:      cloneStrings(shot.QualityControlNegatives),
		})
	}

	return view
}
