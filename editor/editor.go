// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the selection set of the scene editor and
// the resolver that turns the picks of each frame into selection
// changes.
package editor

import (
	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/scene"
)

// Editor is the editing context for one world of a scene: its
// selection, the picker that drives it, and the camera view used
// for eye-space transforms.
type Editor struct {

	// Scene is the edited scene.
	Scene *scene.Scene

	// World is the world whose instances are picked.
	World *scene.World

	// Selection is the current selection.
	Selection *Selection

	// Picker resolves picks into the selection.
	Picker Picker

	// Picks is the default pick source, for scripted picking.
	Picks PickQueue

	// Mode is the selection mode applied to picks.
	Mode SelectionModes

	// View is the camera view for eye-space transforms.
	View *scene.View
}

// New returns a new [Editor] for the given world, picking from its
// own [PickQueue] in [SelectionXor] mode.
func New(sc *scene.Scene, w *scene.World) *Editor {
	ed := &Editor{Scene: sc, World: w, Mode: SelectionXor, View: scene.NewView()}
	ed.Selection = NewSelection(sc)
	ed.Picker = Picker{Source: &ed.Picks, World: w, Selection: ed.Selection}
	return ed
}

// Update processes the picks of the current frame.
func (ed *Editor) Update() error {
	return ed.Picker.Process(ed.Mode)
}

// SetWorld changes the picked world, clearing the selection.
func (ed *Editor) SetWorld(w *scene.World) {
	ed.World = w
	ed.Picker.World = w
	ed.Selection.Clear()
}

// Close detaches the selection.
func (ed *Editor) Close() error {
	return errors.Log(ed.Selection.Close())
}
