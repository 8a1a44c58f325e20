// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"log/slog"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/scene"
)

// SelectionModes are the ways that picks change the [Selection].
type SelectionModes int32

const (
	// SelectionNone ignores picks.
	SelectionNone SelectionModes = iota

	// SelectionNew replaces the selection with the picked instance.
	SelectionNew

	// SelectionXor toggles the picked instance in and out of the selection.
	SelectionXor

	// SelectionModesN is the number of selection modes.
	SelectionModesN
)

var selectionModeNames = [SelectionModesN]string{"none", "new", "xor"}

func (sm SelectionModes) String() string {
	if sm < 0 || sm >= SelectionModesN {
		return "mode?"
	}
	return selectionModeNames[sm]
}

// SetString sets the mode from its name, as returned by
// [SelectionModes.String], case insensitively.
func (sm *SelectionModes) SetString(s string) error {
	for i, nm := range selectionModeNames {
		if strings.EqualFold(nm, s) {
			*sm = SelectionModes(i)
			return nil
		}
	}
	return errors.Errorf(errors.ErrInvalidArgument, "editor: %q is not a selection mode", s)
}

// Picker resolves the picks of each frame into selection changes.
type Picker struct {

	// Source reports the picks of each frame.
	Source PickSource

	// World resolves [GroupWorld] picks to instances.
	World *scene.World

	// Selection is changed by the picks.
	Selection *Selection

	// Gizmo gets the picks of all other groups, if set.
	Gizmo Gizmo

	// touched are the local ids selected by the current [Picker.Process] call.
	touched map[uint32]struct{}
}

// Process polls the picks of this frame and applies them in order.
//
// Picks of the none group are counted, and if every pick is a none
// pick, the selection is cleared. Picks of [GroupWorld] resolve to an
// instance of the world, which then selects according to mode:
// [SelectionNew] clears the selection and selects the instance, so with
// several picks the last one wins; [SelectionXor] selects an unselected
// instance and unselects a selected one, except that an instance
// selected earlier in this same call stays selected, so that duplicate
// ids for one click toggle once. Picks of other groups go to the Gizmo.
func (pk *Picker) Process(mode SelectionModes) error {
	if pk.touched == nil {
		pk.touched = make(map[uint32]struct{})
	}
	clear(pk.touched)
	if pk.Source == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "editor: Picker has no Source")
	}
	ids := pk.Source.PollPicking()
	if len(ids) == 0 {
		return nil
	}
	var errs []error
	nnone := 0
	for _, id := range ids {
		switch {
		case id.IsNone():
			nnone++
		case id.Group() == GroupWorld:
			errs = append(errs, pk.pickInstance(id.Local(), mode))
		default:
			if pk.Gizmo != nil {
				pk.Gizmo.Pick(id.Local())
			} else {
				slog.Debug("editor: no gizmo for pick", "id", id)
			}
		}
	}
	if nnone == len(ids) {
		pk.Selection.Clear()
	}
	return errors.Join(errs...)
}

// pickInstance applies a world pick with the given local id.
func (pk *Picker) pickInstance(local uint32, mode SelectionModes) error {
	var inst *scene.Instance
	if pk.World != nil {
		inst = pk.World.Instance(local)
	}
	if inst == nil {
		slog.Warn("editor: pick does not resolve to an instance", "local", local)
		return nil
	}
	sel := pk.Selection
	switch mode {
	case SelectionNew:
		sel.Clear()
		return sel.Select(inst)
	case SelectionXor:
		if sel.IsSelected(inst) {
			if _, ok := pk.touched[local]; ok {
				return nil
			}
			return sel.Unselect(inst)
		}
		pk.touched[local] = struct{}{}
		return sel.Select(inst)
	}
	return nil
}
