// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/keylist"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/scene"
)

// Selection is the set of currently selected instances, in selection
// order. It drops instances as they are destroyed, so it never holds
// a released instance.
type Selection struct {

	// insts are the selected instances.
	insts keylist.List[*scene.Instance, struct{}]

	// scene is the scene whose destroy signal is attached.
	scene *scene.Scene
}

// NewSelection returns a new empty selection attached to the
// instance destroy signal of the given scene. Call [Selection.Close]
// to detach it.
func NewSelection(sc *scene.Scene) *Selection {
	sel := &Selection{scene: sc}
	errors.Log(sc.Signals.Attach(scene.DestroyInstance, sel.instanceDestroyed, sel))
	return sel
}

// Close detaches the selection from the scene and clears it.
func (sel *Selection) Close() error {
	sel.insts.Reset()
	if sel.scene == nil {
		return nil
	}
	err := sel.scene.Signals.Detach(scene.DestroyInstance, sel.instanceDestroyed, sel)
	sel.scene = nil
	return err
}

// instanceDestroyed is the [scene.DestroyInstance] receiver.
func (sel *Selection) instanceDestroyed(sig scene.SignalKinds, entity any, data any) {
	inst, ok := entity.(*scene.Instance)
	if !ok || !sel.IsSelected(inst) {
		return
	}
	sel.insts.DeleteByKey(inst)
	slog.Debug("editor: unselected destroyed instance", "name", inst.Name())
}

// Select adds the given instance to the selection. It is an error if
// it is already selected or released.
func (sel *Selection) Select(inst *scene.Instance) error {
	if inst == nil || inst.IsReleased() {
		return errors.Errorf(errors.ErrInvalidArgument, "editor: Select: instance is nil or released")
	}
	if err := sel.insts.Add(inst, struct{}{}); err != nil {
		return errors.Errorf(errors.ErrInvalidArgument, "editor: Select: %v is already selected", inst.Object)
	}
	return nil
}

// Unselect removes the given instance from the selection. It is an
// error if it is not selected.
func (sel *Selection) Unselect(inst *scene.Instance) error {
	if inst == nil || !sel.insts.DeleteByKey(inst) {
		return errors.Errorf(errors.ErrInvalidArgument, "editor: Unselect: instance is not selected")
	}
	return nil
}

// IsSelected returns whether the given instance is selected.
func (sel *Selection) IsSelected(inst *scene.Instance) bool {
	return sel.insts.Has(inst)
}

// Clear unselects everything.
func (sel *Selection) Clear() {
	sel.insts.Reset()
}

// Len returns the number of selected instances.
func (sel *Selection) Len() int {
	return sel.insts.Len()
}

// Instances returns the selected instances in selection order.
func (sel *Selection) Instances() []*scene.Instance {
	return slices.Clone(sel.insts.Keys)
}

// Pivot returns the mean of the bounding box centers of the selected
// instances, the point that selection-wide rotations turn about.
// Instances of infinite models have no center and are skipped, and
// the origin is returned if there is nothing else.
func (sel *Selection) Pivot() math32.Vector3 {
	var sum math32.Vector3
	n := 0
	for _, inst := range sel.insts.Keys {
		c := inst.AABB().Center()
		if !c.IsFinite() {
			continue
		}
		sum.SetAdd(c)
		n++
	}
	if n == 0 {
		return math32.Vector3{}
	}
	return sum.DivScalar(float32(n))
}

// Bounds returns the union of the world-space bounding boxes of the
// selected instances, which is empty if nothing is selected.
func (sel *Selection) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, inst := range sel.insts.Keys {
		bb = bb.Union(inst.AABB())
	}
	return bb
}
