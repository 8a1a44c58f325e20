// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/xyzedit/math32"

// OBB is an oriented bounding box in world space: a center position and
// one half-extent vector along each of the instance's own axes.
type OBB struct {

	// Pos is the center of the box.
	Pos math32.Vector3

	// Infinite is whether the box is unbounded. Pos is then the origin,
	// and each extent is infinite along the direction of its axis.
	Infinite bool

	// Extents are the half-extent vectors along the local X, Y and Z axes.
	Extents [3]math32.Vector3
}

// Corners returns the 8 corners of a finite box, Pos ± each extent.
func (ob *OBB) Corners() [8]math32.Vector3 {
	var cs [8]math32.Vector3
	for i := range cs {
		c := ob.Pos
		for d := 0; d < 3; d++ {
			if i&(1<<d) != 0 {
				c = c.Add(ob.Extents[d])
			} else {
				c = c.Sub(ob.Extents[d])
			}
		}
		cs[i] = c
	}
	return cs
}

// OBB returns the oriented bounding box of the instance, from the
// local bounds of its model and the instance transform.
func (inst *Instance) OBB() OBB {
	b := inst.Model.Bounds
	r := inst.Matrix.Rotation()
	var ob OBB
	if b.IsInfinite() {
		ob.Infinite = true
		for d := 0; d < 3; d++ {
			ob.Extents[d] = infiniteAlong(r.Col(d))
		}
		return ob
	}
	center := b.Min.Add(b.Max).MulScalar(0.5)
	half := b.Max.Sub(b.Min).MulScalar(0.5)
	ob.Pos = center.MulMatrix4(&inst.Matrix)
	for d := math32.X; d <= math32.Z; d++ {
		var axis math32.Vector3
		axis.SetDim(d, half.Dim(d))
		ob.Extents[d] = axis.MulMatrix3(&r)
	}
	return ob
}

// AABB returns the world-space axis-aligned bounding box of the
// instance, which is [-Inf, +Inf] on every axis for an infinite model.
func (inst *Instance) AABB() math32.Box3 {
	ob := inst.OBB()
	if ob.Infinite {
		return math32.B3Infinite()
	}
	bb := math32.B3Empty()
	for _, c := range ob.Corners() {
		bb.ExpandByPoint(c)
	}
	return bb
}

// infiniteAlong returns a vector that is infinite in the direction of
// v on each axis where v is non-zero, avoiding 0 * Inf = NaN.
func infiniteAlong(v math32.Vector3) math32.Vector3 {
	sign := func(x float32) float32 {
		switch {
		case x > 0:
			return math32.Inf(1)
		case x < 0:
			return math32.Inf(-1)
		}
		return 0
	}
	return math32.Vec3(sign(v.X), sign(v.Y), sign(v.Z))
}
