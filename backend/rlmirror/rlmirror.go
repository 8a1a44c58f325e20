// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlmirror is a render backend that keeps a raylib transform
// for every instance, ready for drawing with rl.DrawMesh or for
// instanced drawing with rl.DrawMeshInstanced.
package rlmirror

import (
	"log/slog"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/scene"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is a [scene.Renderer] that keeps instance transforms as
// rl.Matrix values. Handles are small integer slots.
type Renderer struct {

	// transforms are the instance transforms, by slot.
	transforms []rl.Matrix

	// live is whether each slot is in use.
	live []bool

	// free are unused slots.
	free []int
}

// New returns a new empty [Renderer].
func New() *Renderer {
	return &Renderer{}
}

// Matrix returns the transform of the given handle.
func (r *Renderer) Matrix(h scene.Handle) (rl.Matrix, bool) {
	slot, err := r.slot(h)
	if err != nil {
		return rl.Matrix{}, false
	}
	return r.transforms[slot], true
}

// Transforms returns the transforms of all live instances, in slot
// order, as passed to rl.DrawMeshInstanced.
func (r *Renderer) Transforms() []rl.Matrix {
	tr := make([]rl.Matrix, 0, len(r.transforms))
	for i, m := range r.transforms {
		if r.live[i] {
			tr = append(tr, m)
		}
	}
	return tr
}

func (r *Renderer) CreateInstance(inst *scene.Instance) (scene.Handle, error) {
	var slot int
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		slot = len(r.transforms)
		r.transforms = append(r.transforms, rl.Matrix{})
		r.live = append(r.live, false)
	}
	r.transforms[slot] = ToRL(inst.Matrix)
	r.live[slot] = true
	slog.Debug("rlmirror: created instance", "slot", slot, "name", inst.Name())
	return slot, nil
}

func (r *Renderer) DestroyInstance(h scene.Handle) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	r.live[slot] = false
	r.free = append(r.free, slot)
	return nil
}

func (r *Renderer) Translate(h scene.Handle, space scene.Spaces, view *scene.View, v math32.Vector3) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	m := &r.transforms[slot]
	rv := rl.NewVector3(v.X, v.Y, v.Z)
	switch space {
	case scene.LocalSpace:
		t := rl.Vector3Transform(rv, *m)
		m.M12, m.M13, m.M14 = t.X, t.Y, t.Z
	case scene.WorldSpace:
		m.M12 += v.X
		m.M13 += v.Y
		m.M14 += v.Z
	case scene.EyeSpace:
		inv, err := viewInverse(view)
		if err != nil {
			return err
		}
		t := rl.Vector3Transform(rv, inv)
		m.M12 += t.X
		m.M13 += t.Y
		m.M14 += t.Z
	}
	return nil
}

func (r *Renderer) Rotate(h scene.Handle, space scene.Spaces, view *scene.View, euler math32.Vector3) error {
	rad := math32.Vec3(euler.X*rl.Deg2rad, euler.Y*rl.Deg2rad, euler.Z*rl.Deg2rad)
	return r.applyBlock(h, space, view, ToRL(math32.Affine4(math32.Matrix3FromEuler(rad), math32.Vector3{})))
}

func (r *Renderer) Scale(h scene.Handle, space scene.Spaces, view *scene.View, s math32.Vector3) error {
	return r.applyBlock(h, space, view, rl.MatrixScale(s.X, s.Y, s.Z))
}

func (r *Renderer) Transform(h scene.Handle, space scene.Spaces, m math32.Matrix4) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	if space == scene.LocalSpace {
		r.transforms[slot] = mul(r.transforms[slot], ToRL(m))
	} else {
		r.transforms[slot] = mul(ToRL(m), r.transforms[slot])
	}
	return nil
}

func (r *Renderer) Move(h scene.Handle, pos math32.Vector3) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	m := &r.transforms[slot]
	m.M12, m.M13, m.M14 = pos.X, pos.Y, pos.Z
	return nil
}

func (r *Renderer) SetMatrix(h scene.Handle, m math32.Matrix4) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	r.transforms[slot] = ToRL(m)
	return nil
}

// applyBlock multiplies the rotation / scale part of the transform by
// the linear transform b, keeping the translation.
func (r *Renderer) applyBlock(h scene.Handle, space scene.Spaces, view *scene.View, b rl.Matrix) error {
	slot, err := r.slot(h)
	if err != nil {
		return err
	}
	if space == scene.EyeSpace {
		inv, err := viewInverse(view)
		if err != nil {
			return err
		}
		b = mul(mul(inv, b), ToRL(math32.Affine4(view.Rotation, math32.Vector3{})))
	}
	m := r.transforms[slot]
	tx, ty, tz := m.M12, m.M13, m.M14
	m.M12, m.M13, m.M14 = 0, 0, 0
	if space == scene.LocalSpace {
		m = mul(m, b)
	} else {
		m = mul(b, m)
	}
	m.M12, m.M13, m.M14 = tx, ty, tz
	r.transforms[slot] = m
	return nil
}

func (r *Renderer) slot(h scene.Handle) (int, error) {
	slot, ok := h.(int)
	if !ok || slot < 0 || slot >= len(r.live) || !r.live[slot] {
		return -1, errors.Errorf(errors.ErrInvalidArgument, "rlmirror: unknown handle %v", h)
	}
	return slot, nil
}

// mul returns a * b in column-vector order, so b applies first.
// rl.MatrixMultiply takes its arguments in the order they apply.
func mul(a, b rl.Matrix) rl.Matrix {
	return rl.MatrixMultiply(b, a)
}

// viewInverse returns the inverse view rotation as a raylib matrix.
func viewInverse(view *scene.View) (rl.Matrix, error) {
	if view == nil {
		return rl.Matrix{}, errors.Errorf(errors.ErrInvalidArgument, "rlmirror: eye space needs a view")
	}
	vm := ToRL(math32.Affine4(view.Rotation, math32.Vector3{}))
	if rl.MatrixDeterminant(vm) == 0 {
		return rl.Matrix{}, errors.Errorf(errors.ErrInternal, "rlmirror: degenerate view rotation")
	}
	return rl.MatrixInvert(vm), nil
}

// ToRL converts a [math32.Matrix4] to an rl.Matrix. Both are column
// major with the translation in elements 12 to 14.
func ToRL(m math32.Matrix4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}

// FromRL converts an rl.Matrix to a [math32.Matrix4].
func FromRL(m rl.Matrix) math32.Matrix4 {
	return math32.Matrix4{
		m.M0, m.M1, m.M2, m.M3,
		m.M4, m.M5, m.M6, m.M7,
		m.M8, m.M9, m.M10, m.M11,
		m.M12, m.M13, m.M14, m.M15,
	}
}
