// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glmirror is a headless render backend that keeps an
// OpenGL-convention copy of every instance transform, computed with
// mathgl from the mirrored operations alone. A GPU driver keeps its
// per-instance model matrices the same way.
package glmirror

import (
	"log/slog"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Instance is the backend copy of a scene instance.
type Instance struct {

	// ID is the handle of the instance.
	ID uuid.UUID

	// Source is the mirrored scene instance.
	Source *scene.Instance

	// Model is the model matrix.
	Model mgl32.Mat4
}

// Renderer is a [scene.Renderer] that mirrors instances into
// [Instance] records with uuid handles.
type Renderer struct {
	instances map[uuid.UUID]*Instance
	bySource  map[*scene.Instance]*Instance
}

// New returns a new empty [Renderer].
func New() *Renderer {
	return &Renderer{
		instances: make(map[uuid.UUID]*Instance),
		bySource:  make(map[*scene.Instance]*Instance),
	}
}

// Len returns the number of live backend instances.
func (r *Renderer) Len() int {
	return len(r.instances)
}

// Instance returns the backend instance with the given handle, or nil.
func (r *Renderer) Instance(h scene.Handle) *Instance {
	id, ok := h.(uuid.UUID)
	if !ok {
		return nil
	}
	return r.instances[id]
}

// Find returns the backend instance mirroring the given scene instance, or nil.
func (r *Renderer) Find(inst *scene.Instance) *Instance {
	return r.bySource[inst]
}

func (r *Renderer) CreateInstance(inst *scene.Instance) (scene.Handle, error) {
	gi := &Instance{ID: uuid.New(), Source: inst, Model: mgl32.Mat4(inst.Matrix)}
	r.instances[gi.ID] = gi
	r.bySource[inst] = gi
	slog.Debug("glmirror: created instance", "id", gi.ID, "name", inst.Name())
	return gi.ID, nil
}

func (r *Renderer) DestroyInstance(h scene.Handle) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	delete(r.instances, gi.ID)
	delete(r.bySource, gi.Source)
	slog.Debug("glmirror: destroyed instance", "id", gi.ID)
	return nil
}

func (r *Renderer) Translate(h scene.Handle, space scene.Spaces, view *scene.View, v math32.Vector3) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	gv := mgl32.Vec3{v.X, v.Y, v.Z}
	t := gi.Model.Col(3).Vec3()
	switch space {
	case scene.LocalSpace:
		t = gi.Model.Mul4x1(gv.Vec4(1)).Vec3()
	case scene.WorldSpace:
		t = t.Add(gv)
	case scene.EyeSpace:
		inv, err := viewInverse(view)
		if err != nil {
			return err
		}
		t = t.Add(inv.Mul3x1(gv))
	}
	gi.Model.SetCol(3, t.Vec4(1))
	return nil
}

func (r *Renderer) Rotate(h scene.Handle, space scene.Spaces, view *scene.View, euler math32.Vector3) error {
	rot := mgl32.Rotate3DX(mgl32.DegToRad(euler.X)).
		Mul3(mgl32.Rotate3DY(mgl32.DegToRad(euler.Y))).
		Mul3(mgl32.Rotate3DZ(mgl32.DegToRad(euler.Z)))
	return r.applyBlock(h, space, view, rot)
}

func (r *Renderer) Scale(h scene.Handle, space scene.Spaces, view *scene.View, s math32.Vector3) error {
	return r.applyBlock(h, space, view, mgl32.Diag3(mgl32.Vec3{s.X, s.Y, s.Z}))
}

func (r *Renderer) Transform(h scene.Handle, space scene.Spaces, m math32.Matrix4) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	if space == scene.LocalSpace {
		gi.Model = gi.Model.Mul4(mgl32.Mat4(m))
	} else {
		gi.Model = mgl32.Mat4(m).Mul4(gi.Model)
	}
	return nil
}

func (r *Renderer) Move(h scene.Handle, pos math32.Vector3) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	gi.Model.SetCol(3, mgl32.Vec4{pos.X, pos.Y, pos.Z, 1})
	return nil
}

func (r *Renderer) SetMatrix(h scene.Handle, m math32.Matrix4) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	gi.Model = mgl32.Mat4(m)
	return nil
}

// applyBlock multiplies the rotation / scale block of the model
// matrix by b, keeping the translation.
func (r *Renderer) applyBlock(h scene.Handle, space scene.Spaces, view *scene.View, b mgl32.Mat3) error {
	gi, err := r.get(h)
	if err != nil {
		return err
	}
	if space == scene.EyeSpace {
		inv, err := viewInverse(view)
		if err != nil {
			return err
		}
		b = inv.Mul3(b).Mul3(mgl32.Mat3(view.Rotation))
	}
	blk := gi.Model.Mat3()
	if space == scene.LocalSpace {
		blk = blk.Mul3(b)
	} else {
		blk = b.Mul3(blk)
	}
	t := gi.Model.Col(3)
	gi.Model = blk.Mat4()
	gi.Model.SetCol(3, t)
	return nil
}

func (r *Renderer) get(h scene.Handle) (*Instance, error) {
	gi := r.Instance(h)
	if gi == nil {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "glmirror: unknown handle %v", h)
	}
	return gi, nil
}

// viewInverse returns the inverse of the view rotation.
func viewInverse(view *scene.View) (mgl32.Mat3, error) {
	if view == nil {
		return mgl32.Mat3{}, errors.Errorf(errors.ErrInvalidArgument, "glmirror: eye space needs a view")
	}
	vr := mgl32.Mat3(view.Rotation)
	if vr.Det() == 0 {
		return mgl32.Mat3{}, errors.Errorf(errors.ErrInternal, "glmirror: degenerate view rotation")
	}
	return vr.Inv(), nil
}
