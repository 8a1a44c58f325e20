// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
)

// Spaces are the coordinate spaces that transform arguments are given in.
type Spaces int32

const (
	// LocalSpace is the instance's own frame: translations move along
	// its axes and rotations turn about them.
	LocalSpace Spaces = iota

	// WorldSpace is the fixed frame of the world.
	WorldSpace

	// EyeSpace is the frame of the camera, given by a [View].
	EyeSpace

	// SpacesN is the number of spaces.
	SpacesN
)

var spaceNames = [SpacesN]string{"local", "world", "eye"}

func (s Spaces) String() string {
	if s < 0 || s >= SpacesN {
		return "space?"
	}
	return spaceNames[s]
}

// SpaceFromString returns the space with the given name, as returned
// by [Spaces.String], and false if there is none.
func SpaceFromString(s string) (Spaces, bool) {
	for i, nm := range spaceNames {
		if nm == s {
			return Spaces(i), true
		}
	}
	return SpacesN, false
}

// View is the camera pose used for [EyeSpace] transforms.
type View struct {

	// Rotation is the orthonormal rotation block of the view matrix.
	Rotation math32.Matrix3

	// Pos is the translation of the view matrix.
	Pos math32.Vector3
}

// NewView returns a view with the identity rotation at the origin.
func NewView() *View {
	return &View{Rotation: math32.Identity3()}
}

// InverseRotation returns the inverse of the view rotation. An orthonormal
// rotation is always invertible, so a singular one is an [errors.ErrInternal].
func (vw *View) InverseRotation() (math32.Matrix3, error) {
	inv, err := vw.Rotation.Inverse()
	if err != nil {
		return inv, errors.Errorf(errors.ErrInternal, "scene: degenerate view rotation %v: %v", vw.Rotation, err)
	}
	return inv, nil
}

// Translate moves the given instances by v in the given space.
// In [LocalSpace], v is along the instance axes, so the new position
// is the instance transform applied to v. In [EyeSpace], v is mapped
// to world space by the inverse view rotation.
func Translate(insts []*Instance, space Spaces, view *View, v math32.Vector3) error {
	if err := checkTransform("Translate", insts, space, view); err != nil {
		return err
	}
	if v.IsZero() {
		return nil
	}
	var wv math32.Vector3
	if space == EyeSpace {
		inv, err := view.InverseRotation()
		if err != nil {
			return err
		}
		wv = v.MulMatrix3(&inv)
	}
	return apply(insts, func(m *math32.Matrix4) {
		switch space {
		case LocalSpace:
			m.SetPos(v.MulMatrix4(m))
		case WorldSpace:
			m.SetPos(m.Pos().Add(v))
		case EyeSpace:
			m.SetPos(m.Pos().Add(wv))
		}
	}, func(r Renderer, h Handle) error {
		return r.Translate(h, space, view, v)
	})
}

// Rotate rotates the given instances by the given Euler angles in
// degrees (X = pitch, Y = yaw, Z = roll), about their own origin.
// In [LocalSpace] the rotation is about the instance axes, in
// [WorldSpace] about the world axes, and in [EyeSpace] about the
// camera axes. The translation is unchanged.
func Rotate(insts []*Instance, space Spaces, view *View, euler math32.Vector3) error {
	if err := checkTransform("Rotate", insts, space, view); err != nil {
		return err
	}
	if euler.IsZero() {
		return nil
	}
	rad := math32.Vec3(math32.DegToRad(euler.X), math32.DegToRad(euler.Y), math32.DegToRad(euler.Z))
	rot := math32.Matrix3FromEuler(rad)
	return applyBlock(insts, space, view, rot, func(r Renderer, h Handle) error {
		return r.Rotate(h, space, view, euler)
	})
}

// Scale scales the given instances by the given per-axis factors, about
// their own origin, with the axes given by the space as for [Rotate].
func Scale(insts []*Instance, space Spaces, view *View, s math32.Vector3) error {
	if err := checkTransform("Scale", insts, space, view); err != nil {
		return err
	}
	if s == math32.Vector3Scalar(1) {
		return nil
	}
	return applyBlock(insts, space, view, math32.Matrix3Scale(s), func(r Renderer, h Handle) error {
		return r.Scale(h, space, view, s)
	})
}

// Transform multiplies the transform of the given instances by t:
// on the right in [LocalSpace], and on the left otherwise, so that
// [EyeSpace] is the same as [WorldSpace] here.
func Transform(insts []*Instance, space Spaces, t math32.Matrix4) error {
	check := space
	if check == EyeSpace {
		check = WorldSpace
	}
	if err := checkTransform("Transform", insts, check, nil); err != nil {
		return err
	}
	if !t.IsAffine() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: Transform: matrix is not affine: %v", t)
	}
	if t == math32.Identity4() {
		return nil
	}
	return apply(insts, func(m *math32.Matrix4) {
		if space == LocalSpace {
			*m = m.Mul(&t)
		} else {
			*m = t.Mul(m)
		}
	}, func(r Renderer, h Handle) error {
		return r.Transform(h, space, t)
	})
}

// Move sets the world position of the given instances.
func Move(insts []*Instance, pos math32.Vector3) error {
	if err := checkTransform("Move", insts, WorldSpace, nil); err != nil {
		return err
	}
	return apply(insts, func(m *math32.Matrix4) {
		m.SetPos(pos)
	}, func(r Renderer, h Handle) error {
		return r.Move(h, pos)
	})
}

// checkTransform validates the arguments of a transform function, so
// that an invalid call changes nothing.
func checkTransform(op string, insts []*Instance, space Spaces, view *View) error {
	if space < 0 || space >= SpacesN {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: %s: invalid space %d", op, space)
	}
	if space == EyeSpace && view == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: %s: eye space needs a view", op)
	}
	for i, inst := range insts {
		if inst == nil || inst.IsReleased() {
			return errors.Errorf(errors.ErrInvalidArgument, "scene: %s: instance %d is nil or released", op, i)
		}
	}
	return nil
}

// applyBlock applies the 3x3 block b to the rotation / scale block of
// each instance according to the space, keeping translations.
func applyBlock(insts []*Instance, space Spaces, view *View, b math32.Matrix3, mirror func(r Renderer, h Handle) error) error {
	if space == EyeSpace {
		inv, err := view.InverseRotation()
		if err != nil {
			return err
		}
		// express b about the camera axes in world space
		vb := inv.Mul(&b)
		b = vb.Mul(&view.Rotation)
	}
	return apply(insts, func(m *math32.Matrix4) {
		r := m.Rotation()
		if space == LocalSpace {
			r = r.Mul(&b)
		} else {
			r = b.Mul(&r)
		}
		m.SetRotation(r)
	}, mirror)
}

// apply updates the matrix of every instance with fun, and then
// mirrors the operation once to each backend instance of each one.
func apply(insts []*Instance, fun func(m *math32.Matrix4), mirror func(r Renderer, h Handle) error) error {
	for _, inst := range insts {
		fun(&inst.Matrix)
	}
	var errs []error
	for _, inst := range insts {
		errs = append(errs, inst.mirror(mirror))
	}
	return errors.Join(errs...)
}
