// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiltedView returns a view turned 90 degrees about Y and 30 about X.
func tiltedView() *View {
	ry := math32.Matrix3RotateY(math32.DegToRad(90))
	rx := math32.Matrix3RotateX(math32.DegToRad(30))
	return &View{Rotation: rx.Mul(&ry), Pos: math32.Vec3(0, 2, -10)}
}

// posed returns an instance that is rotated, scaled and moved.
func posed(t *testing.T, m *Model, name string) *Instance {
	t.Helper()
	inst, err := m.Instantiate(name)
	require.NoError(t, err)
	rs := math32.Matrix3FromEuler(math32.Vec3(0.3, -0.7, 1.1))
	sc := math32.Matrix3Scale(math32.Vec3(1, 2, 0.5))
	inst.Matrix = math32.Affine4(rs.Mul(&sc), math32.Vec3(3, -1, 2))
	return inst
}

func TestTranslateRoundTrip(t *testing.T) {
	_, m := newCube(t)
	view := tiltedView()
	v := math32.Vec3(1.5, -2, 0.25)
	for s := LocalSpace; s < SpacesN; s++ {
		inst := posed(t, m, "")
		start := inst.Matrix
		insts := []*Instance{inst}
		require.NoError(t, Translate(insts, s, view, v))
		assert.NotEqual(t, start, inst.Matrix, s.String())
		assert.Equal(t, start.Rotation(), inst.Matrix.Rotation(), s.String())
		require.NoError(t, Translate(insts, s, view, v.MulScalar(-1)))
		tolAssertEqualMatrix(t, standardTol, start, inst.Matrix)
	}
}

func TestTranslateSpaces(t *testing.T) {
	_, m := newCube(t)
	inst, _ := m.Instantiate("a")
	inst.Matrix = math32.Affine4(math32.Matrix3RotateZ(math32.DegToRad(90)), math32.Vec3(1, 1, 1))
	insts := []*Instance{inst}

	// local x is world y after the 90 degree turn about z
	require.NoError(t, Translate(insts, LocalSpace, nil, math32.Vec3(1, 0, 0)))
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 2, 1), inst.Position())

	require.NoError(t, Translate(insts, WorldSpace, nil, math32.Vec3(1, 0, 0)))
	tolAssertEqualVector(t, standardTol, math32.Vec3(2, 2, 1), inst.Position())

	// eye x maps to world through the inverse view rotation
	view := &View{Rotation: math32.Matrix3RotateY(math32.DegToRad(90))}
	inv := view.Rotation.Transpose()
	want := inst.Position().Add(math32.Vec3(1, 0, 0).MulMatrix3(&inv))
	require.NoError(t, Translate(insts, EyeSpace, view, math32.Vec3(1, 0, 0)))
	tolAssertEqualVector(t, standardTol, want, inst.Position())
	tolAssertEqualVector(t, standardTol, math32.Vec3(2, 2, 2), inst.Position())
}

func TestRotateSpaces(t *testing.T) {
	_, m := newCube(t)
	base := math32.Matrix3RotateX(math32.DegToRad(90))
	rot := math32.Matrix3FromEuler(math32.Vec3(0, math32.DegToRad(90), 0))
	pos := math32.Vec3(5, 0, 0)

	a := posed(t, m, "a")
	a.Matrix = math32.Affine4(base, pos)
	require.NoError(t, Rotate([]*Instance{a}, LocalSpace, nil, math32.Vec3(0, 90, 0)))
	want := base.Mul(&rot)
	tolAssertEqualMatrix(t, standardTol, math32.Affine4(want, pos), a.Matrix)

	require.NoError(t, a.SetMatrix(math32.Affine4(base, pos)))
	require.NoError(t, Rotate([]*Instance{a}, WorldSpace, nil, math32.Vec3(0, 90, 0)))
	want = rot.Mul(&base)
	tolAssertEqualMatrix(t, standardTol, math32.Affine4(want, pos), a.Matrix)

	// with the identity view, eye space is world space
	require.NoError(t, a.SetMatrix(math32.Affine4(base, pos)))
	require.NoError(t, Rotate([]*Instance{a}, EyeSpace, NewView(), math32.Vec3(0, 90, 0)))
	tolAssertEqualMatrix(t, standardTol, math32.Affine4(want, pos), a.Matrix)

	// rotating about the camera axes and back restores the pose
	view := tiltedView()
	b := posed(t, m, "b")
	start := b.Matrix
	require.NoError(t, Rotate([]*Instance{b}, EyeSpace, view, math32.Vec3(0, 40, 0)))
	require.NoError(t, Rotate([]*Instance{b}, EyeSpace, view, math32.Vec3(0, -40, 0)))
	tolAssertEqualMatrix(t, standardTol, start, b.Matrix)
}

func TestScaleSpaces(t *testing.T) {
	_, m := newCube(t)
	a, _ := m.Instantiate("a")
	a.Matrix = math32.Affine4(math32.Matrix3RotateZ(math32.DegToRad(90)), math32.Vec3(1, 2, 3))
	insts := []*Instance{a}

	// local x scale stretches the local x axis, which points along world y
	require.NoError(t, Scale(insts, LocalSpace, nil, math32.Vec3(2, 1, 1)))
	r := a.Matrix.Rotation()
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 2, 0), r.Col(0))
	tolAssertEqualVector(t, standardTol, math32.Vec3(-1, 0, 0), r.Col(1))

	// world x scale stretches whatever points along world x
	require.NoError(t, Scale(insts, WorldSpace, nil, math32.Vec3(3, 1, 1)))
	r = a.Matrix.Rotation()
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 2, 0), r.Col(0))
	tolAssertEqualVector(t, standardTol, math32.Vec3(-3, 0, 0), r.Col(1))
	assert.Equal(t, math32.Vec3(1, 2, 3), a.Position())

	view := tiltedView()
	start := a.Matrix
	require.NoError(t, Scale(insts, EyeSpace, view, math32.Vec3(2, 4, 0.5)))
	require.NoError(t, Scale(insts, EyeSpace, view, math32.Vec3(0.5, 0.25, 2)))
	tolAssertEqualMatrix(t, standardTol, start, a.Matrix)
}

func TestTransformMove(t *testing.T) {
	_, m := newCube(t)
	a := posed(t, m, "a")
	start := a.Matrix
	tr := math32.Affine4(math32.Matrix3RotateY(0.5), math32.Vec3(1, 0, 0))

	require.NoError(t, Transform([]*Instance{a}, LocalSpace, tr))
	tolAssertEqualMatrix(t, standardTol, start.Mul(&tr), a.Matrix)

	a.Matrix = start
	require.NoError(t, Transform([]*Instance{a}, WorldSpace, tr))
	tolAssertEqualMatrix(t, standardTol, tr.Mul(&start), a.Matrix)

	rot := a.Matrix.Rotation()
	require.NoError(t, Move([]*Instance{a}, math32.Vec3(7, 8, 9)))
	assert.Equal(t, math32.Vec3(7, 8, 9), a.Position())
	assert.Equal(t, rot, a.Matrix.Rotation())
}

func TestMirrorBatched(t *testing.T) {
	sc, m := newCube(t)
	r1, r2 := newRecorder(), newRecorder()
	sc.AddRenderer(r1)
	sc.AddRenderer(r2)
	a, _ := m.Instantiate("a")
	b, _ := m.Instantiate("b")
	r1.calls, r2.calls = nil, nil

	insts := []*Instance{a, b}
	require.NoError(t, Translate(insts, WorldSpace, nil, math32.Vec3(1, 0, 0)))
	require.NoError(t, Rotate(insts, LocalSpace, nil, math32.Vec3(0, 0, 45)))
	require.NoError(t, Scale(insts, WorldSpace, nil, math32.Vec3(2, 2, 2)))
	require.NoError(t, Move(insts, math32.Vec3(0, 1, 0)))
	want := []string{
		"translate 1 world", "translate 2 world",
		"rotate 1 local", "rotate 2 local",
		"scale 1 world", "scale 2 world",
		"move 1", "move 2",
	}
	assert.Equal(t, want, r1.calls)
	assert.Equal(t, want, r2.calls)
}

func TestTransformNoOps(t *testing.T) {
	sc, m := newCube(t)
	rc := newRecorder()
	sc.AddRenderer(rc)
	a := posed(t, m, "a")
	start := a.Matrix
	rc.calls = nil
	insts := []*Instance{a}

	for s := LocalSpace; s < SpacesN; s++ {
		require.NoError(t, Translate(insts, s, NewView(), math32.Vector3{}))
		require.NoError(t, Rotate(insts, s, NewView(), math32.Vector3{}))
		require.NoError(t, Scale(insts, s, NewView(), math32.Vec3(1, 1, 1)))
		require.NoError(t, Transform(insts, s, math32.Identity4()))
	}
	assert.Equal(t, start, a.Matrix)
	assert.Empty(t, rc.calls)
}

func TestTransformErrors(t *testing.T) {
	_, m := newCube(t)
	a := posed(t, m, "a")
	b := posed(t, m, "b")
	start := a.Matrix
	require.NoError(t, b.Destroy())

	err := Translate([]*Instance{a, b}, WorldSpace, nil, math32.Vec3(1, 0, 0))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, start, a.Matrix)

	err = Rotate([]*Instance{a}, EyeSpace, nil, math32.Vec3(1, 0, 0))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	err = Scale([]*Instance{a}, SpacesN, nil, math32.Vec3(2, 1, 1))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	degenerate := &View{}
	err = Translate([]*Instance{a}, EyeSpace, degenerate, math32.Vec3(1, 0, 0))
	assert.ErrorIs(t, err, errors.ErrInternal)
	err = Rotate([]*Instance{a}, EyeSpace, degenerate, math32.Vec3(1, 0, 0))
	assert.ErrorIs(t, err, errors.ErrInternal)

	proj := math32.Identity4()
	proj[11] = -1
	err = Transform([]*Instance{a}, WorldSpace, proj)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, start, a.Matrix)
}

func TestSpaceNames(t *testing.T) {
	s, ok := SpaceFromString("eye")
	assert.True(t, ok)
	assert.Equal(t, EyeSpace, s)
	_, ok = SpaceFromString("camera")
	assert.False(t, ok)
}
