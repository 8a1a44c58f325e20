// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/xyzedit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOBBRotateScale(t *testing.T) {
	sc := NewScene()
	m, err := sc.NewModel("box.glb", "", math32.B3(-1, -2, -3, 3, 2, 1))
	require.NoError(t, err)
	a, _ := m.Instantiate("a")
	insts := []*Instance{a}
	require.NoError(t, Rotate(insts, WorldSpace, nil, math32.Vec3(0, 90, 0)))
	require.NoError(t, Scale(insts, LocalSpace, nil, math32.Vec3(2, 1, 1)))
	require.NoError(t, Translate(insts, WorldSpace, nil, math32.Vec3(10, 0, 0)))

	// re-derive from the model bounds and the same composed rotation and scale
	ry := math32.Matrix3RotateY(math32.DegToRad(90))
	s := math32.Matrix3Scale(math32.Vec3(2, 1, 1))
	r := ry.Mul(&s)
	ob := a.OBB()
	assert.False(t, ob.Infinite)
	tolAssertEqualVector(t, standardTol, math32.Vec3(1, 0, -1).MulMatrix3(&r).Add(math32.Vec3(10, 0, 0)), ob.Pos)
	tolAssertEqualVector(t, standardTol, math32.Vec3(2, 0, 0).MulMatrix3(&r), ob.Extents[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 2, 0).MulMatrix3(&r), ob.Extents[1])
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, 2).MulMatrix3(&r), ob.Extents[2])

	// the local x axis, scaled by 2, now runs along world -z
	tolAssertEqualVector(t, standardTol, math32.Vec3(0, 0, -4), ob.Extents[0])
	tolAssertEqualVector(t, standardTol, math32.Vec3(2, 0, 0), ob.Extents[2])

	bb := a.AABB()
	tolAssertEqualVector(t, standardTol, math32.Vec3(7, -2, -6), bb.Min)
	tolAssertEqualVector(t, standardTol, math32.Vec3(11, 2, 2), bb.Max)
	tolAssertEqualVector(t, standardTol, ob.Pos, bb.Center())
}

func TestOBBCorners(t *testing.T) {
	ob := OBB{Pos: math32.Vec3(1, 1, 1), Extents: [3]math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(0, 2, 0), math32.Vec3(0, 0, 3)}}
	cs := ob.Corners()
	assert.Equal(t, math32.Vec3(0, -1, -2), cs[0])
	assert.Equal(t, math32.Vec3(2, 3, 4), cs[7])
	assert.Equal(t, math32.Vec3(2, -1, -2), cs[1])
}

func TestInfiniteAABB(t *testing.T) {
	sc := NewScene()
	inf := math32.Infinity
	m, err := sc.NewModel("ground.glb", "", math32.B3(-inf, 0, -inf, inf, 0, inf))
	require.NoError(t, err)
	assert.True(t, m.IsInfinite())
	a, _ := m.Instantiate("ground")

	poses := []math32.Matrix4{
		math32.Identity4(),
		math32.Affine4(math32.Matrix3FromEuler(math32.Vec3(0.4, 1.2, -0.3)), math32.Vec3(5, -3, 2)),
		math32.Affine4(math32.Matrix3Scale(math32.Vec3(0.5, 3, 2)), math32.Vec3(0, 100, 0)),
	}
	for _, p := range poses {
		a.Matrix = p
		assert.Equal(t, math32.B3Infinite(), a.AABB())
		ob := a.OBB()
		assert.True(t, ob.Infinite)
		assert.Equal(t, math32.Vector3{}, ob.Pos)
		for _, e := range ob.Extents {
			assert.False(t, math32.IsNaN(e.X) || math32.IsNaN(e.Y) || math32.IsNaN(e.Z))
		}
	}

	// extents follow the instance axes
	a.Matrix = math32.Affine4(math32.Matrix3RotateZ(math32.DegToRad(90)), math32.Vector3{})
	ob := a.OBB()
	assert.True(t, math32.IsInf(ob.Extents[0].Y, 1))
	assert.True(t, math32.IsInf(ob.Extents[1].X, -1))
	assert.Equal(t, math32.Vec3(0, 0, inf), ob.Extents[2])
}
