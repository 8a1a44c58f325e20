// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Matrix4 is 4x4 matrix organized internally as column matrix,
// with the translation in elements 12, 13 and 14, which is the same
// memory layout used by OpenGL and raylib.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Affine4 returns the affine transform with the given
// 3x3 rotation / scale block and translation.
func Affine4(r Matrix3, t Vector3) Matrix4 {
	m := Identity4()
	m.SetRotation(r)
	m.SetPos(t)
	return m
}

// Translation4 returns a pure translation by the given vector.
func Translation4(t Vector3) Matrix4 {
	return Affine4(Identity3(), t)
}

// Rotation returns the upper-left 3x3 rotation / scale block.
func (m *Matrix4) Rotation() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// SetRotation sets the upper-left 3x3 rotation / scale block,
// leaving the translation unchanged.
func (m *Matrix4) SetRotation(r Matrix3) {
	m[0], m[1], m[2] = r[0], r[1], r[2]
	m[4], m[5], m[6] = r[3], r[4], r[5]
	m[8], m[9], m[10] = r[6], r[7], r[8]
}

// Pos returns the translation column.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetPos sets the translation column.
func (m *Matrix4) SetPos(t Vector3) {
	m[12] = t.X
	m[13] = t.Y
	m[14] = t.Z
}

// Mul returns this matrix times other matrix (this matrix is on the left).
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			r[j*4+i] = m[i]*other[j*4] + m[4+i]*other[j*4+1] + m[8+i]*other[j*4+2] + m[12+i]*other[j*4+3]
		}
	}
	return r
}

// IsAffine returns true if the bottom row is (0, 0, 0, 1).
func (m *Matrix4) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[4], m[8], m[12], m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14], m[3], m[7], m[11], m[15])
}
