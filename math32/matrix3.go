// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"errors"
	"fmt"
)

// Matrix3 is 3x3 matrix organized internally as column matrix.
// It is used for the rotation / scale block of an affine transform.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3Scale returns a diagonal scaling matrix for the given per-axis factors.
func Matrix3Scale(s Vector3) Matrix3 {
	return Matrix3{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Matrix3RotateX returns a rotation of angle radians about the X axis.
func Matrix3RotateX(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// Matrix3RotateY returns a rotation of angle radians about the Y axis.
func Matrix3RotateY(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Matrix3RotateZ returns a rotation of angle radians about the Z axis.
func Matrix3RotateZ(angle float32) Matrix3 {
	c, s := Cos(angle), Sin(angle)
	return Matrix3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Matrix3FromEuler returns the rotation for the given Euler angles in radians,
// with X = pitch, Y = yaw and Z = roll. The rotation is always composed
// as Rx(pitch) * Ry(yaw) * Rz(roll).
func Matrix3FromEuler(euler Vector3) Matrix3 {
	rx := Matrix3RotateX(euler.X)
	ry := Matrix3RotateY(euler.Y)
	rz := Matrix3RotateZ(euler.Z)
	r := rx.Mul(&ry)
	return r.Mul(&rz)
}

// Col returns the given column of the matrix as a vector.
func (m *Matrix3) Col(col int) Vector3 {
	return Vec3(m[col*3], m[col*3+1], m[col*3+2])
}

// Mul returns this matrix times other matrix (this matrix is on the left).
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	var r Matrix3
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			r[j*3+i] = m[i]*other[j*3] + m[3+i]*other[j*3+1] + m[6+i]*other[j*3+2]
		}
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse of this matrix.
// An error is returned if the matrix is singular, and the
// returned matrix is then all zeros.
func (m *Matrix3) Inverse() (Matrix3, error) {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	det := m.Determinant()
	if det == 0 || IsNaN(det) {
		return Matrix3{}, errors.New("math32.Matrix3: cannot invert a singular matrix")
	}
	id := 1 / det
	return Matrix3{
		(e*i - f*h) * id, (f*g - d*i) * id, (d*h - e*g) * id,
		(c*h - b*i) * id, (a*i - c*g) * id, (b*g - a*h) * id,
		(b*f - c*e) * id, (c*d - a*f) * id, (a*e - b*d) * id,
	}, nil
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%v %v %v; %v %v %v; %v %v %v]",
		m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8])
}
