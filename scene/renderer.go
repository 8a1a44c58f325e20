// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/xyzedit/math32"

// Handle is an opaque per-instance handle returned by a [Renderer].
type Handle any

// Renderer is the render backend that mirrors instances and their
// transforms. Every transform applied to an [Instance] is re-issued
// to each of its handles as the equivalent Renderer call, so a backend
// keeps its own copy of the transform without reading it back.
type Renderer interface {

	// CreateInstance creates a backend instance for the given instance,
	// whose Matrix is the initial transform.
	CreateInstance(inst *Instance) (Handle, error)

	// DestroyInstance releases the given backend instance.
	DestroyInstance(h Handle) error

	// Translate translates by v in the given space (view is only used for [EyeSpace]).
	Translate(h Handle, space Spaces, view *View, v math32.Vector3) error

	// Rotate rotates by the given pitch, yaw, roll Euler angles in degrees.
	Rotate(h Handle, space Spaces, view *View, euler math32.Vector3) error

	// Scale scales by the given per-axis factors.
	Scale(h Handle, space Spaces, view *View, s math32.Vector3) error

	// Transform multiplies by the given matrix, on the right in [LocalSpace]
	// and on the left otherwise.
	Transform(h Handle, space Spaces, m math32.Matrix4) error

	// Move sets the translation to the given world position.
	Move(h Handle, pos math32.Vector3) error

	// SetMatrix replaces the whole transform.
	SetMatrix(h Handle, m math32.Matrix4) error
}

// instanceHandle is a backend handle together with its renderer.
type instanceHandle struct {
	renderer Renderer
	handle   Handle
}
