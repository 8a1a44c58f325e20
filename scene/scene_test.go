// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"testing"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/tolassert"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-5)

// recorder is a Renderer that records the calls it gets.
type recorder struct {
	next    int
	live    map[int]*Instance
	calls   []string
	failNew bool
}

func newRecorder() *recorder {
	return &recorder{live: map[int]*Instance{}}
}

func (rc *recorder) CreateInstance(inst *Instance) (Handle, error) {
	if rc.failNew {
		return nil, fmt.Errorf("recorder: no more instances")
	}
	rc.next++
	rc.live[rc.next] = inst
	rc.calls = append(rc.calls, fmt.Sprintf("create %d", rc.next))
	return rc.next, nil
}

func (rc *recorder) DestroyInstance(h Handle) error {
	delete(rc.live, h.(int))
	rc.calls = append(rc.calls, fmt.Sprintf("destroy %d", h))
	return nil
}

func (rc *recorder) Translate(h Handle, space Spaces, view *View, v math32.Vector3) error {
	rc.calls = append(rc.calls, fmt.Sprintf("translate %d %v", h, space))
	return nil
}

func (rc *recorder) Rotate(h Handle, space Spaces, view *View, euler math32.Vector3) error {
	rc.calls = append(rc.calls, fmt.Sprintf("rotate %d %v", h, space))
	return nil
}

func (rc *recorder) Scale(h Handle, space Spaces, view *View, s math32.Vector3) error {
	rc.calls = append(rc.calls, fmt.Sprintf("scale %d %v", h, space))
	return nil
}

func (rc *recorder) Transform(h Handle, space Spaces, m math32.Matrix4) error {
	rc.calls = append(rc.calls, fmt.Sprintf("transform %d %v", h, space))
	return nil
}

func (rc *recorder) Move(h Handle, pos math32.Vector3) error {
	rc.calls = append(rc.calls, fmt.Sprintf("move %d", h))
	return nil
}

func (rc *recorder) SetMatrix(h Handle, m math32.Matrix4) error {
	rc.calls = append(rc.calls, fmt.Sprintf("setmatrix %d", h))
	return nil
}

func tolAssertEqualVector(t *testing.T, tol float32, vt, va math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func tolAssertEqualMatrix(t *testing.T, tol float32, mt, ma math32.Matrix4) {
	t.Helper()
	for i := range mt {
		tolassert.EqualTol(t, mt[i], ma[i], tol, "element %d", i)
	}
}

// newCube returns a scene with a unit cube model.
func newCube(t *testing.T) (*Scene, *Model) {
	t.Helper()
	sc := NewScene()
	m, err := sc.NewModel("assets/cube.glb", "", math32.B3(-1, -1, -1, 1, 1, 1))
	require.NoError(t, err)
	return sc, m
}

func TestLookup(t *testing.T) {
	sc, m := newCube(t)
	a, err := m.Instantiate("a")
	require.NoError(t, err)
	w, err := sc.NewWorld("main")
	require.NoError(t, err)

	assert.Equal(t, m, sc.Model("cube"))
	assert.Equal(t, a, sc.Instance("a"))
	assert.Equal(t, w, sc.World("main"))
	assert.Equal(t, a, sc.Object(registry.Instance, "a"))
	assert.Nil(t, sc.Object(registry.Model, "a"))
	assert.Nil(t, sc.Instance("b"))
	assert.Equal(t, a, sc.InstanceByPickID(a.PickID))

	_, err = sc.FindInstance("aa")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "did you mean a?")
	got, err := sc.FindInstance("a")
	assert.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestPickIDs(t *testing.T) {
	sc, m := newCube(t)
	a, _ := m.Instantiate("a")
	b, _ := m.Instantiate("b")
	assert.Equal(t, uint32(1), a.PickID)
	assert.Equal(t, uint32(2), b.PickID)
	require.NoError(t, a.Destroy())
	assert.Nil(t, sc.InstanceByPickID(1))
	c, _ := m.Instantiate("c")
	assert.Equal(t, uint32(1), c.PickID)

	sc.nextPickID = MaxPickID + 1
	_, err := m.Instantiate("d")
	assert.ErrorIs(t, err, errors.ErrOverflow)
	assert.Nil(t, sc.Instance("d"))
	assert.Equal(t, 3, m.Refs())
}

func TestClose(t *testing.T) {
	sc, m := newCube(t)
	rc := newRecorder()
	sc.AddRenderer(rc)
	w, _ := sc.NewWorld("main")
	b, _ := m.Instantiate("b")
	a, _ := m.Instantiate("a")
	var unnamed []*Instance
	for range 5 {
		u, err := m.Instantiate("")
		require.NoError(t, err)
		unnamed = append(unnamed, u)
	}
	// reuse a low pick id for the last unnamed instance
	require.NoError(t, unnamed[0].Destroy())
	u, err := m.Instantiate("")
	require.NoError(t, err)
	unnamed = append(unnamed[1:], u)
	require.NoError(t, w.Add(a, b))
	var destroyed []*Instance
	require.NoError(t, sc.Signals.Attach(DestroyInstance, func(sig SignalKinds, e any, data any) {
		destroyed = append(destroyed, e.(*Instance))
	}, nil))

	require.NoError(t, sc.Close())
	want := []*Instance{a, b, u, unnamed[0], unnamed[1], unnamed[2], unnamed[3]}
	assert.Equal(t, want, destroyed)
	assert.True(t, a.IsReleased())
	assert.True(t, b.IsReleased())
	assert.False(t, w.IsRegistered())
	assert.False(t, m.IsRegistered())
	assert.Empty(t, rc.live)
	for k := registry.Kinds(0); k < registry.KindsN; k++ {
		assert.Equal(t, 0, sc.Registry.Len(k), k.String())
	}
	assert.Equal(t, 0, sc.Signals.NumAttached(DestroyInstance))
}
