// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"testing"

	"cogentcore.org/xyzedit/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gizmo struct {
	picks []uint32
}

func (gz *gizmo) Pick(local uint32) {
	gz.picks = append(gz.picks, local)
}

func worldPick(inst *scene.Instance) PickID {
	return NewPickID(GroupWorld, inst.PickID)
}

func TestPickID(t *testing.T) {
	id := NewPickID(GroupGizmo, 0x123456)
	assert.Equal(t, GroupGizmo, id.Group())
	assert.Equal(t, uint32(0x123456), id.Local())
	assert.False(t, id.IsNone())
	assert.Equal(t, "gizmo:1193046", id.String())

	assert.Equal(t, uint32(0xabcdef), NewPickID(GroupWorld, 0xffabcdef).Local())
	assert.True(t, NoPick.IsNone())
	assert.True(t, NewPickID(GroupWorld, NoLocalID).IsNone())
	assert.True(t, NewPickID(GroupNone, 3).IsNone())
	assert.Equal(t, "group9", PickGroups(9).String())
}

func TestPickQueue(t *testing.T) {
	var pq PickQueue
	pq.Push(1, 2)
	pq.Push(3)
	assert.Equal(t, 3, pq.Len())
	assert.Equal(t, []PickID{1, 2, 3}, pq.PollPicking())
	assert.Empty(t, pq.PollPicking())
}

func TestPickXorDuplicate(t *testing.T) {
	ed, insts := testEditor(t)
	a := insts[0]

	ed.Picks.Push(worldPick(a), worldPick(a))
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.True(t, ed.Selection.IsSelected(a))
	assert.Equal(t, 1, ed.Selection.Len())

	// a later click toggles it off
	ed.Picks.Push(worldPick(a))
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.False(t, ed.Selection.IsSelected(a))

	ed.Picks.Push(worldPick(a))
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.True(t, ed.Selection.IsSelected(a))
}

func TestPickXorMany(t *testing.T) {
	ed, insts := testEditor(t)
	a, b, c := insts[0], insts[1], insts[2]
	require.NoError(t, ed.Selection.Select(a))

	ed.Picks.Push(worldPick(a), worldPick(b), worldPick(c))
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.Equal(t, []*scene.Instance{b, c}, ed.Selection.Instances())
}

func TestPickNewLastWins(t *testing.T) {
	ed, insts := testEditor(t)
	a, b, c := insts[0], insts[1], insts[2]
	require.NoError(t, ed.Selection.Select(c))

	ed.Picks.Push(worldPick(a), worldPick(b))
	require.NoError(t, ed.Picker.Process(SelectionNew))
	assert.Equal(t, []*scene.Instance{b}, ed.Selection.Instances())

	// picking the same one again keeps it
	ed.Picks.Push(worldPick(b))
	require.NoError(t, ed.Picker.Process(SelectionNew))
	assert.Equal(t, []*scene.Instance{b}, ed.Selection.Instances())
}

func TestPickNone(t *testing.T) {
	ed, insts := testEditor(t)
	a, b := insts[0], insts[1]
	require.NoError(t, ed.Selection.Select(a))
	require.NoError(t, ed.Selection.Select(b))

	// no picks this frame changes nothing
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.Equal(t, 2, ed.Selection.Len())

	// mode none ignores world picks
	ed.Picks.Push(worldPick(a))
	require.NoError(t, ed.Picker.Process(SelectionNone))
	assert.Equal(t, 2, ed.Selection.Len())

	// a none pick among others does not clear
	ed.Picks.Push(NoPick, worldPick(a))
	require.NoError(t, ed.Picker.Process(SelectionXor))
	assert.Equal(t, []*scene.Instance{b}, ed.Selection.Instances())

	// only none picks clear, in any mode
	ed.Picks.Push(NoPick, NewPickID(GroupNone, 7))
	require.NoError(t, ed.Picker.Process(SelectionNone))
	assert.Equal(t, 0, ed.Selection.Len())
}

func TestPickGizmo(t *testing.T) {
	ed, insts := testEditor(t)
	a := insts[0]
	gz := &gizmo{}
	ed.Picker.Gizmo = gz
	require.NoError(t, ed.Selection.Select(a))

	ed.Picks.Push(NewPickID(GroupGizmo, 5), NewPickID(GroupGizmo, 6))
	require.NoError(t, ed.Update())
	assert.Equal(t, []uint32{5, 6}, gz.picks)
	assert.True(t, ed.Selection.IsSelected(a))

	// unresolvable ids are skipped
	ed.Picks.Push(NewPickID(GroupWorld, 999))
	require.NoError(t, ed.Update())
	assert.True(t, ed.Selection.IsSelected(a))
}

func TestSelectionModes(t *testing.T) {
	var sm SelectionModes
	assert.NoError(t, sm.SetString("XOR"))
	assert.Equal(t, SelectionXor, sm)
	assert.Equal(t, "xor", sm.String())
	assert.Error(t, sm.SetString("all"))
	assert.Equal(t, SelectionXor, sm)
}

func TestSetWorld(t *testing.T) {
	ed, insts := testEditor(t)
	require.NoError(t, ed.Selection.Select(insts[0]))
	w, err := ed.Scene.NewWorld("other")
	require.NoError(t, err)
	ed.SetWorld(w)
	assert.Equal(t, 0, ed.Selection.Len())

	// picks now resolve in the new world only
	ed.Picks.Push(worldPick(insts[1]))
	require.NoError(t, ed.Update())
	assert.Equal(t, 0, ed.Selection.Len())
}
