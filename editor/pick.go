// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import "fmt"

// PickID is a pick result reported by the render backend for what
// was under the cursor: a 24-bit local id in the low bits, and a
// [PickGroups] tag in the high byte.
type PickID uint32

// PickGroups partition the pick id space.
type PickGroups uint8

const (
	// GroupNone is the background: the click hit nothing.
	GroupNone PickGroups = iota

	// GroupWorld is for scene instances, whose local id is the
	// instance pick id within its world.
	GroupWorld

	// GroupGizmo is for immediate-mode widgets drawn by the editor,
	// such as manipulation handles.
	GroupGizmo
)

const (
	// LocalBits is the number of bits of the local id.
	LocalBits = 24

	// LocalMask masks the local id of a [PickID].
	LocalMask = 1<<LocalBits - 1

	// NoLocalID is the reserved local id meaning "nothing".
	NoLocalID = LocalMask

	// NoPick is the pick id reported when nothing is under the cursor.
	NoPick = PickID(uint32(GroupNone)<<LocalBits | NoLocalID)
)

var groupNames = map[PickGroups]string{GroupNone: "none", GroupWorld: "world", GroupGizmo: "gizmo"}

func (g PickGroups) String() string {
	if nm, ok := groupNames[g]; ok {
		return nm
	}
	return fmt.Sprintf("group%d", uint8(g))
}

// NewPickID packs the given group and local id. The local id is
// truncated to 24 bits.
func NewPickID(group PickGroups, local uint32) PickID {
	return PickID(uint32(group)<<LocalBits | local&LocalMask)
}

// Group returns the group tag.
func (id PickID) Group() PickGroups {
	return PickGroups(id >> LocalBits)
}

// Local returns the 24-bit local id.
func (id PickID) Local() uint32 {
	return uint32(id) & LocalMask
}

// IsNone returns whether the pick hit nothing: the background
// group, or the reserved local id in any group.
func (id PickID) IsNone() bool {
	return id.Group() == GroupNone || id.Local() == NoLocalID
}

func (id PickID) String() string {
	return fmt.Sprintf("%v:%d", id.Group(), id.Local())
}

// PickSource is the picking backend, which reports the pick ids of
// the current frame.
type PickSource interface {

	// PollPicking returns the picks since the last call, and clears them.
	PollPicking() []PickID
}

// Gizmo is an immediate-mode widget that gets the picks of its group.
type Gizmo interface {
	Pick(local uint32)
}

// PickQueue is an in-memory [PickSource], for headless use
// and scripted picking.
type PickQueue struct {
	ids []PickID
}

// Push queues the given picks for the next poll.
func (pq *PickQueue) Push(ids ...PickID) {
	pq.ids = append(pq.ids, ids...)
}

// PollPicking returns the queued picks and clears the queue.
func (pq *PickQueue) PollPicking() []PickID {
	ids := pq.ids
	pq.ids = nil
	return ids
}

// Len returns the number of queued picks.
func (pq *PickQueue) Len() int {
	return len(pq.ids)
}
