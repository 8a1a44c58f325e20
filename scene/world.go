// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/keylist"
	"cogentcore.org/xyzedit/registry"
)

// World is a set of instances that contribute to the scene, in the
// order they were added. An instance is in at most one world.
// Instances are keyed by their pick id, so that picks reported by
// the render backend resolve to instances through the world.
type World struct {
	*registry.Object

	// instances are the members, keyed by pick id.
	instances keylist.List[uint32, *Instance]

	// scene is the owning scene.
	scene *Scene
}

// NewWorld creates and registers a new empty world.
// A name already in use gets a numeric suffix.
func (sc *Scene) NewWorld(name string) (*World, error) {
	if name == "" {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "scene: NewWorld: empty name")
	}
	w := &World{scene: sc}
	w.Object = registry.NewObject(registry.World, name, w, w.Destroy)
	if err := sc.Registry.Register(w.Object); err != nil {
		return nil, err
	}
	slog.Debug("scene: created world", "name", w.Name())
	return w, nil
}

// Destroy removes all instances from the world, and unregisters it.
// The instances themselves are not released.
func (w *World) Destroy() error {
	if !w.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: %v is already destroyed", w.Object)
	}
	for _, inst := range w.instances.Values {
		inst.World = nil
	}
	w.instances.Reset()
	slog.Debug("scene: destroyed world", "name", w.Name())
	return w.scene.Registry.Unregister(w.Object)
}

// Add adds the given instances to the world. It is an error if any of
// them is released or already in a world (this one included); in that
// case no instance is added.
func (w *World) Add(insts ...*Instance) error {
	if !w.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: Add: %v is destroyed", w.Object)
	}
	for i, inst := range insts {
		switch {
		case inst == nil || inst.IsReleased():
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Add: instance %d is nil or released", i)
		case inst.World != nil:
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Add: %v is already in %v", inst.Object, inst.World.Object)
		case slices.Index(insts, inst) != i:
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Add: %v is listed twice", inst.Object)
		}
	}
	for _, inst := range insts {
		errors.Log(w.instances.Add(inst.PickID, inst))
		inst.World = w
	}
	return nil
}

// Remove removes the given instances from the world. It is an error if
// any of them is not in this world; in that case none is removed.
// Callers that are not sure should check [World.Has] first.
func (w *World) Remove(insts ...*Instance) error {
	for i, inst := range insts {
		switch {
		case inst == nil:
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Remove: instance %d is nil", i)
		case inst.World != w:
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Remove: %v is not in %v", inst.Object, w.Object)
		case slices.Index(insts, inst) != i:
			return errors.Errorf(errors.ErrInvalidArgument, "scene: Remove: %v is listed twice", inst.Object)
		}
	}
	for _, inst := range insts {
		w.instances.DeleteByKey(inst.PickID)
		inst.World = nil
	}
	return nil
}

// Has returns whether the given instance is in this world.
func (w *World) Has(inst *Instance) bool {
	return inst != nil && inst.World == w
}

// Instance returns the member with the given local pick id, or nil.
func (w *World) Instance(localID uint32) *Instance {
	return w.instances.At(localID)
}

// Instances returns the members in the order they were added.
func (w *World) Instances() []*Instance {
	return slices.Clone(w.instances.Values)
}

// Len returns the number of members.
func (w *World) Len() int {
	return w.instances.Len()
}
