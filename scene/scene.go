// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements the scene object model: reference-counted
// models and model instances, the worlds that hold instances, the
// lifecycle signal bus, coordinate-space-aware transforms, and
// bounding volumes over possibly-infinite models.
//
// Everything in this package is meant to be driven from a single
// goroutine (the main loop); nothing is safe for concurrent mutation.
package scene

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/registry"
)

// MaxPickID is the largest pick id given to an instance. Pick ids are
// 24-bit local ids, and the all-ones value is reserved for "nothing".
const MaxPickID = 1<<24 - 2

// NoPickID is the reserved local pick id meaning "nothing".
const NoPickID = 1<<24 - 1

// Scene is the application context of the scene object model.
// It owns the registry of named entities, the signal bus,
// the attached renderers and the pick id allocator.
type Scene struct {

	// Registry holds all models, instances and worlds by name.
	Registry *registry.Registry

	// Signals is the entity lifecycle signal bus.
	Signals Signals

	// renderers are mirrored by every new instance.
	renderers []Renderer

	// nextPickID is the next never-used pick id.
	nextPickID uint32

	// freePickIDs are pick ids of destroyed instances, for reuse.
	freePickIDs []uint32

	// pickIDs maps live pick ids to their instance.
	pickIDs map[uint32]*Instance
}

// NewScene returns a new empty [Scene].
func NewScene() *Scene {
	return &Scene{
		Registry:   registry.New(),
		nextPickID: 1,
		pickIDs:    make(map[uint32]*Instance),
	}
}

// AddRenderer attaches a render backend. Instances created after this
// call mirror themselves to it.
func (sc *Scene) AddRenderer(r Renderer) {
	sc.renderers = append(sc.renderers, r)
}

// Renderers returns the attached render backends.
func (sc *Scene) Renderers() []Renderer {
	return sc.renderers
}

// Object returns the entity (a *Model, *Instance or *World) of the
// given kind and name, or nil if there is none.
func (sc *Scene) Object(kind registry.Kinds, name string) any {
	o := sc.Registry.Find(kind, name)
	if o == nil {
		return nil
	}
	return o.Owner
}

// Model returns the model of the given name, or nil.
func (sc *Scene) Model(name string) *Model {
	m, _ := sc.Object(registry.Model, name).(*Model)
	return m
}

// Instance returns the instance of the given name, or nil.
func (sc *Scene) Instance(name string) *Instance {
	inst, _ := sc.Object(registry.Instance, name).(*Instance)
	return inst
}

// World returns the world of the given name, or nil.
func (sc *Scene) World(name string) *World {
	w, _ := sc.Object(registry.World, name).(*World)
	return w
}

// FindObject is like [Scene.Object], but returns an error for a
// missing name, which suggests similar registered names.
func (sc *Scene) FindObject(kind registry.Kinds, name string) (any, error) {
	if obj := sc.Object(kind, name); obj != nil {
		return obj, nil
	}
	msg := fmt.Sprintf("%s %q does not exist", kind, name)
	if sg := sc.Registry.Suggest(kind, name, 3); len(sg) > 0 {
		msg += "; did you mean " + strings.Join(sg, ", ") + "?"
	}
	return nil, errors.Errorf(errors.ErrInvalidArgument, "%s", msg)
}

// FindInstance returns the instance of the given name,
// or an error suggesting similar names.
func (sc *Scene) FindInstance(name string) (*Instance, error) {
	obj, err := sc.FindObject(registry.Instance, name)
	if err != nil {
		return nil, err
	}
	return obj.(*Instance), nil
}

// InstanceByPickID returns the live instance with the given pick id, or nil.
func (sc *Scene) InstanceByPickID(id uint32) *Instance {
	return sc.pickIDs[id]
}

// allocPickID returns an unused pick id.
func (sc *Scene) allocPickID() (uint32, error) {
	if n := len(sc.freePickIDs); n > 0 {
		id := sc.freePickIDs[n-1]
		sc.freePickIDs = sc.freePickIDs[:n-1]
		return id, nil
	}
	if sc.nextPickID > MaxPickID {
		return 0, errors.Errorf(errors.ErrOverflow, "scene: all %d pick ids are in use", MaxPickID)
	}
	id := sc.nextPickID
	sc.nextPickID++
	return id, nil
}

func (sc *Scene) freePickID(id uint32) {
	delete(sc.pickIDs, id)
	sc.freePickIDs = append(sc.freePickIDs, id)
}

// Close destroys every instance, world and model, in that order,
// with named instances in name order and then unnamed ones in pick id order,
// and then detaches all signal receivers. Errors are collected
// and logged.
func (sc *Scene) Close() error {
	var errs []error
	for _, o := range sc.Registry.List(registry.Instance) {
		errs = append(errs, o.Owner.(*Instance).Destroy())
	}
	// unnamed instances are not in the name list
	for _, id := range slices.Sorted(maps.Keys(sc.pickIDs)) {
		errs = append(errs, sc.pickIDs[id].Destroy())
	}
	errs = append(errs, sc.Registry.ReleaseAll(registry.World))
	for _, o := range sc.Registry.List(registry.Model) {
		errs = append(errs, sc.DestroyModel(o.Owner.(*Model), true))
	}
	sc.Signals.Reset()
	slog.Debug("scene: closed")
	return errors.Log(errors.Join(errs...))
}
