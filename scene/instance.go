// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"slices"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/registry"
	"github.com/jinzhu/copier"
)

// Instance is a placed copy of a [Model], with its own affine transform.
// An instance is created by [Model.Instantiate] with one reference,
// which belongs to the caller, and is released when its last reference
// is dropped.
type Instance struct {
	*registry.Object

	// Matrix is the affine transform from model space to world space:
	// the upper-left 3x3 block is rotation and scale, and column 3 is
	// the translation. Use [Instance.SetMatrix] or the transform
	// functions to change it, so that render backends are updated.
	Matrix math32.Matrix4

	// Properties are arbitrary user properties, copied by [Instance.Duplicate].
	Properties map[string]any

	// Model is the model this is an instance of.
	Model *Model

	// World is the world this instance is in, if any.
	World *World

	// PickID is the local pick id that render backends report
	// when this instance is under the cursor.
	PickID uint32

	// handles are the backend instances mirroring this one.
	handles []instanceHandle

	// refs is the reference count.
	refs int

	// scene is the owning scene.
	scene *Scene
}

// Instantiate creates a new instance of the model with the identity
// transform, registers it under the given name (made unique if needed;
// empty for no name), creates a backend instance in every renderer of
// the scene and emits [CreateInstance]. On failure, everything done so
// far is undone in reverse order.
func (m *Model) Instantiate(name string) (*Instance, error) {
	if !m.IsRegistered() {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "scene: Instantiate: model %q is released", m.Name())
	}
	inst := &Instance{Matrix: math32.Identity4(), Model: m, refs: 1, scene: m.scene}
	if err := m.scene.initInstance(inst, name); err != nil {
		return nil, err
	}
	return inst, nil
}

// Duplicate creates a new instance of the same model with a copy of
// this instance's transform and properties, under the given name.
// The copy gets its own name, pick id and backend instances and is not
// in any world.
func (inst *Instance) Duplicate(name string) (*Instance, error) {
	if !inst.IsRegistered() {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "scene: Duplicate: %v is released", inst.Object)
	}
	if !inst.Model.IsRegistered() {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "scene: Duplicate: model %q is released", inst.Model.Name())
	}
	dup := &Instance{Matrix: inst.Matrix, Model: inst.Model, refs: 1, scene: inst.scene}
	if err := copier.CopyWithOption(&dup.Properties, &inst.Properties, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Errorf(errors.ErrInternal, "scene: Duplicate: %v", err)
	}
	if err := inst.scene.initInstance(dup, name); err != nil {
		return nil, err
	}
	return dup, nil
}

// initInstance does the shared part of Instantiate and Duplicate:
// model reference, pick id, registration and backend instances.
func (sc *Scene) initInstance(inst *Instance, name string) error {
	m := inst.Model
	id, err := sc.allocPickID()
	if err != nil {
		return err
	}
	inst.Object = registry.NewObject(registry.Instance, name, inst, inst.Destroy)
	if err := sc.Registry.Register(inst.Object); err != nil {
		sc.freePickIDs = append(sc.freePickIDs, id)
		return err
	}
	inst.PickID = id
	sc.pickIDs[id] = inst
	m.Ref()
	m.instances = append(m.instances, inst)
	for _, r := range sc.renderers {
		h, err := r.CreateInstance(inst)
		if err != nil {
			inst.unwind()
			return errors.Join(errors.Errorf(errors.ErrInternal, "scene: creating backend instance of %v", inst.Object), err)
		}
		inst.handles = append(inst.handles, instanceHandle{renderer: r, handle: h})
	}
	slog.Debug("scene: created instance", "name", inst.Name(), "model", m.Name(), "pickID", id)
	sc.Signals.Emit(CreateInstance, inst)
	return nil
}

// unwind undoes a partial initInstance, in reverse order.
func (inst *Instance) unwind() {
	errs := inst.destroyHandles()
	m := inst.Model
	m.instances = slices.DeleteFunc(m.instances, func(i *Instance) bool { return i == inst })
	m.refs--
	errs = append(errs, inst.scene.Registry.Unregister(inst.Object))
	inst.scene.freePickID(inst.PickID)
	inst.refs = 0
	errors.Log(errors.Join(errs...))
}

// Ref adds a reference to the instance.
func (inst *Instance) Ref() {
	inst.refs++
}

// Unref drops a reference to the instance, releasing it when the count
// reaches zero. It is an error to drop a reference that is not held,
// including on an instance that has already been released.
func (inst *Instance) Unref() error {
	if inst.refs <= 0 || !inst.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: %v: Unref without a reference", inst.Object)
	}
	inst.refs--
	if inst.refs > 0 {
		return nil
	}
	return inst.release()
}

// Refs returns the current reference count.
func (inst *Instance) Refs() int {
	return inst.refs
}

// Destroy releases the instance regardless of its reference count.
// It is an error to destroy an instance that has already been released.
func (inst *Instance) Destroy() error {
	inst.refs = 0
	return inst.release()
}

// IsReleased returns whether the instance has been released.
func (inst *Instance) IsReleased() bool {
	return !inst.IsRegistered()
}

// release removes the instance from its world, emits [DestroyInstance],
// unregisters it, drops its model reference and destroys its backend
// instances, in that order.
func (inst *Instance) release() error {
	if !inst.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: %v is already released", inst.Object)
	}
	var errs []error
	if inst.World != nil {
		errs = append(errs, inst.World.Remove(inst))
	}
	inst.scene.Signals.Emit(DestroyInstance, inst)
	errs = append(errs, inst.scene.Registry.Unregister(inst.Object))
	m := inst.Model
	m.instances = slices.DeleteFunc(m.instances, func(i *Instance) bool { return i == inst })
	errs = append(errs, m.Unref())
	errs = append(errs, inst.destroyHandles()...)
	inst.scene.freePickID(inst.PickID)
	slog.Debug("scene: destroyed instance", "name", inst.Name(), "pickID", inst.PickID)
	return errors.Join(errs...)
}

// destroyHandles destroys all backend instances, last first.
func (inst *Instance) destroyHandles() []error {
	var errs []error
	for i := len(inst.handles) - 1; i >= 0; i-- {
		h := inst.handles[i]
		errs = append(errs, h.renderer.DestroyInstance(h.handle))
	}
	inst.handles = nil
	return errs
}

// NumHandles returns the number of backend instances mirroring this one.
func (inst *Instance) NumHandles() int {
	return len(inst.handles)
}

// Position returns the world position of the instance origin.
func (inst *Instance) Position() math32.Vector3 {
	return inst.Matrix.Pos()
}

// SetMatrix replaces the transform and mirrors it to the backends.
func (inst *Instance) SetMatrix(m math32.Matrix4) error {
	if !inst.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: SetMatrix: %v is released", inst.Object)
	}
	inst.Matrix = m
	return inst.mirror(func(r Renderer, h Handle) error {
		return r.SetMatrix(h, m)
	})
}

// mirror calls fun once for each backend instance of this instance.
func (inst *Instance) mirror(fun func(r Renderer, h Handle) error) error {
	var errs []error
	for _, h := range inst.handles {
		if err := fun(h.renderer, h.handle); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
