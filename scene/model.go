// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/registry"
)

// Model is a loaded mesh and material that can be placed in the scene
// any number of times as an [Instance]. Every instance holds a
// reference to its model, so a model outlives all of its instances.
type Model struct {
	*registry.Object

	// Path is the file the model was loaded from.
	Path string

	// Bounds is the axis-aligned bounding box of the mesh in model space.
	// Components at -/+ Infinity mark an infinite model (e.g. a ground plane).
	Bounds math32.Box3

	// Mesh and Material are opaque handles owned by the mesh loader.
	Mesh, Material any

	// instances are the live instances of this model.
	instances []*Instance

	// refs is the reference count.
	refs int

	// scene is the owning scene.
	scene *Scene
}

// NewModel creates and registers a new model with one reference, which
// belongs to the caller. If name is empty, it is taken from the base name
// of path without extension. A name already in use gets a numeric suffix.
func (sc *Scene) NewModel(path, name string, bounds math32.Box3) (*Model, error) {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "scene: NewModel: no name for model path %q", path)
	}
	m := &Model{Path: path, Bounds: bounds, refs: 1, scene: sc}
	m.Object = registry.NewObject(registry.Model, name, m, func() error {
		return sc.DestroyModel(m, true)
	})
	if err := sc.Registry.Register(m.Object); err != nil {
		return nil, err
	}
	slog.Debug("scene: created model", "name", m.Name(), "path", path)
	sc.Signals.Emit(CreateModel, m)
	return m, nil
}

// Ref adds a reference to the model.
func (m *Model) Ref() {
	m.refs++
}

// Unref drops a reference to the model, releasing it when the count
// reaches zero. It is an error to drop a reference that is not held.
func (m *Model) Unref() error {
	if m.refs <= 0 {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: Model %q: Unref without a reference", m.Name())
	}
	m.refs--
	if m.refs > 0 {
		return nil
	}
	return m.release()
}

// Refs returns the current reference count.
func (m *Model) Refs() int {
	return m.refs
}

// NumInstances returns the number of live instances of the model.
func (m *Model) NumInstances() int {
	return len(m.instances)
}

// Instances returns the live instances of the model, in creation order.
func (m *Model) Instances() []*Instance {
	return slices.Clone(m.instances)
}

// IsInfinite returns whether the model bounds are unbounded on some axis.
func (m *Model) IsInfinite() bool {
	return m.Bounds.IsInfinite()
}

// release emits DestroyModel and unregisters the model.
func (m *Model) release() error {
	if !m.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: Model %q is already released", m.Name())
	}
	m.scene.Signals.Emit(DestroyModel, m)
	if err := m.scene.Registry.Unregister(m.Object); err != nil {
		return err
	}
	m.refs = 0
	slog.Debug("scene: destroyed model", "name", m.Name())
	return nil
}

// DestroyModel drops the caller's reference to the given model, which
// releases it unless other references are held. A model that still has
// instances can only be destroyed with force, which first destroys all
// of its instances.
func (sc *Scene) DestroyModel(m *Model, force bool) error {
	if m == nil || m.scene != sc {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: DestroyModel: model is nil or not in this scene")
	}
	if !m.IsRegistered() {
		return errors.Errorf(errors.ErrInvalidArgument, "scene: DestroyModel: model %q is already released", m.Name())
	}
	if len(m.instances) > 0 {
		if !force {
			return errors.Errorf(errors.ErrInvalidArgument, "scene: DestroyModel: model %q has %d instances", m.Name(), len(m.instances))
		}
		var errs []error
		for _, inst := range m.Instances() {
			errs = append(errs, inst.Destroy())
		}
		if err := errors.Join(errs...); err != nil {
			return err
		}
	}
	if force {
		return m.release()
	}
	return m.Unref()
}
