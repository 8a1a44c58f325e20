// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry implements the per-kind name to object lookup
// table that keeps the names of scene entities unique, with
// collision-safe renaming and name completion.
//
// A Registry is not safe for concurrent use. Iterating the result of
// [Registry.List] is safe while mutating, but a rename re-inserts the
// object, so indexes into a previous List are not stable.
package registry

import (
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
)

// DefaultSuffixLimit is the default number of "_N" suffixes that are
// probed for a unique name before giving up, which is the range of
// the 16-bit counter used for suffixes.
const DefaultSuffixLimit = math.MaxUint16 + 1

// Registry holds a name-sorted list of objects for each kind.
// The zero value is ready to use.
type Registry struct {

	// SuffixLimit is the number of suffixes probed by [Registry.Rename]
	// and [Registry.Register]; 0 means [DefaultSuffixLimit].
	SuffixLimit int

	// lists are the registered named objects of each kind, sorted by name.
	lists [KindsN][]*Object

	// unnamed counts registered objects without a name, per kind.
	unnamed [KindsN]int
}

// New returns a new empty [Registry].
func New() *Registry {
	return &Registry{}
}

// Register adds the given object to the registry. If its name is already
// used by another object of the same kind, the object is given the first
// free name of the form name_0, name_1, ... An object with an empty name
// is registered without a name and is never found by name.
func (r *Registry) Register(o *Object) error {
	if err := r.checkObject(o); err != nil {
		return err
	}
	if o.reg != nil {
		return errors.Errorf(errors.ErrInvalidArgument, "registry: %v is already registered", o)
	}
	if o.name != "" && r.Find(o.Kind, o.name) != nil {
		name, err := r.uniqueName(o.Kind, o.name)
		if err != nil {
			return err
		}
		o.name = name
	}
	r.insert(o)
	o.reg = r
	slog.Debug("registry: registered", "kind", o.Kind, "name", o.name)
	return nil
}

// Unregister removes the given object from the registry. It is an
// error to unregister an object that is not registered here, which
// catches double release of the owning entity.
func (r *Registry) Unregister(o *Object) error {
	if err := r.checkObject(o); err != nil {
		return err
	}
	if o.reg != r {
		return errors.Errorf(errors.ErrInvalidArgument, "registry: %v is not registered", o)
	}
	r.remove(o)
	o.reg = nil
	slog.Debug("registry: unregistered", "kind", o.Kind, "name", o.name)
	return nil
}

// Find returns the registered object of the given kind with the given
// name, or nil if there is none.
func (r *Registry) Find(kind Kinds, name string) *Object {
	if kind < 0 || kind >= KindsN || name == "" {
		return nil
	}
	idx, found := r.search(kind, name)
	if !found {
		return nil
	}
	return r.lists[kind][idx]
}

// Rename changes the name of the given object. If the new name is used
// by another object of the same kind, the object gets the first free
// name of the form name_0, name_1, ... If no suffix is free, an
// [errors.ErrOverflow] error is returned and the object keeps its
// previous name and registration exactly. An empty name removes the
// name, making the object unreachable by [Registry.Find].
func (r *Registry) Rename(o *Object, name string) error {
	if err := r.checkObject(o); err != nil {
		return err
	}
	if name == o.name {
		return nil
	}
	if o.reg == nil {
		o.name = name
		return nil
	}
	if o.reg != r {
		return errors.Errorf(errors.ErrInvalidArgument, "registry: %v is registered in another registry", o)
	}
	prev := o.name
	other := r.Find(o.Kind, name)
	if other == nil {
		r.remove(o)
		o.name = name
		r.insert(o)
		return nil
	}
	// taking ourselves out first keeps the list sorted while probing
	r.remove(o)
	o.name = name
	unique, err := r.uniqueName(o.Kind, name)
	if err != nil {
		o.name = prev
		r.insert(o)
		return err
	}
	o.name = unique
	r.insert(o)
	slog.Debug("registry: renamed", "kind", o.Kind, "from", prev, "to", unique)
	return nil
}

// List returns the registered named objects of the given kind, in name order.
// The returned slice is a copy.
func (r *Registry) List(kind Kinds) []*Object {
	if kind < 0 || kind >= KindsN {
		return nil
	}
	return slices.Clone(r.lists[kind])
}

// Names returns the registered names of the given kind, in order.
func (r *Registry) Names(kind Kinds) []string {
	if kind < 0 || kind >= KindsN {
		return nil
	}
	nms := make([]string, len(r.lists[kind]))
	for i, o := range r.lists[kind] {
		nms[i] = o.name
	}
	return nms
}

// Len returns the number of registered objects of the given kind,
// including unnamed ones.
func (r *Registry) Len(kind Kinds) int {
	if kind < 0 || kind >= KindsN {
		return 0
	}
	return len(r.lists[kind]) + r.unnamed[kind]
}

// Complete returns the registered names of the given kind that start
// with the given prefix, in order.
func (r *Registry) Complete(kind Kinds, prefix string) []string {
	if kind < 0 || kind >= KindsN {
		return nil
	}
	lst := r.lists[kind]
	start, _ := r.search(kind, prefix)
	var nms []string
	for _, o := range lst[start:] {
		if !strings.HasPrefix(o.name, prefix) {
			break
		}
		nms = append(nms, o.name)
	}
	return nms
}

// ReleaseAll calls the Release hook of every registered object of the
// given kind, in name order, collecting any errors. Release hooks
// typically unregister their object, so this iterates over a copy.
func (r *Registry) ReleaseAll(kind Kinds) error {
	var errs []error
	for _, o := range r.List(kind) {
		if o.Release == nil {
			continue
		}
		if err := o.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) checkObject(o *Object) error {
	if o == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "registry: nil object")
	}
	if o.Kind < 0 || o.Kind >= KindsN {
		return errors.Errorf(errors.ErrInvalidArgument, "registry: invalid kind %d", o.Kind)
	}
	return nil
}

func (r *Registry) suffixLimit() int {
	if r.SuffixLimit <= 0 {
		return DefaultSuffixLimit
	}
	return r.SuffixLimit
}

// uniqueName returns the first name_N not used by a registered object.
func (r *Registry) uniqueName(kind Kinds, name string) (string, error) {
	lim := r.suffixLimit()
	for n := 0; n < lim; n++ {
		cand := name + "_" + strconv.Itoa(n)
		if _, found := r.search(kind, cand); !found {
			return cand, nil
		}
	}
	return "", errors.Errorf(errors.ErrOverflow, "registry: no free suffix for %s %q in %d tries", kind, name, lim)
}

// search returns the index of the given name in the sorted list
// of the given kind, or the index where it would be inserted.
func (r *Registry) search(kind Kinds, name string) (int, bool) {
	return slices.BinarySearchFunc(r.lists[kind], name, func(o *Object, nm string) int {
		return strings.Compare(o.name, nm)
	})
}

func (r *Registry) insert(o *Object) {
	if o.name == "" {
		r.unnamed[o.Kind]++
		return
	}
	idx, _ := r.search(o.Kind, o.name)
	r.lists[o.Kind] = slices.Insert(r.lists[o.Kind], idx, o)
}

func (r *Registry) remove(o *Object) {
	if o.name == "" {
		r.unnamed[o.Kind]--
		return
	}
	idx, found := r.search(o.Kind, o.name)
	if found && r.lists[o.Kind][idx] == o {
		r.lists[o.Kind] = slices.Delete(r.lists[o.Kind], idx, idx+1)
	}
}
