// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

// Kinds are the kinds of named scene entities. Names are unique
// within one kind, and the same name can be used across kinds.
type Kinds int32

const (
	// Model is a loaded mesh + material that can be instantiated.
	Model Kinds = iota

	// Instance is a placed copy of a Model with its own transform.
	Instance

	// World is a set of instances contributing to the scene.
	World

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [KindsN]string{"model", "instance", "world"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "kind?"
	}
	return kindNames[k]
}

// KindFromString returns the kind with the given name, as returned by
// [Kinds.String], and false if there is no such kind.
func KindFromString(s string) (Kinds, bool) {
	for k, nm := range kindNames {
		if nm == s {
			return Kinds(k), true
		}
	}
	return KindsN, false
}

// Object is the named part of a scene entity: its kind, its unique
// name, and the hook that releases the owning entity. An Object is
// embedded by value or held by pointer in each Model, Instance and
// World, and is owned by exactly one [Registry] while registered.
type Object struct {

	// Kind is the kind of the owning entity, fixed at creation.
	Kind Kinds

	// Owner is the entity this object names (a *scene.Model etc).
	Owner any

	// Release is called by [Registry.ReleaseAll] to release the owner.
	Release func() error

	// name is the current unique name; "" means no name.
	name string

	// reg is the registry this object is registered in, or nil.
	reg *Registry
}

// NewObject returns a new unregistered object of the given kind and name.
func NewObject(kind Kinds, name string, owner any, release func() error) *Object {
	return &Object{Kind: kind, Owner: owner, Release: release, name: name}
}

// Name returns the current name, which is "" for an unnamed object.
func (o *Object) Name() string {
	return o.name
}

// IsRegistered returns whether the object is currently registered.
func (o *Object) IsRegistered() bool {
	return o.reg != nil
}

func (o *Object) String() string {
	if o.name == "" {
		return o.Kind.String() + " <unnamed>"
	}
	return o.Kind.String() + " " + o.name
}
