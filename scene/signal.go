// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"reflect"

	"cogentcore.org/xyzedit/base/errors"
)

// SignalKinds are the kinds of entity lifecycle signals.
type SignalKinds int32

const (
	// CreateModel is emitted after a model is created and registered.
	CreateModel SignalKinds = iota

	// DestroyModel is emitted when a model is released, while it is
	// still registered.
	DestroyModel

	// CreateInstance is emitted after an instance is created.
	CreateInstance

	// DestroyInstance is emitted when an instance is released, after it
	// has left its world and before it is unregistered, so receivers
	// can still find and drop their references to it.
	DestroyInstance

	// SignalKindsN is the number of signal kinds.
	SignalKindsN
)

var signalNames = [SignalKindsN]string{"CreateModel", "DestroyModel", "CreateInstance", "DestroyInstance"}

func (s SignalKinds) String() string {
	if s < 0 || s >= SignalKindsN {
		return "SignalKinds?"
	}
	return signalNames[s]
}

// SignalFunc is a receiver function for a signal. It gets the signal kind,
// the entity (a *Model or *Instance) and the data given to [Signals.Attach].
type SignalFunc func(sig SignalKinds, entity any, data any)

// connection is one attached receiver.
type connection struct {
	fun  SignalFunc
	data any
}

// matches returns whether the connection has the given function and data.
// Functions are compared by code pointer, so two closures made from the
// same function literal match each other; data tells them apart.
func (c *connection) matches(fun SignalFunc, data any) bool {
	if reflect.ValueOf(c.fun).Pointer() != reflect.ValueOf(fun).Pointer() {
		return false
	}
	if c.data == nil || data == nil {
		return c.data == nil && data == nil
	}
	if reflect.TypeOf(c.data) != reflect.TypeOf(data) || !reflect.TypeOf(data).Comparable() {
		return false
	}
	return c.data == data
}

// Signals is the lifecycle signal bus: an ordered list of connections for
// each [SignalKinds]. Emission is synchronous and in attachment order.
// The same function and data can be attached more than once, in which
// case it is called once per attachment.
type Signals struct {
	cons [SignalKindsN][]connection
}

// Attach connects the given receiver function and data to the given signal.
func (sg *Signals) Attach(sig SignalKinds, fun SignalFunc, data any) error {
	if sig < 0 || sig >= SignalKindsN {
		return errors.Errorf(errors.ErrInvalidArgument, "signals: Attach: invalid signal %d", sig)
	}
	if fun == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "signals: Attach: no receiver function for %v", sig)
	}
	sg.cons[sig] = append(sg.cons[sig], connection{fun: fun, data: data})
	return nil
}

// Detach disconnects the first attachment of the given receiver function
// and data from the given signal. It is an error if it is not attached.
func (sg *Signals) Detach(sig SignalKinds, fun SignalFunc, data any) error {
	if sig < 0 || sig >= SignalKindsN || fun == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "signals: Detach: invalid signal %d or receiver", sig)
	}
	for i := range sg.cons[sig] {
		if sg.cons[sig][i].matches(fun, data) {
			// copy so that an Emit in progress keeps its snapshot intact
			cs := make([]connection, 0, len(sg.cons[sig])-1)
			cs = append(cs, sg.cons[sig][:i]...)
			sg.cons[sig] = append(cs, sg.cons[sig][i+1:]...)
			return nil
		}
	}
	return errors.Errorf(errors.ErrInvalidArgument, "signals: Detach: receiver not attached to %v", sig)
}

// IsAttached returns whether the given receiver function and data
// are attached to the given signal.
func (sg *Signals) IsAttached(sig SignalKinds, fun SignalFunc, data any) bool {
	if sig < 0 || sig >= SignalKindsN || fun == nil {
		return false
	}
	for i := range sg.cons[sig] {
		if sg.cons[sig][i].matches(fun, data) {
			return true
		}
	}
	return false
}

// NumAttached returns the number of attachments to the given signal.
func (sg *Signals) NumAttached(sig SignalKinds) int {
	if sig < 0 || sig >= SignalKindsN {
		return 0
	}
	return len(sg.cons[sig])
}

// Emit calls every receiver attached to the given signal with the given
// entity, in attachment order. It iterates over the connections as they
// were when Emit was called, so receivers may attach or detach.
func (sg *Signals) Emit(sig SignalKinds, entity any) {
	if sig < 0 || sig >= SignalKindsN {
		return
	}
	cons := sg.cons[sig]
	for _, c := range cons {
		c.fun(sig, entity, c.data)
	}
}

// Reset detaches all receivers from all signals.
func (sg *Signals) Reset() {
	sg.cons = [SignalKindsN][]connection{}
}
