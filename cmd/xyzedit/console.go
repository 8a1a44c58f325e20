// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/base/logx"
	"cogentcore.org/xyzedit/config"
	"cogentcore.org/xyzedit/editor"
	"cogentcore.org/xyzedit/math32"
	"cogentcore.org/xyzedit/registry"
	"cogentcore.org/xyzedit/scene"
	"github.com/mattn/go-shellwords"
)

// Console runs editor commands given as text lines.
type Console struct {

	// Config is the current config, changed by the set command.
	Config *config.Config

	// Scene is the edited scene.
	Scene *scene.Scene

	// Editor is the editor of the current world.
	Editor *editor.Editor

	// Out gets the command output.
	Out io.Writer
}

// command is one console command.
type command struct {
	name  string
	usage string
	doc   string
	min   int
	run   func(cn *Console, args []string) error
}

// commands is the table of console commands, initialized in init
// because the help command refers to it.
var commands []command

func init() {
	commands = []command{
		{"model", "model <path> [name] [minx miny minz maxx maxy maxz]", "load a model with the given local bounds (default unit cube)", 1, (*Console).model},
		{"inst", "inst <model> [name]", "create an instance of a model", 1, (*Console).inst},
		{"dup", "dup <inst> [name]", "duplicate an instance", 1, (*Console).dup},
		{"world", "world <name>", "create a world and make it current", 1, (*Console).world},
		{"add", "add <inst>...", "add instances to the current world", 1, (*Console).add},
		{"rm", "rm <inst>...", "remove instances from the current world", 1, (*Console).rm},
		{"mv", "mv <x> <y> <z> [inst...]", "move instances (default the selection) to a world position", 3, (*Console).mv},
		{"tr", "tr <space> <x> <y> <z> [inst...]", "translate in local, world or eye space", 4, (*Console).tr},
		{"rot", "rot <space> <pitch> <yaw> <roll> [inst...]", "rotate by Euler angles in degrees", 4, (*Console).rot},
		{"scale", "scale <space> <sx> <sy> <sz> [inst...]", "scale per axis", 4, (*Console).scale},
		{"sel", "sel <inst>...", "select instances", 1, (*Console).sel},
		{"unsel", "unsel <inst>...", "unselect instances", 1, (*Console).unsel},
		{"clear", "clear", "clear the selection", 0, (*Console).clear},
		{"pick", "pick <inst|none|gizmo:N>...", "process one frame of picks", 1, (*Console).pick},
		{"aabb", "aabb [inst]", "print the world bounding box of an instance or the selection", 0, (*Console).aabb},
		{"pivot", "pivot", "print the selection pivot", 0, (*Console).pivot},
		{"ls", "ls [kind]", "list models, instances, worlds and the selection", 0, (*Console).ls},
		{"rename", "rename <kind> <name> <new>", "rename an entity", 3, (*Console).rename},
		{"complete", "complete <kind> [prefix]", "list names with a prefix", 1, (*Console).complete},
		{"del", "del <kind> <name>", "destroy an entity", 2, (*Console).del},
		{"set", "set <var> <value>", "set a config variable", 2, (*Console).set},
		{"get", "get [var]", "print config variables", 0, (*Console).get},
		{"help", "help", "print this help", 0, (*Console).help},
	}
}

// Exec runs one command line. Empty lines and lines starting
// with # are ignored.
func (cn *Console) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return errors.Errorf(errors.ErrInvalidArgument, "%v", err)
	}
	if len(args) == 0 {
		return nil
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if len(args)-1 < c.min {
			return errors.Errorf(errors.ErrInvalidArgument, "usage: %s", c.usage)
		}
		return c.run(cn, args[1:])
	}
	return errors.Errorf(errors.ErrInvalidArgument, "unknown command %q; try help", args[0])
}

// Run runs all lines from the given reader, logging errors. It returns
// the number of failed lines.
func (cn *Console) Run(r io.Reader) int {
	nerr := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if errors.Log(cn.Exec(sc.Text())) != nil {
			nerr++
		}
	}
	return nerr
}

// applyConfig applies the parts of the config that take effect while running.
func (cn *Console) applyConfig() {
	logx.UserLevel.Set(cn.Config.LogLevel())
	cn.Scene.Registry.SuffixLimit = cn.Config.SuffixLimit
	cn.Editor.Mode = cn.Config.Mode()
}

func (cn *Console) model(args []string) error {
	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	bounds := math32.B3(-1, -1, -1, 1, 1, 1)
	if len(args) > 2 {
		fs, err := parseFloats(args[2:], 6)
		if err != nil {
			return err
		}
		bounds = math32.B3(fs[0], fs[1], fs[2], fs[3], fs[4], fs[5])
	}
	m, err := cn.Scene.NewModel(args[0], name, bounds)
	if err != nil {
		return err
	}
	fmt.Fprintln(cn.Out, m.Name())
	return nil
}

func (cn *Console) inst(args []string) error {
	obj, err := cn.Scene.FindObject(registry.Model, args[0])
	if err != nil {
		return err
	}
	name := args[0]
	if len(args) > 1 {
		name = args[1]
	}
	inst, err := obj.(*scene.Model).Instantiate(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cn.Out, inst.Name())
	return nil
}

func (cn *Console) dup(args []string) error {
	inst, err := cn.Scene.FindInstance(args[0])
	if err != nil {
		return err
	}
	name := args[0]
	if len(args) > 1 {
		name = args[1]
	}
	d, err := inst.Duplicate(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cn.Out, d.Name())
	return nil
}

func (cn *Console) world(args []string) error {
	w, err := cn.Scene.NewWorld(args[0])
	if err != nil {
		return err
	}
	cn.Editor.SetWorld(w)
	fmt.Fprintln(cn.Out, w.Name())
	return nil
}

func (cn *Console) currentWorld() (*scene.World, error) {
	w := cn.Editor.World
	if w == nil || !w.IsRegistered() {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "no current world; create one with world <name>")
	}
	return w, nil
}

func (cn *Console) add(args []string) error {
	w, err := cn.currentWorld()
	if err != nil {
		return err
	}
	insts, err := cn.instances(args)
	if err != nil {
		return err
	}
	return w.Add(insts...)
}

func (cn *Console) rm(args []string) error {
	w, err := cn.currentWorld()
	if err != nil {
		return err
	}
	insts, err := cn.instances(args)
	if err != nil {
		return err
	}
	return w.Remove(insts...)
}

func (cn *Console) mv(args []string) error {
	v, err := parseVector(args[:3])
	if err != nil {
		return err
	}
	insts, err := cn.targets(args[3:])
	if err != nil {
		return err
	}
	return scene.Move(insts, v)
}

// transformArgs parses the space and vector of tr, rot and scale.
func (cn *Console) transformArgs(args []string) (scene.Spaces, math32.Vector3, []*scene.Instance, error) {
	space, ok := scene.SpaceFromString(args[0])
	if !ok {
		return space, math32.Vector3{}, nil, errors.Errorf(errors.ErrInvalidArgument, "%q is not local, world or eye", args[0])
	}
	v, err := parseVector(args[1:4])
	if err != nil {
		return space, v, nil, err
	}
	insts, err := cn.targets(args[4:])
	return space, v, insts, err
}

func (cn *Console) tr(args []string) error {
	space, v, insts, err := cn.transformArgs(args)
	if err != nil {
		return err
	}
	return scene.Translate(insts, space, cn.Editor.View, v)
}

func (cn *Console) rot(args []string) error {
	space, v, insts, err := cn.transformArgs(args)
	if err != nil {
		return err
	}
	return scene.Rotate(insts, space, cn.Editor.View, v)
}

func (cn *Console) scale(args []string) error {
	space, v, insts, err := cn.transformArgs(args)
	if err != nil {
		return err
	}
	return scene.Scale(insts, space, cn.Editor.View, v)
}

func (cn *Console) sel(args []string) error {
	insts, err := cn.instances(args)
	if err != nil {
		return err
	}
	var errs []error
	for _, inst := range insts {
		errs = append(errs, cn.Editor.Selection.Select(inst))
	}
	return errors.Join(errs...)
}

func (cn *Console) unsel(args []string) error {
	insts, err := cn.instances(args)
	if err != nil {
		return err
	}
	var errs []error
	for _, inst := range insts {
		errs = append(errs, cn.Editor.Selection.Unselect(inst))
	}
	return errors.Join(errs...)
}

func (cn *Console) clear(args []string) error {
	cn.Editor.Selection.Clear()
	return nil
}

func (cn *Console) pick(args []string) error {
	for _, a := range args {
		switch {
		case a == "none":
			cn.Editor.Picks.Push(editor.NoPick)
		case strings.HasPrefix(a, "gizmo:"):
			n, err := strconv.ParseUint(strings.TrimPrefix(a, "gizmo:"), 10, 24)
			if err != nil {
				return errors.Errorf(errors.ErrInvalidArgument, "bad gizmo pick %q", a)
			}
			cn.Editor.Picks.Push(editor.NewPickID(editor.GroupGizmo, uint32(n)))
		default:
			inst, err := cn.Scene.FindInstance(a)
			if err != nil {
				return err
			}
			cn.Editor.Picks.Push(editor.NewPickID(editor.GroupWorld, inst.PickID))
		}
	}
	return cn.Editor.Update()
}

func (cn *Console) aabb(args []string) error {
	var bb math32.Box3
	if len(args) == 0 {
		bb = cn.Editor.Selection.Bounds()
	} else {
		inst, err := cn.Scene.FindInstance(args[0])
		if err != nil {
			return err
		}
		bb = inst.AABB()
	}
	if bb.IsEmpty() {
		fmt.Fprintln(cn.Out, "empty")
		return nil
	}
	fmt.Fprintf(cn.Out, "%v %v size %v\n", bb.Min, bb.Max, bb.Size())
	return nil
}

func (cn *Console) pivot(args []string) error {
	fmt.Fprintln(cn.Out, cn.Editor.Selection.Pivot())
	return nil
}

func (cn *Console) ls(args []string) error {
	kinds := []registry.Kinds{registry.Model, registry.Instance, registry.World}
	if len(args) > 0 {
		k, err := parseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []registry.Kinds{k}
	}
	for _, k := range kinds {
		fmt.Fprintf(cn.Out, "%s: %s\n", k, strings.Join(cn.Scene.Registry.Names(k), " "))
	}
	if len(args) == 0 {
		var nms []string
		for _, inst := range cn.Editor.Selection.Instances() {
			nms = append(nms, inst.Name())
		}
		fmt.Fprintf(cn.Out, "selected: %s\n", strings.Join(nms, " "))
	}
	return nil
}

func (cn *Console) rename(args []string) error {
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	obj := cn.Scene.Registry.Find(k, args[1])
	if obj == nil {
		_, err := cn.Scene.FindObject(k, args[1])
		return err
	}
	if err := cn.Scene.Registry.Rename(obj, args[2]); err != nil {
		return err
	}
	fmt.Fprintln(cn.Out, obj.Name())
	return nil
}

func (cn *Console) complete(args []string) error {
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	prefix := ""
	if len(args) > 1 {
		prefix = args[1]
	}
	fmt.Fprintln(cn.Out, strings.Join(cn.Scene.Registry.Complete(k, prefix), " "))
	return nil
}

func (cn *Console) del(args []string) error {
	k, err := parseKind(args[0])
	if err != nil {
		return err
	}
	obj, err := cn.Scene.FindObject(k, args[1])
	if err != nil {
		return err
	}
	switch e := obj.(type) {
	case *scene.Instance:
		return e.Destroy()
	case *scene.Model:
		return cn.Scene.DestroyModel(e, true)
	case *scene.World:
		return e.Destroy()
	}
	return nil
}

func (cn *Console) set(args []string) error {
	v := config.FindVar(args[0])
	if v == nil {
		return errors.Errorf(errors.ErrInvalidArgument, "unknown variable %q; one of %s", args[0], strings.Join(config.VarNames(), ", "))
	}
	if err := v.Set(cn.Config, args[1]); err != nil {
		return err
	}
	cn.applyConfig()
	return nil
}

func (cn *Console) get(args []string) error {
	for _, v := range config.Vars {
		if len(args) > 0 && v.Name != args[0] {
			continue
		}
		fmt.Fprintf(cn.Out, "%s = %s\n", v.Name, v.Get(cn.Config))
	}
	return nil
}

func (cn *Console) help(args []string) error {
	for _, c := range commands {
		fmt.Fprintf(cn.Out, "%-45s %s\n", c.usage, c.doc)
	}
	return nil
}

// instances returns the named instances.
func (cn *Console) instances(names []string) ([]*scene.Instance, error) {
	insts := make([]*scene.Instance, len(names))
	for i, nm := range names {
		inst, err := cn.Scene.FindInstance(nm)
		if err != nil {
			return nil, err
		}
		insts[i] = inst
	}
	return insts, nil
}

// targets returns the named instances, or the selection if none are named.
func (cn *Console) targets(names []string) ([]*scene.Instance, error) {
	if len(names) == 0 {
		return cn.Editor.Selection.Instances(), nil
	}
	return cn.instances(names)
}

func parseKind(s string) (registry.Kinds, error) {
	k, ok := registry.KindFromString(s)
	if !ok {
		return k, errors.Errorf(errors.ErrInvalidArgument, "%q is not model, instance or world", s)
	}
	return k, nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, errors.Errorf(errors.ErrInvalidArgument, "need %d numbers, got %d", n, len(args))
	}
	fs := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, errors.Errorf(errors.ErrInvalidArgument, "%q is not a number", a)
		}
		fs[i] = float32(f)
	}
	return fs, nil
}

func parseVector(args []string) (math32.Vector3, error) {
	fs, err := parseFloats(args, 3)
	if err != nil {
		return math32.Vector3{}, err
	}
	return math32.Vec3(fs[0], fs[1], fs[2]), nil
}
