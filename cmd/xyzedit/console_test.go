// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/xyzedit/base/errors"
	"cogentcore.org/xyzedit/config"
	"cogentcore.org/xyzedit/editor"
	"cogentcore.org/xyzedit/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cn, err := newConsole(config.New(), &out)
	require.NoError(t, err)
	t.Cleanup(cn.close)
	return cn, &out
}

// exec runs the given lines, failing on any error, and returns the output.
func exec(t *testing.T, cn *Console, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	out.Reset()
	for _, ln := range lines {
		require.NoError(t, cn.Exec(ln), ln)
	}
	return out.String()
}

func TestConsoleEntities(t *testing.T) {
	cn, out := testConsole(t)
	assert.Equal(t, "cube\ncube_0\n", exec(t, cn, out, "model assets/cube.glb", `model "other dir/cube.glb"`))
	assert.Equal(t, "cube\ncube_0\nfoo\n", exec(t, cn, out, "inst cube", "inst cube cube", "dup cube foo"))
	exec(t, cn, out, "add cube cube_0")
	assert.Equal(t, "model: cube cube_0\ninstance: cube cube_0 foo\nworld: main\nselected: \n", exec(t, cn, out, "ls"))
	assert.Equal(t, "cube cube_0\n", exec(t, cn, out, "complete model cu"))
	assert.Equal(t, "cube_1\n", exec(t, cn, out, "rename instance foo cube"))

	err := cn.Exec("inst cueb")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "did you mean cube")
	assert.Error(t, cn.Exec("frobnicate"))
	assert.Error(t, cn.Exec("inst"))
	assert.NoError(t, cn.Exec("  # comment"))

	exec(t, cn, out, "del instance cube_1")
	assert.Nil(t, cn.Scene.Instance("cube_1"))
	assert.True(t, cn.Editor.World.Has(cn.Scene.Instance("cube")))
	exec(t, cn, out, "del model cube")
	assert.Equal(t, "instance: \n", exec(t, cn, out, "ls instance"))
}

func TestConsoleTransform(t *testing.T) {
	cn, out := testConsole(t)
	exec(t, cn, out, "model cube.glb", "inst cube a", "inst cube b", "add a b",
		"mv 1 2 3 a", "sel b", "tr world 0 0 5", "rot local 0 90 0 a", "scale world 2 2 2 a")
	assert.Equal(t, math32.Vec3(1, 2, 3), cn.Scene.Instance("a").Position())
	assert.Equal(t, math32.Vec3(0, 0, 5), cn.Scene.Instance("b").Position())
	assert.Equal(t, "(-1, -1, 4) (1, 1, 6) size (2, 2, 2)\n", exec(t, cn, out, "aabb b"))
	assert.Equal(t, "(-1, -1, 4) (1, 1, 6) size (2, 2, 2)\n", exec(t, cn, out, "aabb"))
	assert.Equal(t, "(0, 0, 5)\n", exec(t, cn, out, "pivot"))
	assert.Error(t, cn.Exec("tr sideways 1 0 0"))
	assert.Error(t, cn.Exec("tr world 1 x 0"))
	exec(t, cn, out, "model ground.glb ground -inf 0 -inf inf 0 inf", "inst ground g")
	assert.Equal(t, "(-Inf, -Inf, -Inf) (+Inf, +Inf, +Inf) size (+Inf, +Inf, +Inf)\n", exec(t, cn, out, "aabb g"))
	exec(t, cn, out, "clear")
	assert.Equal(t, "empty\n", exec(t, cn, out, "aabb"))
}

func TestConsolePick(t *testing.T) {
	cn, out := testConsole(t)
	exec(t, cn, out, "model cube.glb", "inst cube a", "inst cube b", "add a b")
	sel := cn.Editor.Selection
	a, b := cn.Scene.Instance("a"), cn.Scene.Instance("b")

	exec(t, cn, out, "pick a a")
	assert.True(t, sel.IsSelected(a))
	exec(t, cn, out, "set selection_mode new", "pick a b")
	assert.Equal(t, editor.SelectionNew, cn.Editor.Mode)
	assert.False(t, sel.IsSelected(a))
	assert.True(t, sel.IsSelected(b))
	exec(t, cn, out, "pick none")
	assert.Equal(t, 0, sel.Len())
	exec(t, cn, out, "sel a b", "unsel a", "pick gizmo:3")
	assert.Equal(t, 1, sel.Len())
	exec(t, cn, out, "clear")
	assert.Equal(t, 0, sel.Len())
	assert.Error(t, cn.Exec("pick gizmo:x"))
}

func TestConsoleConfig(t *testing.T) {
	cn, out := testConsole(t)
	assert.Equal(t, "backend = gl\n", exec(t, cn, out, "get backend"))
	exec(t, cn, out, "set suffix_limit 1", "model cube.glb", "model cube.glb")
	assert.Equal(t, 1, cn.Scene.Registry.SuffixLimit)
	assert.ErrorIs(t, cn.Exec("model cube.glb"), errors.ErrOverflow)
	assert.Error(t, cn.Exec("set colour red"))
	assert.Contains(t, exec(t, cn, out, "help"), "rot <space> <pitch> <yaw> <roll>")
}

func TestConsoleRun(t *testing.T) {
	cn, out := testConsole(t)
	nerr := cn.Run(strings.NewReader("model cube.glb\ninst nope\ninst cube\n"))
	assert.Equal(t, 1, nerr)
	assert.Equal(t, "cube\ncube\n", out.String())

	rc, err := newConsole(&config.Config{Backend: "raylib", SelectionMode: "xor", SuffixLimit: 8}, out)
	require.NoError(t, err)
	rc.close()
	_, err = newConsole(&config.Config{Backend: "vulkan"}, out)
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	*debug = true
	t.Cleanup(func() { *debug = false })

	// a reloaded file without log flags keeps the command line level
	c := config.New()
	require.NoError(t, config.Read(c, strings.NewReader("backend = \"gl\"\n"), "x.toml"))
	applyFlags(c)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())

	c = config.New()
	c.Quiet = true
	applyFlags(c)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
	assert.Equal(t, "", c.Script)
}
