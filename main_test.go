package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathshadow/internal/model"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, env map[string]string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	var stdout, stderr bytes.Buffer
	code := run(append(args, "--color=never"), &stdout, &stderr, lookup)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func mkTool(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(dir), 0755))
	return p
}

func TestShadowsCmd_DifferentFiles(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	mkTool(t, a, "tool")
	mkTool(t, b, "tool")
	env := map[string]string{"PATH": a + ":" + b}
	want := []string{filepath.Join(a, "tool") + ":" + filepath.Join(b, "tool")}

	res := execute(t, env, "shadows")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, want, lines(res.stdout))
	assert.Empty(t, res.stderr)

	res = execute(t, env, "shadows", "--show-same=only")
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)

	res = execute(t, env, "shadows", "--jobs=4", "--show-same", "true")
	assert.Equal(t, want, lines(res.stdout))
}

func TestShadowsCmd_Symlinks(t *testing.T) {
	store, a, b := t.TempDir(), t.TempDir(), t.TempDir()
	target := mkTool(t, store, "tool")
	require.NoError(t, os.Symlink(target, filepath.Join(a, "tool")))
	require.NoError(t, os.Symlink(target, filepath.Join(b, "tool")))
	sp := a + ":" + b
	want := []string{filepath.Join(a, "tool") + " | " + filepath.Join(b, "tool")}

	assert.Empty(t, execute(t, nil, "shadows", sp).stdout)
	assert.Equal(t, want, lines(execute(t, nil, "shadows", "--show-same=true", "--delimiter= | ", sp).stdout))
	assert.Equal(t, want, lines(execute(t, nil, "shadows", "--show-same=only", "--delimiter= | ", sp).stdout))
}

func TestShadowsCmd_DiagnosticsGoToStderr(t *testing.T) {
	a := t.TempDir()
	mkTool(t, a, "tool")
	missing := filepath.Join(a, "missing")

	res := execute(t, nil, "shadows", missing+":"+a+":"+a)
	assert.Equal(t, 0, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "directory unreadable")
	assert.Contains(t, res.stderr, missing)
}

func TestShadowsCmd_NoSource(t *testing.T) {
	res := execute(t, nil, "shadows")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "could not get PATH variable")
}

func TestShadowsCmd_BadShowSame(t *testing.T) {
	res := execute(t, map[string]string{"PATH": "/"}, "shadows", "--show-same=maybe")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid visibility")
}

func TestShadowsCmd_JSON(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	mkTool(t, a, "tool")
	mkTool(t, b, "tool")

	res := execute(t, nil, "shadows", "--format=json", a+":/does/not/exist:"+b)
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, `"shadowing": "`+filepath.Join(a, "tool")+`"`)
	assert.Contains(t, res.stdout, `"diagnostics": 1`)
}

func TestWhereCmd(t *testing.T) {
	a, b, c := t.TempDir(), t.TempDir(), t.TempDir()
	fooA := mkTool(t, a, "foo")
	mkTool(t, b, "baz")
	fooC := mkTool(t, c, "foo")

	res := execute(t, map[string]string{"PATH": a + ":" + b + ":" + c}, "where", "foo", "bar")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, []string{fooA, fooC}, lines(res.stdout))
	assert.Contains(t, res.stderr, "bar not found")
	assert.Equal(t, 1, strings.Count(res.stderr, "not found"))
}

func TestWhereCmd_PathFlag(t *testing.T) {
	a := t.TempDir()
	foo := mkTool(t, a, "foo")

	res := execute(t, nil, "where", "--path", a, "/usr/local/bin/foo")
	assert.Equal(t, []string{foo}, lines(res.stdout))
}

func TestWhereCmd_RequiresName(t *testing.T) {
	res := execute(t, map[string]string{"PATH": "/"}, "where")
	assert.Equal(t, 1, res.code)
}

func TestValidateCmd(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	t.Run("clean", func(t *testing.T) {
		res := execute(t, map[string]string{"PATH": a + ":" + b}, "validate")
		assert.Equal(t, 0, res.code)
		assert.Empty(t, res.stdout)
	})

	t.Run("empty segment", func(t *testing.T) {
		res := execute(t, map[string]string{"PATH": a + "::" + b}, "validate")
		assert.Equal(t, []string{"entry 2 is empty, so the shell will also search the current working directory"}, lines(res.stdout))
	})

	t.Run("duplicate", func(t *testing.T) {
		res := execute(t, nil, "validate", "--path", a+":"+a)
		assert.Equal(t, []string{a + " is duplicated"}, lines(res.stdout))
	})

	t.Run("rejects arguments", func(t *testing.T) {
		res := execute(t, map[string]string{"PATH": a}, "validate", "extra")
		assert.Equal(t, 1, res.code)
	})
}

func TestConfigFromEnvironment(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	mkTool(t, a, "tool")
	mkTool(t, b, "tool")
	t.Setenv("PATHSHADOW_DELIMITER", " -> ")

	res := execute(t, nil, "shadows", a+":"+b)
	assert.Equal(t, []string{filepath.Join(a, "tool") + " -> " + filepath.Join(b, "tool")}, lines(res.stdout))
}

func TestBrowseCmd_NeedsTerminal(t *testing.T) {
	res := execute(t, map[string]string{"PATH": "/"}, "browse")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "needs a terminal")
}

func TestVersionCmd(t *testing.T) {
	res := execute(t, nil, "version")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "pathshadow version")

	res = execute(t, nil, "version", "--format=json")
	assert.Contains(t, res.stdout, `"goVersion"`)
}

func TestReleaseTagFollowsBuildSettings(t *testing.T) {
	owner, repo := model.ReleaseOwner, model.ReleaseRepository
	t.Cleanup(func() { model.ReleaseOwner, model.ReleaseRepository = owner, repo })
	model.ReleaseOwner, model.ReleaseRepository = "acme", "pathtools"

	tag := releaseTag()
	assert.Equal(t, "acme", tag.Owner)
	assert.Equal(t, "pathtools", tag.Repository)
}
