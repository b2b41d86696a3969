package validate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"pathshadow/internal/model"
)

func messages(issues []model.Issue) []string {
	var out []string
	for _, is := range issues {
		out = append(out, Message(is))
	}
	return out
}

func TestValidate(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	require.NoError(t, os.Mkdir(a, 0755))
	require.NoError(t, os.Mkdir(b, 0755))
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	missing := filepath.Join(root, "missing")

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "clean path",
			raw:  a + ":" + b,
		},
		{
			name: "empty middle segment",
			raw:  a + "::" + b,
			want: []string{"entry 2 is empty, so the shell will also search the current working directory"},
		},
		{
			name: "trailing separator",
			raw:  a + ":",
			want: []string{"entry 2 is empty, so the shell will also search the current working directory"},
		},
		{
			name: "duplicate",
			raw:  a + ":" + a,
			want: []string{a + " is duplicated"},
		},
		{
			name: "duplicate reported once per repeat",
			raw:  a + ":" + a + ":" + b + ":" + a,
			want: []string{a + " is duplicated", a + " is duplicated"},
		},
		{
			name: "relative",
			raw:  "bin:" + a,
			want: []string{"bin is not absolute"},
		},
		{
			name: "missing",
			raw:  missing,
			want: []string{missing + " does not exist"},
		},
		{
			name: "not a directory",
			raw:  file,
			want: []string{file + " is not a directory"},
		},
		{
			name: "duplicate beats other checks",
			raw:  "bin:bin",
			want: []string{"bin is not absolute", "bin is duplicated"},
		},
		{
			name: "empty repeated is still empty",
			raw:  "::",
			want: []string{
				"entry 1 is empty, so the shell will also search the current working directory",
				"entry 2 is empty, so the shell will also search the current working directory",
				"entry 3 is empty, so the shell will also search the current working directory",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messages(New(nil).Validate(tt.raw)))
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	issues := New(nil).Validate("/a::rel")
	require.Len(t, issues, 3)
	assert.Equal(t, model.Issue{Index: 1, Entry: "", Kind: model.IssueEmpty}, issues[1])
	assert.Equal(t, model.IssueNotAbsolute, issues[2].Kind)
	assert.Equal(t, 2, issues[2].Index)
}

func TestValidate_StatFailure(t *testing.T) {
	stat := func(string) (fs.FileInfo, error) { return nil, errors.New("permission denied") }
	issues := New(stat).Validate("/locked")
	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueUninspectable, issues[0].Kind)
	assert.Equal(t, "/locked cannot be inspected: permission denied", Message(issues[0]))
}

func TestValidate_CleanPathIsSilent(t *testing.T) {
	root := t.TempDir()
	var dirs []string
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		d := filepath.Join(root, n)
		require.NoError(t, os.Mkdir(d, 0755))
		dirs = append(dirs, d)
	}

	rapid.Check(t, func(t *rapid.T) {
		picked := rapid.SliceOfNDistinct(rapid.SampledFrom(dirs), 1, len(dirs), rapid.ID[string]).Draw(t, "dirs")
		if issues := New(nil).Validate(strings.Join(picked, ":")); len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
	})
}
