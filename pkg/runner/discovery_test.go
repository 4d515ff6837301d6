package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gozhlint/pkg/lint"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":         "x",
		"docs/guide.md":     "x",
		"docs/api.markdown": "x",
		"src/main.go":       "x",
		"notes.txt":         "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/api.markdown", "docs/guide.md", "readme.md"}, relAll(t, dir, files))
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"test.md": "x"})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_ExplicitFileAnyExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"draft.txt": "x"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"draft.txt"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "draft.txt")}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"nope.md"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrFileNotFound)
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"file.md":       "x",
		"file.markdown": "x",
		"file.txt":      "x",
		"file.mdx":      "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".mdx", ".txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"file.mdx", "file.txt"}, relAll(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":           "x",
		"drafts/wip.md":       "x",
		"docs/CHANGELOG.md":   "x",
		"docs/guide/intro.md": "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"drafts/**", "CHANGELOG.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide/intro.md", "readme.md"}, relAll(t, dir, files))
}

func TestDiscover_SkipVendored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":                  "x",
		"node_modules/pkg/README.md": "x",
		"vendor/lib/README.md":       "x",
	})

	all, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		SkipVendored: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.md"}, relAll(t, dir, filtered))
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":       "x",
		".hidden.md":      "x",
		".git/config.md":  "x",
		"docs/.secret.md": "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.md"}, relAll(t, dir, files))
}

func TestDiscover_DeduplicationAndOrdering(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"z.md":     "x",
		"a.md":     "x",
		"sub/m.md": "x",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"z.md", ".", "sub", "a.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "sub/m.md", "z.md"}, relAll(t, dir, files))
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}
