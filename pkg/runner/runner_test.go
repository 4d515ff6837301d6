package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
	"github.com/yaklabco/gozhlint/pkg/lint/rules"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

func newRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	engine := lint.NewEngine(registry)
	engine.Cache = lint.NewMemoryLineCache(time.Minute, time.Minute)
	return runner.New(engine)
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasErrors())
	assert.NoError(t, result.Err())
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"clean.md":    "完全正常的中文句子。\n",
		"latin.md":    "操作系统Linux内核\n",
		"docs/num.md": "共有3个\n这是 ，一个测试\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       2,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "clean.md", result.Files[0].DisplayPath)
	assert.Equal(t, filepath.Join("docs", "num.md"), result.Files[1].DisplayPath)
	assert.Equal(t, "latin.md", result.Files[2].DisplayPath)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesWithIssues)
	assert.Equal(t, 4, result.Stats.IssuesTotal)
	assert.Equal(t, 4, result.Stats.IssuesBySeverity["warning"])
	assert.Equal(t, 4, result.Stats.LinesScanned)
	assert.True(t, result.HasIssues())
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[name+".md"] = "操作系统Linux内核\n第" + name + "章Go语言\n"
	}
	writeTree(t, dir, files)

	run := func(jobs int) []lint.Issue {
		result, err := newRunner().Run(context.Background(), runner.Options{
			Paths:      []string{"."},
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)

		var issues []lint.Issue
		for _, outcome := range result.Files {
			issues = append(issues, outcome.Result.Report.Issues()...)
		}
		return issues
	}

	assert.Equal(t, run(1), run(8))
}

func TestRunner_Run_InvalidEncoding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"good.md": "Go语言\n"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte{0xd6, 0xd0, 0xce, 0xc4}, 0o644))

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.ErrorIs(t, result.Err(), lint.ErrInvalidEncoding)
	assert.Nil(t, result.Files[0].Result)
}

func TestRunner_Run_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"missing.md"},
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	assert.ErrorIs(t, err, lint.ErrFileNotFound)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": "x\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Extensions = []string{".txt"}
	cfg.Ignore = []string{"drafts/**"}
	cfg.SkipVendored = true
	cfg.Jobs = 3

	opts := runner.OptionsFromConfig(cfg, []string{"docs"})
	assert.Equal(t, []string{"docs"}, opts.Paths)
	assert.Equal(t, []string{".txt"}, opts.Extensions)
	assert.Equal(t, []string{"drafts/**"}, opts.ExcludeGlobs)
	assert.True(t, opts.SkipVendored)
	assert.Equal(t, 3, opts.Jobs)
	assert.Same(t, cfg, opts.Config)
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasIssues())
	assert.False(t, result.HasErrors())
	assert.NoError(t, result.Err())
}
