package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gozhlint/internal/cli"
)

// runCLI executes the root command with args and returns stdout and the error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

// writeFile creates a file under dir, making parent directories as needed.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// emptyConfig writes a config file that pins the defaults, so a config found
// above the test's working directory cannot change the outcome.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), ".gozhlint.yml", "locale: en\n")
}

func TestIntegration_LintSingleDocument(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "测试test\n")

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), mdFile)
	require.NoError(t, err, "issues alone do not fail a run")

	want := `{
    "spacing required between Chinese and Latin text": {
        "line 1, column 2": "试t"
    }
}
`
	assert.Equal(t, want, out)
}

func TestIntegration_LintChineseLocale(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "共有3个\n")

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), "--locale", "zh", mdFile)
	require.NoError(t, err)

	want := `{
    "中文与数字之间需要空格": {
        "行 1，列 2": "有3"
    }
}
`
	assert.Equal(t, want, out)
}

func TestIntegration_LintCleanDocument(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "中文 English 混排。\n")

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "document conforms, no issues found\n"},
		{"zh", "文档符合规范，没有发现问题。\n"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()

			out, err := runCLI(t, "lint", "--config", emptyConfig(t), "--locale", tt.locale, "--strict", mdFile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestIntegration_LintDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "测试test\n")
	writeFile(t, dir, "docs/b.markdown", "数字1个\n")
	writeFile(t, dir, "docs/clean.md", "干净的一行\n")
	writeFile(t, dir, "notes.txt", "测试test\n")

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), dir)
	require.NoError(t, err)

	var reports map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &reports))

	require.Len(t, reports, 2, "clean and non-Markdown files are not reported")
	for path, report := range reports {
		switch filepath.Base(path) {
		case "a.md":
			assert.Equal(t, map[string]string{"line 1, column 2": "试t"},
				report["spacing required between Chinese and Latin text"])
		case "b.markdown":
			assert.Equal(t, map[string]string{"line 1, column 2": "字1"},
				report["spacing required between Chinese text and digits"])
		default:
			t.Errorf("unexpected document %q in report", path)
		}
	}
}

func TestIntegration_StrictMode(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "测试test\n")

	_, err := runCLI(t, "lint", "--config", emptyConfig(t), "--strict", mdFile)
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestIntegration_UnreadableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.md", "测试test\n")
	bad := writeFile(t, dir, "bad.md", "\xff\xfe\xfd")

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), good, bad)
	require.ErrorIs(t, err, cli.ErrFilesFailed)
	assert.Contains(t, out, "试t", "readable files are still reported")
	assert.NotContains(t, out, "bad.md")
}

func TestIntegration_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "lint", "--config", emptyConfig(t), filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestIntegration_ConfigWithRuleNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mdFile := writeFile(t, dir, "doc.md", "测试test\n")
	cfgFile := writeFile(t, dir, "custom.yml", `
rules:
  zh-latin-spacing:
    enabled: false
`)

	out, err := runCLI(t, "lint", "--config", cfgFile, mdFile)
	require.NoError(t, err)
	assert.Equal(t, "document conforms, no issues found\n", out)
}

func TestIntegration_DisableFlag(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "测试test，共有3个\n")

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), "--disable", "ZH001", mdFile)
	require.NoError(t, err)
	assert.NotContains(t, out, "Latin")
	assert.Contains(t, out, "spacing required between Chinese text and digits")
}

func TestIntegration_IgnoreCodeBlocks(t *testing.T) {
	t.Parallel()

	content := "正文\n\n```go\nfmt.Println(\"测试test\")\n```\n"
	mdFile := writeFile(t, t.TempDir(), "doc.md", content)

	out, err := runCLI(t, "lint", "--config", emptyConfig(t), mdFile)
	require.NoError(t, err)
	assert.Contains(t, out, "line 4", "code is scanned by default")

	out, err = runCLI(t, "lint", "--config", emptyConfig(t), "--ignore-code-blocks", mdFile)
	require.NoError(t, err)
	assert.Equal(t, "document conforms, no issues found\n", out)
}

func TestIntegration_TextFormat(t *testing.T) {
	t.Parallel()

	mdFile := writeFile(t, t.TempDir(), "doc.md", "测试test\n")

	tests := []struct {
		name           string
		ruleFormat     string
		wantContains   string
		wantNotContain string
	}{
		{"name", "name", "(zh-latin-spacing)", "ZH001"},
		{"id", "id", "(ZH001)", "zh-latin-spacing"},
		{"combined", "combined", "(ZH001/zh-latin-spacing)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := runCLI(t, "lint",
				"--config", emptyConfig(t),
				"--format", "text",
				"--color", "never",
				"--no-context",
				"--rule-format", tt.ruleFormat,
				mdFile,
			)
			require.NoError(t, err)

			assert.Contains(t, out, ":1:2")
			assert.Contains(t, out, tt.wantContains)
			if tt.wantNotContain != "" {
				assert.NotContains(t, out, tt.wantNotContain)
			}
			assert.Contains(t, out, "1 issue")
		})
	}
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgFile := writeFile(t, t.TempDir(), "bad.yml", "locale: fr\n")
	mdFile := writeFile(t, t.TempDir(), "doc.md", "中文\n")

	_, err := runCLI(t, "lint", "--config", cfgFile, mdFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locale")
}

func TestIntegration_RulesText(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "rules", "--color", "never")
	require.NoError(t, err)

	for _, want := range []string{"ZH001", "ZH002", "ZH101", "ZH102", "ZH103", "zh-latin-spacing", "spacing", "punctuation"} {
		assert.Contains(t, out, want)
	}
}

func TestIntegration_RulesJSON(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "rules", "--format", "json", "--locale", "zh")
	require.NoError(t, err)

	var rules []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Family string `json:"family"`
		Label  string `json:"label"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 5)

	byID := make(map[string]string, len(rules))
	for _, r := range rules {
		byID[r.ID] = r.Label
	}
	assert.Equal(t, "中英文之间需要空格", byID["ZH001"])
	assert.Equal(t, "英文整句应使用半角标点", byID["ZH103"])
}

func TestIntegration_RulesInvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "rules", "--format", "yaml")
	require.Error(t, err)
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gozhlint.yml")

	_, err := runCLI(t, "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "locale: en")

	_, err = runCLI(t, "init", "--output", path)
	require.Error(t, err, "existing file without --force and no terminal")
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "init", "--output", path, "--force", "--full")
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ZH103:")
}

func TestIntegration_InitConfigIsLoadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "full.yml")
	mdFile := writeFile(t, dir, "doc.md", "测试test\n")

	_, err := runCLI(t, "init", "--output", cfgFile, "--full")
	require.NoError(t, err)

	out, err := runCLI(t, "lint", "--config", cfgFile, mdFile)
	require.NoError(t, err)
	assert.Contains(t, out, "试t")
}

func TestIntegration_Contrib(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a/one.md", "collector: alice\ntranslator: bob\n")
	writeFile(t, root, "b/two.md", "translator: bob\nproofreader: carol\npublisher: alice\n")
	writeFile(t, root, "b/skip.txt", "translator: dave\n")

	out, err := runCLI(t, "contrib", root)
	require.NoError(t, err)

	want := strings.Join([]string{
		"GitHub ID       Collect  Translate  Proofread  Publish ",
		strings.Repeat("-", 55),
		"alice           1        0          0          1       ",
		"bob             0        2          0          0       ",
		"carol           0        0          1          0       ",
	}, "\n") + "\n"
	assert.Equal(t, want, out)

	out, err = runCLI(t, "contrib", "--format", "json", root)
	require.NoError(t, err)

	var contributions []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &contributions))
	require.Len(t, contributions, 3)
	assert.Equal(t, "alice", contributions[0]["github_id"])
}

func TestIntegration_ContribMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "contrib", filepath.Join(t.TempDir(), "sources"))
	require.Error(t, err)
}
