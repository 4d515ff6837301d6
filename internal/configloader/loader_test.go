package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gozhlint/pkg/config"
	_ "github.com/yaklabco/gozhlint/pkg/lint/rules" // Register rules
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir()))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.LocaleEnglish, result.Config.Locale)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, "warning", result.Config.SeverityDefault)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// jobs is CLI-only (yaml:"-") and is not read from files.
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), `
locale: zh
ignore_code_blocks: true
rules:
  ZH103:
    enabled: false
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, config.LocaleChinese, result.Config.Locale)
	assert.True(t, result.Config.IgnoreCodeBlocks)

	zh103, ok := result.Config.Rules["ZH103"]
	require.True(t, ok, "ZH103 rule not found in config")
	require.NotNil(t, zh103.Enabled)
	assert.False(t, *zh103.Enabled)

	assert.Len(t, result.LoadedFrom, 1)
}

func TestLoad_ProjectConfigSearchedUpward(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, filepath.Join(root, ".gozhlint.yaml"), "locale: zh\n")

	nested := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), isolated(nested))
	require.NoError(t, err)
	assert.Equal(t, config.LocaleChinese, result.Config.Locale)
	assert.Equal(t, filepath.Join(root, ".gozhlint.yaml"), result.Paths.Project)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), "locale: en\n")

	customPath := filepath.Join(tmpDir, "custom-config.yml")
	writeConfig(t, customPath, `
locale: zh
severity_default: error
`)

	opts := isolated(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LocaleChinese, result.Config.Locale)
	assert.Equal(t, "error", result.Config.SeverityDefault)
	assert.Equal(t, []string{filepath.Join(tmpDir, ProjectConfigName), customPath}, result.LoadedFrom)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), "locale: zh\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{
		Locale:       config.LocaleEnglish,
		Jobs:         8,
		Strict:       true,
		DisableRules: []string{"english-halfwidth-punctuation"},
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LocaleEnglish, result.Config.Locale)
	assert.Equal(t, 8, result.Config.Jobs)
	assert.True(t, result.Config.Strict)
	assert.Equal(t, []string{"ZH103"}, result.Config.DisableRules)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad locale", "locale: fr\n", "locale"},
		{"bad severity", "severity_default: fatal\n", "severity_default"},
		{"bad rule severity", "rules:\n  ZH001:\n    severity: loud\n", "rules.ZH001.severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), tt.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ProjectConfigName)
	writeConfig(t, path, "locale: [unterminated\n")

	_, err := Load(context.Background(), isolated(tmpDir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GOZHLINT_LOCALE", "zh")
	t.Setenv("GOZHLINT_IGNORE", "drafts/**, archive/**")
	t.Setenv("GOZHLINT_SKIP_VENDORED", "true")

	opts := isolated(t.TempDir())
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LocaleChinese, result.Config.Locale)
	assert.Equal(t, []string{"drafts/**", "archive/**"}, result.Config.Ignore)
	assert.True(t, result.Config.SkipVendored)
}

func TestLoad_EnvironmentBadValue(t *testing.T) {
	t.Setenv("GOZHLINT_JOBS", "many")

	opts := isolated(t.TempDir())
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOZHLINT_JOBS")
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), `
rules:
  zh-latin-spacing:
    enabled: false
  fullwidth-parenthesis:
    enabled: true
    severity: error
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	_, hasID := result.Config.Rules["ZH001"]
	_, hasName := result.Config.Rules["zh-latin-spacing"]
	assert.True(t, hasID, "expected ZH001 after normalization")
	assert.False(t, hasName, "expected zh-latin-spacing to be replaced by its ID")

	zh102, ok := result.Config.Rules["ZH102"]
	require.True(t, ok)
	require.NotNil(t, zh102.Enabled)
	assert.True(t, *zh102.Enabled)
	require.NotNil(t, zh102.Severity)
	assert.Equal(t, "error", *zh102.Severity)
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), `
rules:
  ZH002:
    enabled: false
  zh-digit-spacing:
    enabled: true
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "ZH002") {
			foundWarning = true
			break
		}
	}
	assert.True(t, foundWarning, "expected duplicate warning, got %v", result.Warnings)

	// Which value wins depends on map iteration order.
	zh002, ok := result.Config.Rules["ZH002"]
	require.True(t, ok)
	assert.NotNil(t, zh002.Enabled)
}

func TestLoader_WarnsUnknownRuleAndBadGlob(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ProjectConfigName), `
ignore:
  - "[unclosed"
rules:
  MD009:
    enabled: false
`)

	result, err := Load(context.Background(), isolated(tmpDir))
	require.NoError(t, err)

	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, `unknown rule "MD009"`)
	assert.Contains(t, joined, "invalid glob pattern")
}

func TestMerge(t *testing.T) {
	t.Parallel()

	enabled := true
	disabled := false
	severity := "error"

	base := &config.Config{
		Locale: config.LocaleEnglish,
		Ignore: []string{"a/**"},
		Rules: map[string]config.RuleConfig{
			"ZH001": {Enabled: &enabled},
		},
	}
	override := &config.Config{
		Locale:       config.LocaleChinese,
		SkipVendored: true,
		Rules: map[string]config.RuleConfig{
			"ZH001": {Severity: &severity},
			"ZH002": {Enabled: &disabled},
		},
	}

	got := MergeAll(base, override)

	assert.Equal(t, config.LocaleChinese, got.Locale)
	assert.True(t, got.SkipVendored)
	assert.Equal(t, []string{"a/**"}, got.Ignore)
	require.NotNil(t, got.Rules["ZH001"].Enabled)
	assert.True(t, *got.Rules["ZH001"].Enabled)
	require.NotNil(t, got.Rules["ZH001"].Severity)
	assert.Equal(t, "error", *got.Rules["ZH001"].Severity)
	require.NotNil(t, got.Rules["ZH002"].Enabled)
	assert.False(t, *got.Rules["ZH002"].Enabled)

	assert.Nil(t, MergeAll())
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Contains(t, vars, "GOZHLINT_LOCALE")
	assert.Contains(t, vars, "GOZHLINT_IGNORE_CODE_BLOCKS")
	assert.Equal(t, "GOZHLINT_SKIP_VENDORED", GetEnvVarName("skip_vendored"))
	assert.Empty(t, GetEnvVarName("flavor"))
}
