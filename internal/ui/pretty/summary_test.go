package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gozhlint/internal/ui/pretty"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   10,
		FilesWithIssues:  3,
		IssuesTotal:      15,
		IssuesBySeverity: map[string]int{"error": 5, "warning": 10},
		LinesScanned:     420,
		LinesSkipped:     12,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:     10")
	assert.Contains(t, result, "Files with issues: 3")
	assert.Contains(t, result, "Lines scanned:     420")
	assert.Contains(t, result, "Lines skipped:     12")
	assert.Contains(t, result, "Total issues:      15")
	assert.Contains(t, result, "Errors:          5")
	assert.Contains(t, result, "Warnings:        10")
	assert.Contains(t, result, "Lint failed with errors")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 5, IssuesBySeverity: map[string]int{}})

	assert.Contains(t, result, "Lint passed")
	assert.NotContains(t, result, "Files with issues:")
	assert.NotContains(t, result, "Lines skipped:")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   2,
		FilesWithIssues:  1,
		IssuesTotal:      4,
		IssuesBySeverity: map[string]int{"warning": 4},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Lint completed with warnings")
	assert.NotContains(t, result, "Errors:")
}

func TestFormatSummary_FailedFiles(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 1, FilesErrored: 2})

	assert.Contains(t, result, "Files failed:      2")
	assert.Contains(t, result, "Lint failed to read some files")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "no issues",
			stats: runner.Stats{FilesProcessed: 3},
			want:  "No issues found (3 files checked)\n",
		},
		{
			name:  "no issues single file",
			stats: runner.Stats{FilesProcessed: 1},
			want:  "No issues found (1 file checked)\n",
		},
		{
			name: "single issue",
			stats: runner.Stats{
				FilesProcessed:   1,
				FilesWithIssues:  1,
				IssuesTotal:      1,
				IssuesBySeverity: map[string]int{"warning": 1},
			},
			want: "1 issue (1 warning) in 1 file\n",
		},
		{
			name: "mixed severities",
			stats: runner.Stats{
				FilesProcessed:   4,
				FilesWithIssues:  2,
				IssuesTotal:      7,
				IssuesBySeverity: map[string]int{"error": 2, "warning": 4, "info": 1},
			},
			want: "7 issues (2 errors, 4 warnings, 1 info) in 2 files\n",
		},
		{
			name: "failed files",
			stats: runner.Stats{
				FilesProcessed: 2,
				FilesErrored:   1,
			},
			want: "No issues found (2 files checked), 1 file failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
