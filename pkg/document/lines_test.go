package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gozhlint/pkg/document"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []document.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []document.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "lone CR",
			content: "a\rb",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 3, EndOffset: 3},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, document.BuildLines([]byte(tc.content)))
		})
	}
}

func TestNew_LinesAreNumberedAndStripped(t *testing.T) {
	t.Parallel()

	doc := document.New("test.md", []byte("操作系统Linux\r\n第二行\n"))

	assert.Equal(t, 2, doc.LineCount())
	assert.Len(t, doc.Lines, 2)
	assert.Equal(t, document.Line{Number: 1, Content: "操作系统Linux"}, doc.Lines[0])
	assert.Equal(t, document.Line{Number: 2, Content: "第二行"}, doc.Lines[1])
	assert.Equal(t, "", doc.LineContent(3))
	assert.Equal(t, "", doc.LineContent(4))
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	doc := document.New("test.md", []byte("ab\ncd\n"))

	assert.Equal(t, 1, doc.LineAt(0))
	assert.Equal(t, 1, doc.LineAt(2))
	assert.Equal(t, 2, doc.LineAt(3))
	assert.Equal(t, 3, doc.LineAt(6))
	assert.Equal(t, 0, doc.LineAt(-1))
	assert.Equal(t, 0, doc.LineAt(7))
}

func TestRuneOffset(t *testing.T) {
	t.Parallel()

	line := "操作系统Linux"
	assert.Equal(t, 0, document.RuneOffset(line, 0))
	assert.Equal(t, 4, document.RuneOffset(line, len("操作系统")))
	assert.Equal(t, 9, document.RuneOffset(line, len(line)+10))
}

func TestFromStrings(t *testing.T) {
	t.Parallel()

	lines := document.FromStrings("a", "b")
	assert.Equal(t, []document.Line{{Number: 1, Content: "a"}, {Number: 2, Content: "b"}}, lines)
}
