// Package document provides the line-oriented view of a Markdown file that the
// lint engine scans. Lines are plain text: no Markdown structure is implied.
package document

// Document is an immutable view of a file's content split into lines.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines holds the text of every line, numbered from 1. A trailing line
	// terminator does not produce an extra empty line.
	Lines []Line

	// index holds the byte layout of every line in Content.
	index []LineInfo
}

// Line is a single 1-indexed line of text without its terminator.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Content is the line text, excluding "\n", "\r\n" or "\r".
	Content string
}

// LineInfo holds byte offsets for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// New creates a Document from content, building the line index.
func New(path string, content []byte) *Document {
	index := BuildLines(content)

	// A terminated last line does not start another line of text.
	count := len(index)
	if count > 1 && index[count-1].StartOffset == len(content) {
		count--
	}

	lines := make([]Line, count)
	for i, info := range index[:count] {
		lines[i] = Line{
			Number:  i + 1,
			Content: string(content[info.StartOffset:info.NewlineStart]),
		}
	}

	return &Document{
		Path:    path,
		Content: content,
		Lines:   lines,
		index:   index,
	}
}

// FromStrings builds Lines numbered from 1 for the given texts.
func FromStrings(texts ...string) []Line {
	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = Line{Number: i + 1, Content: text}
	}
	return lines
}
