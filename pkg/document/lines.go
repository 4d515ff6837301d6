package document

import "sort"

// BuildLines constructs line metadata from file content.
// It treats LF, CRLF and a lone CR as line terminators.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		switch content[idx] {
		case '\n':
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: idx,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		case '\r':
			end := idx + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: idx,
				EndOffset:    end,
			})
			lineStart = end
			idx = end - 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineAt converts a byte offset to a 1-based line number.
// Returns 0 if the offset is out of range.
func (d *Document) LineAt(offset int) int {
	if offset < 0 || len(d.index) == 0 || offset > len(d.Content) {
		return 0
	}

	if offset == len(d.Content) {
		return len(d.index)
	}

	lineIdx := sort.Search(len(d.index), func(i int) bool {
		return d.index[i].EndOffset > offset
	})
	if lineIdx >= len(d.index) {
		lineIdx = len(d.index) - 1
	}

	if offset < d.index[lineIdx].StartOffset {
		return 0
	}
	return lineIdx + 1
}

// LineContent returns the text of a 1-based line number, excluding the newline.
// Returns "" if the line number is out of range.
func (d *Document) LineContent(line int) string {
	if line < 1 || line > len(d.Lines) {
		return ""
	}
	return d.Lines[line-1].Content
}
