// Package goldmark finds the non-prose regions of a Markdown document
// (code blocks and raw HTML blocks) using the goldmark parser.
package goldmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gozhlint/pkg/document"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// RegionFinder implements lint.RegionFinder using goldmark.
type RegionFinder struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a region finder for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *RegionFinder {
	f := flavorOrDefault(flavor)
	return &RegionFinder{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (f *RegionFinder) Flavor() string {
	return f.flavor
}

// SkipLines returns the 1-based numbers of every line that belongs to a
// fenced code block (fences included), an indented code block, or a raw
// HTML block.
func (f *RegionFinder) SkipLines(ctx context.Context, content []byte) (skip map[int]bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			skip = nil
			err = fmt.Errorf("goldmark panic: %v", r)
		}
	}()

	doc := document.New("", content)
	root := f.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	skip = make(map[int]bool)
	walkErr := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.FencedCodeBlock:
			markFenced(doc, n, skip)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			markSegments(doc, n.Lines(), skip)
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			markSegments(doc, n.Lines(), skip)
			if n.HasClosure() {
				markOffset(doc, n.ClosureLine.Start, skip)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk: %w", walkErr)
	}

	return skip, nil
}

// markFenced marks a fenced block's content lines and the fence lines
// around them. An empty block has no content segments to anchor on and
// contributes nothing.
func markFenced(doc *document.Document, block *ast.FencedCodeBlock, skip map[int]bool) {
	lines := block.Lines()
	if lines.Len() == 0 {
		return
	}
	markSegments(doc, lines, skip)

	first := doc.LineAt(lines.At(0).Start)
	last := doc.LineAt(lines.At(lines.Len() - 1).Start)

	if first > 1 {
		skip[first-1] = true
	}
	if isFence(doc.LineContent(last + 1)) {
		skip[last+1] = true
	}
}

func markSegments(doc *document.Document, lines *text.Segments, skip map[int]bool) {
	for i := range lines.Len() {
		markOffset(doc, lines.At(i).Start, skip)
	}
}

func markOffset(doc *document.Document, offset int, skip map[int]bool) {
	if line := doc.LineAt(offset); line > 0 {
		skip[line] = true
	}
}

// isFence reports whether line is a closing code fence.
func isFence(line string) bool {
	trimmed := strings.TrimLeft(line, " >")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
