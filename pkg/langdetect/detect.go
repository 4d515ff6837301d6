// Package langdetect classifies discovered paths using go-enry, the Go port
// of GitHub's linguist. It decides which files are Markdown and which live
// in vendored directories.
package langdetect

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// markdownLanguage is linguist's name for Markdown.
const markdownLanguage = "Markdown"

// MarkdownExtensions returns the file extensions linguist assigns to
// Markdown, lowercased and with a leading dot.
func MarkdownExtensions() []string {
	exts := enry.GetLanguageExtensions(markdownLanguage)
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		out = append(out, strings.ToLower(ext))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// IsMarkdown reports whether path names a Markdown file.
//
// With no extensions, any extension linguist lists for Markdown matches,
// including ambiguous ones such as ".md". Otherwise the extension must be one
// of extensions (compared case-insensitively, leading dot optional).
func IsMarkdown(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}

	if len(extensions) > 0 {
		for _, want := range extensions {
			want = strings.ToLower(want)
			if !strings.HasPrefix(want, ".") {
				want = "." + want
			}
			if ext == want {
				return true
			}
		}
		return false
	}

	return slices.Contains(enry.GetLanguagesByExtension(path, nil, nil), markdownLanguage)
}

// IsVendored reports whether path lies in a vendored or third-party
// directory (node_modules/, vendor/, ...).
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// Language returns linguist's best guess at the language of path from its
// name alone, or "" when unknown.
func Language(path string) string {
	candidates := enry.GetLanguagesByFilename(path, nil, nil)
	if len(candidates) == 0 {
		candidates = enry.GetLanguagesByExtension(path, nil, nil)
	}
	if slices.Contains(candidates, markdownLanguage) {
		return markdownLanguage
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
