// Package contrib tallies translation-project contributions from the
// "key: value" metadata written at the top of Markdown sources.
//
// Each document credits at most one GitHub ID per role: the collector,
// translator, proofreader and publisher named in its metadata.
package contrib

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/gozhlint/pkg/fsutil"
)

// DefaultRoot is the directory scanned when no root is given.
const DefaultRoot = "sources"

// Metadata keys that credit a contributor.
const (
	KeyCollector   = "collector"
	KeyTranslator  = "translator"
	KeyProofreader = "proofreader"
	KeyPublisher   = "publisher"
)

// metadataPattern matches "key: value" pairs anywhere in a document. Keys are
// Unicode word characters; values run to the next whitespace.
var metadataPattern = regexp.MustCompile(
	`([\p{L}\p{N}_]+):[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]*([^\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]+)`,
)

// Contribution is the number of documents a contributor worked on, per role.
type Contribution struct {
	GitHubID  string `json:"github_id"`
	Collect   int    `json:"collect"`
	Translate int    `json:"translate"`
	Proofread int    `json:"proofread"`
	Publish   int    `json:"publish"`
}

// Tally accumulates contributions in the order contributors are first seen.
type Tally struct {
	order []string
	byID  map[string]*Contribution
	files int
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{byID: make(map[string]*Contribution)}
}

// ParseMetadata returns every key/value pair in content. When a key occurs
// more than once the last value wins.
func ParseMetadata(content string) map[string]string {
	pairs := make(map[string]string)
	for _, m := range metadataPattern.FindAllStringSubmatch(content, -1) {
		pairs[m[1]] = m[2]
	}
	return pairs
}

// AddDocument credits the contributors named in one document's metadata.
// Roles are applied in the order collector, translator, proofreader, publisher.
func (t *Tally) AddDocument(content string) {
	t.files++
	meta := ParseMetadata(content)

	if id, ok := meta[KeyCollector]; ok {
		t.get(id).Collect++
	}
	if id, ok := meta[KeyTranslator]; ok {
		t.get(id).Translate++
	}
	if id, ok := meta[KeyProofreader]; ok {
		t.get(id).Proofread++
	}
	if id, ok := meta[KeyPublisher]; ok {
		t.get(id).Publish++
	}
}

func (t *Tally) get(id string) *Contribution {
	c, ok := t.byID[id]
	if !ok {
		c = &Contribution{GitHubID: id}
		t.byID[id] = c
		t.order = append(t.order, id)
	}
	return c
}

// Contributors returns a copy of every contribution in first-seen order.
func (t *Tally) Contributors() []Contribution {
	out := make([]Contribution, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.byID[id])
	}
	return out
}

// Files returns the number of documents added.
func (t *Tally) Files() int {
	return t.files
}

// Collect walks root and tallies every file whose name ends in ".md".
// Files are visited in lexical path order so the contributor order is
// stable across runs.
func Collect(ctx context.Context, root string) (*Tally, error) {
	if root == "" {
		root = DefaultRoot
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", fsutil.ErrNotFound, root)
		}
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	slices.Sort(paths)

	tally := NewTally()
	for _, path := range paths {
		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("tally %s: %w", path, err)
		}
		tally.AddDocument(string(content))
	}

	return tally, nil
}
