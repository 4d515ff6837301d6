package lint

import "context"

// RegionFinder reports which lines of a Markdown document are not prose.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g., parser/goldmark) decide what counts as non-prose;
// the engine only skips the returned line numbers.
//
// Implementations must be deterministic and safe for concurrent use.
type RegionFinder interface {
	// SkipLines returns the set of 1-based line numbers to leave unscanned.
	SkipLines(ctx context.Context, content []byte) (map[int]bool, error)
}
