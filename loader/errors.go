package loader

import "errors"

// ErrMalformedHeader indicates a DIMACS file with no "p edge N M" line, a
// second "p" line, or a "p" line that is not "p edge" followed by a
// non-negative integer vertex count.
var ErrMalformedHeader = errors.New("loader: malformed or missing DIMACS header")

// ErrMalformedEdge indicates an "e u v" line that comes before the header,
// has missing or non-integer endpoints, or has an endpoint outside [1, N].
var ErrMalformedEdge = errors.New("loader: malformed edge line")

// ErrEmptyDirectory indicates Discover found no regular files under root.
var ErrEmptyDirectory = errors.New("loader: no files found in directory")
