package solution

import "errors"

// ErrNotAddable indicates Add was called on a vertex with a non-zero
// conflict count (it has a neighbor already in the solution, or it is
// already a member).
var ErrNotAddable = errors.New("solution: vertex has a conflicting neighbor or is already a member")

// ErrNotMember indicates Remove was called on a vertex that is not
// currently a member.
var ErrNotMember = errors.New("solution: vertex is not a member")

// ErrVertexOutOfRange indicates a vertex index outside [0, n) was supplied.
var ErrVertexOutOfRange = errors.New("solution: vertex index out of range")
