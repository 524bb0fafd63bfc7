// Package localsearch improves a constructed solution.Solution in place via
// 1-adds, 1-1 swaps, and budget-gated 2-1 swaps, using the solution's
// incrementally maintained conflict counts.
//
// Budget semantics: Run always starts with one 1-adds pass; 0 allows no
// swaps (colony skips local search entirely at 0). 1 enables 1-adds and
// 1-1 swaps. >=2 additionally allows up to (budget-1) 2-1 swaps, each of
// which spends one unit of budget and is unconditionally followed by a
// fresh 1-adds pass before the outer loop restarts.
package localsearch
