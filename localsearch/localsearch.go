package localsearch

import "github.com/gopheraco/mmas-misp/solution"

// try1Adds scans vertices in ascending index order and adds every vertex
// whose conflict count is currently 0. Returns the number added.
// Complexity: O(n)
func try1Adds(sol *solution.Solution, n int) int {
	added := 0
	for v := 0; v < n; v++ {
		if sol.Conflict(v) == 0 {
			_ = sol.Add(v) // conflict==0 guarantees this succeeds
			added++
		}
	}
	return added
}

// Run improves sol in place with the given budget and returns the total
// number of vertices added across the whole run (by try1Adds calls and
// accepted swaps).
//
// The initial try1Adds pass runs whatever the budget; budget == 0 allows no
// swaps, so Run then only adds vertices whose conflict count is 0.
// colony.Run does not call Run at all when its budget is 0.
//
// Complexity: each outer-loop pass is O(n) for the 1-1 scan plus O(n) for
// try1Adds; the number of passes is bounded by the initial budget since
// every 2-1 swap spends one unit and 1-1 swaps always strictly shrink the
// remaining search (each accepted move either adds a vertex or is
// immediately followed by an add phase that does).
func Run(sol *solution.Solution, n int, budget int) int {
	total := try1Adds(sol, n)

	for budget > 0 {
		if added, ok := accept1to1Swap(sol, n); ok {
			total += 1 + added // the swapped-in vertex plus the follow-up adds
			continue
		}

		if budget > 1 {
			v, ok := find2Conflict(sol, n)
			if !ok {
				break
			}
			neighbors := sol.MemberNeighbors(v, 2)
			_ = sol.Remove(neighbors[0])
			_ = sol.Remove(neighbors[1])
			_ = sol.Add(v)
			total++
			budget--

			total += try1Adds(sol, n)
			continue
		}

		break
	}

	return total
}

// accept1to1Swap scans ascending vertex index for a vertex with exactly one
// in-solution neighbor, tentatively swaps it in, and accepts the swap if a
// subsequent try1Adds strictly improves the solution; otherwise it reverts
// and continues scanning. Returns true iff a swap was accepted.
func accept1to1Swap(sol *solution.Solution, n int) (int, bool) {
	for v := 0; v < n; v++ {
		if sol.Conflict(v) != 1 {
			continue
		}

		u, ok := sol.MemberNeighbor(v)
		if !ok {
			continue // inconsistent conflict count; skip defensively
		}

		_ = sol.Remove(u)
		_ = sol.Add(v)

		if added := try1Adds(sol, n); added > 0 {
			return added, true
		}

		_ = sol.Remove(v)
		_ = sol.Add(u)
	}
	return 0, false
}

// find2Conflict returns the first vertex (ascending) with exactly two
// in-solution neighbors.
func find2Conflict(sol *solution.Solution, n int) (int, bool) {
	for v := 0; v < n; v++ {
		if sol.Conflict(v) == 2 {
			return v, true
		}
	}
	return -1, false
}
