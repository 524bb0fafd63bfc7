package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gopheraco/mmas-misp/graph"
)

// LoadDIMACS reads a DIMACS clique-benchmark (.clq) file and returns the
// graph it describes.
//
// Recognized lines:
//
//	c ...          comment, ignored
//	p edge N M     header: N vertices (1-indexed in the file), M edges
//	e u v          an undirected edge between u and v
//
// Both directions of every edge are pushed, since the core's graph.Graph
// never infers symmetry on its own. The returned graph has its degeneracy
// already built, so the degeneracy heuristic is available to ants.
// Complexity: O(n + m)
func LoadDIMACS(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: LoadDIMACS(%q): %w", path, err)
	}
	defer f.Close()

	return parseDIMACS(f)
}

func parseDIMACS(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var g *graph.Graph

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if g != nil || len(fields) < 3 || fields[1] != "edge" {
				return nil, fmt.Errorf("loader: %q: %w", line, ErrMalformedHeader)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("loader: %q: %w", line, ErrMalformedHeader)
			}
			g = graph.New(n)

		case "e":
			if g == nil || len(fields) < 3 {
				return nil, fmt.Errorf("loader: %q: %w", line, ErrMalformedEdge)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || u < 1 || u > g.N() || v < 1 || v > g.N() {
				return nil, fmt.Errorf("loader: %q: %w", line, ErrMalformedEdge)
			}
			g.PushEdge(u-1, v-1)
			g.PushEdge(v-1, u-1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if g == nil {
		return nil, ErrMalformedHeader
	}
	g.BuildDegeneracy()
	return g, nil
}
