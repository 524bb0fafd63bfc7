package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACS_TriangleGraph(t *testing.T) {
	src := "c a triangle\np edge 3 3\ne 1 2\ne 2 3\ne 1 3\n"
	g, err := parseDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 2, g.Degree(0))
	assert.True(t, g.IsNeighbor(0, 1))
	assert.True(t, g.IsNeighbor(1, 0))
}

func TestParseDIMACS_RejectsEdgeBeforeHeader(t *testing.T) {
	_, err := parseDIMACS(strings.NewReader("e 1 2\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEdge)
}

func TestParseDIMACS_RejectsOutOfRangeVertex(t *testing.T) {
	_, err := parseDIMACS(strings.NewReader("p edge 2 1\ne 1 3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEdge)
}

func TestParseDIMACS_RejectsMissingHeader(t *testing.T) {
	_, err := parseDIMACS(strings.NewReader("c only a comment\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseDIMACS_EmptyGraphNoEdges(t *testing.T) {
	g, err := parseDIMACS(strings.NewReader("p edge 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.N())
}

func TestParseDensity(t *testing.T) {
	cases := []struct {
		name   string
		want   byte
		wantOK bool
	}{
		{"C125.9_1.clq", '9', true},
		{"frb30-15.5_01.clq", '5', true},
		{"no-density.clq", 0, false},
	}
	for _, tc := range cases {
		digit, ok := ParseDensity(tc.name)
		assert.Equal(t, tc.wantOK, ok, tc.name)
		if tc.wantOK {
			assert.Equal(t, tc.want, digit, tc.name)
		}
	}
}

func TestDiscover_EmptyDirectoryErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Discover(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDirectory)
}
