// Package loader reads graph instances from disk and hands fully built
// graph.Graph values to the core. It owns every file-format and filesystem
// concern the core is deliberately ignorant of: DIMACS clique-benchmark
// parsing, directory enumeration, and density-bucket classification for
// batch benchmarking.
package loader
