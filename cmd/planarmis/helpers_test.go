package main

import "os"

// triangleGraph is the canonical 3-cycle, CCW half-edge order, from
// spec.md's own worked example: MIS size 1, any single vertex valid.
const triangleGraph = "3\n3\n0 1\n1 2\n2 0\n1 0\n2 1\n0 2\n"

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
