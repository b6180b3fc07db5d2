package dcel_test

import (
	"fmt"

	"github.com/katalvlaran/planarmis/dcel"
)

// Example demonstrates building a triangle's planar embedding and walking
// its two faces.
func Example() {
	b := dcel.NewBuilder()
	_ = b.AddHalfEdge(0, 1)
	_ = b.AddHalfEdge(1, 2)
	_ = b.AddHalfEdge(2, 0)
	_ = b.AddHalfEdge(0, 2)
	_ = b.AddHalfEdge(2, 1)
	_ = b.AddHalfEdge(1, 0)

	g, err := b.Build()
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	fmt.Println("faces:", len(g.Faces))
	// Output:
	// faces: 2
}
