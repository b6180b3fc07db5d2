package viz

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
)

type jsVertex struct {
	ID   int   `json:"id"`
	Arcs []int `json:"arcs"`
}

type jsArc struct {
	ID   int `json:"id"`
	Src  int `json:"src"`
	Dst  int `json:"dst"`
	Twin int `json:"twin"`
	Face int `json:"face"`
}

type jsDocument struct {
	Vertices []jsVertex `json:"vertices"`
	Arcs     []jsArc    `json:"arcs"`
	Faces    [][]int    `json:"faces"`
	Spantree []jsTreeOf `json:"spantree"`
}

type jsTreeOf struct {
	Vertex       int `json:"vertex"`
	Level        int `json:"level"`
	DiscoveredBy int `json:"discoveredBy"`
}

// WriteJS writes a `let data = {...};` assignment describing g's
// vertices, arcs, faces (each as its boundary arc walk) and (if st is
// non-nil) the BFS spanning tree's per-vertex level and discovering arc,
// ready to be loaded as a plain <script> by a browser-side viewer.
func WriteJS(w io.Writer, g *dcel.Graph, st *bfstree.SpanningTree) error {
	doc := jsDocument{
		Vertices: make([]jsVertex, len(g.Vertices)),
		Arcs:     make([]jsArc, len(g.Arcs)),
		Faces:    make([][]int, len(g.Faces)),
	}
	for i, v := range g.Vertices {
		doc.Vertices[i] = jsVertex{ID: i, Arcs: append([]int(nil), v.Arcs...)}
	}
	for i, a := range g.Arcs {
		doc.Arcs[i] = jsArc{ID: i, Src: a.Src, Dst: a.Dst, Twin: a.Twin, Face: a.Face}
	}
	for i, f := range g.Faces {
		walk, err := g.FaceWalk(f.Start)
		if err != nil {
			return err
		}
		doc.Faces[i] = walk
	}
	if st != nil {
		doc.Spantree = make([]jsTreeOf, len(g.Vertices))
		for v := range g.Vertices {
			discoveredBy := -1
			if arcID, ok := st.DiscoveredBy(v); ok {
				discoveredBy = arcID
			}
			doc.Spantree[v] = jsTreeOf{Vertex: v, Level: st.Level(v), DiscoveredBy: discoveredBy}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "let data = "); err != nil {
		return err
	}
	if _, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return err
	}
	_, err := io.WriteString(w, ";\n")
	return err
}
