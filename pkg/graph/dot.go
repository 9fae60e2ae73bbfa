package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

var kindShapes = map[Kind]string{
	KindDrug:       "box",
	KindSynonym:    "ellipse",
	KindPathway:    "hexagon",
	KindGene:       "diamond",
	KindProduct:    "note",
	KindTarget:     "ellipse",
	KindAminoAcids: "plaintext",
}

// WriteDOT renders v in Graphviz DOT.
func WriteDOT(w io.Writer, v *View) error {
	bw := bufio.NewWriter(w)

	keyword, arrow := "graph", "--"
	if v.Directed {
		keyword, arrow = "digraph", "->"
	}

	fmt.Fprintf(bw, "%s %s {\n", keyword, strconv.Quote(v.Name))
	for _, n := range v.Nodes() {
		fmt.Fprintf(bw, "  %s [label=%s, shape=%s];\n", strconv.Quote(n.ID), strconv.Quote(n.Label), kindShapes[n.Kind])
	}
	for _, e := range v.Edges() {
		fmt.Fprintf(bw, "  %s %s %s;\n", strconv.Quote(e.From), arrow, strconv.Quote(e.To))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
