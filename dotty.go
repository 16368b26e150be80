package lazyseg

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Inner nodes show their span and aggregate, and
// pending updates are highlighted. Tree2Dot does not push pending updates.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	var nodelist, edgelist strings.Builder
	if tree != nil && tree.n > 0 {
		tree.dotNode(1, 0, tree.n, &nodelist, &edgelist)
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func (t *Tree[T]) dotNode(v, vl, vr int, nodes, edges *strings.Builder) {
	nd := t.nodes[v]
	isleaf := vr-vl == 1
	label := fmt.Sprintf("[%d,%d)\\n%v", vl, vr, nd.agg)
	if isleaf {
		label = fmt.Sprintf("@%d\\n%v", vl, nd.agg)
	}
	if nd.lazy {
		label += fmt.Sprintf("\\n+%v", nd.pending)
	}
	fmt.Fprintf(nodes, "\"%d\" [label=\"%s\"%s];\n", v, label, nodeDotStyles(isleaf, nd.lazy))
	if isleaf {
		return
	}
	vm := (vl + vr) / 2
	fmt.Fprintf(edges, "\"%d\" -> \"%d\";\n", v, 2*v)
	fmt.Fprintf(edges, "\"%d\" -> \"%d\";\n", v, 2*v+1)
	t.dotNode(2*v, vl, vm, nodes, edges)
	t.dotNode(2*v+1, vm, vr, nodes, edges)
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else if !isleaf {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
