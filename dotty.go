package colortree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[V comparable](tree *Tree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree == nil || tree.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := make(map[*node[V]]int)
	id := func(n *node[V]) int {
		if i, ok := ids[n]; ok {
			return i
		}
		ids[n] = len(ids) + 1
		return ids[n]
	}
	nodelist, edgelist := "", ""
	for n := tree.firstNode(); n != nil; n = n.next() {
		ID := id(n)
		name, err := tree.cfg.Coder.Name(n.tagMask())
		if err != nil {
			T().Errorf("tree DOT: %s", err.Error())
			name = "?"
		}
		label := fmt.Sprintf("%s ×%d\\nh=%d", name, n.size, n.height)
		if n.hasValue {
			label += fmt.Sprintf("\\n“%v”", n.value)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.tag))
		for i, child := range []*node[V]{n.left, n.right} {
			if child == nil {
				nilid := fmt.Sprintf("nil%d_%d", ID, i)
				nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, id(child))
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(tag uint8) string {
	return fmt.Sprintf(",style=filled,shape=box,fillcolor=\"%s\"", hexcolors[int(tag)%len(hexcolors)])
}

var hexcolors = [...]string{"#CCDDFF", "#FFDDCC", "#DDFFCC", "#FFEEAA", "#EECCFF",
	"#CCFFEE", "#FFCCDD", "#DDDDDD"}
