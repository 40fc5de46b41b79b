package colortree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// tagPalette colors runs by tag position when dumping to a terminal.
var tagPalette = [...]color.Attribute{
	color.FgBlue, color.FgRed, color.FgGreen, color.FgYellow,
	color.FgMagenta, color.FgCyan, color.FgHiBlack, color.FgWhite,
}

// Dump writes the tree structure to w, one run per line in order, indented
// by depth (for debugging purposes). If w is a terminal, tags are colored
// and lines are clipped to the terminal width.
func (t *Tree[V]) Dump(w io.Writer) {
	width, colored := 0, false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colored = true
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = tw
		}
	}
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty>")
		return
	}
	t.dumpNode(w, t.root, 0, width, colored)
}

func (t *Tree[V]) dumpNode(w io.Writer, n *node[V], depth, width int, colored bool) {
	if n.left != nil {
		t.dumpNode(w, n.left, depth+1, width, colored)
	}
	name, err := t.cfg.Coder.Name(n.tagMask())
	if err != nil {
		name = fmt.Sprintf("#%d", n.tag)
	}
	value := "∅"
	if n.hasValue {
		value = fmt.Sprintf("%v", n.value)
	}
	indent := strings.Repeat("  ", depth)
	rest := fmt.Sprintf(" ×%d h=%d %v %s", n.size, n.height, n.counts[:t.cfg.Coder.Len()], value)
	if width > 0 {
		if r, room := []rune(rest), width-len(indent)-len(name); room < len(r) {
			rest = string(r[:max(room, 0)])
		}
	}
	io.WriteString(w, indent)
	c := color.New(tagPalette[int(n.tag)%len(tagPalette)])
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprint(w, name)
	io.WriteString(w, rest+"\n")
	if n.right != nil {
		t.dumpNode(w, n.right, depth+1, width, colored)
	}
}
