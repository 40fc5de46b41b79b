package colortree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/colortree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newSortedTree(t *testing.T) (*Tree[string], tags.Mask, tags.Mask) {
	t.Helper()
	coder, err := tags.NewCoder("visible", "hidden")
	if err != nil {
		t.Fatalf("cannot create coder: %v", err)
	}
	tree, err := New(Config[string]{Coder: coder, Comparator: strings.Compare})
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	vis, _ := coder.Tag("visible")
	hid, _ := coder.Tag("hidden")
	return tree, vis, hid
}

func TestAddSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, vis, _ := newSortedTree(t)
	all := tree.Coder().All()
	for _, v := range []string{"m", "c", "x", "c"} {
		n := 1
		if v == "x" {
			n = 2
		}
		if _, err := tree.AddSorted(vis, v, n); err != nil {
			t.Fatalf("add sorted %q failed: %v", v, err)
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("tree invalid after sorted add: %v", err)
		}
	}
	if tree.Size(all) != 5 || tree.NodeCount() != 3 {
		t.Fatalf("expected 5 elements in 3 runs, have %d in %d", tree.Size(all), tree.NodeCount())
	}
	var got []string
	for i := range tree.Size(all) {
		got = append(got, valueAt(t, tree, i, all))
	}
	if strings.Join(got, "") != "ccmxx" {
		t.Fatalf("expected sorted order 'ccmxx', got %v", got)
	}
}

func TestIndexOfValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, vis, hid := newSortedTree(t)
	all := tree.Coder().All()
	for _, v := range []string{"m", "c", "x", "c", "x"} {
		if _, err := tree.AddSorted(vis, v, 1); err != nil {
			t.Fatalf("add sorted %q failed: %v", v, err)
		}
	}
	if _, err := tree.AddSorted(hid, "e", 1); err != nil { // c c e m x x
		t.Fatalf("add sorted failed: %v", err)
	}
	cases := []struct {
		value           string
		first, simulate bool
		mask            tags.Mask
		want            int
	}{
		{"c", true, false, all, 0},
		{"c", false, false, all, 1},
		{"x", true, false, all, 4},
		{"x", false, false, all, 5},
		{"d", true, false, all, -1},
		{"d", true, true, all, 2},
		{"z", false, true, all, 6},
		{"a", true, true, all, 0},
		{"m", true, false, vis, 2},
		{"m", true, false, all, 3},
		{"e", true, false, hid, 0},
	}
	for _, c := range cases {
		got, err := tree.IndexOfValue(c.value, c.first, c.simulate, c.mask)
		if err != nil || got != c.want {
			t.Errorf("indexOfValue(%q, first=%v, simulate=%v, %s) = %d, %v; want %d",
				c.value, c.first, c.simulate, tree.Coder().Format(c.mask), got, err, c.want)
		}
	}
}

func TestSortedModeRequiresComparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newTestTree(t)
	if _, err := tree.AddSorted(p.vis, "a", 1); !errors.Is(err, ErrNoComparator) {
		t.Fatalf("expected ErrNoComparator, got %v", err)
	}
	if _, err := tree.IndexOfValue("a", true, true, p.all); !errors.Is(err, ErrNoComparator) {
		t.Fatalf("expected ErrNoComparator, got %v", err)
	}
}

func TestValidateDetectsDisorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, vis, _ := newSortedTree(t)
	all := tree.Coder().All()
	if _, err := tree.AddSorted(vis, "b", 1); err != nil {
		t.Fatalf("add sorted failed: %v", err)
	}
	if _, err := tree.Add(1, all, vis, "a", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := tree.Validate(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected order violation, got %v", err)
	}
}
