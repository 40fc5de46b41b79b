package colortree

import (
	"errors"
	"testing"

	"github.com/npillmayer/colortree/tags"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// aabbbaa with values a a x x x b b
func newCursorTestTree(t *testing.T) (*Tree[string], testPalette) {
	t.Helper()
	tree, p := newTestTree(t)
	mustAdd(t, tree, 0, p.all, p.vis, "a", 2)
	mustAdd(t, tree, 2, p.all, p.sel, "x", 3)
	mustAdd(t, tree, 5, p.all, p.vis, "b", 2)
	return tree, p
}

func TestCursorScanVisible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, err := tree.Cursor(0, p.vis)
	if err != nil {
		t.Fatalf("cursor creation failed: %v", err)
	}
	if c.Index(p.vis) != -1 || c.Tag() != 0 {
		t.Fatalf("expected cursor before first element")
	}
	type step struct {
		value        string
		visIdx, allIdx int
	}
	want := []step{{"a", 0, 0}, {"a", 1, 1}, {"b", 2, 5}, {"b", 3, 6}}
	for i, w := range want {
		if !c.Next(p.vis) {
			t.Fatalf("step %d: expected next element", i)
		}
		if c.Value() != w.value || c.Index(p.vis) != w.visIdx || c.Index(p.all) != w.allIdx {
			t.Fatalf("step %d: got (%q, %d, %d), want (%q, %d, %d)", i,
				c.Value(), c.Index(p.vis), c.Index(p.all), w.value, w.visIdx, w.allIdx)
		}
	}
	if c.HasNext(p.vis) || c.Next(p.vis) {
		t.Fatalf("expected end of visible elements")
	}
	if c.Err() != nil {
		t.Fatalf("unexpected cursor error %v", c.Err())
	}
}

func TestCursorStartInsideView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, err := tree.Cursor(2, p.vis)
	if err != nil {
		t.Fatalf("cursor creation failed: %v", err)
	}
	if c.Index(p.vis) != 1 || c.Offset() != 1 {
		t.Fatalf("expected cursor on second visible element, index=%d offset=%d", c.Index(p.vis), c.Offset())
	}
	if !c.Next(p.vis) || c.Value() != "b" || c.Index(p.all) != 5 {
		t.Fatalf("expected to continue at 'b', got %q at %d", c.Value(), c.Index(p.all))
	}
	if _, err := tree.Cursor(5, p.vis); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	end, err := tree.Cursor(4, p.vis)
	if err != nil || end.HasNext(p.vis) {
		t.Fatalf("expected cursor at end of view, err=%v", err)
	}
}

func TestCursorMixedMasks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, _ := tree.Cursor(0, p.all)
	if !c.Next(p.sel) || c.Value() != "x" || c.Index(p.all) != 2 || c.Index(p.sel) != 0 {
		t.Fatalf("expected first selected element at 2, got %q at %d", c.Value(), c.Index(p.all))
	}
	// visible index of a selected element is the last visible one before it
	if c.Index(p.vis) != 1 {
		t.Fatalf("expected visible index 1, got %d", c.Index(p.vis))
	}
	if !c.Next(p.all) || c.Index(p.sel) != 1 || c.Offset() != 1 {
		t.Fatalf("expected second selected element")
	}
}

func TestCursorRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, _ := tree.Cursor(0, p.all)
	if !c.Next(p.all) || c.Value() != "a" {
		t.Fatalf("expected first run")
	}
	if !c.NextRun(p.all) || c.Value() != "x" || c.Index(p.all) != 2 || c.Offset() != 0 {
		t.Fatalf("expected selected run at 2, got %q at %d", c.Value(), c.Index(p.all))
	}
	if !c.NextRun(p.all) || c.Value() != "b" || c.Index(p.all) != 5 {
		t.Fatalf("expected last run at 5, got %q at %d", c.Value(), c.Index(p.all))
	}
	if c.HasNextRun(p.all) || c.NextRun(p.all) {
		t.Fatalf("expected no further run")
	}
	if !c.Next(p.all) || c.Index(p.all) != 6 {
		t.Fatalf("expected last element to be reachable by Next")
	}
	c, _ = tree.Cursor(0, p.all)
	if !c.NextRun(p.vis) || c.Value() != "a" || !c.NextRun(p.vis) || c.Value() != "b" {
		t.Fatalf("expected to jump from run to run of visible elements")
	}
}

func TestCursorCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, _ := tree.Cursor(0, p.all)
	c.Next(p.all)
	cc := c.Copy()
	c.Next(p.all)
	c.Next(p.all)
	if cc.Index(p.all) != 0 || c.Index(p.all) != 2 {
		t.Fatalf("copy is not independent: %d / %d", cc.Index(p.all), c.Index(p.all))
	}
	if !cc.Next(p.vis) || cc.Index(p.all) != 1 {
		t.Fatalf("copy cannot advance on its own")
	}
}

func TestCursorInvalidatedByMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newCursorTestTree(t)
	c, _ := tree.Cursor(0, p.all)
	c.Next(p.all)
	mustAdd(t, tree, 0, p.all, p.sel, "y", 1)
	if c.Next(p.all) {
		t.Fatalf("expected cursor to refuse to advance after mutation")
	}
	if !errors.Is(c.Err(), ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", c.Err())
	}
}

func TestCursorVisitsEveryElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "colortree")
	defer teardown()
	//
	tree, p := newTestTree(t)
	for i := range 50 {
		tag := p.vis
		if i%3 == 0 {
			tag = p.sel
		}
		mustAdd(t, tree, tree.Size(p.all)/2, p.all, tag, string(rune('a'+i%5)), 1+i%4)
	}
	for _, view := range []tags.Mask{p.all, p.vis, p.sel} {
		c, err := tree.Cursor(0, view)
		if err != nil {
			t.Fatalf("cursor creation failed: %v", err)
		}
		n := 0
		for c.Next(view) {
			e, err := tree.Get(n, view)
			if err != nil {
				t.Fatalf("get(%d) failed: %v", n, err)
			}
			if c.Index(view) != n || c.Value() != e.Value() || c.Tag() != e.Tag() {
				t.Fatalf("cursor at %d disagrees with Get: %q vs %q", n, c.Value(), e.Value())
			}
			n++
		}
		if n != tree.Size(view) {
			t.Fatalf("cursor visited %d of %d elements", n, tree.Size(view))
		}
	}
}
