package vitrine

import (
	"fmt"
	"strings"
	"testing"
)

func TestGroupAddPreservesOrder(t *testing.T) {
	g := NewGroup()
	a := NewObject(ObjectConfig{})
	b := NewObject(ObjectConfig{})
	g.Add(a)
	g.Add(b)
	if g.Len() != 2 || g.Children()[0] != a || g.Children()[1] != b {
		t.Error("children not in insertion order")
	}
}

func TestGroupAddNilPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic adding nil")
		}
		if !strings.Contains(fmt.Sprint(r), "vitrine") {
			t.Errorf("panic message = %v", r)
		}
	}()
	NewGroup().Add(nil)
}

func TestGroupFind(t *testing.T) {
	g := NewGroup()
	a := NewObject(ObjectConfig{})
	g.Add(a)
	if g.Find(a.ID) != a {
		t.Error("Find did not return the child")
	}
	if g.Find("missing") != nil {
		t.Error("Find of an unknown ID should be nil")
	}
}

func TestGroupOnAppliesToExistingChildren(t *testing.T) {
	g := NewGroup()
	a := NewObject(ObjectConfig{})
	g.Add(a)
	clicks := 0
	g.On(EventClick, ClickHandler(func(ClickEvent) { clicks++ }))
	a.Dispatch(ClickEvent{Object: a})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestGroupOnReplaysToLaterChildren(t *testing.T) {
	g := NewGroup()
	var got []*Object
	g.On(EventClick, ClickHandler(func(e ClickEvent) { got = append(got, e.Object) }))

	late := NewObject(ObjectConfig{})
	g.Add(late)
	late.Dispatch(ClickEvent{Object: late})
	if len(got) != 1 || got[0] != late {
		t.Errorf("handler did not reach a child added after On: %v", got)
	}
}

func TestGroupUpdateAndDrawInOrder(t *testing.T) {
	g := NewGroup()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		o := NewObject(ObjectConfig{Draw: func(DrawProps) { order = append(order, "draw "+name) }})
		o.AddUpdateHook(func() { order = append(order, "update "+name) })
		g.Add(o)
	}
	g.Update(ViewProps{}, Vec3{})
	g.Draw(ViewProps{})
	want := []string{"update a", "update b", "update c", "draw a", "draw b", "draw c"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}
