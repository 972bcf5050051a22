package html

import "testing"

func TestNode_Classes(t *testing.T) {
	n := NewElement("div", map[string]string{"class": "  a  b\tc "})
	classes := n.Classes()
	if len(classes) != 3 {
		t.Fatalf("expected 3 classes, got %v", classes)
	}
	if !n.HasClass("b") {
		t.Error("expected HasClass('b') to be true")
	}
	if n.HasClass("d") {
		t.Error("expected HasClass('d') to be false")
	}
}

func TestNode_ClassesMissingAttribute(t *testing.T) {
	n := NewElement("div", nil)
	if n.Classes() != nil {
		t.Errorf("expected nil classes, got %v", n.Classes())
	}
}

func TestNode_AddChildSetsParent(t *testing.T) {
	parent := NewElement("div", nil)
	child := NewElement("span", nil)
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("AddChild must set the parent back-reference")
	}
	if len(parent.Children) != 1 {
		t.Errorf("expected 1 child, got %d", len(parent.Children))
	}
}

func TestNode_Serialize(t *testing.T) {
	root := Parse(`<div id="x"><span>a & b</span><br></div>`)
	got := root.SerializeOuter()
	want := `<div id="x"><span>a &amp; b</span><br></div>`
	if got != want {
		t.Errorf("serialize mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestNode_SerializeInner(t *testing.T) {
	root := Parse("<div><p>one</p></div>")
	if got := root.Serialize(); got != "<p>one</p>" {
		t.Errorf("expected innerHTML '<p>one</p>', got '%s'", got)
	}
}
