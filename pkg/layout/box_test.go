package layout

import "testing"

func TestRect_ExpandedBy(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	e := EdgeSizes{Top: 1, Right: 2, Bottom: 3, Left: 4}
	got := r.ExpandedBy(e)
	want := Rect{X: 6, Y: 19, Width: 106, Height: 54}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDimensions_BoxLayers(t *testing.T) {
	d := Dimensions{
		Content: Rect{X: 50, Y: 50, Width: 100, Height: 40},
		Padding: EdgeSizes{10, 10, 10, 10},
		Border:  EdgeSizes{1, 1, 1, 1},
		Margin:  EdgeSizes{5, 5, 5, 5},
	}
	if got := d.PaddingBox().Width; got != 120 {
		t.Errorf("padding box width: expected 120, got %v", got)
	}
	if got := d.BorderBox().Width; got != 122 {
		t.Errorf("border box width: expected 122, got %v", got)
	}
	if got := d.MarginBox().Width; got != 132 {
		t.Errorf("margin box width: expected 132, got %v", got)
	}
	if got := d.MarginBox().X; got != 34 {
		t.Errorf("margin box x: expected 34, got %v", got)
	}
}
