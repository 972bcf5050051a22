package css

import "testing"

func TestParseColor(t *testing.T) {
	cases := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"red", Color{255, 0, 0, 1}, true},
		{"RED", Color{255, 0, 0, 1}, true},
		{"  navy  ", Color{0, 0, 128, 1}, true},
		{"transparent", Color{A: 0}, true},
		{"#f00", Color{255, 0, 0, 1}, true},
		{"#abc", Color{170, 187, 204, 1}, true},
		{"#ff8000", Color{255, 128, 0, 1}, true},
		{"rgb(10, 20, 30)", Color{10, 20, 30, 1}, true},
		{"rgb(300, -5, 0)", Color{255, 0, 0, 1}, true},
		{"rgba(10, 20, 30, 0.5)", Color{10, 20, 30, 0.5}, true},
		{"rgba(10, 20, 30, 2)", Color{10, 20, 30, 1}, true},
		{"", Color{}, false},
		{"notacolor", Color{}, false},
		{"#12345", Color{}, false},
		{"#xyz", Color{}, false},
		{"rgb(1, 2)", Color{}, false},
		{"rgb(a, b, c)", Color{}, false},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.input)
		if ok != c.ok {
			t.Errorf("%q: expected ok=%v, got %v", c.input, c.ok, ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("%q: expected %+v, got %+v", c.input, c.want, got)
		}
	}
}
