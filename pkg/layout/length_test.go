package layout

import "testing"

func TestParseLength(t *testing.T) {
	cases := []struct {
		value     string
		reference float64
		fontSize  float64
		want      float64
	}{
		{"10px", 0, 16, 10},
		{"12.5px", 0, 16, 12.5},
		{"50%", 200, 16, 100},
		{"2em", 0, 20, 40},
		{"2rem", 0, 20, 32},
		{"12", 0, 16, 12},
		{"  10px  ", 0, 16, 10},
		{"auto", 500, 16, 0},
		{"none", 500, 16, 0},
		{"", 500, 16, 0},
		{"garbage", 500, 16, 0},
	}
	for _, c := range cases {
		if got := ParseLength(c.value, c.reference, c.fontSize); got != c.want {
			t.Errorf("ParseLength(%q, %v, %v): expected %v, got %v",
				c.value, c.reference, c.fontSize, c.want, got)
		}
	}
}

func TestParseEdgeShorthand(t *testing.T) {
	cases := []struct {
		value string
		want  EdgeSizes
	}{
		{"5px", EdgeSizes{5, 5, 5, 5}},
		{"5px 10px", EdgeSizes{5, 10, 5, 10}},
		{"1px 2px 3px", EdgeSizes{1, 2, 3, 2}},
		{"1px 2px 3px 4px", EdgeSizes{1, 2, 3, 4}},
		{"", EdgeSizes{}},
		{"1px 2px 3px 4px 5px", EdgeSizes{}},
	}
	for _, c := range cases {
		if got := parseEdgeShorthand(c.value, 0, 16); got != c.want {
			t.Errorf("shorthand %q: expected %+v, got %+v", c.value, c.want, got)
		}
	}
}
