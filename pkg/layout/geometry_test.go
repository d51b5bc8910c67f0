package layout

import "testing"

func TestStack(t *testing.T) {
	tests := []struct {
		name      string
		axis      Axis
		opts      Options
		sizes     []Size
		wantTotal Size
		wantLast  Point
	}{
		{"empty", AxisVertical, Options{Gap: 3, Padding: 2}, nil, Size{}, Point{}},
		{"rows gap 1", AxisVertical, Options{Gap: 1}, []Size{{1, 1}, {1, 1}, {1, 1}}, Size{1, 5}, Point{0, 4}},
		{"rows mixed width", AxisVertical, Options{}, []Size{{4, 2}, {7, 1}}, Size{7, 3}, Point{0, 2}},
		{"columns", AxisHorizontal, Options{Gap: 2}, []Size{{3, 1}, {2, 4}}, Size{7, 4}, Point{5, 0}},
		{"padding once", AxisVertical, Options{Gap: 1, Padding: 1}, []Size{{2, 1}, {2, 1}}, Size{4, 5}, Point{1, 3}},
		{"single child no gap", AxisHorizontal, Options{Gap: 5}, []Size{{3, 3}}, Size{3, 3}, Point{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, total := Stack(tt.axis, tt.opts, tt.sizes)
			if total != tt.wantTotal {
				t.Errorf("total = %+v, want %+v", total, tt.wantTotal)
			}
			if len(points) != len(tt.sizes) {
				t.Fatalf("len(points) = %d, want %d", len(points), len(tt.sizes))
			}
			if len(points) > 0 && points[len(points)-1] != tt.wantLast {
				t.Errorf("last point = %+v, want %+v", points[len(points)-1], tt.wantLast)
			}
		})
	}
}

func TestGridLayout(t *testing.T) {
	sizes := []Size{{2, 1}, {5, 1}, {3, 2}, {1, 1}, {4, 3}}
	points, total := GridLayout(2, Options{Gap: 1}, sizes)

	want := []Point{{0, 0}, {5, 0}, {0, 2}, {5, 2}, {0, 5}}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, points[i], want[i])
		}
	}
	// columns 4 and 5 wide, rows 1, 2 and 3 tall
	if total != (Size{W: 10, H: 8}) {
		t.Errorf("total = %+v, want {10 8}", total)
	}

	if _, total := GridLayout(0, Options{}, sizes); total != (Size{}) {
		t.Errorf("zero columns total = %+v, want zero", total)
	}
	if _, total := GridLayout(3, Options{}, nil); total != (Size{}) {
		t.Errorf("no children total = %+v, want zero", total)
	}
}

func TestAxisString(t *testing.T) {
	if AxisVertical.String() != "vertical" || AxisHorizontal.String() != "horizontal" {
		t.Errorf("got %q, %q", AxisVertical, AxisHorizontal)
	}
	if got := Axis(7).String(); got != "Axis(7)" {
		t.Errorf("Axis(7).String() = %q", got)
	}
}
