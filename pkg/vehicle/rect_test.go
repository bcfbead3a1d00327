package vehicle

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 44, H: 72}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial", Rect{X: 120, Y: 150, W: 44, H: 72}, true},
		{"contained", Rect{X: 110, Y: 110, W: 4, H: 4}, true},
		{"touching_right_edge", Rect{X: 144, Y: 100, W: 44, H: 72}, false},
		{"touching_left_edge", Rect{X: 56, Y: 100, W: 44, H: 72}, false},
		{"touching_bottom_edge", Rect{X: 100, Y: 172, W: 44, H: 72}, false},
		{"touching_top_edge", Rect{X: 100, Y: 28, W: 44, H: 72}, false},
		{"x_overlap_only", Rect{X: 110, Y: 400, W: 44, H: 72}, false},
		{"y_overlap_only", Rect{X: 400, Y: 110, W: 44, H: 72}, false},
		{"one_pixel_in", Rect{X: 143, Y: 171, W: 44, H: 72}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("base.Overlaps: got %v want %v", got, c.want)
			}
			if got := c.other.Overlaps(base); got != c.want {
				t.Fatalf("other.Overlaps: got %v want %v", got, c.want)
			}
		})
	}
}

type box Rect

func (b box) Bounds() Rect { return Rect(b) }

func TestCollides(t *testing.T) {
	a := box{X: 0, Y: 0, W: 10, H: 10}
	b := box{X: 5, Y: 5, W: 10, H: 10}
	c := box{X: 10, Y: 0, W: 10, H: 10}
	if !Collides(a, b) {
		t.Fatalf("a and b should collide")
	}
	if Collides(a, c) {
		t.Fatalf("a and c only touch")
	}
}

func TestRectOffset(t *testing.T) {
	r := Rect{X: 10, Y: 100, W: 44, H: 72}
	got := r.Offset(5, -30)
	if got != (Rect{X: 15, Y: 70, W: 44, H: 72}) {
		t.Fatalf("offset: got %+v", got)
	}
	if r.Y != 100 {
		t.Fatalf("offset changed the receiver")
	}
}
