package geo

import "testing"

func TestVec2Add(t *testing.T) {
	vecTests := []struct {
		v1, v2 Vec2
		want   Vec2
	}{
		{
			Vec2{3, -3},
			Vec2{4, 9},
			Vec2{7, 6},
		},
		{
			Vec2{1, 2},
			Vec2{0, 0},
			Vec2{1, 2},
		},
	}

	for _, tt := range vecTests {
		got := tt.v1.Add(tt.v2)
		if !got.Approx(tt.want) {
			t.Errorf("%v + %v, want %v, got %v", tt.v1, tt.v2, tt.want, got)
		}
	}
}

func TestVec2Dist(t *testing.T) {
	vecTests := []struct {
		v1, v2 Vec2
		want   float32
	}{
		{
			Vec2{0, 0},
			Vec2{3, 4},
			5,
		},
		{
			Vec2{-1, -1},
			Vec2{-1, -1},
			0,
		},
	}

	for _, tt := range vecTests {
		got := tt.v1.Dist(tt.v2)
		if got != tt.want {
			t.Errorf("dist(%v, %v), want %f, got %f", tt.v1, tt.v2, tt.want, got)
		}
	}
}

func TestVec2Accessors(t *testing.T) {
	v := NewVec2()
	v.SetX(4)
	v.SetY(-7)
	if v.X() != 4 || v.Y() != -7 {
		t.Errorf("want (4,-7), got %v", v)
	}
	w := NewVec2From(v)
	w.SetX(0)
	if v.X() != 4 {
		t.Errorf("NewVec2From should copy, got %v", v)
	}
	if !v.Sub(w).Approx(NewVec2XY(4, 0)) {
		t.Errorf("want (4,0), got %v", v.Sub(w))
	}
	if !v.Scale(2).Approx(NewVec2XY(8, -14)) {
		t.Errorf("want (8,-14), got %v", v.Scale(2))
	}
}

func TestVec2Clamp(t *testing.T) {
	clampTests := []struct {
		v, want Vec2
	}{
		{Vec2{5, 5}, Vec2{5, 5}},
		{Vec2{-3, 12}, Vec2{0, 10}},
		{Vec2{11, -1}, Vec2{10, 0}},
	}
	for _, tt := range clampTests {
		if got := tt.v.Clamp(0, 10); !got.Approx(tt.want) {
			t.Errorf("clamp %v, want %v, got %v", tt.v, tt.want, got)
		}
		if tt.v.InRect(NewVec2(), NewVec2XY(10, 10)) != tt.v.Approx(tt.want) {
			t.Errorf("InRect(%v) disagrees with Clamp", tt.v)
		}
	}
}
