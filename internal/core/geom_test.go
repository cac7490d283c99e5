package core

import "testing"

func TestRectIntersects(t *testing.T) {
	bird := NewRect(80, 308, 34, 24)

	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "bird inside top pipe",
			a:        bird,
			b:        NewRect(90, 0, 70, 320),
			expected: true,
		},
		{
			name:     "bird below top pipe",
			a:        bird,
			b:        NewRect(90, 0, 70, 308),
			expected: false,
		},
		{
			name:     "bird left of pipe (touching)",
			a:        bird,
			b:        NewRect(114, 0, 70, 400),
			expected: false,
		},
		{
			name:     "single unit overlap",
			a:        bird,
			b:        NewRect(113, 331, 10, 10),
			expected: true,
		},
		{
			name:     "contained coin box",
			a:        bird,
			b:        NewRect(87, 310, 20, 20),
			expected: true,
		},
		{
			name:     "zero height region",
			a:        bird,
			b:        NewRect(80, 310, 70, 0),
			expected: false,
		},
		{
			name:     "zero width region",
			a:        bird,
			b:        NewRect(90, 300, 0, 50),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAtTruncates(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Rect
	}{
		{"whole", 80, 308, NewRect(80, 308, 34, 24)},
		{"fraction", 80.9, 308.45, NewRect(80, 308, 34, 24)},
		{"negative fraction", -0.35, -2.7, NewRect(0, -2, 34, 24)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RectAt(tc.x, tc.y, 34, 24)
			if got != tc.want {
				t.Errorf("RectAt(%v, %v) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	// Tilt range used by the bird
	tests := []struct {
		val, expected float64
	}{
		{0, 0},
		{28.5, 28.5},
		{-40, -25},
		{120, 90},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, -25, 90)
		if result != tc.expected {
			t.Errorf("ClampF(%f, -25, 90) = %f, expected %f", tc.val, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestRectClip(t *testing.T) {
	bounds := NewRect(10, 0, 40, 20)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(12, 2, 5, 5), NewRect(12, 2, 5, 5)},
		{"overhangs right", NewRect(45, 5, 20, 3), NewRect(45, 5, 5, 3)},
		{"overhangs left and top", NewRect(0, -4, 15, 10), NewRect(10, 0, 5, 6)},
		{"outside", NewRect(60, 0, 5, 5), Rect{}},
		{"touching edge", NewRect(50, 0, 5, 5), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clip(bounds); got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
