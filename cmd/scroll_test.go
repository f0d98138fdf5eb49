package cmd

import "testing"

func TestSwipePlan(t *testing.T) {
	// 1080x2400 screen, default distance 0.5: scroll axis extent 1200,
	// half of it on each side of center (540, 1200).
	tests := []struct {
		direction      string
		x1, y1, x2, y2 int
	}{
		{"up", 540, 600, 540, 1800},
		{"down", 540, 1800, 540, 600},
		{"left", 270, 1200, 810, 1200},
		{"right", 810, 1200, 270, 1200},
		{"UP", 540, 600, 540, 1800}, // case-insensitive
	}
	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			x1, y1, x2, y2, err := swipePlan(1080, 2400, tt.direction, 0.5)
			if err != nil {
				t.Fatalf("swipePlan: %v", err)
			}
			if x1 != tt.x1 || y1 != tt.y1 || x2 != tt.x2 || y2 != tt.y2 {
				t.Errorf("got (%d,%d)->(%d,%d), want (%d,%d)->(%d,%d)",
					x1, y1, x2, y2, tt.x1, tt.y1, tt.x2, tt.y2)
			}
		})
	}
}

func TestSwipePlanInvalidDirection(t *testing.T) {
	if _, _, _, _, err := swipePlan(1080, 2400, "diagonal", 0.5); err == nil {
		t.Fatal("expected error for invalid direction")
	}
}

func TestSwipePlanDistance(t *testing.T) {
	// Full-screen scroll down: swipe spans the whole height.
	_, y1, _, y2, err := swipePlan(1000, 2000, "down", 1.0)
	if err != nil {
		t.Fatalf("swipePlan: %v", err)
	}
	if y1-y2 != 2000 {
		t.Errorf("swipe extent = %d, want 2000", y1-y2)
	}
}
