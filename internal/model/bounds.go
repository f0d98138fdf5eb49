package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"w" json:"w"`
	Height int `yaml:"h" json:"h"`
}

// ParseBounds parses an Android bounds attribute of the form "[x1,y1][x2,y2]"
// into a Bounds. Returns nil for any malformed input — callers treat a nil
// result as "no bounds known", never as a fatal condition.
//
// Degenerate boxes (x2 < x1 or y2 < y1) are accepted as-is; the resulting
// width/height are negative.
func ParseBounds(s string) *Bounds {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	// "[x1,y1][x2,y2]" -> "x1,y1,x2,y2"
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	inner = strings.Replace(inner, "][", ",", 1)
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return nil
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	return &Bounds{
		X:      vals[0],
		Y:      vals[1],
		Width:  vals[2] - vals[0],
		Height: vals[3] - vals[1],
	}
}

// String re-encodes the rectangle in the source corner-point format.
func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Center returns the center point using floor division, matching how tap
// coordinates are derived from element bounds. A zero-area box still yields
// a valid (if degenerate) center.
func (b Bounds) Center() (x, y int) {
	return b.X + floorDiv(b.Width, 2), b.Y + floorDiv(b.Height, 2)
}

// floorDiv divides rounding toward negative infinity, so centers of
// negative-extent boxes match the arithmetic used by the scan consumer.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
