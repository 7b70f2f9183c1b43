package main

import "testing"

func TestScaleCursor(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		ww, wh, fw, fh int
		wantX, wantY   float64
	}{
		{"same size", 10, 20, 300, 200, 300, 200, 10, 20},
		{"hidpi", 10, 20, 300, 200, 600, 400, 20, 40},
		{"minimized", 10, 20, 0, 0, 0, 0, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := scaleCursor(tt.x, tt.y, tt.ww, tt.wh, tt.fw, tt.fh)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("scaleCursor = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
