package utils

import (
	"image/color"
	"testing"
)

func TestScaleAlpha(t *testing.T) {
	tests := []struct {
		name  string
		c     color.RGBA
		alpha float64
		want  color.RGBA
	}{
		{"不透明", color.RGBA{200, 100, 50, 255}, 1, color.RGBA{200, 100, 50, 255}},
		{"半透明", color.RGBA{200, 100, 50, 255}, 0.5, color.RGBA{100, 50, 25, 127}},
		{"完全透明", color.RGBA{200, 100, 50, 255}, 0, color.RGBA{}},
		{"超出范围被截断", color.RGBA{200, 100, 50, 255}, 2, color.RGBA{200, 100, 50, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleAlpha(tt.c, tt.alpha); got != tt.want {
				t.Errorf("ScaleAlpha(%v, %v) = %v, want %v", tt.c, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestDrawTextSkipsInvisible(t *testing.T) {
	// face 为 nil 或透明时直接返回，不访问 screen
	DrawText(nil, nil, "text", 0, 0, TextStyle{Alpha: 1})
	DrawText(nil, nil, "", 0, 0, TextStyle{Alpha: 1})
}
