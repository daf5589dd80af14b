package utils

import (
	"image"
	"math"
)

// Distance 两点间距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointInRect 判断点是否落在矩形内（含边界）
func PointInRect(x, y float64, rect image.Rectangle) bool {
	return x >= float64(rect.Min.X) && x <= float64(rect.Max.X) &&
		y >= float64(rect.Min.Y) && y <= float64(rect.Max.Y)
}

// Midpoint 两点中点
func Midpoint(x1, y1, x2, y2 float64) (float64, float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// EvenlySpaced 在 [start, end] 区间内均匀取 count 个点（含两端）
func EvenlySpaced(start, end float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{(start + end) / 2}
	}
	step := (end - start) / float64(count-1)
	points := make([]float64, count)
	for i := range points {
		points[i] = start + step*float64(i)
	}
	return points
}
