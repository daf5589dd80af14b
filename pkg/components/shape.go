package components

import "image/color"

// ShapeKind 矢量图形类型
type ShapeKind int

const (
	// ShapeCircle 实心圆（以位置为圆心）
	ShapeCircle ShapeKind = iota
	// ShapeRect 矩形（以位置为中心）
	ShapeRect
)

// ShapeComponent 用矢量绘制的简单图形
// 用于合成闪光、结算遮罩与面板
type ShapeComponent struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle 使用
	Width  float64 // ShapeRect 使用
	Height float64 // ShapeRect 使用

	FillColor   color.RGBA
	StrokeColor color.RGBA
	StrokeWidth float64 // 0 表示无描边
}
