package components

import "image/color"

// TextComponent 文本实体（以位置为中心绘制）
type TextComponent struct {
	Text     string
	FontSize float64
	Bold     bool
	Color    color.RGBA

	// StrokeColor 描边颜色，StrokeWidth 为 0 时不描边
	StrokeColor color.RGBA
	StrokeWidth float64
}
