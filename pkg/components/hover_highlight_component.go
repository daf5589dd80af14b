package components

import "image/color"

// HoverHighlightComponent 悬停高亮组件
// 爆炸瞄准模式下指针附近的水果被放大并染色（不闪烁）
type HoverHighlightComponent struct {
	// Scale 高亮时的额外缩放（与 ScaleComponent 相乘）
	Scale float64

	// Tint 染色（乘法混合）
	Tint color.RGBA

	// IsActive 是否激活
	IsActive bool
}
