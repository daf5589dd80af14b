package components

import (
	"image"
	"image/color"
)

// UIComponent 标记实体为 UI 元素（结算面板等）
// 重新开始时与其他会话实体一起销毁
type UIComponent struct{}

// ButtonComponent 可点击按钮
// 与 TextComponent 搭配：按钮背景按文字尺寸加内边距绘制
type ButtonComponent struct {
	PaddingX float64
	PaddingY float64

	NormalBackground color.RGBA
	HoverBackground  color.RGBA
	NormalTextColor  color.RGBA
	HoverTextColor   color.RGBA

	// Bounds 点击区域（屏幕坐标），由渲染系统按实际文字尺寸回写
	Bounds image.Rectangle

	IsHovered bool
	OnClick   func()
}
