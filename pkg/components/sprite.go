package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// DisplayWidth/DisplayHeight 为未缩放时的显示尺寸，渲染时按图片实际尺寸换算
type SpriteComponent struct {
	Image         *ebiten.Image
	DisplayWidth  float64
	DisplayHeight float64
}
