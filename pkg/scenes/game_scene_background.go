package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundIDs 可随机选用的背景图片
var backgroundIDs = []string{"bg_1", "bg_2", "bg_3"}

// backgroundFill 背景缺失时的底色 (#222)
var backgroundFill = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// placeholderGradients 背景图片缺失时按 ID 使用的上下渐变色
var placeholderGradients = map[string][2]color.RGBA{
	"bg_1": {{R: 0x1e, G: 0x2a, B: 0x4a, A: 0xff}, {R: 0x3a, G: 0x1e, B: 0x4a, A: 0xff}},
	"bg_2": {{R: 0x12, G: 0x3a, B: 0x3a, A: 0xff}, {R: 0x1e, G: 0x4a, B: 0x2a, A: 0xff}},
	"bg_3": {{R: 0x4a, G: 0x2a, B: 0x1e, A: 0xff}, {R: 0x2a, G: 0x1e, B: 0x3a, A: 0xff}},
}

// gradientSteps 渐变占位图的高度（像素），绘制时拉伸到屏幕
const gradientSteps = 64

// pickBackground 随机选择本局背景
func (s *GameScene) pickBackground() {
	s.backgroundID = backgroundIDs[s.rng.Intn(len(backgroundIDs))]
	s.background = nil
	if s.resourceManager != nil {
		s.background = s.resourceManager.GetImageByID(s.backgroundID)
	}
	log.Printf("[GameScene] 背景: %s (图片=%v)", s.backgroundID, s.background != nil)
}

// drawBackground 将背景拉伸铺满屏幕
// 图片缺失时使用渐变占位
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	screen.Fill(backgroundFill)

	bg := s.background
	if bg == nil {
		bg = s.placeholderBackground()
	}
	if bg == nil {
		return
	}

	bounds := bg.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(s.width/float64(bounds.Dx()), s.height/float64(bounds.Dy()))
	screen.DrawImage(bg, op)
}

// placeholderBackground 返回当前背景 ID 对应的渐变图（按 ID 缓存）
func (s *GameScene) placeholderBackground() *ebiten.Image {
	if img, ok := s.placeholderCache[s.backgroundID]; ok {
		return img
	}
	colors, ok := placeholderGradients[s.backgroundID]
	if !ok {
		return nil
	}

	pixels := make([]byte, 0, gradientSteps*4)
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / float64(gradientSteps-1)
		pixels = append(pixels,
			lerpByte(colors[0].R, colors[1].R, t),
			lerpByte(colors[0].G, colors[1].G, t),
			lerpByte(colors[0].B, colors[1].B, t),
			0xff,
		)
	}
	img := ebiten.NewImage(1, gradientSteps)
	img.WritePixels(pixels)

	if s.placeholderCache == nil {
		s.placeholderCache = make(map[string]*ebiten.Image)
	}
	s.placeholderCache[s.backgroundID] = img
	return img
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
