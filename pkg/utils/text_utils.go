package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// strokeOffsets 描边采样方向（8 邻域）
var strokeOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// TextStyle 文本绘制参数
type TextStyle struct {
	Color       color.RGBA
	StrokeColor color.RGBA
	StrokeWidth float64
	Scale       float64 // 0 视为 1
	Alpha       float64
	// AnchorX / AnchorY 锚点（0 = 左/上，0.5 = 居中，1 = 右/下）
	AnchorX, AnchorY float64
}

// ScaleAlpha 按不透明度缩放预乘颜色的所有通道
func ScaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawText 在 (x, y) 按锚点绘制文本，可选描边
// 缩放以锚点为中心
func DrawText(screen *ebiten.Image, face text.Face, str string, x, y float64, style TextStyle) {
	if face == nil || str == "" || style.Alpha <= 0 {
		return
	}
	scale := style.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := text.Measure(str, face, 0)

	draw := func(dx, dy float64, clr color.RGBA) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(-w*style.AnchorX+dx, -h*style.AnchorY+dy)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(Clamp01(style.Alpha)))
		text.Draw(screen, str, face, op)
	}

	if style.StrokeWidth > 0 {
		for _, o := range strokeOffsets {
			draw(o[0]*style.StrokeWidth, o[1]*style.StrokeWidth, style.StrokeColor)
		}
	}
	draw(0, 0, style.Color)
}
