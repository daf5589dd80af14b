package game

import (
	"image/color"

	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlaceholderSize 占位图边长：32 + 16 × rank
func PlaceholderSize(tier types.FruitTier) int {
	return 32 + 16*tier.Rank()
}

// PlaceholderColor 占位图颜色：0xff0000 − rank·0x330000 + rank·0x003300
// 结果按 24 位截断，高阶水果会绕回到其他色相
func PlaceholderColor(tier types.FruitTier) color.RGBA {
	rank := int64(tier.Rank())
	v := (0xff0000 - rank*0x330000 + rank*0x003300) & 0xffffff
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

// NewFruitPlaceholder 生成水果占位图（实心圆）
func NewFruitPlaceholder(tier types.FruitTier) *ebiten.Image {
	size := PlaceholderSize(tier)
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.DrawFilledCircle(img, half, half, half, PlaceholderColor(tier), true)
	return img
}
