package scenes

import (
	"image/color"
	"strconv"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/systems"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudTextColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudStrokeColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

	// bombColor 爆炸图标缺失时的占位颜色
	bombColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

const (
	scoreStrokeWidth = 2.0
	countStrokeWidth = 1.5
	// abilityIconBackgroundAlpha 技能图标背景圆的不透明度
	abilityIconBackgroundAlpha = 0.7
	// countOffsetX / countOffsetY 剩余次数相对图标中心的偏移
	countOffsetX = 20.0
	countOffsetY = 12.0
)

// abilityIcon 一个技能图标的绘制参数
type abilityIcon struct {
	mode        components.AbilityMode
	x, y        float64
	imageID     string
	charges     int
	background  color.RGBA
	strokeColor color.RGBA
}

// drawHUD 绘制分数、下一个水果预览与技能图标
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	s.drawScore(screen)
	s.drawNextFruit(screen)

	state := s.abilitySystem.State()
	icons := []abilityIcon{
		{
			mode:        components.AbilityModeExplode,
			x:           config.ExplodeIconX,
			y:           config.ExplodeIconY,
			imageID:     "icon_explode",
			charges:     state.ExplodeCharges,
			background:  color.RGBA{R: 0x33, G: 0x33, B: 0x44, A: 0xff},
			strokeColor: color.RGBA{R: 0xff, G: 0xff, B: 0x66, A: 0xff},
		},
		{
			mode:        components.AbilityModeGrandma,
			x:           config.GrandmaIconX,
			y:           config.GrandmaIconY,
			imageID:     "icon_grandma",
			charges:     state.GrandmaCharges,
			background:  color.RGBA{R: 0x44, G: 0x33, B: 0x33, A: 0xff},
			strokeColor: color.RGBA{R: 0x66, G: 0xff, B: 0xcc, A: 0xff},
		},
	}
	for _, icon := range icons {
		s.drawAbilityIcon(screen, icon, state.Mode)
	}
}

func (s *GameScene) drawScore(screen *ebiten.Image) {
	if s.resourceManager == nil {
		return
	}
	utils.DrawText(screen, s.resourceManager.GetFont(config.ScoreFontSize, false), s.scoreLabel(),
		config.ScoreTextX, config.ScoreTextY, utils.TextStyle{
			Color:       hudTextColor,
			StrokeColor: hudStrokeColor,
			StrokeWidth: scoreStrokeWidth,
			Alpha:       1,
		})
}

// drawNextFruit 右上角的下一个水果预览
func (s *GameScene) drawNextFruit(screen *ebiten.Image) {
	if s.resourceManager == nil {
		return
	}
	cx, cy := config.NextFruitIconCenter(s.width)
	drawImageCentered(screen, s.resourceManager.GetFruitImage(s.spawnSystem.PreviewTier()),
		cx, cy, config.NextFruitIconSize, 1)
}

// drawAbilityIcon 背景圆、激活光晕、图标与剩余次数
// 次数用尽时整体变暗
func (s *GameScene) drawAbilityIcon(screen *ebiten.Image, icon abilityIcon, current components.AbilityMode) {
	alpha := systems.IconAlpha(icon.charges)
	x, y := float32(icon.x), float32(icon.y)

	vector.DrawFilledCircle(screen, x, y, config.AbilityIconRadius,
		utils.ScaleAlpha(icon.background, abilityIconBackgroundAlpha*alpha), true)
	vector.StrokeCircle(screen, x, y, config.AbilityIconRadius, 2, utils.ScaleAlpha(icon.strokeColor, alpha), true)

	img := s.abilityIconImage(icon.imageID)
	if glow := systems.GlowAlpha(current, icon.mode); glow > 0 {
		drawImageCentered(screen, img, icon.x, icon.y, config.AbilityGlowSize, glow*alpha)
	}
	if img != nil {
		drawImageCentered(screen, img, icon.x, icon.y, config.AbilityIconImageSize, alpha)
	} else {
		vector.DrawFilledCircle(screen, x, y, config.AbilityIconImageSize/2, utils.ScaleAlpha(bombColor, alpha), true)
	}

	if s.resourceManager == nil {
		return
	}
	utils.DrawText(screen, s.resourceManager.GetFont(config.AbilityCountFontSize, true), strconv.Itoa(icon.charges),
		icon.x+countOffsetX, icon.y+countOffsetY, utils.TextStyle{
			Color:       hudTextColor,
			StrokeColor: hudStrokeColor,
			StrokeWidth: countStrokeWidth,
			Alpha:       alpha,
			AnchorY:     0.5,
		})
}

// abilityIconImage 技能图标图片，奶奶图标缺失时使用樱桃
func (s *GameScene) abilityIconImage(id string) *ebiten.Image {
	if s.resourceManager == nil {
		return nil
	}
	if img := s.resourceManager.GetImageByID(id); img != nil {
		return img
	}
	if id == "icon_grandma" {
		return s.resourceManager.GetFruitImage(types.TierCherry)
	}
	return nil
}

// drawImageCentered 以 (cx, cy) 为中心，按边长 size 绘制图片
func drawImageCentered(screen, img *ebiten.Image, cx, cy, size, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}
