package systems

import (
	"image"
	"sort"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FontProvider 提供指定字号的字体
// 由 game.ResourceManager 实现
type FontProvider interface {
	GetFont(size float64, bold bool) *text.GoTextFace
}

// RenderSystem 管理实体的渲染
//
// 职责范围：
//   - 水果精灵（位置、旋转、缩放、高亮染色）
//   - 矢量图形：合成闪光、结算遮罩与面板
//   - 文本：得分飘字、结算文字与按钮
//
// 实体按 DepthComponent 升序绘制，同层按创建顺序
type RenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         FontProvider
	drawList      []ecs.EntityID
}

// NewRenderSystem 创建一个新的渲染系统
// fonts 为 nil 时不绘制文本
func NewRenderSystem(em *ecs.EntityManager, fonts FontProvider) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		fonts:         fonts,
	}
}

// DrawLayer 绘制层级在 [minDepth, maxDepth) 内的实体
func (s *RenderSystem) DrawLayer(screen *ebiten.Image, minDepth, maxDepth int) {
	for _, id := range s.collect(minDepth, maxDepth) {
		s.drawEntity(screen, id)
	}
}

// collect 收集并排序指定层级范围内的实体
func (s *RenderSystem) collect(minDepth, maxDepth int) []ecs.EntityID {
	s.drawList = s.drawList[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.DepthComponent, *components.PositionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
		if depth.Depth >= minDepth && depth.Depth < maxDepth {
			s.drawList = append(s.drawList, id)
		}
	}

	sort.Slice(s.drawList, func(i, j int) bool {
		di, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, s.drawList[i])
		dj, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, s.drawList[j])
		if di.Depth != dj.Depth {
			return di.Depth < dj.Depth
		}
		return s.drawList[i] < s.drawList[j]
	})
	return s.drawList
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	scale := s.entityScale(id)
	alpha := s.entityAlpha(id)
	if alpha <= 0 || scale <= 0 {
		return
	}

	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
		drawShape(screen, shape, pos.X, pos.Y, scale, alpha)
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		s.drawSprite(screen, id, sprite, pos.X, pos.Y, scale, alpha)
	}
	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.drawText(screen, id, txt, pos.X, pos.Y, scale, alpha)
	}
}

func (s *RenderSystem) entityScale(id ecs.EntityID) float64 {
	scale := 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale = sc.ScaleX
	}
	return scale
}

func (s *RenderSystem) entityAlpha(id ecs.EntityID) float64 {
	if op, ok := ecs.GetComponent[*components.OpacityComponent](s.entityManager, id); ok {
		return op.Alpha
	}
	return 1
}

// drawSprite 以中心为锚点绘制精灵
// 显示尺寸 × 实体缩放 × 高亮缩放，旋转角度来自 RotationComponent
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID, sprite *components.SpriteComponent, x, y, scale, alpha float64) {
	if sprite.Image == nil {
		return
	}
	bounds := sprite.Image.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	sx := scale
	sy := scale
	if sprite.DisplayWidth > 0 {
		sx *= sprite.DisplayWidth / float64(bounds.Dx())
	}
	if sprite.DisplayHeight > 0 {
		sy *= sprite.DisplayHeight / float64(bounds.Dy())
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	highlight, highlighted := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
	if highlighted && highlight.IsActive && highlight.Scale > 0 {
		sx *= highlight.Scale
		sy *= highlight.Scale
	}

	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(sx, sy)
	if rot, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok {
		op.GeoM.Rotate(rot.Angle)
	}
	op.GeoM.Translate(x, y)

	if highlighted && highlight.IsActive {
		t := highlight.Tint
		op.ColorScale.Scale(float32(t.R)/255, float32(t.G)/255, float32(t.B)/255, 1)
	}
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))

	screen.DrawImage(sprite.Image, op)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, id ecs.EntityID, txt *components.TextComponent, x, y, scale, alpha float64) {
	if s.fonts == nil || txt.Text == "" {
		return
	}
	face := s.fonts.GetFont(txt.FontSize, txt.Bold)
	clr := txt.Color

	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
		bg := button.NormalBackground
		clr = button.NormalTextColor
		if button.IsHovered {
			bg = button.HoverBackground
			clr = button.HoverTextColor
		}
		r := ButtonBounds(face, txt.Text, x, y, button)
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
			utils.ScaleAlpha(bg, alpha), false)
	}

	utils.DrawText(screen, face, txt.Text, x, y, utils.TextStyle{
		Color:       clr,
		StrokeColor: txt.StrokeColor,
		StrokeWidth: txt.StrokeWidth,
		Scale:       scale,
		Alpha:       alpha,
		AnchorX:     0.5,
		AnchorY:     0.5,
	})
}

// drawShape 以中心为锚点绘制矢量图形
func drawShape(screen *ebiten.Image, shape *components.ShapeComponent, x, y, scale, alpha float64) {
	fill := utils.ScaleAlpha(shape.FillColor, alpha)
	stroke := utils.ScaleAlpha(shape.StrokeColor, alpha)

	switch shape.Kind {
	case components.ShapeCircle:
		r := float32(shape.Radius * scale)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, fill, true)
		if shape.StrokeWidth > 0 {
			vector.StrokeCircle(screen, float32(x), float32(y), r, float32(shape.StrokeWidth), stroke, true)
		}
	case components.ShapeRect:
		w := shape.Width * scale
		h := shape.Height * scale
		left := float32(x - w/2)
		top := float32(y - h/2)
		vector.DrawFilledRect(screen, left, top, float32(w), float32(h), fill, false)
		if shape.StrokeWidth > 0 {
			vector.StrokeRect(screen, left, top, float32(w), float32(h), float32(shape.StrokeWidth), stroke, false)
		}
	}
}

// ButtonBounds 计算按钮背景区域：文字尺寸加内边距，以 (x, y) 为中心
// face 为 nil 时按字号估算文字尺寸
func ButtonBounds(face *text.GoTextFace, label string, x, y float64, button *components.ButtonComponent) image.Rectangle {
	var w, h float64
	if face != nil {
		w, h = text.Measure(label, face, 0)
	} else {
		w, h = float64(len([]rune(label)))*16, 30
	}
	w += button.PaddingX * 2
	h += button.PaddingY * 2
	return image.Rect(int(x-w/2), int(y-h/2), int(x+w/2), int(y+h/2))
}

// UpdateButtonBounds 按当前文字重新计算所有按钮的点击区域
func (s *RenderSystem) UpdateButtonBounds() {
	for _, id := range ecs.GetEntitiesWith3[*components.ButtonComponent, *components.TextComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		var face *text.GoTextFace
		if s.fonts != nil {
			face = s.fonts.GetFont(txt.FontSize, txt.Bold)
		}
		button.Bounds = ButtonBounds(face, txt.Text, pos.X, pos.Y, button)
	}
}
