package entities

import (
	"image/color"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/utils"
)

// GameOverDialogCallback 游戏结束对话框的回调函数类型
type GameOverDialogCallback func()

// GameOverDialogTexts 结算面板上的本地化文本
type GameOverDialogTexts struct {
	Title   string // "Игра окончена"
	Score   string // "Счёт: 120"
	Restart string // "Рестарт"
}

// GameOverDialog 结算面板包含的实体
type GameOverDialog struct {
	Overlay ecs.EntityID
	Panel   ecs.EntityID
	Title   ecs.EntityID
	Score   ecs.EntityID
	Button  ecs.EntityID
}

var (
	overlayColor      = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	panelColor        = color.RGBA{R: 0x22, G: 0x22, B: 0x44, A: 0xff}
	panelStrokeColor  = color.RGBA{R: 0xff, G: 0xff, B: 0x99, A: 0xff}
	titleStrokeColor  = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	scoreStrokeColor  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	buttonNormalBG    = color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}
	buttonHoverBG     = color.RGBA{R: 0xff, G: 0xf0, B: 0x66, A: 0xff}
	buttonNormalText  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	buttonHoverText   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	panelTextColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayAlpha      = 0.7
	panelAlpha        = 0.95
	panelInitialScale = 0.7
)

// 标题与按钮相对面板中心的纵向偏移
const (
	titleOffsetY  = -60.0
	buttonOffsetY = 70.0
)

// NewGameOverDialog 创建游戏结束遮罩与面板
// 面板从 0.7 倍弹出到原始大小，标题、分数与按钮依次淡入
//
// 参数：
//   - em: 实体管理器
//   - width, height: 当前逻辑屏幕尺寸
//   - texts: 本地化文本
//   - anim: 动画参数
//   - onRestart: "重新开始"按钮回调
//
// 返回：
//   - GameOverDialog: 面板各部分的实体ID
func NewGameOverDialog(
	em *ecs.EntityManager,
	width, height float64,
	texts GameOverDialogTexts,
	anim config.AnimationConfig,
	onRestart GameOverDialogCallback,
) GameOverDialog {
	cx, cy := width/2, height/2
	var d GameOverDialog

	// 半透明遮罩
	d.Overlay = em.CreateEntity()
	em.AddComponent(d.Overlay, &components.UIComponent{})
	em.AddComponent(d.Overlay, &components.PositionComponent{X: cx, Y: cy})
	em.AddComponent(d.Overlay, &components.ShapeComponent{
		Kind:      components.ShapeRect,
		Width:     width,
		Height:    height,
		FillColor: overlayColor,
	})
	em.AddComponent(d.Overlay, &components.OpacityComponent{Alpha: overlayAlpha})
	em.AddComponent(d.Overlay, &components.DepthComponent{Depth: config.DepthOverlay})

	// 面板
	d.Panel = em.CreateEntity()
	em.AddComponent(d.Panel, &components.UIComponent{})
	em.AddComponent(d.Panel, &components.PositionComponent{X: cx, Y: cy})
	em.AddComponent(d.Panel, &components.ShapeComponent{
		Kind:        components.ShapeRect,
		Width:       config.GameOverPanelWidth,
		Height:      config.GameOverPanelHeight,
		FillColor:   panelColor,
		StrokeColor: panelStrokeColor,
		StrokeWidth: 4,
	})
	em.AddComponent(d.Panel, &components.ScaleComponent{ScaleX: panelInitialScale, ScaleY: panelInitialScale})
	em.AddComponent(d.Panel, &components.OpacityComponent{Alpha: panelAlpha})
	em.AddComponent(d.Panel, &components.DepthComponent{Depth: config.DepthPanel})

	NewTween(em, components.TweenComponent{
		Targets:  []ecs.EntityID{d.Panel},
		Duration: anim.PanelDuration,
		Easing:   utils.EaseOutBack,
		Tracks:   []components.TweenTrack{{Property: components.TweenScale, From: panelInitialScale, To: 1}},
	})

	d.Title = newPanelText(em, cx, cy+titleOffsetY, &components.TextComponent{
		Text:        texts.Title,
		FontSize:    config.GameOverTitleFontSize,
		Bold:        true,
		Color:       panelTextColor,
		StrokeColor: titleStrokeColor,
		StrokeWidth: 4,
	})
	d.Score = newPanelText(em, cx, cy, &components.TextComponent{
		Text:        texts.Score,
		FontSize:    config.GameOverScoreFontSize,
		Bold:        true,
		Color:       panelTextColor,
		StrokeColor: scoreStrokeColor,
		StrokeWidth: 3,
	})
	d.Button = newPanelText(em, cx, cy+buttonOffsetY, &components.TextComponent{
		Text:     texts.Restart,
		FontSize: config.RestartButtonFontSize,
		Bold:     true,
		Color:    buttonNormalText,
	})
	em.AddComponent(d.Button, &components.ButtonComponent{
		PaddingX:         config.RestartButtonPaddingX,
		PaddingY:         config.RestartButtonPaddingY,
		NormalBackground: buttonNormalBG,
		HoverBackground:  buttonHoverBG,
		NormalTextColor:  buttonNormalText,
		HoverTextColor:   buttonHoverText,
		OnClick:          onRestart,
	})

	// 依次淡入
	for i, id := range []ecs.EntityID{d.Title, d.Score, d.Button} {
		NewTween(em, components.TweenComponent{
			Targets:  []ecs.EntityID{id},
			Duration: anim.FadeDuration,
			Delay:    anim.FadeStagger * float64(i),
			Tracks:   []components.TweenTrack{{Property: components.TweenAlpha, From: 0, To: 1}},
		})
	}

	return d
}

func newPanelText(em *ecs.EntityManager, x, y float64, text *components.TextComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.UIComponent{})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, text)
	em.AddComponent(id, &components.OpacityComponent{Alpha: 0})
	em.AddComponent(id, &components.DepthComponent{Depth: config.DepthPanelText})
	return id
}

// LayoutGameOverDialog 屏幕尺寸变化后重新居中结算面板
func LayoutGameOverDialog(em *ecs.EntityManager, d GameOverDialog, width, height float64) {
	cx, cy := width/2, height/2
	if shape, ok := ecs.GetComponent[*components.ShapeComponent](em, d.Overlay); ok {
		shape.Width, shape.Height = width, height
	}
	offsets := []struct {
		id ecs.EntityID
		dy float64
	}{
		{d.Overlay, 0},
		{d.Panel, 0},
		{d.Title, titleOffsetY},
		{d.Score, 0},
		{d.Button, buttonOffsetY},
	}
	for _, o := range offsets {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, o.id); ok {
			pos.X, pos.Y = cx, cy+o.dy
		}
	}
}
