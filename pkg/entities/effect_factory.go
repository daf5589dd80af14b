package entities

import (
	"image/color"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/utils"
)

var (
	// mergeFlashColor 合成闪光颜色
	mergeFlashColor = color.RGBA{R: 0xff, G: 0xff, B: 0x99, A: 0xff}
	// popupTextColor 得分飘字颜色
	popupTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// NewMergeFlash 在合成点创建闪光效果
// 圆形闪光的不透明度由 FlashEffectSystem 从 FlashAlpha 衰减到 0，结束后自动删除
func NewMergeFlash(em *ecs.EntityManager, x, y float64, anim config.AnimationConfig) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.ShapeComponent{
		Kind:      components.ShapeCircle,
		Radius:    anim.FlashRadius,
		FillColor: mergeFlashColor,
	})
	em.AddComponent(entityID, &components.OpacityComponent{Alpha: anim.FlashAlpha})
	em.AddComponent(entityID, &components.DepthComponent{Depth: config.DepthEffect})
	em.AddComponent(entityID, &components.FlashEffectComponent{
		Duration:  anim.FlashDuration,
		Intensity: anim.FlashAlpha,
		IsActive:  true,
	})

	return entityID
}

// NewScorePopup 创建得分飘字
// 文字上升 PopupRise 像素、放大到 PopupScale 并淡出，生命周期结束后删除
//
// 参数:
//   - em: 实体管理器
//   - x, y: 飘字初始中心位置
//   - label: 显示文本（如 "+10"）
//   - anim: 动画参数
//
// 返回:
//   - ecs.EntityID: 飘字实体ID
func NewScorePopup(em *ecs.EntityManager, x, y float64, label string, anim config.AnimationConfig) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.TextComponent{
		Text:     label,
		FontSize: config.PopupFontSize,
		Bold:     true,
		Color:    popupTextColor,
	})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(entityID, &components.OpacityComponent{Alpha: 1})
	em.AddComponent(entityID, &components.DepthComponent{Depth: config.DepthEffect})
	em.AddComponent(entityID, &components.LifetimeComponent{MaxLifetime: anim.PopupDuration})

	NewTween(em, components.TweenComponent{
		Targets:  []ecs.EntityID{entityID},
		Duration: anim.PopupDuration,
		Easing:   utils.EaseOutCubic,
		Tracks: []components.TweenTrack{
			{Property: components.TweenPositionY, From: y, To: y - anim.PopupRise},
			{Property: components.TweenScale, From: 1, To: anim.PopupScale},
			{Property: components.TweenAlpha, From: 1, To: 0},
		},
	})

	return entityID
}
