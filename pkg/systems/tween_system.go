package systems

import (
	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/utils"
)

// TweenSystem 推进补间动画
// 每帧按缓动后的进度写入目标实体的缩放、不透明度或 Y 坐标；
// 动画结束时写入终值、删除动画实体，然后调用 OnComplete
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间动画系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有补间动画
// 回调中新建的动画从下一帧开始推进
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.SortEntities(ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager))

	for _, id := range entities {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		tween, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		if !ok || tween.IsCompleted {
			continue
		}

		tween.Elapsed += deltaTime
		local := tween.Elapsed - tween.Delay
		if local < 0 {
			continue
		}

		if local >= tween.TotalDuration() {
			s.apply(tween, tweenProgress(tween, tween.TotalDuration()))
			tween.IsCompleted = true
			s.entityManager.DestroyEntity(id)
			if tween.OnComplete != nil {
				tween.OnComplete()
			}
			continue
		}

		s.apply(tween, tweenProgress(tween, local))
	}
}

// tweenProgress 计算缓动后的进度（0 = From，1 = To）
// 往返动画在后半程反向
func tweenProgress(tween *components.TweenComponent, local float64) float64 {
	if tween.Duration <= 0 {
		if tween.Yoyo {
			return 0
		}
		return 1
	}

	p := local / tween.Duration
	if tween.Yoyo && p > 1 {
		p = 2 - p
	}
	p = utils.Clamp01(p)

	if tween.Easing != nil {
		return tween.Easing(p)
	}
	return p
}

func (s *TweenSystem) apply(tween *components.TweenComponent, progress float64) {
	for _, target := range tween.Targets {
		if !s.entityManager.IsAlive(target) {
			continue
		}
		for _, track := range tween.Tracks {
			value := utils.Lerp(track.From, track.To, progress)
			s.applyTrack(target, track.Property, value)
		}
	}
}

func (s *TweenSystem) applyTrack(target ecs.EntityID, property components.TweenProperty, value float64) {
	switch property {
	case components.TweenScale:
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, target); ok {
			scale.ScaleX, scale.ScaleY = value, value
		}
	case components.TweenAlpha:
		if opacity, ok := ecs.GetComponent[*components.OpacityComponent](s.entityManager, target); ok {
			opacity.Alpha = utils.Clamp01(value)
		}
	case components.TweenPositionY:
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, target); ok {
			pos.Y = value
		}
	}
}
