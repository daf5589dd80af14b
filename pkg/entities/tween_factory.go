package entities

import (
	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
)

// NewTween 创建补间动画实体
// 动画在下一次 TweenSystem.Update 时开始推进
func NewTween(em *ecs.EntityManager, tween components.TweenComponent) ecs.EntityID {
	entityID := em.CreateEntity()
	t := tween
	em.AddComponent(entityID, &t)
	return entityID
}

// NewDelayedCall 创建延迟调用实体
// delay 秒后由 TimerSystem 调用 fn 一次
func NewDelayedCall(em *ecs.EntityManager, name string, delay float64, fn func()) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TimerComponent{
		Name:       name,
		TargetTime: delay,
		OnFire:     fn,
	})
	return entityID
}
