package systems

import (
	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
)

// FlashEffectSystem 闪光效果系统
// 线性降低闪光实体的不透明度，持续时间结束后删除实体
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪光效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪光效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		alpha := 0.0
		if flashComp.Duration > 0 && flashComp.Elapsed < flashComp.Duration {
			alpha = flashComp.Intensity * (1 - flashComp.Elapsed/flashComp.Duration)
		}
		if opacity, ok := ecs.GetComponent[*components.OpacityComponent](s.entityManager, entity); ok {
			opacity.Alpha = alpha
		}

		if flashComp.Elapsed >= flashComp.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, entity)
			s.entityManager.DestroyEntity(entity)
		}
	}
}
