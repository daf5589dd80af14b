package systems

import (
	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
)

// LifetimeSystem 管理短暂实体的生命周期（如得分飘字）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体，过期后标记删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}
