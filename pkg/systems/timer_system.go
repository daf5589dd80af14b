package systems

import (
	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
)

// TimerSystem 推进计时器并在到时后触发回调
// 每个计时器只触发一次，触发后计时器实体被删除
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{entityManager: em}
}

// Update 更新所有计时器
// 同一帧内到时的多个计时器按创建顺序触发
func (s *TimerSystem) Update(deltaTime float64) {
	entities := ecs.SortEntities(ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager))

	for _, id := range entities {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !ok || timer.IsReady {
			continue
		}

		timer.CurrentTime += deltaTime
		if timer.CurrentTime < timer.TargetTime {
			continue
		}

		timer.IsReady = true
		s.entityManager.DestroyEntity(id)
		if timer.OnFire != nil {
			timer.OnFire()
		}
	}
}
