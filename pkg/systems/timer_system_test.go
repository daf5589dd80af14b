package systems

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
)

func TestTimerFiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTimerSystem(em)

	fired := 0
	id := entities.NewDelayedCall(em, "test", 1.0, func() { fired++ })

	system.Update(0.5)
	if fired != 0 {
		t.Fatal("未到时不应触发")
	}

	system.Update(0.5)
	if fired != 1 {
		t.Fatalf("到时应触发一次, got %d", fired)
	}
	if em.IsAlive(id) {
		t.Error("触发后计时器实体应被删除")
	}

	system.Update(1)
	if fired != 1 {
		t.Errorf("计时器只应触发一次, got %d", fired)
	}
}

func TestTimerOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTimerSystem(em)

	var order []string
	entities.NewDelayedCall(em, "a", 0.2, func() { order = append(order, "a") })
	entities.NewDelayedCall(em, "b", 0.1, func() { order = append(order, "b") })
	entities.NewDelayedCall(em, "c", 0.3, func() { order = append(order, "c") })

	system.Update(0.25)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("同帧到时的计时器应按创建顺序触发, got %v", order)
	}
}

func TestTimerWithoutCallback(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTimerSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TimerComponent{Name: "bare", TargetTime: 0.1})
	system.Update(0.2)

	timer, _ := ecs.GetComponent[*components.TimerComponent](em, id)
	if !timer.IsReady {
		t.Error("到时后应标记为完成")
	}
}
