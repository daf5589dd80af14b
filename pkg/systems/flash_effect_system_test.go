package systems

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
)

func TestFlashEffectFade(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashEffectSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.OpacityComponent{Alpha: 0.8})
	em.AddComponent(id, &components.FlashEffectComponent{Duration: 0.2, Intensity: 0.8, IsActive: true})

	tests := []struct {
		name      string
		dt        float64
		wantAlpha float64
		wantAlive bool
	}{
		{"开始", 0.05, 0.6, true},
		{"一半", 0.05, 0.4, true},
		{"结束", 0.1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system.Update(tt.dt)
			opacity, _ := ecs.GetComponent[*components.OpacityComponent](em, id)
			if !almostEqual(opacity.Alpha, tt.wantAlpha, 1e-9) {
				t.Errorf("Alpha = %v, want %v", opacity.Alpha, tt.wantAlpha)
			}
			if em.IsAlive(id) != tt.wantAlive {
				t.Errorf("IsAlive = %v, want %v", em.IsAlive(id), tt.wantAlive)
			}
		})
	}
}

func TestFlashEffectInactive(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashEffectSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.OpacityComponent{Alpha: 1})
	em.AddComponent(id, &components.FlashEffectComponent{Duration: 0.2, Intensity: 1})

	system.Update(1)
	opacity, _ := ecs.GetComponent[*components.OpacityComponent](em, id)
	if opacity.Alpha != 1 || !em.IsAlive(id) {
		t.Error("未激活的闪光不应被处理")
	}
}
