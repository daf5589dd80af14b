package systems

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
)

func TestGameOverBoundary(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"越过顶部", -1, true},
		{"恰好在边界", 0, false},
		{"容器内", 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			system := NewGameOverSystem(w.em, w.session, w.sounds, w.cfg.TopBoundaryY)
			w.addFruit(t, types.TierCherry, 200, tt.y, 0)

			if got := system.Update(); got != tt.want {
				t.Fatalf("Update() = %v, want %v", got, tt.want)
			}
			if w.session.IsGameOver != tt.want {
				t.Errorf("IsGameOver = %v, want %v", w.session.IsGameOver, tt.want)
			}
		})
	}
}

func TestGameOverTriggersOnce(t *testing.T) {
	w := newTestWorld(t)
	system := NewGameOverSystem(w.em, w.session, w.sounds, 0)
	w.addFruit(t, types.TierCherry, 200, -50, 0)
	w.addFruit(t, types.TierLemon, 300, -80, 0)

	if !system.Update() {
		t.Fatal("第一次扫描应触发结束")
	}
	if system.Update() {
		t.Error("已结束时不应再次触发")
	}
	if w.sounds.count(game.SoundGameOver) != 1 {
		t.Errorf("结束音效次数 = %d, want 1", w.sounds.count(game.SoundGameOver))
	}
}

func TestGameOverEmptyContainer(t *testing.T) {
	w := newTestWorld(t)
	system := NewGameOverSystem(w.em, w.session, nil, 0)
	if system.Update() {
		t.Error("没有水果时不应结束")
	}
}
