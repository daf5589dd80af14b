package systems

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
)

func newTestAbilitySystem(w *testWorld) *AbilitySystem {
	spawner := newTestSpawnSystem(w, 1)
	return NewAbilitySystem(w.em, w.session, spawner, w.physics, w.sounds, w.cfg)
}

func TestAbilityInitialState(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)

	state := as.State()
	if state.Mode != components.AbilityModeNone {
		t.Errorf("初始模式 = %v, want none", state.Mode)
	}
	if state.ExplodeCharges != 3 || state.GrandmaCharges != 3 {
		t.Errorf("初始次数 = %d/%d, want 3/3", state.ExplodeCharges, state.GrandmaCharges)
	}
}

func TestToggleExplode(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)

	if !as.ToggleExplode() || as.Mode() != components.AbilityModeExplode {
		t.Fatalf("第一次切换应进入爆炸模式, got %v", as.Mode())
	}
	if !as.ToggleExplode() || as.Mode() != components.AbilityModeNone {
		t.Fatalf("第二次切换应回到普通模式, got %v", as.Mode())
	}
	if as.State().ExplodeCharges != 3 {
		t.Error("切换模式不消耗次数")
	}

	as.State().ExplodeCharges = 0
	if as.ToggleExplode() {
		t.Error("次数为 0 时不应切换")
	}

	as.State().ExplodeCharges = 1
	w.session.EndGame()
	if as.ToggleExplode() {
		t.Error("游戏结束后不应切换")
	}
}

func TestExplodeTargetReach(t *testing.T) {
	tests := []struct {
		name    string
		offsetX float64
		wantHit bool
	}{
		{"中心", 0, true},
		{"半径内", 20, true},
		{"容差内", 41, true},
		{"恰好在边界", 42, false},
		{"超出", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			as := newTestAbilitySystem(w)
			id := w.addFruit(t, types.TierCherry, 200, 300, 0)

			as.ToggleExplode()
			consumed := as.HandlePointerDown(200+tt.offsetX, 300)
			if !consumed {
				t.Fatal("爆炸模式下的点击应被消费")
			}
			if as.Mode() != components.AbilityModeNone {
				t.Errorf("点击后应回到普通模式, got %v", as.Mode())
			}

			state := as.State()
			exploding := w.fruit(t, id).IsExploding
			if tt.wantHit {
				if !exploding || state.ExplodeCharges != 2 {
					t.Errorf("命中: exploding=%v charges=%d", exploding, state.ExplodeCharges)
				}
				if w.sounds.count(game.SoundExplode) != 1 {
					t.Error("应播放爆炸音效")
				}
				return
			}
			if exploding || state.ExplodeCharges != 3 {
				t.Errorf("未命中时不应消耗次数: exploding=%v charges=%d", exploding, state.ExplodeCharges)
			}
		})
	}
}

func TestExplodeRemovesFruit(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	tweens := NewTweenSystem(w.em)
	ids := []ecs.EntityID{
		w.addFruit(t, types.TierCherry, 200, 300, 0),
		w.addFruit(t, types.TierCherry, 210, 300, 0),
	}
	far := w.addFruit(t, types.TierCherry, 400, 300, 0)

	as.ToggleExplode()
	as.HandlePointerDown(205, 300)

	// 多个水果都在范围内时选中哪一个不作约定，只要求恰好一个
	var hit, other ecs.EntityID
	exploding := 0
	for _, id := range ids {
		if w.fruit(t, id).IsExploding {
			hit = id
			exploding++
		} else {
			other = id
		}
	}
	if exploding != 1 {
		t.Fatalf("爆炸中的水果数 = %d, want 1", exploding)
	}
	if w.fruit(t, far).IsExploding {
		t.Error("范围外的水果不应被选中")
	}

	// 正在爆炸的水果不能再次成为目标
	target, ok := as.FindTarget(205, 300)
	if !ok || target != other {
		t.Errorf("FindTarget() = %d, %v, want %d", target, ok, other)
	}

	tweens.Update(w.cfg.Animation.ExplodeDuration + 0.01)
	if ecs.HasComponent[*components.FruitComponent](w.em, hit) {
		t.Error("爆炸动画结束后水果应被移除")
	}
	if w.physics.BodyCount() != 2 {
		t.Errorf("BodyCount() = %d, want 2", w.physics.BodyCount())
	}
	if as.State().ExplodeCharges != w.cfg.AbilityCharges-1 {
		t.Errorf("ExplodeCharges = %d, want %d", as.State().ExplodeCharges, w.cfg.AbilityCharges-1)
	}
}

func TestPointerRouting(t *testing.T) {
	explode := config.ExplodeIconBounds()
	grandma := config.GrandmaIconBounds()
	ex := float64(explode.Min.X+explode.Max.X) / 2
	ey := float64(explode.Min.Y+explode.Max.Y) / 2
	gx := float64(grandma.Min.X+grandma.Max.X) / 2
	gy := float64(grandma.Min.Y+grandma.Max.Y) / 2

	t.Run("点击爆炸图标", func(t *testing.T) {
		w := newTestWorld(t)
		as := newTestAbilitySystem(w)
		if !as.HandlePointerDown(ex, ey) {
			t.Error("图标点击应被消费")
		}
		if as.Mode() != components.AbilityModeExplode {
			t.Errorf("Mode = %v, want explode", as.Mode())
		}
	})

	t.Run("点击奶奶图标", func(t *testing.T) {
		w := newTestWorld(t)
		as := newTestAbilitySystem(w)
		if !as.HandlePointerDown(gx, gy) {
			t.Error("图标点击应被消费")
		}
		if as.State().GrandmaCharges != 2 {
			t.Errorf("GrandmaCharges = %d, want 2", as.State().GrandmaCharges)
		}
	})

	t.Run("普通模式点击空白", func(t *testing.T) {
		w := newTestWorld(t)
		as := newTestAbilitySystem(w)
		if as.HandlePointerDown(240, 400) {
			t.Error("普通模式点击空白处应交给生成逻辑")
		}
	})

	t.Run("次数用尽的图标仍消费点击", func(t *testing.T) {
		w := newTestWorld(t)
		as := newTestAbilitySystem(w)
		as.State().ExplodeCharges = 0
		if !as.HandlePointerDown(ex, ey) {
			t.Error("图标点击应被消费")
		}
		if as.Mode() != components.AbilityModeNone {
			t.Error("次数为 0 时不应进入爆炸模式")
		}
	})
}

func TestUseGrandma(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	timers := NewTimerSystem(w.em)

	if !as.UseGrandma() {
		t.Fatal("UseGrandma() = false")
	}
	if as.State().GrandmaCharges != 2 {
		t.Errorf("GrandmaCharges = %d, want 2", as.State().GrandmaCharges)
	}
	if as.Mode() != components.AbilityModeNone {
		t.Errorf("激活后应回到普通模式, got %v", as.Mode())
	}

	g := w.cfg.Grandma
	timers.Update(0)
	if n := len(w.activeFruits()); n != 1 {
		t.Fatalf("第一个樱桃应立即生成, got %d", n)
	}

	timers.Update(g.Delay * float64(g.Count))
	fruits := w.activeFruits()
	if len(fruits) != g.Count {
		t.Fatalf("应生成 %d 个樱桃, got %d", g.Count, len(fruits))
	}

	step := (config.GameWindowWidth - 2*g.Margin) / float64(g.Count-1)
	for i, id := range fruits {
		if tier := w.fruit(t, id).Tier; tier != types.TierCherry {
			t.Errorf("第 %d 个水果阶级 = %v", i, tier)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		wantX := g.Margin + step*float64(i)
		if !almostEqual(pos.X, wantX, 1e-6) || pos.Y != g.SpawnY {
			t.Errorf("第 %d 个樱桃位置 = (%v, %v), want (%v, %v)", i, pos.X, pos.Y, wantX, g.SpawnY)
		}
	}
}

func TestUseGrandmaStopsAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	timers := NewTimerSystem(w.em)

	as.UseGrandma()
	timers.Update(0)
	w.session.EndGame()
	timers.Update(10)

	if n := len(w.activeFruits()); n != 1 {
		t.Errorf("游戏结束后不应继续生成, got %d 个水果", n)
	}
}

func TestUseGrandmaNoCharges(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	as.State().GrandmaCharges = 0

	if as.UseGrandma() {
		t.Error("次数为 0 时不应激活")
	}
	if countEntitiesWith[*components.TimerComponent](w.em) != 0 {
		t.Error("不应创建生成计时器")
	}
}

func TestUpdateHighlight(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	near1 := w.addFruit(t, types.TierCherry, 200, 300, 0)
	near2 := w.addFruit(t, types.TierCherry, 230, 300, 0)
	far := w.addFruit(t, types.TierCherry, 400, 300, 0)

	// 普通模式不高亮
	as.UpdateHighlight(215, 300)
	if countEntitiesWith[*components.HoverHighlightComponent](w.em) != 0 {
		t.Fatal("普通模式不应高亮")
	}

	as.ToggleExplode()
	as.UpdateHighlight(215, 300)
	for _, id := range []ecs.EntityID{near1, near2} {
		h, ok := ecs.GetComponent[*components.HoverHighlightComponent](w.em, id)
		if !ok || h.Scale != w.cfg.Animation.HighlightScale {
			t.Errorf("实体 %d 应被高亮", id)
		}
	}
	if ecs.HasComponent[*components.HoverHighlightComponent](w.em, far) {
		t.Error("远处的水果不应被高亮")
	}
	if as.State().HighlightedFruit != near1 {
		t.Errorf("HighlightedFruit = %d, want %d", as.State().HighlightedFruit, near1)
	}

	// 指针移开后恢复
	as.UpdateHighlight(400, 300)
	if ecs.HasComponent[*components.HoverHighlightComponent](w.em, near1) {
		t.Error("移开后应取消高亮")
	}
	if !ecs.HasComponent[*components.HoverHighlightComponent](w.em, far) {
		t.Error("指针下的水果应被高亮")
	}

	as.ToggleExplode()
	if countEntitiesWith[*components.HoverHighlightComponent](w.em) != 0 {
		t.Error("退出爆炸模式后应清除高亮")
	}
}

func TestAbilityReset(t *testing.T) {
	w := newTestWorld(t)
	as := newTestAbilitySystem(w)
	as.State().ExplodeCharges = 0
	as.State().GrandmaCharges = 1
	as.State().Mode = components.AbilityModeExplode

	as.Reset()
	state := as.State()
	if state.Mode != components.AbilityModeNone || state.ExplodeCharges != 3 || state.GrandmaCharges != 3 {
		t.Errorf("Reset 后状态 = %+v", state)
	}
}

func TestIconAlpha(t *testing.T) {
	tests := []struct {
		name    string
		charges int
		want    float64
	}{
		{"有剩余", 3, IconAlphaAvailable},
		{"最后一次", 1, IconAlphaAvailable},
		{"用尽", 0, IconAlphaDepleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconAlpha(tt.charges); got != tt.want {
				t.Errorf("IconAlpha(%d) = %v, want %v", tt.charges, got, tt.want)
			}
		})
	}
}

func TestGlowAlpha(t *testing.T) {
	tests := []struct {
		name    string
		current components.AbilityMode
		own     components.AbilityMode
		want    float64
	}{
		{"爆炸模式下的爆炸图标", components.AbilityModeExplode, components.AbilityModeExplode, GlowAlphaActive},
		{"爆炸模式下的奶奶图标", components.AbilityModeExplode, components.AbilityModeGrandma, 0},
		{"普通模式", components.AbilityModeNone, components.AbilityModeNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlowAlpha(tt.current, tt.own); got != tt.want {
				t.Errorf("GlowAlpha() = %v, want %v", got, tt.want)
			}
		})
	}
}
