package systems

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/types"
)

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSounds) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// testWorld 组装测试用的实体管理器、一局状态与物理世界
type testWorld struct {
	em      *ecs.EntityManager
	session *game.Session
	physics *PhysicsSystem
	cfg     *config.GameConfig
	sounds  *recordingSounds
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	physics := NewPhysicsSystem(em, cfg.Physics)
	physics.SetBounds(config.GameWindowWidth, config.GameWindowHeight)
	return &testWorld{
		em:      em,
		session: game.NewSession(),
		physics: physics,
		cfg:     cfg,
		sounds:  &recordingSounds{},
	}
}

// addFruit 直接创建一个水果（不播放出现动画）
func (w *testWorld) addFruit(t *testing.T, tier types.FruitTier, x, y float64, bornTick uint64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewFruitEntity(w.em, w.physics, nil, entities.FruitParams{
		X:        x,
		Y:        y,
		Tier:     tier,
		BornTick: bornTick,
	})
	if err != nil {
		t.Fatalf("NewFruitEntity failed: %v", err)
	}
	return id
}

// activeFruits 返回仍属于活动水果集合的实体（按创建顺序）
func (w *testWorld) activeFruits() []ecs.EntityID {
	return ecs.SortEntities(ecs.GetEntitiesWith1[*components.FruitComponent](w.em))
}

func (w *testWorld) fruit(t *testing.T, id ecs.EntityID) *components.FruitComponent {
	t.Helper()
	fruit, ok := ecs.GetComponent[*components.FruitComponent](w.em, id)
	if !ok {
		t.Fatalf("实体 %d 缺少 FruitComponent", id)
	}
	return fruit
}

func countEntitiesWith[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if em.IsAlive(id) {
			n++
		}
	}
	return n
}

func almostEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
