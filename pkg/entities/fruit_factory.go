package entities

import (
	"fmt"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// FruitParams 创建水果所需的参数
type FruitParams struct {
	X, Y float64
	Tier types.FruitTier

	// BornTick 创建时的逻辑帧序号
	BornTick uint64

	// Scale 尺寸缩放（移动端 0.7），物理半径与显示尺寸同时缩放
	// 0 视为 1
	Scale float64
}

// NewFruitEntity 创建水果实体
// 在物理世界注册圆形刚体，并挂载水果、位置、精灵等组件
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界
//   - images: 图片来源，可为 nil
//   - p: 创建参数
//
// 返回:
//   - ecs.EntityID: 创建的水果实体ID
//   - error: 阶级非法时返回错误
func NewFruitEntity(em *ecs.EntityManager, world PhysicsWorld, images FruitImageSource, p FruitParams) (ecs.EntityID, error) {
	if !p.Tier.IsValid() {
		return 0, fmt.Errorf("invalid fruit tier: %d", int(p.Tier))
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	radius := p.Tier.Radius() * scale

	entityID := em.CreateEntity()
	body, shape := world.AddCircle(entityID, p.X, p.Y, radius)

	em.AddComponent(entityID, &components.FruitComponent{
		Tier:     p.Tier,
		BornTick: p.BornTick,
	})
	em.AddComponent(entityID, &components.PhysicsBodyComponent{
		Body:   body,
		Shape:  shape,
		Radius: radius,
	})
	em.AddComponent(entityID, &components.PositionComponent{X: p.X, Y: p.Y})
	em.AddComponent(entityID, &components.RotationComponent{})

	var img *ebiten.Image
	if images != nil {
		img = images.GetFruitImage(p.Tier)
	}
	em.AddComponent(entityID, &components.SpriteComponent{
		Image:         img,
		DisplayWidth:  radius * 2,
		DisplayHeight: radius * 2,
	})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(entityID, &components.OpacityComponent{Alpha: 1})
	em.AddComponent(entityID, &components.DepthComponent{Depth: config.DepthFruit})

	return entityID, nil
}

// DestroyFruit 销毁水果
// 立即从物理世界移除刚体并摘除水果组件（不再属于活动水果集合），
// 实体本身在帧末清理。对已销毁的实体调用返回 false 且无副作用
func DestroyFruit(em *ecs.EntityManager, world PhysicsWorld, id ecs.EntityID) bool {
	if !ecs.HasComponent[*components.FruitComponent](em, id) {
		return false
	}

	if phys, ok := ecs.GetComponent[*components.PhysicsBodyComponent](em, id); ok {
		world.RemoveBody(phys.Body, phys.Shape)
	}
	ecs.RemoveComponent[*components.PhysicsBodyComponent](em, id)
	ecs.RemoveComponent[*components.FruitComponent](em, id)
	ecs.RemoveComponent[*components.SpriteComponent](em, id)
	em.DestroyEntity(id)
	return true
}

// DestroyAllFruits 销毁所有水果，返回销毁数量
func DestroyAllFruits(em *ecs.EntityManager, world PhysicsWorld) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.FruitComponent](em) {
		if DestroyFruit(em, world, id) {
			count++
		}
	}
	return count
}

// FruitScale 根据平台返回水果尺寸缩放
func FruitScale(isMobile bool, mobileScale float64) float64 {
	if isMobile && mobileScale > 0 {
		return mobileScale
	}
	return 1
}
