package entities

import (
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// PhysicsWorld 物理世界中水果刚体的注册与注销
// 由 systems.PhysicsSystem 实现
type PhysicsWorld interface {
	// AddCircle 在 (x, y) 创建圆形刚体，并登记刚体 → 实体映射
	AddCircle(owner ecs.EntityID, x, y, radius float64) (*cp.Body, *cp.Shape)

	// RemoveBody 从物理世界移除刚体与形状，并删除映射
	RemoveBody(body *cp.Body, shape *cp.Shape)
}

// FruitImageSource 提供水果图片
// 由 game.ResourceManager 实现；测试中可传 nil（不绘制）
type FruitImageSource interface {
	GetFruitImage(tier types.FruitTier) *ebiten.Image
}
