package systems

import (
	"log"
	"math"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeFruit
)

// physicsSubsteps 每次 Step 拆分的子步数
const physicsSubsteps = 2

// CollisionPair 一次碰撞开始事件中的两个刚体
type CollisionPair struct {
	A, B *cp.Body
}

// PhysicsSystem 管理物理世界
// 负责容器边界、水果刚体注册，以及把刚体状态同步到视觉组件。
//
// 碰撞开始回调在 Space.Step 内触发，只追加到本帧的碰撞批次中；
// 合成判定在 Step 返回后进行，保证不会在空间锁定时移除刚体。
type PhysicsSystem struct {
	em  *ecs.EntityManager
	cfg config.PhysicsConfig

	space  *cp.Space
	owners map[*cp.Body]ecs.EntityID
	walls  []*cp.Shape
	batch  []CollisionPair

	width, height float64
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 物理参数
//
// 返回:
//   - *PhysicsSystem: 物理系统实例（尚无边界，需调用 SetBounds）
func NewPhysicsSystem(em *ecs.EntityManager, cfg config.PhysicsConfig) *PhysicsSystem {
	ps := &PhysicsSystem{
		em:     em,
		cfg:    cfg,
		space:  cp.NewSpace(),
		owners: make(map[*cp.Body]ecs.EntityID),
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	handler := ps.space.NewCollisionHandler(collisionTypeFruit, collisionTypeFruit)
	handler.BeginFunc = ps.onCollisionBegin

	return ps
}

func (ps *PhysicsSystem) onCollisionBegin(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	a, b := arb.Bodies()
	ps.batch = append(ps.batch, CollisionPair{A: a, B: b})
	return true
}

// SetBounds 按屏幕尺寸重建容器：左右墙与底部平台
// 墙体内侧分别位于 x = 0 与 x = width，平台上表面位于 height - FloorHeight，
// 顶部开放
func (ps *PhysicsSystem) SetBounds(width, height float64) {
	ps.clearWalls()
	ps.width, ps.height = width, height

	t := ps.cfg.WallThickness
	half := t / 2
	floorY := height - ps.cfg.FloorHeight + half
	top := -height

	static := ps.space.StaticBody
	ps.addWall(cp.NewSegment(static, cp.Vector{X: -half, Y: top}, cp.Vector{X: -half, Y: floorY}, half))
	ps.addWall(cp.NewSegment(static, cp.Vector{X: width + half, Y: top}, cp.Vector{X: width + half, Y: floorY}, half))
	ps.addWall(cp.NewSegment(static, cp.Vector{X: -t, Y: floorY}, cp.Vector{X: width + t, Y: floorY}, half))

	log.Printf("[PhysicsSystem] 容器边界: %.0fx%.0f", width, height)
}

func (ps *PhysicsSystem) addWall(shape *cp.Shape) {
	shape.SetElasticity(ps.cfg.Elasticity)
	shape.SetFriction(ps.cfg.Friction)
	shape.SetCollisionType(collisionTypeWall)
	ps.space.AddShape(shape)
	ps.walls = append(ps.walls, shape)
}

func (ps *PhysicsSystem) clearWalls() {
	for _, w := range ps.walls {
		ps.space.RemoveShape(w)
	}
	ps.walls = ps.walls[:0]
}

// Bounds 返回当前容器尺寸
func (ps *PhysicsSystem) Bounds() (float64, float64) {
	return ps.width, ps.height
}

// AddCircle 在 (x, y) 创建圆形动态刚体，并登记刚体 → 实体映射
// 质量 = 密度 × 面积
func (ps *PhysicsSystem) AddCircle(owner ecs.EntityID, x, y, radius float64) (*cp.Body, *cp.Shape) {
	mass := ps.cfg.Density * math.Pi * radius * radius
	if mass <= 0 {
		mass = 1
	}
	body := ps.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := ps.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetElasticity(ps.cfg.Elasticity)
	shape.SetFriction(ps.cfg.Friction)
	shape.SetCollisionType(collisionTypeFruit)

	ps.owners[body] = owner
	return body, shape
}

// RemoveBody 从物理世界移除刚体与形状，并删除映射
// 重复移除是安全的
func (ps *PhysicsSystem) RemoveBody(body *cp.Body, shape *cp.Shape) {
	if body == nil {
		return
	}
	if _, ok := ps.owners[body]; !ok {
		return
	}
	delete(ps.owners, body)
	if shape != nil {
		ps.space.RemoveShape(shape)
	}
	ps.space.RemoveBody(body)
}

// EntityForBody 根据刚体查找所属实体（墙体等返回 false）
func (ps *PhysicsSystem) EntityForBody(body *cp.Body) (ecs.EntityID, bool) {
	id, ok := ps.owners[body]
	return id, ok
}

// BodyCount 返回已登记的动态刚体数量
func (ps *PhysicsSystem) BodyCount() int {
	return len(ps.owners)
}

// Step 推进物理世界，返回本次步进中产生的碰撞开始事件
// 返回的切片在下一次 Step 前有效
func (ps *PhysicsSystem) Step(dt float64) []CollisionPair {
	ps.batch = ps.batch[:0]
	if dt <= 0 {
		return ps.batch
	}
	sub := dt / physicsSubsteps
	for i := 0; i < physicsSubsteps; i++ {
		ps.space.Step(sub)
	}
	return ps.batch
}

// Sync 把刚体位置与角度复制到实体的视觉组件
// 物理只驱动视觉，反向不写回；对已销毁的实体调用无副作用
func (ps *PhysicsSystem) Sync(id ecs.EntityID) {
	phys, ok := ecs.GetComponent[*components.PhysicsBodyComponent](ps.em, id)
	if !ok || phys.Body == nil {
		return
	}
	p := phys.Body.Position()
	if pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id); ok {
		pos.X, pos.Y = p.X, p.Y
	}
	if rot, ok := ecs.GetComponent[*components.RotationComponent](ps.em, id); ok {
		rot.Angle = phys.Body.Angle()
	}
}

// SyncAll 同步所有带刚体的实体
func (ps *PhysicsSystem) SyncAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.PhysicsBodyComponent](ps.em) {
		ps.Sync(id)
	}
}
