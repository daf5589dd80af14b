package components

import "github.com/jakecoffman/cp"

// PhysicsBodyComponent 持有水果在物理世界中的刚体与圆形碰撞形状
// 刚体与视觉表现一一对应，由水果实体在整个生命周期内共同持有
type PhysicsBodyComponent struct {
	Body  *cp.Body
	Shape *cp.Shape

	// Radius 实际物理半径（已应用移动端缩放）
	Radius float64
}
