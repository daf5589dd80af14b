package components

// PositionComponent 实体在屏幕逻辑坐标中的位置
// 对于水果，这是物理刚体中心点的镜像（每帧由物理系统同步）
type PositionComponent struct {
	X float64
	Y float64
}

// RotationComponent 实体旋转角度（弧度）
type RotationComponent struct {
	Angle float64
}

// DepthComponent 渲染层级，数值越大越靠上
type DepthComponent struct {
	Depth int
}
