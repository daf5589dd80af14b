package components

// ScaleComponent 存储实体级别的缩放因子
// 由补间动画驱动（出现、挤压、消失），与高亮缩放相乘
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}

// OpacityComponent 实体不透明度（0.0 完全透明 ~ 1.0 不透明）
type OpacityComponent struct {
	Alpha float64
}
