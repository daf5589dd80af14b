package components

// FlashEffectComponent 闪光效果组件
// 用于合成点的短暂闪光：不透明度从 Intensity 线性衰减到 0，结束后销毁实体
type FlashEffectComponent struct {
	// Duration 闪光持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 初始不透明度（0.0 - 1.0）
	Intensity float64

	// IsActive 是否激活（用于临时禁用效果）
	IsActive bool
}
