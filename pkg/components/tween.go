package components

import "github.com/decker502/fruitmerge/pkg/ecs"

// TweenProperty 补间动画作用的属性
type TweenProperty int

const (
	// TweenScale 作用于目标的 ScaleComponent（X、Y 同步）
	TweenScale TweenProperty = iota
	// TweenAlpha 作用于目标的 OpacityComponent
	TweenAlpha
	// TweenPositionY 作用于目标的 PositionComponent.Y
	TweenPositionY
)

// TweenTrack 单个属性的起止值
type TweenTrack struct {
	Property TweenProperty
	From     float64
	To       float64
}

// TweenComponent 补间动画
// 挂载在独立的动画实体上，可同时驱动多个目标实体；
// 目标实体被销毁后对应部分静默跳过
type TweenComponent struct {
	Targets []ecs.EntityID
	Tracks  []TweenTrack

	// Duration 单程时长（秒）
	Duration float64
	// Delay 开始前的延迟（秒）
	Delay float64
	// Elapsed 已经过时间（含延迟）
	Elapsed float64

	// Yoyo 到达终点后原路返回，总时长为 2 × Duration
	Yoyo bool

	// Easing 缓动函数，nil 表示线性
	Easing func(float64) float64

	// OnComplete 动画结束后调用（在 TweenSystem.Update 中同步执行）
	OnComplete func()

	IsCompleted bool
}

// TotalDuration 返回含往返、不含延迟的总时长
func (t *TweenComponent) TotalDuration() float64 {
	if t.Yoyo {
		return t.Duration * 2
	}
	return t.Duration
}
