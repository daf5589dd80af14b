package components

// TimerComponent 通用计时器组件
// 用于延迟调用（如"叫奶奶"技能依次生成樱桃）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "grandma_spawn_3"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	OnFire      func()  // 到时回调，只调用一次
}
