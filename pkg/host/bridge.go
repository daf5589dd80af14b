// Package host 对接嵌入游戏的宿主平台（如 Telegram WebApp）
//
// 宿主只接收通知并可触发重新开始，游戏逻辑不依赖宿主的任何返回值。
// 原生构建始终使用 NopBridge。
package host

// Bridge 宿主平台桥接
type Bridge interface {
	// Ready 通知宿主游戏已加载完成
	Ready()

	// SetRestartLabel 设置并显示宿主侧的"重新开始"按钮
	SetRestartLabel(label string)

	// OnRestart 注册宿主侧"重新开始"按钮的回调
	// 回调可能在游戏循环之外的 goroutine 中执行
	OnRestart(fn func())

	// ViewportSize 返回宿主提供的可用视口尺寸，宿主未提供时 ok 为 false
	ViewportSize() (width, height int, ok bool)
}

// NopBridge 不做任何事的桥接（原生构建或宿主不存在时使用）
type NopBridge struct{}

// Ready 实现 Bridge
func (NopBridge) Ready() {}

// SetRestartLabel 实现 Bridge
func (NopBridge) SetRestartLabel(string) {}

// OnRestart 实现 Bridge
func (NopBridge) OnRestart(func()) {}

// ViewportSize 实现 Bridge
func (NopBridge) ViewportSize() (int, int, bool) {
	return 0, 0, false
}
