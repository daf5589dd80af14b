//go:build !mobile

package utils

import "os"

// forceMobile 由命令行 --mobile 参数设置
var forceMobile bool

// SetMobileOverride 强制启用（或取消）移动模式，用于桌面端调试
func SetMobileOverride(enabled bool) {
	forceMobile = enabled
}

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 FRUIT_MOBILE_EMULATE=1 或 SetMobileOverride(true) 强制启用移动模式
func IsMobile() bool {
	return forceMobile || os.Getenv("FRUIT_MOBILE_EMULATE") == "1"
}
