//go:build mobile

package utils

// SetMobileOverride 移动端始终为移动模式，忽略设置
func SetMobileOverride(enabled bool) {}

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}
