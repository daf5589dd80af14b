//go:build !js

package host

// Detect 返回当前平台可用的宿主桥接
// 非浏览器构建没有宿主
func Detect() Bridge {
	return NopBridge{}
}
