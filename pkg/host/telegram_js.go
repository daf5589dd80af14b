//go:build js

package host

import (
	"log"
	"syscall/js"
)

// restartIcon 宿主按钮文字前缀
const restartIcon = "🔄 "

// Detect 返回当前平台可用的宿主桥接
// 页面中存在 window.Telegram.WebApp 时使用 Telegram 小程序桥接
func Detect() Bridge {
	tg := js.Global().Get("Telegram")
	if !isDefined(tg) {
		return NopBridge{}
	}
	webApp := tg.Get("WebApp")
	if !isDefined(webApp) {
		return NopBridge{}
	}
	log.Printf("[host] 检测到 Telegram WebApp")
	return &telegramBridge{webApp: webApp}
}

// telegramBridge 基于 Telegram WebApp JS API 的桥接
type telegramBridge struct {
	webApp js.Value
	// 保持回调引用，避免被回收
	callbacks []js.Func
}

func (b *telegramBridge) Ready() {
	b.webApp.Call("ready")
}

func (b *telegramBridge) SetRestartLabel(label string) {
	button := b.webApp.Get("MainButton")
	if !isDefined(button) {
		return
	}
	button.Call("setText", restartIcon+label)
	button.Call("show")
}

func (b *telegramBridge) OnRestart(fn func()) {
	button := b.webApp.Get("MainButton")
	if !isDefined(button) || fn == nil {
		return
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	b.callbacks = append(b.callbacks, cb)
	button.Call("onClick", cb)
}

// ViewportSize 优先使用宿主的稳定视口，缺失时退回 window.inner*
func (b *telegramBridge) ViewportSize() (int, int, bool) {
	w := intOr(b.webApp.Get("viewportStableWidth"), js.Global().Get("innerWidth"))
	h := intOr(b.webApp.Get("viewportHeight"), js.Global().Get("innerHeight"))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func isDefined(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func intOr(v, fallback js.Value) int {
	if isDefined(v) && v.Type() == js.TypeNumber && v.Int() > 0 {
		return v.Int()
	}
	if isDefined(fallback) && fallback.Type() == js.TypeNumber {
		return fallback.Int()
	}
	return 0
}
