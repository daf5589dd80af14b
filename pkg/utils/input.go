// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针输入来源
// 场景通过该接口读取输入，测试中可替换为脚本化实现
type PointerSource interface {
	// JustPressed 返回本帧是否刚按下以及按下位置
	JustPressed() (bool, int, int)
	// Position 返回当前指针位置
	Position() (int, int)
}

// EbitenPointer 基于 ebiten 的鼠标/触摸输入
type EbitenPointer struct{}

// JustPressed 实现 PointerSource
func (EbitenPointer) JustPressed() (bool, int, int) {
	return IsPointerJustPressed()
}

// Position 实现 PointerSource
func (EbitenPointer) Position() (int, int) {
	return GetPointerPosition()
}

// 保存最后一次触摸位置（触摸释放后仍用于悬停高亮）
var lastTouchX, lastTouchY int

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置；触摸刚结束时返回最后一次触摸位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return lastTouchX, lastTouchY
	}

	if IsMobile() {
		return lastTouchX, lastTouchY
	}
	return ebiten.CursorPosition()
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
