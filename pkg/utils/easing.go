package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 开始快，结束慢（得分飘字上升）
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// backOvershoot 回弹缓动的过冲系数（与 easings.net 一致）
const backOvershoot = 1.70158

// EaseOutBack 回弹缓出
// 特点：略微越过终点再回落（适合"弹出"出现动画）
// 公式：f(t) = 1 + (c+1)(t-1)³ + c(t-1)²
func EaseOutBack(t float64) float64 {
	c3 := backOvershoot + 1
	return 1 + c3*math.Pow(t-1, 3) + backOvershoot*math.Pow(t-1, 2)
}

// EaseInBack 回弹缓入
// 特点：先反向收缩再加速到终点（适合"吸入消失"动画）
// 公式：f(t) = (c+1)t³ - ct²
func EaseInBack(t float64) float64 {
	c3 := backOvershoot + 1
	return c3*t*t*t - backOvershoot*t*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
