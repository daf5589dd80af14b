package config

import "image"

// 布局配置常量
// 所有坐标均为逻辑屏幕坐标（Layout 返回的尺寸），左上角为原点，Y 轴向下

const (
	// GameWindowWidth 默认逻辑宽度（竖屏）
	GameWindowWidth = 480
	// GameWindowHeight 默认逻辑高度
	GameWindowHeight = 800

	// MinWindowWidth 最小逻辑宽度，小于该值时按比例放大
	MinWindowWidth = 320
	// MinWindowHeight 最小逻辑高度
	MinWindowHeight = 480
)

const (
	// ScoreTextX 分数文本左上角
	ScoreTextX = 16.0
	ScoreTextY = 16.0
	// ScoreFontSize 分数字号
	ScoreFontSize = 24.0

	// NextFruitIconMargin 下一个水果预览图标距右上角的距离
	NextFruitIconMargin = 32.0
	// NextFruitIconSize 预览图标的显示尺寸
	NextFruitIconSize = 40.0

	// ExplodeIconX 爆炸技能图标中心
	ExplodeIconX = 160.0
	ExplodeIconY = 24.0
	// GrandmaIconX 奶奶技能图标中心
	GrandmaIconX = 220.0
	GrandmaIconY = 24.0
	// AbilityIconSize 技能图标点击区域边长
	AbilityIconSize = 48.0
	// AbilityIconRadius 技能图标背景圆半径
	AbilityIconRadius = 24.0
	// AbilityIconImageSize 技能图标图片显示尺寸
	AbilityIconImageSize = 32.0
	// AbilityGlowSize 激活光晕显示尺寸
	AbilityGlowSize = 40.0
	// AbilityCountFontSize 剩余次数字号
	AbilityCountFontSize = 18.0

	// GameOverPanelWidth 结算面板尺寸
	GameOverPanelWidth  = 340.0
	GameOverPanelHeight = 260.0
	// GameOverTitleFontSize 结算标题字号
	GameOverTitleFontSize = 40.0
	// GameOverScoreFontSize 结算分数字号
	GameOverScoreFontSize = 32.0
	// RestartButtonFontSize 重新开始按钮字号
	RestartButtonFontSize = 30.0
	// RestartButtonPaddingX 按钮水平内边距
	RestartButtonPaddingX = 32.0
	// RestartButtonPaddingY 按钮垂直内边距
	RestartButtonPaddingY = 12.0

	// PopupFontSize 合成得分飘字字号
	PopupFontSize = 24.0
	// PopupOffsetY 飘字相对合成点的初始偏移
	PopupOffsetY = -30.0
)

// Depth 渲染层级，数值越大越靠上
const (
	DepthBackground = -100
	DepthFruit      = 0
	DepthEffect     = 10
	DepthHUD        = 100
	DepthOverlay    = 1000
	DepthPanel      = 1001
	DepthPanelText  = 1002
)

// AbilityIconBounds 返回技能图标的点击区域（以中心点为基准的正方形）
func AbilityIconBounds(centerX, centerY float64) image.Rectangle {
	half := AbilityIconSize / 2
	return image.Rect(
		int(centerX-half), int(centerY-half),
		int(centerX+half), int(centerY+half),
	)
}

// ExplodeIconBounds 爆炸技能图标点击区域
func ExplodeIconBounds() image.Rectangle {
	return AbilityIconBounds(ExplodeIconX, ExplodeIconY)
}

// GrandmaIconBounds 奶奶技能图标点击区域
func GrandmaIconBounds() image.Rectangle {
	return AbilityIconBounds(GrandmaIconX, GrandmaIconY)
}

// NextFruitIconCenter 根据屏幕宽度计算预览图标中心
// 图标右边缘对齐 width - NextFruitIconMargin
func NextFruitIconCenter(width float64) (float64, float64) {
	return width - NextFruitIconMargin - NextFruitIconSize/2, NextFruitIconMargin
}
