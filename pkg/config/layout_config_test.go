package config

import (
	"image"
	"testing"
)

// TestAbilityIconBounds 测试技能图标点击区域以中心为基准
func TestAbilityIconBounds(t *testing.T) {
	tests := []struct {
		name string
		got  image.Rectangle
		want image.Rectangle
	}{
		{"爆炸图标", ExplodeIconBounds(), image.Rect(136, 0, 184, 48)},
		{"奶奶图标", GrandmaIconBounds(), image.Rect(196, 0, 244, 48)},
		{"任意中心", AbilityIconBounds(100, 100), image.Rect(76, 76, 124, 124)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("bounds = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// TestAbilityIconsDoNotOverlap 两个技能图标的点击区域不重叠
func TestAbilityIconsDoNotOverlap(t *testing.T) {
	if ExplodeIconBounds().Overlaps(GrandmaIconBounds()) {
		t.Errorf("图标区域重叠: %v, %v", ExplodeIconBounds(), GrandmaIconBounds())
	}
}

// TestNextFruitIconCenter 测试预览图标跟随屏幕宽度
func TestNextFruitIconCenter(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		wantCX float64
	}{
		{"默认宽度", GameWindowWidth, 428},
		{"加宽", 600, 548},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := NextFruitIconCenter(tt.width)
			if cx != tt.wantCX || cy != NextFruitIconMargin {
				t.Errorf("NextFruitIconCenter(%v) = (%v, %v), want (%v, %v)",
					tt.width, cx, cy, tt.wantCX, NextFruitIconMargin)
			}
		})
	}
}
