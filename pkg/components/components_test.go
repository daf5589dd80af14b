package components

import "testing"

func TestAbilityModeString(t *testing.T) {
	tests := []struct {
		name string
		mode AbilityMode
		want string
	}{
		{"普通模式", AbilityModeNone, "none"},
		{"爆炸模式", AbilityModeExplode, "explode"},
		{"叫奶奶", AbilityModeGrandma, "grandma"},
		{"未知取值", AbilityMode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTweenTotalDuration(t *testing.T) {
	tests := []struct {
		name  string
		tween TweenComponent
		want  float64
	}{
		{"单程", TweenComponent{Duration: 0.2}, 0.2},
		{"往返翻倍", TweenComponent{Duration: 0.12, Yoyo: true}, 0.24},
		{"延迟不计入", TweenComponent{Duration: 0.5, Delay: 1}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tween.TotalDuration(); got != tt.want {
				t.Errorf("TotalDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
