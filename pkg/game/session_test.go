package game

import (
	"testing"

	"github.com/decker502/fruitmerge/pkg/types"
)

func TestSessionAddScore(t *testing.T) {
	tests := []struct {
		name    string
		amounts []int
		want    int
	}{
		{"单次合成", []int{10}, 10},
		{"多次合成", []int{10, 10, 10}, 30},
		{"忽略零值", []int{10, 0}, 10},
		{"忽略负值", []int{10, -5}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			for _, a := range tt.amounts {
				s.AddScore(a)
			}
			if s.Score != tt.want {
				t.Errorf("Score = %d, want %d", s.Score, tt.want)
			}
		})
	}
}

func TestSessionEndGameIsOneWay(t *testing.T) {
	s := NewSession()

	if !s.EndGame() {
		t.Fatal("第一次 EndGame 应返回 true")
	}
	if s.EndGame() {
		t.Error("重复 EndGame 应返回 false")
	}
	if !s.IsGameOver {
		t.Error("IsGameOver 应保持为 true")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.AddScore(40)
	s.PreviewTier = types.TierKiwi
	s.EndGame()
	s.AdvanceTick()
	s.AdvanceTick()

	s.Reset()

	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if s.IsGameOver {
		t.Error("重置后 IsGameOver 应为 false")
	}
	if s.PreviewTier != types.TierCherry {
		t.Errorf("PreviewTier = %v, want cherry", s.PreviewTier)
	}
	if s.Tick != 2 {
		t.Errorf("Tick 不应被重置, got %d", s.Tick)
	}
}
