package game

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeTone(t *testing.T) {
	tests := []struct {
		name    string
		spec    ToneSpec
		rate    int
		wantLen int
	}{
		{"正常", ToneSpec{Frequency: 440, Duration: 0.5, Volume: 0.5}, 1000, 500 * 4},
		{"零时长", ToneSpec{Frequency: 440, Duration: 0, Volume: 0.5}, 1000, 0},
		{"非法采样率", ToneSpec{Frequency: 440, Duration: 1, Volume: 0.5}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := SynthesizeTone(tt.spec, tt.rate)
			if len(pcm) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(pcm), tt.wantLen)
			}
		})
	}
}

func TestSynthesizeToneStereoAndBounded(t *testing.T) {
	spec := ToneSpec{Frequency: 440, Duration: 0.1, Volume: 2.0} // 音量超限被截断到 1
	pcm := SynthesizeTone(spec, 8000)

	for i := 0; i+3 < len(pcm); i += 4 {
		left := binary.LittleEndian.Uint16(pcm[i:])
		right := binary.LittleEndian.Uint16(pcm[i+2:])
		if left != right {
			t.Fatalf("sample %d: 左右声道不一致 %d != %d", i/4, left, right)
		}
	}

	// 第一个采样之后振幅逐渐衰减，最后一个采样应接近 0
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 200 || last < -200 {
		t.Errorf("末尾采样应接近 0, got %d", last)
	}
}
