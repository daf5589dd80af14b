package game

import (
	"encoding/binary"
	"math"
)

// SynthesizeTone 按参数合成一段正弦音，返回 16 位小端立体声 PCM
// 频率在时长内从 Frequency 线性滑动到 Frequency + Slide，振幅线性衰减到 0
func SynthesizeTone(spec ToneSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}

	volume := math.Max(0, math.Min(1, spec.Volume))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := spec.Frequency + spec.Slide*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		envelope := 1 - progress
		sample := int16(math.Sin(phase) * envelope * volume * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
