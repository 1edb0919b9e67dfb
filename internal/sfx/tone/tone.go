// Package tone synthesizes short PCM beeps for menu sound effects.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate of every clip.
const SampleRate = 44100

// bytesPerFrame is 16-bit little-endian stereo.
const bytesPerFrame = 4

// Spec describes one beep.
type Spec struct {
	Freq     float64 // Hz
	Duration time.Duration
	Volume   float64 // 0..1
}

// Square renders s as a square wave that fades out linearly, in the
// 16-bit stereo format ebiten/audio players read.
func Square(s Spec) []byte {
	n := int(float64(SampleRate) * s.Duration.Seconds())
	if n <= 0 || s.Freq <= 0 {
		return nil
	}
	buf := make([]byte, n*bytesPerFrame)
	period := float64(SampleRate) / s.Freq
	for i := 0; i < n; i++ {
		v := s.Volume
		if math.Mod(float64(i), period) >= period/2 {
			v = -v
		}
		fade := 1 - float64(i)/float64(n)
		sample := uint16(int16(v * fade * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], sample)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], sample)
	}
	return buf
}
