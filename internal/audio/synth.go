package audio

import (
	"encoding/binary"
	"math"

	"go-turret-shooter/internal/utils"
)

// PCM16Stereo синтезирует ноты в 16-битный little-endian стерео PCM.
// Каждая нота затухает линейно к концу, чтобы не было щелчков.
func PCM16Stereo(notes []Note, sampleRate int, volume float64) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Duration.Seconds() * float64(sampleRate))
	}
	data := make([]byte, total*4)

	off := 0
	for _, n := range notes {
		samples := int(n.Duration.Seconds() * float64(sampleRate))
		for i := 0; i < samples; i++ {
			t := float64(i) / float64(sampleRate)
			amp := utils.Lerp(volume, 0, float64(i)/float64(samples))
			v := int16(math.Sin(2*math.Pi*n.Freq*t) * amp * math.MaxInt16)
			binary.LittleEndian.PutUint16(data[off:], uint16(v))
			binary.LittleEndian.PutUint16(data[off+2:], uint16(v))
			off += 4
		}
	}
	return data
}
