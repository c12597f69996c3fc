// Package frame reads the variable-length message body that follows a
// synchronised header: up to N further 30-bit words, each individually
// parity-checked, stopping early on the first parity failure.
package frame

import (
	"github.com/goblimey/go-dgps/dgps/bitsource"
	"github.com/goblimey/go-dgps/dgps/shiftregister"
)

// Read pulls up to n further 30-bit frames from src through reg, one bit at
// a time, verifying the parity of w1 after each complete frame. It stops as
// soon as a frame fails parity, or when the source runs out of bits, and
// returns the 24-bit data payloads read so far. The caller advances its own
// bit counter by len(result)*30.
func Read(src bitsource.Source, reg *shiftregister.ShiftRegister, n int) []uint32 {
	frames := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		bits, ok := src.Get(30)
		for _, b := range bits {
			reg.Step(b)
		}
		if !reg.W1ParityOK() {
			return frames
		}
		frames = append(frames, reg.W1Payload())
		if !ok {
			return frames
		}
	}
	return frames
}
