package frame

import (
	"testing"

	"github.com/goblimey/go-dgps/dgps/bitsource"
	"github.com/goblimey/go-dgps/dgps/parity"
	"github.com/goblimey/go-dgps/dgps/shiftregister"
)

// frameBits builds the 30 bits (24 data, 6 parity) for one uncorrected,
// pre-bit-clear word carrying the given 24-bit payload.
func frameBits(data uint32) []byte {
	word := (data & 0xFFFFFF) << 6
	word |= parity.Compute(word)
	bits := make([]byte, 30)
	for i := 0; i < 30; i++ {
		bits[29-i] = byte((word >> uint(i)) & 1)
	}
	return bits
}

func TestReadStopsAtRequestedCount(t *testing.T) {
	var all []byte
	payloads := []uint32{0x010203, 0x0A0B0C, 0xFFFFFF}
	for _, p := range payloads {
		all = append(all, frameBits(p)...)
	}
	src := bitsource.NewMemory(all)
	reg := shiftregister.New()

	got := Read(src, reg, 2)
	if len(got) != 2 {
		t.Fatalf("got %d frames, want 2", len(got))
	}
	if got[0] != payloads[0] || got[1] != payloads[1] {
		t.Errorf("got %x, want %x", got, payloads[:2])
	}
}

func TestReadStopsOnParityFailure(t *testing.T) {
	good := frameBits(0x123456)
	corrupt := frameBits(0xABCDEF)
	corrupt[0] ^= 1 // flip a data bit without fixing parity

	var all []byte
	all = append(all, good...)
	all = append(all, corrupt...)
	all = append(all, frameBits(0x000001)...)

	src := bitsource.NewMemory(all)
	reg := shiftregister.New()

	got := Read(src, reg, 3)
	if len(got) != 1 {
		t.Fatalf("got %d frames, want 1 (stop at first bad parity)", len(got))
	}
	if got[0] != 0x123456 {
		t.Errorf("got %x, want %x", got[0], 0x123456)
	}
}

func TestReadReturnsPartialOnExhaustedSource(t *testing.T) {
	all := frameBits(0x00FF00)
	all = all[:20] // truncate mid-frame
	src := bitsource.NewMemory(all)
	reg := shiftregister.New()

	got := Read(src, reg, 5)
	if len(got) != 0 {
		t.Errorf("got %d frames from a truncated source, want 0", len(got))
	}
}
