package messages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSatCountForMsgTypeOneAndThirtyOne(t *testing.T) {
	cases := []struct {
		msglen uint
		want   int
	}{
		{0, 0}, {2, 1}, {4, 2}, {5, 3}, {7, 4}, {9, 5}, {10, 6},
	}
	for _, c := range cases {
		if got := SatCountForMsgType(1, c.msglen); got != c.want {
			t.Errorf("SatCountForMsgType(1, %d) = %d, want %d", c.msglen, got, c.want)
		}
	}
}

func TestSatCountForMsgTypeNine(t *testing.T) {
	cases := []struct {
		msglen uint
		want   int
	}{
		{2, 1}, {4, 2}, {5, 3},
	}
	for _, c := range cases {
		if got := SatCountForMsgType(9, c.msglen); got != c.want {
			t.Errorf("SatCountForMsgType(9, %d) = %d, want %d", c.msglen, got, c.want)
		}
	}
}

// buildGPSSatFrames packs one satellite's fields into a 2-frame (48-bit)
// group, matching the r3==0 layout (1,2,5,16,8,8,8).
func buildGPSSatFrames(s, udre, satid uint, psc16 uint, rrc8 uint, iod uint) []uint32 {
	v := uint64(s)
	v = (v << 2) | uint64(udre)
	v = (v << 5) | uint64(satid)
	v = (v << 16) | uint64(psc16)
	v = (v << 8) | uint64(rrc8)
	v = (v << 8) | uint64(iod)
	v = (v << 8) // trailing unused 8 bits
	return []uint32{uint32(v >> 24), uint32(v & 0xFFFFFF)}
}

func TestDecodeGPSCorrectionsSingleSatellite(t *testing.T) {
	frames := buildGPSSatFrames(0, 1, 7, 100, 5, 42)
	got := DecodeGPSCorrections(frames, 1)
	if len(got) != 1 {
		t.Fatalf("got %d corrections, want 1", len(got))
	}

	want := GPSCorrection{SatID: 7, Scale: 0, UDRE: 1, PSC: 2.0, RRC: 0.01, IOD: 42}
	if !cmp.Equal(want, got[0]) {
		t.Errorf("want %v got %v", want, got[0])
	}
}

func TestDecodeGPSCorrectionsNegativePSC(t *testing.T) {
	// psc raw = 0xFFFF (-1 in 16-bit two's complement), s=1 so scale 0.32.
	frames := buildGPSSatFrames(1, 0, 3, 0xFFFF, 0xFF, 9)
	got := DecodeGPSCorrections(frames, 1)

	want := GPSCorrection{SatID: 3, Scale: 1, UDRE: 0, PSC: -0.32, RRC: -0.032, IOD: 9}
	if !cmp.Equal(want, got[0]) {
		t.Errorf("want %v got %v", want, got[0])
	}
}

func TestDecodeGLONASSCorrectionsCarriesRTB(t *testing.T) {
	// (1,2,5,16,8,1,7,8): s,udre,satid,psc,rrc,r,tb,_
	v := uint64(0)
	v = (v << 1) | 0 // s
	v = (v << 2) | 2 // udre
	v = (v << 5) | 11 // satid
	v = (v << 16) | 50 // psc
	v = (v << 8) | 4   // rrc
	v = (v << 1) | 1   // r
	v = (v << 7) | 99  // tb
	v = (v << 8)       // unused
	frames := []uint32{uint32(v >> 24), uint32(v & 0xFFFFFF)}

	got := DecodeGLONASSCorrections(frames, 1)

	want := GLONASSCorrection{SatID: 11, Scale: 0, UDRE: 2, PSC: 50 * 0.02, RRC: 4 * 0.002, R: 1, TB: 99}
	if !cmp.Equal(want, got[0]) {
		t.Errorf("want %v got %v", want, got[0])
	}
}
