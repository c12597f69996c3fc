package header

import "testing"

func TestHasSync(t *testing.T) {
	good := uint32(0x660000) // preamble 0x66 in the top 8 of 24 bits
	if !HasSync(good) {
		t.Errorf("expected sync on payload 0x%06x", good)
	}

	bad := uint32(0x650000)
	if HasSync(bad) {
		t.Errorf("did not expect sync on payload 0x%06x", bad)
	}
}

func TestDecode(t *testing.T) {
	// w2 payload: preamble(8)=0x66, msgtype(6)=6, stationid(10)=42.
	w2 := uint32(0x66<<16) | uint32(6<<10) | uint32(42)

	// w1 payload: mod_z(13)=100, seq(3)=5, msglen(5)=0, stationhealth(3)=2.
	w1 := uint32(100<<11) | uint32(5<<8) | uint32(0<<3) | uint32(2)

	got := Decode(w2, w1)

	if got.MsgType != 6 {
		t.Errorf("MsgType = %d, want 6", got.MsgType)
	}
	if got.StationID != 42 {
		t.Errorf("StationID = %d, want 42", got.StationID)
	}
	if got.ModZ != 60.0 {
		t.Errorf("ModZ = %v, want 60.0", got.ModZ)
	}
	if got.Seq != 5 {
		t.Errorf("Seq = %d, want 5", got.Seq)
	}
	if got.MsgLen != 0 {
		t.Errorf("MsgLen = %d, want 0", got.MsgLen)
	}
	if got.StationHealth != 2 {
		t.Errorf("StationHealth = %d, want 2", got.StationHealth)
	}
}
