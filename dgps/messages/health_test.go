package messages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeConstellationHealthScalesCNoAndTTU(t *testing.T) {
	// fields (1,5,1,3,5,1,1,1,4,2): reserved=0,satid=12,iod=1,health=2,
	// cno=3,enable=1,new=0,loss=1,ttu=5,unassigned=2.
	var v uint64
	v = (v << 1) | 0
	v = (v << 5) | 12
	v = (v << 1) | 1
	v = (v << 3) | 2
	v = (v << 5) | 3
	v = (v << 1) | 1
	v = (v << 1) | 0
	v = (v << 1) | 1
	v = (v << 4) | 5
	v = (v << 2) | 2

	got := DecodeConstellationHealth(uint32(v))
	want := ConstellationHealth{
		SatID: 12, IOD: 1, DataHealth: 2,
		CNo: 27, HealthEnable: 1, NewNavData: 0, LossOfWarn: 1,
		TimeToUnhealthy: 1500, Reserved: 0, Unassigned: 2,
	}
	if !cmp.Equal(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
}

func TestDecodeConstellationHealthZeroCNoUntraced(t *testing.T) {
	var v uint64
	v = (v << 1) | 0
	v = (v << 5) | 1
	v = (v << 1) | 0
	v = (v << 3) | 0
	v = (v << 5) | 0 // cno = 0: untraced, not incremented
	v = (v << 1) | 0
	v = (v << 1) | 0
	v = (v << 1) | 0
	v = (v << 4) | 0
	v = (v << 2) | 0

	got := DecodeConstellationHealth(uint32(v))
	if got.CNo != 0 {
		t.Errorf("CNo = %d, want 0 (untraced)", got.CNo)
	}
}
