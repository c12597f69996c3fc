package messages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var almanacWidths = []uint{16, 16, 10, 12, 3, 9, 3, 1, 1, 1}

func buildAlmanacFrames(lat, lon uint16, rng uint, freq uint, health, stationID, bitrateCode, mod, sync, coding uint) []uint32 {
	return packFrames(almanacWidths, []uint64{
		uint64(lat), uint64(lon), uint64(rng), uint64(freq),
		uint64(health), uint64(stationID), uint64(bitrateCode),
		uint64(mod), uint64(sync), uint64(coding),
	})
}

func TestDecodeAlmanacScalesAndLooksUpBitrate(t *testing.T) {
	frames := buildAlmanacFrames(1000, 2000, 500, 100, 1, 42, 1, 0, 1, 0)
	got := DecodeAlmanac(frames)

	// Scale in float64 at run time, as DecodeAlmanac does; the exact
	// constant product 2000 * 0.005493 differs from it in the last bit.
	rawLat, rawLon := 1000.0, 2000.0
	want := Almanac{
		Lat: rawLat * 0.002747, Lon: rawLon * 0.005493,
		Range: 500, Freq: 100*0.1 + 190,
		Health: 1, StationID: 42, Bitrate: 50, // bitrateCode=1 -> 50
		Modulation: 0, SyncType: 1, Coding: 0,
	}
	if !cmp.Equal(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
}

func TestDecodeAlmanacNegativeLatLon(t *testing.T) {
	// 0x8001 is negative in 16-bit two's complement.
	frames := buildAlmanacFrames(0x8001, 0x8001, 0, 0, 0, 0, 0, 0, 0, 0)
	got := DecodeAlmanac(frames)
	if got.Lat >= 0 || got.Lon >= 0 {
		t.Errorf("expected negative lat/lon, got %+v", got)
	}
}

func TestDecodeAlmanacReservedBitrateCode(t *testing.T) {
	frames := buildAlmanacFrames(0, 0, 0, 0, 0, 0, 3, 0, 0, 0) // code 3 -> -3
	got := DecodeAlmanac(frames)
	if got.Bitrate != -3 {
		t.Errorf("Bitrate = %d, want -3", got.Bitrate)
	}
}
