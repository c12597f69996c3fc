package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// bitrateTable7 maps the 3-bit bitrate field of a type 7/35 message to bps;
// negative values mark a reserved/invalid code.
var bitrateTable7 = [8]int{25, 50, 100, -3, 150, 200, -6, -7}

// Almanac is one station almanac record from a type 7 or type 35 message.
type Almanac struct {
	Lat, Lon   float64
	Range      uint
	Freq       float64
	Health     uint
	StationID  uint
	Bitrate    int
	Modulation uint
	SyncType   uint
	Coding     uint
}

// DecodeAlmanac decodes one 3-frame (72-bit) type 7/35 almanac record.
func DecodeAlmanac(frames []uint32) Almanac {
	fields := bitutil.ExtractFieldsFromFrames(frames, []uint{16, 16, 10, 12, 3, 9, 3, 1, 1, 1})
	lat := bitutil.SignExtend(fields[0], 16)
	lon := bitutil.SignExtend(fields[1], 16)
	rng := uint(fields[2])
	freq := uint(fields[3])
	health := uint(fields[4])
	stationID := uint(fields[5])
	bitrateCode := uint(fields[6])
	modulation := uint(fields[7])
	syncType := uint(fields[8])
	coding := uint(fields[9])

	return Almanac{
		Lat:        float64(lat) * 0.002747,
		Lon:        float64(lon) * 0.005493,
		Range:      rng,
		Freq:       float64(freq)*0.1 + 190,
		Health:     health,
		StationID:  stationID,
		Bitrate:    bitrateTable7[bitrateCode],
		Modulation: modulation,
		SyncType:   syncType,
		Coding:     coding,
	}
}
