package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// StationPosition is a type 3 station ECEF reference position.
type StationPosition struct {
	X, Y, Z float64
}

// DecodeStationPosition decodes a type 3 message body from its four 24-bit
// frames (96 bits total: three signed 32-bit ECEF components).
func DecodeStationPosition(frames []uint32) StationPosition {
	fields := bitutil.ExtractFieldsFromFrames(frames, []uint{32, 32, 32})
	x := bitutil.SignExtend(fields[0], 32)
	y := bitutil.SignExtend(fields[1], 32)
	z := bitutil.SignExtend(fields[2], 32)

	return StationPosition{
		X: float64(x) / 100,
		Y: float64(y) / 100,
		Z: float64(z) / 100,
	}
}
