// Package messages decodes the body of each M.823 message type into typed
// records, following the per-type bitfield layouts, scaling and table
// lookups specified for the decoder.
package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// GPSCorrection is one satellite's pseudorange correction from a type 1 or
// type 9 message.
type GPSCorrection struct {
	SatID uint
	Scale uint
	UDRE  uint
	PSC   float64
	RRC   float64
	IOD   uint
}

// GLONASSCorrection is one satellite's pseudorange correction from a type 31
// message; it carries an (r, tb) pair in place of GPS's IOD.
type GLONASSCorrection struct {
	SatID uint
	Scale uint
	UDRE  uint
	PSC   float64
	RRC   float64
	R     uint
	TB    uint
}

// satCountType1Or31 returns the number of satellite records present in a
// type 1 or type 31 message body of the given length (in frames), per the
// 5-frames-per-3-satellites grouping with a 2/1, 4/2 remainder rule.
func satCountType1Or31(msglen uint) int {
	remTable := [5]int{0, 0, 1, 1, 2}
	return int(msglen/5)*3 + remTable[msglen%5]
}

// satCountType9 returns the number of satellite records present in a type 9
// message body of the given length (2, 4 or 5 frames).
func satCountType9(msglen uint) int {
	table := [6]int{0, 0, 1, 1, 2, 3}
	return table[msglen]
}

// scalePSC converts a signed raw 16-bit pseudorange correction to metres,
// depending on the scale-factor bit s.
func scalePSC(raw int64, s uint) float64 {
	if s == 0 {
		return round2(float64(raw) * 0.02)
	}
	return round2(float64(raw) * 0.32)
}

// scaleRRC converts a signed raw 8-bit range-rate correction to metres per
// second, depending on the scale-factor bit s.
func scaleRRC(raw int64, s uint) float64 {
	if s == 0 {
		return round3(float64(raw) * 0.002)
	}
	return round3(float64(raw) * 0.032)
}

func round2(v float64) float64 { return roundTo(v, 100) }
func round3(v float64) float64 { return roundTo(v, 1000) }

func roundTo(v float64, factor float64) float64 {
	if v >= 0 {
		return float64(int64(v*factor+0.5)) / factor
	}
	return -float64(int64(-v*factor+0.5)) / factor
}

// satGroup picks out the frames and field widths for satellite index i
// (0-based) out of a 5-frame group starting at offset, for the GPS type
// 1/9 layout. The sixth field is the issue-of-data byte; the last field
// covers the leading bits of the next satellite in the group (8 or 16 bits,
// unused here) and is absent (width 0) for the third satellite.
func satGroup(frames []uint32, i int) (group []uint32, widths []uint) {
	d3 := i / 3
	offset := d3 * 5
	switch i % 3 {
	case 0:
		group = []uint32{frames[offset], frames[offset+1]}
		widths = []uint{1, 2, 5, 16, 8, 8, 8}
	case 1:
		group = []uint32{frames[offset+1], frames[offset+2], frames[offset+3]}
		widths = []uint{1, 2, 5, 16, 8, 8, 16}
	default:
		group = []uint32{frames[offset+3], frames[offset+4]}
		widths = []uint{1, 2, 5, 16, 8, 8, 0}
	}
	return group, widths
}

// DecodeGPSCorrections decodes a type 1 or type 9 message body, given the
// already length-validated frame list and the number of satellite records
// the message length implies.
func DecodeGPSCorrections(frames []uint32, numSats int) []GPSCorrection {
	result := make([]GPSCorrection, 0, numSats)
	for i := 0; i < numSats; i++ {
		group, widths := satGroup(frames, i)
		f := bitutil.ExtractFieldsFromFrames(group, widths)
		s := uint(f[0])
		udre := uint(f[1])
		satid := uint(f[2])
		psc := bitutil.SignExtend(f[3], 16)
		rrc := bitutil.SignExtend(f[4], 8)
		iod := uint(f[5])

		result = append(result, GPSCorrection{
			SatID: satid,
			Scale: s,
			UDRE:  udre,
			PSC:   scalePSC(psc, s),
			RRC:   scaleRRC(rrc, s),
			IOD:   iod,
		})
	}
	return result
}

// glonassGroup is satGroup's counterpart for type 31, whose fields replace
// the trailing 8-bit IOD with a (1,7) r/tb pair.
func glonassGroup(frames []uint32, i int) (group []uint32, widths []uint) {
	d3 := i / 3
	offset := d3 * 5
	switch i % 3 {
	case 0:
		group = []uint32{frames[offset], frames[offset+1]}
		widths = []uint{1, 2, 5, 16, 8, 1, 7, 8}
	case 1:
		group = []uint32{frames[offset+1], frames[offset+2], frames[offset+3]}
		widths = []uint{1, 2, 5, 16, 8, 1, 7, 16}
	default:
		group = []uint32{frames[offset+3], frames[offset+4]}
		widths = []uint{1, 2, 5, 16, 8, 1, 7, 0}
	}
	return group, widths
}

// DecodeGLONASSCorrections decodes a type 31 message body.
func DecodeGLONASSCorrections(frames []uint32, numSats int) []GLONASSCorrection {
	result := make([]GLONASSCorrection, 0, numSats)
	for i := 0; i < numSats; i++ {
		group, widths := glonassGroup(frames, i)
		f := bitutil.ExtractFieldsFromFrames(group, widths)
		s := uint(f[0])
		udre := uint(f[1])
		satid := uint(f[2])
		psc := bitutil.SignExtend(f[3], 16)
		rrc := bitutil.SignExtend(f[4], 8)
		r := uint(f[5])
		tb := uint(f[6])

		result = append(result, GLONASSCorrection{
			SatID: satid,
			Scale: s,
			UDRE:  udre,
			PSC:   scalePSC(psc, s),
			RRC:   scaleRRC(rrc, s),
			R:     r,
			TB:    tb,
		})
	}
	return result
}

// SatCountForMsgType returns the satellite record count for a type 1, 9 or
// 31 message, given its validated message length in frames.
func SatCountForMsgType(msgtype uint, msglen uint) int {
	if msgtype == 9 {
		return satCountType9(msglen)
	}
	return satCountType1Or31(msglen)
}
