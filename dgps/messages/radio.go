package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// bitrateTable27 maps the 3-bit bitrate field of a type 27 message to bps;
// negative values mark a reserved/invalid code.
var bitrateTable27 = [8]int{25, 50, 100, 200, -4, -5, -6, -7}

// RadioAlmanac is one station radio almanac record from a type 27 message.
type RadioAlmanac struct {
	Lat, Lon       float64
	RefID1, RefID2 uint
	Freq           float64
	Op             uint
	Bitrate        int
	Dat, R, BC     uint
	Integrity      uint
	Constellation  uint
	Name           string
}

// DecodeRadioAlmanac decodes one 6-frame (144-bit) type 27 record.
func DecodeRadioAlmanac(frames []uint32) RadioAlmanac {
	widths := []uint{16, 16, 10, 12, 2, 10, 3, 1, 1, 1, 2, 7, 63}
	fields := bitutil.ExtractFieldsFromFrames(frames, widths)

	lat := bitutil.SignExtend(fields[0], 16)
	lon := bitutil.SignExtend(fields[1], 16)
	refID1 := uint(fields[2])
	freq := uint(fields[3])
	op := uint(fields[4])
	refID2 := uint(fields[5])
	bitrateCode := uint(fields[6])
	dat := uint(fields[7])
	r := uint(fields[8])
	bc := uint(fields[9])
	integrity := uint(fields[10])
	constellation := uint(fields[11])
	txt := fields[12]

	return RadioAlmanac{
		Lat:           float64(lat) * 0.002747,
		Lon:           float64(lon) * 0.005493,
		RefID1:        refID1,
		RefID2:        refID2,
		Freq:          float64(freq)*0.1 + 190,
		Op:            op,
		Bitrate:       bitrateTable27[bitrateCode],
		Dat:           dat,
		R:             r,
		BC:            bc,
		Integrity:     integrity,
		Constellation: constellation,
		Name:          decodeStationName(txt),
	}
}

// decodeStationName slices a 63-bit text field into 9 7-bit ASCII
// characters; a zero character renders as an underscore.
func decodeStationName(txt uint64) string {
	widths := make([]uint, 9)
	for i := range widths {
		widths[i] = 7
	}
	chars := bitutil.ExtractFields(txt, widths)

	name := make([]rune, len(chars))
	for i, c := range chars {
		if c == 0 {
			name[i] = '_'
		} else {
			name[i] = rune(c)
		}
	}
	return string(name)
}
