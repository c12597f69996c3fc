// Package header decodes the two-word M.823 DGPS message header: the
// preamble, message type, station ID, Z-count, sequence number, message
// length and station health.
package header

import "github.com/goblimey/go-dgps/dgps/bitutil"

// Preamble is the fixed 8-bit pattern that marks the start of a header.
const Preamble = 0x66

// ZCountScale converts the 13-bit mod_z field to seconds.
const ZCountScale = 0.6

// Header is the decoded M.823 message header.
type Header struct {
	MsgType       uint
	StationID     uint
	ModZ          float64
	Seq           uint
	MsgLen        uint
	StationHealth uint
}

// HasSync reports whether the top 8 bits of a corrected w2 payload (the 24
// data bits of the second header word) match the DGPS preamble.
func HasSync(w2Payload uint32) bool {
	return w2Payload>>16 == Preamble
}

// Decode extracts the header fields from the corrected 24-bit payloads of
// w2 (stationid/msgtype) and w1 (Z-count/seq/msglen/health).  w2Payload's
// top 8 bits are assumed to already have matched Preamble.
func Decode(w2Payload, w1Payload uint32) Header {
	w2Fields := bitutil.ExtractFields(uint64(w2Payload), []uint{8, 6, 10})
	msgType := w2Fields[1]
	stationID := w2Fields[2]

	w1Fields := bitutil.ExtractFields(uint64(w1Payload), []uint{13, 3, 5, 3})
	modZ := float64(w1Fields[0]) * ZCountScale
	seq := w1Fields[1]
	msgLen := w1Fields[2]
	stationHealth := w1Fields[3]

	return Header{
		MsgType:       uint(msgType),
		StationID:     uint(stationID),
		ModZ:          modZ,
		Seq:           uint(seq),
		MsgLen:        uint(msgLen),
		StationHealth: uint(stationHealth),
	}
}
