// Package shiftregister implements the two-word rolling shift register at
// the heart of the DGPS bit-synchronous decoder.  Every incoming bit is fed
// through Step, which maintains the 62-bit (plus two pre-bits) window that
// the M.823 parity check and header sync detector both operate on.
package shiftregister

import "github.com/goblimey/go-dgps/dgps/parity"

// dataAndParityMask isolates the 24 data bits (bits 29..6) of a 32-bit
// shifted word, excluding the two leading pre-bits and the 6 trailing
// parity bits.
const dataAndParityMask = 0x3FFFFFC0

// preBitMask is the leading pre-bit (bit 30) that selects whether a word's
// data and parity bits must be polarity-corrected.
const preBitMask = 0x40000000

// ShiftRegister holds the two rolling 32-bit words that, together, carry the
// last 62 shifted bits plus their two leading pre-bits.
type ShiftRegister struct {
	w1 uint32
	w2 uint32
}

// New creates a ShiftRegister with both words zeroed, as at the start of a
// stream.
func New() *ShiftRegister {
	return &ShiftRegister{}
}

// W1 returns the raw (uncorrected) current value of w1.
func (r *ShiftRegister) W1() uint32 { return r.w1 }

// W2 returns the raw (uncorrected) current value of w2.
func (r *ShiftRegister) W2() uint32 { return r.w2 }

// Step shifts one incoming bit (0 or 1) into w1 and carries w1's old bit 29
// into the bottom of w2. It stores raw bits only: the D30* polarity
// correction is applied when reading, by Corrected.
func (r *ShiftRegister) Step(bit byte) {
	carry := r.w1&0x20000000 != 0

	r.w2 <<= 1
	if carry {
		r.w2 |= 1
	}

	r.w1 = (r.w1 << 1) ^ uint32(bit&0x01)
}

// Corrected applies the D30* polarity correction to a raw shifted word: if
// its leading pre-bit (bit 30) is set, the 24 data bits are flipped; the
// pre-bits and parity bits are left as they are.
func Corrected(word uint32) uint32 {
	if word&preBitMask != 0 {
		return word ^ dataAndParityMask
	}
	return word
}

// CorrectedW1 returns the polarity-corrected value of w1.
func (r *ShiftRegister) CorrectedW1() uint32 { return Corrected(r.w1) }

// CorrectedW2 returns the polarity-corrected value of w2.
func (r *ShiftRegister) CorrectedW2() uint32 { return Corrected(r.w2) }

// ParityOK reports whether both w1 and w2, after polarity correction, carry
// valid M.823 parity.  This is the "streaming gate": while it's false no
// header can possibly start at the current bit position.
func (r *ShiftRegister) ParityOK() bool {
	return parity.Valid(r.CorrectedW1()) && parity.Valid(r.CorrectedW2())
}

// W1ParityOK reports whether w1 alone, after polarity correction, carries
// valid M.823 parity. Used when reading a message body one frame at a time,
// where only the frame just shifted in (w1) needs checking.
func (r *ShiftRegister) W1ParityOK() bool {
	return parity.Valid(r.CorrectedW1())
}

// Payload extracts the 24 data bits from a corrected 32-bit word, discarding
// the two pre-bits and the 6 trailing parity bits.
func Payload(correctedWord uint32) uint32 {
	return (correctedWord & dataAndParityMask) >> 6
}

// W1Payload returns the 24-bit data payload of the corrected w1.
func (r *ShiftRegister) W1Payload() uint32 { return Payload(r.CorrectedW1()) }

// W2Payload returns the 24-bit data payload of the corrected w2.
func (r *ShiftRegister) W2Payload() uint32 { return Payload(r.CorrectedW2()) }
