// Package bitutil provides general-purpose bit-field extraction helpers used
// throughout the DGPS decoder.  The M.823 wire format packs everything as
// unaligned bitfields inside 24-bit frames, so every message decoder needs
// the same primitives: pull n bits from a bit position, recover a signed
// value from a two's-complement field, and slice a value into a declared
// list of field widths.
package bitutil

// GetBitsAsUint64 extracts len bits from a slice of bytes, starting at bit
// position pos, and returns them as a uint64.  See RTKLIB's getbitu().
func GetBitsAsUint64(buff []byte, pos uint, length uint) uint64 {
	const u64One uint64 = 1
	var result uint64
	for i := pos; i < pos+length; i++ {
		byteNumber := i / 8
		byteContents := uint64(buff[byteNumber])
		shiftBy := 7 - i%8
		bit := (byteContents >> shiftBy) & u64One
		result = (result << 1) | bit
	}
	return result
}

// SignExtend interprets the bottom width bits of v (an already-extracted
// unsigned field) as a two's-complement signed value and sign-extends it to
// an int64.  Used for fields that have already been pulled out of a wider
// concatenated word by ExtractFields, since the field isn't contiguous in
// the original byte stream and so can't be sign-extended at extraction time.
func SignExtend(v uint64, width uint) int64 {
	signBit := uint64(1) << (width - 1)
	if v&signBit == 0 {
		return int64(v)
	}
	return int64(v) - int64(signBit<<1)
}

// ExtractFields slices a value v, which holds bitWidth significant bits, into
// the fields named by widths, most-significant field first.  This mirrors
// the Python original's __extractdata: fields are read off the bottom
// upwards and the results reversed, so that the returned slice is in the
// same top-down order as widths.  A width of 0 produces a zero element at
// that position (the "not present" slot) and consumes no bits.
func ExtractFields(v uint64, widths []uint) []uint64 {
	result := make([]uint64, len(widths))
	for i := len(widths) - 1; i >= 0; i-- {
		w := widths[i]
		if w == 0 {
			result[i] = 0
			continue
		}
		mask := (uint64(1) << w) - 1
		result[i] = v & mask
		v >>= w
	}
	return result
}

// FramesToBytes packs a sequence of 24-bit data frames into a byte slice,
// three bytes per frame, most significant byte first, suitable for
// GetBitsAsUint64 or ExtractFieldsFromFrames. Frame values outside the low
// 24 bits are ignored.
func FramesToBytes(frames []uint32) []byte {
	buff := make([]byte, len(frames)*3)
	for i, f := range frames {
		buff[i*3] = byte(f >> 16)
		buff[i*3+1] = byte(f >> 8)
		buff[i*3+2] = byte(f)
	}
	return buff
}

// ExtractFieldsFromFrames slices a sequence of 24-bit frames into the
// fields named by widths, most-significant field first, exactly as
// ExtractFields does for a single value but without requiring the frames'
// combined width to fit in 64 bits. When widths sum to less than the
// frames' total bit width, the leading (unused) bits are skipped, matching
// ExtractFields' behaviour of silently discarding whatever doesn't fit
// in the declared fields. A width of 0 produces a zero element and
// consumes no bits.
func ExtractFieldsFromFrames(frames []uint32, widths []uint) []uint64 {
	buff := FramesToBytes(frames)
	totalBits := uint(len(frames)) * 24

	var sum uint
	for _, w := range widths {
		sum += w
	}

	pos := totalBits - sum
	result := make([]uint64, len(widths))
	for i, w := range widths {
		if w == 0 {
			result[i] = 0
			continue
		}
		result[i] = GetBitsAsUint64(buff, pos, w)
		pos += w
	}
	return result
}
