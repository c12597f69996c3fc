package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// cyrillicBase is the offset added to bytes >= 128 when remapping the
// 8-bit GLONASS character set to Unicode (see ITU-R M.823-3 table 4).
const cyrillicBase = 0x410 - 0x80

// DecodeFreeText decodes a type 36 message body: each 24-bit frame carries
// three 8-bit characters, remapped from the GLONASS 8-bit Cyrillic set to
// Unicode code points.
func DecodeFreeText(frames []uint32) string {
	runes := make([]rune, 0, len(frames)*3)
	for _, f := range frames {
		chars := bitutil.ExtractFields(uint64(f), []uint{8, 8, 8})
		for _, c := range chars {
			if c < 128 {
				runes = append(runes, rune(c))
			} else {
				runes = append(runes, rune(c)+cyrillicBase)
			}
		}
	}
	return string(runes)
}
