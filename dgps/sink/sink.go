// Package sink defines the pluggable output target for decoded DGPS
// records. A Stdout implementation renders the exact text lines the
// decoder's standard output is specified to produce; a Recording
// implementation captures structured calls for tests, without any text
// parsing.
package sink

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatFloat renders v the way Python's str(float) does: the shortest
// decimal representation that round-trips, but always with a decimal
// point, so a whole-valued float like 190.0 never collapses to "190".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Sink receives one call per decoded record or protocol event. Every method
// corresponds to exactly one output line (or, for Header, one of two line
// shapes depending on debug mode).
type Sink interface {
	// Header emits the per-message sync/header status line. The two bit
	// strings are included only when debug is true.
	Header(count uint64, w1bits, w2bits string, debug bool, msgtype, stationid uint, modZ float64, seq, msglen, stationhealth uint)

	// FrameDump emits the raw frame dump line for a message body.
	FrameDump(msgtype, msglen uint, frames []uint32, numrecords int)

	// StationPosition emits a type 3 station ECEF position record.
	StationPosition(x, y, z float64)

	// ConstellationHealth emits one type 5 per-satellite health record.
	ConstellationHealth(satid, iod, health uint, cno string, enable, newSat, loss uint, ttu float64, reserved, unassigned uint)

	// BlankLine emits an empty line (used after a type 5 satellite list).
	BlankLine()

	// Almanac emits a type 7 or type 35 station almanac record. tag is "T7"
	// or "T35".
	Almanac(tag string, lat, lon float64, rng uint, freq float64, health, stid uint, bitrate int, mod, sync, coding uint)

	// SatCorrection emits a type 1, 9 or 31 per-satellite pseudorange
	// correction record. tag is "T1Sat", "T9Sat" or "T31Sat"; idTail is the
	// already-formatted trailing issue-of-data field(s) ("iod" for GPS,
	// "r tb" for GLONASS).
	SatCorrection(tag string, satid, s, udre uint, psc, rrc float64, idTail string)

	// RadioAlmanac emits a type 27 station radio almanac record.
	RadioAlmanac(lat, lon float64, refid1, refid2 uint, freq float64, op uint, bitrate int, dat, r, bc, integr, constFlag uint, name string)

	// FreeText emits a type 36 free-text record.
	FreeText(text string)

	// StoreEntry emits one SatelliteStore dump line. tag is "T1"/"T9" or
	// "T31".
	StoreEntry(tag string, tick uint64, satid, iod, s, udre uint, psc, rrc float64, updateCount uint)

	// StoreTerminator emits the store dump's closing line.
	StoreTerminator(tag string)

	// Unknown emits the unrecognised-message-type line.
	Unknown(msgtype uint)

	// Done emits the end-of-stream line.
	Done()
}

// Stdout renders every Sink call as the exact text line specified for
// standard output.
type Stdout struct {
	w io.Writer
}

// NewStdout wraps w as a Sink.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

func (s *Stdout) Header(count uint64, w1bits, w2bits string, debug bool, msgtype, stationid uint, modZ float64, seq, msglen, stationhealth uint) {
	if debug {
		fmt.Fprintf(s.w, "S %d %s %s %d %d %.1f %d %d %d\n",
			count, w1bits, w2bits, msgtype, stationid, modZ, seq, msglen, stationhealth)
		return
	}
	fmt.Fprintf(s.w, "S %d %d %d %.1f %d %d %d\n",
		count, msgtype, stationid, modZ, seq, msglen, stationhealth)
}

func (s *Stdout) FrameDump(msgtype, msglen uint, frames []uint32, numrecords int) {
	hexFrames := make([]string, len(frames))
	for i, f := range frames {
		hexFrames[i] = fmt.Sprintf("%06x", f)
	}
	fmt.Fprintf(s.w, "type %d message received: %d [%s] %d\n",
		msgtype, msglen, strings.Join(hexFrames, " "), numrecords)
}

func (s *Stdout) StationPosition(x, y, z float64) {
	fmt.Fprintf(s.w, "T3 %s %s %s\n", formatFloat(x), formatFloat(y), formatFloat(z))
}

func (s *Stdout) ConstellationHealth(satid, iod, health uint, cno string, enable, newSat, loss uint, ttu float64, reserved, unassigned uint) {
	fmt.Fprintf(s.w, "T5 %d %d %d %s %d %d %d %s %d %d\n",
		satid, iod, health, cno, enable, newSat, loss, formatFloat(ttu), reserved, unassigned)
}

func (s *Stdout) BlankLine() {
	fmt.Fprintln(s.w)
}

func (s *Stdout) Almanac(tag string, lat, lon float64, rng uint, freq float64, health, stid uint, bitrate int, mod, sync, coding uint) {
	fmt.Fprintf(s.w, "%s %.7f %.7f %d %s %d %d %d %d %d %d\n",
		tag, lat, lon, rng, formatFloat(freq), health, stid, bitrate, mod, sync, coding)
}

func (s *Stdout) SatCorrection(tag string, satid, sc, udre uint, psc, rrc float64, idTail string) {
	fmt.Fprintf(s.w, "%s %d %d %d %.2f %.2f %s\n", tag, satid, sc, udre, psc, rrc, idTail)
}

func (s *Stdout) RadioAlmanac(lat, lon float64, refid1, refid2 uint, freq float64, op uint, bitrate int, dat, r, bc, integr, constFlag uint, name string) {
	fmt.Fprintf(s.w, "T27 %.7f %.7f %d %d %s %d %d %d %d %d %d %d %s\n",
		lat, lon, refid1, refid2, formatFloat(freq), op, bitrate, dat, r, bc, integr, constFlag, name)
}

func (s *Stdout) FreeText(text string) {
	fmt.Fprintf(s.w, "T36 %s\n", text)
}

func (s *Stdout) StoreEntry(tag string, tick uint64, satid, iod, sc, udre uint, psc, rrc float64, updateCount uint) {
	fmt.Fprintf(s.w, "%s %6d %6d %6d %6d %6d %6.2f %6.2f %6d\n",
		tag, tick, satid, iod, sc, udre, psc, rrc, updateCount)
}

func (s *Stdout) StoreTerminator(tag string) {
	fmt.Fprintf(s.w, "%s-----------\n", tag)
}

func (s *Stdout) Unknown(msgtype uint) {
	fmt.Fprintf(s.w, "unknown type %d\n", msgtype)
}

func (s *Stdout) Done() {
	fmt.Fprintln(s.w, "done")
}
