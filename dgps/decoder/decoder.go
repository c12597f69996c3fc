// Package decoder wires the bit-synchronous shift register, header sync
// detector, frame reader, per-type message handlers and satellite stores
// into the run loop that consumes a BitSource and emits decoded records to
// a Sink.
package decoder

import (
	"fmt"
	"log"

	"github.com/goblimey/go-dgps/dgps/bitsource"
	"github.com/goblimey/go-dgps/dgps/frame"
	"github.com/goblimey/go-dgps/dgps/header"
	"github.com/goblimey/go-dgps/dgps/messages"
	"github.com/goblimey/go-dgps/dgps/satstore"
	"github.com/goblimey/go-dgps/dgps/shiftregister"
	"github.com/goblimey/go-dgps/dgps/sink"
)

// cleanupInterval is the number of bit ticks that must elapse since a
// store's last cleanup before the decoder runs another one.
const cleanupInterval = 1000

// Decoder owns the bit counter, the two satellite stores, the output sink
// and the shift register, and runs the single-threaded decode loop.
type Decoder struct {
	src       bitsource.Source
	reg       *shiftregister.ShiftRegister
	sink      sink.Sink
	logger    *log.Logger
	debug     bool
	debugBits bool
	removeold uint64

	tick uint64

	gpsStore     *satstore.Store
	glonassStore *satstore.Store

	lastGPSCleanup     uint64
	lastGLONASSCleanup uint64
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithDebug enables the two raw bit strings on every header line, and the
// SatelliteStore add/delete trace on the attached logger.
func WithDebug(debug bool) Option {
	return func(d *Decoder) { d.debug = debug }
}

// WithDebugBits enables the raw, non-preamble per-bit trace on the attached
// logger while hunting for sync. Off by default: it is extremely verbose.
func WithDebugBits(debugBits bool) Option {
	return func(d *Decoder) { d.debugBits = debugBits }
}

// WithLogger attaches a diagnostic logger. A nil logger (the default)
// disables diagnostic output entirely, regardless of WithDebug/WithDebugBits.
func WithLogger(logger *log.Logger) Option {
	return func(d *Decoder) { d.logger = logger }
}

// WithRemoveOld overrides the default satellite store eviction threshold.
func WithRemoveOld(removeold uint64) Option {
	return func(d *Decoder) { d.removeold = removeold }
}

// New creates a Decoder reading from src and writing to out.
func New(src bitsource.Source, out sink.Sink, opts ...Option) *Decoder {
	d := &Decoder{
		src:       src,
		reg:       shiftregister.New(),
		sink:      out,
		removeold: satstore.DefaultRemoveOld,
	}
	for _, opt := range opts {
		opt(d)
	}

	var storeLogger *log.Logger
	if d.debug {
		storeLogger = d.logger
	}
	d.gpsStore = satstore.New(d.removeold, storeLogger)
	d.glonassStore = satstore.New(d.removeold, storeLogger)

	return d
}

func (d *Decoder) debugf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

// Run consumes bits from the source until it is exhausted, emitting
// decoded records to the sink. It returns after emitting the "done" line.
func (d *Decoder) Run() {
	for {
		bits, ok := d.src.Get(1)
		if len(bits) == 0 {
			d.sink.Done()
			return
		}
		d.reg.Step(bits[0])
		d.tick++

		if !d.reg.ParityOK() {
			if d.debugBits {
				d.debugf("%d %032b %032b", d.tick, d.reg.CorrectedW1(), d.reg.CorrectedW2())
			}
			if !ok {
				d.sink.Done()
				return
			}
			continue
		}

		w1Payload := d.reg.W1Payload()
		w2Payload := d.reg.W2Payload()

		if !header.HasSync(w2Payload) {
			if d.debugBits {
				d.debugf("%d %032b %032b", d.tick, d.reg.CorrectedW1(), d.reg.CorrectedW2())
			}
			if !ok {
				d.sink.Done()
				return
			}
			continue
		}

		h := header.Decode(w2Payload, w1Payload)
		d.sink.Header(d.tick, bitString(d.reg.CorrectedW1()), bitString(d.reg.CorrectedW2()), d.debug,
			h.MsgType, h.StationID, h.ModZ, h.Seq, h.MsgLen, h.StationHealth)

		d.dispatch(h)

		if !ok {
			d.sink.Done()
			return
		}
	}
}

func bitString(w uint32) string {
	return fmt.Sprintf("%032b", w)
}

// readFrames pulls up to n frames through the shift register and advances
// the tick counter by the number actually read.
func (d *Decoder) readFrames(n uint) []uint32 {
	frames := frame.Read(d.src, d.reg, int(n))
	d.tick += uint64(len(frames)) * 30
	return frames
}

func (d *Decoder) dispatch(h header.Header) {
	switch h.MsgType {
	case 3:
		d.dispatchType3(h.MsgLen)
	case 6:
		d.dispatchType6(h.MsgLen)
	case 5:
		d.dispatchType5(h.MsgLen)
	case 36:
		d.dispatchType36(h.MsgLen)
	case 7, 35:
		d.dispatchAlmanac(h.MsgType, h.MsgLen)
	case 1:
		d.dispatchGPSCorrection(1, h.MsgLen)
	case 9:
		d.dispatchGPSCorrection(9, h.MsgLen)
	case 31:
		d.dispatchGLONASSCorrection(h.MsgLen)
	case 27:
		d.dispatchType27(h.MsgLen)
	default:
		d.sink.Unknown(h.MsgType)
	}
}

func (d *Decoder) dispatchType3(msglen uint) {
	if msglen != 4 {
		return
	}
	frames := d.readFrames(msglen)
	numrecords := len(frames) / 4
	d.sink.FrameDump(3, msglen, frames, numrecords)
	if numrecords == 1 {
		pos := messages.DecodeStationPosition(frames[:4])
		d.sink.StationPosition(pos.X, pos.Y, pos.Z)
	}
}

func (d *Decoder) dispatchType6(msglen uint) {
	if msglen != 0 && msglen != 1 {
		return
	}
	if msglen == 0 {
		return
	}
	d.readFrames(msglen)
}

func (d *Decoder) dispatchType5(msglen uint) {
	if msglen == 0 {
		d.sink.FrameDump(5, msglen, nil, 0)
		return
	}
	frames := d.readFrames(msglen)
	d.sink.FrameDump(5, msglen, frames, len(frames))
	if len(frames) == 0 {
		return
	}
	for _, f := range frames {
		rec := messages.DecodeConstellationHealth(f)
		d.sink.ConstellationHealth(rec.SatID, rec.IOD, rec.DataHealth, cnoString(rec.CNo),
			rec.HealthEnable, rec.NewNavData, rec.LossOfWarn, rec.TimeToUnhealthy,
			rec.Reserved, rec.Unassigned)
	}
	d.sink.BlankLine()
}

func cnoString(cno uint) string {
	return fmt.Sprintf("%d", cno)
}

func (d *Decoder) dispatchType36(msglen uint) {
	if msglen == 0 {
		d.sink.FrameDump(36, msglen, nil, 0)
		return
	}
	frames := d.readFrames(msglen)
	d.sink.FrameDump(36, msglen, frames, len(frames))
	if len(frames) == 0 {
		return
	}
	d.sink.FreeText(messages.DecodeFreeText(frames))
}

func (d *Decoder) dispatchAlmanac(msgtype, msglen uint) {
	if msglen%3 != 0 {
		return
	}
	frames := d.readFrames(msglen)
	numrecords := len(frames) / 3
	d.sink.FrameDump(msgtype, msglen, frames, numrecords)

	tag := "T7"
	if msgtype == 35 {
		tag = "T35"
	}
	for i := 0; i < numrecords; i++ {
		group := frames[i*3 : i*3+3]
		a := messages.DecodeAlmanac(group)
		d.sink.Almanac(tag, a.Lat, a.Lon, a.Range, a.Freq, a.Health, a.StationID,
			a.Bitrate, a.Modulation, a.SyncType, a.Coding)
	}
}

func (d *Decoder) dispatchType27(msglen uint) {
	if msglen%6 != 0 {
		return
	}
	frames := d.readFrames(msglen)
	numrecords := len(frames) / 6
	d.sink.FrameDump(27, msglen, frames, numrecords)

	for i := 0; i < numrecords; i++ {
		group := frames[i*6 : i*6+6]
		r := messages.DecodeRadioAlmanac(group)
		d.sink.RadioAlmanac(r.Lat, r.Lon, r.RefID1, r.RefID2, r.Freq, r.Op, r.Bitrate,
			r.Dat, r.R, r.BC, r.Integrity, r.Constellation, r.Name)
	}
}

func (d *Decoder) dispatchGPSCorrection(msgtype, msglen uint) {
	if msgtype == 9 {
		if msglen != 2 && msglen != 4 && msglen != 5 {
			return
		}
	} else {
		if msglen%5 != 0 && msglen%5 != 2 && msglen%5 != 4 {
			return
		}
	}

	frames := d.readFrames(msglen)
	numSats := messages.SatCountForMsgType(msgtype, uint(len(frames)))
	d.sink.FrameDump(msgtype, msglen, frames, numSats)

	if numSats == 0 {
		return
	}
	corrections := messages.DecodeGPSCorrections(frames, numSats)
	tag := "T1Sat"
	storeTag := "T1"
	if msgtype == 9 {
		tag = "T9Sat"
		storeTag = "T9"
	}
	for _, c := range corrections {
		d.sink.SatCorrection(tag, c.SatID, c.Scale, c.UDRE, c.PSC, c.RRC, fmt.Sprintf("%d", c.IOD))
		d.gpsStore.Update(c.SatID, c.Scale, c.UDRE, c.PSC, c.RRC, c.IOD, d.tick, msgtype)
	}

	d.printStore(d.gpsStore, storeTag)

	if d.tick-d.lastGPSCleanup > cleanupInterval {
		d.lastGPSCleanup = d.tick
		d.gpsStore.Cleanup(d.tick, msgtype)
	}
}

func (d *Decoder) dispatchGLONASSCorrection(msglen uint) {
	if msglen%5 != 0 && msglen%5 != 2 && msglen%5 != 4 {
		return
	}

	frames := d.readFrames(msglen)
	numSats := messages.SatCountForMsgType(31, uint(len(frames)))
	d.sink.FrameDump(31, msglen, frames, numSats)

	if numSats == 0 {
		return
	}
	corrections := messages.DecodeGLONASSCorrections(frames, numSats)
	for _, c := range corrections {
		d.sink.SatCorrection("T31Sat", c.SatID, c.Scale, c.UDRE, c.PSC, c.RRC, fmt.Sprintf("%d %d", c.R, c.TB))
		d.glonassStore.Update(c.SatID, c.Scale, c.UDRE, c.PSC, c.RRC, c.TB, d.tick, 31)
	}

	d.printStore(d.glonassStore, "T31")

	if d.tick-d.lastGLONASSCleanup > cleanupInterval {
		d.lastGLONASSCleanup = d.tick
		d.glonassStore.Cleanup(d.tick, 31)
	}
}

func (d *Decoder) printStore(store *satstore.Store, tag string) {
	if store.Len() == 0 {
		return
	}
	for _, k := range store.Keys() {
		e, _ := store.Get(k.SatID, k.IOD)
		d.sink.StoreEntry(tag, e.Tick, k.SatID, k.IOD, e.Scale, e.UDRE, e.PSC, e.RRC, e.UpdateCount)
	}
	d.sink.StoreTerminator(tag)
}
