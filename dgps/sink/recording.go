package sink

// Recording captures every Sink call as a structured record, for tests that
// need to assert on decoded content without parsing text lines.
type Recording struct {
	Headers              []HeaderRecord
	FrameDumps           []FrameDumpRecord
	StationPositions     []StationPositionRecord
	ConstellationHealths []ConstellationHealthRecord
	BlankLines           int
	Almanacs             []AlmanacRecord
	SatCorrections       []SatCorrectionRecord
	RadioAlmanacs        []RadioAlmanacRecord
	FreeTexts            []string
	StoreEntries         []StoreEntryRecord
	StoreTerminators     []string
	Unknowns             []uint
	DoneCount            int
}

type HeaderRecord struct {
	Count                             uint64
	W1Bits, W2Bits                    string
	Debug                             bool
	MsgType, StationID                uint
	ModZ                              float64
	Seq, MsgLen, StationHealth        uint
}

type FrameDumpRecord struct {
	MsgType, MsgLen uint
	Frames          []uint32
	NumRecords      int
}

type StationPositionRecord struct{ X, Y, Z float64 }

type ConstellationHealthRecord struct {
	SatID, IOD, Health                   uint
	CNo                                  string
	Enable, NewSat, Loss                 uint
	TTU                                  float64
	Reserved, Unassigned                 uint
}

type AlmanacRecord struct {
	Tag                       string
	Lat, Lon                  float64
	Range                     uint
	Freq                      float64
	Health, StationID         uint
	Bitrate                   int
	Mod, Sync, Coding         uint
}

type SatCorrectionRecord struct {
	Tag          string
	SatID, Scale, UDRE uint
	PSC, RRC     float64
	IDTail       string
}

type RadioAlmanacRecord struct {
	Lat, Lon                         float64
	RefID1, RefID2                   uint
	Freq                             float64
	Op                               uint
	Bitrate                          int
	Dat, R, BC, Integr, ConstFlag    uint
	Name                             string
}

type StoreEntryRecord struct {
	Tag                        string
	Tick                       uint64
	SatID, IOD, Scale, UDRE    uint
	PSC, RRC                   float64
	UpdateCount                uint
}

// NewRecording creates an empty Recording sink.
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) Header(count uint64, w1bits, w2bits string, debug bool, msgtype, stationid uint, modZ float64, seq, msglen, stationhealth uint) {
	r.Headers = append(r.Headers, HeaderRecord{count, w1bits, w2bits, debug, msgtype, stationid, modZ, seq, msglen, stationhealth})
}

func (r *Recording) FrameDump(msgtype, msglen uint, frames []uint32, numrecords int) {
	r.FrameDumps = append(r.FrameDumps, FrameDumpRecord{msgtype, msglen, frames, numrecords})
}

func (r *Recording) StationPosition(x, y, z float64) {
	r.StationPositions = append(r.StationPositions, StationPositionRecord{x, y, z})
}

func (r *Recording) ConstellationHealth(satid, iod, health uint, cno string, enable, newSat, loss uint, ttu float64, reserved, unassigned uint) {
	r.ConstellationHealths = append(r.ConstellationHealths, ConstellationHealthRecord{
		satid, iod, health, cno, enable, newSat, loss, ttu, reserved, unassigned,
	})
}

func (r *Recording) BlankLine() {
	r.BlankLines++
}

func (r *Recording) Almanac(tag string, lat, lon float64, rng uint, freq float64, health, stid uint, bitrate int, mod, sync, coding uint) {
	r.Almanacs = append(r.Almanacs, AlmanacRecord{tag, lat, lon, rng, freq, health, stid, bitrate, mod, sync, coding})
}

func (r *Recording) SatCorrection(tag string, satid, sc, udre uint, psc, rrc float64, idTail string) {
	r.SatCorrections = append(r.SatCorrections, SatCorrectionRecord{tag, satid, sc, udre, psc, rrc, idTail})
}

func (r *Recording) RadioAlmanac(lat, lon float64, refid1, refid2 uint, freq float64, op uint, bitrate int, dat, rr, bc, integr, constFlag uint, name string) {
	r.RadioAlmanacs = append(r.RadioAlmanacs, RadioAlmanacRecord{lat, lon, refid1, refid2, freq, op, bitrate, dat, rr, bc, integr, constFlag, name})
}

func (r *Recording) FreeText(text string) {
	r.FreeTexts = append(r.FreeTexts, text)
}

func (r *Recording) StoreEntry(tag string, tick uint64, satid, iod, sc, udre uint, psc, rrc float64, updateCount uint) {
	r.StoreEntries = append(r.StoreEntries, StoreEntryRecord{tag, tick, satid, iod, sc, udre, psc, rrc, updateCount})
}

func (r *Recording) StoreTerminator(tag string) {
	r.StoreTerminators = append(r.StoreTerminators, tag)
}

func (r *Recording) Unknown(msgtype uint) {
	r.Unknowns = append(r.Unknowns, msgtype)
}

func (r *Recording) Done() {
	r.DoneCount++
}
