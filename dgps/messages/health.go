package messages

import "github.com/goblimey/go-dgps/dgps/bitutil"

// ConstellationHealth is one satellite's type 5 health record.
type ConstellationHealth struct {
	SatID           uint
	IOD             uint
	DataHealth      uint
	CNo             uint
	HealthEnable    uint
	NewNavData      uint
	LossOfWarn      uint
	TimeToUnhealthy float64
	Reserved        uint
	Unassigned      uint
}

// DecodeConstellationHealth decodes one type 5 frame (24 bits: reserved,
// satid, iod, health, cno, enable, new-data, loss-of-warning,
// time-to-unhealthy, unassigned).
func DecodeConstellationHealth(frame uint32) ConstellationHealth {
	fields := bitutil.ExtractFields(uint64(frame), []uint{1, 5, 1, 3, 5, 1, 1, 1, 4, 2})
	reserved := uint(fields[0])
	satid := uint(fields[1])
	iod := uint(fields[2])
	health := uint(fields[3])
	cno := uint(fields[4])
	enable := uint(fields[5])
	newNavData := uint(fields[6])
	loss := uint(fields[7])
	ttu := uint(fields[8])
	unassigned := uint(fields[9])

	if cno > 0 {
		cno += 24
	}

	return ConstellationHealth{
		SatID:           satid,
		IOD:             iod,
		DataHealth:      health,
		CNo:             cno,
		HealthEnable:    enable,
		NewNavData:      newNavData,
		LossOfWarn:      loss,
		TimeToUnhealthy: float64(ttu) * 300,
		Reserved:        reserved,
		Unassigned:      unassigned,
	}
}
