package day

// HeaderSize is the fixed byte length of a day header: date key (4),
// block count (4), tail length (2), flags (2).
const HeaderSize = 12

// FooterSize is the fixed byte length of a day footer: the total
// encoded day length, letting a reader locate the start of a day by
// scanning backward from its end.
const FooterSize = 4

// header is the fixed-size prologue of an encoded day.
type header struct {
	DateKey    uint32
	BlockCount uint32
	TailLen    uint16
	Flags      uint16
}

func (h header) appendTo(dst []byte) []byte {
	dst = engine.AppendUint32(dst, h.DateKey)
	dst = engine.AppendUint32(dst, h.BlockCount)
	dst = engine.AppendUint16(dst, h.TailLen)
	dst = engine.AppendUint16(dst, h.Flags)
	return dst
}

func parseHeader(data []byte) header {
	return header{
		DateKey:    engine.Uint32(data[0:4]),
		BlockCount: engine.Uint32(data[4:8]),
		TailLen:    engine.Uint16(data[8:10]),
		Flags:      engine.Uint16(data[10:12]),
	}
}
