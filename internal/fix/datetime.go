package fix

import "time"

// Precision selects the sub-second detail of a FIX UTC timestamp.
type Precision int

const (
	Seconds Precision = iota
	Millis
	Micros
	Nanos
)

// Width returns the encoded byte count of a timestamp at this precision.
func (p Precision) Width() int {
	switch p {
	case Millis:
		return 21
	case Micros:
		return 24
	case Nanos:
		return 27
	default:
		return 17
	}
}

func put2(dst []byte, v int) {
	dst[1] = byte('0' + v%10)
	dst[0] = byte('0' + v/10%10)
}

// AppendUTC writes ts (epoch nanoseconds) as YYYYMMDD-HH:MM:SS with the
// requested sub-second digits and returns the bytes written: 17, 21, 24 or
// 27. dst must have room for the full width.
func AppendUTC(dst []byte, ts int64, p Precision) int {
	t := time.Unix(ts/1e9, 0).UTC()
	year, month, day := t.Date()
	dst[3] = byte('0' + year%10)
	dst[2] = byte('0' + year/10%10)
	dst[1] = byte('0' + year/100%10)
	dst[0] = byte('0' + year/1000%10)
	put2(dst[4:], int(month))
	put2(dst[6:], day)
	dst[8] = '-'
	put2(dst[9:], t.Hour())
	dst[11] = ':'
	put2(dst[12:], t.Minute())
	dst[14] = ':'
	put2(dst[15:], t.Second())
	if p == Seconds {
		return 17
	}
	nsec := ts % 1e9
	if nsec < 0 {
		nsec = 0
	}
	dst[17] = '.'
	size := 21
	put3(dst[18:], int(nsec/1e6))
	if p >= Micros {
		size = 24
		put3(dst[21:], int(nsec/1e3%1e3))
	}
	if p >= Nanos {
		size = 27
		put3(dst[24:], int(nsec%1e3))
	}
	return size
}

func put3(dst []byte, v int) {
	dst[2] = byte('0' + v%10)
	dst[1] = byte('0' + v/10%10)
	dst[0] = byte('0' + v/100%10)
}

func get2(src []byte) int {
	return int(src[0]-'0')*10 + int(src[1]-'0')
}

func get3(src []byte) int64 {
	return int64(src[0]-'0')*100 + int64(src[1]-'0')*10 + int64(src[2]-'0')
}

// ParseUTC reads a FIX UTC timestamp and returns epoch nanoseconds. The
// precision is detected from the input length; inputs between two widths
// take the longest matching prefix.
func ParseUTC(src []byte) int64 {
	year := 0
	for i := 0; i < 4; i++ {
		year = 10*year + int(src[i]-'0')
	}
	month := get2(src[4:])
	day := get2(src[6:])
	hour := get2(src[9:])
	minute := get2(src[12:])
	second := get2(src[15:])
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	sec := t.Unix()
	if len(src) < 21 {
		return sec * 1e9
	}
	frac := get3(src[18:]) * 1e6
	if len(src) >= 24 {
		frac += get3(src[21:]) * 1e3
	}
	if len(src) >= 27 {
		frac += get3(src[24:])
	}
	if frac < 0 {
		frac = 0
	} else if frac >= 1e9 {
		frac = 1e9 - 1
	}
	return sec*1e9 + frac
}
