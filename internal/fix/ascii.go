package fix

// AppendInt writes v as signed decimal ASCII into dst starting at index 0
// and returns the number of bytes written. Zero encodes as "0", negative
// values carry a leading '-'. dst must be large enough for the rendering.
func AppendInt(dst []byte, v int64) int {
	if v == 0 {
		dst[0] = '0'
		return 1
	}
	n := 0
	u := uint64(v)
	if v < 0 {
		dst[0] = '-'
		n = 1
		u = uint64(^v) + 1
	}
	digits := 0
	for c := u; c > 0; c /= 10 {
		digits++
	}
	for i := n + digits - 1; u > 0; i-- {
		dst[i] = byte('0' + u%10)
		u /= 10
	}
	return n + digits
}

// AppendFloat writes v as [sign][int]'.'[frac] with exactly decimals
// fractional digits, truncating the remainder. A zero integer part renders
// as "0"; negative zero drops the sign.
func AppendFloat(dst []byte, v float64, decimals int) int {
	n := 0
	if v < 0 {
		dst[0] = '-'
		n = 1
		v = -v
	}
	ip := int64(v)
	n += AppendInt(dst[n:], ip)
	dst[n] = '.'
	n++
	fr := v - float64(ip)
	for i := 0; i < decimals; i++ {
		fr *= 10
		d := int(fr)
		fr -= float64(d)
		dst[n] = byte('0' + d)
		n++
	}
	return n
}

// ParseInt reads signed decimal ASCII. Any byte other than digits and a
// leading '-' fails the parse.
func ParseInt(src []byte) (int64, bool) {
	if len(src) == 0 {
		return 0, false
	}
	i := 0
	neg := src[0] == '-'
	if neg {
		i = 1
	}
	var v int64
	for ; i < len(src); i++ {
		d := src[i] - '0'
		if d > 9 {
			return 0, false
		}
		v = 10*v + int64(d)
	}
	if neg {
		v = -v
	}
	return v, true
}

// ParseFloat reads [sign][int]['.'[frac]] decimal ASCII. Any other byte
// fails the parse.
func ParseFloat(src []byte) (float64, bool) {
	if len(src) == 0 {
		return 0, false
	}
	i := 0
	neg := src[0] == '-'
	if neg {
		i = 1
	}
	var v float64
	for ; i < len(src); i++ {
		d := src[i] - '0'
		if d <= 9 {
			v = 10*v + float64(d)
			continue
		}
		if src[i] == '.' {
			i++
			break
		}
		return 0, false
	}
	div := 10.0
	for ; i < len(src); i++ {
		d := src[i] - '0'
		if d > 9 {
			return 0, false
		}
		v += float64(d) / div
		div *= 10
	}
	if neg {
		v = -v
	}
	return v, true
}
