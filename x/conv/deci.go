package conv

// AppendDeci renders a tenths fixed-point value as a decimal string,
// e.g. 213 => "21.3", -7 => "-0.7". No allocations beyond dst growth.
func AppendDeci(dst []byte, v int64) []byte {
	var buf [20]byte
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = append(dst, Itoa(buf[:], v/10)...)
	dst = append(dst, '.')
	return append(dst, byte('0'+v%10))
}
