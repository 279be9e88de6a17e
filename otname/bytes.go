package otname

// Name table fields are stored big-endian, as everywhere in SFNT data.

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}
