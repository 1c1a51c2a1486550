package ppu

import "encoding/hex"

// rgbPaletteHex is the canonical 64-entry NES RGB palette, one 6-hex-digit
// RGB triple per palette index, in palette order $00-$3F.
const rgbPaletteHex = "6d6d6d0024920000db6d49db92006db6006db624009249006d4900244900006d24009200004949" +
	"000000000000000000b6b6b6006ddb0049ff9200ffb600ffff0092ff0000db6d00926d00249200" +
	"00920000b66d009292242424000000000000ffffff6db6ff9292ffdb6dffff00ffff6dffff9200" +
	"ffb600dbdb006ddb0000ff0049ffdb00ffff494949000000000000ffffffb6dbffdbb6ffffb6ff" +
	"ff92ffffb6b6ffdb92ffff49ffff6db6ff4992ff6d49ffdb92dbff929292000000000000"

// RGB is the 64-entry NES master palette, decoded once at init.
var RGB [64][3]byte

func init() {
	raw, err := hex.DecodeString(rgbPaletteHex)
	if err != nil || len(raw) != 64*3 {
		panic("ppu: embedded NES palette is malformed")
	}
	for i := 0; i < 64; i++ {
		RGB[i] = [3]byte{raw[i*3], raw[i*3+1], raw[i*3+2]}
	}
}
