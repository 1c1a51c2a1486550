// Command chrdump renders the pattern tables of an iNES ROM's CHR data
// (or a raw CHR dump) to a PNG, for inspecting tile graphics outside a
// running emulator.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/bits"
	"os"

	"golang.org/x/image/draw"

	"github.com/aperez/nescore/cartridge"
	"github.com/aperez/nescore/ppu"
)

var (
	in    = flag.String("in", "", "Path to an iNES ROM (.nes) or raw CHR dump")
	out   = flag.String("out", "chr.png", "Output PNG path")
	scale = flag.Int("scale", 4, "Nearest-neighbor upscale factor")
)

// tileIndices maps a tile's 2-bit pixel values to NES palette indices.
// With no in-game palette loaded this is a fixed 4-shade ramp, enough to
// tell tile shapes apart.
var tileIndices = [4]uint8{0x0F, 0x00, 0x10, 0x30}

func main() {
	flag.Parse()
	if *in == "" {
		log.Fatal("-in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("can't read %s: %v", *in, err)
	}

	chr := data
	if len(data) > 4 && string(data[0:3]) == "NES" {
		cart, err := cartridge.LoadINES(data)
		if err != nil {
			log.Fatalf("can't parse iNES image: %v", err)
		}
		chr = cart.CHR
	}
	if len(chr) == 0 {
		log.Fatal("no CHR data to render")
	}

	img := renderPatternTables(chr)

	scaled := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*(*scale), img.Bounds().Dy()*(*scale)))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("can't create %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, scaled); err != nil {
		log.Fatalf("can't encode png: %v", err)
	}
}

// renderPatternTables draws every 8x8 tile in chr into a 128x128-per-4KiB-bank
// image, laid out 16 tiles wide, matching the standard pattern-table grid.
func renderPatternTables(chr []uint8) *image.RGBA {
	const tilesWide = 16
	banks := (len(chr) + 4095) / 4096
	height := (banks + 1) / 2 * 128
	if banks == 1 {
		height = 128
	}
	width := tilesWide * 8
	if banks > 1 {
		width = tilesWide * 8 * 2
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	tilesPerBank := 256
	for bank := 0; bank*4096 < len(chr); bank++ {
		base := bank * 4096
		for t := 0; t < tilesPerBank && base+t*16+15 < len(chr); t++ {
			tileOX := (t % tilesWide) * 8
			if bank%2 == 1 {
				tileOX += tilesWide * 8
			}
			tileOY := (t/tilesWide)*8 + (bank/2)*128
			drawTile(img, chr[base+t*16:base+t*16+16], tileOX, tileOY)
		}
	}
	return img
}

func drawTile(img *image.RGBA, tile []uint8, ox, oy int) {
	for row := 0; row < 8; row++ {
		lo := bits.Reverse8(tile[row])
		hi := bits.Reverse8(tile[row+8])
		for col := 0; col < 8; col++ {
			bit := uint(col)
			v := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
			rgb := ppu.RGB[tileIndices[v]]
			img.Set(ox+col, oy+row, color.RGBA{rgb[0], rgb[1], rgb[2], 0xFF})
		}
	}
}
