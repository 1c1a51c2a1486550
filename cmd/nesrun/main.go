// Command nesrun is a minimal SDL2 host that loads an iNES ROM and runs
// it, presenting each frame in a fixed-size window scaled by -scale.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	_ "net/http/pprof"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/aperez/nescore/nes"
	"github.com/aperez/nescore/ppu"
)

var (
	debug = flag.Bool("debug", false, "If true will log CPU/bus diagnostics and per-frame timing while running")
	cart  = flag.String("cart", "", "Path to an iNES ROM image to load")
	scale = flag.Int("scale", 3, "Scale factor to render the screen at")
	port  = flag.Int("port", 6061, "Port to run the HTTP pprof server on")
)

// fastImage pokes RGBA bytes directly into an SDL surface, avoiding the
// color.Color GC churn Surface.Set incurs per pixel.
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) set(x, y int, r, g, b byte) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	f.data[i+0] = b
	f.data[i+1] = g
	f.data[i+2] = r
	f.data[i+3] = 0xFF
}

func (f *fastImage) blit(frame []uint8) {
	for y := 0; y < ppu.FrameHeight; y++ {
		for x := 0; x < ppu.FrameWidth; x++ {
			idx := frame[y*ppu.FrameWidth+x] & 0x3F
			rgb := ppu.RGB[idx]
			f.set(x, y, rgb[0], rgb[1], rgb[2])
		}
	}
}

func main() {
	flag.Parse()

	if *cart == "" {
		log.Fatal("-cart is required")
	}

	go func() {
		log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", *port), nil))
	}()

	diag := func(kind, format string, args ...any) {
		if *debug {
			log.Printf("["+kind+"] "+format, args...)
		}
	}

	rom, err := ioutil.ReadFile(*cart)
	if err != nil {
		log.Fatalf("can't load rom: %v from path: %s", err, *cart)
	}

	sys := nes.New(nes.Config{Diag: diag})
	if err := sys.LoadROM(rom); err != nil {
		log.Fatalf("can't load rom: %v", err)
	}
	sys.PowerOn()

	var window *sdl.Window
	fi := &fastImage{}

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
			var err error
			window, err = sdl.CreateWindow("nescore", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(ppu.FrameWidth**scale), int32(ppu.FrameHeight**scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			fi.surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("can't get window surface: %v", err)
			}
			fi.data = fi.surface.Pixels()
			wg.Done()
		})
		wg.Wait()
		defer func() {
			window.Destroy()
			sdl.Quit()
		}()

		now := time.Now()
		var tot, cnt time.Duration
		for {
			quit := false
			sdl.Do(func() {
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					if _, ok := event.(*sdl.QuitEvent); ok {
						quit = true
					}
				}
			})
			if quit {
				return
			}

			if _, err := sys.StepFrame(); err != nil {
				log.Fatalf("StepFrame: %v", err)
			}

			sdl.Do(func() {
				fi.blit(sys.FrameBuffer())
				df := time.Since(now)
				tot += df
				cnt++
				if *debug {
					fmt.Printf("Frame took %s average %s\n", df, tot/cnt)
				}
				window.UpdateSurface()
				now = time.Now()
			})
		}
	})
}
