// Command pongsim plays pong on an emulated panel, either in a terminal or
// headless for a fixed number of ticks.
//
// It runs the same tft and pong code as the firmware; only the bus and the
// joystick are replaced.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/tinygo-org/tftpong/pong"
	"github.com/tinygo-org/tftpong/tft"
	"github.com/tinygo-org/tftpong/tft/tftsim"
)

func main() {
	log.SetPrefix("pongsim: ")
	log.SetFlags(0)

	var (
		ticksFlag  = flag.Int("ticks", 0, "run this many ticks without a terminal and exit")
		pngFlag    = flag.String("png", "", "write the final panel contents to `file`")
		periodFlag = flag.Duration("period", pong.DefaultConfig().TickPeriod, "tick period in interactive mode")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-period d] [-ticks n] [-png file]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 0 || *ticksFlag < 0 {
		flag.Usage()
	}

	cfg := pong.DefaultConfig()
	cfg.TickPeriod = *periodFlag

	panel := tftsim.New(int(cfg.Width), int(cfg.Height))
	display := tft.New(panel, panel.DC(), nil, nil)
	if err := display.Configure(tft.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
	if err := display.FillScreen(cfg.Background); err != nil {
		log.Fatal(err)
	}

	var err error
	if *ticksFlag > 0 {
		err = headless(display, panel, cfg, *ticksFlag)
	} else {
		err = interactive(display, panel, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	if name := *pngFlag; name != "" {
		if err := writePNG(name, panel.Image()); err != nil {
			log.Fatal(err)
		}
	}
}

func headless(display *tft.Device, panel *tftsim.Panel, cfg pong.Config, ticks int) error {
	stick := pong.JoystickFunc(func() uint16 { return pong.SampleCenter })
	game := pong.New(display, stick, cfg)
	for i := 0; i < ticks; i++ {
		if err := game.Tick(); err != nil {
			return err
		}
	}
	log.Printf("%d ticks, %d serves, %d bus writes", game.Ticks(), game.Resets(), panel.Writes())
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
