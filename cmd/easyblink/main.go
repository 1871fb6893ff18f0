package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rowr111/easyblink"
	"github.com/rowr111/easyblink/internal/config"
	"github.com/rowr111/easyblink/strip"
)

func main() {
	// ---- Flags (env and config.yaml can override; explicit flags win) ----
	var (
		leds         = flag.Int("leds", 120, "number of LEDs on the strip")
		colorName    = flag.String("color", "rainbow", "pattern color: red | orange | yellow | green | blue | purple | rainbow")
		patternName  = flag.String("pattern", "chase", "pattern: pulse | chase | sparkle | knightrider")
		colorwayName = flag.String("colorway", "", "colorway pattern: fireplace | christmas (overrides -color/-pattern)")
		delayMS      = flag.Int("delay-ms", 20, "delay between frames (ms)")
		driver       = flag.String("driver", "auto", "driver: auto | spi | sim")
		spiPort      = flag.String("spi-port", "", "SPI port name (empty = first available)")
		intensity    = flag.Int("intensity", 255, "APA102 global brightness 1..255")
		cycles       = flag.Int("cycles", 0, "pattern invocations to run (0 = forever)")
		configPath   = flag.String("config", "", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config: defaults, then env, then config.yaml, then flags ----
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("bad environment")
	}
	if *configPath != "" {
		if c, err := config.Load(*configPath); err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding without it")
		} else {
			cfg.Merge(&c)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "leds":
			cfg.LEDs = *leds
		case "color":
			cfg.Color = *colorName
		case "pattern":
			cfg.Pattern = *patternName
		case "colorway":
			cfg.Colorway = *colorwayName
		case "delay-ms":
			cfg.DelayMS = *delayMS
		case "driver":
			cfg.Driver = *driver
		case "spi-port":
			cfg.SPIPort = *spiPort
		case "intensity":
			cfg.Intensity = *intensity
		case "cycles":
			cfg.Cycles = *cycles
		}
	})
	if cfg.Intensity < 1 || cfg.Intensity > 255 {
		log.Fatal().Int("intensity", cfg.Intensity).Msg("intensity must be 1..255")
	}

	// ---- Pick the animation before touching hardware ----
	var (
		useColorway bool
		colorway    easyblink.ColorwayPattern
		col         easyblink.Color
		pat         easyblink.Pattern
	)
	if cfg.Colorway != "" {
		if colorway, err = easyblink.ParseColorwayPattern(cfg.Colorway); err != nil {
			log.Fatal().Err(err).Msg("bad colorway")
		}
		useColorway = true
	} else {
		if col, err = easyblink.ParseColor(cfg.Color); err != nil {
			log.Fatal().Err(err).Msg("bad color")
		}
		if pat, err = easyblink.ParsePattern(cfg.Pattern); err != nil {
			log.Fatal().Err(err).Msg("bad pattern")
		}
	}

	// ---- Open the strip ----
	s, err := openStrip(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("strip init failed")
	}
	ctrl, err := easyblink.NewWithStrip(s)
	if err != nil {
		log.Fatal().Err(err).Msg("controller init failed")
	}
	ctrl.SetDefaultDelay(time.Duration(cfg.DelayMS) * time.Millisecond)

	// ---- Graceful shutdown ----
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}()

	// ---- Run ----
	if useColorway {
		log.Info().
			Str("colorway", colorway.String()).
			Int("leds", ctrl.NumLEDs()).
			Msg("running")
	} else {
		log.Info().
			Str("pattern", pat.String()).
			Str("color", col.String()).
			Int("leds", ctrl.NumLEDs()).
			Int("frames", pat.Frames(col, ctrl.NumLEDs())).
			Msg("running")
	}
	for i := 0; (cfg.Cycles == 0 || i < cfg.Cycles) && ctx.Err() == nil; i++ {
		if useColorway {
			err = ctrl.ExecuteColorwayPattern(colorway, easyblink.UseDefaultDelay)
		} else {
			err = ctrl.ExecutePattern(col, pat, easyblink.UseDefaultDelay)
		}
		if err != nil {
			log.Error().Err(err).Msg("pattern aborted")
			break
		}
	}

	if err := ctrl.Close(); err != nil {
		log.Warn().Err(err).Msg("shutdown left the strip unclean")
	}
}

// openStrip maps the configured driver onto a transport. auto tries SPI and
// falls back to the terminal; spi fails hard so a misconfigured device is
// not silently simulated.
func openStrip(cfg config.Config) (strip.Strip, error) {
	switch cfg.Driver {
	case "sim":
		return strip.NewScreen(cfg.LEDs)
	case "spi":
		return strip.OpenSPI(cfg.SPIPort, cfg.LEDs, uint8(cfg.Intensity))
	case "auto":
		s, err := strip.OpenSPI(cfg.SPIPort, cfg.LEDs, uint8(cfg.Intensity))
		if err != nil {
			log.Warn().Err(err).Msg("no SPI strip found; rendering to the terminal")
			return strip.NewScreen(cfg.LEDs)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}
