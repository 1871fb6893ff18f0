// Package config assembles the runtime settings for the easyblink command
// from environment variables and an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env"
	"gopkg.in/yaml.v3"
)

// Config holds everything the command needs to open a strip and run a
// pattern on it.
type Config struct {
	// LEDs is the number of pixels on the strip.
	LEDs int `yaml:"leds" env:"EASYBLINK_LEDS" envDefault:"120"`
	// Color names the hue patterns run in.
	Color string `yaml:"color" env:"EASYBLINK_COLOR" envDefault:"rainbow"`
	// Pattern names the animation to run.
	Pattern string `yaml:"pattern" env:"EASYBLINK_PATTERN" envDefault:"chase"`
	// Colorway, when set, selects a pattern with a built-in color scheme
	// instead of Color and Pattern.
	Colorway string `yaml:"colorway" env:"EASYBLINK_COLORWAY"`
	// DelayMS is the pause between frames in milliseconds.
	DelayMS int `yaml:"delay_ms" env:"EASYBLINK_DELAY_MS" envDefault:"20"`
	// Driver picks the transport: auto, spi or sim.
	Driver string `yaml:"driver" env:"EASYBLINK_DRIVER" envDefault:"auto"`
	// SPIPort pins the spi driver to a named port instead of the first one.
	SPIPort string `yaml:"spi_port" env:"EASYBLINK_SPI_PORT"`
	// Intensity caps the APA102 global brightness, 1 to 255.
	Intensity int `yaml:"intensity" env:"EASYBLINK_INTENSITY" envDefault:"255"`
	// Cycles is how many pattern invocations to run; 0 loops forever.
	Cycles int `yaml:"cycles" env:"EASYBLINK_CYCLES"`
}

// FromEnv builds a Config from EASYBLINK_* environment variables, falling
// back to the defaults baked into the struct tags.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Merge overlays o onto c. Zero values in o leave the corresponding field
// of c untouched, so a sparse config file only overrides what it names.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.LEDs != 0 {
		c.LEDs = o.LEDs
	}
	if o.Color != "" {
		c.Color = o.Color
	}
	if o.Pattern != "" {
		c.Pattern = o.Pattern
	}
	if o.Colorway != "" {
		c.Colorway = o.Colorway
	}
	if o.DelayMS != 0 {
		c.DelayMS = o.DelayMS
	}
	if o.Driver != "" {
		c.Driver = o.Driver
	}
	if o.SPIPort != "" {
		c.SPIPort = o.SPIPort
	}
	if o.Intensity != 0 {
		c.Intensity = o.Intensity
	}
	if o.Cycles != 0 {
		c.Cycles = o.Cycles
	}
}
