package main

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/linux/hci"
)

// Config holds the settings shared by all commands. Values come from the
// hjson config file and are overridden by global flags.
type Config struct {
	Device   int           `koanf:"device"`
	Timeout  time.Duration `koanf:"timeout"`
	LogLevel string        `koanf:"log-level"`
	Cache    string        `koanf:"cache"`
	IOCap    string        `koanf:"iocap"`
	Uart     string        `koanf:"uart"`
	Baud     int           `koanf:"baud"`
}

func defaultConfig() Config {
	return Config{
		Device:   -1,
		Timeout:  hci.DefaultActionTimeout,
		LogLevel: "info",
		IOCap:    "none",
		Baud:     115200,
	}
}

// loadConfig reads path on top of the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), hjson.Parser()); err != nil {
		return cfg, errors.Wrapf(err, "can't load %s", path)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, errors.Wrapf(err, "can't parse %s", path)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the global flags given on the command line.
func applyFlags(c *cli.Context, cfg *Config) {
	if c.GlobalIsSet("device") {
		cfg.Device = c.GlobalInt("device")
	}
	if c.GlobalIsSet("timeout") {
		cfg.Timeout = c.GlobalDuration("timeout")
	}
	if c.GlobalIsSet("log-level") {
		cfg.LogLevel = c.GlobalString("log-level")
	}
	if c.GlobalIsSet("cache") {
		cfg.Cache = c.GlobalString("cache")
	}
	if c.GlobalIsSet("uart") {
		cfg.Uart = c.GlobalString("uart")
	}
	if c.GlobalIsSet("baud") {
		cfg.Baud = c.GlobalInt("baud")
	}
}

// transport picks the controller UART when one is configured, the adapter otherwise.
func (cfg Config) transport() bluehci.Option {
	if cfg.Uart != "" {
		return bluehci.OptTransportH4Uart(cfg.Uart, cfg.Baud)
	}
	return bluehci.OptTransportHCISocket(cfg.Device)
}

var ioCaps = map[string]hci.IOCapability{
	"display-only":     hci.DisplayOnly,
	"display-yesno":    hci.DisplayYesNo,
	"keyboard-only":    hci.KeyboardOnly,
	"none":             hci.NoInputNoOutput,
	"keyboard-display": hci.KeyboardDisplay,
}

func parseIOCap(s string) (hci.IOCapability, error) {
	c, ok := ioCaps[s]
	if !ok {
		return hci.InvalidIO, errors.Errorf("unknown io capability %q", s)
	}
	return c, nil
}
