// Command hcictl drives a local Bluetooth adapter over a raw HCI socket.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"github.com/rigado/bluehci"
)

func main() {
	app := cli.NewApp()
	app.Name = "hcictl"
	app.Usage = "scan, inquire, pair and configure a local Bluetooth adapter"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "device, i", Value: -1, Usage: "hci index, -1 for the first adapter that is up"},
		cli.StringFlag{Name: "config, c", Value: defaultConfigPath(), Usage: "hjson config file"},
		cli.DurationFlag{Name: "timeout", Value: 2 * time.Second, Usage: "per command timeout"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "trace, debug, info, warn or error"},
		cli.StringFlag{Name: "cache", Usage: "name cache file"},
		cli.StringFlag{Name: "uart", Usage: "controller tty in H4 mode, e.g. /dev/ttyACM0; overrides --device"},
		cli.IntFlag{Name: "baud", Value: 115200, Usage: "uart baud rate"},
	}
	app.Commands = commands
	app.Metadata = map[string]interface{}{}
	app.Before = func(c *cli.Context) error {
		cfg, err := loadConfig(c.GlobalString("config"))
		if err != nil {
			return err
		}
		applyFlags(c, &cfg)
		c.App.Metadata["config"] = cfg

		return bluehci.SetLogLevel(cfg.LogLevel)
	}

	if err := app.Run(os.Args); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hcictl", "hcictl.hjson")
}
