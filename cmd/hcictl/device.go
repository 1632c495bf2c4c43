package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/cache"
	"github.com/rigado/bluehci/linux"
	"github.com/rigado/bluehci/linux/hci"
)

func config(c *cli.Context) Config {
	cfg, _ := c.App.Metadata["config"].(Config)
	return cfg
}

func openDevice(c *cli.Context, opts ...bluehci.Option) (*hci.HCI, error) {
	cfg := config(c)

	base := []bluehci.Option{
		cfg.transport(),
		bluehci.OptActionTimeout(cfg.Timeout),
		bluehci.OptErrorHandler(printError),
	}
	if cfg.Cache != "" {
		base = append(base, bluehci.OptDeviceCache(cache.New(cfg.Cache)))
	}
	return linux.NewDevice(append(base, opts...)...)
}

// abortOnInterrupt aborts the running action of dev on SIGINT or SIGTERM.
// The returned func stops listening.
func abortOnInterrupt(dev *hci.HCI) func() {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
			printWarn("aborting")
			dev.Abort()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}

func deviceID(c *cli.Context) (int, error) {
	id := config(c).Device
	if id < 0 {
		return -1, errors.New("an adapter is required, set --device")
	}
	return id, nil
}

var addrTypes = map[string]uint8{
	"bredr":     bluehci.BREDRAddress,
	"le-public": bluehci.LEPublicAddress,
	"le-random": bluehci.LERandomAddress,
}

func remote(c *cli.Context) (bluehci.Address, uint8, error) {
	a := bluehci.ParseAddress(c.Args().First())
	if !a.IsValid() {
		return a, 0, errors.Errorf("invalid address %q", c.Args().First())
	}
	t, ok := addrTypes[c.String("type")]
	if !ok {
		return a, 0, errors.Errorf("unknown address type %q", c.String("type"))
	}
	return a, t, nil
}
