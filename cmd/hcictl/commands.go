package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/rigado/bluehci"
	"github.com/rigado/bluehci/discovery"
	"github.com/rigado/bluehci/linux/hci"
)

var typeFlag = cli.StringFlag{
	Name:  "type, t",
	Value: "bredr",
	Usage: "address type: bredr, le-public or le-random",
}

var commands = []cli.Command{
	{
		Name:   "up",
		Usage:  "bring the adapter up",
		Action: cmdUp,
	},
	{
		Name:   "down",
		Usage:  "take the adapter down",
		Action: cmdDown,
	},
	{
		Name:   "addr",
		Usage:  "print the adapter address",
		Action: cmdAddr,
	},
	{
		Name:  "scan",
		Usage: "discover LE devices",
		Flags: []cli.Flag{
			cli.DurationFlag{Name: "duration, d", Value: 10 * time.Second, Usage: "scan duration"},
			cli.BoolFlag{Name: "limited", Usage: "limited discovery timing"},
			cli.BoolFlag{Name: "passive", Usage: "do not send scan requests"},
			cli.BoolFlag{Name: "json", Usage: "print the result as json"},
		},
		Action: cmdScan,
	},
	{
		Name:  "inquiry",
		Usage: "discover BR/EDR devices",
		Flags: []cli.Flag{
			cli.DurationFlag{Name: "duration, d", Value: 10 * time.Second, Usage: "inquiry duration"},
			cli.BoolFlag{Name: "limited", Usage: "limited inquiry access code"},
			cli.BoolFlag{Name: "flush", Usage: "flush the name cache first"},
			cli.BoolFlag{Name: "json", Usage: "print the result as json"},
		},
		Action: cmdInquiry,
	},
	{
		Name:      "pair",
		Usage:     "bond with a device",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			typeFlag,
			cli.StringFlag{Name: "iocap", Usage: "io capability: display-only, display-yesno, keyboard-only, none, keyboard-display"},
		},
		Action: cmdPair,
	},
	{
		Name:      "unpair",
		Usage:     "drop the bond with a device",
		ArgsUsage: "<address>",
		Flags:     []cli.Flag{typeFlag},
		Action:    cmdUnpair,
	},
	{
		Name:      "advertise",
		Usage:     "start or stop LE advertising",
		ArgsUsage: "on|off",
		Flags: []cli.Flag{
			cli.UintFlag{Name: "mode, m", Usage: "advertising type, 0 to 4"},
		},
		Action: cmdAdvertise,
	},
	{
		Name:  "config",
		Usage: "power the adapter and write its settings",
		Flags: []cli.Flag{
			cli.BoolTFlag{Name: "powered", Usage: "power the adapter"},
			cli.BoolFlag{Name: "bondable", Usage: "discoverable and connectable"},
			cli.BoolFlag{Name: "advertising", Usage: "LE advertising"},
			cli.BoolTFlag{Name: "ssp", Usage: "secure simple pairing"},
			cli.BoolTFlag{Name: "le", Usage: "LE host support"},
			cli.BoolFlag{Name: "secure", Usage: "secure connections host support"},
		},
		Action: cmdConfig,
	},
	{
		Name:   "features",
		Usage:  "list the LMP features of the adapter",
		Action: cmdFeatures,
	},
	{
		Name:      "vendor",
		Usage:     "send a vendor specific command",
		ArgsUsage: "<ocf> [hex payload]",
		Action:    cmdVendor,
	},
}

func cmdUp(c *cli.Context) error {
	id, err := deviceID(c)
	if err != nil {
		return err
	}
	if err := hci.Up(id); err != nil {
		return err
	}
	printOK(fmt.Sprintf("hci%d up", id))
	return nil
}

func cmdDown(c *cli.Context) error {
	id, err := deviceID(c)
	if err != nil {
		return err
	}
	if err := hci.Down(id); err != nil {
		return err
	}
	printOK(fmt.Sprintf("hci%d down", id))
	return nil
}

func cmdAddr(c *cli.Context) error {
	var a bluehci.Address
	var ok bool
	if id := config(c).Device; id >= 0 {
		a, ok = bluehci.DefaultDevice(id)
	} else {
		a, ok = bluehci.Default()
	}
	if !ok {
		return errors.New("no adapter found")
	}
	fmt.Println(a)
	return nil
}

// discover runs fn with a device feeding a discovery bus and prints what it finds.
func discover(c *cli.Context, fn func(dev *hci.HCI) error) error {
	bus := discovery.NewBus(64)
	defer bus.Close()

	asJSON := c.Bool("json")
	sub := bus.Subscribe(discovery.TopicDevice)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for m := range sub.C {
			if d, ok := m.(discovery.Device); ok && !asJSON {
				printDevice(d)
			}
		}
	}()

	dev, err := openDevice(c, bus.Options()...)
	if err != nil {
		return err
	}
	defer dev.Close()

	stop := abortOnInterrupt(dev)
	err = fn(dev)
	stop()

	bus.Close()
	<-printed
	if err != nil {
		return err
	}

	if asJSON {
		out, err := jsoniter.MarshalIndent(bus.Registry().Devices(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	printOK(fmt.Sprintf("%d devices, %d results", bus.Registry().Len(), bus.Registry().Results()))
	return nil
}

func cmdScan(c *cli.Context) error {
	return discover(c, func(dev *hci.HCI) error {
		return dev.Scan(c.Duration("duration"), c.Bool("limited"), c.Bool("passive"))
	})
}

func cmdInquiry(c *cli.Context) error {
	lap := hci.LAPGeneral
	if c.Bool("limited") {
		lap = hci.LAPLimited
	}
	var flags uint8
	if c.Bool("flush") {
		flags |= hci.InquiryFlushCache
	}
	return discover(c, func(dev *hci.HCI) error {
		return dev.Inquiry(c.Duration("duration"), lap, flags)
	})
}

func cmdPair(c *cli.Context) error {
	a, t, err := remote(c)
	if err != nil {
		return err
	}
	name := c.String("iocap")
	if name == "" {
		name = config(c).IOCap
	}
	ioCap, err := parseIOCap(name)
	if err != nil {
		return err
	}

	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	stop := abortOnInterrupt(dev)
	defer stop()
	if err := dev.Pair(a, t, ioCap); err != nil {
		return err
	}
	printOK("paired " + a.String())
	return nil
}

func cmdUnpair(c *cli.Context) error {
	a, t, err := remote(c)
	if err != nil {
		return err
	}
	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.Unpair(a, t); err != nil {
		return err
	}
	printOK("unpaired " + a.String())
	return nil
}

func cmdAdvertise(c *cli.Context) error {
	var enable bool
	switch strings.ToLower(c.Args().First()) {
	case "on":
		enable = true
	case "off":
	default:
		return errors.New("expected on or off")
	}
	if c.Uint("mode") > hci.AdvTypeMax {
		return errors.Errorf("invalid advertising type %d", c.Uint("mode"))
	}

	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	err = dev.Advertising(enable, uint8(c.Uint("mode")))
	if errors.Cause(err) == hci.ErrIllegalState {
		printWarn("advertising already " + c.Args().First())
		return nil
	}
	return err
}

func cmdConfig(c *cli.Context) error {
	if !c.BoolT("powered") {
		id, err := deviceID(c)
		if err != nil {
			return err
		}
		if err := hci.Down(id); err != nil {
			return err
		}
		printOK("powered off")
		return nil
	}

	// a powered down adapter has to come up before its socket can be bound
	if id := config(c).Device; id >= 0 {
		if err := hci.Up(id); err != nil {
			return err
		}
	}

	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	err = dev.Config(true, c.Bool("bondable"), c.Bool("advertising"), c.BoolT("ssp"), c.BoolT("le"), c.Bool("secure"))
	if err != nil {
		return err
	}
	printOK("configured " + dev.Addr().String())
	return nil
}

func cmdFeatures(c *cli.Context) error {
	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	f, err := dev.LocalFeatures()
	if err != nil {
		return err
	}
	for f.Next() {
		fmt.Printf("%2d  %s\n", f.Feature(), f.Text())
	}
	return nil
}

func cmdVendor(c *cli.Context) error {
	ocf, payload, err := parseVendorArgs(c.Args())
	if err != nil {
		return err
	}

	dev, err := openDevice(c)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.SendVendorSpecificCommand(ocf, payload); err != nil {
		return err
	}
	printOK(fmt.Sprintf("vendor command 0x%03X sent", ocf))
	return nil
}

func parseVendorArgs(args []string) (uint16, []byte, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("missing ocf")
	}
	ocf, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 10)
	if err != nil {
		return 0, nil, errors.Wrap(err, "invalid ocf")
	}

	var payload []byte
	if len(args) > 1 {
		payload, err = hex.DecodeString(strings.Join(args[1:], ""))
		if err != nil {
			return 0, nil, errors.Wrap(err, "invalid payload")
		}
	}
	return uint16(ocf), payload, nil
}

