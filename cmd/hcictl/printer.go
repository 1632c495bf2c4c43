package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/rigado/bluehci/discovery"
)

// printWarn prints a warning to the screen.
func printWarn(message string) {
	color.New(color.FgYellow, color.Bold).Println("[-] " + message)
}

// printError prints an error to the screen.
func printError(err error) {
	color.New(color.FgRed, color.Bold).Println("[!] " + err.Error())
}

func printOK(message string) {
	color.New(color.FgGreen).Println("[+] " + message)
}

func printDevice(d discovery.Device) {
	kind := "BR/EDR"
	if d.LowEnergy {
		kind = "LE"
	}
	name := d.Name
	if name == "" {
		name = color.New(color.Faint).Sprint("(unknown)")
	}
	fmt.Printf("%s  %-6s  %s\n", color.CyanString(d.Addr), kind, name)
}
