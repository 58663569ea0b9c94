package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esimov/iconkit"
	"github.com/esimov/iconkit/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┬┌─┬┌┬┐
││  │ ││││├┴┐│ │
┴└─┘└─┘┘└┘┴ ┴┴ ┴

Icon collection builder.
    Version: %s

Usage: iconkit [flags] <source-dir>

`

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}

	cfg, err := iconkit.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		flag.Usage()
		log.Fatal(utils.DecorateText(fmt.Sprintf("\n%v", err), utils.ErrorMessage))
	}

	if err := iconkit.NewOps(cfg).Execute(iconkit.NewToolkit()); err != nil {
		os.Exit(1)
	}
}
