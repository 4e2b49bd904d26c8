package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmgb/dmgb/internal/gameboy"
	"github.com/dmgb/dmgb/pkg/log"
	"github.com/dmgb/dmgb/pkg/utils"
)

func main() {
	debugLimit := flag.Uint64("debug", 0, "stop after N instructions and report the trace digest")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dmgb [-debug N] ROM")
		os.Exit(2)
	}

	logger := log.New()

	rom, err := utils.LoadFile(flag.Arg(0))
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.SerialWriter(os.Stdout),
	}
	if *debugLimit > 0 {
		opts = append(opts, gameboy.DebugLimit(*debugLimit))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	// Run logs the failure itself; the exit code is all that's left
	// to report
	if err := gb.Run(); err != nil {
		os.Exit(1)
	}
}
