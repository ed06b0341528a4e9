// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/nibblenet/cpu"
	"github.com/ezrec/nibblenet/emulator"
	"github.com/ezrec/nibblenet/neural"
)

func nibbles(args []string) (data []cpu.Nibble, err error) {
	for _, arg := range args {
		var value uint64
		value, err = strconv.ParseUint(arg, 0, 8)
		if err != nil {
			err = fmt.Errorf("%v: %w", arg, err)
			return
		}
		data = append(data, cpu.Wrap(uint8(value)))
	}

	return
}

func report(result emulator.Result) {
	fmt.Printf("halted:%v cycles:%v\n", result.Halted, result.Cycles)
	fmt.Printf("acc:%X pc:%X zero:%v carry:%v\n",
		uint8(result.Accumulator), uint8(result.PC),
		result.Zero, result.Carry)

	cells := make([]string, len(result.Memory))
	for n, cell := range result.Memory {
		cells[n] = fmt.Sprintf("%X", uint8(cell))
	}
	fmt.Printf("memory: %v\n", strings.Join(cells, " "))
}

func main() {
	var compile string
	var demo string
	var list bool
	var seed int64
	var epochs int
	var limit int
	var verbose bool

	flag.StringVar(&compile, "c", "", ".nib file to assemble and run")
	flag.StringVar(&demo, "d", "", "Demo program to run")
	flag.BoolVar(&list, "l", false, "List demo programs")
	flag.Int64Var(&seed, "seed", emulator.DEFAULT_SEED, "Gate training seed")
	flag.IntVar(&epochs, "epochs", neural.DefaultEpochs, "Gate training epochs")
	flag.IntVar(&limit, "limit", emulator.DEFAULT_CYCLE_LIMIT, "Execution cycle limit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if list {
		for _, demo := range emulator.Demos {
			fmt.Printf("%v\n", demo.Name)
		}
		return
	}

	var source io.Reader
	var data []cpu.Nibble

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		source = inf
		data, err = nibbles(flag.Args())
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	case len(demo) != 0:
		found := emulator.FindDemo(demo)
		if found == nil {
			log.Fatalf("%v: unknown demo: %v", os.Args[0], demo)
		}

		source = strings.NewReader(found.Source)
		data = found.Data
	default:
		log.Fatalf("%v: one of -c or -d is required", os.Args[0])
	}

	machine, err := emulator.NewMachine(seed, epochs)
	if err != nil {
		log.Fatalf("%v: gate training: %v", os.Args[0], err)
	}
	machine.Verbose = verbose
	machine.CycleLimit = limit

	result, err := machine.RunSource(source, data...)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	report(result)
}
