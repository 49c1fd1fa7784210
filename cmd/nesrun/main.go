// Command nesrun loads an iNES image, runs the CPU headless for a number of
// steps and optionally writes or checks an instruction trace.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	nes "nes-core"
)

var (
	romFlag    = flag.String("rom", "", "iNES image to load")
	stepsFlag  = flag.Int("steps", 1000, "number of instructions to execute")
	pcFlag     = flag.String("pc", "", "start address in hex, overrides the reset vector")
	traceFlag  = flag.String("trace", "", "write a trace to this file, - for stdout")
	expectFlag = flag.String("expect", "", "reference trace to compare against")
	quietFlag  = flag.Bool("q", false, "do not log console events")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *romFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cart, err := nes.LoadCartridgeFile(*romFlag)
	if err != nil {
		return err
	}

	var writers []io.Writer
	switch *traceFlag {
	case "":
	case "-":
		writers = append(writers, os.Stdout)
	default:
		f, err := os.Create(*traceFlag)
		if err != nil {
			return errors.Wrap(err, "create trace")
		}
		defer f.Close()
		buffered := bufio.NewWriter(f)
		defer buffered.Flush()
		writers = append(writers, buffered)
	}

	var got bytes.Buffer
	if *expectFlag != "" {
		writers = append(writers, &got)
	}

	opts := []nes.Option{}
	if !*quietFlag {
		opts = append(opts, nes.WithLogger(log.New(os.Stderr, "nes: ", 0)))
	}
	if len(writers) > 0 {
		opts = append(opts, nes.WithTrace(io.MultiWriter(writers...)))
	}

	console := nes.NewConsole(opts...)
	if err := console.LoadCartridge(cart); err != nil {
		return err
	}
	if *pcFlag != "" {
		pc, err := strconv.ParseUint(strings.TrimPrefix(*pcFlag, "$"), 16, 16)
		if err != nil {
			return errors.Wrapf(err, "bad -pc %q", *pcFlag)
		}
		console.CPU().SetPC(uint16(pc))
	}

	runErr := console.Run(*stepsFlag)
	cpu := console.CPU()
	log.Printf("stopped at PC=$%04X A=$%02X X=$%02X Y=$%02X P=$%02X SP=$%02X after %d cycles",
		cpu.PC(), cpu.A(), cpu.X(), cpu.Y(), cpu.Status(), cpu.SP(), cpu.Cycles())
	if runErr != nil {
		return runErr
	}

	if *expectFlag != "" {
		return compare(got.String(), *expectFlag)
	}
	return nil
}

// compare checks the produced trace against the first lines of the
// reference file.
func compare(trace, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read reference trace")
	}

	got := splitLines(trace)
	want := splitLines(string(data))
	if len(want) > len(got) {
		want = want[:len(got)]
	}

	if mismatch := nes.FirstTraceMismatch(got, want); mismatch != nil {
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			mismatch.Diff = ""
		}
		return errors.New(mismatch.String())
	}
	log.Printf("trace matches %d lines of %s", len(got), path)
	return nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
