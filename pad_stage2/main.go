// Command pad_stage2 pads a raw RP2040 stage2 bootloader to 256 bytes and
// appends the checksum the boot ROM verifies before executing it.
//
// Usage: pad_stage2 <input file> <output file>
package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/pico-tools/boot2"
	"github.com/BertoldVdb/pico-tools/internal/logger"
	"github.com/alecthomas/kong"
)

type cliArgs struct {
	LogLevel int `optional:"" help:"Higher values give more output."`

	Input  string `arg:"" name:"input-file" help:"Raw stage2 blob." type:"path"`
	Output string `arg:"" name:"output-file" help:"Padded stage2 image." type:"path"`
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <input file> <output file>\n", os.Args[0])
}

func run(args []string) int {
	var cli cliArgs
	k, err := kong.New(&cli,
		kong.Name("pad_stage2"),
		kong.Description("Pad a stage2 bootloader and append its checksum."))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if _, err := k.Parse(args); err != nil {
		usage()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.New("pad_stage2", cli.LogLevel)
	defer log.Sync()

	config := boot2.Config{
		LogFunc: logger.Func(log),
	}
	if err := config.PadFile(cli.Input, cli.Output, false); err != nil {
		log.Errorw("Failed to pad stage2", "input", cli.Input, "output", cli.Output, "error", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
