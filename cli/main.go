package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BertoldVdb/pico-tools/boot2"
	"github.com/BertoldVdb/pico-tools/internal/logger"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

type Context struct {
	config *boot2.Config
	log    *zap.SugaredLogger
	out    io.Writer
}

type cliArgs struct {
	LogLevel int `optional:"" help:"Higher values give more output."`
	Length   int `optional:"" type:"int" help:"Total stage2 image size, including the checksum." default:"256"`

	Pad   PadCmd   `cmd:"" help:"Pad a stage2 blob and append its checksum."`
	Check CheckCmd `cmd:"" help:"Verify the checksum of padded stage2 images."`
	Dump  DumpCmd  `cmd:"" help:"Show a padded image as annotated hexdump."`
	CRC   CRCCmd   `cmd:"" name:"crc" help:"Compute the boot ROM checksum of a file as is."`
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var cli cliArgs
	k, err := kong.New(&cli,
		kong.Name("boot2tool"),
		kong.Description("Tools for RP2040 stage2 bootloader images."),
		kong.Writers(stdout, stderr),
		kong.NamedMapper("int", intMapper{}))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, err := k.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := logger.New("boot2tool", cli.LogLevel)
	defer log.Sync()

	c := &Context{
		config: &boot2.Config{
			PaddedLength: cli.Length,
			LogFunc:      logger.Func(log),
		},
		log: log,
		out: stdout,
	}
	if _, err := c.config.Length(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := ctx.Run(c); err != nil {
		log.Errorw("Command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
