package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/BertoldVdb/pico-tools/boot2"
	"github.com/BertoldVdb/pico-tools/internal/fileio"
	"github.com/fatih/color"
	"github.com/inancgumus/screen"
)

const maxDumpSize = 64 * 1024

var (
	colorPadding = color.New(color.FgHiBlack)
	colorChanged = color.New(color.FgYellow, color.Bold)
)

type DumpCmd struct {
	Loop     int    `optional:"" help:"0=Show once, 1=Mark changes since start, 2=Mark changes since previous iteration."`
	Filename string `arg:"" name:"file" help:"Padded image to show."`
}

// render returns the hexdump of img followed by a summary line. Trailing zero
// padding is dimmed and the checksum is coloured by whether it matches.
func render(config *boot2.Config, img []byte, mark []bool) string {
	stored, computed, err := config.Checksum(img)
	end := len(img) - boot2.Size

	payloadEnd := 0
	if err == nil {
		for i := end - 1; i >= 0; i-- {
			if img[i] != 0 {
				payloadEnd = i + 1
				break
			}
		}
	}

	style := func(i int) *color.Color {
		switch {
		case mark != nil && mark[i]:
			return colorChanged
		case err != nil:
			return nil
		case i >= end && stored == computed:
			return colorOK
		case i >= end:
			return colorBad
		case i >= payloadEnd:
			return colorPadding
		}
		return nil
	}

	result := hexdump(0, img, style)
	if err != nil {
		return result + err.Error() + "\n"
	}

	status := colorOK.Sprint("OK")
	if stored != computed {
		status = colorBad.Sprint("MISMATCH")
	}
	return result + fmt.Sprintf("Payload %d bytes, padding %d bytes, checksum %08x (computed %08x) %s\n",
		payloadEnd, end-payloadEnd, stored, computed, status)
}

func (d *DumpCmd) Run(c *Context) error {
	if d.Loop < 0 || d.Loop > 2 {
		return errors.New("Loop flag out of range")
	}

	var oldBuf []byte
	var mark []bool
	for {
		startTime := time.Now()

		buf, err := fileio.ReadLimited(d.Filename, maxDumpSize)
		if err != nil {
			return err
		}
		if d.Loop == 2 || len(mark) != len(buf) {
			mark = make([]bool, len(buf))
		}

		if d.Loop != 0 {
			screen.Clear()
			screen.MoveTopLeft()
			if len(oldBuf) == len(buf) {
				for i, m := range oldBuf {
					if m != buf[i] {
						mark[i] = true
					}
				}
			}
		}
		fmt.Fprint(c.out, render(c.config, buf, mark))

		oldBuf = buf

		if d.Loop == 0 {
			break
		}
		elapsed := time.Since(startTime)
		td := 200 * time.Millisecond
		if elapsed < td {
			time.Sleep(td - elapsed)
		}
	}

	return nil
}
