package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/BertoldVdb/pico-tools/boot2"
	"github.com/BertoldVdb/pico-tools/internal/fileio"
	"github.com/snksoft/crc"
)

// The boot ROM checksum is CRC-32/MPEG-2 computed MSB first.
var mpeg2 = &crc.Parameters{
	Width:      32,
	Polynomial: 0x04C11DB7,
	ReflectIn:  false,
	ReflectOut: false,
	Init:       0xFFFFFFFF,
	FinalXor:   0,
}

type CRCCmd struct {
	Filename  string `arg:"" name:"file" help:"File to checksum, without padding."`
	Reference bool   `optional:"" help:"Also compute CRC-32/MPEG-2 with an independent implementation."`
}

func (r *CRCCmd) Run(c *Context) error {
	sum := boot2.New()
	ref := crc.NewHash(mpeg2)

	var w io.Writer = sum
	if r.Reference {
		w = io.MultiWriter(sum, ref)
	}

	n, err := fileio.Stream(r.Filename, w)
	if err != nil {
		return err
	}
	c.log.Debugw("Checksummed file", "file", r.Filename, "bytes", n)

	fmt.Fprintf(c.out, "%08x  %s\n", sum.Sum32(), r.Filename)
	if r.Reference {
		fmt.Fprintf(c.out, "%08x  %s (CRC-32/MPEG-2)\n", ref.CRC32(), r.Filename)
		if ref.CRC32() != sum.Sum32() {
			return errors.New("Reference checksum differs")
		}
	}
	return nil
}
