package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	colorOK  = color.New(color.FgGreen)
	colorBad = color.New(color.FgRed)
)

type CheckCmd struct {
	Files []string `arg:"" name:"file" help:"Padded images to check."`
}

func (cc *CheckCmd) Run(c *Context) error {
	failed := 0
	for _, f := range cc.Files {
		img, err := c.config.ReadImage(f)
		if err == nil {
			err = c.config.CheckImage(img)
		}
		if err != nil {
			failed++
			fmt.Fprintf(c.out, "%s: %s %v\n", f, colorBad.Sprint("FAIL"), err)
			continue
		}

		stored, _, _ := c.config.Checksum(img)
		fmt.Fprintf(c.out, "%s: %s %08x\n", f, colorOK.Sprint("OK"), stored)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed verification", failed, len(cc.Files))
	}
	return nil
}
