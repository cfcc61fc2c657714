package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

// intMapper parses integers in the given base. Base 0 accepts the usual
// prefixes, so both 256 and 0x100 work.
type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("int", &value)
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, h.base, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", value, err)
	}
	if target.OverflowInt(i) {
		return fmt.Errorf("integer %q out of range", value)
	}
	target.SetInt(i)
	return nil
}
