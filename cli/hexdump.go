package main

import (
	"fmt"

	"github.com/fatih/color"
)

// hexdump formats data 32 bytes per line. style may return a colour for the
// byte at index i, or nil to print it plain.
func hexdump(offset int, data []byte, style func(i int) *color.Color) string {
	var result string
	index := 0

	for len(data) > 0 {
		l := len(data)
		if l > 32 {
			l = 32
		}
		work := data[:l]
		data = data[l:]

		var workHex string
		var workAscii string
		for i := 0; i < 32; i++ {
			valid := i < len(work)
			if !valid {
				workHex += "   "
				workAscii += " "
			} else {
				m := work[i]
				var c *color.Color
				if style != nil {
					c = style(index + i)
				}

				a := m
				if a < 32 || a > 126 {
					a = '.'
				}
				if c != nil {
					workHex += c.Sprintf("%02x ", m)
					workAscii += c.Sprintf("%c", a)
				} else {
					workHex += fmt.Sprintf("%02x ", m)
					workAscii += fmt.Sprintf("%c", a)
				}
			}
			if i%8 == 7 {
				workHex += " "
			}
		}

		result += fmt.Sprintf("%08x  %s|%s|\n", offset, workHex, workAscii)
		offset += l
		index += l
	}

	return result
}
