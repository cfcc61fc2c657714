package boot2

import (
	"encoding/binary"
	"fmt"
)

// DefaultPaddedLength is the size of the stage2 region the boot ROM copies
// to SRAM and checks before jumping to it.
const DefaultPaddedLength = 256

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	PaddedLength int

	LogFunc LogFunc
}

var defaultConfig = &Config{}

func (c *Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

// Length returns the total image size, including the checksum.
func (c *Config) Length() (int, error) {
	l := c.PaddedLength
	if l == 0 {
		return DefaultPaddedLength, nil
	}
	if l <= Size || l%4 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrorInvalidLength, l)
	}
	return l, nil
}

// MaxInput returns the largest payload that still leaves room for the checksum.
func (c *Config) MaxInput() (int, error) {
	l, err := c.Length()
	if err != nil {
		return 0, err
	}
	return l - Size, nil
}

func (c *Config) work(img []byte, fix bool) (uint32, uint32, error) {
	l, err := c.Length()
	if err != nil {
		return 0, 0, err
	}
	if len(img) != l {
		return 0, 0, fmt.Errorf("%w: %d != %d", ErrorImageSize, len(img), l)
	}

	end := l - Size
	computed := ReversedCRC32(img[:end])
	if fix {
		binary.LittleEndian.PutUint32(img[end:], computed)
	}
	return binary.LittleEndian.Uint32(img[end:]), computed, nil
}

// Checksum returns both the checksum stored in img and the one computed over
// its payload.
func (c *Config) Checksum(img []byte) (stored uint32, computed uint32, err error) {
	return c.work(img, false)
}

func (c *Config) CheckImage(img []byte) error {
	stored, computed, err := c.work(img, false)
	if err != nil {
		return err
	}
	if stored != computed {
		return fmt.Errorf("%w: %08x != %08x", ErrorChecksumMismatch, stored, computed)
	}
	return nil
}

func (c *Config) FixImage(img []byte) error {
	_, _, err := c.work(img, true)
	return err
}

// PadAndChecksum zero pads dataIn to the payload size and appends the
// checksum. dataIn is not modified.
func (c *Config) PadAndChecksum(dataIn []byte) ([]byte, error) {
	l, err := c.Length()
	if err != nil {
		return nil, err
	}

	padLen := l - len(dataIn) - Size
	if padLen < 0 {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrorInputTooLarge, len(dataIn), l-Size)
	}
	c.log(1, "Input is %d bytes, adding %d bytes of padding", len(dataIn), padLen)

	out := make([]byte, l)
	copy(out, dataIn)
	if err := c.FixImage(out); err != nil {
		return nil, err
	}

	c.log(1, "Checksum is %08x", binary.LittleEndian.Uint32(out[l-Size:]))
	return out, nil
}

func PadAndChecksum(dataIn []byte) ([]byte, error) {
	return defaultConfig.PadAndChecksum(dataIn)
}

func CheckImage(img []byte) error {
	return defaultConfig.CheckImage(img)
}

func FixImage(img []byte) error {
	return defaultConfig.FixImage(img)
}
