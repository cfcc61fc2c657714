package boot2

import (
	"fmt"

	"github.com/BertoldVdb/pico-tools/internal/fileio"
)

// PadFile reads a raw stage2 blob from in and writes the padded, checksummed
// image to out. The output is replaced atomically, or refused if it exists
// and noClobber is set.
func (c *Config) PadFile(in string, out string, noClobber bool) error {
	max, err := c.MaxInput()
	if err != nil {
		return err
	}

	data, err := fileio.ReadLimited(in, int64(max)+1)
	if err != nil {
		return err
	}
	if len(data) > max {
		return fmt.Errorf("%w: %s is larger than %d bytes", ErrorInputTooLarge, in, max)
	}

	img, err := c.PadAndChecksum(data)
	if err != nil {
		return err
	}

	if err := fileio.WriteAtomic(out, img, fileio.WriteOptions{NoClobber: noClobber}); err != nil {
		return err
	}
	c.log(1, "Wrote %d bytes to %s", len(img), out)
	return nil
}

// ReadImage reads a padded image for checking, refusing files longer than
// the configured length.
func (c *Config) ReadImage(path string) ([]byte, error) {
	l, err := c.Length()
	if err != nil {
		return nil, err
	}

	img, err := fileio.ReadLimited(path, int64(l)+1)
	if err != nil {
		return nil, err
	}
	if len(img) > l {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrorImageSize, path, l)
	} else if len(img) != l {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrorImageSize, path, len(img), l)
	}
	return img, nil
}

func PadFile(in string, out string) error {
	return defaultConfig.PadFile(in, out, false)
}
