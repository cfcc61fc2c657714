package boot2

import "errors"

var (
	ErrorInputTooLarge    = errors.New("Input does not fit in stage2 image")
	ErrorImageSize        = errors.New("Image has the wrong size")
	ErrorChecksumMismatch = errors.New("Image checksum mismatch")
	ErrorInvalidLength    = errors.New("Invalid padded length")
)
