package boot2

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
	"math/bits"
)

// Size of the checksum stored at the end of a stage2 image.
const Size = 4

var revTable [256]byte

func init() {
	for i := range revTable {
		revTable[i] = bits.Reverse8(byte(i))
	}
}

// ReversedCRC32 computes the checksum the RP2040 boot ROM expects at the end
// of the stage2 image. The ROM shifts data MSB first, so every byte is bit
// reversed before a standard IEEE CRC32, and the inverted result is bit
// reversed as one 32 bit word.
func ReversedCRC32(b []byte) uint32 {
	d := digest{}
	d.Write(b)
	return d.Sum32()
}

type digest struct {
	crc uint32
	buf [64]byte
}

// New returns a hash.Hash32 computing ReversedCRC32 incrementally. Sum
// appends the value little endian, the way it is stored in the image.
func New() hash.Hash32 {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		chunk := d.buf[:]
		if len(p) < len(chunk) {
			chunk = chunk[:len(p)]
		}
		for i := range chunk {
			chunk[i] = revTable[p[i]]
		}
		d.crc = crc32.Update(d.crc, crc32.IEEETable, chunk)
		p = p[len(chunk):]
	}
	return n, nil
}

func (d *digest) Sum32() uint32 {
	return bits.Reverse32(d.crc ^ 0xFFFFFFFF)
}

func (d *digest) Sum(in []byte) []byte {
	return binary.LittleEndian.AppendUint32(in, d.Sum32())
}
