// Package wire frames codeccache entries so foreign or truncated bytes in a
// shared store are detected and treated as corruption, never decoded.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("codeccache: corrupt entry")
	magic4     = [...]byte{'B', 'C', 'O', 'D'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | vlen(u32 be) | payload(vlen)
func Encode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates the frame and returns the payload as a zero-copy slice
// into b. Trailing bytes after the declared payload are corruption.
func Decode(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	vlen := int(binary.BigEndian.Uint32(b[5:9]))
	if vlen < 0 || vlen != len(b)-hdr {
		return nil, ErrCorrupt
	}

	return b[hdr : hdr+vlen], nil
}
