package bip32path

import "encoding/binary"

// Deserialize reads steps big-endian 32-bit derivation indexes from buf.
// It returns ErrPathTooLong if steps exceeds the protocol maximum and
// ErrTruncatedPath if buf does not carry enough bytes.
func Deserialize(buf []byte, steps int) (Path, error) {
	if steps > MaxSteps {
		return nil, ErrPathTooLong
	}
	if len(buf) < steps*4 {
		return nil, ErrTruncatedPath
	}

	path := make(Path, 0, steps)
	for i := 0; i < steps; i++ {
		path = append(path, binary.BigEndian.Uint32(buf[i*4:]))
	}
	return path, nil
}

// Serialize returns the path as a sequence of big-endian 32-bit derivation
// indexes, without any length prefix.
func (path Path) Serialize() []byte {
	buf := make([]byte, 4*len(path))
	for i, step := range path {
		binary.BigEndian.PutUint32(buf[i*4:], step)
	}
	return buf
}
