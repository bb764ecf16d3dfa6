package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// Fixed-width values are written as 4 or 8 little-endian bytes. Floats
// are bit-cast to their IEEE-754 integer representation first.

// WriteFixed32 encodes a 32-bit fixed-width value
func WriteFixed32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteFixed64 encodes a 64-bit fixed-width value
func WriteFixed64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteFloat32 encodes a 32-bit float as fixed32
func WriteFloat32(w io.Writer, v float32) error {
	return WriteFixed32(w, math.Float32bits(v))
}

// WriteFloat64 encodes a 64-bit float as fixed64
func WriteFloat64(w io.Writer, v float64) error {
	return WriteFixed64(w, math.Float64bits(v))
}

// ReadFixed32 decodes a 32-bit fixed-width value
func ReadFixed32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadFixed64 decodes a 64-bit fixed-width value
func ReadFixed64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadFloat32 decodes a 32-bit float from fixed32 data
func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadFixed32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 decodes a 64-bit float from fixed64 data
func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadFixed64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// readFull fills dst or reports ErrUnexpectedEOF. A fixed field may not
// be truncated even at a message boundary.
func readFull(r io.Reader, dst []byte) error {
	if _, err := io.ReadFull(r, dst); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrUnexpectedEOF
		}
		return err
	}
	return nil
}
