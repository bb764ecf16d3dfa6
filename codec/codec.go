// Package codec implements the descriptor-driven protobuf codec engine:
// per-type serializer capabilities, field and message descriptors, and
// the wire-level message codec built on package wire.
package codec

import (
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// Flags selects among the compatible wire encodings of an in-memory type.
// Only the combinations accepted by the scalar constructors are legal;
// anything else is a registration-time error.
type Flags uint32

const (
	Signed Flags = 1 << iota // zigzag mapping for signed integers
	Fixed                    // fixed-width little-endian encoding
)

// Codec is the per-type capability record. Serialize emits the field tag
// header followed by the encoded value, eliding default values unless
// force is set (map keys and values are forced so zeros stay on the
// wire). Parse decodes one value, rejecting a mismatched wire type with
// wire.ErrWireTypeMismatch before consuming any payload bytes.
type Codec[V any] interface {
	Serialize(fieldNumber wire.FieldNumber, v V, out io.Writer, force bool) error
	Parse(wireType wire.WireType, v *V, in io.Reader) error
}

// PackedCodec is implemented by codecs whose values may appear inside a
// packed repeated field. The packed forms carry no tag header and no
// default-elision.
type PackedCodec[V any] interface {
	Codec[V]
	SerializePacked(v V, out io.Writer) error
	ParsePacked(v *V, in io.Reader) error
}

// readVarintValue reads a 64-bit varint appearing after a tag header,
// where end-of-stream is truncation rather than a clean boundary.
func readVarintValue(in io.Reader) (uint64, error) {
	v, err := wire.ReadVarint(in)
	if err == io.EOF {
		return 0, wire.ErrUnexpectedEOF
	}
	return v, err
}

// readVarint32Value is the 32-bit counterpart of readVarintValue.
func readVarint32Value(in io.Reader) (uint32, error) {
	v, err := wire.ReadVarint32(in)
	if err == io.EOF {
		return 0, wire.ErrUnexpectedEOF
	}
	return v, err
}
