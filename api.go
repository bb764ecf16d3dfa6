// Package prototag serializes plain Go values to the Protocol Buffers
// binary wire format and back, without generated code. Each message type
// is described once by associating its fields with protobuf field
// numbers via the codec package; this package is the convenience I/O
// layer on top of those descriptors.
package prototag

import (
	"bytes"
	"io"

	"github.com/anirudhraja/prototag/codec"
	"github.com/anirudhraja/prototag/wire"
)

// Register associates T with its field descriptors and returns the
// message descriptor. Call once per message type, typically from an init
// function or package-level var.
func Register[T any](fields ...codec.Field[T]) *codec.Message[T] {
	return codec.Register(fields...)
}

// Marshal encodes v into a new byte buffer.
func Marshal[T any](v *T) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(v, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalTo encodes v to the given sink.
func MarshalTo[T any](v *T, w io.Writer) error {
	desc, err := codec.MessageOf[T]()
	if err != nil {
		return err
	}
	return desc.Encode(v, w)
}

// Unmarshal decodes data into v. Fields absent from data keep whatever
// value v already holds, per proto3 merge semantics.
func Unmarshal[T any](data []byte, v *T) error {
	return UnmarshalFrom(v, bytes.NewReader(data))
}

// UnmarshalFrom decodes v from the given source, reading until
// end-of-stream.
func UnmarshalFrom[T any](v *T, r io.Reader) error {
	desc, err := codec.MessageOf[T]()
	if err != nil {
		return err
	}
	return desc.Decode(v, r)
}

// Size returns the encoded byte size of v without emitting anything.
func Size[T any](v *T) (int, error) {
	desc, err := codec.MessageOf[T]()
	if err != nil {
		return 0, err
	}

	var counter wire.SizeCounter
	if err := desc.Encode(v, &counter); err != nil {
		return 0, err
	}
	return counter.Size, nil
}
