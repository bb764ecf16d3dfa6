package codec

import (
	"errors"
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// Message is the descriptor of one message type: its field descriptors in
// declared order. Descriptors are immutable after construction and safe
// to share across concurrent encodes and decodes of distinct aggregates.
type Message[M any] struct {
	fields []Field[M]
}

// NewMessage builds a message descriptor from field descriptors. Field
// numbers should be unique; the codec does not enforce it, and on decode
// the first matching descriptor wins.
func NewMessage[M any](fields ...Field[M]) *Message[M] {
	return &Message[M]{fields: fields}
}

// Fields returns the field descriptors in declared order.
func (d *Message[M]) Fields() []Field[M] {
	return d.fields
}

// Encode emits m's fields to out in declared order, with proto3
// default-elision: a field equal to its zero contributes nothing.
func (d *Message[M]) Encode(m *M, out io.Writer) error {
	for _, f := range d.fields {
		if err := f.encode(m, out); err != nil {
			return wire.WrapField(err, f.Name())
		}
	}
	return nil
}

// Decode reads tagged fields from in into m until the source is
// exhausted. A clean end-of-stream between fields terminates
// successfully; end-of-stream inside a field or inside a tag header is
// an error. Unknown fields are skipped by consuming their payload for
// the observed wire type. A field whose observed wire type does not
// match its descriptor has its payload skipped and decoding continues
// with the next tag.
func (d *Message[M]) Decode(m *M, in io.Reader) error {
	for {
		fieldNumber, wireType, err := wire.ReadTag(in)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		matched := false
		for _, f := range d.fields {
			if f.FieldNumber() != fieldNumber {
				continue
			}
			matched = true

			err := f.decode(m, wireType, in)
			if err == nil {
				break
			}
			if errors.Is(err, wire.ErrWireTypeMismatch) {
				if err := wire.Skip(in, wireType); err != nil {
					return wire.WrapField(err, f.Name())
				}
				break
			}
			return wire.WrapField(err, f.Name())
		}

		if !matched {
			if err := wire.Skip(in, wireType); err != nil {
				return err
			}
		}
	}
}
