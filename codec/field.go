package codec

import (
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// Field describes one field of a message type M: its field number, its
// name (used in error paths), and how to move the field between the
// aggregate and the wire. Implementations are the plain field, the
// oneof-alternative field and the map field.
type Field[M any] interface {
	FieldNumber() wire.FieldNumber
	Name() string

	encode(m *M, out io.Writer) error
	decode(m *M, wireType wire.WireType, in io.Reader) error
}

// NewField creates a field descriptor binding fieldNumber to the member
// reached through get. The codec decides the wire encoding; flags are
// chosen when constructing it. Scalar, repeated, optional and nested
// fields all go through NewField.
func NewField[M any, V any](fieldNumber uint32, name string, c Codec[V], get func(*M) *V) Field[M] {
	return field[M, V]{
		fieldNumber: wire.FieldNumber(fieldNumber),
		name:        name,
		codec:       c,
		get:         get,
	}
}

type field[M any, V any] struct {
	fieldNumber wire.FieldNumber
	name        string
	codec       Codec[V]
	get         func(*M) *V
}

// FieldNumber returns the protobuf field number.
func (f field[M, V]) FieldNumber() wire.FieldNumber {
	return f.fieldNumber
}

// Name returns the declared field name.
func (f field[M, V]) Name() string {
	return f.name
}

func (f field[M, V]) encode(m *M, out io.Writer) error {
	return f.codec.Serialize(f.fieldNumber, *f.get(m), out, false)
}

func (f field[M, V]) decode(m *M, wireType wire.WireType, in io.Reader) error {
	return f.codec.Parse(wireType, f.get(m), in)
}
