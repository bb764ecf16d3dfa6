package codec

import (
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// NewOneofField creates the descriptor for one alternative of a oneof.
// U is the union type held by the aggregate (conventionally a
// single-method interface with one wrapper value per alternative), V the
// alternative's value type, and index its position within the union.
//
// Emission writes the alternative only when the union currently holds it
// (unwrap reports a match). Decoding constructs the alternative in place
// via wrap, replacing whatever the union held before, so when several
// alternatives' tags appear on the wire the last one wins.
func NewOneofField[M any, U any, V any](fieldNumber uint32, name string, index int, c Codec[V],
	get func(*M) *U, wrap func(V) U, unwrap func(U) (V, bool)) Field[M] {
	return oneofField[M, U, V]{
		fieldNumber: wire.FieldNumber(fieldNumber),
		name:        name,
		index:       index,
		codec:       c,
		get:         get,
		wrap:        wrap,
		unwrap:      unwrap,
	}
}

type oneofField[M any, U any, V any] struct {
	fieldNumber wire.FieldNumber
	name        string
	index       int
	codec       Codec[V]
	get         func(*M) *U
	wrap        func(V) U
	unwrap      func(U) (V, bool)
}

// FieldNumber returns the protobuf field number.
func (f oneofField[M, U, V]) FieldNumber() wire.FieldNumber {
	return f.fieldNumber
}

// Name returns the declared field name.
func (f oneofField[M, U, V]) Name() string {
	return f.name
}

// Index returns the alternative's position within the union.
func (f oneofField[M, U, V]) Index() int {
	return f.index
}

func (f oneofField[M, U, V]) encode(m *M, out io.Writer) error {
	v, ok := f.unwrap(*f.get(m))
	if !ok {
		return nil
	}
	return f.codec.Serialize(f.fieldNumber, v, out, false)
}

func (f oneofField[M, U, V]) decode(m *M, wireType wire.WireType, in io.Reader) error {
	var v V
	if err := f.codec.Parse(wireType, &v, in); err != nil {
		return err
	}
	*f.get(m) = f.wrap(v)
	return nil
}
