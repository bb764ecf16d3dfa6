package codec

import (
	"io"
	"sync"

	"github.com/anirudhraja/prototag/wire"
)

// Nested returns the codec for an embedded message field of type T. The
// descriptor for T is resolved from the registry on first use, so
// recursive and forward-referenced message types work regardless of
// registration order.
//
// A nested message whose encoded size is zero is elided entirely unless
// forced (as a map value it must stay on the wire).
func Nested[T any]() Codec[T] {
	return &nestedCodec[T]{}
}

type nestedCodec[T any] struct {
	once sync.Once
	desc *Message[T]
	err  error
}

func (c *nestedCodec[T]) resolve() (*Message[T], error) {
	c.once.Do(func() {
		c.desc, c.err = MessageOf[T]()
	})
	return c.desc, c.err
}

func (c *nestedCodec[T]) Serialize(fieldNumber wire.FieldNumber, v T, out io.Writer, force bool) error {
	desc, err := c.resolve()
	if err != nil {
		return err
	}

	var size wire.SizeCounter
	if err := desc.Encode(&v, &size); err != nil {
		return err
	}
	if !force && size.Size == 0 {
		return nil
	}

	if err := wire.WriteTag(out, fieldNumber, wire.WireBytes); err != nil {
		return err
	}
	if err := wire.WriteVarint(out, uint64(size.Size)); err != nil {
		return err
	}
	return desc.Encode(&v, out)
}

func (c *nestedCodec[T]) Parse(wireType wire.WireType, v *T, in io.Reader) error {
	if wireType != wire.WireBytes {
		return wire.ErrWireTypeMismatch
	}

	desc, err := c.resolve()
	if err != nil {
		return err
	}

	size, err := readVarintValue(in)
	if err != nil {
		return err
	}

	limited := wire.LimitReader(in, size)
	if err := desc.Decode(v, limited); err != nil {
		return err
	}
	// Budget left over means the parent stream ended early: the length
	// prefix promised more bytes than the message had.
	if limited.N > 0 {
		return wire.ErrUnexpectedEOF
	}
	return nil
}
