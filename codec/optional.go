package codec

import (
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// Optional returns the codec for an explicit-presence field, represented
// as a pointer. A nil pointer emits nothing. A populated pointer
// delegates to the element codec, default-elision included, so a present
// zero decodes back as absent. Parsing always constructs the value in
// place; absence is simply the tag never appearing on the wire.
func Optional[V any](elem Codec[V]) Codec[*V] {
	return optionalCodec[V]{elem: elem}
}

type optionalCodec[V any] struct {
	elem Codec[V]
}

func (c optionalCodec[V]) Serialize(fieldNumber wire.FieldNumber, v *V, out io.Writer, force bool) error {
	if v == nil {
		return nil
	}
	return c.elem.Serialize(fieldNumber, *v, out, force)
}

func (c optionalCodec[V]) Parse(wireType wire.WireType, v **V, in io.Reader) error {
	nv := new(V)
	if err := c.elem.Parse(wireType, nv, in); err != nil {
		return err
	}
	*v = nv
	return nil
}
