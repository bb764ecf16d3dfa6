package codec

import (
	"io"

	"github.com/anirudhraja/prototag/wire"
)

// Repeated returns the codec for a repeated field with the given element
// codec. Elements whose codec supports packing are emitted packed: one
// tag header, one length prefix measured by a counting pass, then the
// concatenated packed bodies. Strings, bytes and nested messages are
// emitted as one tagged record per element.
func Repeated[V any](elem Codec[V]) Codec[[]V] {
	rc := &repeatedCodec[V]{elem: elem}
	if p, ok := elem.(PackedCodec[V]); ok {
		rc.packed = p
	}
	return rc
}

type repeatedCodec[V any] struct {
	elem   Codec[V]
	packed PackedCodec[V] // nil when the element has no packed form
}

func (c *repeatedCodec[V]) Serialize(fieldNumber wire.FieldNumber, vs []V, out io.Writer, force bool) error {
	if len(vs) == 0 {
		return nil
	}

	if c.packed == nil {
		// Unpacked elements are forced: a zero element is still an
		// element and must survive the round trip.
		for _, v := range vs {
			if err := c.elem.Serialize(fieldNumber, v, out, true); err != nil {
				return err
			}
		}
		return nil
	}

	if err := wire.WriteTag(out, fieldNumber, wire.WireBytes); err != nil {
		return err
	}

	var size wire.SizeCounter
	for _, v := range vs {
		if err := c.packed.SerializePacked(v, &size); err != nil {
			return err
		}
	}
	if err := wire.WriteVarint(out, uint64(size.Size)); err != nil {
		return err
	}

	for _, v := range vs {
		if err := c.packed.SerializePacked(v, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *repeatedCodec[V]) Parse(wireType wire.WireType, vs *[]V, in io.Reader) error {
	if c.packed != nil && wireType == wire.WireBytes {
		size, err := readVarintValue(in)
		if err != nil {
			return err
		}

		limited := wire.LimitReader(in, size)
		for limited.N > 0 {
			var v V
			if err := c.packed.ParsePacked(&v, limited); err != nil {
				return err
			}
			*vs = append(*vs, v)
		}
		return nil
	}

	// One unpacked element per tag occurrence.
	var v V
	if err := c.elem.Parse(wireType, &v, in); err != nil {
		return err
	}
	*vs = append(*vs, v)
	return nil
}
