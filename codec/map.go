package codec

import (
	"io"
	"reflect"
	"sort"

	"github.com/anirudhraja/prototag/wire"
)

// NewMapField creates the descriptor for a protobuf map field. On the
// wire a map is a repeated synthetic message, one entry per pair with the
// key at field 1 and the value at field 2. Keys and values are emitted
// forced: zero is a legal map key and value and must stay on the wire.
//
// Key and value encodings, including their flags, are fixed by the
// codecs passed in. Entries are emitted in ascending key order for bool,
// integer and string keys so output is deterministic.
func NewMapField[M any, K comparable, V any](fieldNumber uint32, name string,
	key Codec[K], value Codec[V], get func(*M) *map[K]V) Field[M] {
	return NewField(fieldNumber, name, newMapCodec(key, value), get)
}

type mapEntry[K comparable, V any] struct {
	key K
	val V
}

type mapCodec[K comparable, V any] struct {
	key   Codec[K]
	value Codec[V]
	entry *Message[mapEntry[K, V]] // entry decoded as a two-field message
	less  func(a, b K) bool        // nil when K has no defined order
}

func newMapCodec[K comparable, V any](key Codec[K], value Codec[V]) *mapCodec[K, V] {
	entry := NewMessage(
		NewField(1, "key", key, func(e *mapEntry[K, V]) *K { return &e.key }),
		NewField(2, "value", value, func(e *mapEntry[K, V]) *V { return &e.val }),
	)
	return &mapCodec[K, V]{key: key, value: value, entry: entry, less: keyLess[K]()}
}

func (c *mapCodec[K, V]) Serialize(fieldNumber wire.FieldNumber, m map[K]V, out io.Writer, force bool) error {
	if len(m) == 0 {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if c.less != nil {
		sort.Slice(keys, func(i, j int) bool { return c.less(keys[i], keys[j]) })
	}

	for _, k := range keys {
		if err := wire.WriteTag(out, fieldNumber, wire.WireBytes); err != nil {
			return err
		}

		var size wire.SizeCounter
		if err := c.writeEntry(k, m[k], &size); err != nil {
			return err
		}
		if err := wire.WriteVarint(out, uint64(size.Size)); err != nil {
			return err
		}
		if err := c.writeEntry(k, m[k], out); err != nil {
			return err
		}
	}
	return nil
}

func (c *mapCodec[K, V]) writeEntry(k K, v V, out io.Writer) error {
	if err := c.key.Serialize(1, k, out, true); err != nil {
		return err
	}
	return c.value.Serialize(2, v, out, true)
}

func (c *mapCodec[K, V]) Parse(wireType wire.WireType, m *map[K]V, in io.Reader) error {
	if wireType != wire.WireBytes {
		return wire.ErrWireTypeMismatch
	}

	size, err := readVarintValue(in)
	if err != nil {
		return err
	}

	limited := wire.LimitReader(in, size)
	var e mapEntry[K, V]
	if err := c.entry.Decode(&e, limited); err != nil {
		return err
	}
	if limited.N > 0 {
		return wire.ErrUnexpectedEOF
	}

	if *m == nil {
		*m = make(map[K]V)
	}
	(*m)[e.key] = e.val
	return nil
}

// keyLess builds an ordering for the supported map key kinds. Map keys
// outside bool/integer/string fall back to Go's map iteration order.
func keyLess[K comparable]() func(a, b K) bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.String:
		return func(a, b K) bool {
			return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) bool {
			return reflect.ValueOf(a).Int() < reflect.ValueOf(b).Int()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(a, b K) bool {
			return reflect.ValueOf(a).Uint() < reflect.ValueOf(b).Uint()
		}
	case reflect.Bool:
		return func(a, b K) bool {
			return !reflect.ValueOf(a).Bool() && reflect.ValueOf(b).Bool()
		}
	default:
		return nil
	}
}
