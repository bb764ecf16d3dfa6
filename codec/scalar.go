package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/anirudhraja/prototag/wire"
)

// Scalar codecs. Each constructor validates the flag combination for its
// element type and panics on an illegal one; descriptors are built once
// at startup and a bad flag set is a programming error, not input.

// Int32 returns the codec for int32 fields. Legal flags: none (varint,
// sign-extended like standard protobuf), Signed (zigzag varint), or
// Signed|Fixed (sfixed32).
func Int32(flags Flags) Codec[int32] {
	switch flags {
	case 0, Signed, Signed | Fixed:
		return int32Codec{flags: flags}
	default:
		panic(fmt.Sprintf("codec: illegal flags %#x for int32", flags))
	}
}

type int32Codec struct {
	flags Flags
}

func (c int32Codec) Serialize(fieldNumber wire.FieldNumber, v int32, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, c.wireType()); err != nil {
		return err
	}
	return c.SerializePacked(v, out)
}

func (c int32Codec) SerializePacked(v int32, out io.Writer) error {
	switch c.flags {
	case Signed:
		return wire.WriteVarint32(out, wire.EncodeZigZag32(v))
	case Signed | Fixed:
		return wire.WriteFixed32(out, uint32(v))
	default:
		// Negative values sign-extend to the 10-byte form, as the
		// protobuf encoding requires for int32 fields.
		return wire.WriteVarint(out, uint64(int64(v)))
	}
}

func (c int32Codec) Parse(wireType wire.WireType, v *int32, in io.Reader) error {
	if wireType != c.wireType() {
		return wire.ErrWireTypeMismatch
	}
	return c.ParsePacked(v, in)
}

func (c int32Codec) ParsePacked(v *int32, in io.Reader) error {
	switch c.flags {
	case Signed:
		u, err := readVarint32Value(in)
		if err != nil {
			return err
		}
		*v = wire.DecodeZigZag32(u)
	case Signed | Fixed:
		u, err := wire.ReadFixed32(in)
		if err != nil {
			return err
		}
		*v = int32(u)
	default:
		u, err := readVarintValue(in)
		if err != nil {
			return err
		}
		*v = int32(u)
	}
	return nil
}

func (c int32Codec) wireType() wire.WireType {
	if c.flags == Signed|Fixed {
		return wire.WireFixed32
	}
	return wire.WireVarint
}

// Int64 returns the codec for int64 fields. Legal flags: none, Signed,
// or Signed|Fixed (sfixed64).
func Int64(flags Flags) Codec[int64] {
	switch flags {
	case 0, Signed, Signed | Fixed:
		return int64Codec{flags: flags}
	default:
		panic(fmt.Sprintf("codec: illegal flags %#x for int64", flags))
	}
}

type int64Codec struct {
	flags Flags
}

func (c int64Codec) Serialize(fieldNumber wire.FieldNumber, v int64, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, c.wireType()); err != nil {
		return err
	}
	return c.SerializePacked(v, out)
}

func (c int64Codec) SerializePacked(v int64, out io.Writer) error {
	switch c.flags {
	case Signed:
		return wire.WriteVarint(out, wire.EncodeZigZag64(v))
	case Signed | Fixed:
		return wire.WriteFixed64(out, uint64(v))
	default:
		return wire.WriteVarint(out, uint64(v))
	}
}

func (c int64Codec) Parse(wireType wire.WireType, v *int64, in io.Reader) error {
	if wireType != c.wireType() {
		return wire.ErrWireTypeMismatch
	}
	return c.ParsePacked(v, in)
}

func (c int64Codec) ParsePacked(v *int64, in io.Reader) error {
	switch c.flags {
	case Signed:
		u, err := readVarintValue(in)
		if err != nil {
			return err
		}
		*v = wire.DecodeZigZag64(u)
	case Signed | Fixed:
		u, err := wire.ReadFixed64(in)
		if err != nil {
			return err
		}
		*v = int64(u)
	default:
		u, err := readVarintValue(in)
		if err != nil {
			return err
		}
		*v = int64(u)
	}
	return nil
}

func (c int64Codec) wireType() wire.WireType {
	if c.flags == Signed|Fixed {
		return wire.WireFixed64
	}
	return wire.WireVarint
}

// Uint32 returns the codec for uint32 fields. Legal flags: none (varint)
// or Fixed (fixed32).
func Uint32(flags Flags) Codec[uint32] {
	switch flags {
	case 0, Fixed:
		return uint32Codec{flags: flags}
	default:
		panic(fmt.Sprintf("codec: illegal flags %#x for uint32", flags))
	}
}

type uint32Codec struct {
	flags Flags
}

func (c uint32Codec) Serialize(fieldNumber wire.FieldNumber, v uint32, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, c.wireType()); err != nil {
		return err
	}
	return c.SerializePacked(v, out)
}

func (c uint32Codec) SerializePacked(v uint32, out io.Writer) error {
	if c.flags == Fixed {
		return wire.WriteFixed32(out, v)
	}
	return wire.WriteVarint32(out, v)
}

func (c uint32Codec) Parse(wireType wire.WireType, v *uint32, in io.Reader) error {
	if wireType != c.wireType() {
		return wire.ErrWireTypeMismatch
	}
	return c.ParsePacked(v, in)
}

func (c uint32Codec) ParsePacked(v *uint32, in io.Reader) error {
	if c.flags == Fixed {
		u, err := wire.ReadFixed32(in)
		if err != nil {
			return err
		}
		*v = u
		return nil
	}
	u, err := readVarint32Value(in)
	if err != nil {
		return err
	}
	*v = u
	return nil
}

func (c uint32Codec) wireType() wire.WireType {
	if c.flags == Fixed {
		return wire.WireFixed32
	}
	return wire.WireVarint
}

// Uint64 returns the codec for uint64 fields. Legal flags: none (varint)
// or Fixed (fixed64).
func Uint64(flags Flags) Codec[uint64] {
	switch flags {
	case 0, Fixed:
		return uint64Codec{flags: flags}
	default:
		panic(fmt.Sprintf("codec: illegal flags %#x for uint64", flags))
	}
}

type uint64Codec struct {
	flags Flags
}

func (c uint64Codec) Serialize(fieldNumber wire.FieldNumber, v uint64, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, c.wireType()); err != nil {
		return err
	}
	return c.SerializePacked(v, out)
}

func (c uint64Codec) SerializePacked(v uint64, out io.Writer) error {
	if c.flags == Fixed {
		return wire.WriteFixed64(out, v)
	}
	return wire.WriteVarint(out, v)
}

func (c uint64Codec) Parse(wireType wire.WireType, v *uint64, in io.Reader) error {
	if wireType != c.wireType() {
		return wire.ErrWireTypeMismatch
	}
	return c.ParsePacked(v, in)
}

func (c uint64Codec) ParsePacked(v *uint64, in io.Reader) error {
	if c.flags == Fixed {
		u, err := wire.ReadFixed64(in)
		if err != nil {
			return err
		}
		*v = u
		return nil
	}
	u, err := readVarintValue(in)
	if err != nil {
		return err
	}
	*v = u
	return nil
}

func (c uint64Codec) wireType() wire.WireType {
	if c.flags == Fixed {
		return wire.WireFixed64
	}
	return wire.WireVarint
}

// Bool returns the codec for bool fields, encoded as varint 1 or 0.
func Bool() Codec[bool] {
	return boolCodec{}
}

type boolCodec struct{}

func (boolCodec) Serialize(fieldNumber wire.FieldNumber, v bool, out io.Writer, force bool) error {
	if !force && !v {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireVarint); err != nil {
		return err
	}
	return boolCodec{}.SerializePacked(v, out)
}

func (boolCodec) SerializePacked(v bool, out io.Writer) error {
	var u uint32
	if v {
		u = 1
	}
	return wire.WriteVarint32(out, u)
}

func (boolCodec) Parse(wireType wire.WireType, v *bool, in io.Reader) error {
	if wireType != wire.WireVarint {
		return wire.ErrWireTypeMismatch
	}
	return boolCodec{}.ParsePacked(v, in)
}

func (boolCodec) ParsePacked(v *bool, in io.Reader) error {
	u, err := readVarintValue(in)
	if err != nil {
		return err
	}
	*v = u != 0
	return nil
}

// Enum returns the codec for enum fields, encoded through the underlying
// int32 like standard protobuf.
func Enum[E ~int32]() Codec[E] {
	return enumCodec[E]{}
}

type enumCodec[E ~int32] struct{}

func (enumCodec[E]) Serialize(fieldNumber wire.FieldNumber, v E, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireVarint); err != nil {
		return err
	}
	return enumCodec[E]{}.SerializePacked(v, out)
}

func (enumCodec[E]) SerializePacked(v E, out io.Writer) error {
	return wire.WriteVarint(out, uint64(int64(v)))
}

func (enumCodec[E]) Parse(wireType wire.WireType, v *E, in io.Reader) error {
	if wireType != wire.WireVarint {
		return wire.ErrWireTypeMismatch
	}
	return enumCodec[E]{}.ParsePacked(v, in)
}

func (enumCodec[E]) ParsePacked(v *E, in io.Reader) error {
	u, err := readVarintValue(in)
	if err != nil {
		return err
	}
	*v = E(int32(u))
	return nil
}

// Float returns the codec for float32 fields (fixed32). Zeros of either
// sign are elided; NaN and infinities are emitted.
func Float() Codec[float32] {
	return floatCodec{}
}

type floatCodec struct{}

func (floatCodec) Serialize(fieldNumber wire.FieldNumber, v float32, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireFixed32); err != nil {
		return err
	}
	return floatCodec{}.SerializePacked(v, out)
}

func (floatCodec) SerializePacked(v float32, out io.Writer) error {
	return wire.WriteFloat32(out, v)
}

func (floatCodec) Parse(wireType wire.WireType, v *float32, in io.Reader) error {
	if wireType != wire.WireFixed32 {
		return wire.ErrWireTypeMismatch
	}
	return floatCodec{}.ParsePacked(v, in)
}

func (floatCodec) ParsePacked(v *float32, in io.Reader) error {
	f, err := wire.ReadFloat32(in)
	if err != nil {
		return err
	}
	*v = f
	return nil
}

// Double returns the codec for float64 fields (fixed64).
func Double() Codec[float64] {
	return doubleCodec{}
}

type doubleCodec struct{}

func (doubleCodec) Serialize(fieldNumber wire.FieldNumber, v float64, out io.Writer, force bool) error {
	if !force && v == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireFixed64); err != nil {
		return err
	}
	return doubleCodec{}.SerializePacked(v, out)
}

func (doubleCodec) SerializePacked(v float64, out io.Writer) error {
	return wire.WriteFloat64(out, v)
}

func (doubleCodec) Parse(wireType wire.WireType, v *float64, in io.Reader) error {
	if wireType != wire.WireFixed64 {
		return wire.ErrWireTypeMismatch
	}
	return doubleCodec{}.ParsePacked(v, in)
}

func (doubleCodec) ParsePacked(v *float64, in io.Reader) error {
	f, err := wire.ReadFloat64(in)
	if err != nil {
		return err
	}
	*v = f
	return nil
}

// String returns the codec for string fields (length-delimited).
func String() Codec[string] {
	return stringCodec{}
}

type stringCodec struct{}

func (stringCodec) Serialize(fieldNumber wire.FieldNumber, v string, out io.Writer, force bool) error {
	if !force && v == "" {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireBytes); err != nil {
		return err
	}
	if err := wire.WriteVarint(out, uint64(len(v))); err != nil {
		return err
	}
	_, err := io.WriteString(out, v)
	return err
}

func (stringCodec) Parse(wireType wire.WireType, v *string, in io.Reader) error {
	if wireType != wire.WireBytes {
		return wire.ErrWireTypeMismatch
	}

	size, err := readVarintValue(in)
	if err != nil {
		return err
	}

	// Copy through CopyN so a lying length prefix cannot force a huge
	// up-front allocation.
	var b strings.Builder
	if n, err := io.CopyN(&b, in, int64(size)); uint64(n) < size {
		if err == io.EOF || err == nil {
			return wire.ErrUnexpectedEOF
		}
		return err
	}

	*v = b.String()
	return nil
}

// BytesValue returns the codec for bytes fields (length-delimited). The
// zero value is the empty slice; nil and empty are both elided.
func BytesValue() Codec[[]byte] {
	return bytesCodec{}
}

type bytesCodec struct{}

func (bytesCodec) Serialize(fieldNumber wire.FieldNumber, v []byte, out io.Writer, force bool) error {
	if !force && len(v) == 0 {
		return nil
	}
	if err := wire.WriteTag(out, fieldNumber, wire.WireBytes); err != nil {
		return err
	}
	if err := wire.WriteVarint(out, uint64(len(v))); err != nil {
		return err
	}
	_, err := out.Write(v)
	return err
}

func (bytesCodec) Parse(wireType wire.WireType, v *[]byte, in io.Reader) error {
	if wireType != wire.WireBytes {
		return wire.ErrWireTypeMismatch
	}

	size, err := readVarintValue(in)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if n, err := io.CopyN(&b, in, int64(size)); uint64(n) < size {
		if err == io.EOF || err == nil {
			return wire.ErrUnexpectedEOF
		}
		return err
	}

	*v = b.Bytes()
	return nil
}
