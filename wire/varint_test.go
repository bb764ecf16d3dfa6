package wire

import (
	"bytes"
	"io"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestWriteVarint(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"max one byte", 127, []byte{0x7F}},
		{"two bytes", 128, []byte{0x80, 0x01}},
		{"classic 150", 150, []byte{0x96, 0x01}},
		{"max uint64", math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteVarint(&buf, tt.value); err != nil {
				t.Fatalf("WriteVarint(%d) error: %v", tt.value, err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("WriteVarint(%d) = %x, want %x", tt.value, buf.Bytes(), tt.want)
			}

			// The canonical runtime must agree byte for byte.
			if ref := protowire.AppendVarint(nil, tt.value); !bytes.Equal(buf.Bytes(), ref) {
				t.Errorf("WriteVarint(%d) = %x, protowire = %x", tt.value, buf.Bytes(), ref)
			}

			got, err := ReadVarint(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("ReadVarint(%x) error: %v", buf.Bytes(), err)
			}
			if got != tt.value {
				t.Errorf("ReadVarint(%x) = %d, want %d", buf.Bytes(), got, tt.value)
			}
		})
	}
}

func TestReadVarintErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"clean EOF", nil, io.EOF},
		{"truncated", []byte{0x80}, ErrUnexpectedEOF},
		{"truncated long", []byte{0xFF, 0xFF, 0xFF}, ErrUnexpectedEOF},
		{"too long", bytes.Repeat([]byte{0x80}, 11), ErrVarintTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadVarint(bytes.NewReader(tt.input)); err != tt.want {
				t.Errorf("ReadVarint(%x) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestReadVarint32Limit(t *testing.T) {
	// Five continuation bytes with no terminator exceed the 32-bit limit.
	input := bytes.Repeat([]byte{0x80}, 6)
	if _, err := ReadVarint32(bytes.NewReader(input)); err != ErrVarintTooLong {
		t.Errorf("ReadVarint32(%x) error = %v, want %v", input, err, ErrVarintTooLong)
	}

	// Five bytes with a clear terminator are fine.
	var buf bytes.Buffer
	if err := WriteVarint32(&buf, math.MaxUint32); err != nil {
		t.Fatal(err)
	}
	got, err := ReadVarint32(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadVarint32 error: %v", err)
	}
	if got != math.MaxUint32 {
		t.Errorf("ReadVarint32 = %d, want %d", got, uint32(math.MaxUint32))
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	values32 := []int32{0, -1, 1, -2, 2, 150, -150, math.MaxInt32, math.MinInt32}
	for _, v := range values32 {
		if got := DecodeZigZag32(EncodeZigZag32(v)); got != v {
			t.Errorf("DecodeZigZag32(EncodeZigZag32(%d)) = %d", v, got)
		}
	}

	values64 := []int64{0, -1, 1, -64, 64, math.MaxInt64, math.MinInt64}
	for _, v := range values64 {
		if got := DecodeZigZag64(EncodeZigZag64(v)); got != v {
			t.Errorf("DecodeZigZag64(EncodeZigZag64(%d)) = %d", v, got)
		}
		if got := EncodeZigZag64(v); got != protowire.EncodeZigZag(v) {
			t.Errorf("EncodeZigZag64(%d) = %d, protowire = %d", v, got, protowire.EncodeZigZag(v))
		}
	}
}

func TestZigZagKnownValues(t *testing.T) {
	tests := []struct {
		value int32
		want  uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2147483647, 4294967294},
		{-2147483648, 4294967295},
	}
	for _, tt := range tests {
		if got := EncodeZigZag32(tt.value); got != tt.want {
			t.Errorf("EncodeZigZag32(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestVarintSize(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 150, 16383, 16384, 1 << 31, 1 << 62, math.MaxUint64}
	for _, v := range values {
		var buf bytes.Buffer
		if err := WriteVarint(&buf, v); err != nil {
			t.Fatal(err)
		}
		if got := VarintSize(v); got != buf.Len() {
			t.Errorf("VarintSize(%d) = %d, emitted %d bytes", v, got, buf.Len())
		}
		if got := VarintSize(v); got != protowire.SizeVarint(v) {
			t.Errorf("VarintSize(%d) = %d, protowire = %d", v, got, protowire.SizeVarint(v))
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	tests := []struct {
		fieldNumber FieldNumber
		wireType    WireType
		want        []byte
	}{
		{1, WireVarint, []byte{0x08}},
		{1, WireBytes, []byte{0x0A}},
		{2, WireBytes, []byte{0x12}},
		{7, WireBytes, []byte{0x3A}},
		{16, WireVarint, []byte{0x80, 0x01}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteTag(&buf, tt.fieldNumber, tt.wireType); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("WriteTag(%d, %d) = %x, want %x", tt.fieldNumber, tt.wireType, buf.Bytes(), tt.want)
		}

		ref := protowire.AppendTag(nil, protowire.Number(tt.fieldNumber), protowire.Type(tt.wireType))
		if !bytes.Equal(buf.Bytes(), ref) {
			t.Errorf("WriteTag(%d, %d) = %x, protowire = %x", tt.fieldNumber, tt.wireType, buf.Bytes(), ref)
		}

		fieldNumber, wireType, err := ReadTag(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if fieldNumber != tt.fieldNumber || wireType != tt.wireType {
			t.Errorf("ReadTag(%x) = (%d, %d), want (%d, %d)", buf.Bytes(), fieldNumber, wireType, tt.fieldNumber, tt.wireType)
		}
	}
}

func TestReadTagEOF(t *testing.T) {
	if _, _, err := ReadTag(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("ReadTag on empty source error = %v, want io.EOF", err)
	}
	if _, _, err := ReadTag(bytes.NewReader([]byte{0x96})); err != ErrUnexpectedEOF {
		t.Errorf("ReadTag on partial header error = %v, want ErrUnexpectedEOF", err)
	}
}
