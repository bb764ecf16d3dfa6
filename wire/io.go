package wire

import "io"

// The codec reads and writes through plain io.Writer / io.Reader. A sink
// accepts every byte handed to it; a source yields up to the requested
// number of bytes, with io.EOF signalling end-of-stream.

// SizeCounter is a sink that discards bytes and accumulates the total
// length. It backs the two-pass length prefix of nested messages, map
// entries and packed repeated fields: first pass measures, second emits.
type SizeCounter struct {
	Size int
}

// Write implements io.Writer.
func (c *SizeCounter) Write(p []byte) (int, error) {
	c.Size += len(p)
	return len(p), nil
}

// LimitReader wraps a source with a remaining-byte budget. Every read
// reduces the budget; reads beyond it are truncated and then report
// io.EOF. The returned reader's N field is the remaining budget.
func LimitReader(r io.Reader, n uint64) *io.LimitedReader {
	return &io.LimitedReader{R: r, N: int64(n)}
}

// ReadByte reads exactly one byte from r. A clean end-of-stream returns
// io.EOF.
func ReadByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}

	var b [1]byte
	n, err := r.Read(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err == nil || err == io.EOF {
		return 0, io.EOF
	}
	return 0, err
}
