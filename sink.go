package printf

import "io"

// Sink is the sole output channel of a formatting pass: an ordered byte
// receiver with a single fallible operation. A sink error stops the pass and
// is returned wrapped in [ErrSink], with the sink's own error preserved in
// the chain.
type Sink interface {
	// Put accepts the next chunk of output.
	Put(p []byte) error
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(p []byte) error

// Put calls f(p).
func (f SinkFunc) Put(p []byte) error { return f(p) }

// WriterSink delegates to an io.Writer. A short write is reported as
// io.ErrShortWrite.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Put(p []byte) error {
	n, err := s.W.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// SliceSink writes into a pre-allocated byte slice. It will not grow the
// slice's capacity. If a chunk exceeds the available space, it writes as
// much as it can and returns io.ErrShortWrite.
type SliceSink struct {
	B []byte // destination slice
	N int    // current write position
}

// NewSliceSink creates a SliceSink over the full capacity of p.
func NewSliceSink(p []byte) *SliceSink {
	return &SliceSink{B: p[:cap(p)]}
}

// Put implements the Sink interface.
func (s *SliceSink) Put(p []byte) error {
	if s.N >= len(s.B) {
		if len(p) == 0 {
			return nil
		}
		return io.ErrShortWrite
	}
	n := copy(s.B[s.N:], p)
	s.N += n
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Reset allows the underlying byte slice to be reused.
func (s *SliceSink) Reset() { s.N = 0 }

// Len returns the number of bytes written.
func (s *SliceSink) Len() int { return s.N }

// Available returns the number of bytes available for writing.
func (s *SliceSink) Available() int { return len(s.B) - s.N }

// Bytes returns a slice view of the written data.
func (s *SliceSink) Bytes() []byte { return s.B[:s.N] }

// appendSink accumulates output in a growable slice. It never fails.
type appendSink struct {
	buf []byte
}

func (s *appendSink) Put(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}
