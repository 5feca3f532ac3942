package printf

import (
	"errors"
	"fmt"
	"math"
)

// formatter runs one formatting pass. It implements [Visitor], parses each
// specification the scanner delivers, and renders the next argument to the
// sink. It tracks the first error that occurs; after an error, all
// subsequent callbacks become no-ops, so the scan always completes
// structurally but nothing further is written and no further arguments are
// consumed.
type formatter struct {
	sink Sink
	args []Value
	next int   // argument cursor
	err  error // first error encountered; latched for the rest of the pass
}

// setError records the first non-nil error. This preserves the root cause
// of a failure instead of a later, less relevant error.
func (f *formatter) setError(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

func (f *formatter) put(b []byte) bool {
	if err := f.sink.Put(b); err != nil {
		f.setError(fmt.Errorf("%w: %w", ErrSink, err))
		return false
	}
	return true
}

func (f *formatter) VisitLiteral(b []byte) {
	if f.err != nil {
		return
	}
	f.put(b)
}

func (f *formatter) VisitEscapedPercent() {
	if f.err != nil {
		return
	}
	f.put(percent)
}

func (f *formatter) VisitSpec(raw RawSpec) {
	if f.err != nil {
		return
	}
	spec, err := parseSpecCached(raw)
	if err != nil {
		f.setError(err)
		return
	}
	if !spec.Flags.supported() {
		f.setError(fmt.Errorf("%w: grouping and alternative-digit flags", ErrUnsupported))
		return
	}
	if f.next == len(f.args) {
		f.setError(ErrNotEnoughArgs)
		return
	}
	arg := f.args[f.next]
	f.next++

	switch arg.kind {
	case ValueInt:
		f.formatInt(arg.num, spec)
	case ValueBytes:
		f.formatBytes(arg.bytes, spec)
	}
}

func (f *formatter) VisitEOF() {}

func (f *formatter) formatInt(x Int128, spec Spec) {
	if spec.Kind != ConvDecimal {
		f.setError(ErrBadType)
		return
	}

	var low, high int64
	switch spec.Length {
	case LenChar:
		low, high = math.MinInt8, math.MaxInt8
	case LenShort:
		low, high = math.MinInt16, math.MaxInt16
	case LenNone:
		low, high = math.MinInt32, math.MaxInt32
	case LenLong, LenLongLong:
		low, high = math.MinInt64, math.MaxInt64
	case LenSize:
		low, high = math.MinInt, math.MaxInt
	case LenIntMax:
		// every Int128 fits
	default: // LenLongDouble, LenPtrDiff
		f.setError(fmt.Errorf("%w: length modifier for integer conversion", ErrUnsupported))
		return
	}
	if spec.Length != LenIntMax {
		if !x.IsInt64() {
			f.setError(ErrOverflow)
			return
		}
		if v := x.Int64(); v < low || v > high {
			f.setError(ErrOverflow)
			return
		}
	}

	// Minimal decimal form: a '-' sign only when negative. The '+' and ' '
	// flags are accepted by the parser but do not alter the digit stream;
	// see the package documentation.
	var scratch [40]byte
	f.writeData(x.Append(scratch[:0]), spec)
}

func (f *formatter) formatBytes(b []byte, spec Spec) {
	if spec.Kind != ConvString {
		f.setError(ErrBadType)
		return
	}
	fl := spec.Flags
	if fl.Alt || fl.ZeroPad || fl.Grouping || fl.AltDigits {
		f.setError(fmt.Errorf("%w: flag with string conversion", ErrInvalidCombination))
		return
	}
	// Precision caps the emitted length in raw bytes; no text boundary is
	// respected because the engine is defined over bytes.
	if spec.HasPrec && spec.Prec < len(b) {
		b = b[:spec.Prec]
	}
	f.writeData(b, spec)
}

// writeData emits data padded to spec.MinWidth. The pad byte is '0' when
// zero padding was requested (numeric path only; the string path rejects it
// earlier), otherwise space. Padding precedes the data unless the
// left-adjust flag moves it after. Every pad byte is its own sink write, so
// a failing sink stops padding immediately.
func (f *formatter) writeData(data []byte, spec Spec) {
	padding := 0
	if len(data) < spec.MinWidth {
		padding = spec.MinWidth - len(data)
	}
	pad := byte(' ')
	if spec.Flags.ZeroPad {
		pad = '0'
	}

	if !spec.Flags.LeftAdjust && !f.writePadding(pad, padding) {
		return
	}
	if !f.put(data) {
		return
	}
	if spec.Flags.LeftAdjust {
		f.writePadding(pad, padding)
	}
}

func (f *formatter) writePadding(c byte, n int) bool {
	b := [1]byte{c}
	for ; n > 0; n-- {
		if !f.put(b[:]) {
			return false
		}
	}
	return true
}

// FormatTo interprets template against args, writing all output to sink.
// One pass yields one outcome: nil on success, or the first error that
// occurred. A failed pass is terminal; whatever the sink received before the
// failure is up to the sink to expose.
//
// When formatting succeeds but args were left over, FormatTo returns
// [ErrExcessArgs] with the output fully written. Callers wanting the legacy
// printf behavior of ignoring unused arguments can test for it with
// errors.Is, or use [Format]/[AppendFormat], which do so already.
func FormatTo(sink Sink, template []byte, args ...Value) error {
	f := formatter{sink: sink, args: args}
	Visit(template, &f)
	if f.err != nil {
		return f.err
	}
	if f.next != len(args) {
		return fmt.Errorf("%w: %d of %d consumed", ErrExcessArgs, f.next, len(args))
	}
	return nil
}

// Format renders template with args into a freshly allocated buffer.
// On failure the partially rendered output is returned alongside the error.
// Unused arguments are not an error.
func Format(template []byte, args ...Value) ([]byte, error) {
	return AppendFormat(nil, template, args...)
}

// AppendFormat renders template with args, appends the output to dst, and
// returns the extended slice. On failure the slice holds everything rendered
// before the error. Unused arguments are not an error.
func AppendFormat(dst []byte, template []byte, args ...Value) ([]byte, error) {
	s := appendSink{buf: dst}
	err := FormatTo(&s, template, args...)
	if errors.Is(err, ErrExcessArgs) {
		err = nil
	}
	return s.buf, err
}
