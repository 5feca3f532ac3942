// Package printf interprets printf-style templates at runtime, over raw
// bytes, without the host formatting machinery and without panicking on
// malformed input: every bad template, bad argument, or failing output sink
// comes back as an error value.
//
// Templates and arguments are byte-oriented. Neither has to be valid UTF-8,
// and string precision truncates by byte count, never by character boundary.
//
// # Entry Points
//
//	out, err := printf.Format([]byte("He%s=%d"), printf.String("ll"), printf.Int(4))
//	// out == []byte("Hell=4")
//
// [Format] and [AppendFormat] render into a growable buffer; on failure they
// return the partial output alongside the error. [FormatTo] writes to any
// [Sink] — [SliceSink] for a fixed-capacity slice, [WriterSink] for an
// io.Writer, [SinkFunc] for a callback — and is the core operation the other
// two wrap.
//
// [Visit] exposes the template scanner directly for consumers that want the
// raw event stream (literal runs, escaped percents, unparsed conversion
// specifications) instead of rendered output.
//
// # Supported Conversions
//
// Signed decimal integers (%d, %i) and byte strings (%s), with the -, 0
// flags, field width, precision, and the integer length modifiers hh, h, l,
// ll, j (128-bit, see [BigInt]) and z. The scanner recognizes the full
// printf specifier and flag alphabets, so anything outside this set is
// rejected with a precise error ([ErrUnknownSpecifier], [ErrUnsupported],
// ...) rather than silently mis-formatted.
//
// Two quirks are deliberate and covered by tests:
//
//   - The + and ' ' (space) flags parse but do not change the rendered digit
//     stream. This mirrors the behavior of the engine this package derives
//     its semantics from.
//   - Leftover arguments are not a hard error. [FormatTo] reports them as
//     [ErrExcessArgs] after writing all output; [Format] and [AppendFormat]
//     ignore them, matching legacy printf tolerance.
//
// # Errors
//
// One pass produces at most one error: the first failure is latched, the
// scan still runs to completion structurally, but no further bytes are
// written and no further arguments are consumed. Sink failures wrap the
// sink's own error under [ErrSink]; all other failures are package sentinel
// errors testable with errors.Is.
package printf
