package printf

import (
	"math"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ValueKind discriminates the two argument kinds a conversion can consume.
type ValueKind uint8

const (
	ValueInt   ValueKind = iota // signed integer, up to 128 bits
	ValueBytes                  // raw byte string
)

// Value is one formatting argument: a signed integer or a byte string.
// Values are constructed with [Int], [BigInt], [Bytes], or [String] and
// consumed left to right, one per conversion specification.
type Value struct {
	kind  ValueKind
	num   Int128
	bytes []byte
}

// Int wraps any signed integer as a Value.
func Int[T constraints.Signed](v T) Value {
	return Value{kind: ValueInt, num: Int128Of(int64(v))}
}

// BigInt wraps a full 128-bit integer as a Value. Only the j length
// modifier admits values outside the 64-bit range.
func BigInt(v Int128) Value { return Value{kind: ValueInt, num: v} }

// Bytes wraps a byte string as a Value. The slice is not copied; it must
// stay unchanged for the duration of the formatting pass.
func Bytes(b []byte) Value { return Value{kind: ValueBytes, bytes: b} }

// String wraps a string as a Value.
func String(s string) Value { return Value{kind: ValueBytes, bytes: []byte(s)} }

// Kind reports which kind of argument the Value carries.
func (v Value) Kind() ValueKind { return v.kind }

// Int128 is a two's-complement 128-bit signed integer, wide enough for the
// intmax-style j length modifier. It exists because conversions range-check
// their argument against the length modifier's bounds, and the widest bound
// exceeds int64.
type Int128 struct {
	hi int64
	lo uint64
}

// Bounds of the Int128 range.
var (
	MaxInt128 = Int128{hi: math.MaxInt64, lo: math.MaxUint64}
	MinInt128 = Int128{hi: math.MinInt64}
)

// Int128Of sign-extends v to 128 bits.
func Int128Of(v int64) Int128 { return Int128{hi: v >> 63, lo: uint64(v)} }

// MakeInt128 assembles an Int128 from its high and low 64-bit words.
func MakeInt128(hi int64, lo uint64) Int128 { return Int128{hi: hi, lo: lo} }

// IsInt64 reports whether x is representable as an int64.
func (x Int128) IsInt64() bool { return x.hi == int64(x.lo)>>63 }

// Int64 returns the low 64 bits of x as a signed integer. The result equals
// x only when IsInt64 reports true.
func (x Int128) Int64() int64 { return int64(x.lo) }

// String renders x in decimal.
func (x Int128) String() string { return string(x.Append(nil)) }

// Append renders x in minimal decimal form (a '-' sign only when negative)
// and appends the digits to dst.
func (x Int128) Append(dst []byte) []byte {
	if x.IsInt64() {
		return strconv.AppendInt(dst, x.Int64(), 10)
	}

	neg := x.hi < 0
	hi, lo := uint64(x.hi), x.lo
	if neg {
		// two's-complement negate to obtain the magnitude
		lo = -lo
		hi = ^hi
		if lo == 0 {
			hi++
		}
	}

	// 2^127 has 39 digits; one more byte for the sign.
	var scratch [40]byte
	i := len(scratch)

	// Peel 19 digits per round with a 128-by-64 division until the high
	// word empties. 1e19 is the largest power of ten below 2^64.
	const pow19 = 1_0000000000_000000000
	for hi != 0 {
		q := hi / pow19
		var r uint64
		lo, r = bits.Div64(hi%pow19, lo, pow19)
		hi = q
		for range 19 {
			i--
			scratch[i] = byte('0' + r%10)
			r /= 10
		}
	}
	for {
		i--
		scratch[i] = byte('0' + lo%10)
		lo /= 10
		if lo == 0 {
			break
		}
	}
	if neg {
		i--
		scratch[i] = '-'
	}
	return append(dst, scratch[i:]...)
}
