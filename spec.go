package printf

import (
	"fmt"
	"math"

	"github.com/puzpuzpuz/xsync/v4"
)

// ConvKind is the conversion requested by a specification's specifier.
type ConvKind uint8

const (
	ConvDecimal ConvKind = iota // %d, %i
	ConvString                  // %s
)

// Flags holds the independent boolean flags of one conversion specification.
// Duplicate occurrences of a flag character are a parse error, not collapsed.
type Flags struct {
	Alt        bool // '#'
	ZeroPad    bool // '0'
	LeftAdjust bool // '-'
	SpaceSign  bool // ' '
	ForceSign  bool // '+'
	Grouping   bool // '\''
	AltDigits  bool // 'I'
}

// supported reports whether every set flag is implemented by the formatter.
// Grouping and alternative digits parse fine but are locale work this
// package does not do.
func (f Flags) supported() bool { return !f.Grouping && !f.AltDigits }

// LenModifier adjusts the integer range a conversion accepts.
type LenModifier uint8

const (
	LenNone       LenModifier = iota // 32-bit
	LenChar                          // hh, 8-bit
	LenShort                         // h, 16-bit
	LenLong                          // l, 64-bit
	LenLongLong                      // ll, 64-bit
	LenIntMax                        // j, 128-bit
	LenSize                          // z or Z, pointer-sized
	LenPtrDiff                       // t, not implemented for integers
	LenLongDouble                    // L, not implemented for integers
)

// Spec is a validated conversion specification. It is produced from a
// [RawSpec] by [ParseSpec] and consumed by the formatting engine; it is
// never retained past the conversion it describes.
type Spec struct {
	Kind     ConvKind
	Flags    Flags
	Length   LenModifier
	MinWidth int
	Prec     int
	HasPrec  bool // distinguishes an absent precision from an explicit 0
}

// ParseSpec validates the raw fields of one conversion specification and
// structures them into a [Spec]. It checks printf grammar only; whether this
// package implements the requested feature is decided separately by the
// formatter, so malformed input and unimplemented features stay
// distinguishable error classes.
func ParseSpec(raw RawSpec) (Spec, error) {
	var s Spec

	kind, err := parseVerb(raw.Verb)
	if err != nil {
		return Spec{}, err
	}
	s.Kind = kind

	if s.Flags, err = parseFlags(raw.Flags); err != nil {
		return Spec{}, err
	}
	if s.Length, err = parseLength(raw.Length); err != nil {
		return Spec{}, err
	}

	if len(raw.Width) > 0 {
		w, ok := atoiBytes(raw.Width)
		if !ok {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidWidth, raw.Width)
		}
		s.MinWidth = w
	}

	if len(raw.Precision) > 0 {
		if raw.Precision[0] != '.' {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidPrecision, raw.Precision)
		}
		s.HasPrec = true
		// a bare '.' means precision 0
		if digits := raw.Precision[1:]; len(digits) > 0 {
			p, ok := atoiBytes(digits)
			if !ok {
				return Spec{}, fmt.Errorf("%w: %q", ErrInvalidPrecision, raw.Precision)
			}
			s.Prec = p
		}
	}

	return s, nil
}

func parseVerb(b []byte) (ConvKind, error) {
	switch string(b) {
	case "d", "i":
		return ConvDecimal, nil
	case "s":
		return ConvString, nil
	case "":
		return 0, ErrMissingSpecifier
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecifier, b)
	}
}

func parseFlags(b []byte) (Flags, error) {
	var f Flags
	for _, c := range b {
		var field *bool
		switch c {
		case '#':
			field = &f.Alt
		case '0':
			field = &f.ZeroPad
		case '-':
			field = &f.LeftAdjust
		case ' ':
			field = &f.SpaceSign
		case '+':
			field = &f.ForceSign
		case '\'':
			field = &f.Grouping
		case 'I':
			field = &f.AltDigits
		default:
			return Flags{}, fmt.Errorf("%w: %q", ErrUnknownFlag, string(c))
		}
		if *field {
			return Flags{}, fmt.Errorf("%w: %q", ErrDuplicateFlag, string(c))
		}
		*field = true
	}
	return f, nil
}

func parseLength(b []byte) (LenModifier, error) {
	switch string(b) {
	case "":
		return LenNone, nil
	case "hh":
		return LenChar, nil
	case "h":
		return LenShort, nil
	case "l":
		return LenLong, nil
	case "ll":
		return LenLongLong, nil
	case "j":
		return LenIntMax, nil
	case "z", "Z":
		return LenSize, nil
	case "t":
		return LenPtrDiff, nil
	case "L":
		return LenLongDouble, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLength, b)
	}
}

// atoiBytes parses a run of ASCII digits as a non-negative int without
// converting to string first (strconv would force an allocation per
// directive). Reports failure on empty input, non-digit bytes, or overflow.
func atoiBytes(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// specCache memoizes successful parses keyed by the directive text, so
// templates rendered repeatedly skip revalidation. Using a concurrent map
// keeps it safe across goroutines each running their own pass. Malformed
// directives are not cached; they re-parse and re-report every pass.
var specCache = xsync.NewMap[string, Spec]()

func parseSpecCached(raw RawSpec) (Spec, error) {
	key := raw.text()
	if s, ok := specCache.Load(key); ok {
		return s, nil
	}
	s, err := ParseSpec(raw)
	if err != nil {
		return Spec{}, err
	}
	specCache.Store(key, s)
	return s, nil
}
