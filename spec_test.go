package printf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(flags, width, prec, length, verb string) RawSpec {
	return RawSpec{
		Flags:     []byte(flags),
		Width:     []byte(width),
		Precision: []byte(prec),
		Length:    []byte(length),
		Verb:      []byte(verb),
	}
}

func TestParseSpecVerbs(t *testing.T) {
	t.Parallel()

	for _, verb := range []string{"d", "i"} {
		s, err := ParseSpec(raw("", "", "", "", verb))
		require.NoError(t, err, "verb %q", verb)
		assert.Equal(t, ConvDecimal, s.Kind)
	}

	s, err := ParseSpec(raw("", "", "", "", "s"))
	require.NoError(t, err)
	assert.Equal(t, ConvString, s.Kind)

	_, err = ParseSpec(raw("", "", "", "", ""))
	assert.ErrorIs(t, err, ErrMissingSpecifier)

	// Recognized printf verbs this package does not implement.
	for _, verb := range []string{"o", "u", "x", "X", "f", "e", "g", "c", "p", "n", "m", "ds"} {
		_, err := ParseSpec(raw("", "", "", "", verb))
		assert.ErrorIs(t, err, ErrUnknownSpecifier, "verb %q", verb)
	}
}

func TestParseSpecFlags(t *testing.T) {
	t.Parallel()

	s, err := ParseSpec(raw("#0- +'I", "", "", "", "d"))
	require.NoError(t, err)
	assert.Equal(t, Flags{
		Alt:        true,
		ZeroPad:    true,
		LeftAdjust: true,
		SpaceSign:  true,
		ForceSign:  true,
		Grouping:   true,
		AltDigits:  true,
	}, s.Flags)

	_, err = ParseSpec(raw("00", "", "", "", "d"))
	assert.ErrorIs(t, err, ErrDuplicateFlag)

	_, err = ParseSpec(raw("#-#", "", "", "", "d"))
	assert.ErrorIs(t, err, ErrDuplicateFlag)

	// Only reachable with a hand-crafted RawSpec; the scanner never puts
	// such bytes in the flags field.
	_, err = ParseSpec(raw("q", "", "", "", "d"))
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestParseSpecLength(t *testing.T) {
	t.Parallel()

	cases := map[string]LenModifier{
		"":   LenNone,
		"hh": LenChar,
		"h":  LenShort,
		"l":  LenLong,
		"ll": LenLongLong,
		"j":  LenIntMax,
		"z":  LenSize,
		"Z":  LenSize,
		"t":  LenPtrDiff,
		"L":  LenLongDouble,
	}
	for in, want := range cases {
		s, err := ParseSpec(raw("", "", "", in, "d"))
		require.NoError(t, err, "modifier %q", in)
		assert.Equal(t, want, s.Length, "modifier %q", in)
	}

	for _, in := range []string{"q", "lll", "hl", "zz"} {
		_, err := ParseSpec(raw("", "", "", in, "d"))
		assert.ErrorIs(t, err, ErrUnknownLength, "modifier %q", in)
	}
}

func TestParseSpecWidth(t *testing.T) {
	t.Parallel()

	s, err := ParseSpec(raw("", "", "", "", "d"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.MinWidth)

	s, err = ParseSpec(raw("", "42", "", "", "d"))
	require.NoError(t, err)
	assert.Equal(t, 42, s.MinWidth)

	for _, in := range []string{"4a", "-4", "+4", "99999999999999999999999"} {
		_, err := ParseSpec(raw("", in, "", "", "d"))
		assert.ErrorIs(t, err, ErrInvalidWidth, "width %q", in)
	}
}

func TestParseSpecPrecision(t *testing.T) {
	t.Parallel()

	s, err := ParseSpec(raw("", "", "", "", "s"))
	require.NoError(t, err)
	assert.False(t, s.HasPrec, "absent precision is distinct from zero")

	s, err = ParseSpec(raw("", "", ".", "", "s"))
	require.NoError(t, err)
	assert.True(t, s.HasPrec)
	assert.Equal(t, 0, s.Prec, "a bare dot means precision 0")

	s, err = ParseSpec(raw("", "", ".17", "", "s"))
	require.NoError(t, err)
	assert.True(t, s.HasPrec)
	assert.Equal(t, 17, s.Prec)

	for _, in := range []string{"3", ".3.2", ".x", ".99999999999999999999999"} {
		_, err := ParseSpec(raw("", "", in, "", "s"))
		assert.ErrorIs(t, err, ErrInvalidPrecision, "precision %q", in)
	}
}

func TestRawSpecText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RawSpec{}.text())
	assert.Equal(t, "0-7.2lld", raw("0-", "7", ".2", "ll", "d").text())

	// A width field longer than the stack scratch spills to the heap but
	// must reproduce the same concatenation.
	wide := "10000000000000000000000000000000000000000"
	require.Greater(t, len(wide), 32)
	assert.Equal(t, "#"+wide+".3hhd", raw("#", wide, ".3", "hh", "d").text())
}

func TestParseSpecCached(t *testing.T) {
	t.Parallel()

	r := raw("0", "7", ".2", "ll", "d")
	first, err := parseSpecCached(r)
	require.NoError(t, err)
	second, err := parseSpecCached(r)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Errors are never cached, so malformed input keeps failing.
	for range 2 {
		_, err := parseSpecCached(raw("", "", "", "", "x"))
		assert.ErrorIs(t, err, ErrUnknownSpecifier)
	}
}
