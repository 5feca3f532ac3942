package printf

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt128AppendInt64Range(t *testing.T) {
	t.Parallel()

	for _, v := range []int64{0, 1, -1, 9, 10, 42, -42, 1234,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		got := string(Int128Of(v).Append(nil))
		assert.Equal(t, strconv.FormatInt(v, 10), got, "value %d", v)

		// Round trip: the decimal text must parse back to the same value.
		back, err := strconv.ParseInt(got, 10, 64)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestInt128AppendWide(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v    Int128
		want string
	}{
		// 2^64 and 2^64-1
		{MakeInt128(1, 0), "18446744073709551616"},
		{MakeInt128(0, math.MaxUint64), "18446744073709551615"},
		// 10^20
		{MakeInt128(5, 0x6bc75e2d63100000), "100000000000000000000"},
		// -2^65
		{MakeInt128(-2, 0), "-36893488147419103232"},
		// the extremes, 2^127-1 and -2^127
		{MaxInt128, "170141183460469231731687303715884105727"},
		{MinInt128, "-170141183460469231731687303715884105728"},
		// sign extension through the high word
		{MakeInt128(-1, math.MaxUint64-41), "-42"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func TestInt128IsInt64(t *testing.T) {
	t.Parallel()

	assert.True(t, Int128Of(math.MaxInt64).IsInt64())
	assert.True(t, Int128Of(math.MinInt64).IsInt64())
	assert.Equal(t, int64(-7), Int128Of(-7).Int64())

	assert.False(t, MakeInt128(0, math.MaxUint64).IsInt64())
	assert.False(t, MakeInt128(1, 0).IsInt64())
	assert.False(t, MinInt128.IsInt64())
}

func TestValueConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ValueInt, Int(5).Kind())
	assert.Equal(t, ValueInt, Int(int8(-1)).Kind())
	assert.Equal(t, ValueInt, BigInt(MaxInt128).Kind())
	assert.Equal(t, ValueBytes, Bytes([]byte("x")).Kind())
	assert.Equal(t, ValueBytes, String("x").Kind())
}
